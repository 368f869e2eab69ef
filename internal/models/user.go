package models

// Rating is one user's opinion of a room owner
type Rating struct {
	// RaterID is the user who left the rating
	RaterID string `json:"user_id"`

	// Liked is true for a thumbs up
	Liked bool `json:"rating"`
}

// User is a person talking to the bot
type User struct {
	// ID is the Discord user ID
	ID string `json:"user_id"`

	// IsAdmin grants access to the moderation commands
	IsAdmin bool `json:"is_admin"`

	// Subscribers are chats that want to hear when this user opens a room
	Subscribers []Chat `json:"subscribers"`

	// Rating holds at most one entry per rater
	Rating []Rating `json:"rating"`
}

// Rate records a rating, replacing any earlier one from the same rater
func (u *User) Rate(raterID string, liked bool) {
	for i := range u.Rating {
		if u.Rating[i].RaterID == raterID {
			u.Rating[i].Liked = liked
			return
		}
	}
	u.Rating = append(u.Rating, Rating{RaterID: raterID, Liked: liked})
}

// Score returns the number of likes and dislikes
func (u *User) Score() (likes, dislikes int) {
	for _, r := range u.Rating {
		if r.Liked {
			likes++
		} else {
			dislikes++
		}
	}
	return likes, dislikes
}

// Subscribe adds a chat to the subscribers, returning false if it was already there
func (u *User) Subscribe(chat Chat) bool {
	for _, c := range u.Subscribers {
		if c.ChatID == chat.ChatID {
			return false
		}
	}
	u.Subscribers = append(u.Subscribers, chat)
	return true
}

// Unsubscribe removes a chat from the subscribers, returning false if it was absent
func (u *User) Unsubscribe(chat Chat) bool {
	for i, c := range u.Subscribers {
		if c.ChatID == chat.ChatID {
			u.Subscribers = append(u.Subscribers[:i], u.Subscribers[i+1:]...)
			return true
		}
	}
	return false
}
