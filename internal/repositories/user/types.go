package user

import "github.com/KirkDiggler/lobbyboard/internal/models"

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// GetOrCreateUserInput contains parameters for retrieving or creating a user
type GetOrCreateUserInput struct {
	UserID string
}

// SetAdminInput contains parameters for changing admin rights
type SetAdminInput struct {
	UserID  string
	IsAdmin bool
}

// ListAdminsInput contains parameters for listing admins
type ListAdminsInput struct{}

// ListAdminsOutput contains the admins, ordered by ID
type ListAdminsOutput struct {
	Users []*models.User
}

// AddSubscriberInput contains parameters for subscribing a chat to a user
type AddSubscriberInput struct {
	UserID string
	Chat   models.Chat
}

// AddSubscriberOutput reports whether the chat was newly added
type AddSubscriberOutput struct {
	Added bool
}

// RemoveSubscriberInput contains parameters for unsubscribing a chat from a user
type RemoveSubscriberInput struct {
	UserID string
	Chat   models.Chat
}

// RemoveSubscriberOutput reports whether the chat was subscribed
type RemoveSubscriberOutput struct {
	Removed bool
}

// RateUserInput contains parameters for rating a user
type RateUserInput struct {
	UserID  string
	RaterID string
	Liked   bool
}
