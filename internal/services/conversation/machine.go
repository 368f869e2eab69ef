package conversation

import (
	"strings"

	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/KirkDiggler/lobbyboard/internal/validate"
)

// editFieldStates maps an edit field label to the state that asks for its value
var editFieldStates = map[string]State{
	EditFieldCodeLabel:     StateAwaitEditCode,
	EditFieldHostLabel:     StateAwaitEditHost,
	EditFieldMapLabel:      StateAwaitEditMap,
	EditFieldGameModeLabel: StateAwaitEditGameMode,
}

// IsCancel reports whether text abandons the dialogue
func IsCancel(text string) bool {
	text = strings.TrimSpace(text)
	return text == CancelLabel || text == CancelCommand
}

// LookupFor returns how the input of state names a room
func LookupFor(state State) Lookup {
	switch state {
	case StateAwaitEditTarget, StateAwaitDeleteTarget, StateAwaitUpdateTarget:
		return LookupOwnRoom
	case StateAwaitAdminDeleteTarget:
		return LookupAnyRoom
	default:
		return LookupNone
	}
}

// Step feeds one input into a session and returns the next session and the effect.
// It has no side effects; the caller applies any commit.
func Step(s Session, in Input) (Session, Effect) {
	text := strings.TrimSpace(in.Text)

	if IsCancel(text) {
		return reset(s), Effect{Kind: EffectCancelled, State: StateIdle}
	}

	switch s.State {
	case StateIdle:
		return s, reprompt(s)

	case StateAwaitCode:
		if !validate.Code(text) {
			return s, reprompt(s)
		}
		s.Draft.Code = strings.ToUpper(text)
		return advance(s, StateAwaitHost)

	case StateAwaitHost:
		if !validate.Host(text) {
			return s, reprompt(s)
		}
		s.Draft.Host = text
		return advance(s, StateAwaitMap)

	case StateAwaitMap:
		m, ok := models.ParseMap(text)
		if !ok {
			return s, reprompt(s)
		}
		s.Draft.Map = m
		return advance(s, StateAwaitGameMode)

	case StateAwaitGameMode:
		g, ok := models.ParseGameMode(text)
		if !ok {
			return s, reprompt(s)
		}
		return commit(s, &Commit{
			Kind: CommitCreate,
			Room: &models.Room{
				Code:      s.Draft.Code,
				Host:      s.Draft.Host,
				Map:       s.Draft.Map,
				GameMode:  g,
				Owner:     models.User{ID: s.UserID},
				Chat:      models.Chat{ChatID: s.ChatID},
				CreatedAt: in.Now,
			},
		})

	case StateAwaitEditTarget:
		if in.Target == nil {
			return notFound(s)
		}
		s.TargetRoomID = in.Target.ID
		return advance(s, StateAwaitEditField)

	case StateAwaitEditField:
		next, ok := editFieldStates[text]
		if !ok {
			return s, reprompt(s)
		}
		return advance(s, next)

	case StateAwaitEditCode:
		if !validate.Code(text) {
			return s, reprompt(s)
		}
		return commitEdit(s, models.RoomFieldCode, strings.ToUpper(text))

	case StateAwaitEditHost:
		if !validate.Host(text) {
			return s, reprompt(s)
		}
		return commitEdit(s, models.RoomFieldHost, text)

	case StateAwaitEditMap:
		if _, ok := models.ParseMap(text); !ok {
			return s, reprompt(s)
		}
		return commitEdit(s, models.RoomFieldMap, text)

	case StateAwaitEditGameMode:
		if _, ok := models.ParseGameMode(text); !ok {
			return s, reprompt(s)
		}
		return commitEdit(s, models.RoomFieldGameMode, text)

	case StateAwaitDeleteTarget:
		// An unknown code keeps the list of own rooms on screen
		if in.Target == nil {
			return s, reprompt(s)
		}
		return commit(s, &Commit{
			Kind:   CommitDelete,
			RoomID: in.Target.ID,
		})

	case StateAwaitConfirmDelete:
		if text != ConfirmLabel {
			return reset(s), Effect{Kind: EffectCancelled, State: StateIdle}
		}
		owner := s.UserID
		s = reset(s)
		s.State = StateAwaitCode
		return s, Effect{
			Kind:   EffectCommit,
			State:  StateAwaitCode,
			Commit: &Commit{Kind: CommitDeleteAll, OwnerID: owner},
		}

	case StateAwaitUpdateTarget:
		if in.Target == nil {
			return notFound(s)
		}
		return commit(s, &Commit{
			Kind:   CommitRenew,
			RoomID: in.Target.ID,
		})

	case StateAwaitAdminGrant:
		if !validate.UserID(text) {
			return s, reprompt(s)
		}
		return commit(s, &Commit{
			Kind:   CommitGrantAdmin,
			UserID: text,
		})

	case StateAwaitAdminRevoke:
		if !validate.UserID(text) {
			return s, reprompt(s)
		}
		return commit(s, &Commit{
			Kind:   CommitRevokeAdmin,
			UserID: text,
		})

	case StateAwaitAdminDeleteTarget:
		if in.Target == nil {
			return notFound(s)
		}
		return commit(s, &Commit{
			Kind:   CommitAdminDelete,
			RoomID: in.Target.ID,
			Room:   in.Target,
		})

	case StateAwaitBroadcastText:
		if text == "" {
			return s, reprompt(s)
		}
		return commit(s, &Commit{
			Kind: CommitBroadcast,
			Text: text,
		})

	default:
		return reset(s), Effect{Kind: EffectCancelled, State: StateIdle}
	}
}

// reset returns s in the idle state with no accumulated data
func reset(s Session) Session {
	return Session{
		UserID: s.UserID,
		ChatID: s.ChatID,
		State:  StateIdle,
	}
}

func reprompt(s Session) Effect {
	return Effect{Kind: EffectReprompt, State: s.State}
}

func advance(s Session, next State) (Session, Effect) {
	s.State = next
	return s, Effect{Kind: EffectAdvance, State: next}
}

func notFound(s Session) (Session, Effect) {
	return reset(s), Effect{Kind: EffectNotFound, State: StateIdle}
}

func commit(s Session, c *Commit) (Session, Effect) {
	c.OwnerID = s.UserID
	return reset(s), Effect{Kind: EffectCommit, State: StateIdle, Commit: c}
}

func commitEdit(s Session, field models.RoomField, value string) (Session, Effect) {
	return commit(s, &Commit{
		Kind:   CommitEdit,
		RoomID: s.TargetRoomID,
		Change: &FieldChange{Field: field, Value: value},
	})
}
