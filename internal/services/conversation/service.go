package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/lobbyboard/internal/common/clock"
	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/samber/lo"
)

// Config holds configuration for the conversation service
type Config struct {
	// RoomRepo resolves the rooms named in target states
	RoomRepo room.Repository

	// Clock stamps created rooms; defaults to the real clock
	Clock clock.Clock
}

// entry holds one session; mu serialises the user's turns
type entry struct {
	mu      sync.Mutex
	session Session
}

// service implements the Service interface
type service struct {
	roomRepo room.Repository
	clock    clock.Clock
	sessions cmap.ConcurrentMap[string, *entry]
}

// New creates a new conversation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &service{
		roomRepo: cfg.RoomRepo,
		clock:    clk,
		sessions: cmap.New[*entry](),
	}, nil
}

// Start begins a dialogue in the given state
func (s *service) Start(ctx context.Context, input *StartInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	if input.State == StateIdle || !lo.Contains(States, input.State) {
		return ErrInvalidState
	}

	s.sessions.Set(input.UserID, &entry{
		session: Session{
			UserID: input.UserID,
			ChatID: input.ChatID,
			State:  input.State,
		},
	})

	slog.Debug("Dialogue started",
		"user_id", input.UserID,
		"state", input.State,
	)

	return nil
}

// Transition feeds one turn of text into the user's dialogue
func (s *service) Transition(ctx context.Context, input *TransitionInput) (*TransitionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	e, ok := s.lock(input.UserID)
	if !ok {
		// Without a dialogue the user is idle
		next, effect := Step(Session{UserID: input.UserID, State: StateIdle}, Input{Text: input.Text})
		return &TransitionOutput{Effect: effect, Session: next}, nil
	}
	defer e.mu.Unlock()

	current := e.session
	turn := Input{
		Text: input.Text,
		Now:  s.clock.Now(),
	}

	if !IsCancel(input.Text) {
		target, err := s.resolveTarget(ctx, current, input.Text)
		if err != nil {
			s.drop(input.UserID, e)
			return nil, fmt.Errorf("failed to resolve room for %s: %w", current.State, err)
		}
		turn.Target = target
	}

	next, effect := Step(current, turn)
	e.session = next

	if next.State == StateIdle {
		s.drop(input.UserID, e)
	}

	slog.Debug("Dialogue step",
		"user_id", input.UserID,
		"from", current.State,
		"to", next.State,
		"effect", effect.Kind,
	)

	return &TransitionOutput{
		Effect:  effect,
		Session: next,
	}, nil
}

// Active reports whether the user has a dialogue in progress
func (s *service) Active(userID string) bool {
	return s.sessions.Has(userID)
}

// Reset drops the user's dialogue
func (s *service) Reset(userID string) {
	s.sessions.Remove(userID)
}

// lock returns the user's current entry with its mutex held
func (s *service) lock(userID string) (*entry, bool) {
	for {
		e, ok := s.sessions.Get(userID)
		if !ok {
			return nil, false
		}

		e.mu.Lock()
		if current, ok := s.sessions.Get(userID); ok && current == e {
			return e, true
		}
		// Replaced or dropped while we waited
		e.mu.Unlock()
	}
}

// resolveTarget looks up the room named by text when the state needs one; nil means not found
func (s *service) resolveTarget(ctx context.Context, session Session, text string) (*models.Room, error) {
	code := strings.TrimSpace(text)
	lookup := LookupFor(session.State)
	if lookup == LookupNone || code == "" {
		return nil, nil
	}

	var (
		target *models.Room
		err    error
	)

	switch lookup {
	case LookupOwnRoom:
		target, err = s.roomRepo.GetRoomByOwnerAndCode(ctx, &room.GetRoomByOwnerAndCodeInput{
			OwnerID: session.UserID,
			Code:    code,
		})
	case LookupAnyRoom:
		target, err = s.roomRepo.GetRoomByCode(ctx, &room.GetRoomByCodeInput{
			Code: code,
		})
	}

	if errors.Is(err, room.ErrRoomNotFound) {
		return nil, nil
	}
	return target, err
}

// drop removes the entry only if it is still the user's current one
func (s *service) drop(userID string, e *entry) {
	s.sessions.RemoveCb(userID, func(_ string, current *entry, exists bool) bool {
		return exists && current == e
	})
}
