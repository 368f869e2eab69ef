package conversation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lobbyboard/internal/services/conversation Service

import "context"

// Service keeps one dialogue per user and advances it turn by turn
type Service interface {
	// Start begins a dialogue in the given state, abandoning any dialogue in progress
	Start(ctx context.Context, input *StartInput) error

	// Transition feeds one turn of text into the user's dialogue
	Transition(ctx context.Context, input *TransitionInput) (*TransitionOutput, error)

	// Active reports whether the user is in the middle of a dialogue
	Active(userID string) bool

	// Reset drops the user's dialogue
	Reset(userID string)
}
