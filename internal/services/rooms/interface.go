package rooms

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lobbyboard/internal/services/rooms Service

import "context"

// Service turns commands and dialogue input into replies, applying the resulting changes
type Service interface {
	// Execute runs a command
	Execute(ctx context.Context, input *ExecuteInput) (*Reply, error)

	// HandleInput feeds free text or a clicked option into the user's dialogue.
	// A nil reply means the text was not addressed to the bot.
	HandleInput(ctx context.Context, input *HandleInputInput) (*Reply, error)
}
