package chat

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lobbyboard/internal/repositories/chat Repository

import (
	"context"
)

// Repository defines the interface for remembering chats the bot has talked in
type Repository interface {
	// SaveChat remembers a chat
	SaveChat(ctx context.Context, input *SaveChatInput) error

	// ListChats retrieves every remembered chat
	ListChats(ctx context.Context, input *ListChatsInput) (*ListChatsOutput, error)
}
