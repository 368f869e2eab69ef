package chat

import "github.com/KirkDiggler/lobbyboard/internal/models"

// SaveChatInput contains parameters for remembering a chat
type SaveChatInput struct {
	Chat models.Chat
}

// ListChatsInput contains parameters for listing chats
type ListChatsInput struct{}

// ListChatsOutput contains every remembered chat, ordered by ID
type ListChatsOutput struct {
	Chats []models.Chat
}
