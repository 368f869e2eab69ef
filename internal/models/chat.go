package models

// Chat is a conversation the bot can post into
type Chat struct {
	// ChatID is the Discord channel ID
	ChatID string `json:"chat_id"`
}
