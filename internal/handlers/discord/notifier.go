package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/lobbyboard/internal/services/expiration"
	"github.com/bwmarrin/discordgo"
)

// Notifier posts messages into Discord channels
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a notifier on an existing session
func NewNotifier(session *discordgo.Session) (*Notifier, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Notifier{
		session: session,
	}, nil
}

// Notify sends text to the channel
func (n *Notifier) Notify(ctx context.Context, input *expiration.NotifyInput) error {
	if input == nil || input.ChatID == "" {
		return errors.New("chat ID cannot be empty")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.session.ChannelMessageSend(input.ChatID, input.Text); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", input.ChatID, err)
	}

	return nil
}
