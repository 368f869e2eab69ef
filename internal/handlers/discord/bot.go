package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/services/messaging"
	"github.com/KirkDiggler/lobbyboard/internal/services/rooms"
	"github.com/bwmarrin/discordgo"
)

// requestTimeout bounds the work done for one interaction or message
const requestTimeout = 10 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	rooms      rooms.Service
	messages   messaging.Service
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Session is shared with the notifier; created from Token when nil
	Session *discordgo.Session

	// Rooms handles every command and dialogue turn
	Rooms rooms.Service

	// Messages renders the fallback error reply
	Messages messaging.Service
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Typed dialogue answers arrive as plain messages
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Rooms == nil {
		return nil, errors.New("rooms service cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		var err error
		session, err = NewSession(cfg.Token)
		if err != nil {
			return nil, err
		}
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		rooms:      cfg.Rooms,
		messages:   cfg.Messages,
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range rooms.Commands {
		if err := b.RegisterCommand(NewRoomCommand(b, cmd)); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd, err)
		}
	}

	slog.Info("Bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			slog.Warn("Failed to delete command",
				"command", cmdName,
				"command_id", cmdID,
				"error", err,
			)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Commands are global unless a guild is configured
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	slog.Debug("Registered command",
		"command", cmd.GetName(),
		"command_id", createdCmd.ID,
		"guild_id", b.config.GuildID,
	)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(ctx, s, i); err != nil {
				slog.Error("Error handling command",
					"command", name,
					"user_id", interactionUserID(i),
					"error", err,
				)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(ctx, s, i); err != nil {
			slog.Error("Error handling component interaction",
				"custom_id", i.MessageComponentData().CustomID,
				"user_id", interactionUserID(i),
				"error", err,
			)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	userID := interactionUserID(i)

	var (
		reply *rooms.Reply
		err   error
	)

	if customID == ButtonListRooms {
		reply, err = b.rooms.Execute(ctx, &rooms.ExecuteInput{
			Command: rooms.CommandList,
			UserID:  userID,
			ChatID:  i.ChannelID,
		})
	} else if option, ok := optionFromCustomID(customID); ok {
		reply, err = b.rooms.HandleInput(ctx, &rooms.HandleInputInput{
			UserID: userID,
			ChatID: i.ChannelID,
			Text:   option,
			Direct: true,
		})
	} else {
		return fmt.Errorf("unknown component %q", customID)
	}

	if err != nil {
		b.respondInternalError(s, i)
		return err
	}
	if reply == nil {
		return nil
	}

	return respondWithReply(s, i, reply)
}

// handleMessage feeds typed text into the author's dialogue
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Content == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reply, err := b.rooms.HandleInput(ctx, &rooms.HandleInputInput{
		UserID: m.Author.ID,
		ChatID: m.ChannelID,
		Text:   m.Content,
	})
	if err != nil {
		slog.Error("Error handling message",
			"user_id", m.Author.ID,
			"channel_id", m.ChannelID,
			"error", err,
		)
		reply = &rooms.Reply{Text: b.messages.Get(messaging.MessageInternalError)}
	}
	if reply == nil {
		return
	}

	if _, err := s.ChannelMessageSendComplex(m.ChannelID, renderMessage(reply, m.Message)); err != nil {
		slog.Error("Failed to send reply",
			"channel_id", m.ChannelID,
			"error", err,
		)
	}
}

func (b *Bot) respondInternalError(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := RespondWithEphemeralMessage(s, i, b.messages.Get(messaging.MessageInternalError)); err != nil {
		slog.Error("Failed to send error response", "error", err)
	}
}
