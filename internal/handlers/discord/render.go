package discord

import (
	"strings"

	"github.com/KirkDiggler/lobbyboard/internal/services/conversation"
	"github.com/KirkDiggler/lobbyboard/internal/services/rooms"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Component custom IDs
const (
	// ButtonListRooms shows the room list
	ButtonListRooms = "list_rooms"

	// optionPrefix marks a button whose label is fed into the dialogue
	optionPrefix = "option:"
)

// buttonsPerRow keeps long option lists readable
const buttonsPerRow = 3

// maxButtonLabel is the Discord limit for a button label
const maxButtonLabel = 80

// renderComponents lays out a reply's buttons.
// Dialogue replies offer their options plus cancel; anything else offers the room list.
func renderComponents(reply *rooms.Reply) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	if !reply.Dialogue {
		buttons = append(buttons, discordgo.Button{
			Label:    rooms.ListRoomsLabel,
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonListRooms,
			Emoji:    &discordgo.ComponentEmoji{Name: "📋"},
		})
	} else {
		for _, option := range reply.Options {
			buttons = append(buttons, optionButton(option, discordgo.PrimaryButton))
		}
		buttons = append(buttons, optionButton(conversation.CancelLabel, discordgo.DangerButton))
	}

	return lo.Map(lo.Chunk(buttons, buttonsPerRow), func(row []discordgo.MessageComponent, _ int) discordgo.MessageComponent {
		return discordgo.ActionsRow{Components: row}
	})
}

func optionButton(label string, style discordgo.ButtonStyle) discordgo.Button {
	return discordgo.Button{
		Label:    truncate(label, maxButtonLabel),
		Style:    style,
		CustomID: optionPrefix + label,
	}
}

// optionFromCustomID returns the dialogue text behind an option button
func optionFromCustomID(customID string) (string, bool) {
	return strings.CutPrefix(customID, optionPrefix)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// respondWithReply answers an interaction; dialogue replies are only shown to the caller
func respondWithReply(s *discordgo.Session, i *discordgo.InteractionCreate, reply *rooms.Reply) error {
	data := &discordgo.InteractionResponseData{
		Content:    reply.Text,
		Components: renderComponents(reply),
	}
	if reply.Dialogue {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// renderMessage builds a channel message for a reply to typed text
func renderMessage(reply *rooms.Reply, replyTo *discordgo.Message) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content:    reply.Text,
		Components: renderComponents(reply),
		Reference:  replyTo.Reference(),
	}
}
