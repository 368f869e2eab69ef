package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/lobbyboard/internal/services/rooms"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// codeOption is the argument of the commands that take a room code
const codeOption = "code"

// commandDescriptions are shown in the Discord command picker
var commandDescriptions = map[rooms.Command]string{
	rooms.CommandStart:       "Начать работу с ботом",
	rooms.CommandHelp:        "Список команд",
	rooms.CommandRules:       "Правила",
	rooms.CommandList:        "Показать опубликованные комнаты",
	rooms.CommandAdd:         "Опубликовать комнату",
	rooms.CommandEdit:        "Изменить комнату",
	rooms.CommandDelete:      "Удалить комнату",
	rooms.CommandUpdate:      "Продлить жизнь комнаты",
	rooms.CommandCancel:      "Прервать текущий диалог",
	rooms.CommandSubscribe:   "Подписаться на хоста комнаты",
	rooms.CommandUnsubscribe: "Отписаться от хоста комнаты",
	rooms.CommandLike:        "Поставить хосту лайк",
	rooms.CommandDislike:     "Поставить хосту дизлайк",
	rooms.CommandAdminHelp:   "Команды администратора",
	rooms.CommandListAdmins:  "Список администраторов",
	rooms.CommandAdminDelete: "Удалить любую комнату",
	rooms.CommandBroadcast:   "Отправить сообщение во все чаты",
	rooms.CommandAddAdmin:    "Назначить администратора",
	rooms.CommandDelAdmin:    "Снять администратора",
}

// RoomCommand hands one slash command to the rooms service
type RoomCommand struct {
	BaseCommand
	command rooms.Command
	bot     *Bot
}

// NewRoomCommand creates a handler for cmd
func NewRoomCommand(bot *Bot, cmd rooms.Command) *RoomCommand {
	var options []*discordgo.ApplicationCommandOption
	if cmd.TakesCode() {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        codeOption,
			Description: "Код комнаты",
			Required:    true,
		})
	}

	return &RoomCommand{
		BaseCommand: BaseCommand{
			Name:        string(cmd),
			Description: commandDescriptions[cmd],
			Options:     options,
		},
		command: cmd,
		bot:     bot,
	}
}

// Handle processes a Discord interaction for the command
func (c *RoomCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	input := &rooms.ExecuteInput{
		Command: c.command,
		UserID:  interactionUserID(i),
		ChatID:  i.ChannelID,
	}

	for _, opt := range data.Options {
		if opt.Name == codeOption {
			input.Code = strings.TrimSpace(opt.StringValue())
		}
	}

	reply, err := c.bot.rooms.Execute(ctx, input)
	if err != nil {
		c.bot.respondInternalError(s, i)
		return err
	}

	return respondWithReply(s, i, reply)
}

// interactionUserID returns the caller in guilds and in direct messages
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
