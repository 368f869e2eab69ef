package rooms

import (
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/common/clock"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/chat"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/user"
	"github.com/KirkDiggler/lobbyboard/internal/services/conversation"
	"github.com/KirkDiggler/lobbyboard/internal/services/expiration"
	"github.com/KirkDiggler/lobbyboard/internal/services/messaging"
)

// Command is a slash command name
type Command string

const (
	CommandStart       Command = "start"
	CommandHelp        Command = "help"
	CommandRules       Command = "rules"
	CommandList        Command = "list"
	CommandAdd         Command = "add"
	CommandEdit        Command = "edit"
	CommandDelete      Command = "del"
	CommandUpdate      Command = "update"
	CommandCancel      Command = "cancel"
	CommandSubscribe   Command = "subscribe"
	CommandUnsubscribe Command = "unsubscribe"
	CommandLike        Command = "like"
	CommandDislike     Command = "dislike"

	// Admin commands
	CommandAdminHelp   Command = "admin_help"
	CommandListAdmins  Command = "list_admins"
	CommandAdminDelete Command = "admin_del"
	CommandBroadcast   Command = "broadcast"

	// Root admin commands
	CommandAddAdmin Command = "add_admin"
	CommandDelAdmin Command = "del_admin"
)

// Commands lists every command in the order they are registered
var Commands = []Command{
	CommandStart,
	CommandHelp,
	CommandRules,
	CommandList,
	CommandAdd,
	CommandEdit,
	CommandDelete,
	CommandUpdate,
	CommandCancel,
	CommandSubscribe,
	CommandUnsubscribe,
	CommandLike,
	CommandDislike,
	CommandAdminHelp,
	CommandListAdmins,
	CommandAdminDelete,
	CommandBroadcast,
	CommandAddAdmin,
	CommandDelAdmin,
}

// TakesCode reports whether the command expects a room code argument
func (c Command) TakesCode() bool {
	switch c {
	case CommandSubscribe, CommandUnsubscribe, CommandLike, CommandDislike:
		return true
	default:
		return false
	}
}

// ListRoomsLabel is the quick button that shows the room list
const ListRoomsLabel = "Список рум"

// MaxOptions is the most options a reply offers
const MaxOptions = 24

// Config holds configuration for the rooms service
type Config struct {
	RoomRepo     room.Repository
	UserRepo     user.Repository
	ChatRepo     chat.Repository
	Conversation conversation.Service
	Scheduler    expiration.Scheduler

	// Notifier reaches subscribers, owners and broadcast chats
	Notifier expiration.Notifier

	Messages messaging.Service

	// Clock stamps renewals; defaults to the real clock
	Clock clock.Clock

	// Lifetime is how long a new room stays listed; defaults to expiration.DefaultLifetime
	Lifetime time.Duration

	// RootAdminID may grant and revoke admin rights; empty disables those commands
	RootAdminID string
}

// ExecuteInput contains parameters for running a command
type ExecuteInput struct {
	Command Command
	UserID  string
	ChatID  string

	// Code is the argument of the commands that take a room code
	Code string
}

// HandleInputInput contains parameters for one turn of dialogue input
type HandleInputInput struct {
	UserID string
	ChatID string
	Text   string

	// Direct is set for clicked options; they get a reply even outside a dialogue
	Direct bool
}

// Reply is what the bot answers
type Reply struct {
	Text string

	// Options are offered as buttons
	Options []string

	// Dialogue is set while the user is mid-dialogue; the cancel option is offered with it
	Dialogue bool
}

