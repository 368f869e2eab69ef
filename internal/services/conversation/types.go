package conversation

import (
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// State is where a user is in a dialogue
type State string

const (
	StateIdle State = "idle"

	// Creation
	StateAwaitCode     State = "await_code"
	StateAwaitHost     State = "await_host"
	StateAwaitMap      State = "await_map"
	StateAwaitGameMode State = "await_game_mode"

	// Editing
	StateAwaitEditTarget   State = "await_edit_target"
	StateAwaitEditField    State = "await_edit_field"
	StateAwaitEditCode     State = "await_edit_code"
	StateAwaitEditHost     State = "await_edit_host"
	StateAwaitEditMap      State = "await_edit_map"
	StateAwaitEditGameMode State = "await_edit_game_mode"

	// Deleting and renewing
	StateAwaitDeleteTarget  State = "await_delete_target"
	StateAwaitConfirmDelete State = "await_confirm_delete"
	StateAwaitUpdateTarget  State = "await_update_target"

	// Administration
	StateAwaitAdminGrant        State = "await_admin_grant"
	StateAwaitAdminRevoke       State = "await_admin_revoke"
	StateAwaitAdminDeleteTarget State = "await_admin_delete_target"
	StateAwaitBroadcastText     State = "await_broadcast_text"
)

// States lists every state the machine knows
var States = []State{
	StateIdle,
	StateAwaitCode,
	StateAwaitHost,
	StateAwaitMap,
	StateAwaitGameMode,
	StateAwaitEditTarget,
	StateAwaitEditField,
	StateAwaitEditCode,
	StateAwaitEditHost,
	StateAwaitEditMap,
	StateAwaitEditGameMode,
	StateAwaitDeleteTarget,
	StateAwaitConfirmDelete,
	StateAwaitUpdateTarget,
	StateAwaitAdminGrant,
	StateAwaitAdminRevoke,
	StateAwaitAdminDeleteTarget,
	StateAwaitBroadcastText,
}

// Lookup is how a state resolves the room named by the input
type Lookup int

const (
	// LookupNone means the state does not name a room
	LookupNone Lookup = iota

	// LookupOwnRoom resolves the code among the user's own rooms
	LookupOwnRoom

	// LookupAnyRoom resolves the code among all rooms
	LookupAnyRoom
)

const (
	// CancelLabel is the cancel button text
	CancelLabel = "Отмена"

	// CancelCommand cancels as well when typed
	CancelCommand = "/cancel"

	// ConfirmLabel is the affirmative answer to the delete confirmation
	ConfirmLabel = "Да"
)

// Edit field labels offered in StateAwaitEditField
const (
	EditFieldCodeLabel     = "Код"
	EditFieldHostLabel     = "Хоста"
	EditFieldMapLabel      = "Карту"
	EditFieldGameModeLabel = "Режим"
)

// EditFieldLabels lists the edit field choices in display order
var EditFieldLabels = []string{
	EditFieldCodeLabel,
	EditFieldHostLabel,
	EditFieldMapLabel,
	EditFieldGameModeLabel,
}

// Draft accumulates the fields of a room being created
type Draft struct {
	Code     string
	Host     string
	Map      models.Map
	GameMode models.GameMode
}

// Session is one user's dialogue; it lives in memory only
type Session struct {
	UserID string
	ChatID string
	State  State
	Draft  Draft

	// TargetRoomID is the room being edited
	TargetRoomID string
}

// Input is one turn of user input
type Input struct {
	Text string

	// Target is the room the text names, resolved before stepping; nil when not found
	Target *models.Room

	// Now stamps created rooms
	Now time.Time
}

// EffectKind classifies the outcome of a step
type EffectKind string

const (
	// EffectReprompt means the input was rejected and the same question stands
	EffectReprompt EffectKind = "reprompt"

	// EffectAdvance means the input was accepted and the next question follows
	EffectAdvance EffectKind = "advance"

	// EffectCommit means the dialogue produced a change to apply
	EffectCommit EffectKind = "commit"

	// EffectCancelled means the dialogue was abandoned
	EffectCancelled EffectKind = "cancelled"

	// EffectNotFound means the named room does not exist
	EffectNotFound EffectKind = "not_found"
)

// Effect is what the caller must do after a step
type Effect struct {
	Kind EffectKind

	// State is the state after the step
	State State

	// Commit is set only for EffectCommit
	Commit *Commit
}

// CommitKind names the change a dialogue produced
type CommitKind string

const (
	CommitCreate      CommitKind = "create"
	CommitEdit        CommitKind = "edit"
	CommitDelete      CommitKind = "delete"
	CommitDeleteAll   CommitKind = "delete_all"
	CommitRenew       CommitKind = "renew"
	CommitGrantAdmin  CommitKind = "grant_admin"
	CommitRevokeAdmin CommitKind = "revoke_admin"
	CommitAdminDelete CommitKind = "admin_delete"
	CommitBroadcast   CommitKind = "broadcast"
)

// FieldChange is a single edited field
type FieldChange struct {
	Field models.RoomField
	Value string
}

// Commit carries the data for one change
type Commit struct {
	Kind CommitKind

	// Room is the new room for CommitCreate and the target for CommitAdminDelete
	Room *models.Room

	// RoomID is the target for edit, delete, renew and admin delete
	RoomID string

	// Change is set for CommitEdit
	Change *FieldChange

	// UserID is the subject of an admin grant or revoke
	UserID string

	// Text is the broadcast message
	Text string

	// OwnerID is the user the dialogue belongs to
	OwnerID string
}

// StartInput contains parameters for starting a dialogue
type StartInput struct {
	UserID string
	ChatID string
	State  State
}

// TransitionInput contains parameters for feeding a turn into a dialogue
type TransitionInput struct {
	UserID string
	Text   string
}

// TransitionOutput contains the outcome of a turn
type TransitionOutput struct {
	Effect Effect

	// Session is a copy of the session after the turn
	Session Session
}
