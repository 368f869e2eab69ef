package messaging

import (
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// MessageID names a catalog entry
type MessageID string

const (
	MessageStart         MessageID = "start"
	MessageHelp          MessageID = "help"
	MessageRules         MessageID = "rules"
	MessageAdminHelp     MessageID = "admin_help"
	MessageCancelled     MessageID = "cancelled"
	MessageIdle          MessageID = "idle"
	MessageNoRights      MessageID = "no_rights"
	MessageInternalError MessageID = "internal_error"
	MessageUsageCode     MessageID = "usage_code"

	// Dialogue prompts
	MessagePromptCode         MessageID = "prompt_code"
	MessagePromptHost         MessageID = "prompt_host"
	MessagePromptMap          MessageID = "prompt_map"
	MessagePromptGameMode     MessageID = "prompt_game_mode"
	MessagePromptRoom         MessageID = "prompt_room"
	MessagePromptEditField    MessageID = "prompt_edit_field"
	MessagePromptEditValue    MessageID = "prompt_edit_value"
	MessagePromptEditMap      MessageID = "prompt_edit_map"
	MessagePromptEditGameMode MessageID = "prompt_edit_game_mode"
	MessagePromptReplaceRoom  MessageID = "prompt_replace_room"
	MessagePromptAdminGrant   MessageID = "prompt_admin_grant"
	MessagePromptAdminRevoke  MessageID = "prompt_admin_revoke"
	MessagePromptBroadcast    MessageID = "prompt_broadcast"

	// Rejected input
	MessageErrorCode           MessageID = "error_code"
	MessageErrorHost           MessageID = "error_host"
	MessageErrorOption         MessageID = "error_option"
	MessageErrorEdit           MessageID = "error_edit"
	MessageErrorUserID         MessageID = "error_user_id"
	MessageErrorBroadcastEmpty MessageID = "error_broadcast_empty"

	// Results
	MessageRoomAdded      MessageID = "room_added"
	MessageRoomEdited     MessageID = "room_edited"
	MessageRoomDeleted    MessageID = "room_deleted"
	MessageRoomDeletedAll MessageID = "room_deleted_all"
	MessageRoomRenewed    MessageID = "room_renewed"
	MessageRoomNotFound   MessageID = "room_not_found"
	MessageRoomsEmpty     MessageID = "rooms_empty"
	MessageRoomsHeader    MessageID = "rooms_header"
	MessageRoomsItem      MessageID = "rooms_item"
	MessageRoomsFooter    MessageID = "rooms_footer"

	// Administration
	MessageAdminsHeader     MessageID = "admins_header"
	MessageAdminsItem       MessageID = "admins_item"
	MessageAdminsEmpty      MessageID = "admins_empty"
	MessageAdminGranted     MessageID = "admin_granted"
	MessageAdminRevoked     MessageID = "admin_revoked"
	MessageAdminRoomDeleted MessageID = "admin_room_deleted"
	MessageAdminOwnerNotice MessageID = "admin_owner_notice"
	MessageBroadcastSent    MessageID = "broadcast_sent"

	// Subscriptions and ratings
	MessageSubscribed        MessageID = "subscribed"
	MessageAlreadySubscribed MessageID = "already_subscribed"
	MessageUnsubscribed      MessageID = "unsubscribed"
	MessageNotSubscribed     MessageID = "not_subscribed"
	MessageSubscriberNewRoom MessageID = "subscriber_new_room"
	MessageRated             MessageID = "rated"
	MessageRateSelf          MessageID = "rate_self"

	// Expiry
	MessageExpiryWarning MessageID = "expiry_warning"
	MessageExpiryNotice  MessageID = "expiry_notice"

	// Units
	MessageDurationHours   MessageID = "duration_hours"
	MessageDurationMinutes MessageID = "duration_minutes"
)

// DefaultLanguage is used when the configured language has no catalog entry
const DefaultLanguage = "ru"

// Config holds configuration for the messaging service
type Config struct {
	// Language is a BCP 47 tag; defaults to DefaultLanguage
	Language string

	// Lifetime and WarningWindow are quoted in the help text
	Lifetime      time.Duration
	WarningWindow time.Duration
}

// RoomListing is one line of the room list
type RoomListing struct {
	Room     *models.Room
	Likes    int
	Dislikes int
}
