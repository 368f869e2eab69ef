package rooms

// RoomsError is a custom error type for room service errors
type RoomsError string

// Error implements the error interface
func (e RoomsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       RoomsError = "config cannot be nil"
	ErrNilRoomRepo     RoomsError = "room repository cannot be nil"
	ErrNilUserRepo     RoomsError = "user repository cannot be nil"
	ErrNilChatRepo     RoomsError = "chat repository cannot be nil"
	ErrNilConversation RoomsError = "conversation service cannot be nil"
	ErrNilScheduler    RoomsError = "scheduler cannot be nil"
	ErrNilNotifier     RoomsError = "notifier cannot be nil"
	ErrNilMessages     RoomsError = "messaging service cannot be nil"
	ErrEmptyUserID     RoomsError = "user ID cannot be empty"
	ErrUnknownCommand  RoomsError = "unknown command"
	ErrRoomNotFound    RoomsError = "room not found"
)
