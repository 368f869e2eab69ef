package conversation

// ConversationError is a custom error type for dialogue errors
type ConversationError string

// Error implements the error interface
func (e ConversationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    ConversationError = "config cannot be nil"
	ErrNilRoomRepo  ConversationError = "room repository cannot be nil"
	ErrEmptyUserID  ConversationError = "user ID cannot be empty"
	ErrInvalidState ConversationError = "dialogues cannot start in this state"
)
