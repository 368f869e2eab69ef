package expiration

// ExpirationError is a custom error type for scheduler errors
type ExpirationError string

// Error implements the error interface
func (e ExpirationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            ExpirationError = "config cannot be nil"
	ErrNilRoomRepo          ExpirationError = "room repository cannot be nil"
	ErrNilNotifier          ExpirationError = "notifier cannot be nil"
	ErrNilMessages          ExpirationError = "messages cannot be nil"
	ErrInvalidLifetime      ExpirationError = "lifetime must be positive"
	ErrInvalidWarningWindow ExpirationError = "warning window must be shorter than the lifetime"
	ErrEmptyRoomID          ExpirationError = "room ID cannot be empty"
	ErrSchedulerStopped     ExpirationError = "scheduler is stopped"
)
