package expiration

import (
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/common/clock"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
)

const (
	// DefaultLifetime is how long a room stays listed without a renewal
	DefaultLifetime = 2 * time.Hour

	// DefaultWarningWindow is how long before the deletion the owner is warned
	DefaultWarningWindow = 5 * time.Minute
)

// Config holds configuration for the scheduler
type Config struct {
	// RoomRepo is read before every notice and delete
	RoomRepo room.Repository

	// Notifier sends the warning and deletion notices
	Notifier Notifier

	// Messages renders the notices
	Messages Messages

	// Clock drives the timers; defaults to the real clock
	Clock clock.Clock

	// Registry tracks the pending tasks; defaults to an empty one
	Registry *Registry

	// Metrics defaults to unregistered collectors
	Metrics *Metrics

	// Lifetime defaults to DefaultLifetime
	Lifetime time.Duration

	// WarningWindow defaults to DefaultWarningWindow
	WarningWindow time.Duration
}

// ScheduleInput contains parameters for scheduling a deletion
type ScheduleInput struct {
	RoomID string
	Delay  time.Duration
}

// CancelInput contains parameters for cancelling a deletion
type CancelInput struct {
	RoomID string
}

// RescheduleInput contains parameters for restarting a room's lifetime
type RescheduleInput struct {
	RoomID string
}

// RestoreAllOutput reports what RestoreAll did
type RestoreAllOutput struct {
	// Scheduled counts rooms that still had time left
	Scheduled int

	// Expired counts rooms deleted because their lifetime ran out while the bot was down
	Expired int
}

// NotifyInput contains parameters for sending a message
type NotifyInput struct {
	ChatID string
	Text   string
}
