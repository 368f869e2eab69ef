package expiration

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/lobbyboard/internal/services/expiration Scheduler,Notifier,Messages

import (
	"context"
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// Scheduler owns one cancellable delayed deletion per live room
type Scheduler interface {
	// Schedule replaces any pending deletion of the room with one that fires after Delay.
	// A zero or negative delay deletes right away.
	Schedule(ctx context.Context, input *ScheduleInput) error

	// Cancel drops the pending deletion of a room, waiting until its task has stopped.
	// Cancelling a room with nothing pending is a no-op.
	Cancel(ctx context.Context, input *CancelInput) error

	// Reschedule restarts the full lifetime of a room
	Reschedule(ctx context.Context, input *RescheduleInput) error

	// RestoreAll schedules every stored room from its creation time; run once at startup
	RestoreAll(ctx context.Context) (*RestoreAllOutput, error)

	// Stop cancels every pending deletion and waits for the tasks to exit
	Stop(ctx context.Context) error
}

// Notifier delivers a text message to a chat
type Notifier interface {
	Notify(ctx context.Context, input *NotifyInput) error
}

// Messages renders the notices sent to room owners
type Messages interface {
	// ExpiryWarning tells the owner the room goes away after remaining
	ExpiryWarning(room *models.Room, remaining time.Duration) string

	// ExpiryNotice tells the owner the room was removed
	ExpiryNotice(room *models.Room) string
}
