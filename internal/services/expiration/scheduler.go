package expiration

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/common/clock"
	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
)

// scheduler implements the Scheduler interface with one goroutine per pending room
type scheduler struct {
	roomRepo      room.Repository
	notifier      Notifier
	messages      Messages
	clock         clock.Clock
	registry      *Registry
	metrics       *Metrics
	lifetime      time.Duration
	warningWindow time.Duration

	// mu guards stopped against tasks being added while Stop waits
	mu      sync.RWMutex
	stopped bool
	baseCtx context.Context
	stopAll context.CancelFunc
	tasks   sync.WaitGroup
}

// New creates a new scheduler
func New(cfg *Config) (*scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	lifetime := cfg.Lifetime
	if lifetime == 0 {
		lifetime = DefaultLifetime
	}
	if lifetime < 0 {
		return nil, ErrInvalidLifetime
	}

	warningWindow := cfg.WarningWindow
	if warningWindow == 0 {
		warningWindow = DefaultWarningWindow
	}
	if warningWindow < 0 || warningWindow >= lifetime {
		return nil, ErrInvalidWarningWindow
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	registry := cfg.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	baseCtx, stopAll := context.WithCancel(context.Background())

	return &scheduler{
		roomRepo:      cfg.RoomRepo,
		notifier:      cfg.Notifier,
		messages:      cfg.Messages,
		clock:         clk,
		registry:      registry,
		metrics:       metrics,
		lifetime:      lifetime,
		warningWindow: warningWindow,
		baseCtx:       baseCtx,
		stopAll:       stopAll,
	}, nil
}

// Schedule replaces any pending deletion of the room with a new one
func (s *scheduler) Schedule(ctx context.Context, input *ScheduleInput) error {
	if input == nil || input.RoomID == "" {
		return ErrEmptyRoomID
	}

	// The previous task must have observed its cancellation before the new one exists
	if err := s.Cancel(ctx, &CancelInput{RoomID: input.RoomID}); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		return ErrSchedulerStopped
	}

	taskCtx, cancel := context.WithCancel(s.baseCtx)
	h := newHandle(cancel)
	s.registry.Install(input.RoomID, h)
	s.metrics.Scheduled.Inc()
	s.metrics.Pending.Set(float64(s.registry.Len()))

	s.tasks.Add(1)
	go s.run(taskCtx, input.RoomID, input.Delay, h)

	slog.Info("Scheduled room deletion",
		"room_id", input.RoomID,
		"delay", input.Delay,
	)

	return nil
}

// Cancel drops the pending deletion of a room and waits for its task to exit
func (s *scheduler) Cancel(ctx context.Context, input *CancelInput) error {
	if input == nil || input.RoomID == "" {
		return ErrEmptyRoomID
	}

	h, ok := s.registry.Take(input.RoomID)
	if !ok {
		return nil
	}

	h.cancel()
	s.metrics.Cancelled.Inc()
	s.metrics.Pending.Set(float64(s.registry.Len()))

	slog.Info("Cancelled room deletion", "room_id", input.RoomID)

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reschedule restarts the full lifetime of a room
func (s *scheduler) Reschedule(ctx context.Context, input *RescheduleInput) error {
	if input == nil || input.RoomID == "" {
		return ErrEmptyRoomID
	}

	return s.Schedule(ctx, &ScheduleInput{
		RoomID: input.RoomID,
		Delay:  s.lifetime,
	})
}

// RestoreAll schedules every stored room for what is left of its lifetime
func (s *scheduler) RestoreAll(ctx context.Context) (*RestoreAllOutput, error) {
	rooms, err := s.roomRepo.ListRooms(ctx, &room.ListRoomsInput{})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	output := &RestoreAllOutput{}

	for _, r := range rooms.Rooms {
		remaining := s.lifetime - now.Sub(r.CreatedAt)

		// The warning window was missed while the bot was down
		if remaining <= 0 {
			if s.expire(ctx, r.ID, sourceRestore) {
				output.Expired++
			}
			continue
		}

		if err := s.Schedule(ctx, &ScheduleInput{
			RoomID: r.ID,
			Delay:  remaining,
		}); err != nil {
			return output, err
		}
		output.Scheduled++
	}

	slog.Info("Restored room deletions",
		"scheduled", output.Scheduled,
		"expired", output.Expired,
	)

	return output, nil
}

// Stop cancels every pending deletion and waits for the tasks to exit
func (s *scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.stopAll()
	s.mu.Unlock()

	s.registry.Drain()
	s.metrics.Pending.Set(0)

	done := make(chan struct{})
	go func() {
		s.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the body of one deletion task
func (s *scheduler) run(ctx context.Context, roomID string, delay time.Duration, h *Handle) {
	defer s.tasks.Done()
	defer close(h.done)

	if delay > s.warningWindow {
		if !s.sleep(ctx, delay-s.warningWindow) {
			return
		}
		s.warn(ctx, roomID)
		delay = s.warningWindow
	}

	if !s.sleep(ctx, delay) {
		return
	}

	// Releasing the handle commits the deletion; a Cancel that took it first wins
	if !s.registry.Release(roomID, h) {
		return
	}
	s.metrics.Pending.Set(float64(s.registry.Len()))

	s.expire(context.WithoutCancel(ctx), roomID, sourceTimer)
}

// sleep waits for d, returning false if ctx is cancelled first
func (s *scheduler) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := s.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}

// warn tells the owner the room is about to go, best effort
func (s *scheduler) warn(ctx context.Context, roomID string) {
	r, err := s.roomRepo.GetRoom(ctx, &room.GetRoomInput{RoomID: roomID})
	if err != nil {
		if !errors.Is(err, room.ErrRoomNotFound) && ctx.Err() == nil {
			slog.Warn("Failed to load room for expiry warning",
				"room_id", roomID,
				"error", err,
			)
		}
		return
	}

	if err := s.notify(ctx, r, s.messages.ExpiryWarning(r, s.warningWindow)); err != nil {
		return
	}
	s.metrics.Warnings.Inc()
}

// expire deletes the room if it still exists and reports whether it did.
// Timer deletions notify the owner; restore deletions do not.
func (s *scheduler) expire(ctx context.Context, roomID, source string) bool {
	r, err := s.roomRepo.GetRoom(ctx, &room.GetRoomInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			slog.Debug("Room already gone at expiry", "room_id", roomID)
			return false
		}
		slog.Error("Failed to load room for expiry",
			"room_id", roomID,
			"error", err,
		)
		return false
	}

	if err := s.roomRepo.DeleteRoom(ctx, &room.DeleteRoomInput{RoomID: roomID}); err != nil {
		if !errors.Is(err, room.ErrRoomNotFound) {
			slog.Error("Failed to delete expired room",
				"room_id", roomID,
				"error", err,
			)
		}
		return false
	}

	s.metrics.Expired.WithLabelValues(source).Inc()
	slog.Info("Room expired",
		"room_id", roomID,
		"code", r.Code,
		"source", source,
	)

	if source == sourceTimer {
		_ = s.notify(ctx, r, s.messages.ExpiryNotice(r))
	}

	return true
}

// notify sends text to the room's chat and logs a failure
func (s *scheduler) notify(ctx context.Context, r *models.Room, text string) error {
	err := s.notifier.Notify(ctx, &NotifyInput{
		ChatID: r.Chat.ChatID,
		Text:   text,
	})
	if err != nil {
		slog.Warn("Failed to notify room owner",
			"room_id", r.ID,
			"chat_id", r.Chat.ChatID,
			"error", err,
		)
	}
	return err
}
