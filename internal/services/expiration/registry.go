package expiration

import (
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Handle controls one running deletion task
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func newHandle(cancel context.CancelFunc) *Handle {
	return &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Done is closed once the task has exited
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Registry maps room IDs to their pending deletion task.
// Every operation is a single shard-locked map call and never blocks on a task.
type Registry struct {
	handles cmap.ConcurrentMap[string, *Handle]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		handles: cmap.New[*Handle](),
	}
}

// Install stores h for the room, cancelling any handle it replaces
func (r *Registry) Install(roomID string, h *Handle) {
	r.handles.Upsert(roomID, h, func(exists bool, current, next *Handle) *Handle {
		if exists && current != next {
			current.cancel()
		}
		return next
	})
}

// Take removes and returns the room's handle
func (r *Registry) Take(roomID string) (*Handle, bool) {
	return r.handles.Pop(roomID)
}

// Release removes the room's handle only if it is still h.
// A task that fails to release its own handle has been cancelled or replaced.
func (r *Registry) Release(roomID string, h *Handle) bool {
	return r.handles.RemoveCb(roomID, func(_ string, current *Handle, exists bool) bool {
		return exists && current == h
	})
}

// Has reports whether the room has a pending task
func (r *Registry) Has(roomID string) bool {
	return r.handles.Has(roomID)
}

// Len returns the number of pending tasks
func (r *Registry) Len() int {
	return r.handles.Count()
}

// Drain removes every handle and cancels it, returning what was removed
func (r *Registry) Drain() []*Handle {
	var drained []*Handle
	for _, roomID := range r.handles.Keys() {
		if h, ok := r.handles.Pop(roomID); ok {
			h.cancel()
			drained = append(drained, h)
		}
	}
	return drained
}
