package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source for services that read the time or wait on timers.
// clockwork's fake clock satisfies it in tests.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) clockwork.Timer
}

// New returns the system clock
func New() Clock {
	return clockwork.NewRealClock()
}
