package scheduler

import (
	"sync"
	"time"
)

// OneShot runs a single callback after a delay. Scheduling again replaces any
// pending callback; Cancel drops it. This backs the auto-open of the purchase
// surface after a buy-gold chip selection, so the delay is explicit and
// cancellable instead of a bare timer.
type OneShot struct {
	mu    sync.Mutex
	timer *time.Timer
}

func NewOneShot() *OneShot {
	return &OneShot{}
}

// Schedule arranges for fn to run once after delay on a background goroutine.
// A previously scheduled callback that has not fired yet is cancelled.
func (s *OneShot) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if delay < 0 {
		delay = 0
	}
	s.timer = time.AfterFunc(delay, fn)
}

// Cancel drops a pending callback. It is idempotent and a no-op when nothing
// is scheduled or the callback already fired.
func (s *OneShot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
