package carousel

import (
	"sync"
	"time"

	"digital-menu/internal/pkg/clock"
)

// frameThrottle coalesces scroll positions so apply runs at most once per frame
// with the latest value.
type frameThrottle struct {
	mu        sync.Mutex
	clock     clock.Clock
	frame     time.Duration
	apply     func(y float64)
	pending   float64
	scheduled bool
	timer     clock.Timer
	stopped   bool
}

func newFrameThrottle(clk clock.Clock, frame time.Duration, apply func(y float64)) *frameThrottle {
	return &frameThrottle{clock: clk, frame: frame, apply: apply}
}

func (f *frameThrottle) Observe(y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.pending = y
	if f.scheduled {
		return
	}
	f.scheduled = true
	f.timer = f.clock.AfterFunc(f.frame, f.flush)
}

func (f *frameThrottle) flush() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	y := f.pending
	f.scheduled = false
	f.timer = nil
	f.mu.Unlock()

	f.apply(y)
}

func (f *frameThrottle) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
