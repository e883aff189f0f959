package client

import (
	"context"
	"sync"
	"time"
)

// ResendWindow is how long callers wait before offering an OTP resend.
// Purely caller-side policy; the backend accepts resends at any time.
const ResendWindow = 60 * time.Second

// Countdown emits the seconds remaining on a one-second tick until it hits
// zero or is stopped. The owner that starts it must call Stop when it goes
// away; an unreleased countdown leaks its ticker goroutine.
type Countdown struct {
	interval  time.Duration
	remaining int
	ticks     chan int
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewCountdown creates a countdown over the given window, rounded down to
// whole seconds.
func NewCountdown(window time.Duration) *Countdown {
	return &Countdown{
		interval:  time.Second,
		remaining: int(window / time.Second),
		ticks:     make(chan int),
		stop:      make(chan struct{}),
	}
}

// Start runs the tick loop until zero, Stop, or context cancellation.
// Run it on its own goroutine and receive from C.
func (c *Countdown) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(c.ticks)

	for c.remaining > 0 {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-ticker.C:
			c.remaining--
			select {
			case c.ticks <- c.remaining:
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}

// C delivers the remaining seconds after each tick. Closed when the
// countdown finishes or is released.
func (c *Countdown) C() <-chan int {
	return c.ticks
}

// Stop releases the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
