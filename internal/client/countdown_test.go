package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_TicksDownToZeroAndCloses(t *testing.T) {
	cd := NewCountdown(3 * time.Second)
	cd.interval = time.Millisecond // speed up for the test

	go cd.Start(context.Background())

	var seen []int
	for remaining := range cd.C() {
		seen = append(seen, remaining)
	}
	assert.Equal(t, []int{2, 1, 0}, seen)
}

func TestCountdown_StopReleasesTheChannel(t *testing.T) {
	cd := NewCountdown(ResendWindow)
	cd.interval = time.Millisecond

	go cd.Start(context.Background())

	// consume a couple of ticks, then tear the owner down
	<-cd.C()
	<-cd.C()
	cd.Stop()
	cd.Stop() // idempotent

	// in-flight ticks may still be delivered; the channel must close shortly after
	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-cd.C():
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("countdown channel not released after Stop")
		}
	}
}

func TestCountdown_ContextCancellation(t *testing.T) {
	cd := NewCountdown(ResendWindow)
	cd.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cd.Start(ctx)
		close(done)
	}()

	<-cd.C()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown did not observe context cancellation")
	}
}

func TestCountdown_ZeroWindowClosesImmediately(t *testing.T) {
	cd := NewCountdown(0)
	go cd.Start(context.Background())

	select {
	case _, open := <-cd.C():
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("zero-window countdown did not close")
	}
}
