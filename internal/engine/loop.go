package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Loop drives an engine from a fixed-interval timer. After every tick it
// calls OnFrame, which the host uses as its repaint signal.
type Loop struct {
	engine   *Engine
	interval time.Duration
	onFrame  func(t int)
	paused   atomic.Bool
}

// NewLoop creates a loop ticking e tickRate times per second.
func NewLoop(e *Engine, tickRate int, onFrame func(t int)) *Loop {
	if tickRate <= 0 {
		tickRate = 25
	}
	return &Loop{
		engine:   e,
		interval: time.Second / time.Duration(tickRate),
		onFrame:  onFrame,
	}
}

// Interval returns the wall-clock time between ticks.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// SetPaused stops or resumes ticking without leaving Run.
func (l *Loop) SetPaused(p bool) {
	l.paused.Store(p)
}

// TogglePause flips the paused state and returns the new value.
func (l *Loop) TogglePause() bool {
	for {
		old := l.paused.Load()
		if l.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Run ticks the engine until ctx is cancelled and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.paused.Load() {
				continue
			}
			t := l.engine.Tick()
			if l.onFrame != nil {
				l.onFrame(t)
			}
		}
	}
}
