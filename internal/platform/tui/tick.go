// Package tui provides the Bubble Tea host for the entity engine.
// It drives the engine loop, routes keys and mouse into the input surface,
// and repaints whenever the loop signals a finished tick.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entity-arcade/internal/engine"
)

// FrameMsg reports that the engine finished a tick and the view is stale.
type FrameMsg struct {
	Tick int
}

// loopDoneMsg is delivered once the loop goroutine has returned.
type loopDoneMsg struct {
	err error
}

// frameSignal is the repaint channel between the loop and the UI. It holds
// at most one pending frame: ticks that finish while a repaint is already
// pending are coalesced into it.
type frameSignal chan int

func newFrameSignal() frameSignal {
	return make(frameSignal, 1)
}

// notify is the loop's OnFrame callback. It never blocks the loop.
func (f frameSignal) notify(t int) {
	select {
	case f <- t:
	default:
	}
}

// waitFrame returns a command that waits for the next frame signal.
func waitFrame(f frameSignal) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-f
		if !ok {
			return nil
		}
		return FrameMsg{Tick: t}
	}
}

// runLoop returns a command that runs l until ctx is cancelled and then
// closes the frame signal, releasing any pending waitFrame.
func runLoop(ctx context.Context, l *engine.Loop, f frameSignal) tea.Cmd {
	return func() tea.Msg {
		err := l.Run(ctx)
		close(f)
		return loopDoneMsg{err: err}
	}
}
