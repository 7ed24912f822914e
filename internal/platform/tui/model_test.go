package tui

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/input"
	"github.com/vovakirdan/entity-arcade/internal/storage"
)

// coin grants a point every tick and listens for any key.
type coin struct {
	h    engine.Hooks
	keys atomic.Int32
	pos  core.Vec
}

func (c *coin) Shape(int) core.Shape          { return nil }
func (c *coin) Tick(int)                      { c.h.GrantPoints(1) }
func (c *coin) Active() bool                  { return true }
func (c *coin) Receive(engine.Entity, string) {}
func (c *coin) Z() int                        { return 0 }

func (c *coin) Render(dst *core.Screen, _ int) {
	dst.Plot(c.pos, '$', core.ColorYellow)
}

type endless struct{}

func (endless) Start(int)     {}
func (endless) Done(int) bool { return false }
func (endless) Tick(int)      {}

type coinGame struct {
	coin      *coin
	shutdowns atomic.Int32
}

func (g *coinGame) ID() string                { return "coins" }
func (g *coinGame) Title() string             { return "Coins" }
func (g *coinGame) Size() (width, height int) { return 12, 6 }
func (g *coinGame) Shutdown()                 { g.shutdowns.Add(1) }

func (g *coinGame) Setup(h engine.Hooks) []engine.Level {
	g.coin = &coin{h: h, pos: core.V(2, 2)}
	h.Surface().Listen(func(ev input.Event) {
		if ev.Kind == input.KindKey {
			g.coin.keys.Add(1)
		}
	})
	h.Add(g.coin)
	return []engine.Level{endless{}}
}

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *coinGame) {
	t.Helper()
	g := &coinGame{}
	m, err := NewGameModel(g, store, core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.stop)
	return m, g
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelForwardsGameKeys(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(t, m, runeKey("a"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = update(t, m, runeKey("p")) // Host key, not forwarded

	if got := g.coin.keys.Load(); got != 2 {
		t.Errorf("game saw %d keys, expected 2", got)
	}
	if !m.loop.Paused() {
		t.Error("p should pause the loop")
	}
}

func TestGameModelPointerTracked(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion})
	x, y, ok := m.Engine().Pointer()
	if !ok || x != 5 || y != 3 {
		t.Errorf("Pointer() = (%d, %d, %v), expected (5, 3, true)", x, y, ok)
	}

	// Outside the viewport
	m = update(t, m, tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionMotion})
	if x, _, _ := m.Engine().Pointer(); x != 5 {
		t.Errorf("pointer moved to %d from outside the viewport", x)
	}
}

func TestGameModelRestartSavesScore(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, store)

	for range 7 {
		m.Engine().Tick()
	}
	first := m.Engine().SessionID()

	m = update(t, m, runeKey("r"))
	if m.Engine().SessionID() == first {
		t.Fatal("restart should start a new session")
	}
	if m.Engine().Time() != 0 || m.Engine().Score() != 0 {
		t.Errorf("new session at time %d score %d", m.Engine().Time(), m.Engine().Score())
	}

	scores, err := store.TopScores("coins", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 7 || scores[0].Ticks != 7 || scores[0].SessionID != first {
		t.Errorf("saved %+v", scores[0])
	}

	// Stopping the empty session saves nothing more
	m.stop()
	if scores, _ := store.TopScores("coins", 10); len(scores) != 1 {
		t.Errorf("saved %d scores after stop, expected 1", len(scores))
	}
}

func TestGameModelSavesOncePerSession(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, store)

	m.Engine().Tick()
	m.stop()
	m.stop()

	if scores, _ := store.TopScores("coins", 10); len(scores) != 1 {
		t.Errorf("saved %d scores, expected 1", len(scores))
	}
}

func TestGameModelStopsWhenParentDone(t *testing.T) {
	store := openStore(t)
	parent, disconnect := context.WithCancel(context.Background())
	g := &coinGame{}
	m, err := newGameModel(parent, g, store, core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.stop)

	for range 4 {
		m.Engine().Tick()
	}
	session := m.Engine().SessionID()

	disconnect()
	select {
	case <-m.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("loop context still live after the parent was cancelled")
	}

	// The stop runs on its own goroutine, wait for the shutdown it ends with
	deadline := time.Now().Add(time.Second)
	for g.shutdowns.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if got := g.shutdowns.Load(); got != 1 {
		t.Fatalf("game shut down %d times, expected 1", got)
	}

	scores, err := store.TopScores("coins", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 4 || scores[0].SessionID != session {
		t.Errorf("saved %+v, expected one score of 4 for %s", scores, session)
	}

	// A later explicit stop is a no-op
	m.stop()
	if got := g.shutdowns.Load(); got != 1 {
		t.Errorf("game shut down %d times after a second stop", got)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey("b"))
	gm := next.(GameModel)
	if !gm.BackToMenu() || cmd != nil {
		t.Error("back should return to the menu without quitting")
	}
	if gm.ctx.Err() == nil {
		t.Error("back should stop the loop")
	}

	m, _ = newTestModel(t, nil)
	m.quitOnBack = true
	if _, cmd := m.Update(runeKey("b")); cmd == nil {
		t.Error("standalone back should quit the program")
	}

	m, _ = newTestModel(t, nil)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "$") {
		t.Errorf("view missing setup entity:\n%s", view)
	}
	if !strings.Contains(view, "Coins") {
		t.Errorf("view missing status line:\n%s", view)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 8, Height: 3})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal should be reported")
	}
}

func TestGameModelLoopDrivesFrames(t *testing.T) {
	m, _ := newTestModel(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan tea.Msg, 1)
	go func() { done <- runLoop(ctx, m.loop, m.frames)() }()

	msg := waitFrame(m.frames)()
	frame, ok := msg.(FrameMsg)
	if !ok || frame.Tick < 1 {
		t.Fatalf("waitFrame() = %#v, expected a frame", msg)
	}

	cancel()
	if _, ok := (<-done).(loopDoneMsg); !ok {
		t.Error("runLoop should report loopDoneMsg")
	}
	if msg := waitFrame(m.frames)(); msg != nil {
		if _, ok := msg.(FrameMsg); !ok {
			t.Errorf("waitFrame after close = %#v", msg)
		}
	}
}

func TestFrameSignalCoalesces(t *testing.T) {
	f := newFrameSignal()
	f.notify(1)
	f.notify(2) // Dropped, a frame is already pending

	if msg := waitFrame(f)(); msg != (FrameMsg{Tick: 1}) {
		t.Errorf("waitFrame() = %#v, expected tick 1", msg)
	}

	close(f)
	if msg := waitFrame(f)(); msg != nil {
		t.Errorf("waitFrame on closed signal = %#v, expected nil", msg)
	}
}
