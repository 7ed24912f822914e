package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/storage"
)

// GameModel is the Bubble Tea model for one running game. The engine loop
// ticks on its own goroutine; the model only forwards input, handles host
// keys and repaints on every frame signal.
type GameModel struct {
	engine *engine.Engine
	loop   *engine.Loop
	frames frameSignal
	ctx    context.Context
	host   *host

	screen    *core.Screen
	keyMapper *KeyMapper

	width, height int // Terminal size, 0 until the first resize
	quitting      bool
	backToMenu    bool
	quitOnBack    bool // Standalone play has no menu to return to
}

// NewGameModel creates an engine for game and a model that hosts it.
// The loop starts with Init.
func NewGameModel(game engine.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...engine.Option) (GameModel, error) {
	return newGameModel(context.Background(), game, store, cfg, opts...)
}

// newGameModel is NewGameModel with a parent context. When parent is done
// the game is stopped as if the player had quit: the score is saved and
// the engine shut down.
func newGameModel(parent context.Context, game engine.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...engine.Option) (GameModel, error) {
	e, err := engine.New(game, opts...)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: start %s: %w", game.ID(), err)
	}

	frames := newFrameSignal()
	ctx, cancel := context.WithCancel(parent)
	hst := &host{engine: e, store: store, cancel: cancel}
	hst.detach = context.AfterFunc(parent, hst.stop)
	w, h := game.Size()

	return GameModel{
		engine:    e,
		loop:      engine.NewLoop(e, cfg.TickRate, frames.notify),
		frames:    frames,
		ctx:       ctx,
		host:      hst,
		screen:    core.NewScreen(w, h),
		keyMapper: NewKeyMapper(),
	}, nil
}

// Init starts the engine loop and waits for its first frame.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(
		runLoop(m.ctx, m.loop, m.frames),
		waitFrame(m.frames),
	)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		w, h := m.screen.Width(), m.screen.Height()
		if ev, ok := m.keyMapper.PointerEvent(msg, w, h); ok {
			m.engine.Surface().Dispatch(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameMsg:
		return m, waitFrame(m.frames)

	case loopDoneMsg:
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Host keys are handled here, the rest
// is dispatched to the game through the input surface.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionPause:
		m.loop.TogglePause()
		return m, nil

	case action == core.ActionRestart:
		m.host.saveScore()
		//nolint:errcheck // Setup already succeeded once for this game
		m.engine.NewSession()
		return m, nil

	case action == core.ActionBack:
		m.stop()
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if ev, ok := m.keyMapper.KeyEvent(msg); ok {
		m.engine.Surface().Dispatch(ev)
	}
	return m, nil
}

// stop records the score and shuts the engine down. Safe to call twice.
func (m *GameModel) stop() {
	m.host.stop()
}

// host owns the engine lifetime and score bookkeeping. Every copy of a
// GameModel shares one host, and the parent context may stop it from
// another goroutine.
type host struct {
	engine *engine.Engine
	store  *storage.Store
	cancel context.CancelFunc
	detach func() bool

	mu      sync.Mutex
	saved   string // Session whose score is already stored
	stopped bool
}

func (h *host) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	h.detach()
	h.saveLocked()
	h.cancel()
	h.engine.Shutdown()
}

// saveScore stores the current session's score once.
func (h *host) saveScore() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.saveLocked()
}

func (h *host) saveLocked() {
	session := h.engine.SessionID()
	if h.store == nil || session == h.saved {
		return
	}
	score := h.engine.Score()
	if score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	h.store.SaveScore(h.engine.Game().ID(), score, h.engine.Time(), session)
	h.saved = session
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.engine.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.engine.Game().ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the last completed tick plus a status line.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	w, h := m.screen.Width(), m.screen.Height()
	if m.width > 0 && (m.width < w || m.height < h+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h+1, m.width, m.height)
	}

	m.engine.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	return b.String()
}

func (m GameModel) status() string {
	state := fmt.Sprintf("%s  level %d  tick %d", m.engine.Game().Title(), m.engine.Level()+1, m.engine.Time())
	if m.loop.Paused() {
		state += "  PAUSED"
	}
	return state + "  |  P: pause  R: restart  B: back  Q: quit"
}

// Engine returns the hosted engine.
func (m GameModel) Engine() *engine.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run hosts game in a full-screen Bubble Tea program until the player
// quits or goes back.
func Run(game engine.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...engine.Option) error {
	model, err := NewGameModel(game, store, cfg, opts...)
	if err != nil {
		return err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer follows without a button held
	)

	final, err := p.Run()
	if gm, ok := final.(GameModel); ok {
		gm.stop()
	} else {
		model.stop()
	}
	return err
}
