package engine

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/input"
)

// ErrNoLevels is returned when a game's Setup yields an empty level list.
var ErrNoLevels = errors.New("engine: game returned no levels")

// DefaultFadeTicks is the length of the message fade-out window.
const DefaultFadeTicks = 25

// Phase reports what the engine is doing right now.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseTicking
	PhaseRendering
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTicking:
		return "ticking"
	case PhaseRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithFadeTicks sets the message fade window. Non-positive values keep the default.
func WithFadeTicks(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.fade = n
		}
	}
}

// Engine owns the entity registry, the frame clock and the level sequence
// for one game. A single mutex serializes ticks, renders and session resets.
type Engine struct {
	game    Game
	surface *input.Surface
	log     *log.Logger
	fade    int

	mu      sync.Mutex
	world   *world
	clock   int
	levels  []Level
	cursor  int
	score   int
	msg     message
	session string
	lastH   Handle // survives resets so stale handles never resolve

	phase atomic.Int32

	// Last pointer position, written by the input goroutine.
	pointerX, pointerY atomic.Int32
	pointerSeen        atomic.Bool

	shutdown sync.Once
}

// New builds an engine for g and starts its first session.
func New(g Game, opts ...Option) (*Engine, error) {
	w, h := g.Size()
	e := &Engine{
		game:    g,
		surface: input.NewSurface(w, h),
		log:     log.New(io.Discard),
		fade:    DefaultFadeTicks,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.NewSession(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewSession discards all session state and asks the game for a fresh set
// of entities and levels. The first level is started at tick 0.
func (e *Engine) NewSession() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.world = newWorld()
	e.clock = 0
	e.score = 0
	e.msg = message{}
	e.levels = nil
	e.cursor = 0
	e.session = uuid.NewString()

	e.surface.Reset()
	e.pointerSeen.Store(false)
	e.surface.Listen(e.trackPointer)

	h := hooks{e}
	levels := e.game.Setup(h)
	if len(levels) == 0 {
		return fmt.Errorf("%w: %s", ErrNoLevels, e.game.ID())
	}
	e.levels = levels
	e.levels[0].Start(0)
	e.log.Debug("level started", "level", 0, "tick", 0)

	// Setup entities are visible to the very first render.
	e.world.drain(-1)

	e.log.Info("session started", "game", e.game.ID(), "session", e.session)
	return nil
}

// Tick advances the simulation by one step and returns the new clock value.
func (e *Engine) Tick() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phase.Store(int32(PhaseTicking))
	defer e.phase.Store(int32(PhaseIdle))

	e.clock++
	t := e.clock

	e.stepLevel(t)
	e.world.step(t)
	e.world.drain(t)

	return t
}

// Render paints every active entity into dst using the clock of the last
// completed tick, then draws the score and message overlay.
func (e *Engine) Render(dst *core.Screen) {
	e.mu.Lock()
	e.phase.Store(int32(PhaseRendering))

	dst.Clear()
	e.world.paint(dst, e.clock)
	ov := overlay{score: e.score, msg: e.msg, clock: e.clock}

	e.phase.Store(int32(PhaseIdle))
	e.mu.Unlock()

	x, y, ok := e.Pointer()
	ov.pointer = ok
	ov.px, ov.py = x, y
	ov.draw(dst, e.fade)
}

// Time returns the current clock value.
func (e *Engine) Time() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Len returns the number of registered entities, not counting pending ones.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.len()
}

// SessionID returns the identifier of the current session.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Level returns the index of the current level.
func (e *Engine) Level() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor
}

// Phase returns what the engine is doing. It never blocks.
func (e *Engine) Phase() Phase {
	return Phase(e.phase.Load())
}

// Game returns the game this engine runs.
func (e *Engine) Game() Game {
	return e.game
}

// Surface returns the input surface the host dispatches events to.
func (e *Engine) Surface() *input.Surface {
	return e.surface
}

// Pointer returns the last pointer position seen on the surface.
func (e *Engine) Pointer() (x, y int, ok bool) {
	if !e.pointerSeen.Load() {
		return 0, 0, false
	}
	return int(e.pointerX.Load()), int(e.pointerY.Load()), true
}

// Shutdown releases the game. Only the first call has an effect.
func (e *Engine) Shutdown() {
	e.shutdown.Do(func() {
		e.game.Shutdown()
		e.log.Info("engine shut down", "game", e.game.ID())
	})
}

func (e *Engine) trackPointer(ev input.Event) {
	if ev.Kind != input.KindPointer {
		return
	}
	e.pointerX.Store(int32(ev.X))
	e.pointerY.Store(int32(ev.Y))
	e.pointerSeen.Store(true)
}
