// Package engine implements the simulation core: a Z-ordered entity
// registry with deferred insertion and removal, the per-tick update pass,
// the render pass, the shape collision query and level sequencing.
//
// Concrete games plug in through the Game, Level and Entity contracts and
// talk back to the engine only through Hooks.
package engine

import (
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/input"
)

// Entity is the polymorphic unit of simulation.
//
// Implementations must be comparable (in practice, pointer types): the
// engine identifies entities with ==.
type Entity interface {
	// Shape returns the collision footprint at tick t. It must be stable
	// for a fixed t. A nil shape never collides.
	Shape(t int) core.Shape

	// Render draws the entity as it looks at tick t.
	Render(dst *core.Screen, t int)

	// Tick performs the entity's action for tick t.
	Tick(t int)

	// Active reports whether the entity is still part of the game. Once it
	// returns false the entity receives no further Tick or Render calls and
	// is dropped at the next removal sweep.
	Active() bool

	// Receive delivers a message from another entity. The engine does not
	// filter by activity; inactive receivers are free to ignore it.
	Receive(src Entity, msg string)

	// Z returns the entity's depth. It is read once, when the entity is
	// promoted into the registry, and decides update order, paint order
	// and collision partition.
	Z() int
}

// Level produces entities over time and decides when it is finished.
type Level interface {
	// Start is called exactly once when the level becomes current.
	Start(t int)

	// Done reports whether the level is complete at tick t.
	Done(t int) bool

	// Tick runs level logic for tick t, before any entity acts.
	Tick(t int)
}

// Game is the factory for a session's initial entities and level sequence.
type Game interface {
	// ID returns a unique identifier (e.g. "flappy"), used for scores.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Setup adds the initial entities through h and returns the ordered,
	// non-empty level sequence. Called on every new session.
	Setup(h Hooks) []Level

	// Size returns the fixed viewport size in cells.
	Size() (width, height int)

	// Shutdown releases resources held by the game.
	Shutdown()
}

// Hooks is the capability surface the engine exposes to games, levels and
// entities. Hooks may only be used from inside Game.Setup, Level and
// Entity callbacks, where the engine lock is already held.
type Hooks interface {
	// GrantPoints adds n to the score.
	GrantPoints(n int)

	// Add submits a new entity. It joins the simulation on the next tick
	// and is first rendered after that tick.
	Add(e Entity) Handle

	// Lookup resolves a handle to its entity while that entity is pending
	// or registered and still active.
	Lookup(h Handle) (Entity, bool)

	// Collisions returns every other active entity sharing e's Z whose
	// shape intersects e's shape with positive area at the current tick.
	// bounds, when non-nil, must enclose e's shape and is used only to skip
	// candidates cheaply.
	Collisions(e Entity, bounds *core.Box) []Entity

	// SetMessage shows text fully opaque for ticks ticks, then fades it.
	SetMessage(text string, ticks int)

	// Surface returns the presentation surface for attaching input listeners.
	Surface() *input.Surface
}

// Handle is a stable, never reused reference to an entity. Holding a handle
// does not keep the entity alive.
type Handle uint64

// NoHandle is the zero Handle; it never resolves.
const NoHandle Handle = 0
