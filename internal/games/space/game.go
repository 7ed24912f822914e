// Package space implements Space Blasters on the entity engine: a ship at
// the bottom of the screen shoots its way through four waves that repeat
// forever.
package space

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/entity-arcade/internal/config"
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/registry"
)

// Z values. Everything that fights lives on zPlay.
const (
	zStars     = 0
	zPlay      = 2
	zExplosion = 4
)

// Wave announcements.
const (
	MsgCentipede  = "Split up the centipede!"
	MsgInvaders   = "Space Invaders!"
	MsgBalls      = "Spinning balls!"
	MsgSierpinski = "Break down the Sierpinski triangle!"
)

const messageTicks = 25

// Messages exchanged between entities.
const (
	msgDie   = "Die!"
	msgCrash = "Crash!"
)

// Game holds the state shared by every entity of one session.
type Game struct {
	cfg  config.SpaceConfig
	seed int64

	hooks    engine.Hooks
	rng      *rand.Rand
	sessions int
	player   *Player
}

// New creates a Space Blasters game seeded with seed.
func New(cfg config.SpaceConfig, seed int64) *Game {
	return &Game{cfg: cfg, seed: seed}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "space"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Blasters"
}

// Size returns the viewport in cells.
func (g *Game) Size() (int, int) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

// Setup adds the ship and returns the four waves in order.
func (g *Game) Setup(h engine.Hooks) []engine.Level {
	g.hooks = h
	g.rng = rand.New(rand.NewSource(g.seed + int64(g.sessions)))
	g.sessions++

	g.player = newPlayer(g)
	h.Add(g.player)

	return []engine.Level{
		&centipedeLevel{g: g},
		&invadersLevel{g: g},
		&ballsLevel{g: g},
		&sierpinskiLevel{g: g},
	}
}

// Shutdown releases the game. Nothing is held outside the engine.
func (g *Game) Shutdown() {}

func (g *Game) width() float64  { return float64(g.cfg.Viewport.Width) }
func (g *Game) height() float64 { return float64(g.cfg.Viewport.Height) }

// maybeStar adds a falling background star with the configured chance.
func (g *Game) maybeStar() {
	if g.rng.Intn(100) < g.cfg.Background.StarChance {
		g.hooks.Add(newStar(g))
	}
}

func (g *Game) explode(at core.Vec) {
	g.hooks.Add(newExplosion(at))
}

func factory(rc core.RuntimeConfig) (engine.Game, error) {
	cfg, err := config.LoadSpace(rc.ConfigPath)
	if err != nil {
		return nil, err
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(cfg, seed), nil
}

func init() {
	registry.Register("space", "Space Blasters", factory)
}
