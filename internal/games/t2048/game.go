// Package t2048 implements 2048 on the entity engine. Tiles are path
// entities that glide to their new cell on every slide and merge when
// they land; stars stream out from the center of the board behind them.
package t2048

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/entity-arcade/internal/config"
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/registry"
)

// Z values. Tiles are drawn over the stars.
const (
	zStars = 0
	zTiles = 1
)

// GameOverMessage is shown when no slide can change the board.
const GameOverMessage = "No more moves!"

// Game holds the state shared by every entity of one session.
type Game struct {
	cfg  config.TTFEConfig
	seed int64

	hooks    engine.Hooks
	rng      *rand.Rand
	sessions int
	board    *board
}

// New creates a 2048 game. Each session reseeds its RNG from seed.
func New(cfg config.TTFEConfig, seed int64) (*Game, error) {
	b := cfg.Board
	switch {
	case b.Size < 2:
		return nil, fmt.Errorf("t2048: board size %d, need at least 2", b.Size)
	case b.TileWidth < 2 || b.TileHeight < 1:
		return nil, fmt.Errorf("t2048: tile %dx%d is too small", b.TileWidth, b.TileHeight)
	case b.Size*b.TileWidth > cfg.Viewport.Width || b.Size*b.TileHeight > cfg.Viewport.Height:
		return nil, fmt.Errorf("t2048: board does not fit a %dx%d viewport", cfg.Viewport.Width, cfg.Viewport.Height)
	case cfg.MoveTicks < 1:
		return nil, fmt.Errorf("t2048: move_ticks must be positive, got %d", cfg.MoveTicks)
	}
	return &Game{cfg: cfg, seed: seed}, nil
}

func (g *Game) ID() string    { return "2048" }
func (g *Game) Title() string { return "2048" }

// Size returns the viewport in cells.
func (g *Game) Size() (int, int) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

// Setup starts a new session on an empty board holding two tiles.
func (g *Game) Setup(h engine.Hooks) []engine.Level {
	g.hooks = h
	g.rng = rand.New(rand.NewSource(g.seed + int64(g.sessions)))
	g.sessions++

	g.board = newBoard(g)
	h.Surface().Listen(g.board.handleKey)
	g.board.spawn()
	g.board.spawn()
	return []engine.Level{g.board}
}

func (g *Game) Shutdown() {}

// Board returns the value of every resident tile. While a slide is in
// flight, cells awaiting a merge still hold the old value.
func (g *Game) Board() Grid {
	return g.board.values()
}

// Over reports whether the board is stuck.
func (g *Game) Over() bool {
	return g.board.over
}

func factory(rc core.RuntimeConfig) (engine.Game, error) {
	cfg, err := config.LoadTTFE(rc.ConfigPath)
	if err != nil {
		return nil, err
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(cfg, seed)
}

func init() {
	registry.Register("2048", "2048", factory)
}
