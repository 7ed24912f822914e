// Package flappy implements Flappy Bird Space on the entity engine.
// Flappy hovers at a fixed column while pipe pairs drift in from the right;
// holding the pointer button or tapping a key lifts him against gravity.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/entity-arcade/internal/config"
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/registry"
)

// Z values. Background stars and sparks never collide with Flappy.
const (
	zBackground = 0
	zPlay       = 1
)

// DeathMessage is shown when Flappy hits a pipe.
const DeathMessage = "Flappy burst his space helmet!"

// Game holds the state shared by every entity of one session.
type Game struct {
	cfg  config.FlappyConfig
	seed int64

	hooks      engine.Hooks
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	alive      bool
	points     int // Points granted this session, drives difficulty
	sessions   int
	bird       *Bird
}

// New creates a Flappy game. Each session reseeds its RNG from seed, so
// equal seeds and inputs replay identically.
func New(cfg config.FlappyConfig, seed int64) *Game {
	return &Game{cfg: cfg, seed: seed}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird Space"
}

// Size returns the viewport in cells.
func (g *Game) Size() (int, int) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

// Setup starts a new session: Flappy plus the single endless level.
func (g *Game) Setup(h engine.Hooks) []engine.Level {
	g.hooks = h
	g.rng = rand.New(rand.NewSource(g.seed + int64(g.sessions)))
	g.sessions++
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.alive = true
	g.points = 0

	g.bird = newBird(g)
	h.Add(g.bird)
	return []engine.Level{&level{g: g}}
}

// Shutdown releases the game. Flappy holds no external resources.
func (g *Game) Shutdown() {}

// Alive reports whether Flappy is still flying.
func (g *Game) Alive() bool {
	return g.alive
}

// level spawns pipes on a difficulty-scaled interval and background stars.
// It never completes.
type level struct {
	g        *Game
	lastPipe int
}

func (l *level) Start(t int) {
	l.lastPipe = t
	l.g.addPipe(t)
}

func (l *level) Done(int) bool { return false }

func (l *level) Tick(t int) {
	g := l.g
	every := g.difficulty.Interval(g.cfg.Obstacles.PipeSpacing, g.points, t)
	if t-l.lastPipe >= every {
		l.lastPipe = t
		g.addPipe(t)
	}

	bg := g.cfg.Background
	switch {
	case bg.StarEvery > 0 && t%bg.StarEvery == 0:
		g.hooks.Add(newStar(g))
	case bg.StarChance > 0 && g.rng.Intn(100) < bg.StarChance:
		g.hooks.Add(newStar(g))
	}
}

// addPipe spawns an upper and a lower pipe just past the right edge with a
// randomly placed gap between them.
func (g *Game) addPipe(t int) {
	obs := g.cfg.Obstacles
	w, h := g.Size()

	base := obs.MinGapSize
	if obs.MaxGapSize > obs.MinGapSize {
		base += g.rng.Intn(obs.MaxGapSize - obs.MinGapSize + 1)
	}
	gap := g.difficulty.GapSize(base, g.points, t)

	span := h - obs.TopMargin - obs.BottomMargin - gap
	top := obs.TopMargin
	if span > 0 {
		top += g.rng.Intn(span + 1)
	}

	speed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.points, t)
	x := float64(w + 1)
	pw := float64(obs.PipeWidth)
	g.hooks.Add(newPipe(g, core.NewBox(x, 0, pw, float64(top)), speed))
	g.hooks.Add(newPipe(g, core.NewBox(x, float64(top+gap), pw, float64(h-top-gap)), speed))
}

// die ends the run. Flappy stays in the game and sputters sparks.
func (g *Game) die() {
	if !g.alive {
		return
	}
	g.alive = false
	g.hooks.SetMessage(DeathMessage, 25)
}

func factory(rc core.RuntimeConfig) (engine.Game, error) {
	var preset config.DifficultyPreset
	if rc.Difficulty != "" {
		p, ok := config.ParsePreset(rc.Difficulty)
		if !ok {
			return nil, fmt.Errorf("flappy: unknown difficulty %q", rc.Difficulty)
		}
		preset = p
	}

	cfg, err := config.LoadFlappy(rc.ConfigPath, preset)
	if err != nil {
		return nil, err
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(cfg, seed), nil
}

// Register the game with the registry
func init() {
	registry.Register("flappy", "Flappy Bird Space", factory)
}
