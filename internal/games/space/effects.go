package space

import (
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// Explosion stages: diameter, glyph and color per tick of age.
var explosionStages = []struct {
	size  float64
	glyph rune
	color core.Color
}{
	{3, '█', core.ColorBrightWhite},
	{10, '▓', core.ColorBrightRed},
	{9, '▒', core.ColorRed},
	{7.5, '░', core.ColorOrange},
	{6, '·', core.ColorDarkGray},
}

// Explosion grows and fades over a few ticks above everything else.
type Explosion struct {
	motion.Body
	age int
}

func newExplosion(at core.Vec) *Explosion {
	return &Explosion{Body: motion.At(at.X, at.Y)}
}

func (e *Explosion) stage() int {
	return min(e.age, len(explosionStages)-1)
}

func (e *Explosion) Shape(int) core.Shape {
	st := explosionStages[e.stage()]
	return core.Circle{C: e.Pos, R: st.size / 2}
}

func (e *Explosion) Render(dst *core.Screen, t int) {
	st := explosionStages[e.stage()]
	dst.FillShape(e.Shape(t), st.glyph, st.color)
}

func (e *Explosion) Tick(t int) {
	e.Body.Tick(t)
	e.age++
}

func (e *Explosion) Active() bool { return e.age < len(explosionStages) }

func (e *Explosion) Receive(engine.Entity, string) {}

func (e *Explosion) Z() int { return zExplosion }

// Star falls through the background. Brighter stars fall faster.
type Star struct {
	motion.Body
	h     float64
	color core.Color
}

func newStar(g *Game) *Star {
	shade := g.rng.Intn(255)
	s := &Star{h: g.height(), color: core.Grayscale(shade)}
	s.Pos = core.V(g.rng.Float64()*g.width(), -1)
	s.Vel = core.V(0, float64(shade+1)/1000)
	return s
}

func (s *Star) Shape(int) core.Shape { return core.NewBox(s.Pos.X, s.Pos.Y, 1, 1) }

func (s *Star) Render(dst *core.Screen, _ int) { dst.Plot(s.Pos, '.', s.color) }

func (s *Star) Active() bool { return s.Pos.Y < s.h }

func (s *Star) Receive(engine.Entity, string) {}

func (s *Star) Z() int { return zStars }
