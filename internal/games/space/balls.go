package space

import (
	"math"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// ballsLevel drops spinning balls for a fixed number of ticks.
type ballsLevel struct {
	g     *Game
	start int
}

func (l *ballsLevel) Start(t int) {
	l.g.hooks.SetMessage(MsgBalls, messageTicks)
	l.start = t
}

func (l *ballsLevel) Done(t int) bool {
	return t-l.start > l.g.cfg.Balls.Duration
}

func (l *ballsLevel) Tick(t int) {
	if every := l.g.cfg.Balls.Every; every > 0 && t%every == 0 {
		l.g.hooks.Add(newBall(l.g, t))
	}
	l.g.maybeStar()
}

var ballColors = []core.Color{
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorMagenta,
	core.ColorCyan,
}

// Spin radii in cells. Cells are about twice as tall as wide.
const spinX, spinY = 5, 2.5

// ball glides down a random cubic path while spinning around it.
type ball struct {
	motion.Path
	g      *Game
	radius float64
	offset float64
	period float64
	center core.Vec
	alive  bool
}

// newBall creates a ball that starts moving on tick t+1, the first tick
// it is part of the simulation.
func newBall(g *Game, t int) *ball {
	w, h := g.width(), g.height()
	b := &ball{
		g:      g,
		radius: 1 + g.rng.Float64()*1.5,
		offset: g.rng.Float64() * 60,
		period: g.rng.Float64()*15 + 5,
		alive:  true,
	}
	b.Pos = core.V(g.rng.Float64()*w, -5)
	b.center = b.Pos

	to := core.V(g.rng.Float64()*w, h+6)
	c1 := core.V(g.rng.Float64()*w, h/3)
	c2 := core.V(g.rng.Float64()*w, 2*h/3)
	start := t + 1
	b.SetBezier(c1, c2, to, start, start+250+g.rng.Intn(150))
	return b
}

func (b *ball) spin(t int) core.Vec {
	a := (float64(t) + b.offset) / b.period
	return core.V(math.Sin(a)*spinX, math.Cos(a)*spinY)
}

func (b *ball) Shape(int) core.Shape {
	return core.Circle{C: b.center, R: b.radius}
}

func (b *ball) Render(dst *core.Screen, t int) {
	c := ballColors[(t/5)%len(ballColors)]
	dst.FillShape(b.Shape(t), '●', c)
}

func (b *ball) Tick(t int) {
	b.Path.Tick(t)
	b.center = b.Pos.Add(b.spin(t))
}

func (b *ball) Active() bool {
	return b.alive && b.Pos.Y < b.g.height()+5
}

func (b *ball) Receive(src engine.Entity, msg string) {
	if msg == msgDie && b.alive {
		b.alive = false
		b.g.explode(b.center)
	}
	src.Receive(b, msgDie)
}

func (b *ball) Z() int { return zPlay }
