package space

import (
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// Formation phases: right, down, left, down.
const (
	phaseRight = iota
	phaseDownRight
	phaseLeft
	phaseDownLeft
)

// formationDirs is the velocity of each phase before the speed multiplier.
var formationDirs = [4]core.Vec{
	{X: 0.25, Y: 0},
	{X: 0, Y: 0.2},
	{X: -0.25, Y: 0},
	{X: 0, Y: 0.2},
}

const alienW, alienH = 3, 1

// invadersLevel moves a grid of aliens as one formation. The aliens report
// their horizontal extent every tick, and the level turns the formation
// around on the next tick once it touches an edge.
type invadersLevel struct {
	g *Game

	alienCount int
	total      int
	phase      int
	downSince  int
	minX, maxX float64
	speed      float64
}

func (l *invadersLevel) Start(int) {
	g := l.g
	cfg := g.cfg.Invaders
	g.hooks.SetMessage(MsgInvaders, messageTicks)

	l.alienCount, l.phase, l.downSince = 0, phaseRight, 0
	l.total = cfg.Rows * cfg.Cols
	l.speed = 1

	step := (g.width() - 18) / float64(cfg.Cols)
	l.minX = 2
	l.maxX = 2 + float64(cfg.Cols-1)*step
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			at := core.V(2+float64(col)*step, 3+2*float64(row))
			g.hooks.Add(&alien{Body: motion.At(at.X, at.Y), l: l, alive: true})
			l.alienCount++
		}
	}
}

func (l *invadersLevel) Done(int) bool { return l.alienCount < 1 }

func (l *invadersLevel) Tick(t int) {
	l.speed = l.speedFor(l.alienCount)

	down := l.g.cfg.Invaders.DownTime
	switch {
	case l.phase == phaseDownRight && t-l.downSince > down:
		l.phase = phaseLeft
	case l.phase == phaseRight && l.maxX > l.g.width()-alienW-1:
		l.phase, l.downSince = phaseDownRight, t
	case l.phase == phaseDownLeft && t-l.downSince > down:
		l.phase = phaseRight
	case l.phase == phaseLeft && l.minX < 1:
		l.phase, l.downSince = phaseDownLeft, t
	}

	l.g.maybeStar()
	l.maxX, l.minX = 0, l.g.width()
}

// speedFor returns the formation speed multiplier once only n aliens are
// left. Thresholds are checked from the largest group down, and the
// multiplier sticks until a later threshold is reached.
func (l *invadersLevel) speedFor(n int) float64 {
	switch {
	case n == 1:
		return 5
	case n == 2:
		return 3
	case n == 3:
		return 2.5
	case n == l.total/5:
		return 2
	case n == l.total/4:
		return 1.5
	case n == l.total/2:
		return 1.2
	}
	return l.speed
}

// alien is one member of the formation.
type alien struct {
	motion.Body
	l     *invadersLevel
	alive bool
}

// kill removes the alien from the formation count exactly once.
func (a *alien) kill() bool {
	if !a.alive {
		return false
	}
	a.alive = false
	a.l.alienCount--
	return true
}

func (a *alien) Shape(int) core.Shape {
	return core.NewBox(a.Pos.X, a.Pos.Y, alienW, alienH)
}

func (a *alien) Render(dst *core.Screen, t int) {
	glyph := 'M'
	if (t/10)%2 == 1 {
		glyph = 'W'
	}
	dst.FillShape(a.Shape(t), glyph, core.ColorBrightGreen)
}

func (a *alien) Tick(t int) {
	dir := formationDirs[a.l.phase]
	a.Vel = core.V(dir.X*a.l.speed, dir.Y)
	a.Body.Tick(t)

	a.l.maxX = max(a.l.maxX, a.Pos.X)
	a.l.minX = min(a.l.minX, a.Pos.X)

	// Aliens that reach the bottom are lost rather than killed.
	if a.Pos.Y > a.l.g.height() {
		a.kill()
	}
}

func (a *alien) Active() bool { return a.alive }

func (a *alien) Receive(src engine.Entity, msg string) {
	if msg == msgDie && a.kill() {
		a.l.g.explode(a.Pos.Add(core.V(alienW/2.0, alienH/2.0)))
	}
	src.Receive(a, msgDie)
}

func (a *alien) Z() int { return zPlay }
