package space

import (
	"math"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
)

// centipedeLevel is a chain of pieces, each chasing the one in front of
// it. Shooting a piece splits the chain: the piece behind loses its
// leader and starts wandering on its own.
type centipedeLevel struct {
	g         *Game
	bodyCount int
}

func (l *centipedeLevel) Start(int) {
	g := l.g
	g.hooks.SetMessage(MsgCentipede, messageTicks)
	l.bodyCount = 0

	prev := engine.NoHandle
	for i := range g.cfg.Centipede.Length {
		p := newPiece(l, core.V(g.width()/2+float64(i), -float64(i)), prev)
		prev = g.hooks.Add(p)
		l.bodyCount++
	}
}

func (l *centipedeLevel) Done(int) bool { return l.bodyCount < 1 }

func (l *centipedeLevel) Tick(int) { l.g.maybeStar() }

// piece is one body segment. It follows prev while that handle resolves.
type piece struct {
	l      *centipedeLevel
	pos    core.Vec
	target core.Vec
	prev   engine.Handle
	alive  bool
}

func newPiece(l *centipedeLevel, at core.Vec, prev engine.Handle) *piece {
	p := &piece{l: l, pos: at, prev: prev, alive: true}
	if prev == engine.NoHandle {
		p.wander()
	}
	return p
}

// wander picks a random target near the piece, reflected back into the
// viewport.
func (p *piece) wander() {
	g := p.l.g
	r := g.cfg.Centipede.Wander
	p.target = core.V(
		mirror(p.pos.X+g.rng.Float64()*2*r-r, g.width()),
		mirror(p.pos.Y+g.rng.Float64()*2*r-r, g.height()),
	)
}

func mirror(v, hi float64) float64 {
	if v < 0 {
		v = -v
	}
	if v > hi {
		v = hi - (v - hi)
	}
	return v
}

func (p *piece) Shape(int) core.Shape {
	d := 2 * p.l.g.cfg.Centipede.Radius
	return core.BoxAround(p.pos, d, d)
}

func (p *piece) Render(dst *core.Screen, t int) {
	c := core.ColorMagenta
	if p.prev == engine.NoHandle {
		c = core.ColorBrightMagenta
	}
	dst.FillShape(p.Shape(t), '●', c)
}

func (p *piece) Tick(int) {
	if p.prev != engine.NoHandle {
		if e, ok := p.l.g.hooks.Lookup(p.prev); ok {
			p.target = e.(*piece).pos
		} else {
			p.prev = engine.NoHandle
			p.wander()
		}
	}

	k := p.l.g.cfg.Centipede.Approach
	p.pos = p.pos.Add(p.target.Sub(p.pos).Scale(k))
	if math.Abs(p.pos.X-p.target.X) < 1 && math.Abs(p.pos.Y-p.target.Y) < 1 {
		p.wander()
	}
}

func (p *piece) Active() bool { return p.alive }

// Receive dies on a hit and always answers with a kill, so bullets stop
// and the ship is destroyed on contact.
func (p *piece) Receive(src engine.Entity, msg string) {
	if msg == msgDie && p.alive {
		p.alive = false
		p.l.bodyCount--
		p.l.g.explode(p.pos)
	}
	src.Receive(p, msgDie)
}

func (p *piece) Z() int { return zPlay }
