package motion

import "github.com/vovakirdan/entity-arcade/internal/core"

// Path is a Body that can be steered along a cubic Bezier curve between two
// ticks. Each tick on the curve sets the velocity to the step that reaches
// the next curve point, so Pos only ever changes through Body.Tick.
type Path struct {
	Body

	// StopAtEnd makes the body hold still at the end tick.
	StopAtEnd bool

	p0         core.Vec
	a, b, c    core.Vec // polynomial coefficients, highest power first
	start, end int
}

// SetBezier starts a curve from the current position through control
// points c1 and c2 to `to`, travelled during ticks [start, end).
func (p *Path) SetBezier(c1, c2, to core.Vec, start, end int) {
	p.start, p.end = start, end
	p.p0 = p.Pos
	p.c = c1.Sub(p.p0).Scale(3)
	p.b = c2.Sub(c1).Scale(3).Sub(p.c)
	p.a = to.Sub(p.p0).Sub(p.c).Sub(p.b)
}

// SetLinear starts a straight path from the current position to `to`.
func (p *Path) SetLinear(to core.Vec, start, end int) {
	from := p.Pos
	c1 := core.V(to.X/3+2*from.X/3, to.Y/3+2*from.Y/3)
	c2 := core.V(2*to.X/3+from.X/3, 2*to.Y/3+from.Y/3)
	p.SetBezier(c1, c2, to, start, end)
}

// OnPath reports whether tick t falls inside the current path window.
func (p *Path) OnPath(t int) bool {
	return p.start <= t && t < p.end
}

// End returns the tick at which the current path finishes.
func (p *Path) End() int {
	return p.end
}

// Tick steers along the path for tick t, then steps the body.
func (p *Path) Tick(t int) {
	if p.OnPath(t) {
		u := float64(t+1-p.start) / float64(p.end-p.start)
		p.Vel = p.point(u).Sub(p.Pos)
	}
	if t == p.end && p.StopAtEnd {
		p.HoldStill()
	}
	p.Body.Tick(t)
}

func (p *Path) point(u float64) core.Vec {
	return p.a.Scale(u).Add(p.b).Scale(u).Add(p.c).Scale(u).Add(p.p0)
}
