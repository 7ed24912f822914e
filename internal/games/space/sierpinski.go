package space

import (
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// sierpinskiLevel drops one big inverted triangle that breaks into three
// half-size triangles every time it is hit.
type sierpinskiLevel struct {
	g     *Game
	start int
}

func (l *sierpinskiLevel) Start(t int) {
	g := l.g
	g.hooks.SetMessage(MsgSierpinski, messageTicks)
	l.start = t

	w := g.width() - 2
	h := w / 2
	g.hooks.Add(newTriangle(g, core.V(1, -h), w, h, 0))
}

func (l *sierpinskiLevel) Done(t int) bool {
	return t-l.start > l.g.cfg.Sierpinski.Duration
}

func (l *sierpinskiLevel) Tick(int) { l.g.maybeStar() }

var triangleColors = []core.Color{
	core.ColorBlue,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorBrightRed,
	core.ColorRed,
}

// triangle is an inverted triangle with its flat edge on top. Pos is the
// top-left corner.
type triangle struct {
	motion.Body
	g     *Game
	w, h  float64
	depth int
}

func newTriangle(g *Game, at core.Vec, w, h float64, depth int) *triangle {
	tr := &triangle{g: g, w: w, h: h, depth: depth}
	tr.Pos = at
	tr.Vel = core.V(0, g.cfg.Sierpinski.Speed)
	return tr
}

func (tr *triangle) Shape(int) core.Shape {
	x, y := tr.Pos.X, tr.Pos.Y
	return core.NewPolygon(
		core.V(x, y),
		core.V(x+tr.w, y),
		core.V(x+tr.w/2, y+tr.h),
	)
}

func (tr *triangle) Render(dst *core.Screen, t int) {
	c := triangleColors[tr.depth%len(triangleColors)]
	dst.FillShape(tr.Shape(t), '▒', c)
}

func (tr *triangle) Active() bool {
	return tr.w >= tr.g.cfg.Sierpinski.Cutoff && tr.Pos.Y <= tr.g.height()
}

// Receive splits the triangle on a hit. It keeps the top-left quarter
// itself and spawns the top-right and bottom quarters, unless they would
// be narrower than the cutoff.
func (tr *triangle) Receive(src engine.Entity, msg string) {
	if msg == msgDie {
		tr.g.explode(tr.Pos.Add(core.V(tr.w/2, tr.h/2)))
		tr.w /= 2
		tr.h /= 2
		tr.depth++
		if tr.w >= tr.g.cfg.Sierpinski.Cutoff {
			x, y := tr.Pos.X, tr.Pos.Y
			tr.g.hooks.Add(newTriangle(tr.g, core.V(x+tr.w, y+0.1), tr.w, tr.h, tr.depth))
			tr.g.hooks.Add(newTriangle(tr.g, core.V(x+tr.w/2, y+tr.h+0.1), tr.w, tr.h, tr.depth))
		}
	}
	src.Receive(tr, msgDie)
}

func (tr *triangle) Z() int { return zPlay }
