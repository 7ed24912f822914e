package t2048

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// tileColors cycles by the tile's power of two, starting at 2.
var tileColors = []core.Color{
	core.ColorWhite,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
	core.ColorBlue,
	core.ColorCyan,
	core.ColorBrightCyan,
	core.ColorGreen,
	core.ColorBrightYellow,
}

func tileColor(v int) core.Color {
	return tileColors[(bits.Len(uint(v))-2)%len(tileColors)]
}

// Tile is one numbered tile. It rests on its cell between slides.
type Tile struct {
	motion.Path
	b     *board
	value int
	alive bool
}

func newTile(b *board, c Cell, v int) *Tile {
	t := &Tile{b: b, value: v, alive: true}
	t.Pos = b.cellPos(c)
	t.StopAtEnd = true
	return t
}

// Value returns the number on the tile.
func (t *Tile) Value() int { return t.value }

// Shape leaves a one cell gutter on the right and bottom of the cell.
func (t *Tile) Shape(int) core.Shape {
	bc := t.b.g.cfg.Board
	return core.NewBox(t.Pos.X, t.Pos.Y, float64(bc.TileWidth-1), float64(max(bc.TileHeight-1, 1)))
}

func (t *Tile) Render(dst *core.Screen, tick int) {
	dst.FillShape(t.Shape(tick), '▒', tileColor(t.value))

	bc := t.b.g.cfg.Board
	label := strconv.Itoa(t.value)
	x := int(math.Round(t.Pos.X)) + (bc.TileWidth-1-len(label))/2
	y := int(math.Round(t.Pos.Y)) + (bc.TileHeight-1)/2
	dst.DrawText(x, y, label, core.ColorBrightWhite)
}

func (t *Tile) Active() bool { return t.alive }

func (t *Tile) Receive(engine.Entity, string) {}

func (t *Tile) Z() int { return zTiles }

// starSpeed is the initial speed of a star in cells per tick.
const starSpeed = 0.3

// Star streams out from the center of the viewport, speeding up and
// brightening as it ages.
type Star struct {
	motion.Body
	w, h float64
	age  int
}

func newStar(g *Game) *Star {
	w, h := g.Size()
	angle := g.rng.Float64() * 2 * math.Pi
	s := &Star{w: float64(w), h: float64(h)}
	s.Pos = core.V(s.w/2, s.h/2)
	s.Vel = core.V(math.Cos(angle), math.Sin(angle)).Scale(starSpeed)
	return s
}

func (s *Star) Shape(int) core.Shape { return core.NewBox(s.Pos.X, s.Pos.Y, 1, 1) }

func (s *Star) Render(dst *core.Screen, _ int) {
	dst.Plot(s.Pos, '.', core.Grayscale(min(6*s.age, 254)))
}

func (s *Star) Tick(t int) {
	s.Body.Tick(t)
	s.age++
	s.Acc = s.Vel.Scale(0.01)
}

func (s *Star) Active() bool {
	return s.Pos.X >= 0 && s.Pos.Y >= 0 && s.Pos.X <= s.w && s.Pos.Y <= s.h
}

func (s *Star) Receive(engine.Entity, string) {}

func (s *Star) Z() int { return zStars }
