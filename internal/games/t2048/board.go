package t2048

import (
	"fmt"
	"sync/atomic"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/input"
)

// board is the single, endless level. It owns the cell grid, turns key
// presses into slides and resolves merges when a slide lands.
type board struct {
	g      *Game
	n      int
	origin core.Vec
	tiles  [][]*Tile // Resident tile per cell, [y][x]

	// Written by the input goroutine. Holds Direction+1, 0 when empty.
	queued atomic.Int32

	landAt  int // Tick the slide in flight lands, 0 when idle
	merges  []merge
	highest int
	over    bool
}

// merge pairs a tile sliding onto a cell with the tile that stays there.
type merge struct {
	mover, into *Tile
}

func newBoard(g *Game) *board {
	n := g.cfg.Board.Size
	w, h := g.Size()
	b := &board{
		g:       g,
		n:       n,
		tiles:   make([][]*Tile, n),
		highest: 4,
	}
	for y := range b.tiles {
		b.tiles[y] = make([]*Tile, n)
	}
	b.origin = core.V(
		float64((w-n*g.cfg.Board.TileWidth)/2),
		float64((h-n*g.cfg.Board.TileHeight)/2),
	)
	return b
}

// handleKey queues one slide. Presses while a slide is queued are dropped.
func (b *board) handleKey(ev input.Event) {
	if ev.Kind != input.KindKey {
		return
	}
	var dir Direction
	switch ev.Action {
	case core.ActionUp:
		dir = DirUp
	case core.ActionDown:
		dir = DirDown
	case core.ActionLeft:
		dir = DirLeft
	case core.ActionRight:
		dir = DirRight
	default:
		return
	}
	b.queued.CompareAndSwap(0, int32(dir)+1)
}

func (b *board) Start(int) {}

func (b *board) Done(int) bool { return false }

func (b *board) Tick(t int) {
	if every := b.g.cfg.StarEvery; every > 0 && t%every == 0 {
		b.g.hooks.Add(newStar(b.g))
	}

	if b.landAt != 0 {
		if t < b.landAt {
			return
		}
		b.land()
	}
	if b.over {
		return
	}
	if q := b.queued.Swap(0); q != 0 {
		b.slide(Direction(q-1), t)
	}
}

// slide sends every tile that can travel toward dir on a straight path
// that ends MoveTicks from now. The grid is updated at once; merged values
// are only doubled when the tiles land.
func (b *board) slide(dir Direction, t int) {
	moves, _ := Plan(b.values(), dir)
	if len(moves) == 0 {
		return
	}

	next := make([][]*Tile, b.n)
	for y := range next {
		next[y] = append([]*Tile(nil), b.tiles[y]...)
	}
	for _, m := range moves {
		next[m.From.Y][m.From.X] = nil
	}
	for _, m := range moves {
		if !m.Merge {
			next[m.To.Y][m.To.X] = b.tiles[m.From.Y][m.From.X]
		}
	}
	end := t + b.g.cfg.MoveTicks
	for _, m := range moves {
		tile := b.tiles[m.From.Y][m.From.X]
		if m.Merge {
			b.merges = append(b.merges, merge{mover: tile, into: next[m.To.Y][m.To.X]})
		}
		tile.SetLinear(b.cellPos(m.To), t, end)
	}

	b.tiles = next
	b.landAt = end
}

// land settles the slide in flight, then spawns a tile and checks for a
// stuck board.
func (b *board) land() {
	for _, m := range b.merges {
		m.mover.alive = false
		m.into.value *= 2
		b.g.hooks.GrantPoints(m.into.value)
		if m.into.value > b.highest {
			b.highest = m.into.value
			b.g.hooks.SetMessage(fmt.Sprintf("Created tile %d!", b.highest), 25)
		}
	}
	b.merges = nil
	b.landAt = 0

	for y, row := range b.tiles {
		for x, tile := range row {
			if tile != nil {
				tile.Pos = b.cellPos(Cell{x, y})
				tile.HoldStill()
			}
		}
	}

	b.spawn()
	if !CanMove(b.values()) {
		b.over = true
		b.g.hooks.SetMessage(GameOverMessage, 50)
	}
}

// spawn places a 2, or sometimes a 4, on a random empty cell.
func (b *board) spawn() {
	empty := EmptyCells(b.values())
	if len(empty) == 0 {
		return
	}
	c := empty[b.g.rng.Intn(len(empty))]
	v := 2
	if b.g.rng.Intn(100) < b.g.cfg.FourChance {
		v = 4
	}
	tile := newTile(b, c, v)
	b.tiles[c.Y][c.X] = tile
	b.g.hooks.Add(tile)
}

func (b *board) values() Grid {
	g := NewGrid(b.n)
	for y, row := range b.tiles {
		for x, tile := range row {
			if tile != nil {
				g[y][x] = tile.value
			}
		}
	}
	return g
}

func (b *board) cellPos(c Cell) core.Vec {
	bc := b.g.cfg.Board
	return b.origin.Add(core.V(float64(c.X*bc.TileWidth), float64(c.Y*bc.TileHeight)))
}
