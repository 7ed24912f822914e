package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Cell is a board coordinate.
type Cell struct{ X, Y int }

// Move is one tile's part of a slide. A merging tile ends on a tile of
// equal value, which doubles when the slide lands.
type Move struct {
	From, To Cell
	Merge    bool
}

// Grid holds tile values indexed [y][x]; 0 is an empty cell.
type Grid [][]int

// NewGrid returns an empty n by n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

// Plan slides every line of g toward dir. Each tile merges at most once per
// slide, with the tile nearest the leading edge merging first. It returns
// the moves of every tile that travels or merges and the points earned,
// the sum of the merged values.
func Plan(g Grid, dir Direction) (moves []Move, points int) {
	n := len(g)
	for k := range n {
		line := lineCells(n, dir, k)
		write := 0
		last, mergeable := 0, false

		for _, c := range line {
			v := g[c.Y][c.X]
			if v == 0 {
				continue
			}
			if mergeable && last == v {
				moves = append(moves, Move{From: c, To: line[write-1], Merge: true})
				points += 2 * v
				mergeable = false
				continue
			}
			if to := line[write]; to != c {
				moves = append(moves, Move{From: c, To: to})
			}
			last, mergeable = v, true
			write++
		}
	}
	return moves, points
}

// lineCells lists line k of an n grid, starting at the edge tiles slide
// toward.
func lineCells(n int, dir Direction, k int) []Cell {
	cells := make([]Cell, n)
	for i := range n {
		switch dir {
		case DirLeft:
			cells[i] = Cell{i, k}
		case DirRight:
			cells[i] = Cell{n - 1 - i, k}
		case DirUp:
			cells[i] = Cell{k, i}
		case DirDown:
			cells[i] = Cell{k, n - 1 - i}
		}
	}
	return cells
}

// Apply returns g after moves land.
func Apply(g Grid, moves []Move) Grid {
	next := NewGrid(len(g))
	for y, row := range g {
		copy(next[y], row)
	}
	for _, m := range moves {
		next[m.From.Y][m.From.X] = 0
	}
	for _, m := range moves {
		if m.Merge {
			continue
		}
		next[m.To.Y][m.To.X] = g[m.From.Y][m.From.X]
	}
	for _, m := range moves {
		if m.Merge {
			next[m.To.Y][m.To.X] *= 2
		}
	}
	return next
}

// EmptyCells returns every empty cell in row order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// CanMove reports whether any slide would change g.
func CanMove(g Grid) bool {
	n := len(g)
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				return true
			}
			if x < n-1 && row[x+1] == v {
				return true
			}
			if y < n-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest value in g.
func MaxTile(g Grid) int {
	best := 0
	for _, row := range g {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}
