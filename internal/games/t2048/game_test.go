package t2048

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/entity-arcade/internal/config"
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/input"
	"github.com/vovakirdan/entity-arcade/internal/registry"
)

// fakeHooks records what the board asks of the engine.
type fakeHooks struct {
	surface *input.Surface
	points  int
	added   []engine.Entity
	msg     string
}

func (f *fakeHooks) GrantPoints(n int) { f.points += n }

func (f *fakeHooks) Add(e engine.Entity) engine.Handle {
	f.added = append(f.added, e)
	return engine.Handle(len(f.added))
}

func (f *fakeHooks) Lookup(engine.Handle) (engine.Entity, bool) { return nil, false }

func (f *fakeHooks) Collisions(engine.Entity, *core.Box) []engine.Entity { return nil }

func (f *fakeHooks) SetMessage(text string, _ int) { f.msg = text }

func (f *fakeHooks) Surface() *input.Surface { return f.surface }

// newTestGame starts a session without stars. Spawned tiles are always 2.
func newTestGame(t *testing.T) (*Game, *fakeHooks) {
	t.Helper()
	cfg := config.DefaultTTFEConfig()
	cfg.StarEvery = 0
	cfg.FourChance = 0
	g, err := New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	w, h := g.Size()
	hooks := &fakeHooks{surface: input.NewSurface(w, h)}
	g.Setup(hooks)
	return g, hooks
}

// place replaces the board with tiles holding the values of grid.
func place(g *Game, hooks *fakeHooks, grid Grid) {
	b := g.board
	hooks.added = nil
	for y, row := range grid {
		for x, v := range row {
			b.tiles[y][x] = nil
			if v != 0 {
				b.tiles[y][x] = newTile(b, Cell{x, y}, v)
				hooks.added = append(hooks.added, b.tiles[y][x])
			}
		}
	}
}

// run plays ticks from..to the way the engine would: level first, then
// every active entity.
func run(g *Game, hooks *fakeHooks, from, to int) {
	for t := from; t <= to; t++ {
		g.board.Tick(t)
		for _, e := range hooks.added {
			if e.Active() {
				e.Tick(t)
			}
		}
	}
}

func press(hooks *fakeHooks, a core.Action) {
	hooks.surface.Dispatch(input.KeyEvent(a.String(), a))
}

func near(a, b core.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func countTiles(g Grid) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestSetupSpawnsTwoTiles(t *testing.T) {
	g, hooks := newTestGame(t)
	if n := countTiles(g.Board()); n != 2 {
		t.Errorf("board holds %d tiles, expected 2", n)
	}
	if len(hooks.added) != 2 {
		t.Errorf("Setup added %d entities, expected 2", len(hooks.added))
	}
	for _, e := range hooks.added {
		if tile := e.(*Tile); tile.Value() != 2 || tile.Z() != zTiles {
			t.Errorf("spawned tile value %d at Z %d", tile.Value(), tile.Z())
		}
	}
}

func TestSlideGlidesThenMerges(t *testing.T) {
	g, hooks := newTestGame(t)
	place(g, hooks, Grid{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	mover := g.board.tiles[0][1]
	four := g.board.tiles[0][2]

	press(hooks, core.ActionLeft)
	run(g, hooks, 1, 1)
	if !mover.OnPath(1) || mover.End() != 1+g.cfg.MoveTicks {
		t.Fatalf("mover path ends at %d, expected %d", mover.End(), 1+g.cfg.MoveTicks)
	}

	// Halfway there nothing has merged
	run(g, hooks, 2, 3)
	if hooks.points != 0 || !mover.Active() {
		t.Errorf("merged before landing: points %d", hooks.points)
	}
	if mover.Pos.X <= g.board.cellPos(Cell{0, 0}).X {
		t.Errorf("mover at x %.2f already arrived", mover.Pos.X)
	}

	run(g, hooks, 4, g.cfg.MoveTicks)
	if !near(mover.Pos, g.board.cellPos(Cell{0, 0})) || !near(four.Pos, g.board.cellPos(Cell{1, 0})) {
		t.Errorf("tiles at %v and %v after the slide", mover.Pos, four.Pos)
	}

	// Landing tick
	run(g, hooks, g.cfg.MoveTicks+1, g.cfg.MoveTicks+1)
	if mover.Active() {
		t.Error("merged tile should leave the game")
	}
	if hooks.points != 4 {
		t.Errorf("points = %d, expected 4", hooks.points)
	}
	board := g.Board()
	if !reflect.DeepEqual(board[0][:2], []int{4, 4}) {
		t.Errorf("top row = %v, expected 4 4 first", board[0])
	}
	if n := countTiles(board); n != 3 {
		t.Errorf("board holds %d tiles after landing, expected 3 with the spawn", n)
	}
}

func TestNewHighestTileMessage(t *testing.T) {
	g, hooks := newTestGame(t)
	place(g, hooks, Grid{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	press(hooks, core.ActionRight)
	run(g, hooks, 1, 1+g.cfg.MoveTicks)
	if hooks.msg != "Created tile 8!" {
		t.Errorf("message = %q", hooks.msg)
	}
	if got := g.Board()[0][3]; got != 8 {
		t.Errorf("top right = %d, expected 8", got)
	}
}

func TestKeysDuringSlide(t *testing.T) {
	g, hooks := newTestGame(t)
	place(g, hooks, Grid{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	tile := g.board.tiles[0][3]

	press(hooks, core.ActionLeft)
	run(g, hooks, 1, 1)
	press(hooks, core.ActionDown) // Queued for after the landing
	press(hooks, core.ActionUp)   // Dropped
	run(g, hooks, 2, 1+g.cfg.MoveTicks)

	if !near(tile.Pos, g.board.cellPos(Cell{0, 0})) {
		t.Fatalf("tile at %v after the first slide", tile.Pos)
	}
	if !tile.OnPath(1 + g.cfg.MoveTicks) {
		t.Error("queued slide should start on the landing tick")
	}

	run(g, hooks, 2+g.cfg.MoveTicks, 1+2*g.cfg.MoveTicks)
	if !near(tile.Pos, g.board.cellPos(Cell{0, 3})) {
		t.Errorf("tile at %v, expected bottom left", tile.Pos)
	}
}

func TestNonKeyEventsIgnored(t *testing.T) {
	g, hooks := newTestGame(t)
	hooks.surface.Dispatch(input.PointerEvent(1, 1, input.PointerPress))
	press(hooks, core.ActionFire)
	if q := g.board.queued.Load(); q != 0 {
		t.Errorf("queued = %d, expected nothing", q)
	}
}

func TestStuckBoardEndsGame(t *testing.T) {
	g, hooks := newTestGame(t)
	g.cfg.FourChance = 100
	place(g, hooks, Grid{
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{0, 2, 4, 2},
	})

	press(hooks, core.ActionLeft)
	run(g, hooks, 1, 1+g.cfg.MoveTicks)
	if !g.Over() {
		t.Fatalf("board %v should be stuck", g.Board())
	}
	if hooks.msg != GameOverMessage {
		t.Errorf("message = %q", hooks.msg)
	}

	before := g.Board()
	press(hooks, core.ActionRight)
	run(g, hooks, 2+g.cfg.MoveTicks, 10+g.cfg.MoveTicks)
	if !reflect.DeepEqual(g.Board(), before) {
		t.Error("a stuck board should ignore slides")
	}
}

func TestBlockedSlideSpawnsNothing(t *testing.T) {
	g, hooks := newTestGame(t)
	place(g, hooks, Grid{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	press(hooks, core.ActionLeft)
	run(g, hooks, 1, 10)
	if n := countTiles(g.Board()); n != 2 {
		t.Errorf("board holds %d tiles, expected 2", n)
	}
	if g.board.landAt != 0 {
		t.Error("a slide that changes nothing should not start")
	}
}

func TestStarsBehindTiles(t *testing.T) {
	g, hooks := newTestGame(t)
	g.cfg.StarEvery = 5
	hooks.added = nil

	g.board.Tick(5)
	if len(hooks.added) != 1 {
		t.Fatalf("added %d entities on a star tick, expected 1", len(hooks.added))
	}
	star, ok := hooks.added[0].(*Star)
	if !ok {
		t.Fatalf("added %T, expected a star", hooks.added[0])
	}
	if star.Z() != zStars || star.Z() >= zTiles {
		t.Errorf("star Z = %d", star.Z())
	}

	start := star.Pos
	for i := 0; star.Active(); i++ {
		if i > 1000 {
			t.Fatal("star never left the viewport")
		}
		star.Tick(i)
	}
	if star.age < 2 || star.Pos.Sub(start).Len() < 10 {
		t.Errorf("star left after %d ticks at %v", star.age, star.Pos)
	}
}

func TestRender(t *testing.T) {
	g, hooks := newTestGame(t)
	place(g, hooks, Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 128},
	})
	screen := core.NewScreen(g.Size())
	for _, e := range hooks.added {
		e.Render(screen, 0)
	}

	o := g.board.cellPos(Cell{0, 0})
	x, y := int(o.X), int(o.Y)
	if got := screen.Get(x, y); got != '▒' {
		t.Errorf("tile corner = %q", got)
	}
	if got := screen.Get(x+3, y+1); got != '2' {
		t.Errorf("tile label = %q, expected '2'\n%s", got, screen.String())
	}

	o = g.board.cellPos(Cell{3, 3})
	if row := screen.Row(int(o.Y) + 1); !strings.Contains(row, "128") {
		t.Errorf("row %q missing the 128 label", row)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.TTFEConfig)
	}{
		{"tiny board", func(c *config.TTFEConfig) { c.Board.Size = 1 }},
		{"narrow tiles", func(c *config.TTFEConfig) { c.Board.TileWidth = 1 }},
		{"too wide", func(c *config.TTFEConfig) { c.Viewport.Width = 20 }},
		{"too tall", func(c *config.TTFEConfig) { c.Viewport.Height = 10 }},
		{"instant moves", func(c *config.TTFEConfig) { c.MoveTicks = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultTTFEConfig()
			tt.modify(&cfg)
			if _, err := New(cfg, 1); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEngineSession(t *testing.T) {
	g, err := New(config.DefaultTTFEConfig(), 7)
	if err != nil {
		t.Fatal(err)
	}
	e, err := engine.New(g)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Shutdown()

	if e.Len() != 2 {
		t.Errorf("Len() = %d, expected the two opening tiles", e.Len())
	}
	e.Surface().Dispatch(input.KeyEvent("down", core.ActionDown))
	e.Surface().Dispatch(input.KeyEvent("right", core.ActionRight))
	for range 40 {
		e.Tick()
	}
	if n := countTiles(g.Board()); n < 2 {
		t.Errorf("board holds %d tiles", n)
	}

	if err := e.NewSession(); err != nil {
		t.Fatal(err)
	}
	if n := countTiles(g.Board()); n != 2 || e.Score() != 0 {
		t.Errorf("new session has %d tiles and score %d", n, e.Score())
	}
}

func TestRegisteredFactory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game, err := registry.Create("2048", core.RuntimeConfig{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if game.Title() != "2048" {
		t.Errorf("Title() = %q", game.Title())
	}
	w, h := game.Size()
	if w != 40 || h != 20 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}
