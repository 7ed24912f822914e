package engine

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/entity-arcade/internal/core"
)

// recorder is a scriptable entity that records every call it receives.
type recorder struct {
	name     string
	z        int
	shape    core.Shape
	inactive bool

	log      *[]string // shared tick log
	paints   *[]string // shared render log
	onTick   func(t int)
	onRender func(t int)

	ticks   []int
	renders []int
	got     []string
}

func (p *recorder) Shape(int) core.Shape { return p.shape }

func (p *recorder) Render(_ *core.Screen, t int) {
	p.renders = append(p.renders, t)
	if p.paints != nil {
		*p.paints = append(*p.paints, p.name)
	}
	if p.onRender != nil {
		p.onRender(t)
	}
}

func (p *recorder) Tick(t int) {
	p.ticks = append(p.ticks, t)
	if p.log != nil {
		*p.log = append(*p.log, fmt.Sprintf("%s %d", p.name, t))
	}
	if p.onTick != nil {
		p.onTick(t)
	}
}

func (p *recorder) Active() bool { return !p.inactive }

func (p *recorder) Receive(_ Entity, msg string) { p.got = append(p.got, msg) }

func (p *recorder) Z() int { return p.z }

// stubLevel logs starts and ticks and completes once t reaches doneAt.
type stubLevel struct {
	name   string
	log    *[]string
	doneAt int // 0 = never
	onTick func(t int)
	starts int
}

func (l *stubLevel) Start(t int) {
	l.starts++
	if l.log != nil {
		*l.log = append(*l.log, fmt.Sprintf("%s.start %d", l.name, t))
	}
}

func (l *stubLevel) Done(t int) bool { return l.doneAt > 0 && t >= l.doneAt }

func (l *stubLevel) Tick(t int) {
	if l.log != nil {
		*l.log = append(*l.log, fmt.Sprintf("%s.tick %d", l.name, t))
	}
	if l.onTick != nil {
		l.onTick(t)
	}
}

type stubGame struct {
	setup     func(h Hooks) []Level
	setups    int
	shutdowns int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Setup(h Hooks) []Level {
	g.setups++
	if g.setup == nil {
		return []Level{&stubLevel{name: "L0"}}
	}
	return g.setup(h)
}

func (g *stubGame) Size() (int, int) { return 40, 20 }
func (g *stubGame) Shutdown()        { g.shutdowns++ }

func mustEngine(t *testing.T, g *stubGame) *Engine {
	t.Helper()
	e, err := New(g)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e
}

func names(es []Entity) map[string]bool {
	out := make(map[string]bool, len(es))
	for _, e := range es {
		out[e.(*recorder).name] = true
	}
	return out
}
