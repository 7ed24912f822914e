package flappy

import (
	"math"
	"sync/atomic"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/input"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// Bird is Flappy. Dead or alive he stays in the game.
type Bird struct {
	motion.Body
	g *Game

	// Written by the input goroutine.
	lift atomic.Int32 // Remaining ticks of lift from key presses
	held atomic.Bool  // Pointer button is down
}

func newBird(g *Game) *Bird {
	_, h := g.Size()
	b := &Bird{
		Body: motion.At(g.cfg.Player.X, float64(h)/2),
		g:    g,
	}
	g.hooks.Surface().Listen(b.handleInput)
	return b
}

func (b *Bird) handleInput(ev input.Event) {
	switch ev.Kind {
	case input.KindKey:
		if ev.Action == core.ActionFire || ev.Action == core.ActionUp {
			b.lift.Store(int32(b.g.cfg.Physics.LiftTicks))
		}
	case input.KindPointer:
		switch ev.Pointer {
		case input.PointerPress:
			b.held.Store(true)
		case input.PointerRelease:
			b.held.Store(false)
		}
	}
}

// lifting consumes one tick of key lift, or reports a held pointer.
func (b *Bird) lifting() bool {
	if b.held.Load() {
		return true
	}
	for {
		n := b.lift.Load()
		if n <= 0 {
			return false
		}
		if b.lift.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

func (b *Bird) Shape(int) core.Shape {
	return core.Circle{C: b.Pos, R: b.g.cfg.Player.Radius}
}

func (b *Bird) Render(dst *core.Screen, t int) {
	c := core.ColorBrightYellow
	if !b.g.alive {
		c = core.ColorRed
	}
	dst.FillShape(b.Shape(t), '●', c)
}

func (b *Bird) Tick(t int) {
	phys := b.g.cfg.Physics
	b.Acc = core.V(0, phys.Gravity)

	if !b.g.alive {
		b.g.hooks.Add(newSpark(b.g, b.Pos))
	} else {
		if b.lifting() {
			b.Acc.Y = phys.Lift
		}
		if len(b.g.hooks.Collisions(b, nil)) > 0 {
			b.g.die()
		}
	}

	b.Body.Tick(t)
	if phys.MaxFallSpeed > 0 && b.Vel.Y > phys.MaxFallSpeed {
		b.Vel.Y = phys.MaxFallSpeed
	}

	// Bounce off the ceiling, drift back up from below the floor.
	_, h := b.g.Size()
	r := b.g.cfg.Player.Radius
	if b.Pos.Y < r {
		b.Pos.Y = r
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y-r > float64(h) {
		b.Vel.Y = -phys.Gravity * 10
	}
}

func (b *Bird) Active() bool { return true }

func (b *Bird) Receive(engine.Entity, string) {}

func (b *Bird) Z() int { return zPlay }

// Pipe is one half of a pipe pair. It grants points once when Flappy
// gets past it.
type Pipe struct {
	motion.Body
	g       *Game
	w, h    float64
	granted bool
}

func newPipe(g *Game, box core.Box, speed float64) *Pipe {
	p := &Pipe{g: g, w: box.W, h: box.H}
	p.Pos = core.V(box.X, box.Y)
	p.Vel = core.V(-speed, 0)
	return p
}

func (p *Pipe) Shape(int) core.Shape {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.w, p.h)
}

func (p *Pipe) Render(dst *core.Screen, t int) {
	dst.FillShape(p.Shape(t), '█', core.ColorGreen)
}

func (p *Pipe) Tick(t int) {
	p.Body.Tick(t)
	if p.g.alive && !p.granted && p.Pos.X+p.w < p.g.cfg.Player.X {
		pts := p.g.cfg.Obstacles.Points
		p.g.hooks.GrantPoints(pts)
		p.g.points += pts
		p.granted = true
	}
}

// Active drops the pipe once it has left through the left edge.
func (p *Pipe) Active() bool { return p.Pos.X+p.w > 0 }

func (p *Pipe) Receive(engine.Entity, string) {}

func (p *Pipe) Z() int { return zPlay }

// Star is a background dot. Dimmer stars drift slower.
type Star struct {
	motion.Body
	color core.Color
}

func newStar(g *Game) *Star {
	w, h := g.Size()
	shade := g.rng.Intn(255)
	s := &Star{color: core.Grayscale(shade)}
	s.Pos = core.V(float64(w), g.rng.Float64()*float64(h))
	s.Vel = core.V(-float64(shade)/400, 0)
	return s
}

func (s *Star) Shape(int) core.Shape { return core.NewBox(s.Pos.X, s.Pos.Y, 1, 1) }

func (s *Star) Render(dst *core.Screen, _ int) { dst.Plot(s.Pos, '.', s.color) }

func (s *Star) Active() bool { return s.Pos.X > 0 }

func (s *Star) Receive(engine.Entity, string) {}

func (s *Star) Z() int { return zBackground }

// Spark is debris thrown off by dead Flappy. Sparks fall under gravity
// and vanish at the viewport edges.
type Spark struct {
	motion.Body
	w, h  float64
	color core.Color
}

func newSpark(g *Game, from core.Vec) *Spark {
	w, h := g.Size()
	angle := g.rng.Float64() * 2 * math.Pi
	dir := core.V(math.Sin(angle), math.Cos(angle))
	r := g.cfg.Player.Radius

	s := &Spark{w: float64(w), h: float64(h), color: core.ColorRed}
	if g.rng.Intn(2) == 0 {
		s.color = core.ColorBrightRed
	}
	s.Pos = from.Add(dir.Scale(r))
	s.Vel = dir.Scale(g.cfg.Physics.SparkSpeed)
	s.Acc = core.V(0, g.cfg.Physics.Gravity*2)
	return s
}

func (s *Spark) Shape(int) core.Shape { return core.NewBox(s.Pos.X, s.Pos.Y, 1, 1) }

func (s *Spark) Render(dst *core.Screen, _ int) { dst.Plot(s.Pos, '*', s.color) }

func (s *Spark) Active() bool {
	return s.Pos.X > 0 && s.Pos.X < s.w && s.Pos.Y > 0 && s.Pos.Y < s.h
}

func (s *Spark) Receive(engine.Entity, string) {}

func (s *Spark) Z() int { return zBackground }
