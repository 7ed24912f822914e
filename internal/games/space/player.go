package space

import (
	"sync"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"
	"github.com/vovakirdan/entity-arcade/internal/input"
	"github.com/vovakirdan/entity-arcade/internal/motion"
)

// controls collects input between ticks. The input goroutine writes it,
// the player's Tick reads it.
type controls struct {
	mu     sync.Mutex
	target float64
	fire   bool
}

func (c *controls) handle(ev input.Event, step float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Kind {
	case input.KindPointer:
		c.target = float64(ev.X) + 0.5
		if ev.Pointer == input.PointerPress {
			c.fire = true
		}
	case input.KindKey:
		switch ev.Action {
		case core.ActionLeft:
			c.target -= step
		case core.ActionRight:
			c.target += step
		case core.ActionFire, core.ActionUp:
			c.fire = true
		}
	}
}

// take returns the current target and consumes a pending shot.
func (c *controls) take() (target float64, fire bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	target, fire = c.target, c.fire
	c.fire = false
	return target, fire
}

// clampTarget keeps key steering inside the viewport.
func (c *controls) clampTarget(lo, hi float64) {
	c.mu.Lock()
	c.target = core.Clamp(c.target, lo, hi)
	c.mu.Unlock()
}

// Player is the ship. It glides toward the pointer column, fires on click
// or key press and crashes into whatever it touches.
type Player struct {
	motion.Body
	g        *Game
	in       controls
	cancel   func()
	alive    bool
	lastShot int
}

func newPlayer(g *Game) *Player {
	p := &Player{
		Body:     motion.At(g.width()/2, g.height()-3),
		g:        g,
		alive:    true,
		lastShot: -g.cfg.Player.Cooldown,
	}
	p.in.target = p.Pos.X
	p.cancel = g.hooks.Surface().Listen(func(ev input.Event) {
		p.in.handle(ev, g.cfg.Player.KeyStep)
	})
	return p
}

const halfShip = 1.5

func (p *Player) Shape(int) core.Shape {
	return core.NewBox(p.Pos.X-halfShip, p.Pos.Y-1, 2*halfShip, 2)
}

func (p *Player) Render(dst *core.Screen, t int) {
	dst.FillShape(p.Shape(t), '▲', core.ColorBrightRed)
}

func (p *Player) Tick(t int) {
	lo, hi := halfShip, p.g.width()-halfShip
	p.in.clampTarget(lo, hi)
	target, fire := p.in.take()

	p.Pos.X += (target - p.Pos.X) * p.g.cfg.Player.Follow
	p.Pos.X = core.Clamp(p.Pos.X, lo, hi)

	if fire && t-p.lastShot >= p.g.cfg.Player.Cooldown {
		p.lastShot = t
		p.g.hooks.Add(newBullet(p.g, core.V(p.Pos.X, p.Pos.Y-1.5)))
	}

	for _, e := range p.g.hooks.Collisions(p, nil) {
		e.Receive(p, msgCrash)
	}
}

func (p *Player) Active() bool { return p.alive }

// Receive handles the reply of whatever the ship crashed into.
func (p *Player) Receive(_ engine.Entity, msg string) {
	if msg != msgDie || !p.alive {
		return
	}
	p.alive = false
	if p.cancel != nil {
		p.cancel()
	}
	for range 5 {
		off := core.V(p.g.rng.Float64()*12-6, p.g.rng.Float64()*6-3)
		p.g.explode(p.Pos.Add(off))
	}
}

func (p *Player) Z() int { return zPlay }

// Bullet accelerates upward and kills what it hits.
type Bullet struct {
	motion.Body
	g *Game
}

func newBullet(g *Game, at core.Vec) *Bullet {
	b := &Bullet{g: g}
	b.Pos = at
	b.Vel = core.V(0, -g.cfg.Bullet.Speed)
	b.Acc = core.V(0, -g.cfg.Bullet.Accel)
	return b
}

func (b *Bullet) Shape(int) core.Shape {
	return core.NewBox(b.Pos.X-0.25, b.Pos.Y-1, 0.5, 1)
}

func (b *Bullet) Render(dst *core.Screen, _ int) {
	dst.Plot(b.Pos.Sub(core.V(0, 0.5)), '|', core.ColorBrightGreen)
}

func (b *Bullet) Tick(t int) {
	b.Body.Tick(t)
	for _, e := range b.g.hooks.Collisions(b, nil) {
		switch e.(type) {
		case *Bullet, *Player:
			continue
		}
		b.g.hooks.GrantPoints(b.g.cfg.Bullet.Points)
		e.Receive(b, msgDie)
	}
}

// Active holds while the bullet is below the top edge.
func (b *Bullet) Active() bool { return b.Pos.Y >= 0 }

// Receive moves the bullet off screen once a target confirms the hit.
func (b *Bullet) Receive(_ engine.Entity, msg string) {
	if msg == msgDie {
		b.Pos.Y = -1000
	}
}

func (b *Bullet) Z() int { return zPlay }
