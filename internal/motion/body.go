// Package motion provides reusable movement behavior for entities:
// Newtonian kinematics stepped once per tick, and cubic paths realized
// through the velocity channel.
//
// Both types are meant to be embedded in concrete entities. An entity
// that overrides Tick must call the embedded Tick to keep moving.
package motion

import "github.com/vovakirdan/entity-arcade/internal/core"

// Body carries position, velocity and acceleration in cells per tick.
type Body struct {
	Pos core.Vec
	Vel core.Vec
	Acc core.Vec
}

// At returns a body resting at (x, y).
func At(x, y float64) Body {
	return Body{Pos: core.V(x, y)}
}

// Tick applies one explicit Euler step of unit length: velocity
// accumulates acceleration, then position accumulates velocity.
func (b *Body) Tick(int) {
	b.Vel = b.Vel.Add(b.Acc)
	b.Pos = b.Pos.Add(b.Vel)
}

// HoldStill zeroes velocity and acceleration. Position is kept.
func (b *Body) HoldStill() {
	b.Vel = core.Vec{}
	b.Acc = core.Vec{}
}
