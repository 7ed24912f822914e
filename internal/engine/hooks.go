package engine

import (
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/input"
)

// hooks is the Hooks implementation handed to games. Its methods assume
// the engine lock is held by the tick or session reset that called out.
type hooks struct {
	e *Engine
}

func (h hooks) GrantPoints(n int) {
	h.e.score += n
}

func (h hooks) Add(ent Entity) Handle {
	h.e.lastH++
	h.e.world.submit(ent, h.e.lastH)
	return h.e.lastH
}

func (h hooks) Lookup(hd Handle) (Entity, bool) {
	if hd == NoHandle {
		return nil, false
	}
	return h.e.world.lookup(hd)
}

func (h hooks) Collisions(ent Entity, bounds *core.Box) []Entity {
	return h.e.world.collisions(ent, bounds, h.e.clock)
}

func (h hooks) SetMessage(text string, ticks int) {
	h.e.msg = message{text: text, start: h.e.clock, ticks: ticks}
}

func (h hooks) Surface() *input.Surface {
	return h.e.surface
}
