package engine

import "github.com/vovakirdan/entity-arcade/internal/core"

// collisions returns the active entities in e's bucket, other than e, whose
// shapes at tick t overlap e's shape with positive area.
//
// Z buckets are collision domains: entities at different depths never
// collide. An entity that has not been promoted yet has no bucket and
// collides with nothing.
func (w *world) collisions(e Entity, bounds *core.Box, t int) []Entity {
	z, ok := w.zOf[e]
	if !ok {
		return nil
	}
	self := e.Shape(t)
	if self == nil {
		return nil
	}

	var hits []Entity
	for _, s := range w.buckets[z] {
		if s.e == e || !s.e.Active() {
			continue
		}
		other := s.e.Shape(t)
		if other == nil {
			continue
		}
		if bounds != nil && !core.Intersects(other, *bounds) {
			continue
		}
		if core.Intersects(self, other) {
			hits = append(hits, s.e)
		}
	}
	return hits
}
