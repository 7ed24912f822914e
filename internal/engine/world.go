package engine

import (
	"slices"

	"github.com/vovakirdan/entity-arcade/internal/core"
)

// slot is one registered entity. born is the tick whose drain promoted it;
// the render pass that follows that tick skips the slot.
type slot struct {
	e    Entity
	h    Handle
	born int
}

// world holds the per-session registry: entities partitioned into Z
// buckets, the pending buffer and the handle index. It is only touched
// with the engine lock held.
type world struct {
	zs      []int          // known Z values, ascending
	buckets map[int][]slot // Z -> entities in insertion order
	pending []slot

	handles map[Handle]Entity // pending or registered entities
	zOf     map[Entity]int    // registered entities only

	marks []int // removal scratch, reused across buckets
}

func newWorld() *world {
	return &world{
		buckets: make(map[int][]slot),
		handles: make(map[Handle]Entity),
		zOf:     make(map[Entity]int),
	}
}

// submit stages e for promotion at the next drain.
func (w *world) submit(e Entity, h Handle) {
	w.pending = append(w.pending, slot{e: e, h: h})
	w.handles[h] = e
}

// drain promotes every pending entity into its Z bucket, creating the
// bucket on first use, and empties the buffer.
func (w *world) drain(born int) {
	for _, s := range w.pending {
		z := s.e.Z()
		if _, ok := w.buckets[z]; !ok {
			i, _ := slices.BinarySearch(w.zs, z)
			w.zs = slices.Insert(w.zs, i, z)
		}
		s.born = born
		w.buckets[z] = append(w.buckets[z], s)
		w.zOf[s.e] = z
	}
	clear(w.pending)
	w.pending = w.pending[:0]
}

// step runs the action pass for tick t. Within each bucket, inactive
// entities are marked during the walk and removed afterwards, highest
// index first.
func (w *world) step(t int) {
	for _, z := range w.zs {
		bucket := w.buckets[z]
		w.marks = w.marks[:0]
		for i, s := range bucket {
			if !s.e.Active() {
				w.marks = append(w.marks, i)
				continue
			}
			s.e.Tick(t)
		}
		if len(w.marks) == 0 {
			continue
		}
		for _, i := range slices.Backward(w.marks) {
			w.forget(bucket[i])
			bucket = slices.Delete(bucket, i, i+1)
		}
		w.buckets[z] = bucket
	}
}

func (w *world) forget(s slot) {
	delete(w.handles, s.h)
	delete(w.zOf, s.e)
}

// paint renders every active entity visible after tick t in ascending Z.
func (w *world) paint(dst *core.Screen, t int) {
	for _, z := range w.zs {
		for _, s := range w.buckets[z] {
			if s.born == t || !s.e.Active() {
				continue
			}
			s.e.Render(dst, t)
		}
	}
}

// lookup resolves h while its entity is still active.
func (w *world) lookup(h Handle) (Entity, bool) {
	e, ok := w.handles[h]
	if !ok || !e.Active() {
		return nil, false
	}
	return e, true
}

// len counts registered entities, pending ones excluded.
func (w *world) len() int {
	n := 0
	for _, b := range w.buckets {
		n += len(b)
	}
	return n
}
