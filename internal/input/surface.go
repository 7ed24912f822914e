// Package input provides the presentation surface handle through which
// entities attach listeners for raw keyboard and pointer events.
//
// Events are delivered on the host's input goroutine, concurrently with
// engine ticks. Listeners must therefore only touch independently
// consistent scalars (sync/atomic values), never state shared with the
// engine's entity collections.
package input

import (
	"sync"

	"github.com/vovakirdan/entity-arcade/internal/core"
)

// Kind distinguishes keyboard from pointer events.
type Kind int

const (
	KindKey Kind = iota
	KindPointer
)

// PointerAction describes what the pointer did.
type PointerAction int

const (
	PointerMove PointerAction = iota
	PointerPress
	PointerRelease
)

// Event is one raw input event routed by the host.
type Event struct {
	Kind Kind

	// Key events
	Key    string      // Raw key name as reported by the terminal
	Action core.Action // Semantic action mapped from Key (may be ActionNone)

	// Pointer events, in viewport cell coordinates
	X, Y    int
	Pointer PointerAction
}

// KeyEvent builds a keyboard event.
func KeyEvent(key string, action core.Action) Event {
	return Event{Kind: KindKey, Key: key, Action: action}
}

// PointerEvent builds a pointer event.
func PointerEvent(x, y int, action PointerAction) Event {
	return Event{Kind: KindPointer, X: x, Y: y, Pointer: action}
}

// Listener receives input events.
type Listener func(Event)

type entry struct {
	id int
	fn Listener
}

// Surface is the presentation surface handle. It knows the viewport size
// and fans events out to registered listeners in registration order.
type Surface struct {
	width, height int

	mu        sync.RWMutex
	nextID    int
	listeners []entry
}

// NewSurface creates a surface for a viewport of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Size returns the viewport dimensions in cells.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Listen registers l and returns a function that unregisters it.
// Calling the returned function more than once is harmless.
func (s *Surface) Listen(l Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, entry{id: id, fn: l})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, e := range s.listeners {
			if e.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to every listener registered at the time of the call.
// Listeners may register or unregister listeners while handling an event.
func (s *Surface) Dispatch(ev Event) {
	s.mu.RLock()
	snapshot := make([]Listener, len(s.listeners))
	for i, e := range s.listeners {
		snapshot[i] = e.fn
	}
	s.mu.RUnlock()

	for _, fn := range snapshot {
		fn(ev)
	}
}

// Reset drops every listener. Used when a new session starts.
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = nil
}

// Len returns the number of registered listeners.
func (s *Surface) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}
