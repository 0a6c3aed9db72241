// Package gesture converts pointer gestures into window geometry updates.
//
// Pointer moves and releases arrive on a Bus, the process-wide pointer
// stream. A tracker subscribes to the bus only while its gesture session is
// open and releases the subscription when the gesture ends or the owning
// window goes away, so no listener outlives its window.
package gesture

// Listener receives pointer events from a Bus. Coordinates are in pixels.
type Listener interface {
	PointerMove(x, y int)
	PointerRelease(x, y int)
}

type entry struct {
	id       int
	listener Listener
}

// Bus fans pointer events out to the currently subscribed listeners in
// subscription order. It is not safe for concurrent use; events are
// delivered from the UI loop.
type Bus struct {
	entries []entry
	nextID  int
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscription is a scoped registration on a Bus.
type Subscription struct {
	bus *Bus
	id  int
}

// Subscribe registers l until the returned subscription is released.
func (b *Bus) Subscribe(l Listener) *Subscription {
	id := b.nextID
	b.nextID++
	b.entries = append(b.entries, entry{id: id, listener: l})
	return &Subscription{bus: b, id: id}
}

// Release detaches the listener. It is idempotent and safe on nil.
func (s *Subscription) Release() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.bus != nil
}

func (b *Bus) remove(id int) {
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of attached listeners.
func (b *Bus) Len() int {
	return len(b.entries)
}

// Move delivers a pointer move to every listener.
func (b *Bus) Move(x, y int) {
	for _, e := range b.snapshot() {
		e.listener.PointerMove(x, y)
	}
}

// Release delivers a pointer release to every listener. Listeners usually
// unsubscribe while handling it.
func (b *Bus) Release(x, y int) {
	for _, e := range b.snapshot() {
		e.listener.PointerRelease(x, y)
	}
}

// snapshot copies the listener list so handlers may unsubscribe mid-dispatch.
func (b *Bus) snapshot() []entry {
	if len(b.entries) == 0 {
		return nil
	}
	out := make([]entry, len(b.entries))
	copy(out, b.entries)
	return out
}
