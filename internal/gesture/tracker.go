package gesture

import "github.com/Gaurav-Gosain/retrodesk/internal/geometry"

// Session is the ephemeral record of an in-progress gesture: where the
// pointer was pressed and the geometry at that moment.
type Session struct {
	OriginX int
	OriginY int
	Base    geometry.Rect
}

// tracker is the shared session plumbing behind Drag and Resize.
type tracker struct {
	store   *geometry.Store
	bus     *Bus
	mode    geometry.DeltaMode
	session *Session
	sub     *Subscription
}

func (t *tracker) begin(x, y int, self Listener) {
	t.session = &Session{OriginX: x, OriginY: y, Base: t.store.Rect()}
	if !t.sub.Active() {
		t.sub = t.bus.Subscribe(self)
	}
}

// PointerMove recomputes the geometry from the session origin. Moves that
// arrive without an open session are ignored.
func (t *tracker) PointerMove(x, y int) {
	if t.session == nil {
		return
	}
	dx := x - t.session.OriginX
	dy := y - t.session.OriginY
	t.store.ApplyDelta(t.session.Base, dx, dy, t.mode)
}

// PointerRelease ends the gesture.
func (t *tracker) PointerRelease(_, _ int) {
	t.End()
}

// End clears the session and detaches from the bus. It is idempotent.
func (t *tracker) End() {
	t.session = nil
	t.sub.Release()
	t.sub = nil
}

// Close is End under the name owners use at teardown.
func (t *tracker) Close() {
	t.End()
}

// Active reports whether a gesture session is open.
func (t *tracker) Active() bool {
	return t.session != nil
}

// Session returns a copy of the open session, if any.
func (t *tracker) Session() (Session, bool) {
	if t.session == nil {
		return Session{}, false
	}
	return *t.session, true
}

// Subscribed reports whether the tracker currently holds a bus subscription.
func (t *tracker) Subscribed() bool {
	return t.sub.Active()
}

// Drag translates the window while the header is held.
type Drag struct {
	tracker
}

// NewDrag returns a drag tracker over store fed by bus.
func NewDrag(store *geometry.Store, bus *Bus) *Drag {
	return &Drag{tracker{store: store, bus: bus, mode: geometry.Translate}}
}

// Begin opens a drag session at the pointer position. A session that is
// already open is replaced.
func (d *Drag) Begin(x, y int) {
	d.begin(x, y, d)
}

// Resize grows the window from its top-left anchor while the corner handle
// is held.
type Resize struct {
	tracker
	enabled func() bool
}

// NewResize returns a resize tracker. enabled is consulted on every Begin;
// a nil enabled always allows resizing.
func NewResize(store *geometry.Store, bus *Bus, enabled func() bool) *Resize {
	return &Resize{
		tracker: tracker{store: store, bus: bus, mode: geometry.Grow},
		enabled: enabled,
	}
}

// Begin opens a resize session. It returns false, and opens nothing, when
// resizing is currently disabled.
func (r *Resize) Begin(x, y int) bool {
	if r.enabled != nil && !r.enabled() {
		return false
	}
	r.begin(x, y, r)
	return true
}
