// Package window implements one application window: its visual state
// machine, its restored geometry and the drag/resize gestures that change it.
package window

import (
	"io"

	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/gesture"
	"github.com/Gaurav-Gosain/retrodesk/internal/layout"
	"github.com/Gaurav-Gosain/retrodesk/internal/viewport"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures a window at construction.
type Options struct {
	Title string
	// Icon is an opaque reference the shell uses to draw the header icon.
	Icon string
	// OnClose is called exactly once when the close control is pressed.
	OnClose func()
	// InitialMaximized opens the window maximized.
	InitialMaximized bool
	// Resizable defaults to true when nil.
	Resizable *bool
	// InitialRect defaults to geometry.DefaultRect when nil.
	InitialRect *geometry.Rect
	Logger      *log.Logger
}

// Control is a title-bar button.
type Control int

const (
	// ControlMinimize hides the body.
	ControlMinimize Control = iota
	// ControlMaximize toggles maximized.
	ControlMaximize
	// ControlRestore un-hides the body.
	ControlRestore
	// ControlClose closes the window.
	ControlClose
)

// Window is one open application window. It is driven from a single UI
// loop and is not safe for concurrent use.
type Window struct {
	ID string

	title     string
	icon      string
	resizable bool
	onClose   func()

	state  State
	store  *geometry.Store
	env    viewport.Source
	drag   *gesture.Drag
	resize *gesture.Resize

	destroyed bool
	log       *log.Logger
}

// New creates a window reading the viewport from env and receiving pointer
// moves and releases from bus.
func New(opts Options, env viewport.Source, bus *gesture.Bus) *Window {
	rect := geometry.DefaultRect
	if opts.InitialRect != nil {
		rect = *opts.InitialRect
	}
	resizable := true
	if opts.Resizable != nil {
		resizable = *opts.Resizable
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Window{
		ID:        uuid.New().String(),
		title:     opts.Title,
		icon:      opts.Icon,
		resizable: resizable,
		onClose:   opts.OnClose,
		store:     geometry.NewStore(rect),
		env:       env,
	}
	if opts.InitialMaximized {
		w.state.Placement = Maximized
	}
	w.log = logger.With("window", w.ID[:8])
	w.drag = gesture.NewDrag(w.store, bus)
	w.resize = gesture.NewResize(w.store, bus, w.canResize)

	w.log.Debug("window opened", "title", w.title, "state", w.state, "rect", w.store.Rect())
	return w
}

// transition applies trig and logs the change.
func (w *Window) transition(trig Trigger) Effect {
	from := w.state
	next, effect := from.Apply(trig)
	w.state = next
	if next != from {
		w.log.Debug("state transition", "trigger", trig, "from", from, "to", next)
	}
	return effect
}

// PressMaximize toggles maximized, un-minimizing first if needed.
func (w *Window) PressMaximize() {
	if w.destroyed {
		return
	}
	w.transition(PressMaximize)
	if w.state.Placement == Maximized {
		// No gesture session survives into the maximized state.
		w.drag.End()
		w.resize.End()
	}
}

// PressMinimize hides the body, keeping placement and geometry.
func (w *Window) PressMinimize() {
	if w.destroyed {
		return
	}
	w.transition(PressMinimize)
	w.resize.End()
}

// PressRestore shows the body again.
func (w *Window) PressRestore() {
	if w.destroyed {
		return
	}
	w.transition(PressRestore)
}

// PressClose notifies the owner and tears the window down. Further calls
// do nothing.
func (w *Window) PressClose() {
	if w.destroyed {
		return
	}
	if w.transition(PressClose) == EffectClose {
		w.Destroy()
		w.log.Debug("window closed")
		if w.onClose != nil {
			w.onClose()
		}
	}
}

// Destroy detaches every pointer listener and marks the window gone. It is
// what an abrupt unmount calls; it does not notify the owner.
func (w *Window) Destroy() {
	w.drag.Close()
	w.resize.Close()
	w.destroyed = true
}

// BeginDrag starts moving the window from a header press. A maximized
// window is restored first at its last stored rectangle.
func (w *Window) BeginDrag(x, y int) {
	if w.destroyed || w.resize.Active() {
		return
	}
	w.transition(BeginDrag)
	w.drag.Begin(x, y)
}

// BeginResize starts resizing from the corner handle. It reports false and
// does nothing while the handle is hidden (compact viewport, maximized,
// minimized or not resizable) or a drag is open.
func (w *Window) BeginResize(x, y int) bool {
	if w.destroyed || w.drag.Active() {
		return false
	}
	return w.resize.Begin(x, y)
}

// canResize is the resize tracker's enable predicate. A press is accepted
// only where the handle is drawn.
func (w *Window) canResize() bool {
	return w.Layout().ResizeHandle
}

// EndDrag closes the drag session. It is idempotent.
func (w *Window) EndDrag() { w.drag.End() }

// EndResize closes the resize session. It is idempotent.
func (w *Window) EndResize() { w.resize.End() }

// Dragging reports whether a drag session is open.
func (w *Window) Dragging() bool { return w.drag.Active() }

// Resizing reports whether a resize session is open.
func (w *Window) Resizing() bool { return w.resize.Active() }

// Destroyed reports whether the window has been closed or torn down.
func (w *Window) Destroyed() bool { return w.destroyed }

// State returns the visual state.
func (w *Window) State() State { return w.state }

// Rect returns the stored restored-state rectangle.
func (w *Window) Rect() geometry.Rect { return w.store.Rect() }

// Title returns the title shown in the header.
func (w *Window) Title() string { return w.title }

// Icon returns the icon reference.
func (w *Window) Icon() string { return w.icon }

// Resizable reports whether the window was opened resizable.
func (w *Window) Resizable() bool { return w.resizable }

// Layout resolves the rectangle to render for the current viewport.
func (w *Window) Layout() layout.Render {
	r := layout.Resolve(w.env.Snapshot(), w.state.Placement, w.state.Minimized, w.store.Rect())
	r.ResizeHandle = r.ResizeHandle && w.resizable
	return r
}

// Controls returns the visible title-bar buttons, left to right.
func (w *Window) Controls() []Control {
	if w.state.Minimized {
		return []Control{ControlRestore, ControlClose}
	}
	return []Control{ControlMinimize, ControlMaximize, ControlClose}
}

// Press dispatches a title-bar button.
func (w *Window) Press(c Control) {
	switch c {
	case ControlMinimize:
		w.PressMinimize()
	case ControlMaximize:
		w.PressMaximize()
	case ControlRestore:
		w.PressRestore()
	case ControlClose:
		w.PressClose()
	}
}
