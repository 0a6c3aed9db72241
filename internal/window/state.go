package window

import "github.com/Gaurav-Gosain/retrodesk/internal/layout"

// Placement is the restored/maximized axis of a window.
type Placement = layout.Placement

// Placement values.
const (
	Restored  = layout.Restored
	Maximized = layout.Maximized
)

// State is a window's visual state. Placement is always exactly one of
// Restored or Maximized; Minimized hides the body on top of either.
type State struct {
	Placement Placement
	Minimized bool
}

// Trigger is a user action that may change the state.
type Trigger int

const (
	// PressMaximize is the maximize/un-maximize title-bar control.
	PressMaximize Trigger = iota
	// PressMinimize is the minimize control.
	PressMinimize
	// PressRestore is the restore control shown while minimized.
	PressRestore
	// BeginDrag is a press on the header that starts a drag.
	BeginDrag
	// PressClose is the close control.
	PressClose
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case PressMaximize:
		return "maximize"
	case PressMinimize:
		return "minimize"
	case PressRestore:
		return "restore"
	case BeginDrag:
		return "begin-drag"
	case PressClose:
		return "close"
	default:
		return "unknown"
	}
}

// Effect is a side effect the owner must carry out after a transition.
type Effect int

const (
	// EffectNone needs no follow-up.
	EffectNone Effect = iota
	// EffectClose means the window must notify its owner and go away.
	EffectClose
)

// Apply returns the state after trig. The receiver is not modified.
func (s State) Apply(trig Trigger) (State, Effect) {
	switch trig {
	case PressMaximize:
		s.Minimized = false
		s.Placement = toggle(s.Placement)
	case PressMinimize:
		s.Minimized = true
	case PressRestore:
		s.Minimized = false
	case BeginDrag:
		if s.Placement == Maximized {
			s.Placement = Restored
		}
	case PressClose:
		return s, EffectClose
	}
	return s, EffectNone
}

func toggle(p Placement) Placement {
	if p == Maximized {
		return Restored
	}
	return Maximized
}

// String renders the state for logs, e.g. "maximized+minimized".
func (s State) String() string {
	if s.Minimized {
		return s.Placement.String() + "+minimized"
	}
	return s.Placement.String()
}
