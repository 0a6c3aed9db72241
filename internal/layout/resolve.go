// Package layout derives the rectangle a window is actually rendered at.
package layout

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/viewport"
)

// TaskbarHeight is the strip, in pixels, reserved for the taskbar at the
// bottom of the viewport.
const TaskbarHeight = 42

// Placement is the restored/maximized axis of a window's state.
type Placement int

const (
	// Restored shows the window at its stored rectangle.
	Restored Placement = iota
	// Maximized fills the desktop above the taskbar.
	Maximized
)

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case Restored:
		return "restored"
	case Maximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Position is how the rendered rectangle is anchored.
type Position int

const (
	// Absolute positions relative to the desktop area.
	Absolute Position = iota
	// Fixed pins the window to the viewport.
	Fixed
)

// String returns the position name.
func (p Position) String() string {
	if p == Fixed {
		return "fixed"
	}
	return "absolute"
}

// Render is what the rendering boundary consumes.
type Render struct {
	Rect     geometry.Rect
	Position Position
	// Body is false when only the header chrome is drawn.
	Body bool
	// ResizeHandle is true when the corner grip is drawn and interactive.
	ResizeHandle bool
}

// Resolve is a pure function of its inputs. The stored rect and placement
// are never modified; minimizing only hides the body.
func Resolve(env viewport.Snapshot, placement Placement, minimized bool, rect geometry.Rect) Render {
	out := Render{Body: !minimized}

	switch {
	case env.Env == viewport.Compact:
		out.Rect = desktopArea(env)
		out.Position = Fixed
	case placement == Maximized:
		out.Rect = desktopArea(env)
		out.Position = Absolute
	default:
		out.Rect = rect
		out.Position = Absolute
		out.ResizeHandle = !minimized
	}

	return out
}

// desktopArea is the whole viewport minus the taskbar reservation.
func desktopArea(env viewport.Snapshot) geometry.Rect {
	return geometry.Rect{
		Top:    0,
		Left:   0,
		Width:  max(env.Width, 0),
		Height: max(env.Height-TaskbarHeight, 0),
	}
}
