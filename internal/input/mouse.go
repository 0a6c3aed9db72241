package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
)

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, d *desktop.Desktop) (*desktop.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	hit := d.HitTest(mouse.X, mouse.Y)
	px, py := d.Units.ToPixels(mouse.X, mouse.Y)
	win := d.Window()

	switch hit.Kind {
	case desktop.HitStart:
		d.ToggleLogs()
	case desktop.HitButton:
		win.Press(hit.Control)
	case desktop.HitHeader:
		win.BeginDrag(px, py)
	case desktop.HitGrip:
		if !win.BeginResize(px, py) {
			d.LogWarn("resize refused in state %s", win.State())
		}
	case desktop.HitIcon:
		return d, d.ClickIcon(hit.Icon)
	}
	return d, nil
}

// handleMouseMotion forwards pointer moves to active gestures
func handleMouseMotion(msg tea.MouseMotionMsg, d *desktop.Desktop) (*desktop.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.Bus().Move(d.Units.ToPixels(mouse.X, mouse.Y))
	return d, nil
}

// handleMouseRelease ends active gestures
func handleMouseRelease(msg tea.MouseReleaseMsg, d *desktop.Desktop) (*desktop.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.Bus().Release(d.Units.ToPixels(mouse.X, mouse.Y))
	return d, nil
}
