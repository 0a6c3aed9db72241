// Package input routes terminal input to the retrodesk desktop.
//
// Pointer cells are converted to pixels here, so everything below the
// desktop works in pixel space. Window operations are mouse-only.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, d *desktop.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	default:
		return d, nil
	}
}

// HandleKeyPress handles the few keys the desktop understands.
func HandleKeyPress(msg tea.KeyPressMsg, d *desktop.Desktop) (*desktop.Desktop, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		d.Close()
		return d, tea.Quit
	case "esc":
		d.ShowLogs = false
	}
	return d, nil
}

// FilterMouseMotion drops mouse motion events unless a drag or resize is
// in progress. Use it with tea.WithFilter.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*desktop.Desktop)
	if !ok {
		return msg
	}
	if d.GestureActive() {
		return msg
	}
	return nil
}
