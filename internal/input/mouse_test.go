package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/window"
)

// newDesktop returns a 128x48 cell desktop (1024x768 px) with the first
// application open at the default rectangle: cells x 12..61, y 6..23.
func newDesktop(t *testing.T) *desktop.Desktop {
	t.Helper()
	d := desktop.New(desktop.Options{Width: 128, Height: 48})
	t.Cleanup(d.Close)
	d.Open(0)
	return d
}

func click(d *desktop.Desktop, x, y int) tea.Cmd {
	_, cmd := HandleInput(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, d)
	return cmd
}

func move(d *desktop.Desktop, x, y int) {
	HandleInput(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}, d)
}

func release(d *desktop.Desktop, x, y int) {
	HandleInput(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}, d)
}

func TestHeaderDragMovesWindow(t *testing.T) {
	d := newDesktop(t)
	w := d.Window()

	click(d, 20, 6)
	if !w.Dragging() {
		t.Fatal("header press did not start a drag")
	}
	move(d, 25, 8)
	want := geometry.Rect{Top: 132, Left: 140, Width: 400, Height: 300}
	if w.Rect() != want {
		t.Errorf("Rect = %v, want %v", w.Rect(), want)
	}

	release(d, 25, 8)
	if w.Dragging() || d.GestureActive() {
		t.Error("release did not end the drag")
	}

	move(d, 60, 30)
	if w.Rect() != want {
		t.Errorf("move after release changed Rect to %v", w.Rect())
	}
}

func TestGripResizesWindow(t *testing.T) {
	d := newDesktop(t)
	w := d.Window()

	click(d, 60, 23)
	if !w.Resizing() {
		t.Fatal("grip press did not start a resize")
	}
	move(d, 70, 30)
	want := geometry.Rect{Top: 100, Left: 100, Width: 480, Height: 412}
	if w.Rect() != want {
		t.Errorf("Rect = %v, want %v", w.Rect(), want)
	}

	// Shrinking past the minimum clamps.
	move(d, 0, 0)
	if r := w.Rect(); r.Width != geometry.MinWidth || r.Height != geometry.MinHeight {
		t.Errorf("Rect = %v, want minimum size", r)
	}
	release(d, 0, 0)
	if w.Resizing() {
		t.Error("release did not end the resize")
	}
}

func TestDragFromMaximizedRestores(t *testing.T) {
	d := newDesktop(t)
	w := d.Window()

	click(d, 57, 6)
	if w.State().Placement != window.Maximized {
		t.Fatalf("State = %v, want maximized", w.State())
	}

	click(d, 20, 0)
	move(d, 22, 1)
	release(d, 22, 1)

	if w.State().Placement != window.Restored {
		t.Errorf("State = %v, want restored", w.State())
	}
	want := geometry.Rect{Top: 116, Left: 116, Width: 400, Height: 300}
	if w.Rect() != want {
		t.Errorf("Rect = %v, want %v", w.Rect(), want)
	}
}

func TestButtons(t *testing.T) {
	d := newDesktop(t)
	w := d.Window()

	click(d, 54, 6)
	if !w.State().Minimized {
		t.Fatal("minimize button did not minimize")
	}
	// Minimized header shows restore at 56..58 and close at 59..61.
	click(d, 57, 6)
	if w.State().Minimized {
		t.Fatal("restore button did not restore")
	}
	click(d, 60, 6)
	if d.Window() != nil {
		t.Error("close button did not close the window")
	}
}

func TestRightClickIgnored(t *testing.T) {
	d := newDesktop(t)
	HandleInput(tea.MouseClickMsg{X: 20, Y: 6, Button: tea.MouseRight}, d)
	if d.Window().Dragging() {
		t.Error("right click started a drag")
	}
}

func TestIconClickStartsFlash(t *testing.T) {
	d := desktop.New(desktop.Options{Width: 128, Height: 48})
	t.Cleanup(d.Close)

	if cmd := click(d, 2, 2); cmd == nil {
		t.Fatal("icon click returned no command")
	}
	if idx, on, ok := d.Flashing(); !ok || idx != 0 || !on {
		t.Errorf("Flashing = (%d, %v, %v)", idx, on, ok)
	}
}

func TestStartTogglesLog(t *testing.T) {
	d := newDesktop(t)
	click(d, 1, 46)
	if !d.ShowLogs {
		t.Fatal("start did not open the log panel")
	}
	HandleInput(tea.KeyPressMsg{Code: tea.KeyEscape}, d)
	if d.ShowLogs {
		t.Error("esc did not close the log panel")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyPressMsg
	}{
		{"q", tea.KeyPressMsg{Code: 'q', Text: "q"}},
		{"ctrl+c", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDesktop(t)
			w := d.Window()
			_, cmd := HandleInput(tt.key, d)
			if cmd == nil {
				t.Fatal("no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
			if !w.Destroyed() {
				t.Error("window not torn down on quit")
			}
		})
	}
}

func TestFilterMouseMotion(t *testing.T) {
	d := newDesktop(t)
	motion := tea.MouseMotionMsg{X: 1, Y: 1}

	if got := FilterMouseMotion(d, motion); got != nil {
		t.Errorf("idle motion passed through: %v", got)
	}
	keyMsg := tea.KeyPressMsg{Code: 'x', Text: "x"}
	if got := FilterMouseMotion(d, keyMsg); got == nil {
		t.Error("key press was filtered")
	}

	click(d, 20, 6)
	if got := FilterMouseMotion(d, motion); got == nil {
		t.Error("motion during drag was filtered")
	}
}
