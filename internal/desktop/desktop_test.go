package desktop

import (
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/layout"
	"github.com/Gaurav-Gosain/retrodesk/internal/viewport"
	"github.com/Gaurav-Gosain/retrodesk/internal/window"
	"github.com/charmbracelet/x/ansi"
)

// newTestDesktop returns a 128x48 cell desktop, 1024x768 px at 8x16.
func newTestDesktop(t *testing.T) *Desktop {
	t.Helper()
	d := New(Options{Width: 128, Height: 48})
	t.Cleanup(d.Close)
	return d
}

func TestUnitsToCells(t *testing.T) {
	u := Units{CellWidth: 8, CellHeight: 16}
	tests := []struct {
		name string
		in   geometry.Rect
		want CellRect
	}{
		{"default rect", geometry.DefaultRect, CellRect{X: 12, Y: 6, W: 50, H: 18}},
		{"off-screen left", geometry.Rect{Top: -20, Left: -9, Width: 200, Height: 120}, CellRect{X: -2, Y: -2, W: 25, H: 7}},
		{"tiny", geometry.Rect{Width: 3, Height: 3}, CellRect{W: 1, H: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.ToCells(tt.in); got != tt.want {
				t.Errorf("ToCells(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	if got := u.TaskbarRows(); got != 3 {
		t.Errorf("TaskbarRows = %d, want 3", got)
	}
	if got := (Units{CellWidth: 10, CellHeight: 21}).TaskbarRows(); got != 2 {
		t.Errorf("TaskbarRows at 21px = %d, want 2", got)
	}
}

func TestResizeClassifiesViewport(t *testing.T) {
	d := newTestDesktop(t)
	if env := d.Environment(); env.Env != viewport.Full || env.Width != 1024 || env.Height != 768 {
		t.Fatalf("Environment = %+v, want Full 1024x768", env)
	}

	d.Open(0)
	d.Resize(80, 24)
	if env := d.Environment(); env.Env != viewport.Compact {
		t.Fatalf("Environment = %+v, want Compact", env)
	}

	want := geometry.Rect{Top: 0, Left: 0, Width: 640, Height: 384 - layout.TaskbarHeight}
	r := d.Window().Layout()
	if r.Rect != want || r.Position != layout.Fixed {
		t.Errorf("Layout = %+v, want %v fixed", r, want)
	}
	if d.Window().Rect() != geometry.DefaultRect {
		t.Errorf("stored rect changed to %v", d.Window().Rect())
	}
}

func TestOpenReplacesWindow(t *testing.T) {
	d := newTestDesktop(t)

	d.Open(0)
	first := d.Window()
	if first == nil || first.Title() != "About Me" {
		t.Fatalf("Window = %v, want About Me", first)
	}
	if d.WindowBody() != "About Me coming soon!" {
		t.Errorf("WindowBody = %q", d.WindowBody())
	}

	d.Open(1)
	if !first.Destroyed() {
		t.Error("replaced window not destroyed")
	}
	if d.Window() == nil || d.Window().Title() != "Projects" {
		t.Fatalf("Window = %v, want Projects", d.Window())
	}

	// A stale close must not clear the new window.
	first.PressClose()
	if d.Window() == nil {
		t.Fatal("stale close cleared the open window")
	}

	d.Window().PressClose()
	if d.Window() != nil {
		t.Error("close did not clear the open window")
	}
}

func TestOpenOutOfRange(t *testing.T) {
	d := newTestDesktop(t)
	d.Open(-1)
	d.Open(len(d.Icons))
	if d.Window() != nil {
		t.Error("out-of-range icon opened a window")
	}
}

func TestOpenUsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.Maximized = true
	resizable := false
	cfg.Window.Resizable = &resizable
	cfg.Icons = []config.IconConfig{{Name: "Notes", Glyph: "✎", Body: "hello"}}

	d := New(Options{Config: cfg, Width: 128, Height: 48})
	t.Cleanup(d.Close)
	d.Open(0)

	w := d.Window()
	if w.State().Placement != window.Maximized {
		t.Errorf("State = %v, want maximized", w.State())
	}
	if w.Resizable() {
		t.Error("window should not be resizable")
	}
	if d.WindowBody() != "hello" {
		t.Errorf("WindowBody = %q", d.WindowBody())
	}
}

func TestIconFlashSequence(t *testing.T) {
	d := newTestDesktop(t)

	if cmd := d.ClickIcon(2); cmd == nil {
		t.Fatal("ClickIcon returned nil")
	}
	if cmd := d.ClickIcon(0); cmd != nil {
		t.Error("second click during animation should be ignored")
	}

	steps := []struct {
		step   int
		wantOn bool
	}{
		{flashOff, false},
		{flashOn, true},
		{flashOffAgain, false},
	}
	for _, s := range steps {
		d.Update(FlashMsg{Seq: 1, Step: s.step})
		idx, on, ok := d.Flashing()
		if !ok || idx != 2 || on != s.wantOn {
			t.Fatalf("after step %d: Flashing = (%d, %v, %v)", s.step, idx, on, ok)
		}
		if d.Window() != nil {
			t.Fatalf("window opened early at step %d", s.step)
		}
	}

	// Stale sequence numbers are ignored.
	d.Update(FlashMsg{Seq: 99, Step: flashOpen})
	if d.Window() != nil {
		t.Fatal("stale flash opened a window")
	}

	d.Update(FlashMsg{Seq: 1, Step: flashOpen})
	if _, _, ok := d.Flashing(); ok {
		t.Error("animation still running after open")
	}
	if d.Window() == nil || d.Window().Title() != "Network Neighborhood" {
		t.Fatalf("Window = %v, want Network Neighborhood", d.Window())
	}
}

func TestHitTest(t *testing.T) {
	d := newTestDesktop(t)
	d.Open(0)
	// Default window: cells x 12..61, y 6..23; buttons at 53, 56, 59.

	tests := []struct {
		name string
		x, y int
		want Hit
	}{
		{"icon", 2, 2, Hit{Kind: HitIcon, Icon: 0}},
		{"empty desktop", 100, 10, Hit{Kind: HitDesktop}},
		{"start", 1, 46, Hit{Kind: HitStart}},
		{"taskbar", 60, 46, Hit{Kind: HitTaskbar}},
		{"header", 20, 6, Hit{Kind: HitHeader}},
		{"minimize", 53, 6, Hit{Kind: HitButton, Control: window.ControlMinimize}},
		{"maximize", 57, 6, Hit{Kind: HitButton, Control: window.ControlMaximize}},
		{"close", 61, 6, Hit{Kind: HitButton, Control: window.ControlClose}},
		{"body", 20, 10, Hit{Kind: HitWindow}},
		{"grip", 60, 23, Hit{Kind: HitGrip}},
		{"footer outside grip", 30, 23, Hit{Kind: HitWindow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestMinimized(t *testing.T) {
	d := newTestDesktop(t)
	d.Open(0)
	d.Window().PressMinimize()

	if got := d.HitTest(20, 10); got.Kind != HitDesktop {
		t.Errorf("body area of minimized window = %+v, want desktop", got)
	}
	if got := d.HitTest(58, 6); got != (Hit{Kind: HitButton, Control: window.ControlRestore}) {
		t.Errorf("restore button = %+v", got)
	}
	if got := d.HitTest(60, 23); got.Kind == HitGrip {
		t.Error("grip hit while minimized")
	}
}

func TestHitTestMaximizedHasNoGrip(t *testing.T) {
	d := newTestDesktop(t)
	d.Open(0)
	d.Window().PressMaximize()

	// Maximized fills 128 x 45 cells; the footer is row 44.
	if got := d.HitTest(127, 44); got.Kind != HitWindow {
		t.Errorf("footer corner = %+v, want plain window", got)
	}
	if got := d.HitTest(0, 0); got.Kind != HitHeader {
		t.Errorf("top-left = %+v, want header", got)
	}
}

func TestLogRingIsBounded(t *testing.T) {
	d := newTestDesktop(t)
	for i := 0; i < config.MaxLogMessages+25; i++ {
		d.LogInfo("event %d", i)
	}
	if len(d.LogMessages) != config.MaxLogMessages {
		t.Fatalf("len(LogMessages) = %d, want %d", len(d.LogMessages), config.MaxLogMessages)
	}
	last := d.LogMessages[len(d.LogMessages)-1]
	if last.Message != "event 224" || last.Level != "INFO" {
		t.Errorf("last = %+v", last)
	}
}

func TestCanvasShowsWindowAndTaskbar(t *testing.T) {
	d := newTestDesktop(t)
	d.Open(0)

	out := ansi.Strip(d.GetCanvas().Render())
	for _, want := range []string{"About Me coming soon!", config.StartLabel, config.ButtonClose} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered desktop missing %q", want)
		}
	}
}

func TestClipToViewport(t *testing.T) {
	content := "abcdef\nghijkl\nmnopqr"

	got, x, y := clipToViewport(content, -2, -1, 10, 10)
	if got != "ijkl\nopqr" || x != 0 || y != 0 {
		t.Errorf("clip top-left = %q at (%d,%d)", got, x, y)
	}

	got, x, y = clipToViewport(content, 7, 8, 10, 10)
	if got != "abc\nghi" || x != 7 || y != 8 {
		t.Errorf("clip bottom-right = %q at (%d,%d)", got, x, y)
	}

	if got, _, _ := clipToViewport(content, 20, 0, 10, 10); got != "" {
		t.Errorf("off-screen = %q, want empty", got)
	}
}
