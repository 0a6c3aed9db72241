package desktop

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/window"
)

// HitKind identifies what lies under a pointer.
type HitKind int

const (
	// HitDesktop is empty desktop.
	HitDesktop HitKind = iota
	// HitTaskbar is the taskbar outside the Start button.
	HitTaskbar
	// HitStart is the Start button.
	HitStart
	// HitButton is a window title-bar button.
	HitButton
	// HitHeader is the window header outside the buttons.
	HitHeader
	// HitGrip is the footer resize grip.
	HitGrip
	// HitWindow is any other part of the window.
	HitWindow
	// HitIcon is a desktop icon.
	HitIcon
)

// Hit is the result of a hit test.
type Hit struct {
	Kind    HitKind
	Control window.Control // for HitButton
	Icon    int            // for HitIcon
}

// frame is the window chrome laid out in cells.
type frame struct {
	Outer   CellRect
	Header  CellRect
	Body    CellRect // zero when minimized
	Footer  CellRect // zero when minimized
	Grip    CellRect // zero without a resize handle
	Buttons []buttonSlot
}

type buttonSlot struct {
	Control window.Control
	Rect    CellRect
}

// windowFrame lays out the open window, or returns false.
func (d *Desktop) windowFrame() (frame, bool) {
	if d.win == nil {
		return frame{}, false
	}
	r := d.win.Layout()
	outer := d.Units.ToCells(r.Rect)

	var f frame
	if !r.Body {
		outer.H = 1
	} else {
		outer.H = max(outer.H, 3)
	}
	f.Outer = outer
	f.Header = CellRect{X: outer.X, Y: outer.Y, W: outer.W, H: 1}

	if r.Body {
		f.Body = CellRect{X: outer.X, Y: outer.Y + 1, W: outer.W, H: outer.H - 2}
		f.Footer = CellRect{X: outer.X, Y: outer.Y + outer.H - 1, W: outer.W, H: 1}
		if r.ResizeHandle {
			w := min(config.ResizeGripWidth, outer.W)
			f.Grip = CellRect{X: outer.X + outer.W - w, Y: f.Footer.Y, W: w, H: 1}
		}
	}

	controls := d.win.Controls()
	x := outer.X + outer.W - len(controls)*config.ButtonWidth
	for _, c := range controls {
		f.Buttons = append(f.Buttons, buttonSlot{
			Control: c,
			Rect:    CellRect{X: x, Y: outer.Y, W: config.ButtonWidth, H: 1},
		})
		x += config.ButtonWidth
	}
	return f, true
}

// iconRect returns the tile of icon i. Icons fill columns top to bottom.
func (d *Desktop) iconRect(i int) CellRect {
	usable := d.Height - d.Units.TaskbarRows() - config.IconMargin
	perColumn := max(usable/config.IconCellHeight, 1)
	col, row := i/perColumn, i%perColumn
	return CellRect{
		X: config.IconMargin + col*(config.IconCellWidth+config.IconMargin),
		Y: config.IconMargin + row*config.IconCellHeight,
		W: config.IconCellWidth,
		H: config.IconCellHeight - 1,
	}
}

// taskbarRect is the taskbar strip along the bottom edge.
func (d *Desktop) taskbarRect() CellRect {
	rows := min(d.Units.TaskbarRows(), d.Height)
	return CellRect{X: 0, Y: d.Height - rows, W: d.Width, H: rows}
}

// startRect is the Start button at the left of the taskbar.
func (d *Desktop) startRect() CellRect {
	tb := d.taskbarRect()
	return CellRect{X: 0, Y: tb.Y, W: len(config.StartLabel) + 2, H: tb.H}
}

// HitTest reports what lies under the cell (x, y). The taskbar is above the
// window and the window is above the icons.
func (d *Desktop) HitTest(x, y int) Hit {
	if d.taskbarRect().Contains(x, y) {
		if d.startRect().Contains(x, y) {
			return Hit{Kind: HitStart}
		}
		return Hit{Kind: HitTaskbar}
	}

	if f, ok := d.windowFrame(); ok && f.Outer.Contains(x, y) {
		for _, b := range f.Buttons {
			if b.Rect.Contains(x, y) {
				return Hit{Kind: HitButton, Control: b.Control}
			}
		}
		if f.Header.Contains(x, y) {
			return Hit{Kind: HitHeader}
		}
		if f.Grip.Contains(x, y) {
			return Hit{Kind: HitGrip}
		}
		return Hit{Kind: HitWindow}
	}

	for i := range d.Icons {
		if d.iconRect(i).Contains(x, y) {
			return Hit{Kind: HitIcon, Icon: i}
		}
	}
	return Hit{Kind: HitDesktop}
}
