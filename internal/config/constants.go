// Package config provides configuration constants and user settings.
package config

import "time"

// =============================================================================
// Pixel Mapping
// =============================================================================

const (
	// DefaultCellWidth is how many pixels one terminal column stands for.
	DefaultCellWidth = 8

	// DefaultCellHeight is how many pixels one terminal row stands for.
	DefaultCellHeight = 16
)

// =============================================================================
// Desktop Icon Animation
// =============================================================================

const (
	// IconFlashOff is when the first highlight of a clicked icon turns off.
	IconFlashOff = 100 * time.Millisecond

	// IconFlashOnAgain is when the second highlight turns on.
	IconFlashOnAgain = 200 * time.Millisecond

	// IconFlashOffAgain is when the second highlight turns off.
	IconFlashOffAgain = 300 * time.Millisecond

	// IconOpenDelay is when the clicked application finally opens.
	IconOpenDelay = 350 * time.Millisecond
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// TrayInterval is the interval between CPU/RAM tray samples.
	TrayInterval = 2 * time.Second

	// NormalFPS is the renderer frame cap.
	NormalFPS = 60

	// MaxLogMessages bounds the in-app log ring.
	MaxLogMessages = 200
)

// =============================================================================
// UI Layout Dimensions (cells)
// =============================================================================

const (
	// IconCellWidth is the width of one desktop icon tile.
	IconCellWidth = 14

	// IconCellHeight is the height of one desktop icon tile.
	IconCellHeight = 4

	// IconMargin is the gap around the icon grid.
	IconMargin = 1

	// ButtonWidth is the width of one title-bar button, e.g. "[_]".
	ButtonWidth = 3

	// ResizeGripWidth is the width of the footer grip in the bottom-right corner.
	ResizeGripWidth = 3
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexDesktop is the desktop background and icons.
	ZIndexDesktop = 0
	// ZIndexWindow is the open application window.
	ZIndexWindow = 10
	// ZIndexTaskbar keeps the taskbar above a window dragged over it.
	ZIndexTaskbar = 20
)

// =============================================================================
// Glyphs
// =============================================================================

const (
	// ButtonMinimize is the minimize control.
	ButtonMinimize = "[_]"
	// ButtonMaximize is the maximize control.
	ButtonMaximize = "[□]"
	// ButtonRestore is the restore control shown while minimized.
	ButtonRestore = "[▭]"
	// ButtonClose is the close control.
	ButtonClose = "[x]"
	// ResizeGrip is drawn in the footer corner.
	ResizeGrip = "◢"
	// StartLabel is the taskbar start button.
	StartLabel = " Start "

	// ASCII fallbacks.
	ButtonMaximizeASCII = "[O]"
	ButtonRestoreASCII  = "[^]"
	ResizeGripASCII     = "//"
)

// =============================================================================
// Global Settings (set by ApplyOverrides)
// =============================================================================

// UseASCIIOnly replaces box-drawing glyphs with ASCII.
var UseASCIIOnly = false

// HideClock hides the taskbar clock.
var HideClock = false

// ShowTray shows the CPU/RAM readout in the taskbar.
var ShowTray = true

// GetButtonMaximize returns the maximize glyph for the current glyph set.
func GetButtonMaximize() string {
	if UseASCIIOnly {
		return ButtonMaximizeASCII
	}
	return ButtonMaximize
}

// GetButtonRestore returns the restore glyph for the current glyph set.
func GetButtonRestore() string {
	if UseASCIIOnly {
		return ButtonRestoreASCII
	}
	return ButtonRestore
}

// GetResizeGrip returns the grip glyph for the current glyph set.
func GetResizeGrip() string {
	if UseASCIIOnly {
		return ResizeGripASCII
	}
	return ResizeGrip
}
