package config

import (
	"log"

	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII glyphs instead of box-drawing characters
	ASCIIOnly bool

	// HideClock hides the taskbar clock
	HideClock bool

	// HideTray hides the CPU/RAM tray
	HideTray bool

	// Maximized opens windows maximized
	Maximized bool

	// NoResize hides the resize grip
	NoResize bool

	// CellWidth overrides pixels per column (0 means use config)
	CellWidth int

	// CellHeight overrides pixels per row (0 means use config)
	CellHeight int

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global settings and to
// userConfig, falling back to user config values. If userConfig is nil,
// only CLI flag values (when set) are applied to the globals.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly)

	// Hide Clock - OR of CLI flag and user config
	HideClock = overrides.HideClock || (userConfig != nil && userConfig.Appearance.HideClock)

	// Tray - hidden by flag, otherwise user config
	switch {
	case overrides.HideTray:
		ShowTray = false
	case userConfig != nil && userConfig.Appearance.ShowTray != nil:
		ShowTray = *userConfig.Appearance.ShowTray
	}

	if userConfig != nil {
		if overrides.Maximized {
			userConfig.Window.Maximized = true
		}
		if overrides.NoResize {
			resizable := false
			userConfig.Window.Resizable = &resizable
		}
		if overrides.CellWidth > 0 {
			userConfig.Viewport.CellWidth = overrides.CellWidth
		}
		if overrides.CellHeight > 0 {
			userConfig.Viewport.CellHeight = overrides.CellHeight
		}
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
