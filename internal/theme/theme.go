// Package theme provides the desktop color palette.
//
// Without a theme the classic retro palette is used: a teal desktop, silver
// chrome and a navy title bar. A bubbletint theme maps its ANSI colors onto
// the same roles.
package theme

import (
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

// Retro palette.
var (
	retroDesktop   = lipgloss.Color("#008080")
	retroChrome    = lipgloss.Color("#c0c0c0")
	retroShadow    = lipgloss.Color("#808080")
	retroHighlight = lipgloss.Color("#ffffff")
	retroTitle     = lipgloss.Color("#000080")
	retroTitleText = lipgloss.Color("#ffffff")
	retroText      = lipgloss.Color("#000000")
	retroSelection = lipgloss.Color("#000080")
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, the retro palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if a bubbletint theme is active.
func IsEnabled() bool {
	return enabled
}

// Current returns the active theme, or nil for the retro palette.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// pick returns the theme color chosen by fn, or fallback.
func pick(fallback color.Color, fn func(t *tint.Tint) *tint.Color) color.Color {
	t := Current()
	if t == nil {
		return fallback
	}
	if c := fn(t); c != nil {
		return c
	}
	return fallback
}

// DesktopBg is the desktop background.
func DesktopBg() color.Color {
	return pick(retroDesktop, func(t *tint.Tint) *tint.Color { return t.Cyan })
}

// DesktopFg is the icon label color.
func DesktopFg() color.Color {
	return pick(retroHighlight, func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// IconSelectedBg is the background of a flashing icon.
func IconSelectedBg() color.Color {
	return pick(retroSelection, func(t *tint.Tint) *tint.Color { return t.Blue })
}

// ChromeBg is the window frame and taskbar face.
func ChromeBg() color.Color {
	return pick(retroChrome, func(t *tint.Tint) *tint.Color { return t.White })
}

// ChromeFg is text drawn on the chrome.
func ChromeFg() color.Color {
	return pick(retroText, func(t *tint.Tint) *tint.Color { return t.Black })
}

// ChromeShadow is the dark bevel edge.
func ChromeShadow() color.Color {
	return pick(retroShadow, func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// ChromeHighlight is the light bevel edge.
func ChromeHighlight() color.Color {
	return pick(retroHighlight, func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// TitleBg is the window title bar.
func TitleBg() color.Color {
	return pick(retroTitle, func(t *tint.Tint) *tint.Color { return t.Blue })
}

// TitleFg is the window title text.
func TitleFg() color.Color {
	return pick(retroTitleText, func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// BodyBg is the window body.
func BodyBg() color.Color {
	return pick(retroHighlight, func(t *tint.Tint) *tint.Color { return t.Bg })
}

// BodyFg is the window body text.
func BodyFg() color.Color {
	return pick(retroText, func(t *tint.Tint) *tint.Color { return t.Fg })
}
