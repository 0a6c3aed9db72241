package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the custom themes directory
// (~/.config/retrodesk/themes/), creating it if needed.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("retrodesk/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes registers every *.json theme in themesDir with
// bubbletint and returns the loaded IDs. Bad files are skipped.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		t, err := LoadCustomThemeFile(filepath.Join(themesDir, entry.Name()))
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", entry.Name(), err)
			continue
		}
		tint.Register(t)
		loaded = append(loaded, t.ID)
	}
	return loaded, nil
}

// LoadCustomThemeFile reads one JSON theme. The ID defaults to the file
// name and missing colors fall back to the retro palette.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path is from user's config directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, nil
}

// fillDefaults fills nil colors in the roles the desktop reads.
func fillDefaults(t *tint.Tint) {
	slots := []struct {
		c   **tint.Color
		hex string
	}{
		{&t.Fg, "#000000"},
		{&t.Bg, "#ffffff"},
		{&t.Black, "#000000"},
		{&t.Blue, "#000080"},
		{&t.Cyan, "#008080"},
		{&t.White, "#c0c0c0"},
		{&t.BrightBlack, "#808080"},
		{&t.BrightWhite, "#ffffff"},
	}
	for _, s := range slots {
		if *s.c == nil {
			*s.c = tint.FromHex(s.hex)
		}
	}
}
