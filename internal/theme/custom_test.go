package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFile(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		body      string
		wantID    string
		wantTitle string
		wantErr   bool
	}{
		{
			name:      "explicit id",
			file:      "a.json",
			body:      `{"id": "plum", "display_name": "Plum", "blue": "#5b2a86"}`,
			wantID:    "plum",
			wantTitle: "Plum",
		},
		{
			name:      "id from filename",
			file:      "Hotdog-Stand.json",
			body:      `{"fg": "#ffff00"}`,
			wantID:    "hotdog-stand",
			wantTitle: "hotdog-stand",
		},
		{
			name:    "invalid json",
			file:    "broken.json",
			body:    `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, t.TempDir(), tt.file, tt.body)
			got, err := LoadCustomThemeFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadCustomThemeFile: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
			if got.DisplayName != tt.wantTitle {
				t.Errorf("DisplayName = %q, want %q", got.DisplayName, tt.wantTitle)
			}
		})
	}
}

func TestFillDefaultsKeepsExplicitColors(t *testing.T) {
	blue := tint.FromHex("#5b2a86")
	th := &tint.Tint{Blue: blue}
	fillDefaults(th)

	if th.Blue != blue {
		t.Error("explicit Blue was overwritten")
	}
	for name, c := range map[string]*tint.Color{
		"Fg": th.Fg, "Bg": th.Bg, "Cyan": th.Cyan, "White": th.White,
		"BrightBlack": th.BrightBlack, "BrightWhite": th.BrightWhite,
	} {
		if c == nil {
			t.Errorf("%s is nil after fillDefaults", name)
		}
	}
}

func TestLoadCustomThemesSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "teal.json", `{"id": "teal-test"}`)
	writeTheme(t, dir, "notes.txt", `not a theme`)
	writeTheme(t, dir, "bad.json", `{`)
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o750); err != nil {
		t.Fatal(err)
	}

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "teal-test" {
		t.Fatalf("loaded = %v, want [teal-test]", loaded)
	}
	if !tint.SetTintID("teal-test") {
		t.Error("registered theme not selectable")
	}
}

func TestRetroPaletteWhenDisabled(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatal(err)
	}
	if IsEnabled() || Current() != nil {
		t.Fatal("empty theme name should select the retro palette")
	}
	if DesktopBg() != retroDesktop {
		t.Errorf("DesktopBg = %v, want %v", DesktopBg(), retroDesktop)
	}
	if TitleBg() != retroTitle {
		t.Errorf("TitleBg = %v, want %v", TitleBg(), retroTitle)
	}
}
