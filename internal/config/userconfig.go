package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/viewport"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "retrodesk/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Window     WindowConfig     `toml:"window"`
	Viewport   ViewportConfig   `toml:"viewport"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
	Icons      []IconConfig     `toml:"icons"`
}

// WindowConfig holds how application windows open
type WindowConfig struct {
	Initial   geometry.Rect `toml:"initial"`   // Restored rectangle in pixels (default: 100,100 400x300)
	Maximized bool          `toml:"maximized"` // Open windows maximized (default: false)
	Resizable *bool         `toml:"resizable"` // Show the resize grip (default: true)
}

// ViewportConfig holds the pixel mapping and layout breakpoint
type ViewportConfig struct {
	CompactMaxWidth int `toml:"compact_max_width"` // Widest viewport, in pixels, using the compact layout (default: 768)
	CellWidth       int `toml:"cell_width"`        // Pixels per terminal column (default: 8)
	CellHeight      int `toml:"cell_height"`       // Pixels per terminal row (default: 16)
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme     string `toml:"theme"`      // Color theme name (e.g., dracula, nord). Empty uses the retro palette.
	HideClock bool   `toml:"hide_clock"` // Hide the taskbar clock (default: false)
	ShowTray  *bool  `toml:"show_tray"`  // Show CPU/RAM in the taskbar (default: true)
	ASCIIOnly bool   `toml:"ascii_only"` // Use ASCII glyphs only (default: false)
}

// LogConfig holds debug logging settings
type LogConfig struct {
	Level string `toml:"level"` // off, debug, info, warn, error (default: off)
	File  string `toml:"file"`  // Log file path (default: $XDG_STATE_HOME/retrodesk/retrodesk.log)
}

// IconConfig is one desktop icon and the application it opens
type IconConfig struct {
	Name  string `toml:"name"`
	Glyph string `toml:"glyph"`
	Body  string `toml:"body"` // Text shown in the window body; defaults to "<name> coming soon!"
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	resizable := true
	showTray := true
	return &UserConfig{
		Window: WindowConfig{
			Initial:   geometry.DefaultRect,
			Maximized: false,
			Resizable: &resizable,
		},
		Viewport: ViewportConfig{
			CompactMaxWidth: viewport.CompactMaxWidth,
			CellWidth:       DefaultCellWidth,
			CellHeight:      DefaultCellHeight,
		},
		Appearance: AppearanceConfig{
			ShowTray: &showTray,
		},
		Log: LogConfig{
			Level: "off",
		},
		Icons: []IconConfig{
			{Name: "About Me", Glyph: "☺"},
			{Name: "Projects", Glyph: "▣"},
			{Name: "Network Neighborhood", Glyph: "☷"},
		},
	}
}

// LoadUserConfig loads the config file, creating it with defaults if it
// does not exist yet.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}
	return LoadUserConfigFile(configPath)
}

// LoadUserConfigFile parses and validates the config at path.
func LoadUserConfigFile(path string) (*UserConfig, error) {
	// #nosec G304 - path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingWindow(&cfg, defaultCfg)
	fillMissingViewport(&cfg, defaultCfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingLog(&cfg, defaultCfg)
	fillMissingIcons(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", e.Field, e.Key, e.Message)
		}
		return nil, fmt.Errorf("%w: %d error(s), please fix and restart", ErrInvalidConfig, len(validation.Errors))
	}
	for _, warn := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", warn.Field, warn.Key, warn.Message)
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteConfigFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfigFile writes cfg to path with a commented header.
func WriteConfigFile(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# retrodesk configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# [window]\n")
	sb.WriteString("#   initial: restored rectangle in pixels; width >= 200, height >= 120\n")
	sb.WriteString("#   maximized: open windows maximized\n")
	sb.WriteString("#   resizable: show the corner resize grip\n")
	sb.WriteString("#\n")
	sb.WriteString("# [viewport]\n")
	sb.WriteString("#   compact_max_width: at or below this pixel width windows fill the screen\n")
	sb.WriteString("#   cell_width, cell_height: pixels per terminal column and row\n")
	sb.WriteString("#\n")
	sb.WriteString("# [log]\n")
	sb.WriteString("#   level: off, debug, info, warn, error\n")
	sb.WriteString("# ============================================================================\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func fillMissingWindow(cfg, defaultCfg *UserConfig) {
	if cfg.Window.Initial == (geometry.Rect{}) {
		cfg.Window.Initial = defaultCfg.Window.Initial
	}
	if cfg.Window.Resizable == nil {
		cfg.Window.Resizable = defaultCfg.Window.Resizable
	}
}

func fillMissingViewport(cfg, defaultCfg *UserConfig) {
	if cfg.Viewport.CompactMaxWidth == 0 {
		cfg.Viewport.CompactMaxWidth = defaultCfg.Viewport.CompactMaxWidth
	}
	if cfg.Viewport.CellWidth == 0 {
		cfg.Viewport.CellWidth = defaultCfg.Viewport.CellWidth
	}
	if cfg.Viewport.CellHeight == 0 {
		cfg.Viewport.CellHeight = defaultCfg.Viewport.CellHeight
	}
}

func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.ShowTray == nil {
		cfg.Appearance.ShowTray = defaultCfg.Appearance.ShowTray
	}
}

func fillMissingLog(cfg, defaultCfg *UserConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
}

func fillMissingIcons(cfg, defaultCfg *UserConfig) {
	if len(cfg.Icons) == 0 {
		cfg.Icons = defaultCfg.Icons
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}

// ResetConfig overwrites the config file with defaults.
func ResetConfig() (string, error) {
	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, WriteConfigFile(path, DefaultConfig())
}
