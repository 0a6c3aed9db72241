// Package retrodesk provides a retro desktop shell that can be embedded in
// other Bubble Tea applications or used as a standalone TUI.
//
// The desktop shows a column of icons, one application window and a taskbar
// with a Start button, a CPU/RAM tray and a clock. The window can be dragged
// by its header, resized from its footer grip, minimized, maximized and
// closed; on narrow terminals it fills the screen above the taskbar.
//
// # Basic Usage
//
//	model := retrodesk.New()
//	p := tea.NewProgram(model, retrodesk.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model := retrodesk.New(
//		retrodesk.WithTheme("dracula"),
//		retrodesk.WithMaximized(true),
//		retrodesk.WithResizable(false),
//	)
//
// # Using with sip (Web Terminal)
//
//	server := sip.NewServer(sip.DefaultConfig())
//	server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
//		pty := sess.Pty()
//		return retrodesk.New(retrodesk.WithSize(pty.Width, pty.Height)), retrodesk.ProgramOptions()
//	})
package retrodesk

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/input"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/charmbracelet/log"
)

// Model is the desktop model that implements tea.Model.
type Model = desktop.Desktop

// Options configures a retrodesk instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use the retro palette.
	Theme string

	// ASCIIOnly uses ASCII glyphs for window buttons and the resize grip.
	ASCIIOnly bool

	// Maximized opens windows maximized. Nil uses the user config.
	Maximized *bool

	// Resizable shows the resize grip. Nil uses the user config.
	Resizable *bool

	// Width is the initial width in cells (set automatically if 0).
	Width int

	// Height is the initial height in cells (set automatically if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the config file
	// is loaded, falling back to defaults.
	UserConfig *config.UserConfig

	// Logger receives structured logs. If nil, logs are discarded.
	Logger *log.Logger
}

// Option is a functional option for configuring retrodesk.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only glyphs.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithMaximized opens windows maximized.
func WithMaximized(enabled bool) Option {
	return func(o *Options) {
		o.Maximized = &enabled
	}
}

// WithResizable shows or hides the window resize grip.
func WithResizable(enabled bool) Option {
	return func(o *Options) {
		o.Resizable = &enabled
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// New creates a new desktop model with the given options.
// This is the main entry point for using retrodesk as a library.
func New(opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

// PTY is a terminal session with a size in cells.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a new desktop sized to a PTY session.
func NewForPTY(pty PTY, opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()
	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	desktop.SetInputHandler(input.HandleInput)

	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if options.Theme != "" {
		_ = theme.Initialize(options.Theme)
	}

	var userConfig config.UserConfig
	switch {
	case options.UserConfig != nil:
		userConfig = *options.UserConfig
	default:
		loaded, err := config.LoadUserConfig()
		if err != nil {
			loaded = config.DefaultConfig()
		}
		userConfig = *loaded
	}
	if options.Maximized != nil {
		userConfig.Window.Maximized = *options.Maximized
	}
	if options.Resizable != nil {
		resizable := *options.Resizable
		userConfig.Window.Resizable = &resizable
	}

	return desktop.New(desktop.Options{
		Config: &userConfig,
		Logger: options.Logger,
		Width:  options.Width,
		Height: options.Height,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// retrodesk:
//
//	model := retrodesk.New()
//	p := tea.NewProgram(model, retrodesk.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// events unless a window is being dragged or resized.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	return input.FilterMouseMotion(model, msg)
}

// Config re-exports the config package for customization.
// This allows users to access configuration types without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
