// Package desktop implements the retrodesk shell: the icon grid, the single
// open application window and the taskbar, as one Bubble Tea model.
package desktop

import (
	"fmt"
	"io"
	"time"

	"github.com/Gaurav-Gosain/retrodesk/internal/clock"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/gesture"
	"github.com/Gaurav-Gosain/retrodesk/internal/viewport"
	"github.com/Gaurav-Gosain/retrodesk/internal/window"
	"github.com/charmbracelet/log"
)

// Icon is a desktop shortcut that opens one application.
type Icon struct {
	ID    int
	Name  string
	Glyph string
	Body  string
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// flash is the highlight animation of a clicked icon.
type flash struct {
	seq   int
	index int
	on    bool
}

// Options configures a desktop.
type Options struct {
	// Config defaults to config.DefaultConfig().
	Config *config.UserConfig
	Logger *log.Logger
	// Width and Height are the initial terminal size in cells. Zero waits
	// for the first tea.WindowSizeMsg.
	Width  int
	Height int
}

// Desktop is the shell model. It owns the viewport classifier, the pointer
// bus and at most one open window.
type Desktop struct {
	// Width and Height are the terminal size in cells.
	Width  int
	Height int

	Units Units
	Icons []Icon

	// LogMessages is the bounded in-app log, newest last.
	LogMessages []LogMessage
	// ShowLogs toggles the event log panel above the Start button.
	ShowLogs bool

	cfg        *config.UserConfig
	classifier *viewport.Classifier
	envSub     *viewport.Subscription
	bus        *gesture.Bus
	win        *window.Window
	winBody    string

	flash    *flash
	flashSeq int

	clockText string
	trayText  string

	log *log.Logger
	now func() time.Time
}

// New creates a desktop from opts.
func New(opts Options) *Desktop {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Desktop{
		Units: Units{
			CellWidth:  max(cfg.Viewport.CellWidth, 1),
			CellHeight: max(cfg.Viewport.CellHeight, 1),
		},
		cfg:        cfg,
		classifier: viewport.NewClassifier(cfg.Viewport.CompactMaxWidth),
		bus:        gesture.NewBus(),
		trayText:   "--",
		log:        logger,
		now:        time.Now,
	}
	for i, ic := range cfg.Icons {
		d.Icons = append(d.Icons, Icon{ID: i + 1, Name: ic.Name, Glyph: ic.Glyph, Body: ic.Body})
	}
	d.clockText = clock.Format(d.now())
	d.envSub = d.classifier.Subscribe(func(s viewport.Snapshot) {
		d.LogInfo("viewport is now %s (%dx%d px)", s.Env, s.Width, s.Height)
	})
	if opts.Width > 0 && opts.Height > 0 {
		d.Resize(opts.Width, opts.Height)
	}
	return d
}

// Resize records a new terminal size and reclassifies the viewport.
func (d *Desktop) Resize(cols, rows int) {
	d.Width, d.Height = cols, rows
	d.classifier.Observe(d.Units.Viewport(cols, rows))
}

// Environment returns the current viewport snapshot in pixels.
func (d *Desktop) Environment() viewport.Snapshot {
	return d.classifier.Snapshot()
}

// Bus returns the pointer bus gestures subscribe to.
func (d *Desktop) Bus() *gesture.Bus {
	return d.bus
}

// Window returns the open window, or nil.
func (d *Desktop) Window() *window.Window {
	return d.win
}

// WindowBody returns the text shown in the open window.
func (d *Desktop) WindowBody() string {
	return d.winBody
}

// GestureActive reports whether a drag or resize is in progress.
func (d *Desktop) GestureActive() bool {
	return d.bus.Len() > 0
}

// Open opens the application of icon i, replacing any open window.
func (d *Desktop) Open(i int) {
	if i < 0 || i >= len(d.Icons) {
		return
	}
	icon := d.Icons[i]

	if d.win != nil {
		d.LogInfo("replacing %q", d.win.Title())
		d.win.Destroy()
		d.win = nil
	}

	rect := d.cfg.Window.Initial
	var w *window.Window
	w = window.New(window.Options{
		Title:            icon.Name,
		Icon:             icon.Glyph,
		InitialMaximized: d.cfg.Window.Maximized,
		Resizable:        d.cfg.Window.Resizable,
		InitialRect:      &rect,
		Logger:           d.log,
		OnClose: func() {
			d.LogInfo("closed %q", icon.Name)
			if d.win == w {
				d.win = nil
			}
		},
	}, d.classifier, d.bus)

	d.win = w
	d.winBody = icon.Body
	if d.winBody == "" {
		d.winBody = fmt.Sprintf("%s coming soon!", icon.Name)
	}
	d.LogInfo("opened %q", icon.Name)
}

// Close destroys the open window without running its close callback, as
// when the shell tears down.
func (d *Desktop) Close() {
	if d.win != nil {
		d.win.Destroy()
		d.win = nil
	}
	d.envSub.Release()
}

// Log adds a new log message to the log buffer and the structured logger.
func (d *Desktop) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    d.now(),
		Level:   level,
		Message: message,
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}

	switch level {
	case "ERROR":
		d.log.Error(message)
	case "WARN":
		d.log.Warn(message)
	default:
		d.log.Info(message)
	}
}

// LogInfo logs an informational message.
func (d *Desktop) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Desktop) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Desktop) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}
