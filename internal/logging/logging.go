// Package logging builds the structured logger shared by the desktop and the
// servers. While the TUI owns the terminal nothing may be written to stderr,
// so output goes to a state file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const stateRelPath = "retrodesk/retrodesk.log"

// Off is the level name that disables logging.
const Off = "off"

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel + 1})
}

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "retrodesk",
	}), nil
}

// Open returns a logger for level writing to path, or to the XDG state file
// when path is empty. Level "off" or "" returns Discard and a no-op closer.
func Open(level, path string) (*log.Logger, io.Closer, error) {
	if level == "" || strings.EqualFold(level, Off) {
		return Discard(), io.NopCloser(nil), nil
	}

	if path == "" {
		p, err := xdg.StateFile(stateRelPath)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	// #nosec G304 - path is the user's configured log file
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
