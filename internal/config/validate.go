package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
)

// ErrInvalidConfig is returned when the config file fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationIssue is one problem found in the config.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Field, i.Key, i.Message)
}

// ValidationResult collects errors (fatal) and warnings (fixed up in place).
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any fatal issue was found.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any non-fatal issue was found.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) errorf(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) warnf(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

var validLogLevels = []string{"off", "debug", "info", "warn", "error"}

// ValidateConfig checks cfg. Sizes below the window minimums are raised and
// reported as warnings; values that cannot be repaired are errors.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}

	initial := cfg.Window.Initial
	if !initial.Valid() {
		cfg.Window.Initial = initial.Clamp()
		v.warnf("window", "initial", "size %dx%d raised to minimum %dx%d",
			initial.Width, initial.Height, geometry.MinWidth, geometry.MinHeight)
	}

	if cfg.Viewport.CellWidth < 0 {
		v.errorf("viewport", "cell_width", "must not be negative, got %d", cfg.Viewport.CellWidth)
	}
	if cfg.Viewport.CellHeight < 0 {
		v.errorf("viewport", "cell_height", "must not be negative, got %d", cfg.Viewport.CellHeight)
	}
	if cfg.Viewport.CompactMaxWidth < 0 {
		v.errorf("viewport", "compact_max_width", "must not be negative, got %d", cfg.Viewport.CompactMaxWidth)
	}

	if !slices.Contains(validLogLevels, strings.ToLower(cfg.Log.Level)) {
		v.errorf("log", "level", "unknown level %q (want one of %s)", cfg.Log.Level, strings.Join(validLogLevels, ", "))
	}

	for i, icon := range cfg.Icons {
		if strings.TrimSpace(icon.Name) == "" {
			v.errorf("icons", fmt.Sprintf("[%d].name", i), "must not be empty")
		}
	}

	return v
}
