package server

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/charmbracelet/log"
)

// WebConfig holds configuration for the web terminal server.
type WebConfig struct {
	Host    string
	Port    string
	Factory ModelFactory
	Logger  *log.Logger
}

// StartWebServer serves desktops to browsers until ctx is cancelled.
func StartWebServer(ctx context.Context, cfg *WebConfig) error {
	if cfg.Factory == nil {
		return errors.New("web server: no model factory")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	sipCfg := sip.DefaultConfig()
	if cfg.Host != "" {
		sipCfg.Host = cfg.Host
	}
	if cfg.Port != "" {
		sipCfg.Port = cfg.Port
	}

	server := sip.NewServer(sipCfg)
	logger.Info("web server listening", "host", sipCfg.Host, "port", sipCfg.Port)

	err := server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
		pty := sess.Pty()
		logger.Info("browser session started", "width", pty.Width, "height", pty.Height)
		return cfg.Factory(pty.Width, pty.Height)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}
