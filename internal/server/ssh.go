// Package server serves retrodesk desktops to remote clients over SSH and
// to browsers through a web terminal. Every session gets its own desktop.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// ModelFactory builds the model for one session of width x height cells.
type ModelFactory func(width, height int) (tea.Model, []tea.ProgramOption)

// SSHConfig holds configuration for the SSH server.
type SSHConfig struct {
	Host    string
	Port    string
	KeyPath string // empty selects $XDG_DATA_HOME/retrodesk/ssh_host_ed25519
	Version string
	Factory ModelFactory
	Logger  *log.Logger
}

const shutdownTimeout = 10 * time.Second

// DefaultHostKeyPath returns where the SSH host key is kept.
func DefaultHostKeyPath() (string, error) {
	return xdg.DataFile("retrodesk/ssh_host_ed25519")
}

// StartSSHServer serves desktops over SSH until ctx is cancelled.
func StartSSHServer(ctx context.Context, cfg *SSHConfig) error {
	if cfg.Factory == nil {
		return errors.New("ssh server: no model factory")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	keyPath := cfg.KeyPath
	if keyPath == "" {
		p, err := DefaultHostKeyPath()
		if err != nil {
			return fmt.Errorf("failed to resolve host key path: %w", err)
		}
		keyPath = p
	}

	handler := func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sess.Pty()
		logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr(),
			"width", pty.Window.Width, "height", pty.Window.Height)
		return cfg.Factory(pty.Window.Width, pty.Window.Height)
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	s, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(keyPath),
		wish.WithVersion(cfg.Version),
		wish.WithMiddleware(
			bubbletea.Middleware(handler),
			activeterm.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create ssh server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ssh server listening", "addr", addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("ssh server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("stopping ssh server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to stop ssh server: %w", err)
	}
	return nil
}
