package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/input"
	"github.com/Gaurav-Gosain/retrodesk/internal/logging"
	"github.com/Gaurav-Gosain/retrodesk/internal/server"
	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("retrodesk needs an interactive terminal; use `retrodesk ssh` or `retrodesk web` to serve it")

func overrides() config.Overrides {
	return config.Overrides{
		ASCIIOnly:  asciiOnly,
		HideClock:  hideClock,
		HideTray:   hideTray,
		Maximized:  maximized,
		NoResize:   noResize,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		ThemeName:  themeName,
	}
}

// loadConfig reads the user config, applies CLI overrides and validates
// the result. Validation warnings are printed and otherwise ignored.
func loadConfig() (*config.UserConfig, error) {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(overrides(), userConfig)

	result := config.ValidateConfig(userConfig)
	for _, issue := range result.Warnings {
		log.Printf("Warning: %s", issue)
	}
	if result.HasErrors() {
		return nil, fmt.Errorf("%w: %s", config.ErrInvalidConfig, result.Errors[0])
	}
	return userConfig, nil
}

// openLogger opens the structured log sink. --debug forces debug level.
func openLogger(userConfig *config.UserConfig) (*charmlog.Logger, io.Closer, error) {
	level := userConfig.Log.Level
	if debugMode {
		level = "debug"
	}
	return logging.Open(level, userConfig.Log.File)
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	userConfig, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(userConfig)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			log.Printf("Warning: failed to close log file: %v", closeErr)
		}
	}()

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("starting", "config", configPath, "version", version)
	}

	desktop.SetInputHandler(input.HandleInput)

	initial := desktop.New(desktop.Options{
		Config: userConfig,
		Logger: logger,
	})

	p := tea.NewProgram(
		initial,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(input.FilterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()

	if final, ok := finalModel.(*desktop.Desktop); ok {
		final.Close()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// sessionFactory builds an independent desktop per remote session. Each
// session gets its own copy of the config.
func sessionFactory(userConfig *config.UserConfig, logger *charmlog.Logger) server.ModelFactory {
	return func(width, height int) (tea.Model, []tea.ProgramOption) {
		cfg := *userConfig
		cfg.Icons = append([]config.IconConfig(nil), userConfig.Icons...)
		model := desktop.New(desktop.Options{
			Config: &cfg,
			Logger: logger,
			Width:  width,
			Height: height,
		})
		return model, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
			tea.WithFilter(input.FilterMouseMotion),
		}
	}
}

// serve runs start until SIGINT or SIGTERM.
func serve(name string, start func(ctx context.Context, userConfig *config.UserConfig, logger *charmlog.Logger) error) error {
	userConfig, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(userConfig)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer func() { _ = closer.Close() }()

	desktop.SetInputHandler(input.HandleInput)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Printf("Shutting down %s server...", name)
		cancel()
	}()

	return start(ctx, userConfig, logger)
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	log.Printf("Starting retrodesk SSH server on %s:%s", sshHost, sshPort)
	return serve("SSH", func(ctx context.Context, userConfig *config.UserConfig, logger *charmlog.Logger) error {
		cfg := &server.SSHConfig{
			Host:    sshHost,
			Port:    sshPort,
			KeyPath: sshKeyPath,
			Version: version,
			Factory: sessionFactory(userConfig, logger),
			Logger:  logger,
		}
		if err := server.StartSSHServer(ctx, cfg); err != nil {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})
}

func runWebServer(webHost, webPort string) error {
	log.Printf("Starting retrodesk web server on %s:%s", webHost, webPort)
	return serve("web", func(ctx context.Context, userConfig *config.UserConfig, logger *charmlog.Logger) error {
		cfg := &server.WebConfig{
			Host:    webHost,
			Port:    webPort,
			Factory: sessionFactory(userConfig, logger),
			Logger:  logger,
		}
		if err := server.StartWebServer(ctx, cfg); err != nil {
			return fmt.Errorf("web server error: %w", err)
		}
		return nil
	})
}
