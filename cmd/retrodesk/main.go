// Package main implements retrodesk, a retro desktop shell for the terminal.
// It shows desktop icons that open a draggable, resizable application window
// and a taskbar clock, served locally, over SSH or in a browser.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	debugMode  bool
	asciiOnly  bool
	themeName  string
	listThemes bool
	maximized  bool
	noResize   bool
	cellWidth  int
	cellHeight int
	hideClock  bool
	hideTray   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "retrodesk",
		Short: "Retro desktop shell for the terminal",
		Long: `retrodesk - a retro desktop shell for the terminal

Desktop icons open an application window you can drag by its title bar,
resize from the corner grip, minimize, maximize and close. On narrow
terminals the window fills the screen above the taskbar.`,
		Example: `  # Run retrodesk
  retrodesk

  # Open windows maximized, without the resize grip
  retrodesk --maximized --no-resize

  # Use a bubbletint theme
  retrodesk --theme dracula

  # Treat each cell as 10x20 pixels
  retrodesk --cell-width 10 --cell-height 20

  # Serve over SSH
  retrodesk ssh --port 2222

  # Serve in the browser
  retrodesk web --port 7681`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the state directory")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII glyphs for window buttons and the resize grip")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty for the retro palette")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().BoolVar(&maximized, "maximized", false, "Open windows maximized")
	rootCmd.PersistentFlags().BoolVar(&noResize, "no-resize", false, "Hide the window resize grip")
	rootCmd.PersistentFlags().IntVar(&cellWidth, "cell-width", 0, "Pixels per terminal column (default: from config or 8)")
	rootCmd.PersistentFlags().IntVar(&cellHeight, "cell-height", 0, "Pixels per terminal row (default: from config or 16)")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the taskbar clock")
	rootCmd.PersistentFlags().BoolVar(&hideTray, "hide-tray", false, "Hide the CPU/RAM tray")

	var sshPort, sshHost, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run retrodesk as SSH server",
		Long: `Run retrodesk as an SSH server

Every SSH session gets its own desktop. The server generates a host key
automatically if none exists.`,
		Example: `  # Start SSH server on default port
  retrodesk ssh

  # Specify custom host key
  retrodesk ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	var webPort, webHost string
	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve retrodesk in the browser",
		Long:  `Serve retrodesk through a web terminal. Every browser tab gets its own desktop.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWebServer(webHost, webPort)
		},
	}
	webCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	webCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage retrodesk configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the retrodesk configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configCmd.AddCommand(configPathCmd, configResetCmd)
	rootCmd.AddCommand(sshCmd, webCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithCommit(commit),
	); err != nil {
		os.Exit(1)
	}
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func resetConfigToDefaults(yes bool) error {
	if !yes {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	path, err := config.ResetConfig()
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}
