package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/tui"
	"github.com/akyairhashvil/fastlog/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("fastlog needs an interactive terminal")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.DefaultSettings()

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Intermittent fasting tracker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			if !isTerminal() {
				return errNotTerminal
			}
			return run(cmd.Context(), settings)
		},
	}
	flags := root.Flags()
	flags.String("config", filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName), "settings file")
	flags.String("store", defaults.Store, "session log backend (memory|sqlite)")
	flags.String("theme", defaults.Theme, "color theme (default|dracula)")
	flags.Float64("target", defaults.TargetHours, "target fast length in hours, 0 hides the progress bar")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, tui.VersionLabel())
			return err
		},
	}
}

// resolveSettings loads the settings file and applies flags given explicitly.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return config.Settings{}, err
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return settings, err
	}
	if flags.Changed("store") {
		if settings.Store, err = flags.GetString("store"); err != nil {
			return settings, err
		}
	}
	if flags.Changed("theme") {
		if settings.Theme, err = flags.GetString("theme"); err != nil {
			return settings, err
		}
	}
	if flags.Changed("target") {
		if settings.TargetHours, err = flags.GetFloat64("target"); err != nil {
			return settings, err
		}
	}
	return settings, settings.Validate()
}

func run(ctx context.Context, settings config.Settings) error {
	closeLogging, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLogging()

	sessions, closeStore, err := openSessionLog(ctx, settings.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	tracker := fasting.NewTracker(sessions, fasting.SystemClock{})
	model := tui.NewDashboardModel(ctx, tracker, tui.Options{
		Theme:      settings.Theme,
		Target:     settings.TargetDuration(),
		ReportsDir: settings.ReportsDir,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// setupLogging keeps the standard logger off the screen. With the debug
// variable set it writes to a file in the data directory instead.
func setupLogging() (func(), error) {
	if os.Getenv(config.DebugEnvVar) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	dir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, config.DebugLogFile), config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
