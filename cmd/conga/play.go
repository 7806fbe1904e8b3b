package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/conga/internal/core"
	"github.com/vovakirdan/conga/internal/platform/tui"
)

var (
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a chase session in the current terminal.

Controls:
  Mouse          - Click or drag to set where the zombie heads
  Arrows/WASD    - Nudge the target
  R              - Restart (after a session ends)
  ?              - Show all keys
  Q/Ctrl+C       - Quit

A finished session shows a summary and a new one starts after 3 seconds.

Difficulty options:
  easy   - More lives, slower cat ladies
  normal - Defaults from the config file
  hard   - Fewer lives, more cats to eat, faster cat ladies

Examples:
  conga play
  conga play --difficulty easy
  conga play --config ./my-chase.yaml --log ./conga.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write session log to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadChase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Chase:           cfg,
		Logger:          logger,
		AllowScreenshot: true,
	})

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a logger writing to path, or a discarding one when
// path is empty. The terminal itself belongs to the game.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "conga",
	})
	return logger, func() {
		//nolint:errcheck // Best-effort close, output already flushed
		f.Close()
	}, nil
}
