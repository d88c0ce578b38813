package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a match in a desktop window. Keys are polled every tick, so
paddles move for exactly as long as their keys are held.

Controls are the same as in the terminal; Escape closes the window.

Examples:
  pong window
  pong window --scale 0.5 --mode single`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playing field")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("pong", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := openSession(ctx, logger)
	if err != nil {
		return err
	}
	defer s.close()

	return window.Run(window.Options{
		Config: s.cfg,
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Mode:   s.mode,
		Logger: logger,
		Sounds: s.sounds,
		Sinks:  s.sinks,
		Scale:  flagScale,
		Debug:  flagDebug,
	})
}
