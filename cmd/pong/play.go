package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/scene"
	"github.com/vovakirdan/tui-pong/internal/spectate"
)

var (
	flagMode       string
	flagMute       bool
	flagSpectate   string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle (two player mode)
  Space      - Serve
  1 / 2      - Single player / two player
  R          - New match (after game over)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Difficulty options (computer opponent):
  easy   - Slow and lazy
  normal - Default
  hard   - Fast and precise

Examples:
  pong play
  pong play --mode two
  pong play --difficulty hard --mute
  pong play --spectate :8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by the terminal and window frontends.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMode, "mode", "", "Preselect mode: single, two")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func parseMode(s string) (match.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return match.ModeUnselected, nil
	case "single", "1":
		return match.ModeSinglePlayer, nil
	case "two", "2":
		return match.ModeTwoPlayer, nil
	default:
		return match.ModeUnselected, fmt.Errorf("unknown mode %q (want single or two)", s)
	}
}

// session is what both local frontends need to build a scene.
type session struct {
	cfg    config.PongConfig
	mode   match.Mode
	logger *log.Logger
	sounds audio.Player
	sinks  []scene.Sink
	close  func()
}

// openSession loads config, opens audio and starts the spectator feed.
func openSession(ctx context.Context, logger *log.Logger) (*session, error) {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return nil, err
	}
	mode, err := parseMode(flagMode)
	if err != nil {
		return nil, err
	}

	sounds, err := audio.New(cfg.Audio.Enabled && !flagMute, cfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}

	s := &session{
		cfg:    cfg,
		mode:   mode,
		logger: logger,
		sounds: sounds,
		close:  sounds.Close,
	}

	if flagSpectate != "" {
		hub := spectate.NewHub(logger.WithPrefix("spectate"))
		s.sinks = append(s.sinks, hub)
		go func() {
			if err := hub.ListenAndServe(ctx, flagSpectate); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
	}
	return s, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("pong", io.Discard)
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

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config: s.cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Mode:   s.mode,
		Logger: logger,
		Sounds: s.sounds,
		Sinks:  s.sinks,
	})
}
