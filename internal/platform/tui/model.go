package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/scene"
)

// Options configures a terminal match.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Mode    match.Mode // preselected mode; ModeUnselected shows the prompt
	Logger  *log.Logger
	Sounds  scene.Sounds
	Sinks   []scene.Sink

	// ScreenshotDir defaults to ~/.pong/screenshots.
	ScreenshotDir string

	// DisableScreenshots turns the screenshot key off. SSH sessions set it
	// so remote users cannot write into the server's home directory.
	DisableScreenshots bool
}

// Model is the Bubble Tea model for one match in a terminal.
type Model struct {
	scene    *scene.Scene
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	input    core.InputFrame
	config   core.RuntimeConfig
	logger   *log.Logger
	shotDir  string
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh match.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sceneOpts := []scene.Option{
		scene.WithLogger(logger),
		scene.WithSounds(opts.Sounds),
		scene.WithMode(opts.Mode),
	}
	for _, sink := range opts.Sinks {
		sceneOpts = append(sceneOpts, scene.WithSink(sink))
	}

	h := help.New()
	h.ShowAll = false

	keys := DefaultKeyMap()
	keys.Screenshot.SetEnabled(!opts.DisableScreenshots)

	return Model{
		scene:   scene.New(opts.Config, cfg, sceneOpts...),
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		keys:    keys,
		help:    h,
		hold:    NewHoldTracker(HoldTicks),
		input:   core.NewInputFrame(),
		config:  cfg,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
	}
}

// playHeight reserves the bottom line for the help bar.
func playHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case IsHeld(action):
		m.hold.Press(action)
	case action != core.ActionNone:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The field is scaled into the new size; the match goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.input)
	res := m.scene.Update(m.input)
	if res.Has(match.EventModeSelected) || m.input.Has(core.ActionRestart) {
		m.hold.Reset()
	} else {
		m.hold.Tick()
	}

	// Clear input for next frame
	m.input.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".pong", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Scene returns the scene driven by the model.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
