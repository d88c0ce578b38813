package scene

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

// stubRandom returns queued values, then the low bound.
type stubRandom struct {
	values []int
}

func (r *stubRandom) IntRange(lo, hi int) int {
	if len(r.values) == 0 {
		return lo
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

type soundCounter struct {
	hits, walls, scores, overs int
}

func (c *soundCounter) PaddleHit()  { c.hits++ }
func (c *soundCounter) WallBounce() { c.walls++ }
func (c *soundCounter) Score()      { c.scores++ }
func (c *soundCounter) GameOver()   { c.overs++ }

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestScene(cfg config.PongConfig, values []int, opts ...Option) *Scene {
	rt := core.DefaultConfig()
	opts = append([]Option{WithRandom(&stubRandom{values: values})}, opts...)
	return New(cfg, rt, opts...)
}

// runUntil updates with empty input until the match reaches phase.
func runUntil(t *testing.T, s *Scene, phase match.Phase) {
	t.Helper()
	for range 2000 {
		if s.Match().Phase() == phase {
			return
		}
		s.Update(input())
	}
	t.Fatalf("phase %v not reached, still %v", phase, s.Match().Phase())
}

func TestNewSceneAwaitsMode(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil)

	if got := s.Match().Phase(); got != match.PhaseAwaitingMode {
		t.Fatalf("phase = %v, want awaiting_mode", got)
	}
	f := s.Frame()
	if !f.ShowModePrompt || f.ShowGameOver || f.ShowPlayfield {
		t.Errorf("visibility = prompt %v playfield %v game over %v",
			f.ShowModePrompt, f.ShowPlayfield, f.ShowGameOver)
	}
	if len(f.Prompt) != 2 || f.Prompt[0].Text != PromptSingle || f.Prompt[1].Text != PromptTwo {
		t.Errorf("prompt = %+v", f.Prompt)
	}
	if f.LeftScore.Text != "0" || f.RightScore.Text != "0" {
		t.Errorf("score text = %q/%q, want 0/0", f.LeftScore.Text, f.RightScore.Text)
	}
}

func TestLaunchIgnoredUntilModeSelected(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), []int{1, 1})

	res := s.Update(input(core.ActionLaunch))
	if res.Has(match.EventLaunch) || s.Match().Ball().InMotion {
		t.Fatal("launch before mode selection should be ignored")
	}

	res = s.Update(input(core.ActionSelectSingle))
	if !res.Has(match.EventModeSelected) || s.Match().Mode() != match.ModeSinglePlayer {
		t.Fatalf("mode selection failed: %+v", res)
	}
	if f := s.Frame(); f.ShowModePrompt || !f.ShowPlayfield {
		t.Errorf("after mode selection: prompt %v playfield %v, want the playfield revealed",
			f.ShowModePrompt, f.ShowPlayfield)
	}

	res = s.Update(input(core.ActionLaunch))
	if !res.Has(match.EventLaunch) || !s.Match().Ball().InMotion {
		t.Fatal("launch after mode selection should start the ball")
	}
	// Launch and physics run in the same tick.
	got := s.Match().Ball().Position
	if math.Abs(got.X-517) > 1e-9 || math.Abs(got.Y-389) > 1e-9 {
		t.Errorf("ball = %+v, want (517, 389)", got)
	}
}

func TestModeSelectionFirstWins(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil)

	s.Update(input(core.ActionSelectSingle, core.ActionSelectTwo))
	if got := s.Match().Mode(); got != match.ModeSinglePlayer {
		t.Errorf("mode = %v, want single", got)
	}
	s.Update(input(core.ActionSelectTwo))
	if got := s.Match().Mode(); got != match.ModeSinglePlayer {
		t.Errorf("mode changed to %v", got)
	}
}

func TestHeldKeysMovePaddles(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil, WithMode(match.ModeTwoPlayer))

	s.Update(input(core.ActionLeftUp, core.ActionRightDown))
	if got := s.Match().Left().Y; got != 379 {
		t.Errorf("left y = %v, want 379", got)
	}
	if got := s.Match().Right().Y; got != 389 {
		t.Errorf("right y = %v, want 389", got)
	}
}

func TestPaddleContactSpeedsBallUp(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Paddles.Height = cfg.Field.Height // paddles cover the whole side
	snd := &soundCounter{}
	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)
	s := newTestScene(cfg, []int{0, 1}, WithMode(match.ModeTwoPlayer), WithSounds(snd), WithLogger(logger))

	s.Update(input(core.ActionLaunch))
	launch := s.Match().Speed()

	var hit bool
	for range 200 {
		if s.Update(input()).Has(match.EventPaddleHit) {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatal("ball never reached the left paddle")
	}
	if got := s.Match().Snapshot().Hits; got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
	if want := launch * 1.15; math.Abs(s.Match().Speed()-want) > 1e-9 {
		t.Errorf("speed = %v, want %v", s.Match().Speed(), want)
	}
	if s.Match().Ball().Velocity.X <= 0 {
		t.Errorf("ball should leave the left paddle to the right, vx = %v", s.Match().Ball().Velocity.X)
	}
	if snd.hits != 1 {
		t.Errorf("paddle hit sounds = %d, want 1", snd.hits)
	}
	if snd.walls == 0 {
		t.Error("expected a wall bounce sound on the way")
	}
	if out := logs.String(); !strings.Contains(out, "paddle hit") || !strings.Contains(out, "paddle_y=384") {
		t.Errorf("paddle hit log missing side paddle position:\n%s", out)
	}
}

func gameOverScene(t *testing.T, opts ...Option) (*Scene, *soundCounter) {
	t.Helper()
	cfg := config.DefaultPongConfig()
	cfg.Rules.ScoreLimit = 0
	snd := &soundCounter{}
	opts = append([]Option{WithMode(match.ModeTwoPlayer), WithSounds(snd)}, opts...)
	s := newTestScene(cfg, []int{1, 1}, opts...)

	s.Update(input(core.ActionLaunch))
	runUntil(t, s, match.PhaseGameOver)
	return s, snd
}

func TestGameOverFrame(t *testing.T) {
	s, snd := gameOverScene(t)

	winner, over := s.Match().Winner()
	if !over || winner != match.SideLeft {
		t.Fatalf("winner = %v over = %v, want left", winner, over)
	}
	f := s.Frame()
	if !f.ShowGameOver || f.ShowPlayfield || f.ShowModePrompt {
		t.Errorf("visibility = prompt %v playfield %v game over %v",
			f.ShowModePrompt, f.ShowPlayfield, f.ShowGameOver)
	}
	if f.GameOver.Text != GameOverText || f.WinnerLabel.Text != "Left side won!" || f.Winner != "left" {
		t.Errorf("banner = %q / %q (%q)", f.GameOver.Text, f.WinnerLabel.Text, f.Winner)
	}
	if snd.scores != 1 || snd.overs != 1 {
		t.Errorf("sounds: scores %d game over %d, want 1 and 1", snd.scores, snd.overs)
	}
}

func TestPhysicsFrozenAfterGameOver(t *testing.T) {
	s, _ := gameOverScene(t)
	before := s.Match().Snapshot()

	for range 30 {
		s.Update(input(core.ActionLaunch, core.ActionLeftDown, core.ActionRightUp))
	}
	if after := s.Match().Snapshot(); after != before {
		t.Errorf("state changed after game over:\n%+v\n%+v", before, after)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s, _ := gameOverScene(t)
	old := s.Match()

	res := s.Update(input(core.ActionRestart))
	if s.Match() == old {
		t.Fatal("restart should create a new match")
	}
	if res.Phase != match.PhasePlaying {
		t.Errorf("phase = %v, want playing with a preselected mode", res.Phase)
	}
	if got := s.Match().Score(); got != (match.Score{}) {
		t.Errorf("score = %+v, want 0-0", got)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil, WithMode(match.ModeSinglePlayer))
	old := s.Match()

	s.Update(input(core.ActionRestart))
	if s.Match() != old {
		t.Error("restart should only apply after game over")
	}
}

func TestRestartWithoutPresetAwaitsMode(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil)
	s.Update(input(core.ActionSelectTwo))

	s.Restart()
	if got := s.Match().Phase(); got != match.PhaseAwaitingMode {
		t.Errorf("phase = %v, want awaiting_mode", got)
	}
}

func TestSinksReceiveEveryFrame(t *testing.T) {
	var frames []Frame
	s := newTestScene(config.DefaultPongConfig(), nil,
		WithSink(SinkFunc(func(f Frame) { frames = append(frames, f) })))

	for range 3 {
		s.Update(input())
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(frames))
	}
	for i, f := range frames {
		if f.Tick != uint64(i+1) {
			t.Errorf("frame %d tick = %d", i, f.Tick)
		}
	}
}

func TestSceneLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s := newTestScene(config.DefaultPongConfig(), []int{1, 1}, WithLogger(logger))
	s.Update(input(core.ActionSelectSingle))
	s.Update(input(core.ActionLaunch))

	out := buf.String()
	for _, want := range []string{"mode selected", "single", "ball launched"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderModePrompt(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil)
	dst := core.NewScreen(80, 24)

	s.Render(dst)

	out := dst.String()
	for _, want := range []string{PromptSingle, PromptTwo} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, PaddleChar) || strings.ContainsRune(out, BallChar) {
		t.Error("paddles and ball should stay hidden until a mode is chosen")
	}
}

func TestRenderPlayfield(t *testing.T) {
	s := newTestScene(config.DefaultPongConfig(), nil, WithMode(match.ModeTwoPlayer))
	dst := core.NewScreen(80, 24)

	s.Render(dst)

	// Left paddle spans x 40..60, y 334..434 in a 1024x768 field.
	if got := dst.GetCell(3, 12).Rune; got != PaddleChar {
		t.Errorf("left paddle cell = %q, want %q", got, PaddleChar)
	}
	if got := dst.GetCell(76, 12).Rune; got != PaddleChar {
		t.Errorf("right paddle cell = %q, want %q", got, PaddleChar)
	}
	if got := dst.GetCell(40, 12).Rune; got != BallChar {
		t.Errorf("ball cell = %q, want %q", got, BallChar)
	}
	if got := dst.GetCell(40, 0).Rune; got != NetChar {
		t.Errorf("net cell = %q, want %q", got, NetChar)
	}
	if !strings.Contains(dst.String(), HintLaunch) {
		t.Error("resting ball should show the serve hint")
	}
}

func TestRenderGameOver(t *testing.T) {
	s, _ := gameOverScene(t)
	dst := core.NewScreen(80, 24)

	s.Render(dst)

	out := dst.String()
	for _, want := range []string{GameOverText, "Left side won!", HintRestart} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, PaddleChar) {
		t.Error("paddles should be hidden after game over")
	}
}

func TestRenderBallOnFieldEdge(t *testing.T) {
	f := Frame{
		Width:         1024,
		Height:        768,
		ShowPlayfield: true,
		Ball:          Box{X: 1024, Y: 768, W: 24, H: 24},
	}
	dst := core.NewScreen(80, 24)

	Render(dst, f)

	if got := dst.GetCell(79, 23).Rune; got != BallChar {
		t.Errorf("corner cell = %q, want the ball", got)
	}
}

func TestGameOverLogsFinalScore(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	gameOverScene(t, WithLogger(logger))

	out := buf.String()
	for _, want := range []string{"game over", "winner=left", "left=1", "right=0", "hits=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
