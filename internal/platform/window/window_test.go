package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

func keys(down ...ebiten.Key) KeyState {
	set := make(map[ebiten.Key]bool, len(down))
	for _, k := range down {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestPollInput(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        []core.Action
	}{
		{"nothing", nil, nil, nil},
		{"left up", []ebiten.Key{ebiten.KeyW}, nil, []core.Action{core.ActionLeftUp}},
		{"both paddles", []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowUp}, nil,
			[]core.Action{core.ActionLeftDown, core.ActionRightUp}},
		{"launch", nil, []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionLaunch}},
		{"numpad select", nil, []ebiten.Key{ebiten.KeyNumpad2}, []core.Action{core.ActionSelectTwo}},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
		// Edge keys held down for several ticks fire only once.
		{"held space ignored", []ebiten.Key{ebiten.KeySpace}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := PollInput(keys(tt.pressed...), keys(tt.justPressed...))

			active := 0
			for _, on := range in.Actions {
				if on {
					active++
				}
			}
			if active != len(tt.want) {
				t.Errorf("active actions = %v, want %v", in.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("missing action %v", a)
				}
			}
		})
	}
}

func newTestGame(mode match.Mode) *Game {
	return NewGame(Options{
		Config:  config.DefaultPongConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Mode:    mode,
	})
}

func TestGameUpdateSelectsMode(t *testing.T) {
	g := newTestGame(match.ModeUnselected)
	g.pressed = keys()
	g.justPressed = keys(ebiten.KeyDigit1)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got := g.Scene().Match().Mode(); got != match.ModeSinglePlayer {
		t.Errorf("mode = %v, want single", got)
	}
}

func TestGameUpdateEscapeTerminates(t *testing.T) {
	g := newTestGame(match.ModeTwoPlayer)
	g.pressed = keys()
	g.justPressed = keys(ebiten.KeyEscape)

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestGameUpdateHeldKeyMovesPaddle(t *testing.T) {
	g := newTestGame(match.ModeTwoPlayer)
	g.pressed = keys(ebiten.KeyArrowDown)
	g.justPressed = keys()
	start := g.Scene().Match().Right().Y

	for range 3 {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}

	want := start + 3*config.DefaultPongConfig().Paddles.Speed
	if got := g.Scene().Match().Right().Y; got != want {
		t.Errorf("right y = %v, want %v", got, want)
	}
}

func TestLayoutIsFieldSize(t *testing.T) {
	g := newTestGame(match.ModeUnselected)
	w, h := g.Layout(1920, 1080)
	cfg := config.DefaultPongConfig()
	if w != int(cfg.Field.Width) || h != int(cfg.Field.Height) {
		t.Errorf("Layout() = %dx%d, want %vx%v", w, h, cfg.Field.Width, cfg.Field.Height)
	}
}

func TestRendererCachesLabels(t *testing.T) {
	r := NewRenderer()

	first := r.label("GAME OVER")
	if again := r.label("GAME OVER"); again != first {
		t.Error("same text should reuse the cached image")
	}
	if other := r.label("3"); other == first {
		t.Error("different texts need different images")
	}
	if got := len(r.labels); got != 2 {
		t.Errorf("cached labels = %d, want 2", got)
	}
	if w, h := first.Bounds().Dx(), first.Bounds().Dy(); w != 9*glyphW || h != glyphH {
		t.Errorf("label size = %dx%d, want %dx%d", w, h, 9*glyphW, glyphH)
	}
}
