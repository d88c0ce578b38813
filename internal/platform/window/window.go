// Package window plays a match in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/scene"
)

// Title is the window caption.
const Title = "Pong"

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorNet        = color.RGBA{0xc8, 0xc8, 0xc8, 0x50}
	colorPaddle     = color.White
	colorBall       = color.RGBA{0xff, 0xa0, 0x00, 0xff}
	colorText       = color.White
	colorGameOver   = color.RGBA{0xff, 0x30, 0x30, 0xff}
)

// Options configures a windowed match.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Mode    match.Mode
	Logger  *log.Logger
	Sounds  scene.Sounds
	Sinks   []scene.Sink

	// Scale multiplies the field size to get the window size. Zero means 1.
	Scale float64
	// Debug draws the measured tick rate in the top-left corner.
	Debug bool
}

type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// Held keys report every tick they are down.
var heldBindings = []binding{
	{core.ActionLeftUp, []ebiten.Key{ebiten.KeyW}},
	{core.ActionLeftDown, []ebiten.Key{ebiten.KeyS}},
	{core.ActionRightUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{core.ActionRightDown, []ebiten.Key{ebiten.KeyArrowDown}},
}

// Edge keys report only on the tick they go down.
var edgeBindings = []binding{
	{core.ActionLaunch, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionSelectSingle, []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
	{core.ActionSelectTwo, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape}},
}

// KeyState reports whether a key is down, or went down this tick.
type KeyState func(ebiten.Key) bool

// PollInput builds the input frame for one tick.
func PollInput(pressed, justPressed KeyState) core.InputFrame {
	in := core.NewInputFrame()
	collect(&in, heldBindings, pressed)
	collect(&in, edgeBindings, justPressed)
	return in
}

func collect(in *core.InputFrame, bindings []binding, state KeyState) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if state(k) {
				in.Set(b.action)
				break
			}
		}
	}
}

// Game adapts a scene to ebiten.
type Game struct {
	scene    *scene.Scene
	renderer *Renderer
	debug    bool

	pressed     KeyState
	justPressed KeyState
}

// NewGame creates a windowed game with a fresh match.
func NewGame(opts Options) *Game {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
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

	return &Game{
		scene:       scene.New(opts.Config, rt, sceneOpts...),
		renderer:    NewRenderer(),
		debug:       opts.Debug,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Scene returns the hosted scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Update advances the match by one tick.
func (g *Game) Update() error {
	in := PollInput(g.pressed, g.justPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.scene.Update(in)
	return nil
}

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scene.Frame())
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

// Layout keeps the logical screen at the field size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.scene.Config()
	return int(cfg.Field.Width), int(cfg.Field.Height)
}

// Renderer draws frames onto an ebiten image.
type Renderer struct {
	// labels holds one rendered image per distinct text. The set of texts
	// is small: scores, prompts and banners.
	labels map[string]*ebiten.Image
}

// NewRenderer creates a renderer with an empty label cache.
func NewRenderer() *Renderer {
	return &Renderer{labels: make(map[string]*ebiten.Image)}
}

// Draw paints a frame onto dst in field units.
func (r *Renderer) Draw(dst *ebiten.Image, f scene.Frame) {
	dst.Fill(colorBackground)

	if f.ShowPlayfield {
		drawNet(dst, f)
		fillBox(dst, f.LeftPaddle, colorPaddle)
		fillBox(dst, f.RightPaddle, colorPaddle)
		fillBox(dst, f.Ball, colorBall)

		r.drawLabel(dst, f.LeftScore, 4, colorText)
		r.drawLabel(dst, f.RightScore, 4, colorText)
	}

	for _, l := range f.Prompt {
		r.drawLabel(dst, l, 3, colorText)
	}
	if f.ShowPlayfield && f.BallResting {
		r.drawLabel(dst, scene.Label{X: f.Width / 2, Y: f.Height - 40, Text: scene.HintLaunch, Centered: true}, 2, colorText)
	}

	if f.ShowGameOver {
		r.drawLabel(dst, f.GameOver, 6, colorGameOver)
		r.drawLabel(dst, f.WinnerLabel, 3, colorText)
		r.drawLabel(dst, scene.Label{X: f.Width / 2, Y: f.Height/2 + 120, Text: scene.HintRestart, Centered: true}, 2, colorText)
	}
}

func drawNet(dst *ebiten.Image, f scene.Frame) {
	x := float32(f.Width/2 - 2)
	for y := 0.0; y < f.Height; y += 24 {
		vector.DrawFilledRect(dst, x, float32(y), 4, 14, colorNet, false)
	}
}

// fillBox draws a centre-anchored box.
func fillBox(dst *ebiten.Image, b scene.Box, c color.Color) {
	vector.DrawFilledRect(dst,
		float32(b.X-b.W/2), float32(b.Y-b.H/2),
		float32(b.W), float32(b.H),
		c, false)
}

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// label returns the debug-font image of text, rendering it on first use.
func (r *Renderer) label(text string) *ebiten.Image {
	if img, ok := r.labels[text]; ok {
		return img
	}
	img := ebiten.NewImage(len([]rune(text))*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	r.labels[text] = img
	return img
}

// drawLabel prints text through the debug font, scaled up and tinted.
func (r *Renderer) drawLabel(dst *ebiten.Image, l scene.Label, scale float64, c color.Color) {
	if l.Text == "" {
		return
	}
	img := r.label(l.Text)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	x, y := l.X, l.Y
	if l.Centered {
		x -= float64(w) * scale / 2
		y -= float64(h) * scale / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(img, op)
}

// Run opens the window and plays until it is closed or Escape is pressed.
func Run(opts Options) error {
	g := NewGame(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cfg := g.scene.Config()
	ebiten.SetWindowSize(int(cfg.Field.Width*scale), int(cfg.Field.Height*scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(g.scene.TickRate())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
