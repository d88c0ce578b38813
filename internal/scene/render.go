package scene

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Terminal glyphs.
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render rasterises the current frame into dst.
func (s *Scene) Render(dst *core.Screen) {
	Render(dst, s.Frame())
}

// Render rasterises a frame into dst, scaling field units to cells.
func Render(dst *core.Screen, f Frame) {
	dst.Clear()
	if f.Width <= 0 || f.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	g := grid{sx: float64(dst.Width()) / f.Width, sy: float64(dst.Height()) / f.Height}

	if f.ShowPlayfield {
		dst.DrawVLine(dst.Width()/2, 0, dst.Height(), 2, NetChar, core.ColorGray)

		g.fill(dst, f.LeftPaddle, PaddleChar, core.ColorWhite)
		g.fill(dst, f.RightPaddle, PaddleChar, core.ColorWhite)
		// A ball centred on the field edge still gets a cell.
		bx := core.Clamp(g.col(f.Ball.X), 0, dst.Width()-1)
		by := core.Clamp(g.row(f.Ball.Y), 0, dst.Height()-1)
		dst.SetColor(bx, by, BallChar, core.ColorYellow)

		dst.DrawTextColor(g.col(f.LeftScore.X), g.row(f.LeftScore.Y), f.LeftScore.Text, core.ColorBrightWhite)
		dst.DrawTextColor(g.col(f.RightScore.X), g.row(f.RightScore.Y), f.RightScore.Text, core.ColorBrightWhite)
	}

	if f.ShowModePrompt {
		for _, l := range f.Prompt {
			dst.DrawTextCentered(g.row(l.Y), l.Text, core.ColorCyan)
		}
	} else if f.ShowPlayfield && f.BallResting {
		dst.DrawTextCentered(dst.Height()-2, HintLaunch, core.ColorGray)
	}

	if f.ShowGameOver {
		drawBanner(dst, f.GameOver.Text, f.WinnerLabel.Text, HintRestart)
	}
}

// drawBanner draws a framed message in the centre of the screen.
func drawBanner(dst *core.Screen, title, subtitle, hint string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), core.Max(len(subtitle), len(hint))) + 4
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightRed)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+5, hint, core.ColorGray)
}

// grid maps field units onto screen cells.
type grid struct {
	sx, sy float64
}

func (g grid) col(x float64) int { return int(math.Floor(x * g.sx)) }
func (g grid) row(y float64) int { return int(math.Floor(y * g.sy)) }

// fill draws a box, always covering at least one cell.
func (g grid) fill(dst *core.Screen, b Box, r rune, c core.Color) {
	x0, y0 := g.col(b.X-b.W/2), g.row(b.Y-b.H/2)
	x1 := core.Max(x0+1, int(math.Ceil((b.X+b.W/2)*g.sx)))
	y1 := core.Max(y0+1, int(math.Ceil((b.Y+b.H/2)*g.sy)))
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), r, c)
}
