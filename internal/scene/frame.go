package scene

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/match"
)

// Prompt and banner texts.
const (
	PromptSingle = "Press 1 for Single Player"
	PromptTwo    = "Press 2 for Two Player"
	GameOverText = "GAME OVER"
	HintLaunch   = "SPACE to serve"
	HintRestart  = "R for a new match"
)

// Score label anchors in field units (top-left of the text).
const (
	leftScoreX  = 100
	rightScoreX = 924
	scoreY      = 50
)

// Box is a sprite described by its centre and size, in field units.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Label is a piece of text anchored in field units.
type Label struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	Centered bool    `json:"centered,omitempty"`
}

// Frame is everything a presentation sink needs to draw one tick.
type Frame struct {
	Tick   uint64  `json:"tick"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Mode   string  `json:"mode"`
	Phase  string  `json:"phase"`

	Ball        Box  `json:"ball"`
	LeftPaddle  Box  `json:"leftPaddle"`
	RightPaddle Box  `json:"rightPaddle"`
	BallResting bool `json:"ballResting"`

	LeftScore  Label `json:"leftScore"`
	RightScore Label `json:"rightScore"`

	ShowModePrompt bool `json:"showModePrompt"`
	ShowPlayfield  bool `json:"showPlayfield"`
	ShowGameOver   bool `json:"showGameOver"`

	Prompt      []Label `json:"prompt,omitempty"`
	GameOver    Label   `json:"gameOver"`
	WinnerLabel Label   `json:"winnerLabel"`
	Winner      string  `json:"winner,omitempty"`
}

// WinnerText returns the banner line announcing the winning side.
func WinnerText(side match.Side) string {
	if side == match.SideLeft {
		return "Left side won!"
	}
	return "Right side won!"
}

// Frame builds the presentation of the current match.
func (s *Scene) Frame() Frame {
	m := s.match
	cfg := s.cfg
	w, h := cfg.Field.Width, cfg.Field.Height
	ball := m.Ball()
	left, right := m.Left(), m.Right()
	score := m.Score()
	phase := m.Phase()

	f := Frame{
		Tick:   s.frame,
		Width:  w,
		Height: h,
		Mode:   m.Mode().String(),
		Phase:  phase.String(),

		Ball:        Box{X: ball.Position.X, Y: ball.Position.Y, W: cfg.Ball.Size, H: cfg.Ball.Size},
		LeftPaddle:  Box{X: left.X, Y: left.Y, W: cfg.Paddles.Width, H: cfg.Paddles.Height},
		RightPaddle: Box{X: right.X, Y: right.Y, W: cfg.Paddles.Width, H: cfg.Paddles.Height},
		BallResting: !ball.InMotion,

		LeftScore:  Label{X: leftScoreX, Y: scoreY, Text: strconv.Itoa(score.Left)},
		RightScore: Label{X: rightScoreX, Y: scoreY, Text: strconv.Itoa(score.Right)},

		ShowModePrompt: phase == match.PhaseAwaitingMode,
		ShowPlayfield:  phase == match.PhasePlaying,
		ShowGameOver:   phase == match.PhaseGameOver,
	}

	if f.ShowModePrompt {
		f.Prompt = []Label{
			{X: w / 2, Y: h/2 - 24, Text: PromptSingle, Centered: true},
			{X: w / 2, Y: h/2 + 24, Text: PromptTwo, Centered: true},
		}
	}

	if winner, over := m.Winner(); over {
		f.Winner = winner.String()
		f.GameOver = Label{X: w / 2, Y: h/2 - 60, Text: GameOverText, Centered: true}
		f.WinnerLabel = Label{X: w / 2, Y: h/2 + 40, Text: WinnerText(winner), Centered: true}
	}
	return f
}
