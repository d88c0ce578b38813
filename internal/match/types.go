package match

import "github.com/vovakirdan/tui-pong/internal/core"

// Mode is the player configuration of a match. It is set at most once.
type Mode int

const (
	ModeUnselected Mode = iota
	ModeSinglePlayer
	ModeTwoPlayer
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnselected:
		return "unselected"
	case ModeSinglePlayer:
		return "single"
	case ModeTwoPlayer:
		return "two"
	default:
		return "unknown"
	}
}

// Phase is the coarse stage of a match. It only ever advances:
// AwaitingMode -> Playing -> GameOver.
type Phase int

const (
	PhaseAwaitingMode Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMode:
		return "awaiting_mode"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Side identifies a half of the field, its paddle and its player.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Config holds the immutable tuning of a match. Distances are field units
// (pixels of a Width x Height playfield), speeds of paddles are per tick and
// the launch speed is per second (it is integrated by the physics layer).
type Config struct {
	Width  float64
	Height float64

	PaddleSpeed  float64 // per-tick delta for human paddles
	AISpeed      float64 // per-tick delta for the AI paddle
	AIDeadZone   float64 // AI holds still while |ball.y - paddle.y| <= dead zone
	LeftPaddleX  float64
	RightPaddleX float64

	ScoreLimit int     // game ends when a side's score exceeds this
	WallMargin float64 // ball.x beyond margin from an edge is a point

	LaunchSpeed   float64 // per-axis launch speed
	BounceFactor  float64 // velocity multiplier on each paddle hit
	JitterDegrees int     // paddle hits rotate velocity by [-jitter, +jitter] degrees
	ServeY        float64 // ball y after a reset
}

// DefaultConfig returns the classic tuning for a 1024x768 field.
func DefaultConfig() Config {
	return Config{
		Width:         1024,
		Height:        768,
		PaddleSpeed:   5,
		AISpeed:       4,
		AIDeadZone:    10,
		LeftPaddleX:   50,
		RightPaddleX:  974,
		ScoreLimit:    10,
		WallMargin:    30,
		LaunchSpeed:   300,
		BounceFactor:  1.15,
		JitterDegrees: 30,
		ServeY:        384,
	}
}

// Paddle is one side's paddle. X is fixed for the whole match.
type Paddle struct {
	X float64
	Y float64
}

// Ball is the ball's position (centre), velocity and motion flag.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	InMotion bool
}

// Score counts points per side. Values never decrease.
type Score struct {
	Left  int
	Right int
}

// Input is the polled key state consumed by Step.
// RightUp and RightDown are ignored in single-player mode.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}
