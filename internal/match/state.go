// Package match implements the rules of a two-paddle ball match.
//
// State is a plain state holder driven once per tick by a host: the host owns
// physics (integration, wall bounces, contact detection) and calls SyncBall,
// HitPaddle and Step in order. Nothing here blocks, allocates goroutines or
// knows about rendering.
package match

import "github.com/vovakirdan/tui-pong/internal/core"

// State holds all mutable data of one match.
// A match is never rewound: a rematch is a new State.
type State struct {
	cfg Config
	rng Random

	mode   Mode
	phase  Phase
	winner Side

	left  Paddle
	right Paddle
	ball  Ball
	score Score

	ticks uint64
	hits  int
}

// New creates a match waiting for a mode selection.
// Paddles start vertically centred and the ball rests at the field centre.
func New(cfg Config, rng Random) *State {
	if rng == nil {
		rng = NewRandom(0)
	}
	centreY := cfg.Height / 2
	return &State{
		cfg:   cfg,
		rng:   rng,
		mode:  ModeUnselected,
		phase: PhaseAwaitingMode,
		left:  Paddle{X: cfg.LeftPaddleX, Y: centreY},
		right: Paddle{X: cfg.RightPaddleX, Y: centreY},
		ball: Ball{
			Position: core.V(cfg.Width/2, centreY),
		},
	}
}

// SelectMode fixes the match mode and starts play.
// Only the first selection counts; later calls are ignored.
func (s *State) SelectMode(m Mode) StepResult {
	if s.mode != ModeUnselected || m == ModeUnselected {
		return s.result()
	}
	s.mode = m
	s.phase = PhasePlaying
	return s.result(Event{Kind: EventModeSelected})
}

// StartBall launches a resting ball diagonally in one of four directions.
// It does nothing while the ball is already moving.
func (s *State) StartBall() StepResult {
	if s.ball.InMotion {
		return s.result()
	}
	vx := s.cfg.LaunchSpeed * s.randomSign()
	vy := s.cfg.LaunchSpeed * s.randomSign()
	s.ball.Velocity = core.V(vx, vy)
	s.ball.InMotion = true
	return s.result(Event{Kind: EventLaunch})
}

func (s *State) randomSign() float64 {
	if s.rng.IntRange(0, 1) == 1 {
		return 1
	}
	return -1
}

// HitPaddle is the collision response for ball/paddle contact: the velocity
// is scaled by the bounce factor and then rotated by a random whole number of
// degrees within the jitter range. Speed therefore grows by exactly the bounce
// factor per hit; there is no upper bound.
func (s *State) HitPaddle(side Side) StepResult {
	v := s.ball.Velocity.Scale(s.cfg.BounceFactor)
	deg := s.rng.IntRange(-s.cfg.JitterDegrees, s.cfg.JitterDegrees)
	s.ball.Velocity = v.Rotate(core.DegToRad(float64(deg)))
	s.hits++
	return s.result(Event{Kind: EventPaddleHit, Side: side})
}

// ResetBall puts the ball back on the serve point and relaunches it at once.
func (s *State) ResetBall() StepResult {
	s.ball.Position = core.V(s.cfg.Width/2, s.cfg.ServeY)
	s.ball.Velocity = core.Vec2{}
	s.ball.InMotion = false
	return s.StartBall()
}

// SyncBall stores the ball position and velocity after the host's physics
// integration. The host calls it before HitPaddle and Step each tick.
func (s *State) SyncBall(position, velocity core.Vec2) {
	s.ball.Position = position
	s.ball.Velocity = velocity
}

// Step advances the match by one tick: paddles, AI, scoring, game over.
// Outside PhasePlaying it has no effect.
func (s *State) Step(in Input) StepResult {
	if s.phase != PhasePlaying {
		return s.result()
	}
	s.ticks++

	s.left.Y = s.movePaddle(s.left.Y, in.LeftUp, in.LeftDown)
	if s.mode == ModeSinglePlayer {
		s.right.Y = s.trackBall(s.right.Y)
	} else {
		s.right.Y = s.movePaddle(s.right.Y, in.RightUp, in.RightDown)
	}

	res := s.result()
	switch {
	case s.ball.Position.X < s.cfg.WallMargin:
		res = res.Merge(s.point(SideRight))
	case s.ball.Position.X > s.cfg.Width-s.cfg.WallMargin:
		res = res.Merge(s.point(SideLeft))
	}

	if s.score.Left > s.cfg.ScoreLimit || s.score.Right > s.cfg.ScoreLimit {
		s.phase = PhaseGameOver
		s.winner = SideRight
		if s.score.Left > s.score.Right {
			s.winner = SideLeft
		}
		res.Events = append(res.Events, Event{Kind: EventGameOver, Side: s.winner})
	}
	res.Phase = s.phase
	return res
}

// movePaddle applies one tick of human paddle input. The bound check uses the
// paddle centre, so the sprite may travel up to half its height past an edge.
func (s *State) movePaddle(y float64, up, down bool) float64 {
	switch {
	case up && y > 0:
		return y - s.cfg.PaddleSpeed
	case down && y < s.cfg.Height:
		return y + s.cfg.PaddleSpeed
	}
	return y
}

// trackBall moves the AI paddle toward the ball outside the dead zone.
func (s *State) trackBall(y float64) float64 {
	ballY := s.ball.Position.Y
	switch {
	case ballY < y-s.cfg.AIDeadZone:
		return y - s.cfg.AISpeed
	case ballY > y+s.cfg.AIDeadZone:
		return y + s.cfg.AISpeed
	}
	return y
}

func (s *State) point(scorer Side) StepResult {
	if scorer == SideLeft {
		s.score.Left++
	} else {
		s.score.Right++
	}
	res := s.result(Event{Kind: EventScore, Side: scorer})
	return res.Merge(s.ResetBall())
}

func (s *State) result(events ...Event) StepResult {
	return StepResult{Events: events, Phase: s.phase}
}

// Mode returns the selected mode.
func (s *State) Mode() Mode { return s.mode }

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *State) Score() Score { return s.score }

// Ball returns a copy of the ball state.
func (s *State) Ball() Ball { return s.ball }

// Left returns the left paddle.
func (s *State) Left() Paddle { return s.left }

// Right returns the right paddle.
func (s *State) Right() Paddle { return s.right }

// Paddle returns the paddle of the given side.
func (s *State) Paddle(side Side) Paddle {
	if side == SideLeft {
		return s.left
	}
	return s.right
}

// Winner returns the winning side and whether the match is over.
func (s *State) Winner() (Side, bool) {
	return s.winner, s.phase == PhaseGameOver
}

// Speed returns the current ball speed.
func (s *State) Speed() float64 {
	return s.ball.Velocity.Len()
}
