package match

// Snapshot contains the complete state of a match.
// Uses primitive types only so it can be logged, compared and serialised.
type Snapshot struct {
	Tick       uint64  `json:"tick"`
	Mode       string  `json:"mode"`
	Phase      string  `json:"phase"`
	BallX      float64 `json:"ballX"`
	BallY      float64 `json:"ballY"`
	BallVX     float64 `json:"ballVX"`
	BallVY     float64 `json:"ballVY"`
	InMotion   bool    `json:"inMotion"`
	LeftY      float64 `json:"leftY"`
	RightY     float64 `json:"rightY"`
	LeftScore  int     `json:"leftScore"`
	RightScore int     `json:"rightScore"`
	Winner     string  `json:"winner,omitempty"` // empty until game over
	Hits       int     `json:"hits"`
}

// Snapshot returns the current match state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.ticks,
		Mode:       s.mode.String(),
		Phase:      s.phase.String(),
		BallX:      s.ball.Position.X,
		BallY:      s.ball.Position.Y,
		BallVX:     s.ball.Velocity.X,
		BallVY:     s.ball.Velocity.Y,
		InMotion:   s.ball.InMotion,
		LeftY:      s.left.Y,
		RightY:     s.right.Y,
		LeftScore:  s.score.Left,
		RightScore: s.score.Right,
		Hits:       s.hits,
	}
	if winner, over := s.Winner(); over {
		snap.Winner = winner.String()
	}
	return snap
}
