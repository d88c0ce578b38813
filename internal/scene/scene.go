// Package scene drives one match per tick on behalf of a platform.
//
// A Scene owns the match rules and the physics world. Each Update applies
// the discrete actions, steps physics, lets the match react to paddle
// contacts, advances the match, then presents the resulting Frame.
package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/physics"
)

// Sink receives the frame built after every update.
type Sink interface {
	Present(Frame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Frame)

// Present calls f.
func (f SinkFunc) Present(frame Frame) { f(frame) }

// Sounds plays short effects for match events.
type Sounds interface {
	PaddleHit()
	WallBounce()
	Score()
	GameOver()
}

type silent struct{}

func (silent) PaddleHit()  {}
func (silent) WallBounce() {}
func (silent) Score()      {}
func (silent) GameOver()   {}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the event logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSink registers a frame sink. May be given more than once.
func WithSink(sink Sink) Option {
	return func(s *Scene) {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
}

// WithSounds sets the sound effect player.
func WithSounds(snd Sounds) Option {
	return func(s *Scene) {
		if snd != nil {
			s.sounds = snd
		}
	}
}

// WithRandom replaces the random source used by every match of the scene.
func WithRandom(rng match.Random) Option {
	return func(s *Scene) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMode preselects the mode so that every match starts playing at once.
func WithMode(m match.Mode) Option {
	return func(s *Scene) {
		s.preset = m
	}
}

// Scene is the per-tick host of a match.
type Scene struct {
	cfg config.PongConfig
	rt  core.RuntimeConfig
	dt  float64
	rng match.Random
	log *log.Logger

	sinks  []Sink
	sounds Sounds
	preset match.Mode

	match *match.State
	world *physics.World
	frame uint64
}

// New creates a scene with a fresh match.
func New(cfg config.PongConfig, rt core.RuntimeConfig, opts ...Option) *Scene {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	s := &Scene{
		cfg:    cfg,
		rt:     rt,
		dt:     1 / float64(rt.TickRate),
		log:    log.NewWithOptions(io.Discard, log.Options{}),
		sounds: silent{},
		world:  physics.NewWorld(cfg.Physics()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = match.NewRandom(rt.Seed)
	}

	s.newMatch()
	return s
}

func (s *Scene) newMatch() {
	s.match = match.New(s.cfg.Match(), s.rng)
	if s.preset != match.ModeUnselected {
		s.react(s.match.SelectMode(s.preset), false)
	}
}

// Restart replaces the match with a fresh one. A preselected mode is kept.
func (s *Scene) Restart() {
	s.log.Info("new match")
	s.newMatch()
}

// Update advances the scene by one tick and presents the new frame.
func (s *Scene) Update(in core.InputFrame) match.StepResult {
	res := match.StepResult{Phase: s.match.Phase()}

	if in.Has(core.ActionRestart) && s.match.Phase() == match.PhaseGameOver {
		s.Restart()
		s.present()
		return match.StepResult{Phase: s.match.Phase()}
	}

	if in.Has(core.ActionSelectSingle) {
		res = res.Merge(s.match.SelectMode(match.ModeSinglePlayer))
	}
	if in.Has(core.ActionSelectTwo) {
		res = res.Merge(s.match.SelectMode(match.ModeTwoPlayer))
	}
	if in.Has(core.ActionLaunch) && s.match.Phase() == match.PhasePlaying {
		res = res.Merge(s.match.StartBall())
	}

	wall := false
	if s.match.Phase() == match.PhasePlaying {
		wall = s.stepPhysics(&res)
	}

	res = res.Merge(s.match.Step(heldInput(in)))

	s.frame++
	s.react(res, wall)
	s.present()
	return res
}

// stepPhysics moves the ball through the world and reports paddle contacts
// to the match. It returns whether the ball bounced off a wall.
func (s *Scene) stepPhysics(res *match.StepResult) bool {
	ball := s.match.Ball()
	body := physics.Body{Position: ball.Position, Velocity: ball.Velocity}
	left, right := s.match.Left(), s.match.Right()

	out := s.world.Step(&body, core.V(left.X, left.Y), core.V(right.X, right.Y), s.dt)
	s.match.SyncBall(body.Position, body.Velocity)

	for _, id := range []physics.PaddleID{physics.LeftPaddle, physics.RightPaddle} {
		if out.Touched(id) {
			*res = res.Merge(s.match.HitPaddle(sideOf(id)))
		}
	}
	return out.WallBounce
}

func sideOf(id physics.PaddleID) match.Side {
	if id == physics.LeftPaddle {
		return match.SideLeft
	}
	return match.SideRight
}

func heldInput(in core.InputFrame) match.Input {
	return match.Input{
		LeftUp:    in.Has(core.ActionLeftUp),
		LeftDown:  in.Has(core.ActionLeftDown),
		RightUp:   in.Has(core.ActionRightUp),
		RightDown: in.Has(core.ActionRightDown),
	}
}

// react logs events and plays their sounds.
func (s *Scene) react(res match.StepResult, wall bool) {
	if wall {
		s.sounds.WallBounce()
	}
	for _, e := range res.Events {
		switch e.Kind {
		case match.EventModeSelected:
			s.log.Info("mode selected", "mode", s.match.Mode().String())
		case match.EventLaunch:
			ball := s.match.Ball()
			s.log.Debug("ball launched", "vx", ball.Velocity.X, "vy", ball.Velocity.Y)
		case match.EventPaddleHit:
			s.log.Debug("paddle hit",
				"side", e.Side.String(),
				"paddle_y", s.match.Paddle(e.Side).Y,
				"speed", s.match.Speed(),
			)
			s.sounds.PaddleHit()
		case match.EventScore:
			score := s.match.Score()
			s.log.Info("point", "scorer", e.Side.String(), "left", score.Left, "right", score.Right)
			s.sounds.Score()
		case match.EventGameOver:
			snap := s.match.Snapshot()
			s.log.Info("game over", "winner", snap.Winner, "left", snap.LeftScore, "right", snap.RightScore, "hits", snap.Hits)
			s.sounds.GameOver()
		}
	}
}

func (s *Scene) present() {
	if len(s.sinks) == 0 {
		return
	}
	f := s.Frame()
	for _, sink := range s.sinks {
		sink.Present(f)
	}
}

// Match returns the current match.
func (s *Scene) Match() *match.State {
	return s.match
}

// Config returns the scene configuration.
func (s *Scene) Config() config.PongConfig {
	return s.cfg
}

// TickRate returns the number of updates per second.
func (s *Scene) TickRate() int {
	return s.rt.TickRate
}
