// Package physics is the arcade physics host for the match: it integrates the
// ball, keeps it inside the field with elastic wall bounces and reports
// ball/paddle contacts after separating the bodies.
//
// Contact lookup uses a resolv spatial hash as the broad phase; overlaps are
// then confirmed with exact axis-aligned box tests.
package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const (
	tagBall   = "ball"
	tagPaddle = "paddle"
)

// PaddleID identifies one of the two paddles in the world.
type PaddleID int

const (
	LeftPaddle PaddleID = iota
	RightPaddle
)

// Config describes the world geometry in field units.
type Config struct {
	Width, Height float64
	BallSize      float64
	PaddleWidth   float64
	PaddleHeight  float64
	CellSize      int // spatial hash cell size; defaults to 16
}

// Body is a moving box described by its centre.
type Body struct {
	Position core.Vec2
	Velocity core.Vec2
}

// Result reports what happened during one step.
type Result struct {
	Contacts   []PaddleID
	WallBounce bool
}

// Touched reports whether the given paddle was hit this step.
func (r Result) Touched(id PaddleID) bool {
	for _, c := range r.Contacts {
		if c == id {
			return true
		}
	}
	return false
}

// World holds the collision space with one ball and two immovable paddles.
type World struct {
	cfg     Config
	space   *resolv.Space
	ball    *resolv.Object
	paddles [2]*resolv.Object
}

// NewWorld creates a world for the given geometry.
func NewWorld(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 16
	}

	w := &World{
		cfg:   cfg,
		space: resolv.NewSpace(int(cfg.Width), int(cfg.Height), cfg.CellSize, cfg.CellSize),
		ball:  resolv.NewObject(0, 0, cfg.BallSize, cfg.BallSize, tagBall),
	}
	for i := range w.paddles {
		w.paddles[i] = resolv.NewObject(0, 0, cfg.PaddleWidth, cfg.PaddleHeight, tagPaddle)
	}
	w.space.Add(w.ball, w.paddles[LeftPaddle], w.paddles[RightPaddle])
	return w
}

// Config returns the world geometry.
func (w *World) Config() Config {
	return w.cfg
}

// Step advances the ball by dt seconds against the paddles centred at left
// and right. The ball is clamped to the field and reflected off walls; a ball
// overlapping a paddle is pushed out along the axis of least penetration and
// its approaching velocity component is reflected.
func (w *World) Step(ball *Body, left, right core.Vec2, dt float64) Result {
	var res Result

	ball.Position = ball.Position.Add(ball.Velocity.Scale(dt))
	res.WallBounce = w.keepInside(ball)

	w.place(w.paddles[LeftPaddle], left, w.cfg.PaddleWidth, w.cfg.PaddleHeight)
	w.place(w.paddles[RightPaddle], right, w.cfg.PaddleWidth, w.cfg.PaddleHeight)
	w.place(w.ball, ball.Position, w.cfg.BallSize, w.cfg.BallSize)

	collision := w.ball.Check(0, 0, tagPaddle)
	if collision == nil {
		return res
	}

	centres := [2]core.Vec2{left, right}
	for id, obj := range w.paddles {
		if !contains(collision.Objects, obj) {
			continue
		}
		if w.separate(ball, centres[id]) {
			res.Contacts = append(res.Contacts, PaddleID(id))
		}
	}

	if len(res.Contacts) > 0 {
		if w.keepInside(ball) {
			res.WallBounce = true
		}
		w.place(w.ball, ball.Position, w.cfg.BallSize, w.cfg.BallSize)
	}
	return res
}

// keepInside clamps the ball's extent to the field and reflects velocity on
// the axes that touched a wall.
func (w *World) keepInside(ball *Body) bool {
	half := w.cfg.BallSize / 2
	bx := reflectAxis(&ball.Position.X, &ball.Velocity.X, half, w.cfg.Width-half)
	by := reflectAxis(&ball.Position.Y, &ball.Velocity.Y, half, w.cfg.Height-half)
	return bx || by
}

// reflectAxis clamps pos to [lo, hi] and turns vel back into the field when
// the ball was heading out through the clamped side.
func reflectAxis(pos, vel *float64, lo, hi float64) bool {
	clamped := core.ClampF(*pos, lo, hi)
	if clamped == *pos {
		return false
	}
	*pos = clamped
	if (clamped == lo && *vel < 0) || (clamped == hi && *vel > 0) {
		*vel = -*vel
		return true
	}
	return false
}

// separate resolves an exact overlap between the ball and the paddle centred
// at p. It reports false when the boxes only share a hash cell.
func (w *World) separate(ball *Body, p core.Vec2) bool {
	ox := overlap(ball.Position.X, w.cfg.BallSize, p.X, w.cfg.PaddleWidth)
	oy := overlap(ball.Position.Y, w.cfg.BallSize, p.Y, w.cfg.PaddleHeight)
	if ox <= 0 || oy <= 0 {
		return false
	}

	if ox <= oy {
		if ball.Position.X < p.X {
			ball.Position.X -= ox
			if ball.Velocity.X > 0 {
				ball.Velocity.X = -ball.Velocity.X
			}
		} else {
			ball.Position.X += ox
			if ball.Velocity.X < 0 {
				ball.Velocity.X = -ball.Velocity.X
			}
		}
		return true
	}

	if ball.Position.Y < p.Y {
		ball.Position.Y -= oy
		if ball.Velocity.Y > 0 {
			ball.Velocity.Y = -ball.Velocity.Y
		}
	} else {
		ball.Position.Y += oy
		if ball.Velocity.Y < 0 {
			ball.Velocity.Y = -ball.Velocity.Y
		}
	}
	return true
}

// overlap returns the penetration depth of two centred extents on one axis.
func overlap(c1, size1, c2, size2 float64) float64 {
	lo := max(c1-size1/2, c2-size2/2)
	hi := min(c1+size1/2, c2+size2/2)
	return hi - lo
}

// place moves a resolv object so that its box is centred at c.
func (w *World) place(obj *resolv.Object, c core.Vec2, width, height float64) {
	obj.X = c.X - width/2
	obj.Y = c.Y - height/2
	obj.Update()
}

func contains(objs []*resolv.Object, target *resolv.Object) bool {
	for _, o := range objs {
		if o == target {
			return true
		}
	}
	return false
}
