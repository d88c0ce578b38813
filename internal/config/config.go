// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the pong game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/physics"
)

// PongConfig contains all configuration for a match and its hosts.
type PongConfig struct {
	Field   FieldConfig  `yaml:"field"`
	Paddles PaddleConfig `yaml:"paddles"`
	AI      AIConfig     `yaml:"ai"`
	Ball    BallConfig   `yaml:"ball"`
	Rules   RulesConfig  `yaml:"rules"`
	Audio   AudioConfig  `yaml:"audio"`
}

// FieldConfig defines the playfield in world units.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WallMargin float64 `yaml:"wall_margin"` // ball x closer than this to a side wall scores
}

// PaddleConfig defines paddle sprites and human movement.
type PaddleConfig struct {
	Speed  float64 `yaml:"speed"` // units per tick
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	LeftX  float64 `yaml:"left_x"`
	RightX float64 `yaml:"right_x"`
}

// AIConfig defines the computer-controlled right paddle.
type AIConfig struct {
	Speed    float64 `yaml:"speed"`     // units per tick
	DeadZone float64 `yaml:"dead_zone"` // no movement while the ball is this close vertically
}

// BallConfig defines the ball sprite, launch and bounce behaviour.
type BallConfig struct {
	Size          float64 `yaml:"size"`
	LaunchSpeed   float64 `yaml:"launch_speed"` // per axis, units per second
	BounceFactor  float64 `yaml:"bounce_factor"`
	JitterDegrees int     `yaml:"jitter_degrees"`
	ServeY        float64 `yaml:"serve_y"`
}

// RulesConfig defines match rules.
type RulesConfig struct {
	ScoreLimit int `yaml:"score_limit"` // game ends once a score exceeds this
}

// AudioConfig defines sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Validate reports every invalid setting at once.
func (c PongConfig) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"paddles.speed", c.Paddles.Speed},
		{"paddles.width", c.Paddles.Width},
		{"paddles.height", c.Paddles.Height},
		{"ai.speed", c.AI.Speed},
		{"ball.size", c.Ball.Size},
		{"ball.launch_speed", c.Ball.LaunchSpeed},
		{"ball.bounce_factor", c.Ball.BounceFactor},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}

	if c.Field.WallMargin < 0 {
		errs = append(errs, fmt.Errorf("field.wall_margin must not be negative, got %v", c.Field.WallMargin))
	}
	if c.Field.Width > 0 && 2*c.Field.WallMargin >= c.Field.Width {
		errs = append(errs, fmt.Errorf("field.wall_margin %v leaves no playfield in width %v",
			c.Field.WallMargin, c.Field.Width))
	}
	if c.AI.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("ai.dead_zone must not be negative, got %v", c.AI.DeadZone))
	}
	if c.Ball.JitterDegrees < 0 || c.Ball.JitterDegrees > 90 {
		errs = append(errs, fmt.Errorf("ball.jitter_degrees must be within [0, 90], got %d", c.Ball.JitterDegrees))
	}
	if c.Rules.ScoreLimit < 0 {
		errs = append(errs, fmt.Errorf("rules.score_limit must not be negative, got %d", c.Rules.ScoreLimit))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Match converts the configuration into match rules.
func (c PongConfig) Match() match.Config {
	return match.Config{
		Width:         c.Field.Width,
		Height:        c.Field.Height,
		PaddleSpeed:   c.Paddles.Speed,
		AISpeed:       c.AI.Speed,
		AIDeadZone:    c.AI.DeadZone,
		LeftPaddleX:   c.Paddles.LeftX,
		RightPaddleX:  c.Paddles.RightX,
		ScoreLimit:    c.Rules.ScoreLimit,
		WallMargin:    c.Field.WallMargin,
		LaunchSpeed:   c.Ball.LaunchSpeed,
		BounceFactor:  c.Ball.BounceFactor,
		JitterDegrees: c.Ball.JitterDegrees,
		ServeY:        c.Ball.ServeY,
	}
}

// Physics converts the configuration into physics world geometry.
func (c PongConfig) Physics() physics.Config {
	return physics.Config{
		Width:        c.Field.Width,
		Height:       c.Field.Height,
		BallSize:     c.Ball.Size,
		PaddleWidth:  c.Paddles.Width,
		PaddleHeight: c.Paddles.Height,
	}
}
