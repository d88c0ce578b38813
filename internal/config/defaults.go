package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/match"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
// Match values mirror match.DefaultConfig.
func DefaultPongConfig() PongConfig {
	m := match.DefaultConfig()
	return PongConfig{
		Field: FieldConfig{
			Width:      m.Width,
			Height:     m.Height,
			WallMargin: m.WallMargin,
		},
		Paddles: PaddleConfig{
			Speed:  m.PaddleSpeed,
			Width:  20,
			Height: 100,
			LeftX:  m.LeftPaddleX,
			RightX: m.RightPaddleX,
		},
		AI: AIConfig{
			Speed:    m.AISpeed,
			DeadZone: m.AIDeadZone,
		},
		Ball: BallConfig{
			Size:          24,
			LaunchSpeed:   m.LaunchSpeed,
			BounceFactor:  m.BounceFactor,
			JitterDegrees: m.JitterDegrees,
			ServeY:        m.ServeY,
		},
		Rules: RulesConfig{
			ScoreLimit: m.ScoreLimit,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultPongYAML
}
