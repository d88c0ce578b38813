package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named AI strength.
type DifficultyPreset string

const (
	// DifficultyConfigured keeps the AI tuning from the loaded config.
	DifficultyConfigured DifficultyPreset = ""

	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// aiPresets holds the AI tuning per preset. Normal is the default tuning.
var aiPresets = map[DifficultyPreset]AIConfig{
	DifficultyEasy:   {Speed: 3, DeadZone: 20},
	DifficultyNormal: {Speed: 4, DeadZone: 10},
	DifficultyHard:   {Speed: 6, DeadZone: 4},
}

// ParseDifficulty converts a flag value into a preset.
// An empty string keeps the configured AI tuning.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if strings.TrimSpace(s) == "" {
		return DifficultyConfigured, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := aiPresets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPongPreset modifies the AI tuning based on a difficulty preset.
// DifficultyConfigured and unknown presets leave the config untouched.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if ai, ok := aiPresets[preset]; ok {
		cfg.AI = ai
	}
}
