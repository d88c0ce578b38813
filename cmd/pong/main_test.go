package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/match"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    match.Mode
		wantErr bool
	}{
		{"", match.ModeUnselected, false},
		{"single", match.ModeSinglePlayer, false},
		{" Two ", match.ModeTwoPlayer, false},
		{"1", match.ModeSinglePlayer, false},
		{"2", match.ModeTwoPlayer, false},
		{"three", match.ModeUnselected, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadConfigAppliesDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("hard")
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	normal := config.DefaultPongConfig()
	if cfg.AI.Speed <= normal.AI.Speed {
		t.Errorf("hard AI speed = %v, want more than %v", cfg.AI.Speed, normal.AI.Speed)
	}

	if _, err := loadConfig("impossible"); err == nil {
		t.Error("loadConfig() should reject an unknown difficulty")
	}
}

func TestLoadConfigKeepsFileAIWithoutDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(path, []byte("ai: {speed: 7, dead_zone: 2}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	flagConfig = path
	defer func() { flagConfig = "" }()

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.AI.Speed != 7 || cfg.AI.DeadZone != 2 {
		t.Errorf("ai = %+v, want speed 7 dead zone 2 from the file", cfg.AI)
	}

	cfg, err = loadConfig("easy")
	if err != nil {
		t.Fatalf("loadConfig(easy) failed: %v", err)
	}
	if cfg.AI.Speed != 3 {
		t.Errorf("easy ai speed = %v, want 3", cfg.AI.Speed)
	}
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	configCmd.SetOut(&out)
	defer configCmd.SetOut(nil)

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	for _, section := range []string{"field:", "paddles:", "ai:", "ball:", "rules:", "audio:"} {
		if !strings.Contains(out.String(), section) {
			t.Errorf("output missing %q", section)
		}
	}
}
