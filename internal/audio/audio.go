// Package audio plays retro sound effects for match events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays one effect per match event.
type Player interface {
	PaddleHit()
	WallBounce()
	Score()
	GameOver()
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) PaddleHit()  {}
func (Nop) WallBounce() {}
func (Nop) Score()      {}
func (Nop) GameOver()   {}
func (Nop) Close()      {}

var (
	initOnce sync.Once
	initErr  error
)

// Speaker plays square-wave tones on the system audio device.
type Speaker struct {
	volume float64
}

// NewSpeaker initialises the audio device once per process.
// Volume is clamped to [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	})
	if initErr != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", initErr)
	}
	return &Speaker{volume: math.Max(0, math.Min(1, volume))}, nil
}

// PaddleHit plays a high short beep.
func (s *Speaker) PaddleHit() {
	speaker.Play(squareWave(880, 50*time.Millisecond, s.volume))
}

// WallBounce plays a medium short beep.
func (s *Speaker) WallBounce() {
	speaker.Play(squareWave(440, 30*time.Millisecond, s.volume))
}

// Score plays a descending three-note phrase.
func (s *Speaker) Score() {
	speaker.Play(beep.Seq(
		squareWave(660, 100*time.Millisecond, s.volume),
		squareWave(440, 100*time.Millisecond, s.volume),
		squareWave(330, 150*time.Millisecond, s.volume),
	))
}

// GameOver plays a slow falling phrase.
func (s *Speaker) GameOver() {
	speaker.Play(beep.Seq(
		squareWave(523, 150*time.Millisecond, s.volume),
		beep.Silence(sampleRate.N(50*time.Millisecond)),
		squareWave(392, 150*time.Millisecond, s.volume),
		beep.Silence(sampleRate.N(50*time.Millisecond)),
		squareWave(262, 400*time.Millisecond, s.volume),
	))
}

// Close stops playback. The device stays open for the rest of the process.
func (s *Speaker) Close() {
	speaker.Clear()
}

// New returns a Speaker, or Nop when disabled or when the device is unavailable.
// The error is returned alongside Nop so callers can log it.
func New(enabled bool, volume float64) (Player, error) {
	if !enabled {
		return Nop{}, nil
	}
	sp, err := NewSpeaker(volume)
	if err != nil {
		return Nop{}, err
	}
	return sp, nil
}

// squareWave generates a square wave tone (retro/8-bit feel).
func squareWave(freq float64, duration time.Duration, volume float64) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
