package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/heartfield/internal/audio"
	"github.com/iburimskiy/heartfield/internal/config"
)

// sound plays the button chime through the shared speaker.
type sound struct {
	sampleRate beep.SampleRate
	frequency  float64
	duration   time.Duration
	volume     float64
	tap        *audio.LevelTap
}

func newSound(cfg config.AudioConfig) (*sound, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &sound{
		sampleRate: sr,
		frequency:  cfg.Frequency,
		duration:   cfg.Duration,
		volume:     cfg.Volume,
	}, nil
}

func (s *sound) play() {
	t := audio.NewLevelTap(audio.Chime(s.sampleRate, s.frequency, s.duration, s.volume))
	s.tap = t
	speaker.Play(t)
}

// level returns the loudness of the chime currently playing, if any.
func (s *sound) level() float64 {
	if s == nil || s.tap == nil {
		return 0
	}
	return s.tap.Level()
}
