package app

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/particles"
)

func TestRunHeadlessStopsAfterFrames(t *testing.T) {
	cfg := config.Default()
	stats, err := RunHeadless(context.Background(), cfg, HeadlessOptions{
		Seed:     1,
		Frames:   5,
		Interval: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if stats.Frames != 5 {
		t.Errorf("Frames = %d, want 5", stats.Frames)
	}
	want := particles.Count(float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Particles.Density)
	if stats.Points != want {
		t.Errorf("Points = %d, want %d", stats.Points, want)
	}
	if stats.AvgLinks < 0 {
		t.Errorf("AvgLinks = %v", stats.AvgLinks)
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := RunHeadless(ctx, config.Default(), HeadlessOptions{Interval: time.Millisecond})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if stats.Frames != 0 {
		t.Errorf("Frames = %d after cancel, want 0", stats.Frames)
	}
}

func TestOptionsFollowConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.Color = [3]uint8{10, 20, 30}
	cfg.Particles.LinkDistance = 140
	cfg.Hearts.BurstCount = 7
	cfg.Hearts.Max = 42

	p := ParticleOptions(cfg.Particles)
	if p.Color != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Color = %v", p.Color)
	}
	if p.LinkDistance != 140 || p.Density != cfg.Particles.Density {
		t.Errorf("LinkDistance = %v Density = %v", p.LinkDistance, p.Density)
	}
	if s := SpawnOptions(cfg.Hearts); s.BurstCount != 7 || s.AutoInterval != cfg.Hearts.AutoInterval {
		t.Errorf("BurstCount = %d AutoInterval = %v", s.BurstCount, s.AutoInterval)
	}
	if po := PoolOptions(cfg.Hearts); po.Max != 42 || po.Lifetime != cfg.Hearts.Lifetime {
		t.Errorf("Max = %d Lifetime = %v", po.Max, po.Lifetime)
	}
}
