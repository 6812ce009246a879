package app

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/loop"
	"github.com/iburimskiy/heartfield/internal/particles"
)

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	Seed     int64
	Frames   int           // stop after this many frames (0 = until ctx is done)
	Interval time.Duration // frame period (0 = 60 per second)
}

// Stats summarizes a headless run.
type Stats struct {
	Frames   int
	Points   int // disks drawn in the last frame
	AvgLinks float64
}

// RunHeadless steps and renders the particle field without a window,
// counting draw calls instead of rasterizing, and logs frame statistics
// once per second.
func RunHeadless(ctx context.Context, cfg *config.Config, opts HeadlessOptions) (Stats, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}

	field := particles.NewField(ParticleOptions(cfg.Particles), rand.New(rand.NewSource(opts.Seed)))
	field.Resize(float64(cfg.Window.Width), float64(cfg.Window.Height))

	slog.Info("starting headless field",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"points", field.Len(),
		"frames", opts.Frames,
	)

	var (
		stats   Stats
		tally   particles.Tally
		links   int
		lastLog time.Duration
	)
	err := loop.Run(ctx, interval, func(elapsed time.Duration) error {
		field.Step()
		tally.Reset()
		field.Render(&tally)
		stats.Frames++
		stats.Points = tally.Circles
		links += tally.Lines

		if elapsed-lastLog >= time.Second {
			slog.Info("frame stats",
				"frame", stats.Frames,
				"elapsed", elapsed.Round(time.Millisecond),
				"points", tally.Circles,
				"links", tally.Lines,
			)
			lastLog = elapsed
		}
		if opts.Frames > 0 && stats.Frames >= opts.Frames {
			return loop.ErrStop
		}
		return nil
	})

	if stats.Frames > 0 {
		stats.AvgLinks = float64(links) / float64(stats.Frames)
	}
	slog.Info("headless field stopped", "frames", stats.Frames, "avg_links", stats.AvgLinks)
	return stats, err
}
