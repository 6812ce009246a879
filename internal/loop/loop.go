// Package loop drives a frame callback at a fixed rate until its context is
// cancelled.
package loop

import (
	"context"
	"errors"
	"time"
)

// ErrStop ends Run without reporting an error.
var ErrStop = errors.New("loop: stop")

// Frame is called once per tick with the time elapsed since Run started.
type Frame func(elapsed time.Duration) error

// Run calls frame every interval. Cancellation is checked once per
// iteration, before the frame runs. Run returns nil when ctx is done or
// frame returns ErrStop, and the frame's error otherwise.
func Run(ctx context.Context, interval time.Duration, frame Frame) error {
	if interval <= 0 {
		return errors.New("loop: interval must be positive")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := frame(time.Since(start)); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
