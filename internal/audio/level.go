package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// LevelTap wraps a beep.Streamer and records the RMS level of the most
// recently streamed block so the renderer can pulse with the sound. Stream is
// called from the speaker goroutine and Level from the game loop.
type LevelTap struct {
	Source beep.Streamer
	level  float64
	done   bool
	mu     sync.RWMutex
}

// NewLevelTap wraps src.
func NewLevelTap(src beep.Streamer) *LevelTap {
	return &LevelTap{Source: src}
}

func (t *LevelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)

	var sumSquares float64
	for i := 0; i < n; i++ {
		mono := (samples[i][0] + samples[i][1]) * 0.5
		sumSquares += mono * mono
	}
	level := 0.0
	if n > 0 {
		level = math.Sqrt(sumSquares / float64(n))
	}

	t.mu.Lock()
	t.level = level
	t.done = !ok || n == 0
	t.mu.Unlock()
	return n, ok
}

func (t *LevelTap) Err() error { return t.Source.Err() }

// Level returns the RMS of the last block, or 0 once the source is drained.
func (t *LevelTap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.done {
		return 0
	}
	return t.level
}

// Done reports whether the wrapped source has finished.
func (t *LevelTap) Done() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.done
}
