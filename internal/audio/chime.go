// Package audio generates the soft chime played when the button is clicked.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// partials are overtone ratios and their relative gains.
var partials = [...]struct{ ratio, gain float64 }{
	{1, 1},
	{2, 0.35},
	{3, 0.12},
}

// Chime returns a streamer playing a decaying bell-like tone at freq for dur.
// volume scales the peak amplitude and is clamped to [0,1].
func Chime(sr beep.SampleRate, freq float64, dur time.Duration, volume float64) beep.Streamer {
	total := sr.N(dur)
	volume = math.Max(0, math.Min(1, volume))

	var norm float64
	for _, p := range partials {
		norm += p.gain
	}

	// Decay to about 1% by the end of the tone.
	decay := 0.0
	if total > 0 {
		decay = math.Log(100) / float64(total)
	}
	step := 2 * math.Pi * freq / float64(sr)

	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := math.Exp(-decay * float64(pos))
			var v float64
			for _, p := range partials {
				v += p.gain * math.Sin(step*p.ratio*float64(pos))
			}
			v = v / norm * env * volume
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}
