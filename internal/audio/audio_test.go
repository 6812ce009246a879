package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer, block int) (samples [][2]float64) {
	buf := make([][2]float64, block)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok {
			return samples
		}
	}
}

func TestChimeLengthAndBounds(t *testing.T) {
	sr := beep.SampleRate(44100)
	samples := drain(Chime(sr, 880, 500*time.Millisecond, 0.5), 512)

	if len(samples) != sr.N(500*time.Millisecond) {
		t.Fatalf("got %d samples, want %d", len(samples), sr.N(500*time.Millisecond))
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 0.5+1e-9 || s[0] != s[1] {
			t.Fatalf("sample %d = %v exceeds volume or is not mono", i, s)
		}
	}

	// The tone decays: the last tenth is much quieter than the first.
	rms := func(part [][2]float64) float64 {
		var sum float64
		for _, s := range part {
			sum += s[0] * s[0]
		}
		return math.Sqrt(sum / float64(len(part)))
	}
	tenth := len(samples) / 10
	if head, tail := rms(samples[:tenth]), rms(samples[len(samples)-tenth:]); tail >= head/5 {
		t.Errorf("tail rms %v not well below head rms %v", tail, head)
	}
}

func TestChimeZeroDuration(t *testing.T) {
	buf := make([][2]float64, 16)
	n, ok := Chime(44100, 440, 0, 1).Stream(buf)
	if n != 0 || ok {
		t.Errorf("zero-length chime streamed n=%d ok=%v", n, ok)
	}
}

func TestLevelTap(t *testing.T) {
	tap := NewLevelTap(Chime(44100, 440, 100*time.Millisecond, 1))
	if tap.Level() != 0 || tap.Done() {
		t.Fatalf("fresh tap level=%v done=%v", tap.Level(), tap.Done())
	}

	buf := make([][2]float64, 1024)
	if _, ok := tap.Stream(buf); !ok {
		t.Fatal("chime ended early")
	}
	if tap.Level() <= 0 {
		t.Error("level should be positive while playing")
	}

	drain(tap, 1024)
	if !tap.Done() || tap.Level() != 0 {
		t.Errorf("drained tap level=%v done=%v", tap.Level(), tap.Done())
	}
	if tap.Err() != nil {
		t.Errorf("Err() = %v", tap.Err())
	}
}
