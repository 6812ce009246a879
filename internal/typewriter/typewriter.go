// Package typewriter reveals a message one rune at a time on a timeline.
package typewriter

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/heartfield/internal/timeline"
)

// Typewriter holds at most one pending reveal step. Starting a new message
// cancels it first, so two reveals never interleave.
type Typewriter struct {
	tl     *timeline.Timeline
	rng    *rand.Rand
	base   time.Duration
	jitter time.Duration

	text    []rune
	shown   int
	typing  bool
	pending timeline.ID
}

// New returns an idle typewriter. Each step waits base plus a random extra
// in [0, jitter).
func New(tl *timeline.Timeline, rng *rand.Rand, base, jitter time.Duration) *Typewriter {
	return &Typewriter{tl: tl, rng: rng, base: base, jitter: jitter}
}

// Start clears the shown text and begins revealing msg.
func (w *Typewriter) Start(msg string) {
	w.cancel()
	w.text = []rune(msg)
	w.shown = 0
	w.typing = len(w.text) > 0
	if w.typing {
		w.schedule()
	}
}

// Stop cancels the pending step. The text revealed so far stays visible.
func (w *Typewriter) Stop() {
	w.cancel()
	w.typing = false
}

// Skip reveals the whole message at once.
func (w *Typewriter) Skip() {
	w.cancel()
	w.shown = len(w.text)
	w.typing = false
}

func (w *Typewriter) cancel() {
	if w.pending != 0 {
		w.tl.Cancel(w.pending)
		w.pending = 0
	}
}

func (w *Typewriter) schedule() {
	d := w.base
	if w.jitter > 0 {
		d += time.Duration(w.rng.Int63n(int64(w.jitter)))
	}
	w.pending = w.tl.After(d, w.step)
}

func (w *Typewriter) step() {
	w.pending = 0
	w.shown++
	if w.shown < len(w.text) {
		w.schedule()
		return
	}
	w.typing = false
}

// Text returns the revealed prefix of the message.
func (w *Typewriter) Text() string { return string(w.text[:w.shown]) }

// Shown returns how many runes are revealed.
func (w *Typewriter) Shown() int { return w.shown }

// Typing reports whether more runes are still to be revealed.
func (w *Typewriter) Typing() bool { return w.typing }

// Done reports whether the full message is visible.
func (w *Typewriter) Done() bool { return len(w.text) > 0 && w.shown == len(w.text) }
