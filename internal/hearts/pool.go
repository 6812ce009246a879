// Package hearts spawns and animates the floating hearts. Each heart carries
// explicit birth and expiry times and the pool is swept once per frame.
package hearts

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/heartfield/internal/mathx"
)

// Variant selects how a heart looks.
type Variant int

const (
	Red Variant = iota
	Sparkling
	Double
	Growing
	Beating
	Ribbon
	Arrow

	numVariants
)

// Decoration is the extra detail drawn on top of the base heart shape.
type Decoration int

const (
	Plain Decoration = iota
	Sparkle
	Twin
	Glow
	Pulse
	Bow
	Shaft
)

type look struct {
	fill  color.RGBA
	decor Decoration
}

var looks = [numVariants]look{
	Red:       {color.RGBA{R: 230, G: 36, B: 62, A: 255}, Plain},
	Sparkling: {color.RGBA{R: 255, G: 105, B: 180, A: 255}, Sparkle},
	Double:    {color.RGBA{R: 255, G: 130, B: 190, A: 255}, Twin},
	Growing:   {color.RGBA{R: 255, G: 80, B: 160, A: 255}, Glow},
	Beating:   {color.RGBA{R: 250, G: 60, B: 120, A: 255}, Pulse},
	Ribbon:    {color.RGBA{R: 255, G: 90, B: 140, A: 255}, Bow},
	Arrow:     {color.RGBA{R: 240, G: 70, B: 110, A: 255}, Shaft},
}

// Color returns the fill color of v.
func (v Variant) Color() color.RGBA {
	if v < 0 || v >= numVariants {
		return looks[Red].fill
	}
	return looks[v].fill
}

// Decoration returns the detail drawn on v.
func (v Variant) Decoration() Decoration {
	if v < 0 || v >= numVariants {
		return Plain
	}
	return looks[v].decor
}

// Heart is one floating heart. X and Y are the spawn point; the rendered
// position is derived from the age.
type Heart struct {
	X, Y    float64
	Size    float64
	Variant Variant
	Born    time.Duration
	Expires time.Duration
	Sway    float64 // phase offset of the horizontal sway
}

// Progress returns the fraction of the lifetime elapsed at now, in [0,1].
func (h Heart) Progress(now time.Duration) float64 {
	life := h.Expires - h.Born
	if life <= 0 {
		return 1
	}
	return mathx.Clamp01(float64(now-h.Born) / float64(life))
}

// Alive reports whether the heart has not yet expired at now.
func (h Heart) Alive(now time.Duration) bool {
	return now < h.Expires
}

// Position returns the rendered center at now: rising by rise pixels over the
// lifetime while swaying sideways by up to sway pixels.
func (h Heart) Position(now time.Duration, rise, sway float64) (x, y float64) {
	p := h.Progress(now)
	x = h.X + math.Sin(p*2*math.Pi+h.Sway)*sway
	y = h.Y - p*rise
	return x, y
}

// Alpha fades in over the first 10% of the lifetime and out over the last 30%.
func (h Heart) Alpha(now time.Duration) float64 {
	p := h.Progress(now)
	return mathx.Clamp01(math.Min(p/0.1, (1-p)/0.3))
}

// Scale grows the heart slightly as it rises. Beating hearts also pulse.
func (h Heart) Scale(now time.Duration) float64 {
	p := h.Progress(now)
	s := 0.8 + 0.4*p
	if h.Variant.Decoration() == Pulse {
		s *= 1 + 0.08*math.Sin(p*8*math.Pi)
	}
	return s
}

// PoolOptions controls heart sampling.
type PoolOptions struct {
	Lifetime time.Duration
	Max      int
	BaseSize float64 // pixels per unit of scale
	MinScale float64
	MaxScale float64
}

// Pool owns the live hearts in spawn order.
type Pool struct {
	opts   PoolOptions
	rng    *rand.Rand
	hearts []Heart
}

// NewPool returns an empty pool.
func NewPool(opts PoolOptions, rng *rand.Rand) *Pool {
	return &Pool{opts: opts, rng: rng}
}

// Spawn adds a heart at (x, y). When the pool is full the oldest heart is
// dropped first.
func (p *Pool) Spawn(now time.Duration, x, y float64) Heart {
	o := p.opts
	h := Heart{
		X:       x,
		Y:       y,
		Size:    o.BaseSize * (o.MinScale + p.rng.Float64()*(o.MaxScale-o.MinScale)),
		Variant: Variant(p.rng.Intn(int(numVariants))),
		Born:    now,
		Expires: now + o.Lifetime,
		Sway:    p.rng.Float64() * 2 * math.Pi,
	}
	if o.Max > 0 && len(p.hearts) >= o.Max {
		n := copy(p.hearts, p.hearts[len(p.hearts)-o.Max+1:])
		p.hearts = p.hearts[:n]
	}
	p.hearts = append(p.hearts, h)
	return h
}

// Sweep drops every heart expired at now and returns how many were removed.
func (p *Pool) Sweep(now time.Duration) int {
	kept := p.hearts[:0]
	for _, h := range p.hearts {
		if h.Alive(now) {
			kept = append(kept, h)
		}
	}
	removed := len(p.hearts) - len(kept)
	clear(p.hearts[len(kept):])
	p.hearts = kept
	return removed
}

// Hearts returns the live hearts, oldest first.
func (p *Pool) Hearts() []Heart { return p.hearts }

// Len returns the number of live hearts.
func (p *Pool) Len() int { return len(p.hearts) }
