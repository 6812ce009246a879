// Package particles simulates the drifting background points and the faint
// lines joining close neighbours.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/heartfield/internal/mathx"
)

// Point is one drifting dot. Velocity, radius and alpha are fixed for the
// point's lifetime; only the position changes.
type Point struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// Options controls sampling and rendering of a Field.
type Options struct {
	Density      float64 // square pixels per point
	LinkDistance float64
	LinkAlpha    float64 // line opacity at zero distance
	LinkWidth    float64
	MinRadius    float64
	MaxRadius    float64
	MinAlpha     float64
	MaxAlpha     float64
	MaxSpeed     float64
	Color        color.RGBA
}

// DefaultOptions mirrors the embedded configuration defaults.
func DefaultOptions() Options {
	return Options{
		Density:      8000,
		LinkDistance: 100,
		LinkAlpha:    0.1,
		LinkWidth:    1,
		MinRadius:    1,
		MaxRadius:    4,
		MinAlpha:     0.2,
		MaxAlpha:     0.7,
		MaxSpeed:     1,
		Color:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Field owns the full point set for one drawing surface.
type Field struct {
	opts   Options
	rng    *rand.Rand
	width  float64
	height float64
	points []Point
}

// NewField returns an empty field; call Resize to populate it.
func NewField(opts Options, rng *rand.Rand) *Field {
	return &Field{opts: opts, rng: rng}
}

// Count returns how many points a w×h surface holds at the given density.
func Count(w, h, density float64) int {
	if w <= 0 || h <= 0 || density <= 0 {
		return 0
	}
	return int(math.Floor(w * h / density))
}

// LinkOpacity returns the line opacity for two points d apart. It falls
// linearly from maxAlpha at d=0 to 0 at maxDist and stays 0 beyond.
func LinkOpacity(d, maxDist, maxAlpha float64) float64 {
	if d >= maxDist {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return maxAlpha * (1 - d/maxDist)
}

// Resize records the new surface size and rebuilds the point set.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
	f.Rebuild()
}

// Rebuild discards every point and samples a fresh set for the current size.
func (f *Field) Rebuild() {
	n := Count(f.width, f.height, f.opts.Density)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = f.sample()
	}
	f.points = pts
}

func (f *Field) sample() Point {
	o := f.opts
	return Point{
		X:      f.rng.Float64() * f.width,
		Y:      f.rng.Float64() * f.height,
		VX:     (f.rng.Float64()*2 - 1) * o.MaxSpeed,
		VY:     (f.rng.Float64()*2 - 1) * o.MaxSpeed,
		Radius: o.MinRadius + f.rng.Float64()*(o.MaxRadius-o.MinRadius),
		Alpha:  o.MinAlpha + f.rng.Float64()*(o.MaxAlpha-o.MinAlpha),
	}
}

// Step advances every point by its velocity and teleports points that left
// the surface to the opposite edge. A point exactly on an edge stays put.
func (f *Field) Step() {
	for i := range f.points {
		p := &f.points[i]
		p.X += p.VX
		p.Y += p.VY
		p.X = wrap(p.X, f.width)
		p.Y = wrap(p.Y, f.height)
	}
}

func wrap(v, limit float64) float64 {
	if v > limit {
		return 0
	}
	if v < 0 {
		return limit
	}
	return v
}

// Render clears s, draws the links, then draws every point on top of them.
func (f *Field) Render(s Surface) {
	s.Clear()

	o := f.opts
	for i := range f.points {
		p1 := &f.points[i]
		for j := i + 1; j < len(f.points); j++ {
			p2 := &f.points[j]
			d := math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
			if d >= o.LinkDistance {
				continue
			}
			s.StrokeLine(p1.X, p1.Y, p2.X, p2.Y, o.LinkWidth, withAlpha(o.Color, LinkOpacity(d, o.LinkDistance, o.LinkAlpha)))
		}
	}

	for _, p := range f.points {
		s.FillCircle(p.X, p.Y, p.Radius, withAlpha(o.Color, p.Alpha))
	}
}

// Points exposes the current point set. Callers must not retain it across
// a Rebuild.
func (f *Field) Points() []Point { return f.points }

// Len returns the number of points.
func (f *Field) Len() int { return len(f.points) }

// Size returns the surface size the field was last built for.
func (f *Field) Size() (w, h float64) { return f.width, f.height }

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(mathx.Clamp01(a) * 255))}
}
