package hearts

import (
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/heartfield/internal/timeline"
)

// SpawnOptions controls when and where hearts appear.
type SpawnOptions struct {
	AutoInterval   time.Duration
	BurstCount     int
	BurstRadius    float64
	BurstStagger   time.Duration
	TrailDebounce  time.Duration
	TrailChance    float64
	WelcomeDelay   time.Duration
	WelcomeCount   int
	WelcomeStagger time.Duration
	WelcomeDepth   float64
	MascotCount    int
	MascotStagger  time.Duration
	MascotSpreadX  float64
	MascotSpreadY  float64
}

// Spawner schedules heart spawns on a timeline.
type Spawner struct {
	pool   *Pool
	tl     *timeline.Timeline
	rng    *rand.Rand
	opts   SpawnOptions
	width  float64
	height float64

	auto           timeline.ID
	trail          timeline.ID
	trailX, trailY float64
}

// NewSpawner returns a spawner for a w×h viewport.
func NewSpawner(pool *Pool, tl *timeline.Timeline, rng *rand.Rand, opts SpawnOptions, w, h float64) *Spawner {
	return &Spawner{pool: pool, tl: tl, rng: rng, opts: opts, width: w, height: h}
}

// Resize updates the viewport used for edge spawns and the burst center.
func (s *Spawner) Resize(w, h float64) {
	s.width, s.height = w, h
}

// Pool returns the pool hearts are spawned into.
func (s *Spawner) Pool() *Pool { return s.pool }

func (s *Spawner) spawn(x, y float64) {
	s.pool.Spawn(s.tl.Now(), x, y)
}

// StartAuto spawns one heart at a random point on the bottom edge every
// AutoInterval. Calling it again restarts the interval.
func (s *Spawner) StartAuto() {
	s.StopAuto()
	if s.opts.AutoInterval <= 0 {
		return
	}
	s.auto = s.tl.Every(s.opts.AutoInterval, func() {
		s.spawn(s.rng.Float64()*s.width, s.height)
	})
}

// StopAuto cancels the periodic spawn.
func (s *Spawner) StopAuto() {
	if s.auto != 0 {
		s.tl.Cancel(s.auto)
		s.auto = 0
	}
}

// Click spawns a single heart at the pointer.
func (s *Spawner) Click(x, y float64) {
	s.spawn(x, y)
}

// Burst spawns BurstCount hearts evenly around a ring centered on (cx, cy),
// one every BurstStagger.
func (s *Spawner) Burst(cx, cy float64) {
	n := s.opts.BurstCount
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := cx + math.Cos(angle)*s.opts.BurstRadius
		y := cy + math.Sin(angle)*s.opts.BurstRadius
		s.tl.After(time.Duration(i)*s.opts.BurstStagger, func() { s.spawn(x, y) })
	}
}

// Trail records pointer motion. Once the pointer has been still for
// TrailDebounce a heart may appear at its last position.
func (s *Spawner) Trail(x, y float64) {
	s.trailX, s.trailY = x, y
	if s.trail != 0 {
		s.tl.Cancel(s.trail)
	}
	s.trail = s.tl.After(s.opts.TrailDebounce, func() {
		s.trail = 0
		if s.rng.Float64() < s.opts.TrailChance {
			s.spawn(s.trailX, s.trailY)
		}
	})
}

// Welcome schedules the opening shower of hearts rising from just below the
// bottom edge.
func (s *Spawner) Welcome() {
	s.tl.After(s.opts.WelcomeDelay, func() {
		for i := 0; i < s.opts.WelcomeCount; i++ {
			s.tl.After(time.Duration(i)*s.opts.WelcomeStagger, func() {
				x := s.rng.Float64() * s.width
				y := s.height + s.rng.Float64()*s.opts.WelcomeDepth
				s.spawn(x, y)
			})
		}
	})
}

// Mascot spawns a small scattered cluster around (cx, cy).
func (s *Spawner) Mascot(cx, cy float64) {
	for i := 0; i < s.opts.MascotCount; i++ {
		s.tl.After(time.Duration(i)*s.opts.MascotStagger, func() {
			x := cx + (s.rng.Float64()-0.5)*s.opts.MascotSpreadX
			y := cy + (s.rng.Float64()-0.5)*s.opts.MascotSpreadY
			s.spawn(x, y)
		})
	}
}
