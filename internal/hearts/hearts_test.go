package hearts

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/iburimskiy/heartfield/internal/timeline"
)

const ms = time.Millisecond

func testPoolOptions() PoolOptions {
	return PoolOptions{Lifetime: 4 * time.Second, Max: 100, BaseSize: 16, MinScale: 1, MaxScale: 3}
}

func testSpawnOptions() SpawnOptions {
	return SpawnOptions{
		AutoInterval:   800 * ms,
		BurstCount:     15,
		BurstRadius:    100,
		BurstStagger:   50 * ms,
		TrailDebounce:  100 * ms,
		TrailChance:    0.05,
		WelcomeDelay:   500 * ms,
		WelcomeCount:   10,
		WelcomeStagger: 200 * ms,
		WelcomeDepth:   100,
		MascotCount:    8,
		MascotStagger:  80 * ms,
		MascotSpreadX:  120,
		MascotSpreadY:  60,
	}
}

func newTestSpawner(opts SpawnOptions) (*Spawner, *timeline.Timeline) {
	rng := rand.New(rand.NewSource(1))
	tl := timeline.New()
	pool := NewPool(testPoolOptions(), rng)
	return NewSpawner(pool, tl, rng, opts, 800, 600), tl
}

func TestSpawnSamplesAttributes(t *testing.T) {
	pool := NewPool(testPoolOptions(), rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		h := pool.Spawn(time.Second, 10, 20)
		if h.Size < 16 || h.Size > 48 {
			t.Errorf("size %v outside [16,48]", h.Size)
		}
		if h.Variant < 0 || h.Variant >= numVariants {
			t.Errorf("variant %d out of range", h.Variant)
		}
		if h.Expires-h.Born != 4*time.Second {
			t.Errorf("lifetime = %v, want 4s", h.Expires-h.Born)
		}
	}
}

func TestSweepRemovesExpired(t *testing.T) {
	pool := NewPool(testPoolOptions(), rand.New(rand.NewSource(1)))
	pool.Spawn(0, 0, 0)
	pool.Spawn(time.Second, 0, 0)
	pool.Spawn(2*time.Second, 0, 0)

	if n := pool.Sweep(3999 * ms); n != 0 {
		t.Errorf("swept %d hearts before expiry", n)
	}
	if n := pool.Sweep(4 * time.Second); n != 1 {
		t.Errorf("swept %d hearts at 4s, want 1", n)
	}
	if n := pool.Sweep(10 * time.Second); n != 2 {
		t.Errorf("swept %d hearts at 10s, want 2", n)
	}
	if pool.Len() != 0 {
		t.Errorf("Len() = %d after sweeping all", pool.Len())
	}
}

func TestPoolDropsOldestWhenFull(t *testing.T) {
	opts := testPoolOptions()
	opts.Max = 3
	pool := NewPool(opts, rand.New(rand.NewSource(1)))
	for i := 0; i < 5; i++ {
		pool.Spawn(time.Duration(i)*ms, float64(i), 0)
	}
	if pool.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pool.Len())
	}
	for i, h := range pool.Hearts() {
		if h.X != float64(i+2) {
			t.Errorf("heart %d X = %v, want %v", i, h.X, i+2)
		}
	}
}

func TestHeartAnimation(t *testing.T) {
	h := Heart{X: 100, Y: 500, Born: 0, Expires: 4 * time.Second}

	tests := []struct {
		now      time.Duration
		progress float64
		alpha    float64
	}{
		{0, 0, 0},
		{200 * ms, 0.05, 0.5},
		{400 * ms, 0.1, 1},
		{2 * time.Second, 0.5, 1},
		{3400 * ms, 0.85, 0.5},
		{4 * time.Second, 1, 0},
		{5 * time.Second, 1, 0},
	}

	for _, tt := range tests {
		if got := h.Progress(tt.now); math.Abs(got-tt.progress) > 1e-9 {
			t.Errorf("Progress(%v) = %v, want %v", tt.now, got, tt.progress)
		}
		if got := h.Alpha(tt.now); math.Abs(got-tt.alpha) > 1e-9 {
			t.Errorf("Alpha(%v) = %v, want %v", tt.now, got, tt.alpha)
		}
	}

	_, y := h.Position(2*time.Second, 300, 12)
	if math.Abs(y-350) > 1e-9 {
		t.Errorf("y at half life = %v, want 350", y)
	}
	x, _ := h.Position(time.Second, 300, 12)
	if math.Abs(x-112) > 1e-9 {
		t.Errorf("x at quarter life = %v, want 112", x)
	}
}

func TestVariantLooks(t *testing.T) {
	seen := map[Decoration]bool{}
	for v := Variant(0); v < numVariants; v++ {
		if v.Color().A != 255 {
			t.Errorf("variant %d has transparent fill", v)
		}
		seen[v.Decoration()] = true
	}
	if len(seen) != int(numVariants) {
		t.Errorf("%d distinct decorations for %d variants", len(seen), numVariants)
	}
	if Variant(99).Color() != Red.Color() {
		t.Error("unknown variant should fall back to red")
	}
}

func TestAutoSpawnsOnBottomEdge(t *testing.T) {
	s, tl := newTestSpawner(testSpawnOptions())
	s.StartAuto()

	tl.Advance(799 * ms)
	if s.Pool().Len() != 0 {
		t.Fatalf("spawned before first interval")
	}
	tl.Advance(2400 * ms)
	if s.Pool().Len() != 3 {
		t.Fatalf("Len() = %d after 2.4s, want 3", s.Pool().Len())
	}
	for _, h := range s.Pool().Hearts() {
		if h.Y != 600 || h.X < 0 || h.X >= 800 {
			t.Errorf("auto heart at (%v, %v), want bottom edge", h.X, h.Y)
		}
	}

	s.StopAuto()
	tl.Advance(10 * time.Second)
	if s.Pool().Len() != 3 {
		t.Errorf("spawned after StopAuto")
	}
}

func TestBurstRing(t *testing.T) {
	s, tl := newTestSpawner(testSpawnOptions())
	s.Burst(400, 300)

	tl.Advance(0)
	if s.Pool().Len() != 1 {
		t.Fatalf("Len() = %d at t=0, want 1", s.Pool().Len())
	}
	tl.Advance(100 * ms)
	if s.Pool().Len() != 3 {
		t.Fatalf("Len() = %d at 100ms, want 3", s.Pool().Len())
	}
	tl.Advance(700 * ms)
	if s.Pool().Len() != 15 {
		t.Fatalf("Len() = %d at 700ms, want 15", s.Pool().Len())
	}
	for i, h := range s.Pool().Hearts() {
		d := math.Hypot(h.X-400, h.Y-300)
		if math.Abs(d-100) > 1e-9 {
			t.Errorf("heart %d at distance %v from center, want 100", i, d)
		}
	}
	first := s.Pool().Hearts()[0]
	if math.Abs(first.X-500) > 1e-9 || math.Abs(first.Y-300) > 1e-9 {
		t.Errorf("first burst heart at (%v, %v), want (500, 300)", first.X, first.Y)
	}
}

func TestTrailDebounces(t *testing.T) {
	opts := testSpawnOptions()
	opts.TrailChance = 1
	s, tl := newTestSpawner(opts)

	for i := 0; i < 10; i++ {
		s.Trail(float64(i), float64(i))
		tl.Advance(tl.Now() + 50*ms)
	}
	if s.Pool().Len() != 0 {
		t.Fatalf("trail spawned while pointer kept moving")
	}
	if tl.Pending() != 1 {
		t.Errorf("Pending() = %d, want exactly one trail check", tl.Pending())
	}

	tl.Advance(tl.Now() + 100*ms)
	if s.Pool().Len() != 1 {
		t.Fatalf("Len() = %d after pointer rested, want 1", s.Pool().Len())
	}
	h := s.Pool().Hearts()[0]
	if h.X != 9 || h.Y != 9 {
		t.Errorf("trail heart at (%v, %v), want last position (9, 9)", h.X, h.Y)
	}
}

func TestTrailChanceZero(t *testing.T) {
	opts := testSpawnOptions()
	opts.TrailChance = 0
	s, tl := newTestSpawner(opts)
	for i := 0; i < 100; i++ {
		s.Trail(1, 1)
		tl.Advance(tl.Now() + time.Second)
	}
	if s.Pool().Len() != 0 {
		t.Errorf("spawned %d trail hearts with zero chance", s.Pool().Len())
	}
}

func TestWelcome(t *testing.T) {
	s, tl := newTestSpawner(testSpawnOptions())
	s.Welcome()

	tl.Advance(499 * ms)
	if s.Pool().Len() != 0 {
		t.Fatal("welcome started early")
	}
	tl.Advance(500 * ms)
	if s.Pool().Len() != 1 {
		t.Fatalf("Len() = %d at 500ms, want 1", s.Pool().Len())
	}
	tl.Advance(500*ms + 1800*ms)
	if s.Pool().Len() != 10 {
		t.Fatalf("Len() = %d after welcome, want 10", s.Pool().Len())
	}
	for _, h := range s.Pool().Hearts() {
		if h.Y < 600 || h.Y > 700 {
			t.Errorf("welcome heart y = %v, want in [600,700]", h.Y)
		}
	}
}

func TestMascotCluster(t *testing.T) {
	s, tl := newTestSpawner(testSpawnOptions())
	s.Mascot(100, 400)
	tl.Advance(time.Second)

	if s.Pool().Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Pool().Len())
	}
	for _, h := range s.Pool().Hearts() {
		if math.Abs(h.X-100) > 60 || math.Abs(h.Y-400) > 30 {
			t.Errorf("mascot heart at (%v, %v) outside spread", h.X, h.Y)
		}
	}
}

func TestResizeMovesBottomEdge(t *testing.T) {
	s, tl := newTestSpawner(testSpawnOptions())
	s.Resize(200, 100)
	s.StartAuto()
	tl.Advance(800 * ms)

	h := s.Pool().Hearts()[0]
	if h.Y != 100 || h.X >= 200 {
		t.Errorf("heart at (%v, %v) after resize to 200x100", h.X, h.Y)
	}
}
