// Package game hosts the animation in an ebiten window: it owns every piece
// of mutable state and wires input, timers, sound and drawing together.
package game

import (
	"context"
	"image"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/heartfield/internal/app"
	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/hearts"
	"github.com/iburimskiy/heartfield/internal/particles"
	"github.com/iburimskiy/heartfield/internal/timeline"
	"github.com/iburimskiy/heartfield/internal/typewriter"
	"github.com/iburimskiy/heartfield/internal/ui"
)

// Options configures a Game.
type Options struct {
	Config *config.Config
	Seed   int64
	Debug  bool
}

// Game implements ebiten.Game. Update is the per-refresh scheduler: it
// advances the virtual clock, handles input and steps the field; Draw
// renders the current state.
type Game struct {
	ctx context.Context
	cfg *config.Config
	rng *rand.Rand
	tl  *timeline.Timeline

	field    *particles.Field
	spawner  *hearts.Spawner
	writer   *typewriter.Typewriter
	scene    *ui.Scene
	handlers ui.Handlers
	sound    *sound

	// surfaces
	width, height int
	canvas        *ebiten.Image
	background    *ebiten.Image
	face          *text.GoTextFace
	vertices      []ebiten.Vertex
	indices       []uint16

	// input edge detection
	prevKey    map[ebiten.Key]bool
	lastCursor image.Point

	// state
	muted    bool
	debug    bool
	shotPath string
	lastErr  error
	frames   uint64
}

// New builds the game for the configured window size. The game stops at the
// first Update after ctx is done.
func New(ctx context.Context, opts Options) *Game {
	cfg := opts.Config
	rng := rand.New(rand.NewSource(opts.Seed))
	tl := timeline.New()

	w, h := cfg.Window.Width, cfg.Window.Height
	pool := hearts.NewPool(app.PoolOptions(cfg.Hearts), rng)
	writer := typewriter.New(tl, rng, cfg.Typewriter.BaseDelay, cfg.Typewriter.Jitter)

	g := &Game{
		ctx:     ctx,
		cfg:     cfg,
		rng:     rng,
		tl:      tl,
		field:   particles.NewField(app.ParticleOptions(cfg.Particles), rng),
		spawner: hearts.NewSpawner(pool, tl, rng, app.SpawnOptions(cfg.Hearts), float64(w), float64(h)),
		writer:  writer,
		scene: &ui.Scene{
			Button: &ui.Button{
				Label:  cfg.Button.Label,
				Width:  cfg.Button.Width,
				Height: cfg.Button.Height,
				Press:  cfg.Button.Press,
			},
			Modal: ui.NewModal(cfg.Modal.Enabled, cfg.Modal.Width, cfg.Modal.Height, cfg.Typewriter.Message, writer),
			Mascot: &ui.Mascot{
				Enabled: cfg.Mascot.Enabled,
				X:       cfg.Mascot.X,
				Y:       cfg.Mascot.Y,
				Width:   cfg.Mascot.Width,
				Height:  cfg.Mascot.Height,
			},
		},
		prevKey: map[ebiten.Key]bool{},
		debug:   opts.Debug,
	}
	g.handlers = ui.Handlers{
		Close:    g.scene.Modal.Close,
		Mascot:   g.spawner.Mascot,
		Button:   g.onButton,
		Anywhere: g.spawner.Click,
	}

	if face, err := newFace(cfg.Modal.FontSize); err != nil {
		slog.Warn("font unavailable, falling back to debug text", "error", err)
	} else {
		g.face = face
	}

	if cfg.Audio.Enabled {
		s, err := newSound(cfg.Audio)
		if err != nil {
			slog.Warn("audio disabled", "error", err)
		} else {
			g.sound = s
		}
	}

	g.resize(w, h)
	g.spawner.StartAuto()
	g.spawner.Welcome()
	return g
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.frames++

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	g.tl.Advance(g.tl.Now() + time.Second/time.Duration(tps))

	if err := g.handleInput(); err != nil {
		return err
	}

	g.field.Step()
	g.spawner.Pool().Sweep(g.tl.Now())
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// resize reallocates the surfaces and rebuilds the field for w×h.
func (g *Game) resize(w, h int) {
	g.width, g.height = w, h

	if g.canvas != nil {
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
	if g.background != nil {
		g.background.Deallocate()
	}
	g.background = newBackground(w, h)

	g.field.Resize(float64(w), float64(h))
	g.spawner.Resize(float64(w), float64(h))
	g.scene.Button.Layout(w, h)
	g.scene.Modal.Layout(w, h)
	g.scene.Mascot.Layout(w, h)

	slog.Debug("surface resized", "width", w, "height", h, "points", g.field.Len())
}

func (g *Game) onButton() {
	now := g.tl.Now()
	g.spawner.Burst(float64(g.width)/2, float64(g.height)/2)
	g.scene.Button.Click(now)
	if g.sound != nil && !g.muted {
		g.sound.play()
	}
	g.scene.Modal.Open()
}

// Now returns the game's virtual time.
func (g *Game) Now() time.Duration { return g.tl.Now() }
