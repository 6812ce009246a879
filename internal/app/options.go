// Package app wires the config sections onto the animation packages and runs
// the windowless mode. Nothing here links a graphics backend.
package app

import (
	"image/color"

	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/hearts"
	"github.com/iburimskiy/heartfield/internal/particles"
)

// ParticleOptions maps the particles config section onto field options.
func ParticleOptions(c config.ParticlesConfig) particles.Options {
	return particles.Options{
		Density:      c.Density,
		LinkDistance: c.LinkDistance,
		LinkAlpha:    c.LinkAlpha,
		LinkWidth:    c.LinkWidth,
		MinRadius:    c.MinRadius,
		MaxRadius:    c.MaxRadius,
		MinAlpha:     c.MinAlpha,
		MaxAlpha:     c.MaxAlpha,
		MaxSpeed:     c.MaxSpeed,
		Color:        color.RGBA{R: c.Color[0], G: c.Color[1], B: c.Color[2], A: 255},
	}
}

// PoolOptions maps the hearts config section onto pool options.
func PoolOptions(c config.HeartsConfig) hearts.PoolOptions {
	return hearts.PoolOptions{
		Lifetime: c.Lifetime,
		Max:      c.Max,
		BaseSize: c.BaseSize,
		MinScale: c.MinScale,
		MaxScale: c.MaxScale,
	}
}

// SpawnOptions maps the hearts config section onto spawner timing and
// placement.
func SpawnOptions(c config.HeartsConfig) hearts.SpawnOptions {
	return hearts.SpawnOptions{
		AutoInterval:   c.AutoInterval,
		BurstCount:     c.BurstCount,
		BurstRadius:    c.BurstRadius,
		BurstStagger:   c.BurstStagger,
		TrailDebounce:  c.TrailDebounce,
		TrailChance:    c.TrailChance,
		WelcomeDelay:   c.WelcomeDelay,
		WelcomeCount:   c.WelcomeCount,
		WelcomeStagger: c.WelcomeStagger,
		WelcomeDepth:   c.WelcomeDepth,
		MascotCount:    c.MascotCount,
		MascotStagger:  c.MascotStagger,
		MascotSpreadX:  c.MascotSpreadX,
		MascotSpreadY:  c.MascotSpreadY,
	}
}
