// Package config loads the animation settings from YAML layered over the
// embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the window, the particle field and the
// interactive effects.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Hearts     HeartsConfig     `yaml:"hearts"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Button     ButtonConfig     `yaml:"button"`
	Modal      ModalConfig      `yaml:"modal"`
	Mascot     MascotConfig     `yaml:"mascot"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// ParticlesConfig holds the background point field parameters.
type ParticlesConfig struct {
	Density      float64  `yaml:"density"`
	LinkDistance float64  `yaml:"link_distance"`
	LinkAlpha    float64  `yaml:"link_alpha"`
	LinkWidth    float64  `yaml:"link_width"`
	MinRadius    float64  `yaml:"min_radius"`
	MaxRadius    float64  `yaml:"max_radius"`
	MinAlpha     float64  `yaml:"min_alpha"`
	MaxAlpha     float64  `yaml:"max_alpha"`
	MaxSpeed     float64  `yaml:"max_speed"`
	Color        [3]uint8 `yaml:"color"`
}

// HeartsConfig holds floating heart spawning and animation parameters.
type HeartsConfig struct {
	Lifetime       time.Duration `yaml:"lifetime"`
	Max            int           `yaml:"max"`
	BaseSize       float64       `yaml:"base_size"`
	MinScale       float64       `yaml:"min_scale"`
	MaxScale       float64       `yaml:"max_scale"`
	Rise           float64       `yaml:"rise"`
	Sway           float64       `yaml:"sway"`
	AutoInterval   time.Duration `yaml:"auto_interval"`
	BurstCount     int           `yaml:"burst_count"`
	BurstRadius    float64       `yaml:"burst_radius"`
	BurstStagger   time.Duration `yaml:"burst_stagger"`
	TrailDebounce  time.Duration `yaml:"trail_debounce"`
	TrailChance    float64       `yaml:"trail_chance"`
	WelcomeDelay   time.Duration `yaml:"welcome_delay"`
	WelcomeCount   int           `yaml:"welcome_count"`
	WelcomeStagger time.Duration `yaml:"welcome_stagger"`
	WelcomeDepth   float64       `yaml:"welcome_depth"`
	MascotCount    int           `yaml:"mascot_count"`
	MascotStagger  time.Duration `yaml:"mascot_stagger"`
	MascotSpreadX  float64       `yaml:"mascot_spread_x"`
	MascotSpreadY  float64       `yaml:"mascot_spread_y"`
}

// TypewriterConfig holds the love letter text and reveal speed.
type TypewriterConfig struct {
	BaseDelay time.Duration `yaml:"base_delay"`
	Jitter    time.Duration `yaml:"jitter"` // extra random delay per character, [0, jitter)
	Message   string        `yaml:"message"`
}

// ButtonConfig holds the central button geometry.
type ButtonConfig struct {
	Label  string        `yaml:"label"`
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Press  time.Duration `yaml:"press"`
}

// ModalConfig holds the love letter modal geometry.
type ModalConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	FontSize float64 `yaml:"font_size"`
}

// MascotConfig places the optional mascot. Negative coordinates are offsets
// from the right and bottom edges.
type MascotConfig struct {
	Enabled bool `yaml:"enabled"`
	X       int  `yaml:"x"`
	Y       int  `yaml:"y"`
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
}

// AudioConfig holds the button chime parameters.
type AudioConfig struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Frequency  float64       `yaml:"frequency"`
	Duration   time.Duration `yaml:"duration"`
	Volume     float64       `yaml:"volume"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := parse(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parse(data)
}

func parse(user []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	// Unmarshal into same struct - only overwrites fields present in file
	if len(user) > 0 {
		if err := yaml.Unmarshal(user, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every setting that would make the animation misbehave,
// joined into one error.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)

	p := c.Particles
	check(p.Density > 0, "particles: density must be positive, got %v", p.Density)
	check(p.LinkDistance > 0, "particles: link_distance must be positive, got %v", p.LinkDistance)
	check(p.MinRadius <= p.MaxRadius, "particles: min_radius %v > max_radius %v", p.MinRadius, p.MaxRadius)
	check(p.MinAlpha <= p.MaxAlpha, "particles: min_alpha %v > max_alpha %v", p.MinAlpha, p.MaxAlpha)
	check(p.MaxSpeed >= 0, "particles: max_speed must not be negative, got %v", p.MaxSpeed)

	h := c.Hearts
	check(h.Lifetime > 0, "hearts: lifetime must be positive, got %v", h.Lifetime)
	check(h.Max > 0, "hearts: max must be positive, got %d", h.Max)
	check(h.MinScale <= h.MaxScale, "hearts: min_scale %v > max_scale %v", h.MinScale, h.MaxScale)
	check(h.AutoInterval >= 0, "hearts: auto_interval must not be negative, got %v", h.AutoInterval)
	check(h.TrailChance >= 0 && h.TrailChance <= 1, "hearts: trail_chance must be in [0,1], got %v", h.TrailChance)

	check(c.Typewriter.BaseDelay > 0, "typewriter: base_delay must be positive, got %v", c.Typewriter.BaseDelay)
	check(c.Typewriter.Jitter >= 0, "typewriter: jitter must not be negative, got %v", c.Typewriter.Jitter)

	if c.Audio.Enabled {
		check(c.Audio.SampleRate > 0, "audio: sample_rate must be positive, got %d", c.Audio.SampleRate)
		check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio: volume must be in [0,1], got %v", c.Audio.Volume)
	}

	return errors.Join(errs...)
}
