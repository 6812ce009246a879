package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heartfield/internal/app"
	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run the particle field without a window")
	frames := flag.Int("frames", 0, "Stop headless mode after N frames (0 = unlimited)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (empty = use config)")
	logJSON := flag.Bool("log-json", false, "Log as JSON")
	debug := flag.Bool("debug", false, "Show the FPS and state overlay")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}
	slog.SetDefault(newLogger(level, cfg.Log.JSON || *logJSON))

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		_, err := app.RunHeadless(ctx, cfg, app.HeadlessOptions{Seed: rngSeed, Frames: *frames})
		if err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	slog.Info("starting", "seed", rngSeed, "width", cfg.Window.Width, "height", cfg.Window.Height)

	g := game.New(ctx, game.Options{Config: cfg, Seed: rngSeed, Debug: *debug})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string, json bool) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
