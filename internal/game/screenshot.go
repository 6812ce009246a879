package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// chooseScreenshotPath asks where to save the next frame. The capture itself
// happens at the end of the following Draw.
func (g *Game) chooseScreenshotPath() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("hearts.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}
	g.shotPath = filename
	return nil
}

// flushScreenshot writes screen to the pending path, if one was chosen.
func (g *Game) flushScreenshot(screen *ebiten.Image) {
	if g.shotPath == "" {
		return
	}
	path := g.shotPath
	g.shotPath = ""

	if err := saveImage(screen, path); err != nil {
		g.lastErr = err
		slog.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}

func saveImage(src *ebiten.Image, path string) error {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(img.Pix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return f.Close()
}
