package game

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput polls the mouse and keyboard once per frame. It returns
// ebiten.Termination when the user asks to quit.
func (g *Game) handleInput() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	cursor := image.Pt(mouseX, mouseY)
	if cursor != g.lastCursor {
		g.lastCursor = cursor
		g.spawner.Trail(float64(mouseX), float64(mouseY))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		target := g.scene.Dispatch(cursor, g.handlers)
		slog.Debug("click", "target", target.String(), "x", mouseX, "y", mouseY)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.scene.Dispatch(image.Pt(x, y), g.handlers)
	}

	modal := g.scene.Modal
	if justPressed(ebiten.KeyEscape) {
		if !modal.IsOpen() {
			return ebiten.Termination
		}
		modal.Close()
	}
	if justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	space, enter := justPressed(ebiten.KeySpace), justPressed(ebiten.KeyEnter)
	if (space || enter) && modal.IsOpen() && modal.Typing() {
		g.writer.Skip()
	}
	if justPressed(ebiten.KeyM) {
		g.muted = !g.muted
		slog.Info("sound toggled", "muted", g.muted)
	}
	if justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if justPressed(ebiten.KeyS) {
		if err := g.chooseScreenshotPath(); err != nil {
			g.lastErr = err
			slog.Warn("screenshot dialog failed", "error", err)
		}
	}
	return nil
}
