package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvasSurface lets a particles.Field render into an offscreen image.
type canvasSurface struct {
	img *ebiten.Image
}

func (s canvasSurface) Clear() {
	s.img.Clear()
}

func (s canvasSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s canvasSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}
