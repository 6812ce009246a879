// Package palette converts and fades the colours used by the renderer.
package palette

import (
	"image/color"
	"math"

	"github.com/iburimskiy/heartfield/internal/mathx"
)

// HSV converts a hue in degrees with saturation and value in [0, 1] to an
// opaque RGBA colour. Hues outside [0, 360) wrap.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{R: channel(r + m), G: channel(g + m), B: channel(b + m), A: 255}
}

// Fade returns c as a non-premultiplied colour with its alpha scaled by a.
func Fade(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(mathx.Clamp01(a) * float64(c.A)))}
}

func channel(v float64) uint8 {
	return uint8(math.Round(mathx.Clamp01(v) * 255))
}
