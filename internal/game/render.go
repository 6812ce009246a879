package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heartfield/internal/hearts"
	"github.com/iburimskiy/heartfield/internal/mathx"
	"github.com/iburimskiy/heartfield/internal/palette"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.background, nil)

	// Particle layer
	g.field.Render(canvasSurface{img: g.canvas})
	screen.DrawImage(g.canvas, nil)

	g.drawMascot(screen)
	g.drawButton(screen)
	g.drawHearts(screen)
	g.drawModal(screen)

	if g.debug {
		g.drawHUD(screen)
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-20)
	}

	g.flushScreenshot(screen)
}

// newBackground renders the static vertical gradient behind the particles.
func newBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		c := palette.HSV(300+40*ratio, 0.6, 0.16+0.34*ratio)
		vector.StrokeLine(img, 0, float32(y)+0.5, float32(w), float32(y)+0.5, 1, c, false)
	}
	return img
}

func (g *Game) drawHearts(screen *ebiten.Image) {
	now := g.tl.Now()
	rise, sway := g.cfg.Hearts.Rise, g.cfg.Hearts.Sway

	for _, h := range g.spawner.Pool().Hearts() {
		a := h.Alpha(now)
		if a <= 0 {
			continue
		}
		x, y := h.Position(now, rise, sway)
		size := h.Size * h.Scale(now)
		fill := h.Variant.Color()
		decor := h.Variant.Decoration()

		if decor == hearts.Glow {
			g.fillHeart(screen, x, y, size*1.5, palette.Fade(fill, a*0.25))
		}
		g.fillHeart(screen, x, y, size, palette.Fade(fill, a))

		switch decor {
		case hearts.Twin:
			g.fillHeart(screen, x+size*0.45, y-size*0.45, size*0.55, palette.Fade(color.RGBA{R: 255, G: 182, B: 213, A: 255}, a))
		case hearts.Sparkle:
			twinkle := 0.5 + 0.5*math.Sin(h.Progress(now)*12*math.Pi+h.Sway)
			spark := palette.Fade(color.RGBA{R: 255, G: 250, B: 220, A: 255}, a*twinkle)
			for i, off := range [3][2]float64{{0.55, -0.5}, {-0.6, -0.35}, {0.35, 0.45}} {
				r := size * (0.06 + 0.02*float64(i))
				vector.DrawFilledCircle(screen, float32(x+off[0]*size), float32(y+off[1]*size), float32(r), spark, true)
			}
		case hearts.Bow:
			gold := palette.Fade(color.RGBA{R: 255, G: 214, B: 90, A: 255}, a)
			w := float32(size * 0.08)
			vector.StrokeLine(screen, float32(x-size*0.5), float32(y), float32(x+size*0.5), float32(y), w, gold, true)
			vector.StrokeLine(screen, float32(x), float32(y-size*0.4), float32(x), float32(y+size*0.4), w, gold, true)
			vector.DrawFilledCircle(screen, float32(x), float32(y-size*0.05), float32(size*0.09), gold, true)
		case hearts.Shaft:
			wood := palette.Fade(color.RGBA{R: 240, G: 220, B: 190, A: 255}, a)
			x0, y0 := x-size*0.7, y+size*0.5
			x1, y1 := x+size*0.7, y-size*0.5
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(size*0.05), wood, true)
			vector.DrawFilledCircle(screen, float32(x1), float32(y1), float32(size*0.07), wood, true)
		}
	}
}

// fillHeart fills a heart of the given width centered on (cx, cy).
func (g *Game) fillHeart(dst *ebiten.Image, cx, cy, size float64, c color.NRGBA) {
	if c.A == 0 || size <= 0 {
		return
	}
	s := float32(size / 2)
	x, y := float32(cx), float32(cy)

	var path vector.Path
	path.MoveTo(x, y+s*0.9)
	path.CubicTo(x-s*1.3, y+s*0.1, x-s*0.9, y-s*1.1, x, y-s*0.4)
	path.CubicTo(x+s*0.9, y-s*1.1, x+s*1.3, y+s*0.1, x, y+s*0.9)
	path.Close()

	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	r, gr, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range g.vertices {
		g.vertices[i].SrcX = 1
		g.vertices[i].SrcY = 1
		g.vertices[i].ColorR = r
		g.vertices[i].ColorG = gr
		g.vertices[i].ColorB = b
		g.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	dst.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
}

func (g *Game) drawMascot(screen *ebiten.Image) {
	m := g.scene.Mascot
	if !m.Enabled {
		return
	}
	r := m.Rect
	cx := float32(r.Min.X) + float32(r.Dx())/2
	unit := float32(r.Dx()) / 12

	fur := color.RGBA{R: 245, G: 235, B: 225, A: 255}
	ink := color.RGBA{R: 70, G: 45, B: 55, A: 255}
	blush := color.RGBA{R: 255, G: 150, B: 170, A: 200}

	headY := float32(r.Min.Y) + float32(r.Dy())*0.32
	bodyY := float32(r.Min.Y) + float32(r.Dy())*0.72

	// body, ears, head
	vector.DrawFilledCircle(screen, cx, bodyY, unit*4.2, fur, true)
	vector.DrawFilledCircle(screen, cx-unit*3.2, headY-unit*3, unit*1.4, fur, true)
	vector.DrawFilledCircle(screen, cx+unit*3.2, headY-unit*3, unit*1.4, fur, true)
	vector.DrawFilledCircle(screen, cx, headY, unit*4, fur, true)

	// face
	vector.DrawFilledCircle(screen, cx-unit*1.5, headY-unit*0.3, unit*0.45, ink, true)
	vector.DrawFilledCircle(screen, cx+unit*1.5, headY-unit*0.3, unit*0.45, ink, true)
	vector.DrawFilledCircle(screen, cx-unit*2.4, headY+unit*1, unit*0.7, blush, true)
	vector.DrawFilledCircle(screen, cx+unit*2.4, headY+unit*1, unit*0.7, blush, true)
	vector.StrokeLine(screen, cx-unit*0.5, headY+unit*1, cx, headY+unit*1.4, unit*0.25, ink, true)
	vector.StrokeLine(screen, cx, headY+unit*1.4, cx+unit*0.5, headY+unit*1, unit*0.25, ink, true)

	// heart held on the belly, pulsing gently
	beat := 1 + 0.06*math.Sin(g.tl.Now().Seconds()*2*math.Pi)
	g.fillHeart(screen, float64(cx), float64(bodyY), float64(unit)*3.2*beat, color.NRGBA{R: 235, G: 50, B: 90, A: 255})
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.scene.Button
	now := g.tl.Now()
	cx, cy := b.Center()
	scale := b.Scale(now)
	w := float64(b.Width) * scale
	h := float64(b.Height) * scale
	x := cx - w/2
	y := cy - h/2

	// Glow follows the chime while it plays
	if lvl := mathx.Clamp01(g.sound.level() * 4); lvl > 0 {
		pad := 6 + 10*lvl
		glow := color.NRGBA{R: 255, G: 120, B: 170, A: uint8(120 * lvl)}
		vector.DrawFilledRect(screen, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(h+2*pad), glow, true)
	}

	hovered := !g.scene.Modal.IsOpen() && b.Contains(g.lastCursor)
	var bgColor color.Color
	switch {
	case scale < 1:
		bgColor = color.RGBA{R: 200, G: 40, B: 100, A: 255} // Pressed
	case hovered:
		bgColor = color.RGBA{R: 245, G: 80, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 230, G: 60, B: 120, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, true)

	borderColor := color.RGBA{R: 255, G: 190, B: 215, A: 255}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, borderColor, true)

	g.drawCenteredText(screen, b.Label, cx, cy, color.White)
}

func (g *Game) drawModal(screen *ebiten.Image) {
	m := g.scene.Modal
	if !m.IsOpen() {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 150}, false)

	p := m.Panel
	px, py := float32(p.Min.X), float32(p.Min.Y)
	pw, ph := float32(p.Dx()), float32(p.Dy())
	vector.DrawFilledRect(screen, px, py, pw, ph, color.RGBA{R: 255, G: 247, B: 250, A: 255}, true)
	vector.StrokeRect(screen, px, py, pw, ph, 3, color.RGBA{R: 240, G: 120, B: 160, A: 255}, true)

	c := m.CloseBox
	ink := color.RGBA{R: 150, G: 60, B: 90, A: 255}
	inset := float32(8)
	x0, y0 := float32(c.Min.X)+inset, float32(c.Min.Y)+inset
	x1, y1 := float32(c.Max.X)-inset, float32(c.Max.Y)-inset
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, ink, true)
	vector.StrokeLine(screen, x0, y1, x1, y0, 2, ink, true)

	body := m.Text()
	if m.Typing() && int(g.tl.Now().Seconds()*2)%2 == 0 {
		body += "|"
	}
	g.drawParagraph(screen, body, float64(p.Min.X)+28, float64(p.Min.Y)+36, color.RGBA{R: 90, G: 40, B: 60, A: 255})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("FPS %.0f  TPS %.0f  points %d  hearts %d  up %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.field.Len(), g.spawner.Pool().Len(), formatUptime(g.tl.Now()))
	if g.muted {
		status += "  (muted)"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// formatUptime formats d as MM:SS.
func formatUptime(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
