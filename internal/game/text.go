package game

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// debugCharWidth and debugLineHeight approximate the ebitenutil debug font.
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

func newFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func (g *Game) drawCenteredText(dst *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	if g.face == nil {
		x := int(cx) - len(s)*debugCharWidth/2
		y := int(cy) - debugLineHeight/2
		ebitenutil.DebugPrintAt(dst, s, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, g.face, op)
}

// drawParagraph draws multi-line text with its top-left corner at (x, y).
func (g *Game) drawParagraph(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	if g.face == nil {
		for i, line := range strings.Split(s, "\n") {
			ebitenutil.DebugPrintAt(dst, line, int(x), int(y)+i*debugLineHeight)
		}
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = g.face.Size * 1.5
	text.Draw(dst, s, g.face, op)
}
