// Package ui holds the state and hit-testing of the interactive widgets.
// Drawing is left to the game package.
package ui

import (
	"image"
	"time"

	"github.com/iburimskiy/heartfield/internal/typewriter"
)

// Button is the central call-to-action.
type Button struct {
	Label   string
	Width   int
	Height  int
	Press   time.Duration
	Rect    image.Rectangle
	pressed time.Duration
	hasHit  bool
}

// Layout centers the button in a w×h viewport.
func (b *Button) Layout(w, h int) {
	x := (w - b.Width) / 2
	y := (h - b.Height) / 2
	b.Rect = image.Rect(x, y, x+b.Width, y+b.Height)
}

// Contains reports whether p is on the button.
func (b *Button) Contains(p image.Point) bool { return p.In(b.Rect) }

// Click records a press at now.
func (b *Button) Click(now time.Duration) {
	b.pressed = now
	b.hasHit = true
}

// Scale returns the draw scale at now: shrunk while the press lasts.
func (b *Button) Scale(now time.Duration) float64 {
	if b.hasHit && now >= b.pressed && now < b.pressed+b.Press {
		return 0.95
	}
	return 1
}

// Center returns the button center.
func (b *Button) Center() (x, y float64) {
	return float64(b.Rect.Min.X+b.Rect.Max.X) / 2, float64(b.Rect.Min.Y+b.Rect.Max.Y) / 2
}

// Modal is the love letter dialog.
type Modal struct {
	Enabled bool
	Width   int
	Height  int
	Message string

	Panel    image.Rectangle
	CloseBox image.Rectangle

	viewport image.Rectangle
	open     bool
	writer   *typewriter.Typewriter
}

const closeBoxSize = 28

// NewModal returns a closed modal that reveals msg with w.
func NewModal(enabled bool, width, height int, msg string, w *typewriter.Typewriter) *Modal {
	return &Modal{Enabled: enabled, Width: width, Height: height, Message: msg, writer: w}
}

// Layout centers the panel in a w×h viewport, shrinking it to fit.
func (m *Modal) Layout(w, h int) {
	m.viewport = image.Rect(0, 0, w, h)
	pw := min(m.Width, w-40)
	ph := min(m.Height, h-40)
	pw, ph = max(pw, 0), max(ph, 0)
	x := (w - pw) / 2
	y := (h - ph) / 2
	m.Panel = image.Rect(x, y, x+pw, y+ph)
	m.CloseBox = image.Rect(m.Panel.Max.X-closeBoxSize-8, m.Panel.Min.Y+8, m.Panel.Max.X-8, m.Panel.Min.Y+8+closeBoxSize)
}

// Open shows the modal and restarts the message. A disabled modal ignores it.
func (m *Modal) Open() {
	if !m.Enabled {
		return
	}
	m.open = true
	if m.writer != nil {
		m.writer.Start(m.Message)
	}
}

// Close hides the modal and stops typing.
func (m *Modal) Close() {
	if !m.Enabled {
		return
	}
	m.open = false
	if m.writer != nil {
		m.writer.Stop()
	}
}

// IsOpen reports whether the modal is showing.
func (m *Modal) IsOpen() bool { return m.Enabled && m.open }

// Text returns the revealed part of the message.
func (m *Modal) Text() string {
	if m.writer == nil {
		return ""
	}
	return m.writer.Text()
}

// Typing reports whether the message is still being revealed.
func (m *Modal) Typing() bool { return m.writer != nil && m.writer.Typing() }

// OnBackdrop reports whether p hits the dimmed area outside the panel.
func (m *Modal) OnBackdrop(p image.Point) bool {
	return m.IsOpen() && p.In(m.viewport) && !p.In(m.Panel)
}

// OnClose reports whether p hits the close box.
func (m *Modal) OnClose(p image.Point) bool {
	return m.IsOpen() && p.In(m.CloseBox)
}

// Mascot is the optional clickable character.
type Mascot struct {
	Enabled bool
	X, Y    int // negative values are offsets from the right/bottom edge
	Width   int
	Height  int
	Rect    image.Rectangle
}

// Layout resolves the mascot position in a w×h viewport.
func (m *Mascot) Layout(w, h int) {
	x, y := m.X, m.Y
	if x < 0 {
		x = w + x
	}
	if y < 0 {
		y = h + y
	}
	m.Rect = image.Rect(x, y, x+m.Width, y+m.Height)
}

// Contains reports whether p is on an enabled mascot.
func (m *Mascot) Contains(p image.Point) bool {
	return m.Enabled && p.In(m.Rect)
}

// SpawnPoint is where the mascot's hearts come from: horizontally centered,
// a third of the way down.
func (m *Mascot) SpawnPoint() (x, y float64) {
	return float64(m.Rect.Min.X) + float64(m.Rect.Dx())/2, float64(m.Rect.Min.Y) + float64(m.Rect.Dy())/3
}
