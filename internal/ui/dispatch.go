package ui

import "image"

// Target names what a click landed on.
type Target int

const (
	Anywhere Target = iota
	CloseBox
	Backdrop
	MascotHit
	ButtonHit
)

func (t Target) String() string {
	switch t {
	case CloseBox:
		return "close"
	case Backdrop:
		return "backdrop"
	case MascotHit:
		return "mascot"
	case ButtonHit:
		return "button"
	default:
		return "anywhere"
	}
}

// Handlers are the reactions to a routed click. Nil handlers are skipped.
type Handlers struct {
	Close    func()
	Mascot   func(x, y float64)
	Button   func()
	Anywhere func(x, y float64)
}

// Scene groups the widgets a click is routed through.
type Scene struct {
	Button *Button
	Modal  *Modal
	Mascot *Mascot
}

// Hit returns the topmost widget under p. The open modal sits above the
// button and mascot.
func (s *Scene) Hit(p image.Point) Target {
	if s.Modal != nil && s.Modal.IsOpen() {
		if s.Modal.OnClose(p) {
			return CloseBox
		}
		if s.Modal.OnBackdrop(p) {
			return Backdrop
		}
		return Anywhere
	}
	if s.Mascot != nil && s.Mascot.Contains(p) {
		return MascotHit
	}
	if s.Button != nil && s.Button.Contains(p) {
		return ButtonHit
	}
	return Anywhere
}

// Dispatch routes one click at p. Clicks on the modal also reach the
// click-anywhere handler; clicks on the button or mascot do not.
func (s *Scene) Dispatch(p image.Point, h Handlers) Target {
	x, y := float64(p.X), float64(p.Y)
	target := s.Hit(p)
	switch target {
	case CloseBox, Backdrop:
		call(h.Close)
		callAt(h.Anywhere, x, y)
	case MascotHit:
		if h.Mascot != nil {
			mx, my := s.Mascot.SpawnPoint()
			h.Mascot(mx, my)
		}
	case ButtonHit:
		call(h.Button)
	default:
		callAt(h.Anywhere, x, y)
	}
	return target
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func callAt(fn func(x, y float64), x, y float64) {
	if fn != nil {
		fn(x, y)
	}
}
