package particles

import "image/color"

// Surface is the 2D drawing handle a Field renders into. Colors are
// non-premultiplied.
type Surface interface {
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
}

// Tally is a Surface that only counts draw calls. Headless runs use it to
// report how much work a frame would have done.
type Tally struct {
	Clears  int
	Lines   int
	Circles int
}

func (t *Tally) Clear() {
	t.Clears++
}

func (t *Tally) StrokeLine(_, _, _, _, _ float64, _ color.NRGBA) {
	t.Lines++
}

func (t *Tally) FillCircle(_, _, _ float64, _ color.NRGBA) {
	t.Circles++
}

// Reset zeroes all counters.
func (t *Tally) Reset() {
	*t = Tally{}
}
