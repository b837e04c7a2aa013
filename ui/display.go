package ui

// Region is a rectangular repaint area with inclusive pixel bounds.
type Region struct {
	X1, Y1, X2, Y2 int
}

func (r Region) Width() int  { return r.X2 - r.X1 + 1 }
func (r Region) Height() int { return r.Y2 - r.Y1 + 1 }

// Flusher paints a row-major RGB565 strip covering r onto the output surface
// and must call done after the last pixel. The handshake is synchronous: the
// renderer does not reuse the strip until done has been called.
type Flusher interface {
	Flush(r Region, px []uint16, done func())
}

// StripRows is the height of one flushed band. The renderer holds two
// width x StripRows strips and alternates between them per band, mirroring a
// DMA-friendly double buffer on real hardware.
const StripRows = 10

// Display owns the frame composition buffer and the double strip buffer of
// one output surface.
type Display struct {
	width   int
	height  int
	frame   []uint16 // full-frame RGB565 shadow, row-major
	strips  [2][]uint16
	active  int
	flusher Flusher
}

// NewDisplay creates a display driver of the given logical resolution that
// flushes through f.
func NewDisplay(width, height int, f Flusher) *Display {
	d := &Display{width: width, height: height, flusher: f}
	d.frame = make([]uint16, width*height)
	d.strips[0] = make([]uint16, width*StripRows)
	d.strips[1] = make([]uint16, width*StripRows)
	return d
}
