package watch

import (
	"lume/hal"
	"lume/ui"
)

// surfaceFlusher is the display adapter: it expands each packed 5-6-5 pixel
// to 8-bit channels by left shift and paints it onto the HAL surface in
// row-major order, then signals completion so the toolkit can reuse the
// strip buffer.
type surfaceFlusher struct {
	sfc hal.Surface
}

func (f *surfaceFlusher) Flush(r ui.Region, px []uint16, done func()) {
	w := r.Width()
	for y := r.Y1; y <= r.Y2; y++ {
		row := (y - r.Y1) * w
		for x := r.X1; x <= r.X2; x++ {
			cr, cg, cb := hal.RGB888(px[row+x-r.X1])
			f.sfc.SetRGB(x, y, cr, cg, cb)
		}
	}
	done()
}

// pointerDriver adapts the HAL pointer to the toolkit's input contract.
type pointerDriver struct {
	ptr hal.Pointer
}

func (p pointerDriver) Read() ui.PointerData {
	if p.ptr == nil {
		return ui.PointerData{}
	}
	s := p.ptr.Sample()
	return ui.PointerData{X: s.X, Y: s.Y, Pressed: s.Pressed}
}
