package ui

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var errFlushNotAcked = errors.New("ui: flusher did not signal completion")

// render composes the screen into the shadow frame and flushes it to the
// output surface in StripRows-high bands, top to bottom. Each band goes
// through the alternate strip buffer and must be acknowledged before the
// next one is prepared.
func (d *Display) render(s *Screen) error {
	d.compose(s)

	for y0 := 0; y0 < d.height; y0 += StripRows {
		y1 := y0 + StripRows - 1
		if y1 >= d.height {
			y1 = d.height - 1
		}

		strip := d.strips[d.active]
		d.active = 1 - d.active
		n := copy(strip, d.frame[y0*d.width:(y1+1)*d.width])

		acked := false
		r := Region{X1: 0, Y1: y0, X2: d.width - 1, Y2: y1}
		d.flusher.Flush(r, strip[:n], func() { acked = true })
		if !acked {
			return errFlushNotAcked
		}
	}
	return nil
}

// compose paints the screen background and labels into the shadow frame.
// A nil screen composes to black.
func (d *Display) compose(s *Screen) {
	bg := uint16(0)
	if s != nil {
		bg = rgb565From888(s.bg.R, s.bg.G, s.bg.B)
	}
	for i := range d.frame {
		d.frame[i] = bg
	}
	if s == nil {
		return
	}

	var dst drivers.Displayer = frameTarget{d: d}
	for _, l := range s.labels {
		d.drawLabel(dst, l)
	}
}

func (d *Display) drawLabel(dst drivers.Displayer, l *Label) {
	if l.text == "" || l.font == nil {
		return
	}

	_, outboxW := tinyfont.LineWidth(l.font, l.text)
	x := (d.width-int(outboxW))/2 + l.dx

	// GFX fonts draw from the baseline; the ascent is roughly 70% of the
	// line advance, so centering puts the baseline just below the middle.
	adv := int(l.font.GetYAdvance())
	y := d.height/2 + l.dy + (adv*7)/20

	tinyfont.WriteLine(dst, l.font, int16(x), int16(y), l.text, l.color)
}

// frameTarget adapts the shadow frame to the drivers.Displayer contract so
// tinyfont can draw into it.
type frameTarget struct {
	d *Display
}

func (t frameTarget) Size() (x, y int16) {
	return int16(t.d.width), int16(t.d.height)
}

func (t frameTarget) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= t.d.width || iy < 0 || iy >= t.d.height {
		return
	}
	t.d.frame[iy*t.d.width+ix] = rgb565From888(c.R, c.G, c.B)
}

func (t frameTarget) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
