package ui

import "image/color"

// Screen is a flat set of labels over a solid background. Screens are created
// once at startup and toggled via Show/Hide; they are never torn down.
type Screen struct {
	ctx     *Context
	bg      color.RGBA
	labels  []*Label
	visible bool
}

// Show makes the screen visible and requests a repaint.
func (s *Screen) Show() {
	if s.visible {
		return
	}
	s.visible = true
	s.ctx.invalidate()
}

// Hide removes the screen from display. Its labels keep their state and may
// still be mutated while hidden.
func (s *Screen) Hide() {
	if !s.visible {
		return
	}
	s.visible = false
	s.ctx.invalidate()
}

func (s *Screen) Visible() bool { return s.visible }
