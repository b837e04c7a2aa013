package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Label is a text-bearing leaf element positioned relative to the screen
// center. Labels are allocated once and mutated in place via SetText.
type Label struct {
	screen *Screen
	text   string
	font   tinyfont.Fonter
	color  color.RGBA
	dx     int
	dy     int
}

// NewLabel adds a horizontally centered label to the screen. dx and dy offset
// the text block from the screen center, in pixels.
func (s *Screen) NewLabel(text string, font tinyfont.Fonter, c color.RGBA, dx, dy int) *Label {
	l := &Label{screen: s, text: text, font: font, color: c, dx: dx, dy: dy}
	s.labels = append(s.labels, l)
	s.ctx.invalidate()
	return l
}

// SetText replaces the label text in place. Setting the same text again does
// not trigger a repaint.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.screen.ctx.invalidate()
}

func (l *Label) Text() string { return l.text }
