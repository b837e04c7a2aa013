// Package ui is a minimal retained-mode toolkit for small fixed-function
// displays: flat screens of labels, logical-time timers, and a strip-buffer
// renderer that flushes frames through a display driver with a synchronous
// completion handshake.
//
// Everything runs on one goroutine. The owner calls Tick once per loop
// iteration with the current logical time; the toolkit samples input, fires
// due timers, and repaints if anything changed.
package ui

import "image/color"

// PointerData is the toolkit's view of the pointing device: the latest
// sampled position and button state, nothing else.
type PointerData struct {
	X       int
	Y       int
	Pressed bool
}

// InputDriver samples the pointing device once per tick.
type InputDriver interface {
	Read() PointerData
}

// Context owns the screens, timers, renderer and input driver of one display.
type Context struct {
	disp    *Display
	input   InputDriver
	screens []*Screen
	timers  []*Timer
	pointer PointerData
	now     uint64
	dirty   bool
}

// NewContext creates a toolkit context over the given display driver and
// input driver. Either may be nil (headless composition, no input).
func NewContext(disp *Display, input InputDriver) *Context {
	return &Context{disp: disp, input: input, dirty: true}
}

// NewScreen registers a hidden screen with the given background color.
// Screens stack in creation order; the topmost visible one is drawn.
func (c *Context) NewScreen(bg color.RGBA) *Screen {
	s := &Screen{ctx: c, bg: bg}
	c.screens = append(c.screens, s)
	return s
}

// Tick advances the toolkit to the given logical time: sample input, fire due
// timers, then repaint if any element changed since the last frame.
func (c *Context) Tick(nowMS uint64) error {
	c.now = nowMS

	if c.input != nil {
		c.pointer = c.input.Read()
	}

	for _, t := range c.timers {
		t.fire(nowMS)
	}

	if c.dirty && c.disp != nil {
		c.dirty = false
		return c.disp.render(c.topVisible())
	}
	return nil
}

// Pointer returns the most recent pointer sample.
func (c *Context) Pointer() PointerData { return c.pointer }

func (c *Context) invalidate() { c.dirty = true }

func (c *Context) topVisible() *Screen {
	for i := len(c.screens) - 1; i >= 0; i-- {
		if c.screens[i].visible {
			return c.screens[i]
		}
	}
	return nil
}
