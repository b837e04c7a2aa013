package watch

import (
	"image/color"

	"tinygo.org/x/tinyfont/freesans"

	"lume/ui"
)

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	grey  = color.RGBA{R: 180, G: 180, B: 180, A: 0xFF}
)

// buildSplash creates the splash screen: centered welcome text on black.
func buildSplash(ctx *ui.Context) *ui.Screen {
	s := ctx.NewScreen(black)
	s.NewLabel("Welcome", &freesans.Regular24pt7b, white, 0, 0)
	return s
}

// clockScreen owns the two live labels of the time display.
type clockScreen struct {
	screen *ui.Screen
	time   *ui.Label
	date   *ui.Label
}

// buildClock creates the clock screen, hidden until the splash timer fires.
func buildClock(ctx *ui.Context) *clockScreen {
	s := ctx.NewScreen(black)
	return &clockScreen{
		screen: s,
		time:   s.NewLabel("00:00:00", &freesans.Regular18pt7b, white, 0, -20),
		date:   s.NewLabel("", &freesans.Regular9pt7b, grey, 0, 30),
	}
}
