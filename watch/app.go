package watch

import (
	"fmt"
	"time"

	"lume/hal"
	"lume/ui"
)

const (
	splashMS      = 4000
	clockPeriodMS = 1000
)

// App owns the toolkit context, both screens, and the two timers that drive
// the splash transition and the clock refresh.
type App struct {
	log    hal.Logger
	ctx    *ui.Context
	splash *ui.Screen
	clock  *clockScreen

	splashTimer *ui.Timer
	clockTimer  *ui.Timer

	now func() time.Time
}

// New builds the watch face on the given HAL using the wall clock.
func New(h hal.HAL) (*App, error) {
	return newApp(h, time.Now)
}

func newApp(h hal.HAL, now func() time.Time) (*App, error) {
	sfc := h.Surface()
	if sfc == nil {
		return nil, fmt.Errorf("watch: HAL provides no display surface")
	}

	disp := ui.NewDisplay(sfc.Width(), sfc.Height(), &surfaceFlusher{sfc: sfc})
	ctx := ui.NewContext(disp, pointerDriver{ptr: h.Pointer()})

	a := &App{log: h.Logger(), ctx: ctx, now: now}
	a.splash = buildSplash(ctx)
	a.clock = buildClock(ctx)

	a.splash.Show()
	a.refreshClock()

	a.splashTimer = ctx.After(splashMS, a.showClock)
	// The clock refresh runs from construction on, updating the hidden
	// labels during the splash period too.
	a.clockTimer = ctx.Every(clockPeriodMS, a.refreshClock)

	a.logf("starting watch face")
	a.logf("target display: 1.47\" (%dx%d)", sfc.Width(), sfc.Height())
	a.logf("splash screen displayed, switching to time in %ds", splashMS/1000)
	return a, nil
}

// Step advances the watch face to the given logical time. It is the HAL
// runner's per-tick entrypoint.
func (a *App) Step(nowMS uint64) error {
	return a.ctx.Tick(nowMS)
}

// Close logs the shutdown line. The screens and timers need no teardown;
// they live for the whole process.
func (a *App) Close() {
	a.logf("watch face closed")
}

func (a *App) showClock() {
	a.splash.Hide()
	a.clock.screen.Show()
	a.logf("switched to time display")
}

func (a *App) refreshClock() {
	timeStr, dateStr := FormatClock(a.now())
	a.clock.time.SetText(timeStr)
	a.clock.date.SetText(dateStr)
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
