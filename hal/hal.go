package hal

// Panel geometry of the emulated 1.47" display (portrait).
const (
	PanelWidth  = 172
	PanelHeight = 320
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Surface is the concrete pixel sink the display adapter paints. Writes are
// retained until overwritten; on the host a window blits a snapshot of the
// surface every frame.
type Surface interface {
	Width() int
	Height() int
	SetRGB(x, y int, r, g, b uint8)
	Clear()
}

// PointerSample is the latest pointer state in logical display coordinates.
type PointerSample struct {
	X       int
	Y       int
	Pressed bool
}

// Pointer samples the pointing device. Latest state only; no queuing and no
// debouncing, so presses shorter than one poll interval may be missed.
type Pointer interface {
	Sample() PointerSample
}

// Time reports logical milliseconds since start.
//
// The host implementation tracks the wall clock; tests substitute a counter.
type Time interface {
	NowMillis() uint64
}

// HAL provides the only contact point between the watch face and the outside
// world.
type HAL interface {
	Logger() Logger
	Surface() Surface
	Pointer() Pointer
	Time() Time
}

// Step advances the application by one tick at the given logical time.
type Step func(nowMS uint64) error
