//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	sfc    *hostSurface
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL that emulates the watch panel on the desktop.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		sfc:    newHostSurface(PanelWidth, PanelHeight),
		ptr:    &hostPointer{},
		t:      &hostTime{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Surface() Surface { return h.sfc }
func (h *hostHAL) Pointer() Pointer { return h.ptr }
func (h *hostHAL) Time() Time       { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
