//go:build !tinygo

package hal

import "time"

type hostTime struct {
	ms   uint64
	last time.Time
	acc  time.Duration
}

func (t *hostTime) NowMillis() uint64 { return t.ms }

// step advances logical time by the wall-clock delta since the last call,
// carrying the sub-millisecond remainder forward.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ms := uint64(t.acc / time.Millisecond)
	if ms == 0 {
		return
	}
	t.acc = t.acc % time.Millisecond
	t.ms += ms
}

// advance is the headless stepper: fixed logical increments, no wall clock.
func (t *hostTime) advance(ms uint64) { t.ms += ms }
