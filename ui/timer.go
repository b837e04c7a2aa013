package ui

// Timer is a logical-time timer record checked cooperatively on each tick.
// There is no hidden control flow: a timer fires only from within Tick, on
// the caller's goroutine.
type Timer struct {
	next      uint64
	period    uint64
	remaining int // <0 repeats forever
	fn        func()
	stopped   bool
}

// After schedules fn to run once, ms milliseconds of logical time from now.
// The timer self-disables after firing.
func (c *Context) After(ms uint64, fn func()) *Timer {
	t := &Timer{next: c.now + ms, period: ms, remaining: 1, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Every schedules fn to run every ms milliseconds until stopped.
func (c *Context) Every(ms uint64, fn func()) *Timer {
	t := &Timer{next: c.now + ms, period: ms, remaining: -1, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Stop disables the timer. Stopping a timer that already fired is a no-op.
func (t *Timer) Stop() { t.stopped = true }

func (t *Timer) fire(nowMS uint64) {
	if t.stopped || nowMS < t.next {
		return
	}

	// Reschedule from the due time so periods stay aligned when a tick
	// arrives late. If the loop stalled past a whole period, resync from
	// now instead of firing in a burst.
	t.next += t.period
	if t.next <= nowMS {
		t.next = nowMS + t.period
	}

	if t.remaining > 0 {
		t.remaining--
		if t.remaining == 0 {
			t.stopped = true
		}
	}
	t.fn()
}
