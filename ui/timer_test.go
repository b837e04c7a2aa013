package ui

import "testing"

func TestOneShotFiresExactlyOnce(t *testing.T) {
	c := NewContext(nil, nil)
	fired := 0
	c.After(4000, func() { fired++ })

	for now := uint64(0); now <= 20000; now += 100 {
		if err := c.Tick(now); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if fired != 1 {
		t.Fatalf("one-shot fired %d times, want 1", fired)
	}
}

func TestOneShotFiresAtDueTime(t *testing.T) {
	c := NewContext(nil, nil)
	fired := false
	c.After(4000, func() { fired = true })

	c.Tick(3999)
	if fired {
		t.Fatal("fired before 4000ms")
	}
	c.Tick(4000)
	if !fired {
		t.Fatal("did not fire at 4000ms")
	}
}

func TestPeriodicFiresEachBoundary(t *testing.T) {
	c := NewContext(nil, nil)
	var fires []uint64
	var now uint64
	c.Every(1000, func() { fires = append(fires, now) })

	for now = 0; now <= 5000; now += 50 {
		c.Tick(now)
	}

	want := []uint64{1000, 2000, 3000, 4000, 5000}
	if len(fires) != len(want) {
		t.Fatalf("fired %d times, want %d (%v)", len(fires), len(want), fires)
	}
	for i, at := range fires {
		if at != want[i] {
			t.Fatalf("fire %d at %dms, want %dms", i, at, want[i])
		}
	}
}

func TestPeriodicStaysAlignedAfterLateTick(t *testing.T) {
	c := NewContext(nil, nil)
	var fires []uint64
	var now uint64
	c.Every(1000, func() { fires = append(fires, now) })

	// The 1000ms check arrives 300ms late; the next one is back on the grid.
	for _, now = range []uint64{500, 1300, 1500, 2000, 2500} {
		c.Tick(now)
	}

	want := []uint64{1300, 2000}
	if len(fires) != len(want) {
		t.Fatalf("fired at %v, want %v", fires, want)
	}
	for i := range want {
		if fires[i] != want[i] {
			t.Fatalf("fired at %v, want %v", fires, want)
		}
	}
}

func TestPeriodicDoesNotBurstAfterStall(t *testing.T) {
	c := NewContext(nil, nil)
	fired := 0
	c.Every(1000, func() { fired++ })

	// Jump straight past several periods: fire once, then resync.
	c.Tick(3500)
	if fired != 1 {
		t.Fatalf("fired %d times after stall, want 1", fired)
	}
	c.Tick(3600)
	if fired != 1 {
		t.Fatalf("burst: fired %d times, want 1", fired)
	}
	c.Tick(4500)
	if fired != 2 {
		t.Fatalf("fired %d times, want 2", fired)
	}
}

func TestTimerStop(t *testing.T) {
	c := NewContext(nil, nil)
	fired := 0
	tm := c.Every(1000, func() { fired++ })

	c.Tick(1000)
	tm.Stop()
	c.Tick(2000)
	c.Tick(3000)
	if fired != 1 {
		t.Fatalf("stopped timer fired %d times, want 1", fired)
	}
}
