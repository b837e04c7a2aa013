//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the watch face without opening a window. Logical time
// advances by a fixed step per tick, so runs are reproducible regardless of
// scheduling jitter.
func RunHeadless(ctx context.Context, newApp func(HAL) (Step, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	stepMS := uint64(d / time.Millisecond)
	if stepMS == 0 {
		stepMS = 1
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance(stepMS)
			if step != nil {
				if err := step(h.t.NowMillis()); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
