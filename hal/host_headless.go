//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled  bool
	Interval time.Duration
	Ticks    uint64 // stop after N ticks, 0 = run forever
}

// RunHeadless calls tick once per interval without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, tick func() error) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("invalid headless interval: %v", cfg.Interval)
	}
	t := time.NewTicker(cfg.Interval)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := tick(); err != nil {
				return err
			}
			n++
			if cfg.Ticks > 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}
