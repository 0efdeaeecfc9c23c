// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import (
	"context"
	"time"
)

// Tween polls elapsed wall-clock time once per tick until the duration
// has passed, invoking onUpdate with the normalized progress on every
// tick. Progress values are non-decreasing, clamped to [0, 1], and the
// final call reports exactly 1.
//
// If a flag installed with [WithCancel] is observed set at a tick,
// onUpdate is invoked one last time with cancelled set to true and the
// progress reached at that moment, and Tween returns nil without
// further polling. The reported value is the actual progress at
// cancellation, never forced to 0 or 1.
//
// A zero or negative duration still waits for one tick before the
// single onUpdate(1, ...) call; Tween never completes synchronously.
// The only error path is cancellation of ctx itself, which interrupts
// the tick wait.
//
// onUpdate may be nil, in which case Tween degenerates to [Delay].
func Tween(
	ctx context.Context,
	d time.Duration,
	onUpdate func(progress float64, cancelled bool),
	opts ...Option,
) error {
	cfg := newConfig(opts)
	start := cfg.now()
	for {
		if err := cfg.ticker.Wait(ctx); err != nil {
			return err
		}
		p := progressAt(cfg.now().Sub(start), d)
		if cfg.cancelled() {
			if onUpdate != nil {
				onUpdate(p, true)
			}
			return nil
		}
		if onUpdate != nil {
			onUpdate(p, false)
		}
		if p >= 1 {
			return nil
		}
	}
}

// progressAt reports elapsed time as a fraction of the duration,
// clamped to [0, 1]. Non-positive durations are complete on the first
// tick.
func progressAt(elapsed, d time.Duration) float64 {
	switch {
	case d <= 0 || elapsed >= d:
		return 1
	case elapsed <= 0:
		return 0
	}
	return float64(elapsed) / float64(d)
}
