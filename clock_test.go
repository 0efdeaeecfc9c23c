// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace_test

import (
	"context"
	"time"
)

// stepClock is a deterministic tick source and clock for testing the
// timed helpers: every Wait advances the clock by one fixed step.
type stepClock struct {
	now   time.Time
	step  time.Duration
	ticks int
}

// Wait implements pace.Ticker.
func (c *stepClock) Wait(context.Context) error {
	c.ticks++
	c.now = c.now.Add(c.step)
	return nil
}

// Now is the clock to install via pace.WithNow.
func (c *stepClock) Now() time.Time { return c.now }
