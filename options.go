// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import "time"

// An Option adjusts the behavior of [Delay] and [Tween].
type Option func(*config)

// WithCancel installs a poll-able cancellation flag. The function is
// consulted once per tick; once it reports true, the timed helper
// completes normally without further polling. The flag is owned by the
// caller and is never written by this package.
func WithCancel(fn func() bool) Option {
	return func(c *config) { c.cancelled = fn }
}

// WithNow substitutes the wall-clock source used to measure elapsed
// time. The default is [time.Now].
func WithNow(fn func() time.Time) Option {
	return func(c *config) { c.now = fn }
}

// WithTicker substitutes the tick source that paces the polling loop.
// The default is [FrameTicker].
func WithTicker(t Ticker) Option {
	return func(c *config) { c.ticker = t }
}

type config struct {
	cancelled func() bool
	now       func() time.Time
	ticker    Ticker
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.sanitize()
	return cfg
}

// sanitize initializes unset fields to their defaults.
func (c *config) sanitize() {
	if c.cancelled == nil {
		c.cancelled = func() bool { return false }
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.ticker == nil {
		c.ticker = FrameTicker()
	}
}
