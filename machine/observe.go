// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package machine

import (
	"time"

	"github.com/google/uuid"
)

// A Transition describes one step taken by [Run]. The final event of a
// run reports the exit: its To field is empty.
type Transition struct {
	At   time.Time // When the step was taken.
	From string    // The state whose handler just returned.
	Run  uuid.UUID // Identifies the Run call across events.
	To   string    // The requested state, or empty on exit.
}

// An Observer receives [Transition] events from [Run]. Observers are
// invoked synchronously from the driver loop, between handler
// invocations.
type Observer func(Transition)

// An Option adjusts the behavior of [Run].
type Option func(*runConfig)

// WithObserver installs a hook that receives a [Transition] event for
// every step of the run, including the final exit. Multiple observers
// may be installed.
func WithObserver(fn Observer) Option {
	return func(c *runConfig) { c.observers = append(c.observers, fn) }
}

// WithNow substitutes the timestamp source used for [Transition.At].
// The default is [time.Now].
func WithNow(fn func() time.Time) Option {
	return func(c *runConfig) { c.now = fn }
}

type runConfig struct {
	now       func() time.Time
	observers []Observer
}

func newRunConfig(opts []Option) *runConfig {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	return cfg
}

func (c *runConfig) observe(t Transition) {
	for _, fn := range c.observers {
		fn(t)
	}
}
