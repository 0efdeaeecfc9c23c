// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import (
	"context"

	"golang.org/x/time/rate"
)

// Ticks per second produced by [FrameTicker].
const frameRate = 60

// A Ticker paces the polling loop used by [Delay] and [Tween]. The
// Wait method blocks until the next tick, returning an error only if
// the context is canceled first.
//
// Substituting a Ticker (and a clock, via [WithNow]) makes the timed
// helpers fully deterministic under test.
type Ticker interface {
	Wait(ctx context.Context) error
}

// TickerFunc adapts a function to the [Ticker] interface.
type TickerFunc func(ctx context.Context) error

// Wait implements [Ticker].
func (f TickerFunc) Wait(ctx context.Context) error { return f(ctx) }

// FrameTicker returns the default [Ticker]: a best-effort cadence of
// 60 ticks per second enforced by a [rate.Limiter]. The first Wait
// paces a full frame rather than returning immediately.
func FrameTicker() Ticker {
	l := rate.NewLimiter(frameRate, 1)
	// Drain the token the limiter starts with.
	_ = l.Allow()
	return TickerFunc(l.Wait)
}
