// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pace provides small asynchronous control-flow helpers:
// ordered and concurrent execution of job lists, cooperative delays,
// and time-based interpolation.
//
// # Jobs
//
// A [Job] is a deferred unit of work that receives a [context.Context]
// and produces a result. The generic [Fn] function adapts simpler
// signatures — from a bare func() to func(context.Context) error — to
// a [Job] producing [None].
//
// # Sequence and Parallel
//
// [Sequence] runs jobs strictly one after another and returns the last
// result. [Parallel] starts every job concurrently and returns all
// results in input order. In both cases the first failing job decides
// the returned error, and panics in user code are converted to error
// values rather than taking down the process.
//
//	last, err := pace.Sequence(ctx, loadA, loadB, loadC)
//	all, err := pace.Parallel(ctx, fetch1, fetch2, fetch3)
//
// # Delay and Tween
//
// [Delay] resolves after a wall-clock duration has elapsed. [Tween]
// does the same while reporting normalized progress in [0, 1] to a
// callback. Both poll an injectable [Ticker] rather than sleeping for
// the whole duration, so they can observe cancellation between ticks.
// The default cadence is a best-effort 60 ticks per second, in the
// spirit of a per-frame animation callback.
//
//	_ = pace.Tween(ctx, time.Second, func(p float64, cancelled bool) {
//	    widget.SetOpacity(p)
//	})
//
// # Cancellation
//
// Two mechanisms apply to the timed helpers. A hard cancellation of
// the supplied [context.Context] interrupts the tick wait and is
// returned as an error. A cooperative flag installed with [WithCancel]
// is polled once per tick; observing it ends the wait as a normal,
// non-error completion, which [Tween] reports to its callback with the
// cancelled flag set.
//
// Deterministic tests can substitute both the tick source and the
// clock via [WithTicker] and [WithNow].
//
// The [vawter.tech/pace/machine] package contains a related helper: a
// minimal named-state execution driver.
package pace
