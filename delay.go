// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import (
	"context"
	"time"
)

// Delay resolves once the duration has elapsed, polling the tick
// source once per tick rather than sleeping for the whole duration. A
// flag installed with [WithCancel] short-circuits the wait as a
// normal, non-error completion.
//
// A zero or negative duration still waits for exactly one tick; Delay
// never returns synchronously. The only error path is cancellation of
// ctx itself.
func Delay(ctx context.Context, d time.Duration, opts ...Option) error {
	return Tween(ctx, d, nil, opts...)
}
