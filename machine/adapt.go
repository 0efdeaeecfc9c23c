// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package machine

import "context"

// Adaptable is the set of function signatures accepted by [Fn].
type Adaptable interface {
	func(*Control) | func(*Control) error |
		func(context.Context, *Control) | Handler
}

// Fn adapts various function signatures to a [Handler].
func Fn[A Adaptable](fn A) Handler {
	a := any(fn)
	switch t := a.(type) {
	case func(*Control):
		return func(_ context.Context, ctl *Control) error {
			t(ctl)
			return nil
		}
	case func(*Control) error:
		return func(_ context.Context, ctl *Control) error {
			return t(ctl)
		}
	case func(context.Context, *Control):
		return func(ctx context.Context, ctl *Control) error {
			t(ctx, ctl)
			return nil
		}
	}
	return a.(Handler)
}
