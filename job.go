// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import "context"

// A Job is a deferred unit of work. It is started by [Sequence] or
// [Parallel] and produces a single result. A Job value should never be
// nil.
type Job[T any] func(ctx context.Context) (T, error)

// None is the result type of jobs that produce no value.
type None = struct{}

// Adaptable is the set of function signatures accepted by [Fn].
type Adaptable interface {
	func() | func() error |
		func(context.Context) | func(context.Context) error
}

// Fn adapts various function signatures to a [Job].
func Fn[A Adaptable](fn A) Job[None] {
	// This would be more optimal if:
	// https://github.com/golang/go/issues/59591
	a := any(fn)
	switch t := a.(type) {
	case func():
		return func(context.Context) (None, error) {
			t()
			return None{}, nil
		}
	case func() error:
		return func(context.Context) (None, error) {
			return None{}, t()
		}
	case func(context.Context):
		return func(ctx context.Context) (None, error) {
			t(ctx)
			return None{}, nil
		}
	}
	t := a.(func(context.Context) error)
	return func(ctx context.Context) (None, error) {
		return None{}, t(ctx)
	}
}
