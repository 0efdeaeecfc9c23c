// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package safe contains utilities for executing user-provided jobs and
// state handlers.
package safe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A RecoveredError associates a panic recovered from user code with
// the stack trace at the point of recovery.
type RecoveredError struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *RecoveredError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			_, _ = fmt.Fprintf(&sb, "\n\t%s ( %s:%d )", frame.Function, frame.File, frame.Line)
		}
		if !more {
			return sb.String()
		}
	}
}

// Unwrap returns the enclosed error.
func (e *RecoveredError) Unwrap() error { return e.Err }

// CallE executes the function. If the function panics, the recovered
// value will be added to the returned error.
func CallE(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r, err)
		}
	}()
	return fn()
}

// CallRE executes the function, returning some result value. If the
// function panics, the recovered value will be added to the returned
// error.
func CallRE[R any](fn func() (R, error)) (ret R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r, err)
		}
	}()
	return fn()
}

// recovered converts a panic value into a *RecoveredError, joining it
// with any error the caller had already set.
func recovered(r any, prev error) error {
	rErr, ok := r.(error)
	if !ok {
		rErr = fmt.Errorf("panic: %v", r)
	}
	stack := make([]uintptr, captureDepth)
	stack = stack[:runtime.Callers(3, stack)]
	return &RecoveredError{
		Err:   errors.Join(prev, rErr),
		Stack: stack,
	}
}
