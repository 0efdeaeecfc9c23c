// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package machine provides a minimal named-state execution driver.
//
// A machine is described by a [Config]: a table mapping state names to
// [Handler] functions. [Run] invokes the handler registered under
// [Start] and then follows the actions the handlers record on their
// [Control] argument. Calling [Control.Next] selects the next handler
// to run; calling [Control.Exit] ends the run.
//
//	err := machine.Run(ctx, machine.Config{
//	    machine.Start: func(ctx context.Context, ctl *machine.Control) error {
//	        ctl.Next("loading")
//	        return nil
//	    },
//	    "loading": func(ctx context.Context, ctl *machine.Control) error {
//	        ctl.Exit()
//	        return nil
//	    },
//	})
//
// At most one handler is active at a time. A handler may do arbitrary
// asynchronous work before returning; the driver waits for the handler
// to return before acting on the recorded request.
//
// A transition to a name with no registered handler fails the run with
// an [UndefinedStateError] identifying the missing state.
//
// Transition and exit events can be observed by installing an
// [Observer] with [WithObserver]; each run is tagged with a fresh UUID
// so events from concurrent runs can be told apart.
package machine
