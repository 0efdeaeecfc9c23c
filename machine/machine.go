// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package machine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"vawter.tech/pace/internal/safe"
)

// Start is the reserved name of the initial state. Every [Config] must
// contain an entry for it.
const Start = "start"

// A Handler implements one named state of a machine. It records the
// action to take after it returns by calling [Control.Next] or
// [Control.Exit]. A Handler value should never be nil.
type Handler func(ctx context.Context, ctl *Control) error

// A Config maps state names to handlers. The table is consulted only
// for the duration of a single [Run] call and is not retained.
type Config map[string]Handler

// A Control records the action requested by a [Handler] invocation.
// It is valid only for the duration of that invocation and must not be
// retained or shared across goroutines.
//
// The first action recorded wins: once Next or Exit has been called,
// later calls during the same invocation are ignored. A handler that
// records no action at all ends the run as if it had called Exit.
type Control struct {
	exited  bool
	hasNext bool
	next    string
}

// Next requests a transition to the named state.
func (c *Control) Next(state string) {
	if c.decided() {
		return
	}
	c.hasNext = true
	c.next = state
}

// Exit requests that the machine stop without processing any further
// states.
func (c *Control) Exit() {
	if c.decided() {
		return
	}
	c.exited = true
}

func (c *Control) decided() bool { return c.exited || c.hasNext }

// Run drives the machine to completion, starting with the handler
// registered under [Start].
//
// Run returns nil once a handler exits the machine, explicitly or
// implicitly. It returns an [UndefinedStateError] if a requested state
// has no handler in the table, including a missing [Start] entry. An
// error returned by a handler, or a panic recovered from one, aborts
// the run wrapped with the state's name. The context is consulted
// between states, so a canceled context also aborts the run.
func Run(ctx context.Context, cfg Config, opts ...Option) error {
	rc := newRunConfig(opts)
	run := uuid.New()
	state := Start
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		handler, ok := cfg[state]
		if !ok {
			return &UndefinedStateError{State: state}
		}
		ctl := &Control{}
		if err := safe.CallE(func() error {
			return handler(ctx, ctl)
		}); err != nil {
			return fmt.Errorf("state %q: %w", state, err)
		}
		if !ctl.hasNext {
			// Exit, explicit or implicit.
			rc.observe(Transition{
				At:   rc.now(),
				From: state,
				Run:  run,
			})
			return nil
		}
		rc.observe(Transition{
			At:   rc.now(),
			From: state,
			Run:  run,
			To:   ctl.next,
		})
		state = ctl.next
	}
}
