// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package machine

import "fmt"

// UndefinedStateError indicates a transition to a state that has no
// handler registered in the [Config].
type UndefinedStateError struct {
	State string
}

// Error implements error.
func (e *UndefinedStateError) Error() string {
	return fmt.Sprintf("state not defined: %q", e.State)
}
