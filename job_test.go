// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/pace"
)

// TestFn verifies that each adaptable signature is converted to an
// equivalent Job.
func TestFn(t *testing.T) {
	r := require.New(t)
	ctx := t.Context()
	boom := errors.New("boom")

	ran := 0
	_, err := pace.Fn(func() { ran++ })(ctx)
	r.NoError(err)

	_, err = pace.Fn(func() error { return boom })(ctx)
	r.ErrorIs(err, boom)

	_, err = pace.Fn(func(context.Context) { ran++ })(ctx)
	r.NoError(err)

	_, err = pace.Fn(func(context.Context) error { return boom })(ctx)
	r.ErrorIs(err, boom)

	r.Equal(2, ran)
}

// TestFnInSequence verifies that adapted jobs compose with Sequence.
func TestFnInSequence(t *testing.T) {
	r := require.New(t)

	var order []int
	_, err := pace.Sequence(t.Context(),
		pace.Fn(func() { order = append(order, 0) }),
		pace.Fn(func(context.Context) { order = append(order, 1) }),
	)
	r.NoError(err)
	r.Equal([]int{0, 1}, order)
}
