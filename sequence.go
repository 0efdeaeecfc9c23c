// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import (
	"context"
	"fmt"

	"vawter.tech/pace/internal/safe"
)

// Sequence executes the jobs strictly in order. Each job is started
// only after the previous one has returned, and the result of the
// final job is returned to the caller.
//
// The first failing job aborts the chain: its error is returned,
// wrapped with the job's index, and later jobs are never started. The
// context is consulted before each job, so a canceled context also
// aborts the chain.
//
// Calling Sequence with no jobs returns the zero value of T.
func Sequence[T any](ctx context.Context, jobs ...Job[T]) (T, error) {
	var last T
	for idx, job := range jobs {
		if err := ctx.Err(); err != nil {
			return *new(T), err
		}
		ret, err := safe.CallRE(func() (T, error) {
			return job(ctx)
		})
		if err != nil {
			return *new(T), fmt.Errorf("job %d: %w", idx, err)
		}
		last = ret
	}
	return last, nil
}
