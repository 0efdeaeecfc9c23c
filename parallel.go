// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"vawter.tech/pace/internal/safe"
)

// Parallel starts every job concurrently, one goroutine per job, and
// returns the results in input order once all jobs have completed.
// That is, the Nth result is the value produced by the Nth job,
// regardless of completion order.
//
// The first failing job decides the returned error, wrapped with the
// job's index. A failure cancels the context passed to the remaining
// jobs so that cooperative jobs can bail out early, but work already
// in flight is not undone and its side effects may have occurred.
//
// Calling Parallel with no jobs returns an empty slice.
func Parallel[T any](ctx context.Context, jobs ...Job[T]) ([]T, error) {
	ret := make([]T, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for idx, job := range jobs {
		g.Go(func() error {
			r, err := safe.CallRE(func() (T, error) {
				return job(ctx)
			})
			if err != nil {
				return fmt.Errorf("job %d: %w", idx, err)
			}
			ret[idx] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
