// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"vawter.tech/pace"
)

func ExampleSequence() {
	greet := func(name string) pace.Job[string] {
		return func(context.Context) (string, error) {
			return "hello, " + name, nil
		}
	}

	last, _ := pace.Sequence(context.Background(),
		greet("sequence"), greet("world"))
	fmt.Println(last)
	// Output:
	// hello, world
}

func ExampleParallel() {
	double := func(n int) pace.Job[int] {
		return func(context.Context) (int, error) {
			return 2 * n, nil
		}
	}

	// Results arrive in input order regardless of completion order.
	ret, _ := pace.Parallel(context.Background(),
		double(1), double(2), double(3))
	fmt.Println(ret)
	// Output:
	// [2 4 6]
}

func ExampleTween() {
	// A deterministic tick source stands in for the default 60Hz
	// frame ticker.
	clock := &stepClock{step: 25 * time.Millisecond}

	_ = pace.Tween(context.Background(), 100*time.Millisecond,
		func(progress float64, cancelled bool) {
			fmt.Println(progress)
		},
		pace.WithTicker(clock), pace.WithNow(clock.Now))
	// Output:
	// 0.25
	// 0.5
	// 0.75
	// 1
}

func ExampleDelay() {
	var cancelled atomic.Bool
	go func() {
		// Flip the flag while the delay is polling.
		time.Sleep(30 * time.Millisecond)
		cancelled.Store(true)
	}()

	_ = pace.Delay(context.Background(), time.Hour,
		pace.WithCancel(cancelled.Load))
	fmt.Println("cancelled")
	// Output:
	// cancelled
}
