// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress provides cooperative cancellation checkpoints and
// progress reporting for long-running buffer construction, such as
// geometry synthesis and per-element color computation over large
// structures.
package progress

import "context"

// Granularity is the number of processed elements between
// [Checkpoint] calls in long-running loops. Loops over fewer
// elements still hit the checkpoint once, at element 0.
const Granularity = 100_000

// Reporter receives progress updates from a long-running operation.
// done is the number of elements processed so far, total the number
// to process overall.
type Reporter func(done, total int)

type reporterKey struct{}

// WithReporter returns a copy of ctx that carries the given
// [Reporter], which [Checkpoint] then invokes.
func WithReporter(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterKey{}, r)
}

// Checkpoint polls ctx for cancellation, returning its error if it is
// canceled, and otherwise reports (done, total) to any [Reporter]
// carried by ctx. Long-running loops must call it every [Granularity]
// processed elements so they remain interruptible.
func Checkpoint(ctx context.Context, done, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r, ok := ctx.Value(reporterKey{}).(Reporter); ok && r != nil {
		r(done, total)
	}
	return nil
}
