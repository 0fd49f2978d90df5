// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckpoint(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Checkpoint(ctx, 0, 10))

	var got [][2]int
	ctx = WithReporter(ctx, func(done, total int) {
		got = append(got, [2]int{done, total})
	})
	assert.NoError(t, Checkpoint(ctx, 3, 10))
	assert.NoError(t, Checkpoint(ctx, 10, 10))
	assert.Equal(t, [][2]int{{3, 10}, {10, 10}}, got)
}

func TestCheckpointCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Checkpoint(ctx, 0, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
