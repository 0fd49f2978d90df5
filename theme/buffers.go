// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"context"

	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"

	"cogentcore.org/molvis/base/progress"
	"cogentcore.org/molvis/render"
)

// Colors computes a per-slot color buffer from the theme over the
// location source, 4 linear-space floats per slot, exactly
// GroupCount*InstanceCount slots, reusing prev's backing storage when
// it has capacity. It checkpoints for cancellation every
// [progress.Granularity] slots. Update passes stage into a scratch
// buffer here and commit the result to the color cell only after the
// whole pass succeeds, so prev must never alias a committed buffer.
func Colors(ctx context.Context, it LocationSource, th ColorTheme, prev math32.ArrayF32) (math32.ArrayF32, error) {
	total := it.GroupCount() * it.InstanceCount()
	buf := slicesx.SetLength(prev, total*4)
	it.Reset()
	i := 0
	for loc, ok := it.Next(); ok; loc, ok = it.Next() {
		if i%progress.Granularity == 0 {
			if err := progress.Checkpoint(ctx, i, total); err != nil {
				return nil, err
			}
		}
		c := math32.NewVector4Color(th.Color(loc)).SRGBToLinear()
		buf[i*4] = c.X
		buf[i*4+1] = c.Y
		buf[i*4+2] = c.Z
		buf[i*4+3] = c.W
		i++
	}
	return buf, nil
}

// Sizes computes a per-slot size buffer from the theme over the
// location source, 1 float per slot, reusing prev's backing storage
// when it has capacity; see [Colors] for the staging contract.
func Sizes(ctx context.Context, it LocationSource, th SizeTheme, prev math32.ArrayF32) (math32.ArrayF32, error) {
	total := it.GroupCount() * it.InstanceCount()
	buf := slicesx.SetLength(prev, total)
	it.Reset()
	i := 0
	for loc, ok := it.Next(); ok; loc, ok = it.Next() {
		if i%progress.Granularity == 0 {
			if err := progress.Checkpoint(ctx, i, total); err != nil {
				return nil, err
			}
		}
		buf[i] = th.Size(loc)
		i++
	}
	return buf, nil
}

// CreateColors paints the color cell of a freshly created render
// object, reusing the cell's current backing buffer. Objects already
// handed to the upload layer must not be painted in place; their
// updates stage through [Colors] instead.
func CreateColors(ctx context.Context, it LocationSource, th ColorTheme, vals *render.Values) error {
	buf, err := Colors(ctx, it, th, vals.Color.Value())
	if err != nil {
		return err
	}
	vals.Color.Set(buf)
	return nil
}

// CreateSizes paints the size cell of a freshly created render
// object; see [CreateColors].
func CreateSizes(ctx context.Context, it LocationSource, th SizeTheme, vals *render.Values) error {
	buf, err := Sizes(ctx, it, th, vals.Size.Value())
	if err != nil {
		return err
	}
	vals.Size.Set(buf)
	return nil
}
