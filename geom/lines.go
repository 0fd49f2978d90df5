// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"context"

	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"

	"cogentcore.org/molvis/base/progress"
	"cogentcore.org/molvis/mol"
)

// Lines is a line-segment geometry: start and end positions per
// segment.
type Lines struct {

	// Start are the segment start positions, 3 floats per segment.
	Start math32.ArrayF32

	// End are the segment end positions, 3 floats per segment.
	End math32.ArrayF32

	// LineCount is the number of segments.
	LineCount int

	// CBBox is the computed bounding box.
	CBBox math32.Box3
}

// EmptyLines is the canonical empty [Lines]. It must not be mutated.
var EmptyLines = &Lines{}

func (ls *Lines) Kind() Kind        { return LinesKind }
func (ls *Lines) DrawCount() int    { return ls.LineCount }
func (ls *Lines) BBox() math32.Box3 { return ls.CBBox }

// NewLines returns a lines geometry sized for the given segment
// count, reusing prev's backing arrays when it is non-nil and has
// capacity.
func NewLines(numLines int, prev *Lines) *Lines {
	ls := prev
	if ls == nil || ls == EmptyLines {
		ls = &Lines{}
	}
	ls.Start = slicesx.SetLength(ls.Start, numLines*3)
	ls.End = slicesx.SetLength(ls.End, numLines*3)
	ls.LineCount = numLines
	ls.CBBox.SetEmpty()
	return ls
}

// BuildLines synthesizes one segment per (unit-local) element index
// pair, reusing prev when possible. It checkpoints for cancellation
// every [progress.Granularity] pairs.
func BuildLines(ctx context.Context, u *mol.Unit, pairs [][2]int, prev *Lines) (*Lines, error) {
	n := len(pairs)
	ls := NewLines(n, prev)
	for i, pr := range pairs {
		if i%progress.Granularity == 0 {
			if err := progress.Checkpoint(ctx, i, n); err != nil {
				return nil, err
			}
		}
		a := u.Position(pr[0])
		b := u.Position(pr[1])
		setVec3(ls.Start, i, a)
		setVec3(ls.End, i, b)
		ls.CBBox.ExpandByPoint(a)
		ls.CBBox.ExpandByPoint(b)
	}
	return ls, nil
}

func setVec3(arr math32.ArrayF32, i int, v math32.Vector3) {
	arr[i*3] = v.X
	arr[i*3+1] = v.Y
	arr[i*3+2] = v.Z
}
