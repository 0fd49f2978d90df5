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

// Points is a point-sprite geometry, one vertex per point.
type Points struct {

	// Position are the point positions, 3 floats per point.
	Position math32.ArrayF32

	// PointCount is the number of points.
	PointCount int

	// CBBox is the computed bounding box.
	CBBox math32.Box3
}

// EmptyPoints is the canonical empty [Points]. It must not be mutated.
var EmptyPoints = &Points{}

func (ps *Points) Kind() Kind        { return PointsKind }
func (ps *Points) DrawCount() int    { return ps.PointCount }
func (ps *Points) BBox() math32.Box3 { return ps.CBBox }

// NewPoints returns a points geometry sized for the given count,
// reusing prev's backing array when it is non-nil and has capacity.
func NewPoints(numPoints int, prev *Points) *Points {
	ps := prev
	if ps == nil || ps == EmptyPoints {
		ps = &Points{}
	}
	ps.Position = slicesx.SetLength(ps.Position, numPoints*3)
	ps.PointCount = numPoints
	ps.CBBox.SetEmpty()
	return ps
}

// BuildPoints synthesizes one point per element of the unit, reusing
// prev when possible. It checkpoints for cancellation every
// [progress.Granularity] elements.
func BuildPoints(ctx context.Context, u *mol.Unit, prev *Points) (*Points, error) {
	n := u.Len()
	ps := NewPoints(n, prev)
	for i := range n {
		if i%progress.Granularity == 0 {
			if err := progress.Checkpoint(ctx, i, n); err != nil {
				return nil, err
			}
		}
		p := u.Position(i)
		ps.Position[i*3] = p.X
		ps.Position[i*3+1] = p.Y
		ps.Position[i*3+2] = p.Z
		ps.CBBox.ExpandByPoint(p)
	}
	return ps, nil
}
