// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the GPU-uploadable geometry buffers used by
// the molvis visual engine: [Mesh], [Points], and [Lines]. Buffers
// are reused in place across rebuilds whenever their backing arrays
// have capacity, so a rebuild of an unchanged-size geometry does not
// allocate.
package geom

import "cogentcore.org/core/math32"

// Kind is the kind of a geometry buffer.
type Kind int32

const (
	MeshKind Kind = iota
	PointsKind
	LinesKind

	KindN
)

var kindNames = [KindN]string{"Mesh", "Points", "Lines"}

func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return "Kind(invalid)"
	}
	return kindNames[k]
}

// Geometry is a GPU-uploadable geometry buffer. The concrete types
// are [Mesh], [Points], and [Lines]. A geometry is exclusively owned
// by the visual that created it.
type Geometry interface {

	// Kind returns the geometry kind.
	Kind() Kind

	// DrawCount returns the number of elements submitted to a draw
	// call: indices for meshes, points for points, segments for lines.
	DrawCount() int

	// BBox returns the bounding box of the geometry.
	BBox() math32.Box3
}

// Empty returns the canonical empty geometry of the given kind,
// with a zero draw count. It is shared and must not be mutated.
func Empty(k Kind) Geometry {
	switch k {
	case PointsKind:
		return EmptyPoints
	case LinesKind:
		return EmptyLines
	default:
		return EmptyMesh
	}
}
