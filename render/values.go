// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the host-side render objects that the
// molvis visual engine keeps up to date: versioned value cells
// holding geometry, color, size, transform, and marker buffers, which
// an external GPU upload layer diffs by version and uploads lazily.
package render

import "cogentcore.org/core/math32"

// Cell is a versioned value holder for one render-object field.
// Setting a cell bumps its version; the upload layer compares
// versions against its last-uploaded state to re-upload only changed
// buffers. A Set never implies synchronous GPU I/O.
type Cell[T any] struct {
	value   T
	version uint64
}

// Value returns the current value.
func (cl *Cell[T]) Value() T {
	return cl.value
}

// Set sets the value and bumps the version.
func (cl *Cell[T]) Set(v T) {
	cl.value = v
	cl.version++
}

// Touch bumps the version without replacing the value, for buffers
// that are mutated in place.
func (cl *Cell[T]) Touch() {
	cl.version++
}

// Version returns the current version, starting at 0 for a cell that
// was never set.
func (cl *Cell[T]) Version() uint64 {
	return cl.version
}

// Values is the cell record of a render [Object]. Which cells are
// populated depends on the object's geometry kind; counts and
// markers are always populated.
type Values struct {

	// VertexPosition, VertexNormal, VertexTexture, and Index hold
	// mesh geometry: 3, 3, and 2 floats per vertex, and triangle
	// indices.
	VertexPosition Cell[math32.ArrayF32]
	VertexNormal   Cell[math32.ArrayF32]
	VertexTexture  Cell[math32.ArrayF32]
	Index          Cell[math32.ArrayU32]

	// Position holds points geometry, 3 floats per point.
	Position Cell[math32.ArrayF32]

	// Start and End hold lines geometry, 3 floats per segment each.
	Start Cell[math32.ArrayF32]
	End   Cell[math32.ArrayF32]

	// Color is the per-slot linear RGBA color buffer, 4 floats per
	// (group, instance) slot.
	Color Cell[math32.ArrayF32]

	// Size is the per-slot size buffer, 1 float per slot
	// (points and lines only; mesh size is baked into geometry).
	Size Cell[math32.ArrayF32]

	// Transform holds one matrix per instance.
	Transform Cell[[]math32.Matrix4]

	// Marker is the per-slot marker byte buffer, length
	// GroupCount * InstanceCount.
	Marker Cell[[]byte]

	// DrawCount is the geometry draw count.
	DrawCount Cell[int]

	// GroupCount and InstanceCount are the iterator counts the
	// buffers above are sized from.
	GroupCount    Cell[int]
	InstanceCount Cell[int]

	// Alpha is the overall opacity.
	Alpha Cell[float32]
}
