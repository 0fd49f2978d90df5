// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"sync/atomic"

	"cogentcore.org/molvis/geom"
)

var nextObjectID atomic.Uint32

// State holds the render flags of an [Object], recomputed from the
// visual's properties on every update.
type State struct {
	Visible     bool
	Pickable    bool
	DoubleSided bool
	Opaque      bool
}

// Object is a GPU-facing render object: an identity, a geometry
// kind, the mutable cell-backed [Values], and the render [State].
// An object's identity never changes once created; the visual engine
// mutates its value cells in place.
type Object struct {

	// ID is the unique picking/object id, allocated at creation.
	ID uint32

	// Kind is the geometry kind of this object.
	Kind geom.Kind

	// Values are the mutable cell-backed buffer fields.
	Values Values

	// State are the render flags.
	State State
}

// NewObject returns a new [Object] of the given kind with a fresh id.
func NewObject(kind geom.Kind) *Object {
	return &Object{ID: nextObjectID.Add(1), Kind: kind}
}

// CreateObject allocates a render object seeded from the given
// geometry and iterator counts: geometry buffers, draw count, counts,
// and a zeroed marker buffer. Transforms, colors, and sizes are
// written separately.
func CreateObject(kind geom.Kind, g geom.Geometry, groupCount, instanceCount int) *Object {
	ob := NewObject(kind)
	SetGeometry(&ob.Values, g)
	ob.Values.GroupCount.Set(groupCount)
	ob.Values.InstanceCount.Set(instanceCount)
	CreateMarkers(groupCount*instanceCount, &ob.Values)
	return ob
}

// CreateMeshObject allocates a mesh render object;
// see [CreateObject].
func CreateMeshObject(g *geom.Mesh, groupCount, instanceCount int) *Object {
	return CreateObject(geom.MeshKind, g, groupCount, instanceCount)
}

// CreatePointsObject allocates a points render object;
// see [CreateObject].
func CreatePointsObject(g *geom.Points, groupCount, instanceCount int) *Object {
	return CreateObject(geom.PointsKind, g, groupCount, instanceCount)
}

// CreateLinesObject allocates a lines render object;
// see [CreateObject].
func CreateLinesObject(g *geom.Lines, groupCount, instanceCount int) *Object {
	return CreateObject(geom.LinesKind, g, groupCount, instanceCount)
}

// SetGeometry writes the geometry's buffers and draw count into the
// value cells appropriate for its kind.
func SetGeometry(vals *Values, g geom.Geometry) {
	switch gt := g.(type) {
	case *geom.Mesh:
		vals.VertexPosition.Set(gt.Vertex)
		vals.VertexNormal.Set(gt.Normal)
		vals.VertexTexture.Set(gt.Texture)
		vals.Index.Set(gt.Index)
	case *geom.Points:
		vals.Position.Set(gt.Position)
	case *geom.Lines:
		vals.Start.Set(gt.Start)
		vals.End.Set(gt.End)
	}
	vals.DrawCount.Set(g.DrawCount())
}
