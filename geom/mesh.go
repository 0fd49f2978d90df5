// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"context"

	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"

	"cogentcore.org/molvis/base/progress"
	"cogentcore.org/molvis/mol"
)

// Mesh is an indexed triangle mesh geometry, with per-vertex normals
// and texture coordinates as required by the render layer.
type Mesh struct {

	// Vertex are the vertex positions, 3 floats per vertex.
	Vertex math32.ArrayF32

	// Normal are the vertex normals, 3 floats per vertex.
	Normal math32.ArrayF32

	// Texture are the texture coordinates, 2 floats per vertex.
	Texture math32.ArrayF32

	// Index are the triangle indices, 3 per triangle.
	Index math32.ArrayU32

	// VertexCount is the number of vertices.
	VertexCount int

	// TriangleCount is the number of triangles.
	TriangleCount int

	// CBBox is the computed bounding box.
	CBBox math32.Box3
}

// EmptyMesh is the canonical empty [Mesh]. It must not be mutated.
var EmptyMesh = &Mesh{}

func (ms *Mesh) Kind() Kind        { return MeshKind }
func (ms *Mesh) DrawCount() int    { return ms.TriangleCount * 3 }
func (ms *Mesh) BBox() math32.Box3 { return ms.CBBox }

// NewMesh returns a mesh sized for the given vertex and index counts,
// reusing prev's backing arrays when it is non-nil and has capacity.
// The canonical [EmptyMesh] is never reused.
func NewMesh(numVertex, numIndex int, prev *Mesh) *Mesh {
	ms := prev
	if ms == nil || ms == EmptyMesh {
		ms = &Mesh{}
	}
	ms.Vertex = slicesx.SetLength(ms.Vertex, numVertex*3)
	ms.Normal = slicesx.SetLength(ms.Normal, numVertex*3)
	ms.Texture = slicesx.SetLength(ms.Texture, numVertex*2)
	ms.Index = slicesx.SetLength(ms.Index, numIndex)
	ms.VertexCount = numVertex
	ms.TriangleCount = numIndex / 3
	ms.CBBox.SetEmpty()
	return ms
}

// BuildSpheres synthesizes a sphere mesh per element of the unit,
// with the per-element radii given (len = unit.Len()) and the given
// tessellation detail, reusing prev when possible. It checkpoints for
// cancellation every [progress.Granularity] elements.
func BuildSpheres(ctx context.Context, u *mol.Unit, radii []float32, detail int, prev *Mesh) (*Mesh, error) {
	sph := shape.NewSphere(1, sphereSegs(detail))
	nv, ni, _ := sph.MeshSize()
	n := u.Len()
	ms := NewMesh(n*nv, n*ni, prev)
	vo, io := 0, 0
	for i := range n {
		if i%progress.Granularity == 0 {
			if err := progress.Checkpoint(ctx, i, n); err != nil {
				return nil, err
			}
		}
		sph.Radius = radii[i]
		sph.Pos = u.Position(i)
		sph.SetOffsets(vo, io)
		sph.Set(ms.Vertex, ms.Normal, ms.Texture, nil, ms.Index)
		ms.CBBox.ExpandByBox(sph.MeshBBox())
		vo += nv
		io += ni
	}
	return ms, nil
}

// sphereSegs returns the sphere tessellation segment count for a
// detail level, detail 0 being the coarsest usable sphere.
func sphereSegs(detail int) int {
	if detail < 0 {
		detail = 0
	}
	return 6 + 4*detail
}
