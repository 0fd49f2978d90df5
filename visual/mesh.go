// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"context"

	"cogentcore.org/molvis/geom"
	"cogentcore.org/molvis/mol"
)

// MeshBuilder returns the capability record for sphere-mesh visuals:
// one sphere per element, radius from the size theme (baked into the
// geometry, so size-theme changes rebuild geometry).
func MeshBuilder() Builder {
	return Builder{
		Kind:                   geom.MeshKind,
		CreateGeometry:         createSphereMesh,
		CreateLocationIterator: elementLocationIterator,
		Loci:                   elementLoci,
		Mark:                   markElements,
		SetUpdateState: func(st *UpdateState, newProps, oldProps *Props) {
			if newProps.Detail != oldProps.Detail {
				st.CreateGeometry = true
			}
		},
	}
}

func createSphereMesh(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error) {
	radii := make([]float32, u.Len())
	loc := mol.Location{Unit: u}
	for i := range radii {
		loc.Index = i
		loc.Element = u.Elements[i]
		radii[i] = p.SizeTheme.Size(&loc)
	}
	pm, _ := prev.(*geom.Mesh)
	return geom.BuildSpheres(ctx, u, radii, p.Detail, pm)
}
