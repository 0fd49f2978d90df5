// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"context"

	"cogentcore.org/molvis/geom"
	"cogentcore.org/molvis/mol"
)

// PointsBuilder returns the capability record for point visuals:
// one point per element, with per-slot sizes from the size theme.
func PointsBuilder() Builder {
	return Builder{
		Kind:                   geom.PointsKind,
		CreateGeometry:         createUnitPoints,
		CreateLocationIterator: elementLocationIterator,
		Loci:                   elementLoci,
		Mark:                   markElements,
	}
}

func createUnitPoints(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error) {
	pp, _ := prev.(*geom.Points)
	return geom.BuildPoints(ctx, u, pp)
}
