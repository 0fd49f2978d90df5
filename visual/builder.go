// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"context"
	"image/color"
	"slices"

	"cogentcore.org/molvis/geom"
	"cogentcore.org/molvis/mol"
	"cogentcore.org/molvis/render"
	"cogentcore.org/molvis/theme"
)

// Props are the merged visual properties. Callers start from
// [DefaultProps] and pass the full record back on updates; the engine
// diffs the new record against the current one to decide what to
// rebuild.
type Props struct {

	// Detail is the mesh tessellation detail level, 0 coarsest.
	Detail int

	// UnitKinds filters which unit kinds get geometry; a unit of
	// any other kind yields the canonical empty geometry.
	UnitKinds []mol.Kind

	// ColorTheme assigns per-location colors.
	ColorTheme theme.ColorTheme

	// SizeTheme assigns per-location sizes. For mesh visuals the
	// size is baked into the geometry; for points and lines it is
	// a separate buffer.
	SizeTheme theme.SizeTheme

	// Alpha is the overall opacity.
	Alpha float32

	// Visible, Pickable, and DoubleSided set the render state.
	Visible     bool
	Pickable    bool
	DoubleSided bool
}

// DefaultProps returns the default visual properties.
func DefaultProps() Props {
	return Props{
		Detail:     1,
		UnitKinds:  mol.AllKinds(),
		ColorTheme: theme.UniformColor{Value: color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}},
		SizeTheme:  theme.UniformSize{Value: 1},
		Alpha:      1,
		Visible:    true,
		Pickable:   true,
	}
}

// kindAllowed returns whether units of the given kind get geometry
// under the UnitKinds filter.
func (p *Props) kindAllowed(k mol.Kind) bool {
	return slices.Contains(p.UnitKinds, k)
}

// ApplyFunc applies a marker action over the flat slot interval
// [start, end), returning whether any marker byte changed.
type ApplyFunc func(start, end int) bool

// Builder is the capability record implemented once per geometry
// kind (see [MeshBuilder], [PointsBuilder], [LinesBuilder]) and
// injected into [New]. It is a record of functions rather than an
// interface hierarchy, so tests and callers can wrap individual
// capabilities.
type Builder struct {

	// Kind is the geometry kind this builder produces.
	Kind geom.Kind

	// CreateGeometry synthesizes geometry for the group's
	// representative unit. prev, when non-nil, may be resized and
	// reused in place.
	CreateGeometry func(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error)

	// CreateLocationIterator returns a fresh iterator over the
	// whole group.
	CreateLocationIterator func(group *mol.SymmetryGroup) *LocationIterator

	// Loci resolves a picking id against the group, returning the
	// empty loci when it does not resolve.
	Loci func(pid render.PickingID, sg *mol.StructureGroup, objectID uint32) mol.Loci

	// Mark walks the loci's element sets and applies sub-intervals
	// of flat slots, returning whether anything changed.
	Mark func(lc mol.Loci, sg *mol.StructureGroup, apply ApplyFunc) bool

	// SetUpdateState sets builder-specific flags by diffing props;
	// may be nil.
	SetUpdateState func(st *UpdateState, newProps, oldProps *Props)
}
