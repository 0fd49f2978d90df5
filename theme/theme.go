// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides color and size themes over structural
// locations, and the evaluators that paint per-slot color and size
// buffers from them by iterating a location source exactly once per
// (group, instance) slot.
package theme

import (
	"image/color"

	"cogentcore.org/molvis/mol"
)

// LocationSource enumerates (group, instance) slots as resolved
// [mol.Location]s. It is implemented by the visual package's
// location iterator. The location returned by Next is overwritten in
// place on the following call.
type LocationSource interface {

	// GroupCount is the number of per-unit elements.
	GroupCount() int

	// InstanceCount is the number of units (symmetry copies).
	InstanceCount() int

	// Reset rewinds the cursor to the first slot without
	// reallocating.
	Reset()

	// Next returns the next location, and false when exhausted.
	Next() (*mol.Location, bool)
}

// ColorTheme assigns a color to each location.
type ColorTheme interface {
	Color(loc *mol.Location) color.RGBA
}

// SizeTheme assigns a size to each location.
type SizeTheme interface {
	Size(loc *mol.Location) float32
}

// StructureBinder is implemented by themes that precompute
// per-structure tables before evaluation.
type StructureBinder interface {
	BindStructure(st *mol.Structure)
}

// BindStructure binds the active structure into the color theme if
// it implements [StructureBinder].
func BindStructure(th ColorTheme, st *mol.Structure) {
	if b, ok := th.(StructureBinder); ok {
		b.BindStructure(st)
	}
}

// UniformColor colors every location the same.
type UniformColor struct {
	Value color.RGBA
}

func (u UniformColor) Color(loc *mol.Location) color.RGBA {
	return u.Value
}

// KindColor colors locations by their unit's [mol.Kind].
type KindColor struct {
	ByKind  map[mol.Kind]color.RGBA
	Default color.RGBA
}

func (k KindColor) Color(loc *mol.Location) color.RGBA {
	if c, ok := k.ByKind[loc.Unit.Kind]; ok {
		return c
	}
	return k.Default
}

// UniformSize sizes every location the same.
type UniformSize struct {
	Value float32
}

func (u UniformSize) Size(loc *mol.Location) float32 {
	return u.Value
}

// KindSize sizes locations by their unit's [mol.Kind].
type KindSize struct {
	ByKind  map[mol.Kind]float32
	Default float32
}

func (k KindSize) Size(loc *mol.Location) float32 {
	if s, ok := k.ByKind[loc.Unit.Kind]; ok {
		return s
	}
	return k.Default
}
