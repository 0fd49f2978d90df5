// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import (
	"encoding/binary"
	"hash/fnv"
)

// SymmetryGroup is an ordered, non-empty set of [Unit]s sharing the
// same element layout (shape identity), differing only by spatial
// transform. The shape identity is the Hash; coordinate identity is
// tracked separately per unit via [Unit.ConformationID].
type SymmetryGroup struct {

	// Units are the units of the group, in instance order.
	Units []*Unit

	// Hash is the shape identity of the group: equal for groups
	// whose units have the same kind and element layout,
	// independent of coordinates.
	Hash uint64
}

// NewSymmetryGroup returns a new [SymmetryGroup] over the given
// units, which must be non-empty and share one element layout.
func NewSymmetryGroup(units ...*Unit) *SymmetryGroup {
	return &SymmetryGroup{Units: units, Hash: unitShapeHash(units[0])}
}

// InstanceCount returns the number of units (symmetry copies)
// in the group.
func (sg *SymmetryGroup) InstanceCount() int {
	return len(sg.Units)
}

// Representative returns the first unit of the group, used to derive
// the shared shape.
func (sg *SymmetryGroup) Representative() *Unit {
	return sg.Units[0]
}

// unitShapeHash returns the FNV-1a hash of a unit's kind and element
// layout. Coordinates do not contribute.
func unitShapeHash(u *Unit) uint64 {
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint32(b[:4], uint32(u.Kind))
	h.Write(b[:4])
	binary.LittleEndian.PutUint64(b[:], uint64(len(u.Elements)))
	h.Write(b[:])
	for _, e := range u.Elements {
		binary.LittleEndian.PutUint32(b[:4], uint32(e))
		h.Write(b[:4])
	}
	return h.Sum64()
}

// StructureGroup pairs a [Structure] with one of its
// [SymmetryGroup]s; it is the unit of work for a units visual.
type StructureGroup struct {
	Structure *Structure
	Group     *SymmetryGroup
}
