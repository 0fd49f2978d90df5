// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mol provides the in-memory structural model used by the
// molvis visualization packages: a [Structure] is a table of elements
// (atoms) partitioned into [Unit]s, and units that share the same
// element layout are collected into [SymmetryGroup]s that differ only
// by their spatial transform.
package mol

// Structure is a molecular structure: a table of elements (atoms)
// partitioned into [Unit]s. The element table itself lives in the
// units' [Conformation] coordinate arrays; Structure records the
// overall element count and the unit partition.
type Structure struct {

	// ElementCount is the total number of elements (atoms)
	// in the model's element table.
	ElementCount int

	// Units are the structural units of this structure,
	// in model order.
	Units []*Unit
}

// NewStructure returns a new [Structure] with the given total element
// count and units.
func NewStructure(elementCount int, units ...*Unit) *Structure {
	return &Structure{ElementCount: elementCount, Units: units}
}

// SymmetryGroups buckets the structure's units into [SymmetryGroup]s
// by shape hash, preserving the order in which each layout is first
// seen. Units sharing an element layout (symmetry copies) land in the
// same group.
func (st *Structure) SymmetryGroups() []*SymmetryGroup {
	var groups []*SymmetryGroup
	index := map[uint64]int{}
	for _, u := range st.Units {
		h := unitShapeHash(u)
		if gi, ok := index[h]; ok {
			groups[gi].Units = append(groups[gi].Units, u)
			continue
		}
		index[h] = len(groups)
		groups = append(groups, &SymmetryGroup{Units: []*Unit{u}, Hash: h})
	}
	return groups
}
