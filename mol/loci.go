// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import "slices"

// Loci is an addressable subset of structural elements, used for
// selection, highlight, and picking. The concrete variants are
// [EmptyLoci], [EveryLoci], and [ElementLoci].
type Loci interface {
	isLoci()
}

// EmptyLoci denotes no locations. It is the sentinel returned by
// picking lookups that resolve to nothing.
type EmptyLoci struct{}

func (EmptyLoci) isLoci() {}

// EveryLoci denotes every possible location of a structure.
type EveryLoci struct {
	Structure *Structure
}

func (EveryLoci) isLoci() {}

// UnitElements is one unit's contribution to an [ElementLoci]:
// structure-level element indices, sorted ascending.
type UnitElements struct {
	Unit *Unit

	// Indices are structure-level element indices, sorted
	// ascending. They need not all be present in the unit
	// a locus is applied against.
	Indices []ElementIndex
}

// ElementLoci addresses explicit elements per unit.
type ElementLoci struct {
	Structure *Structure
	Elements  []UnitElements
}

func (ElementLoci) isLoci() {}

// NewElementLoci returns an [ElementLoci] over the given per-unit
// element sets.
func NewElementLoci(st *Structure, elements ...UnitElements) ElementLoci {
	return ElementLoci{Structure: st, Elements: elements}
}

// WholeUnitLoci returns an [ElementLoci] covering every element of
// the given units.
func WholeUnitLoci(st *Structure, units ...*Unit) ElementLoci {
	el := ElementLoci{Structure: st}
	for _, u := range units {
		el.Elements = append(el.Elements, UnitElements{Unit: u, Indices: u.Elements})
	}
	return el
}

// IsEmpty returns whether the loci denotes no locations.
func IsEmpty(lc Loci) bool {
	switch el := lc.(type) {
	case nil:
		return true
	case EmptyLoci:
		return true
	case ElementLoci:
		for _, ue := range el.Elements {
			if len(ue.Indices) > 0 {
				return false
			}
		}
		return true
	}
	return false
}

// IsEvery returns whether the loci denotes every possible location.
func IsEvery(lc Loci) bool {
	_, ok := lc.(EveryLoci)
	return ok
}

// FindElement returns the position of e in the sorted element list,
// and whether it is present.
func FindElement(sorted []ElementIndex, e ElementIndex) (int, bool) {
	return slices.BinarySearch(sorted, e)
}
