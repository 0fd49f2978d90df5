// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"slices"

	"cogentcore.org/molvis/mol"
	"cogentcore.org/molvis/render"
)

// elementLocationIterator returns an iterator with one group slot
// per unit element and one instance per symmetry copy, used by the
// mesh and points builders.
func elementLocationIterator(group *mol.SymmetryGroup) *LocationIterator {
	groupCount := group.Representative().Len()
	return NewLocationIterator(groupCount, group.InstanceCount(), func(g, i int, loc *mol.Location) {
		u := group.Units[i]
		loc.Unit = u
		loc.Index = g
		loc.Element = u.Elements[g]
	})
}

// elementLoci resolves a picking id to the single picked element.
func elementLoci(pid render.PickingID, sg *mol.StructureGroup, objectID uint32) mol.Loci {
	if pid.ObjectID != objectID || int(pid.InstanceID) >= sg.Group.InstanceCount() {
		return mol.EmptyLoci{}
	}
	u := sg.Group.Units[pid.InstanceID]
	if int(pid.GroupID) >= u.Len() {
		return mol.EmptyLoci{}
	}
	return mol.NewElementLoci(sg.Structure, mol.UnitElements{
		Unit:    u,
		Indices: []mol.ElementIndex{u.Elements[pid.GroupID]},
	})
}

// markElements resolves an element locus onto flat (instance, group)
// marker slots: the bulk path applies one interval when the locus
// covers a unit's full element range, the scan path resolves each
// structure-level index to its unit-local index by predecessor
// search, skipping indices outside the unit.
func markElements(lc mol.Loci, sg *mol.StructureGroup, apply ApplyFunc) bool {
	el, ok := lc.(mol.ElementLoci)
	if !ok || el.Structure != sg.Structure {
		return false
	}
	changed := false
	for _, ue := range el.Elements {
		ui := findUnitIndex(sg.Group, ue.Unit)
		if ui < 0 {
			continue
		}
		u := sg.Group.Units[ui]
		groupCount := u.Len()
		base := ui * groupCount
		if wholeUnitRange(u, ue.Indices) {
			if apply(base, base+groupCount) {
				changed = true
			}
			continue
		}
		for _, e := range ue.Indices {
			li, ok := mol.FindElement(u.Elements, e)
			if !ok {
				continue
			}
			if apply(base+li, base+li+1) {
				changed = true
			}
		}
	}
	return changed
}

// findUnitIndex returns the instance index of the unit within the
// group, matching by unit id, or -1.
func findUnitIndex(group *mol.SymmetryGroup, u *mol.Unit) int {
	for i, gu := range group.Units {
		if gu.ID == u.ID {
			return i
		}
	}
	return -1
}

// wholeUnitRange returns whether the indices are exactly the unit's
// full element range. Length and endpoint checks are not enough:
// duplicated indices can match both while covering fewer elements.
func wholeUnitRange(u *mol.Unit, indices []mol.ElementIndex) bool {
	return u.Len() > 0 && slices.Equal(indices, u.Elements)
}
