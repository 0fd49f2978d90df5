// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"context"

	"cogentcore.org/molvis/geom"
	"cogentcore.org/molvis/mol"
	"cogentcore.org/molvis/render"
)

// traceCutoff is the maximum distance between consecutive elements
// for the bond-less fallback trace; longer gaps are chain breaks.
const traceCutoff = 4.0

// LinesBuilder returns the capability record for line visuals: one
// segment per bond, falling back to a consecutive-element trace when
// the unit carries no bonds. Group slots index segments, not
// elements.
func LinesBuilder() Builder {
	return Builder{
		Kind:                   geom.LinesKind,
		CreateGeometry:         createUnitLines,
		CreateLocationIterator: segmentLocationIterator,
		Loci:                   segmentLoci,
		Mark:                   markSegments,
	}
}

// segmentPairs returns the unit-local element index pairs rendered
// as segments: the unit's bonds, or the consecutive trace with
// chain-break gaps skipped. Pure and deterministic, so the geometry,
// iterator, picking, and marking views of a unit always agree.
func segmentPairs(u *mol.Unit) [][2]int {
	if u.Bonds != nil {
		return u.Bonds
	}
	var pairs [][2]int
	for i := 0; i+1 < u.Len(); i++ {
		if u.Conf.Distance(u.Elements[i], u.Elements[i+1]) > traceCutoff {
			continue
		}
		pairs = append(pairs, [2]int{i, i + 1})
	}
	return pairs
}

func createUnitLines(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error) {
	pl, _ := prev.(*geom.Lines)
	return geom.BuildLines(ctx, u, segmentPairs(u), pl)
}

// segmentLocationIterator has one group slot per segment; the
// location is the segment's first element.
func segmentLocationIterator(group *mol.SymmetryGroup) *LocationIterator {
	pairs := segmentPairs(group.Representative())
	return NewLocationIterator(len(pairs), group.InstanceCount(), func(g, i int, loc *mol.Location) {
		u := group.Units[i]
		loc.Unit = u
		loc.Index = pairs[g][0]
		loc.Element = u.Elements[pairs[g][0]]
	})
}

// segmentLoci resolves a picked segment to both of its endpoint
// elements.
func segmentLoci(pid render.PickingID, sg *mol.StructureGroup, objectID uint32) mol.Loci {
	if pid.ObjectID != objectID || int(pid.InstanceID) >= sg.Group.InstanceCount() {
		return mol.EmptyLoci{}
	}
	u := sg.Group.Units[pid.InstanceID]
	pairs := segmentPairs(u)
	if int(pid.GroupID) >= len(pairs) {
		return mol.EmptyLoci{}
	}
	pr := pairs[pid.GroupID]
	a, b := u.Elements[pr[0]], u.Elements[pr[1]]
	if b < a {
		a, b = b, a
	}
	return mol.NewElementLoci(sg.Structure, mol.UnitElements{
		Unit:    u,
		Indices: []mol.ElementIndex{a, b},
	})
}

// markSegments marks the segments whose both endpoints are in the
// locus. The bulk path applies a unit's whole segment range when the
// locus covers its full element range.
func markSegments(lc mol.Loci, sg *mol.StructureGroup, apply ApplyFunc) bool {
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
		pairs := segmentPairs(u)
		groupCount := len(pairs)
		base := ui * groupCount
		if wholeUnitRange(u, ue.Indices) {
			if apply(base, base+groupCount) {
				changed = true
			}
			continue
		}
		for si, pr := range pairs {
			_, aok := mol.FindElement(ue.Indices, u.Elements[pr[0]])
			_, bok := mol.FindElement(ue.Indices, u.Elements[pr[1]])
			if !aok || !bok {
				continue
			}
			if apply(base+si, base+si+1) {
				changed = true
			}
		}
	}
	return changed
}
