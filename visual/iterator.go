// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import "cogentcore.org/molvis/mol"

// LocationFunc resolves one (groupIndex, instanceIndex) slot to a
// location, writing into loc. It must be total and deterministic,
// and referentially stable across one create/update cycle.
type LocationFunc func(groupIndex, instanceIndex int, loc *mol.Location)

// LocationIterator is a stateful cursor over groupCount×instanceCount
// logical slots, each mapping to one (unit, element) location. The
// flat slot order is instanceIndex*groupCount + groupIndex, matching
// the marker buffer layout. The location record is reused and
// overwritten in place per slot.
type LocationIterator struct {
	groupCount    int
	instanceCount int
	fn            LocationFunc
	cur           int
	loc           mol.Location
}

// NewLocationIterator returns a new [LocationIterator] over the
// given counts and location function.
func NewLocationIterator(groupCount, instanceCount int, fn LocationFunc) *LocationIterator {
	return &LocationIterator{groupCount: groupCount, instanceCount: instanceCount, fn: fn}
}

// GroupCount returns the number of per-unit elements.
func (li *LocationIterator) GroupCount() int {
	return li.groupCount
}

// InstanceCount returns the number of units (symmetry copies).
func (li *LocationIterator) InstanceCount() int {
	return li.instanceCount
}

// Len returns the total number of slots.
func (li *LocationIterator) Len() int {
	return li.groupCount * li.instanceCount
}

// Reset rewinds the cursor to slot 0 without reallocating.
func (li *LocationIterator) Reset() {
	li.cur = 0
}

// Next returns the location of the next slot, or false when all
// slots are exhausted. The returned record is overwritten on the
// following call.
func (li *LocationIterator) Next() (*mol.Location, bool) {
	if li.cur >= li.Len() {
		return nil, false
	}
	g := li.cur % li.groupCount
	i := li.cur / li.groupCount
	li.fn(g, i, &li.loc)
	li.cur++
	return &li.loc, true
}

// Location resolves one slot by random access, for picking lookups.
// The returned record is shared with [LocationIterator.Next].
func (li *LocationIterator) Location(groupIndex, instanceIndex int) *mol.Location {
	li.fn(groupIndex, instanceIndex, &li.loc)
	return &li.loc
}
