// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationIterator(t *testing.T) {
	_, sg := testGroup(2, 3)
	it := elementLocationIterator(sg.Group)
	assert.Equal(t, 3, it.GroupCount())
	assert.Equal(t, 2, it.InstanceCount())
	assert.Equal(t, 6, it.Len())

	// group index varies fastest, matching the flat marker layout
	var gotUnits []int
	var gotIndexes []int
	for loc, ok := it.Next(); ok; loc, ok = it.Next() {
		gotUnits = append(gotUnits, loc.Unit.ID)
		gotIndexes = append(gotIndexes, loc.Index)
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, gotUnits)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, gotIndexes)

	_, ok := it.Next()
	assert.False(t, ok, "exhausted")

	it.Reset()
	loc, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 0, loc.Index)

	loc = it.Location(2, 1)
	assert.Equal(t, 1, loc.Unit.ID)
	assert.Equal(t, 2, loc.Index)
	assert.Equal(t, sg.Group.Units[1].Elements[2], loc.Element)
}

func TestUpdateStateReset(t *testing.T) {
	us := UpdateState{CreateGeometry: true, UpdateColor: true, UpdateSize: true, UpdateTransform: true}
	us.Reset()
	assert.Equal(t, UpdateState{}, us)
}
