// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

// Location is one resolved (unit, element) pair produced by a
// location iterator slot. Iterators reuse one Location record and
// overwrite it in place per slot, so callers must not retain it
// across calls.
type Location struct {

	// Unit is the unit the location belongs to.
	Unit *Unit

	// Element is the structure-level element index.
	Element ElementIndex

	// Index is the element index within the unit.
	Index int
}
