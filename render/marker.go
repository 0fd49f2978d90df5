// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "cogentcore.org/core/base/slicesx"

// Marker bit state per (group, instance) slot.
const (
	// MarkerHighlight is the highlight bit of a marker byte.
	MarkerHighlight byte = 1 << iota

	// MarkerSelect is the select bit of a marker byte.
	MarkerSelect
)

// Action is a marker action applied over slot intervals.
type Action int32

const (
	// Highlight sets the highlight bit.
	Highlight Action = iota

	// RemoveHighlight clears the highlight bit.
	RemoveHighlight

	// Select sets the select bit.
	Select

	// Deselect clears the select bit.
	Deselect

	// ClearMarks clears all bits.
	ClearMarks

	ActionN
)

var actionNames = [ActionN]string{"Highlight", "RemoveHighlight", "Select", "Deselect", "ClearMarks"}

func (a Action) String() string {
	if a < 0 || a >= ActionN {
		return "Action(invalid)"
	}
	return actionNames[a]
}

// CreateMarkers (re)allocates the marker buffer to the given total
// slot count and zeroes it, reusing backing storage when it has
// capacity.
func CreateMarkers(total int, vals *Values) {
	mk := slicesx.SetLength(vals.Marker.Value(), total)
	for i := range mk {
		mk[i] = 0
	}
	vals.Marker.Set(mk)
}

// ApplyAction applies the action to markers over [start, end) and
// returns whether any byte actually changed. Callers use the result
// to skip redundant GPU re-uploads.
func ApplyAction(markers []byte, action Action, start, end int) bool {
	changed := false
	for i := start; i < end; i++ {
		m := markers[i]
		switch action {
		case Highlight:
			m |= MarkerHighlight
		case RemoveHighlight:
			m &^= MarkerHighlight
		case Select:
			m |= MarkerSelect
		case Deselect:
			m &^= MarkerSelect
		case ClearMarks:
			m = 0
		}
		if m != markers[i] {
			markers[i] = m
			changed = true
		}
	}
	return changed
}
