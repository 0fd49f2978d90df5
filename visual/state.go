// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

// UpdateState is the scratch record of rebuild intents for one
// update pass. It is reset to all-false at the start of every pass
// and then selectively set by the universal diff rules and the
// builder's SetUpdateState hook; it never persists state between
// passes.
type UpdateState struct {

	// CreateGeometry rebuilds the geometry buffers.
	CreateGeometry bool

	// UpdateTransform rebuilds the location iterator, marker
	// buffer, and per-instance transforms.
	UpdateTransform bool

	// UpdateColor repaints the per-slot color buffer.
	UpdateColor bool

	// UpdateSize repaints the per-slot size buffer
	// (points and lines only).
	UpdateSize bool
}

// Reset zeroes all flags.
func (us *UpdateState) Reset() {
	*us = UpdateState{}
}
