// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// PickingID identifies one picked (group, instance) slot of one
// render object, as decoded from the picking pass by the external
// GPU layer.
type PickingID struct {

	// ObjectID is the [Object.ID] of the picked object.
	ObjectID uint32

	// InstanceID is the instance (symmetry copy) index.
	InstanceID uint32

	// GroupID is the group (per-unit element) index.
	GroupID uint32
}
