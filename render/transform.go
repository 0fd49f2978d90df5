// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/base/slicesx"

	"cogentcore.org/molvis/mol"
)

// CreateTransforms writes one transform matrix per instance of the
// group into the Transform cell, along with the instance count,
// reusing backing storage when it has capacity.
func CreateTransforms(group *mol.SymmetryGroup, vals *Values) {
	xf := slicesx.SetLength(vals.Transform.Value(), group.InstanceCount())
	for i, u := range group.Units {
		xf[i] = u.Transform
	}
	vals.Transform.Set(xf)
	vals.InstanceCount.Set(group.InstanceCount())
}
