// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import (
	"sync/atomic"

	"github.com/chewxy/math32"
)

var nextConformationID atomic.Uint64

// Conformation is one coordinate set for a structure's element table.
// Every Conformation gets a fresh ID, so two units share a
// conformation identity only when they share the same Conformation.
// Coordinate data must not be mutated after construction; a new frame
// gets a new Conformation.
type Conformation struct {

	// ID is the identity of this coordinate data, allocated
	// monotonically at construction.
	ID uint64

	// X, Y, Z are the coordinates, indexed by [ElementIndex].
	X, Y, Z []float32
}

// NewConformation returns a new [Conformation] over the given
// coordinate arrays, with a fresh identity.
func NewConformation(x, y, z []float32) *Conformation {
	return &Conformation{ID: nextConformationID.Add(1), X: x, Y: y, Z: z}
}

// Distance returns the distance between elements i and j.
func (cf *Conformation) Distance(i, j ElementIndex) float32 {
	dx := cf.X[i] - cf.X[j]
	dy := cf.Y[i] - cf.Y[j]
	dz := cf.Z[i] - cf.Z[j]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}
