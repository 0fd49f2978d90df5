// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import (
	"cogentcore.org/core/math32"
)

// ElementIndex is an index into a [Structure]'s element (atom) table.
type ElementIndex int32

// Kind is the kind of coarse-graining of a [Unit]'s elements.
type Kind int32

const (
	// Atomic units have one element per atom.
	Atomic Kind = iota

	// Spheres units have one representative sphere per residue
	// or other coarse-grained element.
	Spheres

	// Gaussians units have one gaussian density element per
	// coarse-grained element.
	Gaussians

	KindN
)

var kindNames = [KindN]string{"Atomic", "Spheres", "Gaussians"}

func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return "Kind(invalid)"
	}
	return kindNames[k]
}

// AllKinds lists every [Kind], for use as a default kind filter.
func AllKinds() []Kind {
	return []Kind{Atomic, Spheres, Gaussians}
}

// Unit is an immutable reference to a subset of a [Structure]'s
// elements sharing one coordinate frame. Units in the same
// [SymmetryGroup] share the Elements layout and conformation and
// differ only by Transform.
type Unit struct {

	// ID is the unique id of this unit within its structure.
	ID int

	// Kind is the coarse-graining kind of this unit's elements.
	Kind Kind

	// Elements are the structure-level element indices of this
	// unit, sorted ascending.
	Elements []ElementIndex

	// Conf holds the coordinate data for the unit's elements.
	Conf *Conformation

	// Transform is the spatial (symmetry) transform placing this
	// unit's coordinates in the structure frame.
	Transform math32.Matrix4

	// Bonds are optional unit-local element index pairs,
	// used for bond-based geometry such as lines.
	Bonds [][2]int
}

// NewUnit returns a new [Unit] with an identity transform.
// elements must be sorted ascending.
func NewUnit(id int, kind Kind, elements []ElementIndex, conf *Conformation) *Unit {
	return &Unit{ID: id, Kind: kind, Elements: elements, Conf: conf, Transform: *math32.Identity4()}
}

// Len returns the number of elements in the unit.
func (u *Unit) Len() int {
	return len(u.Elements)
}

// Position returns the untransformed model position of the unit's
// i-th element.
func (u *Unit) Position(i int) math32.Vector3 {
	e := u.Elements[i]
	return math32.Vec3(u.Conf.X[e], u.Conf.Y[e], u.Conf.Z[e])
}

// ConformationID returns the identity of the unit's coordinate data.
// It changes whenever the underlying coordinates change (e.g., a new
// trajectory frame), even if the element layout is identical.
func (u *Unit) ConformationID() uint64 {
	return u.Conf.ID
}
