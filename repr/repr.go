// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repr composes units visuals into whole-structure
// representations: a [Representation] owns one [visual.Visual] per
// symmetry group of the structure and fans every operation out over
// them, adding and retiring visuals as groups appear and vanish
// between updates.
package repr

import (
	"context"

	"cogentcore.org/core/base/ordmap"

	"cogentcore.org/molvis/mol"
	"cogentcore.org/molvis/render"
	"cogentcore.org/molvis/visual"
)

// Representation renders one structure with one geometry style. It
// keys its visuals by the symmetry groups' shape hashes, in the order
// the groups first appeared, so render objects enumerate stably
// across updates.
type Representation struct {
	newBuilder func() visual.Builder
	structure  *mol.Structure
	visuals    ordmap.Map[uint64, *visual.Visual]
}

// New returns a new [Representation] producing one visual per
// symmetry group from the given builder factory, e.g.
// [visual.MeshBuilder] for a spacefill representation.
func New(newBuilder func() visual.Builder) *Representation {
	return &Representation{newBuilder: newBuilder}
}

// Len returns the number of visuals (symmetry groups) currently held.
func (re *Representation) Len() int {
	return re.visuals.Len()
}

// CreateOrUpdate creates or updates the visuals of all symmetry
// groups of the structure. On the first call st must be supplied;
// afterwards a nil st updates against the current structure, and a
// nil props keeps the current properties, exactly as for a single
// [visual.Visual]. Visuals whose group vanished from the structure
// are destroyed and dropped. On error the already updated visuals
// keep their new state and the rest keep their previous state.
func (re *Representation) CreateOrUpdate(ctx context.Context, props *visual.Props, st *mol.Structure) error {
	if st != nil {
		re.structure = st
	}
	if re.structure == nil {
		return visual.ErrMissingGroup
	}
	groups := re.structure.SymmetryGroups()
	live := make(map[uint64]bool, len(groups))
	for _, g := range groups {
		live[g.Hash] = true
		vs, ok := re.visuals.ValueByKeyTry(g.Hash)
		if !ok {
			vs = visual.New(re.newBuilder())
			re.visuals.Add(g.Hash, vs)
		}
		sg := &mol.StructureGroup{Structure: re.structure, Group: g}
		if err := vs.CreateOrUpdate(ctx, props, sg); err != nil {
			return err
		}
	}
	for _, key := range re.visuals.Keys() {
		if live[key] {
			continue
		}
		re.visuals.ValueByKey(key).Destroy()
		re.visuals.DeleteKey(key)
	}
	return nil
}

// RenderObjects returns the render objects of all visuals, in stable
// group order, for the upload layer to walk.
func (re *Representation) RenderObjects() []*render.Object {
	obs := make([]*render.Object, 0, re.visuals.Len())
	for _, kv := range re.visuals.Order {
		if ob := kv.Value.RenderObject(); ob != nil {
			obs = append(obs, ob)
		}
	}
	return obs
}

// Loci resolves a picking id against all visuals, returning the first
// non-empty loci; object ids are unique, so at most one visual
// matches.
func (re *Representation) Loci(pid render.PickingID) mol.Loci {
	for _, kv := range re.visuals.Order {
		if lc := kv.Value.Loci(pid); !mol.IsEmpty(lc) {
			return lc
		}
	}
	return mol.EmptyLoci{}
}

// Mark applies the marker action to every visual, returning whether
// any of them changed.
func (re *Representation) Mark(lc mol.Loci, action render.Action) bool {
	changed := false
	for _, kv := range re.visuals.Order {
		if kv.Value.Mark(lc, action) {
			changed = true
		}
	}
	return changed
}

// Destroy destroys all visuals and resets the representation.
func (re *Representation) Destroy() {
	for _, kv := range re.visuals.Order {
		kv.Value.Destroy()
	}
	re.visuals.Reset()
	re.structure = nil
}
