// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visual implements the units-visual update/diffing engine:
// one [Visual] per (symmetry group, geometry kind) owns a render
// object and decides, on every property or data change, whether the
// geometry must be fully rebuilt, partially updated (colors, sizes,
// transforms), or left untouched, so that the render object always
// reflects the latest structural and styling state with minimal
// recomputation.
package visual

import (
	"context"
	"errors"
	"reflect"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/rs/zerolog"

	"cogentcore.org/molvis/geom"
	"cogentcore.org/molvis/mol"
	"cogentcore.org/molvis/render"
	"cogentcore.org/molvis/theme"
)

// ErrMissingGroup is returned by [Visual.CreateOrUpdate] when called
// with neither an existing nor a new structure group.
var ErrMissingGroup = errors.New("visual: no current or new structure group supplied")

var logger = zerolog.Nop()

// SetLogger sets the package logger used for update decision tracing
// at debug level. The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Visual is a units visual: it owns the current geometry, structural
// group, properties, and render object for one symmetry group, and
// implements the create/update decision protocol. CreateOrUpdate is
// not reentrant; callers must not issue a second call before the
// prior one returns.
type Visual struct {
	builder   Builder
	object    *render.Object
	group     *mol.SymmetryGroup
	structure *mol.Structure
	props     Props
	geometry  geom.Geometry

	locationIt     *LocationIterator
	conformationID uint64
	state          UpdateState

	// staging storage for update passes: spare holds the geometry
	// displaced by the last rebuild, the scratches the displaced
	// color and size buffers. They never alias committed cells, so
	// a failed pass cannot corrupt the displayed frame.
	spare        geom.Geometry
	colorScratch math32.ArrayF32
	sizeScratch  math32.ArrayF32
}

// New returns a new [Visual] using the given builder capabilities,
// with default properties and no render object until the first
// CreateOrUpdate.
func New(b Builder) *Visual {
	return &Visual{builder: b, props: DefaultProps()}
}

// RenderObject returns the owned render object, or nil before the
// first successful CreateOrUpdate and after Destroy.
func (vs *Visual) RenderObject() *render.Object {
	return vs.object
}

// State returns the update flags of the most recent update pass, for
// diagnostics and tests. The record is scratch state: it is reset at
// the start of every update pass.
func (vs *Visual) State() UpdateState {
	return vs.state
}

// CreateOrUpdate creates or incrementally updates the render object.
// On the very first call sg must be supplied; afterwards a nil sg
// updates against the current group. A nil props keeps the current
// properties. A new group with a different shape identity takes the
// full create path; a new group with the same shape identity is
// adopted in place (e.g., a new coordinate frame) and its
// conformation drives the geometry diff. On error, previously
// committed state is left intact.
func (vs *Visual) CreateOrUpdate(ctx context.Context, props *Props, sg *mol.StructureGroup) error {
	switch {
	case sg == nil && vs.group == nil:
		return ErrMissingGroup
	case sg != nil && (vs.group == nil || vs.object == nil):
		return vs.create(ctx, props, sg)
	case sg != nil && sg.Group.Hash != vs.group.Hash:
		return vs.create(ctx, props, sg)
	default:
		if sg != nil && sg.Group != vs.group {
			// same shape identity: adopt the new group before updating
			vs.group = sg.Group
			vs.structure = sg.Structure
		}
		return vs.update(ctx, props)
	}
}

func (vs *Visual) create(ctx context.Context, props *Props, sg *mol.StructureGroup) error {
	newProps := vs.props
	if props != nil {
		newProps = *props
	}
	theme.BindStructure(newProps.ColorTheme, sg.Structure)

	unit := sg.Group.Representative()
	g, err := vs.buildGeometry(ctx, unit, sg.Structure, &newProps, nil)
	if err != nil {
		return err
	}
	it := vs.builder.CreateLocationIterator(sg.Group)
	ob := render.CreateObject(vs.builder.Kind, g, it.GroupCount(), it.InstanceCount())
	render.CreateTransforms(sg.Group, &ob.Values)
	if vs.builder.Kind != geom.MeshKind {
		if err := theme.CreateSizes(ctx, it, newProps.SizeTheme, &ob.Values); err != nil {
			return err
		}
	}
	if err := theme.CreateColors(ctx, it, newProps.ColorTheme, &ob.Values); err != nil {
		return err
	}
	applyProps(ob, &newProps)

	logger.Debug().
		Uint32("object", ob.ID).
		Stringer("kind", vs.builder.Kind).
		Uint64("groupHash", sg.Group.Hash).
		Int("groups", it.GroupCount()).
		Int("instances", it.InstanceCount()).
		Msg("units visual create")

	vs.object = ob
	vs.geometry = g
	vs.locationIt = it
	vs.group = sg.Group
	vs.structure = sg.Structure
	vs.props = newProps
	vs.conformationID = unit.ConformationID()
	return nil
}

func (vs *Visual) update(ctx context.Context, props *Props) error {
	if vs.object == nil {
		return nil
	}
	newProps := vs.props
	if props != nil {
		newProps = *props
	}
	old := vs.props
	theme.BindStructure(newProps.ColorTheme, vs.structure)
	vs.locationIt.Reset()
	vs.state.Reset()
	st := &vs.state
	if vs.builder.SetUpdateState != nil {
		vs.builder.SetUpdateState(st, &newProps, &old)
	}

	unit := vs.group.Representative()
	if unit.ConformationID() != vs.conformationID {
		st.CreateGeometry = true
	}
	if vs.group.InstanceCount() != vs.locationIt.InstanceCount() {
		st.UpdateTransform = true
	}
	if !reflect.DeepEqual(newProps.SizeTheme, old.SizeTheme) {
		if vs.builder.Kind == geom.MeshKind {
			// mesh size is baked into the geometry, not a buffer
			st.CreateGeometry = true
		} else {
			st.UpdateSize = true
		}
	}
	if !reflect.DeepEqual(newProps.ColorTheme, old.ColorTheme) {
		st.UpdateColor = true
	}
	if !slices.Equal(newProps.UnitKinds, old.UnitKinds) {
		st.CreateGeometry = true
	}

	// Stage every fallible phase before touching any committed cell,
	// so a failed or canceled pass leaves the previous frame fully
	// intact: geometry builds into the spare, colors and sizes into
	// the scratches.
	var g geom.Geometry
	if st.CreateGeometry {
		var err error
		g, err = vs.buildGeometry(ctx, unit, vs.structure, &newProps, vs.spare)
		if err != nil {
			return err
		}
	}

	it := vs.locationIt
	if st.UpdateTransform {
		it = vs.builder.CreateLocationIterator(vs.group)
	} else if st.CreateGeometry {
		// a rebuild can change the per-unit slot count (e.g. a
		// bond-less trace crossing the chain-break cutoff), which
		// resizes markers, transforms, and theme buffers with it
		fresh := vs.builder.CreateLocationIterator(vs.group)
		if fresh.GroupCount() != it.GroupCount() {
			st.UpdateTransform = true
			it = fresh
		}
	}
	if st.UpdateTransform {
		st.UpdateColor = true
		if vs.builder.Kind != geom.MeshKind {
			st.UpdateSize = true
		}
	}
	if st.CreateGeometry {
		st.UpdateColor = true
	}

	logger.Debug().
		Uint32("object", vs.object.ID).
		Bool("createGeometry", st.CreateGeometry).
		Bool("updateTransform", st.UpdateTransform).
		Bool("updateSize", st.UpdateSize).
		Bool("updateColor", st.UpdateColor).
		Msg("units visual update")

	var sizes, colors math32.ArrayF32
	if st.UpdateSize && vs.builder.Kind != geom.MeshKind {
		var err error
		sizes, err = theme.Sizes(ctx, it, newProps.SizeTheme, vs.sizeScratch)
		if err != nil {
			return err
		}
	}
	if st.UpdateColor {
		var err error
		colors, err = theme.Colors(ctx, it, newProps.ColorTheme, vs.colorScratch)
		if err != nil {
			return err
		}
	}

	// Commit; nothing below can fail. The displaced buffers become
	// the staging storage for the next pass.
	vals := &vs.object.Values
	if st.UpdateTransform {
		vs.locationIt = it
		render.CreateMarkers(it.Len(), vals)
		vals.GroupCount.Set(it.GroupCount())
		render.CreateTransforms(vs.group, vals)
	}
	if st.CreateGeometry {
		render.SetGeometry(vals, g)
		vs.spare = vs.geometry
		vs.geometry = g
		vs.conformationID = unit.ConformationID()
	}
	if st.UpdateSize && vs.builder.Kind != geom.MeshKind {
		vs.sizeScratch = vals.Size.Value()
		vals.Size.Set(sizes)
	}
	if st.UpdateColor {
		vs.colorScratch = vals.Color.Value()
		vals.Color.Set(colors)
	}
	applyProps(vs.object, &newProps)
	vs.props = newProps
	return nil
}

// buildGeometry synthesizes geometry for the unit, substituting the
// canonical empty geometry when the unit's kind is excluded by the
// UnitKinds filter.
func (vs *Visual) buildGeometry(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error) {
	if !p.kindAllowed(u.Kind) {
		return geom.Empty(vs.builder.Kind), nil
	}
	if prev == geom.Empty(vs.builder.Kind) {
		prev = nil
	}
	return vs.builder.CreateGeometry(ctx, u, st, p, prev)
}

func applyProps(ob *render.Object, p *Props) {
	if ob.Values.Alpha.Value() != p.Alpha {
		ob.Values.Alpha.Set(p.Alpha)
	}
	ob.State.Visible = p.Visible
	ob.State.Pickable = p.Pickable
	ob.State.DoubleSided = p.DoubleSided
	ob.State.Opaque = p.Alpha >= 1
}

// Loci resolves a picking id to the loci it addresses, returning the
// empty loci when there is no render object or the id does not
// belong to it.
func (vs *Visual) Loci(pid render.PickingID) mol.Loci {
	if vs.object == nil || pid.ObjectID != vs.object.ID {
		return mol.EmptyLoci{}
	}
	sg := &mol.StructureGroup{Structure: vs.structure, Group: vs.group}
	return vs.builder.Loci(pid, sg, vs.object.ID)
}

// Mark applies the marker action to all slots addressed by the loci,
// returning whether any marker byte changed; only then is the marker
// cell version bumped for re-upload. The every-location loci applies
// over the full slot range.
func (vs *Visual) Mark(lc mol.Loci, action render.Action) bool {
	if vs.object == nil {
		return false
	}
	markers := vs.object.Values.Marker.Value()
	changed := false
	if mol.IsEvery(lc) {
		changed = render.ApplyAction(markers, action, 0, vs.locationIt.Len())
	} else {
		sg := &mol.StructureGroup{Structure: vs.structure, Group: vs.group}
		apply := func(start, end int) bool {
			return render.ApplyAction(markers, action, start, end)
		}
		changed = vs.builder.Mark(lc, sg, apply)
	}
	if changed {
		vs.object.Values.Marker.Touch()
	}
	return changed
}

// Destroy releases the render object reference. Freeing the GPU
// resources is the upload layer's responsibility. Destroy is
// idempotent; other operations after Destroy are undefined.
func (vs *Visual) Destroy() {
	vs.object = nil
	vs.geometry = nil
	vs.locationIt = nil
	vs.spare = nil
	vs.colorScratch = nil
	vs.sizeScratch = nil
}
