// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"context"
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/molvis/base/progress"
	"cogentcore.org/molvis/geom"
	"cogentcore.org/molvis/mol"
	"cogentcore.org/molvis/render"
	"cogentcore.org/molvis/theme"
)

// testGroup returns a structure with nUnits symmetry copies of one
// nElems-element unit, and its structure group.
func testGroup(nUnits, nElems int) (*mol.Structure, *mol.StructureGroup) {
	x := make([]float32, nElems)
	y := make([]float32, nElems)
	z := make([]float32, nElems)
	elems := make([]mol.ElementIndex, nElems)
	for i := range nElems {
		x[i] = float32(i)
		elems[i] = mol.ElementIndex(i)
	}
	cf := mol.NewConformation(x, y, z)
	units := make([]*mol.Unit, nUnits)
	for i := range nUnits {
		units[i] = mol.NewUnit(i, mol.Atomic, elems, cf)
	}
	st := mol.NewStructure(nElems, units...)
	return st, &mol.StructureGroup{Structure: st, Group: st.SymmetryGroups()[0]}
}

// sameLayoutGroup returns a new structure group with the same unit
// ids and element layout as testGroup(nUnits, nElems) but a fresh
// conformation (same shape hash, new conformation id).
func sameLayoutGroup(nUnits, nElems int) *mol.StructureGroup {
	_, sg := testGroup(nUnits, nElems)
	return sg
}

func TestMissingGroup(t *testing.T) {
	vs := New(PointsBuilder())
	err := vs.CreateOrUpdate(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingGroup)
	assert.Nil(t, vs.RenderObject())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(2, 4)
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sg))

	ob := vs.RenderObject()
	assert.NotNil(t, ob)
	assert.Equal(t, geom.PointsKind, ob.Kind)
	assert.Equal(t, 4, ob.Values.GroupCount.Value())
	assert.Equal(t, 2, ob.Values.InstanceCount.Value())
	assert.Equal(t, 4, ob.Values.DrawCount.Value())
	assert.Len(t, ob.Values.Marker.Value(), 8)
	assert.Len(t, ob.Values.Transform.Value(), 2)
	assert.Len(t, ob.Values.Color.Value(), 8*4)
	assert.Len(t, ob.Values.Size.Value(), 8)
	assert.True(t, ob.State.Visible)
}

// Identical inputs after a successful create produce no rebuild
// and no observable buffer changes.
func TestIdempotence(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(2, 4)
	props := DefaultProps()
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, &props, sg))

	ob := vs.RenderObject()
	versions := cellVersions(ob)
	assert.NoError(t, vs.CreateOrUpdate(ctx, &props, sg))

	assert.Same(t, ob, vs.RenderObject(), "update path keeps object identity")
	assert.Equal(t, UpdateState{}, vs.State(), "no flags set")
	assert.Equal(t, versions, cellVersions(ob), "no buffer changes")
}

func cellVersions(ob *render.Object) map[string]uint64 {
	v := &ob.Values
	return map[string]uint64{
		"position":  v.Position.Version(),
		"color":     v.Color.Version(),
		"size":      v.Size.Version(),
		"transform": v.Transform.Version(),
		"marker":    v.Marker.Version(),
		"drawCount": v.DrawCount.Version(),
		"alpha":     v.Alpha.Version(),
	}
}

// A group with a different shape hash always takes the create
// path.
func TestShapeChangeForcesCreate(t *testing.T) {
	ctx := context.Background()
	_, sgA := testGroup(2, 4)
	_, sgB := testGroup(2, 5)
	assert.NotEqual(t, sgA.Group.Hash, sgB.Group.Hash)

	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgA))
	a := vs.RenderObject()
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgB))
	b := vs.RenderObject()

	assert.NotEqual(t, a.ID, b.ID, "create path allocates a new object")
	assert.Equal(t, 5, b.Values.GroupCount.Value())
	assert.Len(t, b.Values.Marker.Value(), 10)
}

// Same shape hash, new conformation: update path with a geometry
// rebuild and unchanged instance count.
func TestConformationChange(t *testing.T) {
	ctx := context.Background()
	_, sgA := testGroup(2, 4)
	sgB := sameLayoutGroup(2, 4)
	assert.Equal(t, sgA.Group.Hash, sgB.Group.Hash)

	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgA))
	ob := vs.RenderObject()

	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgB))
	assert.Same(t, ob, vs.RenderObject(), "same shape keeps the object")
	assert.True(t, vs.State().CreateGeometry)
	assert.False(t, vs.State().UpdateTransform)
	assert.Equal(t, 2, ob.Values.InstanceCount.Value())
}

// An instance count change resizes the marker buffer to the new
// groupCount*instanceCount.
func TestInstanceCountChange(t *testing.T) {
	ctx := context.Background()
	_, sgA := testGroup(2, 4)
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgA))

	sgB := &mol.StructureGroup{
		Structure: sgA.Structure,
		Group:     mol.NewSymmetryGroup(append([]*mol.Unit{}, sgA.Group.Units[0], sgA.Group.Units[1], mol.NewUnit(2, mol.Atomic, sgA.Group.Units[0].Elements, sgA.Group.Units[0].Conf))...),
	}
	assert.Equal(t, sgA.Group.Hash, sgB.Group.Hash)

	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgB))
	ob := vs.RenderObject()
	assert.True(t, vs.State().UpdateTransform)
	assert.Len(t, ob.Values.Marker.Value(), 12)
	assert.Len(t, ob.Values.Transform.Value(), 3)
	assert.Equal(t, 3, ob.Values.InstanceCount.Value())
	assert.Len(t, ob.Values.Size.Value(), 12, "size buffer follows the new counts")
	assert.Len(t, ob.Values.Color.Value(), 48, "color buffer follows the new counts")
}

func TestColorThemeChange(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(2, 4)
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sg))
	ob := vs.RenderObject()
	cv := ob.Values.Color.Version()
	pv := ob.Values.Position.Version()

	props := DefaultProps()
	props.ColorTheme = theme.UniformColor{Value: color.RGBA{R: 255, A: 255}}
	assert.NoError(t, vs.CreateOrUpdate(ctx, &props, nil))

	assert.True(t, vs.State().UpdateColor)
	assert.False(t, vs.State().CreateGeometry)
	assert.Greater(t, ob.Values.Color.Version(), cv)
	assert.Equal(t, pv, ob.Values.Position.Version(), "geometry untouched")
}

func TestSizeThemeChange(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(1, 4)

	// points: size is a separate buffer
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sg))
	props := DefaultProps()
	props.SizeTheme = theme.UniformSize{Value: 2}
	assert.NoError(t, vs.CreateOrUpdate(ctx, &props, nil))
	assert.True(t, vs.State().UpdateSize)
	assert.False(t, vs.State().CreateGeometry)
	assert.Equal(t, float32(2), vs.RenderObject().Values.Size.Value()[0])

	// mesh: size is baked into the geometry
	vm := New(MeshBuilder())
	assert.NoError(t, vm.CreateOrUpdate(ctx, nil, sg))
	assert.NoError(t, vm.CreateOrUpdate(ctx, &props, nil))
	assert.True(t, vm.State().CreateGeometry)
	assert.False(t, vm.State().UpdateSize)
}

// unitKinds filter: an excluded representative kind yields the
// canonical empty geometry and never invokes geometry synthesis.
func TestUnitKindsFilter(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(2, 4)
	for _, u := range sg.Group.Units {
		u.Kind = mol.Spheres
	}
	sg.Group.Hash = mol.NewSymmetryGroup(sg.Group.Units...).Hash

	b := MeshBuilder()
	called := false
	inner := b.CreateGeometry
	b.CreateGeometry = func(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error) {
		called = true
		return inner(ctx, u, st, p, prev)
	}

	props := DefaultProps()
	props.UnitKinds = []mol.Kind{mol.Atomic}
	vs := New(b)
	assert.NoError(t, vs.CreateOrUpdate(ctx, &props, sg))

	assert.False(t, called, "builder must not be invoked for filtered kinds")
	assert.Equal(t, 0, vs.RenderObject().Values.DrawCount.Value())

	// widening the filter rebuilds real geometry
	props.UnitKinds = mol.AllKinds()
	assert.NoError(t, vs.CreateOrUpdate(ctx, &props, nil))
	assert.True(t, called)
	assert.True(t, vs.State().CreateGeometry)
	assert.Greater(t, vs.RenderObject().Values.DrawCount.Value(), 0)
}

// A failed rebuild leaves the previously committed object intact.
func TestBuilderFailureKeepsCommittedState(t *testing.T) {
	ctx := context.Background()
	_, sgA := testGroup(2, 4)
	sgB := sameLayoutGroup(2, 4)

	b := PointsBuilder()
	fail := false
	inner := b.CreateGeometry
	b.CreateGeometry = func(ctx context.Context, u *mol.Unit, st *mol.Structure, p *Props, prev geom.Geometry) (geom.Geometry, error) {
		if fail {
			return nil, fmt.Errorf("synthesize points: malformed unit %d", u.ID)
		}
		return inner(ctx, u, st, p, prev)
	}

	vs := New(b)
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sgA))
	ob := vs.RenderObject()
	dv := ob.Values.DrawCount.Version()
	cv := ob.Values.Color.Version()

	fail = true
	err := vs.CreateOrUpdate(ctx, nil, sgB)
	assert.Error(t, err)
	assert.Same(t, ob, vs.RenderObject(), "stale-but-valid object stays")
	assert.Equal(t, dv, ob.Values.DrawCount.Version())
	assert.Equal(t, cv, ob.Values.Color.Version())

	// retry succeeds and performs the pending rebuild
	fail = false
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, nil))
	assert.True(t, vs.State().CreateGeometry)
}

// A pass canceled after the geometry phase but before the color
// phase must not commit anything: no cell version moves, and the
// retry still sees the conformation change and repaints.
func TestCanceledUpdateKeepsCommittedState(t *testing.T) {
	_, sgA := testGroup(2, 4)
	sgB := sameLayoutGroup(2, 4)
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(context.Background(), nil, sgA))
	ob := vs.RenderObject()
	versions := cellVersions(ob)

	// the first checkpoint of the pass is the points build, the
	// second the color staging; cancel between them
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := 0
	ctx = progress.WithReporter(ctx, func(done, total int) {
		n++
		if n == 1 {
			cancel()
		}
	})
	err := vs.CreateOrUpdate(ctx, nil, sgB)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, versions, cellVersions(ob), "canceled pass commits nothing")

	assert.NoError(t, vs.CreateOrUpdate(context.Background(), nil, nil))
	assert.True(t, vs.State().CreateGeometry, "retry still sees the conformation change")
	assert.Greater(t, ob.Values.Color.Version(), versions["color"], "retry repaints")
	assert.Greater(t, ob.Values.Position.Version(), versions["position"])
}

func TestCanceledCreate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, sg := testGroup(2, 4)
	vs := New(PointsBuilder())
	err := vs.CreateOrUpdate(ctx, nil, sg)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, vs.RenderObject())
}

func TestLoci(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(2, 4)
	vs := New(PointsBuilder())

	assert.True(t, mol.IsEmpty(vs.Loci(render.PickingID{})), "no object yet")

	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sg))
	ob := vs.RenderObject()

	lc := vs.Loci(render.PickingID{ObjectID: ob.ID, InstanceID: 1, GroupID: 2})
	el, ok := lc.(mol.ElementLoci)
	assert.True(t, ok)
	assert.Same(t, sg.Group.Units[1], el.Elements[0].Unit)
	assert.Equal(t, []mol.ElementIndex{2}, el.Elements[0].Indices)

	assert.True(t, mol.IsEmpty(vs.Loci(render.PickingID{ObjectID: ob.ID + 1})), "foreign object id")
	assert.True(t, mol.IsEmpty(vs.Loci(render.PickingID{ObjectID: ob.ID, GroupID: 99})))
}

func TestDestroy(t *testing.T) {
	ctx := context.Background()
	_, sg := testGroup(1, 2)
	vs := New(PointsBuilder())
	assert.NoError(t, vs.CreateOrUpdate(ctx, nil, sg))
	assert.NotNil(t, vs.RenderObject())

	vs.Destroy()
	assert.Nil(t, vs.RenderObject())
	vs.Destroy() // idempotent
	assert.False(t, vs.Mark(mol.EveryLoci{}, render.Highlight))
}
