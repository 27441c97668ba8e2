// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/oasis/geom"
)

type simpleValueSet struct {
	rows [][]float64
}

func (v *simpleValueSet) NumTimes() int          { return len(v.rows) }
func (v *simpleValueSet) Row(t int) []float64    { return v.rows[t] }
func (v *simpleValueSet) SetRow(t int, r []float64) { v.rows[t] = r }
func (v *simpleValueSet) NewLike(cols int) ValueSet2D {
	rows := make([][]float64, len(v.rows))
	for i := range rows {
		rows[i] = make([]float64, cols)
	}
	return &simpleValueSet{rows: rows}
}

func pointElement(id string, x, y float64) *Element {
	return &Element{Id: id, Verts: []geom.Coordinate{{X: x, Y: y}}}
}

func polygonElement(id string, pts [][2]float64) *Element {
	verts := make([]geom.Coordinate, len(pts))
	for i, p := range pts {
		verts[i] = geom.Coordinate{X: p[0], Y: p[1]}
	}
	return &Element{Id: id, Verts: verts}
}

func Test_mapper_pointPointIdentity(tst *testing.T) {
	chk.PrintTitle("mapper_pointPointIdentity")
	set := &ElementSet{Id: "pts", Type: Point, Elements: []*Element{
		pointElement("p0", 0, 0),
		pointElement("p1", 1, 0),
		pointElement("p2", 2, 0),
	}}
	mp := NewMapper()
	err := mp.Initialize(Nearest, set, set)
	if err != nil {
		tst.Fatalf("initialize failed: %v", err)
	}
	for i := 0; i < mp.Rows(); i++ {
		for j := 0; j < mp.Cols(); j++ {
			v, _ := mp.GetValueFromMappingMatrix(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "M[i][j]", 1e-12, v, want)
		}
	}
}

func Test_mapper_pointToPolygonMean(tst *testing.T) {
	chk.PrintTitle("mapper_pointToPolygonMean")
	src := &ElementSet{Id: "src", Type: Point, Elements: []*Element{
		pointElement("a", 0.25, 0.25),
		pointElement("b", 0.75, 0.75),
	}}
	tgt := &ElementSet{Id: "tgt", Type: Polygon, Elements: []*Element{
		polygonElement("sq", [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}),
	}}
	mp := NewMapper()
	if err := mp.Initialize(Mean, src, tgt); err != nil {
		tst.Fatalf("initialize failed: %v", err)
	}
	v0, _ := mp.GetValueFromMappingMatrix(0, 0)
	v1, _ := mp.GetValueFromMappingMatrix(0, 1)
	chk.Scalar(tst, "M[0][0]", 1e-12, v0, 0.5)
	chk.Scalar(tst, "M[0][1]", 1e-12, v1, 0.5)

	vs := &simpleValueSet{rows: [][]float64{{4, 6}}}
	out, err := mp.MapValues(vs)
	if err != nil {
		tst.Fatalf("mapValues failed: %v", err)
	}
	chk.Scalar(tst, "mapped value", 1e-12, out.Row(0)[0], 5.0)
}

func Test_mapper_polygonDistribute(tst *testing.T) {
	chk.PrintTitle("mapper_polygonDistribute")
	src := &ElementSet{Id: "src", Type: Polygon, Elements: []*Element{
		polygonElement("big", [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}),
	}}
	tgt := &ElementSet{Id: "tgt", Type: Polygon, Elements: []*Element{
		polygonElement("small", [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}),
	}}
	mp := NewMapper()
	if err := mp.Initialize(Distribute, src, tgt); err != nil {
		tst.Fatalf("initialize failed: %v", err)
	}
	v, _ := mp.GetValueFromMappingMatrix(0, 0)
	chk.Scalar(tst, "M[0][0]", 1e-6, v, 0.25)

	vs := &simpleValueSet{rows: [][]float64{{8}}}
	out, err := mp.MapValues(vs)
	if err != nil {
		tst.Fatalf("mapValues failed: %v", err)
	}
	chk.Scalar(tst, "mapped value", 1e-6, out.Row(0)[0], 2.0)
}

func Test_mapper_notImplemented(tst *testing.T) {
	chk.PrintTitle("mapper_notImplemented")
	pl := &ElementSet{Id: "pl", Type: Polyline, Elements: []*Element{
		{Id: "l0", Verts: []geom.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}}
	mp := NewMapper()
	err := mp.Initialize(WeightedMean, pl, pl)
	if err == nil {
		tst.Errorf("expected Polyline->Polyline to fail")
	}
}

func Test_mapper_bounds(tst *testing.T) {
	chk.PrintTitle("mapper_bounds")
	set := &ElementSet{Id: "pts", Type: Point, Elements: []*Element{
		pointElement("p0", 0, 0),
	}}
	mp := NewMapper()
	if err := mp.Initialize(Nearest, set, set); err != nil {
		tst.Fatalf("initialize failed: %v", err)
	}
	_, err := mp.GetValueFromMappingMatrix(5, 5)
	if err == nil {
		tst.Errorf("expected bounds error")
	}
	if _, ok := err.(*BoundsError); !ok {
		tst.Errorf("expected *BoundsError, got %T", err)
	}
}
