// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/oasis/mesh"
)

// twoCellStrip builds two adjacent unit-square cells sharing one face, with
// Dirichlet boundaries at the left and right ends so a linear scalar field
// has a known constant gradient.
func twoCellStrip() *mesh.Grid {
	nodes := []mesh.NodeInput{
		{Id: 0, X: 0, Y: 0}, {Id: 1, X: 1, Y: 0}, {Id: 2, X: 1, Y: 1}, {Id: 3, X: 0, Y: 1},
		{Id: 4, X: 2, Y: 0}, {Id: 5, X: 2, Y: 1},
	}
	faces := []mesh.FaceInput{
		{Id: 0, NodeIds: []int{0, 1}},
		{Id: 1, NodeIds: []int{1, 2}},
		{Id: 2, NodeIds: []int{2, 3}},
		{Id: 3, NodeIds: []int{3, 0}},
		{Id: 4, NodeIds: []int{1, 4}},
		{Id: 5, NodeIds: []int{4, 5}},
		{Id: 6, NodeIds: []int{5, 2}},
	}
	cells := []mesh.CellInput{
		{Id: 0, FaceIds: []int{0, 1, 2, 3}},
		{Id: 1, FaceIds: []int{4, 5, 6, 1}},
	}
	g, err := mesh.Activate(nodes, faces, cells)
	if err != nil {
		panic(err)
	}
	return g
}

func TestGradOfLinearFieldIsConstant(tst *testing.T) {
	chk.PrintTitle("FvcGrad01 on a linear scalar field across two cells")

	g := twoCellStrip()
	source := NewField("phi", Scalar)
	source.SetScalar(0, 0.5) // value at x=0.5 (cell 0 centroid)
	source.SetScalar(1, 1.5) // value at x=1.5 (cell 1 centroid), slope = 1 in x

	// The field varies only in x (phi=x), so a zero-flux Neumann default is
	// exact for the top/bottom boundary faces; the left/right end faces
	// need the true analytic value to keep the Green-Gauss gradient exact.
	bounds := NewBoundarySet()
	bounds.Default = BoundaryCondition{Kind: BCNeumann, Flux: ConstantFunc(0)}
	bounds.Set(3, BoundaryCondition{Kind: BCDirichlet, Value: ConstantFunc(0)}) // left face, x=0
	bounds.Set(5, BoundaryCondition{Kind: BCDirichlet, Value: ConstantFunc(2)}) // right face, x=2

	output := NewField("gradPhi", Vector3)

	op, err := New("FvcGrad01")
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	grad := op.(*GradOperator)
	grad.SetSource(source)
	grad.Configure(g, output, Coefficient{}, bounds, nil)

	if diags := grad.Validate(); len(diags) > 0 {
		tst.Fatalf("unexpected validation diagnostics: %v", diags)
	}
	if err := grad.Process(); err != nil {
		tst.Fatalf("Process failed: %v", err)
	}

	g0 := output.Vector(0)
	chk.Scalar(tst, "dphi/dx at cell 0", 1e-6, g0[0], 1.0)
}
