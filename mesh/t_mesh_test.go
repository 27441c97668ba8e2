// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestBoundaryFaceOfTwoCells(tst *testing.T) {
	chk.PrintTitle("shared face between two unit-square cells is interior")

	nodes := []NodeInput{
		{Id: 0, X: 0, Y: 0},
		{Id: 1, X: 1, Y: 0},
		{Id: 2, X: 1, Y: 1},
		{Id: 3, X: 0, Y: 1},
		{Id: 4, X: 2, Y: 0},
		{Id: 5, X: 2, Y: 1},
	}
	faces := []FaceInput{
		{Id: 0, NodeIds: []int{0, 1}},
		{Id: 1, NodeIds: []int{1, 2}}, // shared
		{Id: 2, NodeIds: []int{2, 3}},
		{Id: 3, NodeIds: []int{3, 0}},
		{Id: 4, NodeIds: []int{1, 4}},
		{Id: 5, NodeIds: []int{4, 5}},
		{Id: 6, NodeIds: []int{5, 2}},
	}
	cells := []CellInput{
		{Id: 0, FaceIds: []int{0, 1, 2, 3}},
		{Id: 1, FaceIds: []int{4, 5, 6, 1}},
	}
	g, err := Activate(nodes, faces, cells)
	if err != nil {
		tst.Fatalf("Activate failed: %v", err)
	}
	shared := g.face(1)
	if len(shared.Cells) != 2 {
		tst.Fatalf("expected face 1 to border 2 cells, got %d", len(shared.Cells))
	}
	chk.Ints(tst, "boundary face count", []int{len(g.BoundaryFaces())}, []int{6})
	if g.cell(0).Neighbors[1] != 1 {
		tst.Fatalf("cell 0's neighbor across face 1 should be cell 1, got %d", g.cell(0).Neighbors[1])
	}
}
