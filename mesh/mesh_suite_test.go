// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cpmech/oasis/mesh"
)

func TestMesh(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "mesh suite")
}

// unitSquare builds the 2-D single-cell grid used throughout this suite:
// one quad cell bounded by 4 two-node faces around the unit square.
func unitSquare() (*mesh.Grid, error) {
	nodes := []mesh.NodeInput{
		{Id: 0, X: 0, Y: 0},
		{Id: 1, X: 1, Y: 0},
		{Id: 2, X: 1, Y: 1},
		{Id: 3, X: 0, Y: 1},
	}
	faces := []mesh.FaceInput{
		{Id: 0, NodeIds: []int{0, 1}},
		{Id: 1, NodeIds: []int{1, 2}},
		{Id: 2, NodeIds: []int{2, 3}},
		{Id: 3, NodeIds: []int{3, 0}},
	}
	cells := []mesh.CellInput{
		{Id: 0, FaceIds: []int{0, 1, 2, 3}},
	}
	return mesh.Activate(nodes, faces, cells)
}

var _ = Describe("Grid activation", func() {
	It("derives a unit area/volume for a 2-D unit-square cell", func() {
		g, err := unitSquare()
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Cells).To(HaveLen(1))
		Expect(g.Cells[0].Volume).To(BeNumerically("~", 1.0, 1e-9))
		Expect(g.Cells[0].SurfArea).To(BeNumerically("~", 4.0, 1e-9))
	})

	It("marks every face of a single-cell grid as a boundary face", func() {
		g, err := unitSquare()
		Expect(err).NotTo(HaveOccurred())
		Expect(g.BoundaryFaces()).To(HaveLen(4))
	})

	It("rejects a 3-D cell that is not a tetrahedron", func() {
		nodes := []mesh.NodeInput{
			{Id: 0, X: 0, Y: 0, Z: 0},
			{Id: 1, X: 1, Y: 0, Z: 0},
			{Id: 2, X: 1, Y: 1, Z: 0},
			{Id: 3, X: 0, Y: 1, Z: 0},
			{Id: 4, X: 0, Y: 0, Z: 1},
			{Id: 5, X: 1, Y: 0, Z: 1},
			{Id: 6, X: 1, Y: 1, Z: 1},
			{Id: 7, X: 0, Y: 1, Z: 1},
		}
		faces := []mesh.FaceInput{
			{Id: 0, NodeIds: []int{0, 1, 2, 3}},
			{Id: 1, NodeIds: []int{4, 5, 6, 7}},
			{Id: 2, NodeIds: []int{0, 1, 5, 4}},
			{Id: 3, NodeIds: []int{1, 2, 6, 5}},
			{Id: 4, NodeIds: []int{2, 3, 7, 6}},
			{Id: 5, NodeIds: []int{3, 0, 4, 7}},
		}
		cells := []mesh.CellInput{
			{Id: 0, FaceIds: []int{0, 1, 2, 3, 4, 5}},
		}
		_, err := mesh.Activate(nodes, faces, cells)
		Expect(err).To(HaveOccurred())
	})
})
