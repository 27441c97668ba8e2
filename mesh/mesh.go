// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the node/face/cell grid topology of spec.md §4.8:
// given raw maps of coordinates and incidences, derive adjacency, normals,
// orientations, areas and volumes.
package mesh

import (
	"github.com/cpmech/oasis/oasiserr"
)

// Node is a grid vertex plus the faces and cells that touch it, filled in
// by Activate.
type Node struct {
	Id         int
	X, Y, Z    float64
	Faces      []int
	Cells      []int
}

// Face is a polygon (2-D: a segment) shared by one or two cells.
type Face struct {
	Id           int
	NodeIds      []int // re-sorted counter-clockwise about Normal by Activate
	Centroid     [3]float64
	Normal       [3]float64
	Area         float64
	Cells        []int       // 1 entry = boundary face, 2 = interior
	Orientation  map[int]int // cell id -> +1/-1, sign of (cellCentroid-faceCentroid)·normal
}

// Cell is a control volume bounded by one or more faces.
type Cell struct {
	Id        int
	FaceIds   []int
	Centroid  [3]float64
	Neighbors []int // opposite-side cell across each face, -1 at a boundary
	Volume    float64
	SurfArea  float64
}

// Grid is the activated topology: nodes, faces and cells cross-linked, ready
// for operator/boundary evaluation (spec.md §4.9).
type Grid struct {
	Nodes []*Node
	Faces []*Face
	Cells []*Cell

	nodeIndex map[int]int
	faceIndex map[int]int
	cellIndex map[int]int
}

// NodeInput/FaceInput/CellInput are the raw incidence maps Activate
// consumes, matching the CSV loader's output shape (config/meshcsv.go).
type NodeInput struct {
	Id      int
	X, Y, Z float64
}

type FaceInput struct {
	Id      int
	NodeIds []int
}

type CellInput struct {
	Id      int
	FaceIds []int
}

// Activate derives the full topology of spec.md §4.8 from the raw
// id-keyed incidence lists.
func Activate(nodesIn []NodeInput, facesIn []FaceInput, cellsIn []CellInput) (*Grid, error) {
	g := &Grid{
		nodeIndex: map[int]int{},
		faceIndex: map[int]int{},
		cellIndex: map[int]int{},
	}
	for _, n := range nodesIn {
		g.nodeIndex[n.Id] = len(g.Nodes)
		g.Nodes = append(g.Nodes, &Node{Id: n.Id, X: n.X, Y: n.Y, Z: n.Z})
	}
	for _, f := range facesIn {
		if len(f.NodeIds) < 2 {
			return nil, oasiserr.NewConfigError("mesh: face %d needs at least 2 nodes, got %d", f.Id, len(f.NodeIds))
		}
		g.faceIndex[f.Id] = len(g.Faces)
		g.Faces = append(g.Faces, &Face{Id: f.Id, NodeIds: append([]int(nil), f.NodeIds...), Orientation: map[int]int{}})
	}
	for _, c := range cellsIn {
		g.cellIndex[c.Id] = len(g.Cells)
		g.Cells = append(g.Cells, &Cell{Id: c.Id, FaceIds: append([]int(nil), c.FaceIds...)})
	}

	g.computeCentroids()
	g.linkIncidences()
	g.orderFaceNodesAndNormals()
	g.computeOrientationsAndAreas()
	if err := g.computeCellVolumesAndSurfaces(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) node(id int) *Node { return g.Nodes[g.nodeIndex[id]] }
func (g *Grid) face(id int) *Face { return g.Faces[g.faceIndex[id]] }
func (g *Grid) cell(id int) *Cell { return g.Cells[g.cellIndex[id]] }

// computeCentroids fills each face's centroid (arithmetic mean of its
// nodes) and each cell's centroid (arithmetic mean of its faces' centroids),
// grounded on the original MeshLoader's "centroids are arithmetic means"
// (see DESIGN.md).
func (g *Grid) computeCentroids() {
	for _, f := range g.Faces {
		var sum [3]float64
		for _, nid := range f.NodeIds {
			n := g.node(nid)
			sum[0] += n.X
			sum[1] += n.Y
			sum[2] += n.Z
		}
		k := float64(len(f.NodeIds))
		f.Centroid = [3]float64{sum[0] / k, sum[1] / k, sum[2] / k}
	}
	for _, c := range g.Cells {
		var sum [3]float64
		for _, fid := range c.FaceIds {
			f := g.face(fid)
			sum[0] += f.Centroid[0]
			sum[1] += f.Centroid[1]
			sum[2] += f.Centroid[2]
		}
		k := float64(len(c.FaceIds))
		c.Centroid = [3]float64{sum[0] / k, sum[1] / k, sum[2] / k}
	}
}

// linkIncidences fills step 1-3 of §4.8: incident faces/cells per node,
// adjacent cells per face, neighbor cells per cell.
func (g *Grid) linkIncidences() {
	for _, c := range g.Cells {
		for _, fid := range c.FaceIds {
			f := g.face(fid)
			f.Cells = append(f.Cells, c.Id)
			for _, nid := range f.NodeIds {
				n := g.node(nid)
				n.Cells = appendUnique(n.Cells, c.Id)
			}
		}
	}
	for _, f := range g.Faces {
		for _, nid := range f.NodeIds {
			n := g.node(nid)
			n.Faces = appendUnique(n.Faces, f.Id)
		}
	}
	for _, c := range g.Cells {
		c.Neighbors = make([]int, len(c.FaceIds))
		for k, fid := range c.FaceIds {
			f := g.face(fid)
			c.Neighbors[k] = -1
			for _, other := range f.Cells {
				if other != c.Id {
					c.Neighbors[k] = other
				}
			}
		}
	}
}

func appendUnique(list []int, id int) []int {
	for _, x := range list {
		if x == id {
			return list
		}
	}
	return append(list, id)
}
