// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/oasis/oasiserr"
)

// orderFaceNodesAndNormals implements §4.8 step 4: computes each face's unit
// normal, then re-sorts its node list counter-clockwise about that normal.
//
// In 2-D (a face with exactly 2 nodes) the normal is the edge vector rotated
// 90°; a 2-node face needs no re-sorting. In 3-D the normal is
// (n1-n0) x (n2-n1), normalized, and the remaining nodes are sorted by their
// signed angle about the centroid in the plane spanned by that normal.
func (g *Grid) orderFaceNodesAndNormals() {
	for _, f := range g.Faces {
		if len(f.NodeIds) == 2 {
			a, b := g.node(f.NodeIds[0]), g.node(f.NodeIds[1])
			ex, ey := b.X-a.X, b.Y-a.Y
			f.Normal = normalize([3]float64{ey, -ex, 0})
			continue
		}
		p := make([][3]float64, len(f.NodeIds))
		for i, nid := range f.NodeIds {
			n := g.node(nid)
			p[i] = [3]float64{n.X, n.Y, n.Z}
		}
		e01 := sub(p[1], p[0])
		e12 := sub(p[2], p[1])
		f.Normal = normalize(cross(e01, e12))
		sortNodesCCW(f.NodeIds, p, f.Centroid, f.Normal)
	}
}

// sortNodesCCW reorders ids (and the parallel coordinate slice pts, kept in
// sync for this call only) counter-clockwise about centroid, as seen looking
// down -normal.
func sortNodesCCW(ids []int, pts [][3]float64, centroid, normal [3]float64) {
	u, v := planeBasis(normal)
	type entry struct {
		id    int
		angle float64
	}
	entries := make([]entry, len(ids))
	for i, p := range pts {
		d := sub(p, centroid)
		x, y := dot(d, u), dot(d, v)
		entries[i] = entry{ids[i], math.Atan2(y, x)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].angle < entries[j].angle })
	for i, e := range entries {
		ids[i] = e.id
	}
}

// planeBasis returns two orthonormal vectors spanning the plane with the
// given unit normal.
func planeBasis(normal [3]float64) (u, v [3]float64) {
	ref := [3]float64{1, 0, 0}
	if math.Abs(normal[0]) > 0.9 {
		ref = [3]float64{0, 1, 0}
	}
	u = normalize(cross(normal, ref))
	v = cross(normal, u)
	return
}

// computeOrientationsAndAreas implements §4.8 steps 5-6: per-adjacent-cell
// sign of the face normal, and face area (perimeter in 2-D, shoelace
// projected onto the face plane in 3-D).
func (g *Grid) computeOrientationsAndAreas() {
	for _, f := range g.Faces {
		for _, cid := range f.Cells {
			c := g.cell(cid)
			d := sub(c.Centroid, f.Centroid)
			sign := 1
			if dot(d, f.Normal) < 0 {
				sign = -1
			}
			f.Orientation[cid] = sign
		}
		f.Area = faceArea(f, g)
	}
}

func faceArea(f *Face, g *Grid) float64 {
	if len(f.NodeIds) == 2 {
		a, b := g.node(f.NodeIds[0]), g.node(f.NodeIds[1])
		return math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	u, v := planeBasis(f.Normal)
	pts := make([][2]float64, len(f.NodeIds))
	for i, nid := range f.NodeIds {
		n := g.node(nid)
		d := sub([3]float64{n.X, n.Y, n.Z}, f.Centroid)
		pts[i] = [2]float64{dot(d, u), dot(d, v)}
	}
	area := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return math.Abs(area) / 2
}

// computeCellVolumesAndSurfaces implements §4.8 steps 7-8: surface area is
// always the sum of incident face areas; "volume" is the enclosed area for a
// 2-D cell (shoelace over its node ring, which the face-order traversal in
// cellNodeIds reconstructs), or a node-0 tetrahedron fan for a 3-D cell with
// exactly 4 bounding faces; any other 3-D cell fails with NotImplemented.
func (g *Grid) computeCellVolumesAndSurfaces() error {
	twoD := is2D(g)
	for _, c := range g.Cells {
		for _, fid := range c.FaceIds {
			c.SurfArea += g.face(fid).Area
		}
		if twoD {
			c.Volume = polygonArea2D(cellNodeIds(c, g), g)
			continue
		}
		if len(c.FaceIds) != 4 {
			return oasiserr.NewNotImplemented("mesh: cell %d volume unsupported for %d-face 3-D cells (only tetrahedra)", c.Id, len(c.FaceIds))
		}
		v, err := tetraVolume(c, g)
		if err != nil {
			return err
		}
		c.Volume = v
	}
	return nil
}

// polygonArea2D computes the shoelace area of a cell's node ring, assuming
// the ring already has the cyclic order implied by its faces' declaration
// order (true for the well-formed FVM cells spec.md §6 describes).
func polygonArea2D(nodeIds []int, g *Grid) float64 {
	area := 0.0
	n := len(nodeIds)
	for i := 0; i < n; i++ {
		a := g.node(nodeIds[i])
		b := g.node(nodeIds[(i+1)%n])
		area += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(area) / 2
}

// is2D reports whether every face in the grid has exactly 2 nodes.
func is2D(g *Grid) bool {
	for _, f := range g.Faces {
		if len(f.NodeIds) != 2 {
			return false
		}
	}
	return len(g.Faces) > 0
}

// tetraVolume fans a 4-face cell's distinct nodes from the first node,
// summing signed tetrahedron volumes (§4.8 step 7).
func tetraVolume(c *Cell, g *Grid) (float64, error) {
	nodeIds := cellNodeIds(c, g)
	if len(nodeIds) != 4 {
		return 0, oasiserr.NewNotImplemented("mesh: cell %d is not a tetrahedron (has %d distinct nodes)", c.Id, len(nodeIds))
	}
	p := make([][3]float64, 4)
	for i, nid := range nodeIds {
		n := g.node(nid)
		p[i] = [3]float64{n.X, n.Y, n.Z}
	}
	vol := dot(sub(p[1], p[0]), cross(sub(p[2], p[0]), sub(p[3], p[0]))) / 6
	return math.Abs(vol), nil
}

func cellNodeIds(c *Cell, g *Grid) []int {
	seen := map[int]bool{}
	var ids []int
	for _, fid := range c.FaceIds {
		for _, nid := range g.face(fid).NodeIds {
			if !seen[nid] {
				seen[nid] = true
				ids = append(ids, nid)
			}
		}
	}
	return ids
}

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func dot(a, b [3]float64) float64 { return utl.Dot3d(a[:], b[:]) }

func cross(a, b [3]float64) [3]float64 {
	var r [3]float64
	utl.Cross3d(r[:], a[:], b[:])
	return r
}

func normalize(a [3]float64) [3]float64 {
	m := math.Sqrt(dot(a, a))
	if m < 1e-12 {
		chk.Panic("mesh: cannot normalize a near-zero vector")
	}
	return [3]float64{a[0] / m, a[1] / m, a[2] / m}
}

// BoundaryFaces returns the ids of every face with exactly one adjacent
// cell (spec.md §4.8's boundary-face definition).
func (g *Grid) BoundaryFaces() []int {
	var ids []int
	for _, f := range g.Faces {
		if len(f.Cells) == 1 {
			ids = append(ids, f.Id)
		}
	}
	return ids
}
