// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/oasis/geom"
)

// MaxPointsPerNode bounds the number of points a leaf may hold before it is
// subdivided into four quadrants.
const MaxPointsPerNode = 10

// ElementSearchTree is an axis-aligned quadtree over element extents, built
// in two phases: point insertion (to decide the subdivision), then element
// insertion (to populate leaves). See spec.md §4.2.
type ElementSearchTree struct {
	root          *qnode
	pointsDone    bool
	elementsAdded bool
}

type qnode struct {
	extent   geom.Extent
	points   []geom.Point
	children [4]*qnode // NE, NW, SW, SE; nil until subdivided
	elements map[int]bool
}

func newQNode(e geom.Extent) *qnode {
	return &qnode{extent: e, elements: make(map[int]bool)}
}

func (n *qnode) isLeaf() bool { return n.children[0] == nil }

// NewElementSearchTree creates a tree whose root covers extent.
func NewElementSearchTree(extent geom.Extent) *ElementSearchTree {
	return &ElementSearchTree{root: newQNode(extent)}
}

// AddPoint inserts a vertex coordinate into the tree. It fails once any
// element has already been added.
func (t *ElementSearchTree) AddPoint(p geom.Point) error {
	if t.elementsAdded {
		return chk.Err("ElementSearchTree: cannot add a point after elements have been inserted")
	}
	addPointToNode(t.root, p)
	t.pointsDone = true
	return nil
}

func addPointToNode(n *qnode, p geom.Point) {
	if !n.isLeaf() {
		for _, c := range n.children {
			if geom.PointInExtent(p, c.extent) {
				addPointToNode(c, p)
			}
		}
		return
	}
	for _, q := range n.points {
		if sameXY(q, p) {
			return // duplicate point: silently dropped
		}
	}
	n.points = append(n.points, p)
	if len(n.points) > MaxPointsPerNode {
		subdivide(n)
	}
}

func sameXY(a, b geom.Point) bool {
	return a.X == b.X && a.Y == b.Y
}

func subdivide(n *qnode) {
	xmid := (n.extent.Xmin + n.extent.Xmax) / 2
	ymid := (n.extent.Ymin + n.extent.Ymax) / 2
	ne := geom.Extent{Xmin: xmid, Ymin: ymid, Xmax: n.extent.Xmax, Ymax: n.extent.Ymax}
	nw := geom.Extent{Xmin: n.extent.Xmin, Ymin: ymid, Xmax: xmid, Ymax: n.extent.Ymax}
	sw := geom.Extent{Xmin: n.extent.Xmin, Ymin: n.extent.Ymin, Xmax: xmid, Ymax: ymid}
	se := geom.Extent{Xmin: xmid, Ymin: n.extent.Ymin, Xmax: n.extent.Xmax, Ymax: ymid}
	n.children[0] = newQNode(ne)
	n.children[1] = newQNode(nw)
	n.children[2] = newQNode(sw)
	n.children[3] = newQNode(se)
	pts := n.points
	n.points = nil
	for _, p := range pts {
		for _, c := range n.children {
			if pointInExtentTieUpperRight(p, c, n) {
				addPointToNode(c, p)
			}
		}
	}
}

// pointInExtentTieUpperRight implements the "points on a shared border
// propagate into the upper-right child" rule by biasing the strict
// tie-break toward NE on coincident boundaries; PointInExtent's half-open
// [min,max) rule already routes everything except the true outer max edges,
// which are explicitly folded back into the covering child here.
func pointInExtentTieUpperRight(p geom.Point, c *qnode, parent *qnode) bool {
	if geom.PointInExtent(p, c.extent) {
		return true
	}
	onMaxX := p.X == parent.extent.Xmax && p.X == c.extent.Xmax
	onMaxY := p.Y == parent.extent.Ymax && p.Y == c.extent.Ymax
	if onMaxX || onMaxY {
		return p.Y >= c.extent.Ymin && p.X >= c.extent.Xmin
	}
	return false
}

// AddElement keys element id by extent and inserts it into every leaf whose
// extent overlaps it.
func (t *ElementSearchTree) AddElement(id int, extent geom.Extent) {
	t.elementsAdded = true
	addElementToNode(t.root, id, extent)
}

func addElementToNode(n *qnode, id int, extent geom.Extent) {
	if !geom.ExtentsOverlap(n.extent, extent) {
		return
	}
	if n.isLeaf() {
		n.elements[id] = true
		return
	}
	for _, c := range n.children {
		addElementToNode(c, id, extent)
	}
}

// FindElements returns the union, without duplicates, of every element id
// stored in a leaf whose extent overlaps the query extent.
func (t *ElementSearchTree) FindElements(extent geom.Extent) []int {
	seen := make(map[int]bool)
	collect(t.root, extent, seen)
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

func collect(n *qnode, extent geom.Extent, seen map[int]bool) {
	if !geom.ExtentsOverlap(n.extent, extent) {
		return
	}
	if n.isLeaf() {
		for id := range n.elements {
			seen[id] = true
		}
		return
	}
	for _, c := range n.children {
		collect(c, extent, seen)
	}
}

// Depth returns the max depth of the tree (root = depth 1).
func (t *ElementSearchTree) Depth() int { return depth(t.root) }

func depth(n *qnode) int {
	if n.isLeaf() {
		return 1
	}
	best := 0
	for _, c := range n.children {
		if d := depth(c); d > best {
			best = d
		}
	}
	return best + 1
}

// LeafCount returns the number of leaf nodes.
func (t *ElementSearchTree) LeafCount() int { return leafCount(t.root) }

func leafCount(n *qnode) int {
	if n.isLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += leafCount(c)
	}
	return total
}

// MaxElementsPerLeaf returns the largest number of elements stored in any
// single leaf, for diagnostics.
func (t *ElementSearchTree) MaxElementsPerLeaf() int {
	best := 0
	var walk func(n *qnode)
	walk = func(n *qnode) {
		if n.isLeaf() {
			if len(n.elements) > best {
				best = len(n.elements)
			}
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return best
}
