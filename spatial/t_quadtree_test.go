// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/oasis/geom"
)

func Test_quadtree_basic(tst *testing.T) {
	chk.PrintTitle("quadtree_basic")
	tree := NewElementSearchTree(geom.Extent{Xmin: 0, Ymin: 0, Xmax: 50, Ymax: 20})
	for i := 0; i < 1000; i++ {
		x := float64(i%50) + 0.5
		y := float64(i/50) + 0.5
		tree.AddPoint(geom.Point{X: x, Y: y})
	}
	for i := 0; i < 1000; i++ {
		x := float64(i % 50)
		y := float64(i / 50)
		tree.AddElement(i, geom.Extent{Xmin: x, Ymin: y, Xmax: x + 1, Ymax: y + 1})
	}
	found := tree.FindElements(geom.Extent{Xmin: 10.4, Ymin: 4.4, Xmax: 10.6, Ymax: 4.6})
	if len(found) != 1 || found[0] != 4*50+10 {
		tst.Errorf("expected exactly element %d, got %v", 4*50+10, found)
	}
}

func Test_quadtree_noDuplicates(tst *testing.T) {
	chk.PrintTitle("quadtree_noDuplicates")
	tree := NewElementSearchTree(geom.Extent{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10})
	for i := 0; i < 30; i++ {
		tree.AddPoint(geom.Point{X: float64(i % 5), Y: float64(i % 3)})
	}
	tree.AddElement(0, geom.Extent{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10})
	tree.AddElement(1, geom.Extent{Xmin: 1, Ymin: 1, Xmax: 2, Ymax: 2})
	found := tree.FindElements(geom.Extent{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10})
	seen := make(map[int]bool)
	for _, id := range found {
		if seen[id] {
			tst.Errorf("duplicate element id %d returned", id)
		}
		seen[id] = true
	}
}

func Test_quadtree_rejectPointAfterElement(tst *testing.T) {
	chk.PrintTitle("quadtree_rejectPointAfterElement")
	tree := NewElementSearchTree(geom.Extent{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10})
	tree.AddElement(0, geom.Extent{Xmin: 0, Ymin: 0, Xmax: 1, Ymax: 1})
	if err := tree.AddPoint(geom.Point{X: 5, Y: 5}); err == nil {
		tst.Errorf("expected error adding a point after an element")
	}
}
