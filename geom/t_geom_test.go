// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func unitSquare() Polygon {
	return Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func Test_distance01(tst *testing.T) {
	chk.PrintTitle("distance01")
	d := Distance(Point{0, 0}, Point{3, 4})
	chk.Scalar(tst, "distance", 1e-15, d, 5)
}

func Test_pointToLine01(tst *testing.T) {
	chk.PrintTitle("pointToLine01")
	line := Segment{Point{0, 0}, Point{10, 0}}
	d := PointToLineDistance(line, Point{5, 3})
	chk.Scalar(tst, "perp distance", 1e-15, d, 3)
	d2 := PointToLineDistance(line, Point{15, 0})
	chk.Scalar(tst, "beyond endpoint", 1e-15, d2, 5)
}

func Test_segmentsIntersect01(tst *testing.T) {
	chk.PrintTitle("segmentsIntersect01")
	l1 := Segment{Point{0, 0}, Point{2, 2}}
	l2 := Segment{Point{0, 2}, Point{2, 0}}
	if !SegmentsIntersect(l1, l2) {
		tst.Errorf("expected segments to intersect")
	}
	ip := SegmentIntersection(l1, l2)
	chk.Scalar(tst, "ix", 1e-9, ip.X, 1)
	chk.Scalar(tst, "iy", 1e-9, ip.Y, 1)

	// parallel collinear overlap must not count as intersecting
	l3 := Segment{Point{0, 0}, Point{1, 0}}
	l4 := Segment{Point{0.5, 0}, Point{2, 0}}
	if SegmentsIntersect(l3, l4) {
		tst.Errorf("collinear overlap must not count as intersecting")
	}
}

func Test_polygonArea01(tst *testing.T) {
	chk.PrintTitle("polygonArea01")
	area := PolygonArea(unitSquare())
	chk.Scalar(tst, "area", 1e-15, area, 1)
}

func Test_pointInPolygon01(tst *testing.T) {
	chk.PrintTitle("pointInPolygon01")
	sq := unitSquare()
	if !PointInPolygon(Centroid(sq), sq) {
		tst.Errorf("centroid must be inside its own polygon")
	}
	if PointInPolygon(Point{2, 2}, sq) {
		tst.Errorf("(2,2) must be outside unit square")
	}
}

func Test_polygonSharedArea01(tst *testing.T) {
	chk.PrintTitle("polygonSharedArea01")
	sq := unitSquare()
	shared := PolygonSharedArea(sq, sq)
	chk.Scalar(tst, "shared(P,P)", 1e-6, shared, PolygonArea(sq))

	other := Polygon{{0.5, 0}, {1.5, 0}, {1.5, 1}, {0.5, 1}}
	chk.Scalar(tst, "symmetry", 1e-6, PolygonSharedArea(other, sq), PolygonSharedArea(sq, other))
}

func Test_polygonSharedArea02(tst *testing.T) {
	chk.PrintTitle("polygonSharedArea02")
	big := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	small := Polygon{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}}
	shared := PolygonSharedArea(big, small)
	chk.Scalar(tst, "shared area", 1e-6, shared, 1.0)
}

func Test_lengthOfPolylineInsidePolygon01(tst *testing.T) {
	chk.PrintTitle("lengthOfPolylineInsidePolygon01")
	sq := unitSquare()
	pl := Polyline{{-1, 0.5}, {2, 0.5}}
	length := LengthOfPolylineInsidePolygon(pl, sq)
	chk.Scalar(tst, "length inside", 1e-6, length, 1.0)
}

func Test_extent01(tst *testing.T) {
	chk.PrintTitle("extent01")
	e := GeomExtent([]Point{{0, 0}, {1, 2}, {-1, 3}})
	chk.Scalar(tst, "xmin", 1e-15, e.Xmin, -1)
	chk.Scalar(tst, "xmax", 1e-15, e.Xmax, 1)
	chk.Scalar(tst, "ymax", 1e-15, e.Ymax, 3)
	if !ExtentsOverlap(e, Extent{0, 0, 5, 5}) {
		tst.Errorf("extents must overlap")
	}
}
