// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 2-D computational geometry primitives used by
// the spatial element mapper: distances, intersections, areas, point-in-
// polygon, polyline-in-polygon clipping and polygon-polygon shared area via
// triangulation.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Eps is the tolerance used by every comparison in this package.
const Eps = 1e-6

// Alloc2D returns a rows x cols matrix of zeros, following ele/solid's own
// use of utl.Alloc for a dense working matrix (e.g. elastrod.go).
func Alloc2D(rows, cols int) [][]float64 {
	return utl.Alloc(rows, cols)
}

// Point is a planar point.
type Point struct {
	X, Y float64
}

// Coordinate is a 3-D point; element vertices are stored as Coordinates but
// the geometry kernel itself is planar and always projects onto (X, Y).
type Coordinate struct {
	X, Y, Z float64
}

// Segment is a directed line segment between two points.
type Segment struct {
	A, B Point
}

// Polyline is an ordered, open chain of points (>= 2).
type Polyline []Point

// Polygon is an ordered, closed chain of points (>= 3); the first point is
// not repeated at the end.
type Polygon []Point

// Extent is a closed-open axis-aligned rectangle: [Xmin,Xmax) x [Ymin,Ymax).
type Extent struct {
	Xmin, Ymin, Xmax, Ymax float64
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointToLineDistance returns the distance from p to the segment line; if
// the perpendicular projection of p falls beyond an endpoint, the distance
// to that endpoint is returned instead.
func PointToLineDistance(line Segment, p Point) float64 {
	abx := line.B.X - line.A.X
	aby := line.B.Y - line.A.Y
	lenSq := abx*abx + aby*aby
	if lenSq < Eps*Eps {
		return Distance(line.A, p)
	}
	t := ((p.X-line.A.X)*abx + (p.Y-line.A.Y)*aby) / lenSq
	if t < 0 {
		return Distance(line.A, p)
	}
	if t > 1 {
		return Distance(line.B, p)
	}
	proj := Point{line.A.X + t*abx, line.A.Y + t*aby}
	return Distance(proj, p)
}

// PointToPolylineDistance returns the minimum distance from p to any segment
// of the polyline.
func PointToPolylineDistance(pl Polyline, p Point) float64 {
	if len(pl) < 2 {
		chk.Panic("PointToPolylineDistance: polyline must have at least 2 vertices, got %d", len(pl))
	}
	dmin := math.Inf(1)
	for i := 0; i+1 < len(pl); i++ {
		d := PointToLineDistance(Segment{pl[i], pl[i+1]}, p)
		if d < dmin {
			dmin = d
		}
	}
	return dmin
}

// orient2d returns twice the signed area of triangle (a, b, c); > 0 if
// a->b->c turns counter-clockwise, < 0 if clockwise, 0 if collinear.
func orient2d(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func aabbOverlap(l1, l2 Segment) bool {
	min1x, max1x := math.Min(l1.A.X, l1.B.X), math.Max(l1.A.X, l1.B.X)
	min1y, max1y := math.Min(l1.A.Y, l1.B.Y), math.Max(l1.A.Y, l1.B.Y)
	min2x, max2x := math.Min(l2.A.X, l2.B.X), math.Max(l2.A.X, l2.B.X)
	min2y, max2y := math.Min(l2.A.Y, l2.B.Y), math.Max(l2.A.Y, l2.B.Y)
	if max1x < min2x-Eps || max2x < min1x-Eps {
		return false
	}
	if max1y < min2y-Eps || max2y < min1y-Eps {
		return false
	}
	return true
}

// SegmentsIntersect reports whether l1 and l2 properly cross. Parallel
// collinear overlapping segments do not count as intersecting.
func SegmentsIntersect(l1, l2 Segment) bool {
	if !aabbOverlap(l1, l2) {
		return false
	}
	d1 := orient2d(l2.A, l2.B, l1.A)
	d2 := orient2d(l2.A, l2.B, l1.B)
	d3 := orient2d(l1.A, l1.B, l2.A)
	d4 := orient2d(l1.A, l1.B, l2.B)
	if math.Abs(d1) < Eps || math.Abs(d2) < Eps || math.Abs(d3) < Eps || math.Abs(d4) < Eps {
		return false
	}
	straddle1 := (d1 > 0) != (d2 > 0)
	straddle2 := (d3 > 0) != (d4 > 0)
	return straddle1 && straddle2
}

// SegmentIntersection returns the intersection point of l1 and l2. The
// caller must have already established that the segments intersect (e.g.
// via SegmentsIntersect); behavior is undefined otherwise.
func SegmentIntersection(l1, l2 Segment) Point {
	x1, y1 := l1.A.X, l1.A.Y
	x2, y2 := l1.B.X, l1.B.Y
	x3, y3 := l2.A.X, l2.A.Y
	x4, y4 := l2.B.X, l2.B.Y
	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(den) < Eps*Eps {
		chk.Panic("SegmentIntersection: segments are parallel")
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	return Point{x1 + t*(x2-x1), y1 + t*(y2-y1)}
}

// PolygonArea returns the absolute area of the polygon (shoelace formula).
func PolygonArea(p Polygon) float64 {
	return math.Abs(signedArea(p))
}

func signedArea(p Polygon) float64 {
	n := len(p)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// PolylineLength returns the sum of segment lengths of the polyline.
func PolylineLength(pl Polyline) float64 {
	total := 0.0
	for i := 0; i+1 < len(pl); i++ {
		total += Distance(pl[i], pl[i+1])
	}
	return total
}

// PolygonPerimeter returns the sum of edge lengths of the polygon.
func PolygonPerimeter(p Polygon) float64 {
	total := 0.0
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += Distance(p[i], p[j])
	}
	return total
}

// PointInPolygon reports whether p lies strictly inside polygon using a ray
// cast in the +x direction; crossings are counted only when strictly to the right of
// p and strictly within the segment's y-extent, half-open on the bottom.
func PointInPolygon(p Point, poly Polygon) bool {
	n := len(poly)
	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := poly[i], poly[j]
		if (a.Y <= p.Y) != (b.Y <= p.Y) {
			xcross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if xcross > p.X {
				inside = !inside
			}
		}
	}
	return inside
}

// Centroid returns the arithmetic-mean centroid of a point sequence (used by
// triangle/polygon containment heuristics, not the area-weighted centroid).
func Centroid(pts []Point) Point {
	var cx, cy float64
	for _, q := range pts {
		cx += q.X
		cy += q.Y
	}
	n := float64(len(pts))
	return Point{cx / n, cy / n}
}

// clipPoint is a polyline vertex tagged with the parametric position along
// its original segment, used while clipping a polyline against a polygon.
type clipPoint struct {
	pt Point
	t  float64
}

// LengthOfPolylineInsidePolygon clips each polyline segment against every
// polygon edge, splitting it at each crossing, then sums the lengths of the
// resulting sub-segments whose midpoint lies inside the polygon. Length
// lying exactly on a polygon edge is counted by both the "inside" and
// "outside" classification in a naive scheme, so it is halved here.
func LengthOfPolylineInsidePolygon(pl Polyline, poly Polygon) float64 {
	total := 0.0
	for i := 0; i+1 < len(pl); i++ {
		total += segmentLengthInsidePolygon(pl[i], pl[i+1], poly)
	}
	return total
}

func segmentLengthInsidePolygon(a, b Point, poly Polygon) float64 {
	seg := Segment{a, b}
	cuts := []clipPoint{{a, 0}, {b, 1}}
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := Segment{poly[i], poly[j]}
		if SegmentsIntersect(seg, edge) {
			ip := SegmentIntersection(seg, edge)
			t := paramAlong(a, b, ip)
			cuts = append(cuts, clipPoint{ip, t})
		}
	}
	sortClipPoints(cuts)
	total := 0.0
	onEdgeLen := 0.0
	for i := 0; i+1 < len(cuts); i++ {
		p0, p1 := cuts[i].pt, cuts[i+1].pt
		mid := Point{(p0.X + p1.X) / 2, (p0.Y + p1.Y) / 2}
		segLen := Distance(p0, p1)
		if segLen < Eps {
			continue
		}
		if pointOnPolygonBoundary(mid, poly) {
			onEdgeLen += segLen
		} else if PointInPolygon(mid, poly) {
			total += segLen
		}
	}
	return total + onEdgeLen/2
}

func pointOnPolygonBoundary(p Point, poly Polygon) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointToLineDistance(Segment{poly[i], poly[j]}, p) < Eps {
			return true
		}
	}
	return false
}

func paramAlong(a, b, p Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < Eps*Eps {
		return 0
	}
	return ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
}

func sortClipPoints(cp []clipPoint) {
	for i := 1; i < len(cp); i++ {
		for j := i; j > 0 && cp[j].t < cp[j-1].t; j-- {
			cp[j], cp[j-1] = cp[j-1], cp[j]
		}
	}
}

// LengthOfPolylineIntersection returns the length of polyline pl that
// coincides with polyline other, within Eps — the symmetric primitive
// backing a future polyline-to-polyline mapping method (see SPEC_FULL.md,
// Open Questions). Not wired into any mapper method table entry.
func LengthOfPolylineIntersection(pl, other Polyline) float64 {
	total := 0.0
	for i := 0; i+1 < len(pl); i++ {
		a, b := pl[i], pl[i+1]
		for k := 0; k+1 < len(other); k++ {
			c, d := other[k], other[k+1]
			if onSameLine(a, b, c, d) {
				total += overlapLength(a, b, c, d)
			}
		}
	}
	return total
}

func onSameLine(a, b, c, d Point) bool {
	return math.Abs(orient2d(a, b, c)) < Eps && math.Abs(orient2d(a, b, d)) < Eps
}

func overlapLength(a, b, c, d Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < Eps*Eps {
		return 0
	}
	t0 := paramAlong(a, b, c)
	t1 := paramAlong(a, b, d)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo := math.Max(0, t0)
	hi := math.Min(1, t1)
	if hi <= lo {
		return 0
	}
	return (hi - lo) * math.Sqrt(lenSq)
}

// GeomExtent returns the bounding extent of a set of points.
func GeomExtent(pts []Point) Extent {
	if len(pts) == 0 {
		return Extent{}
	}
	e := Extent{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		UpdateExtent(&e, p)
	}
	return e
}

// UpdateExtent grows e in place to also cover p.
func UpdateExtent(e *Extent, p Point) {
	if p.X < e.Xmin {
		e.Xmin = p.X
	}
	if p.X > e.Xmax {
		e.Xmax = p.X
	}
	if p.Y < e.Ymin {
		e.Ymin = p.Y
	}
	if p.Y > e.Ymax {
		e.Ymax = p.Y
	}
}

// PointInExtent reports whether p lies in the closed-open rectangle e.
func PointInExtent(p Point, e Extent) bool {
	return p.X >= e.Xmin && p.X < e.Xmax && p.Y >= e.Ymin && p.Y < e.Ymax
}

// ExtentsOverlap reports whether two closed-open extents overlap.
func ExtentsOverlap(a, b Extent) bool {
	if a.Xmax <= b.Xmin || b.Xmax <= a.Xmin {
		return false
	}
	if a.Ymax <= b.Ymin || b.Ymax <= a.Ymin {
		return false
	}
	return true
}
