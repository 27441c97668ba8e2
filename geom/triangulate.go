// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Triangle is three points in counter-clockwise order.
type Triangle [3]Point

// SplitPolygonToTriangles ear-clips a simple polygon into a fan of
// triangles. At every step it picks an ear: a vertex whose interior angle is
// convex and whose triangle contains no other polygon vertex.
func SplitPolygonToTriangles(poly Polygon) []Triangle {
	pts := make(Polygon, len(poly))
	copy(pts, poly)
	if signedArea(pts) < 0 {
		reverse(pts)
	}
	var tris []Triangle
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	for len(idx) > 3 {
		earFound := false
		n := len(idx)
		for k := 0; k < n; k++ {
			ip := idx[(k-1+n)%n]
			ic := idx[k]
			in := idx[(k+1)%n]
			a, b, c := pts[ip], pts[ic], pts[in]
			if orient2d(a, b, c) <= 0 {
				continue
			}
			if anyVertexInside(pts, idx, ip, ic, in, a, b, c) {
				continue
			}
			tris = append(tris, Triangle{a, b, c})
			idx = append(idx[:k], idx[k+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// degenerate/near-collinear polygon: fall back to a fan from
			// the first remaining vertex rather than looping forever.
			break
		}
	}
	if len(idx) == 3 {
		tris = append(tris, Triangle{pts[idx[0]], pts[idx[1]], pts[idx[2]]})
	} else if len(idx) > 3 {
		for k := 1; k+1 < len(idx); k++ {
			tris = append(tris, Triangle{pts[idx[0]], pts[idx[k]], pts[idx[k+1]]})
		}
	}
	return tris
}

func reverse(p Polygon) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func anyVertexInside(pts Polygon, idx []int, ip, ic, in int, a, b, c Point) bool {
	for _, m := range idx {
		if m == ip || m == ic || m == in {
			continue
		}
		if PointInPolygon(pts[m], Polygon{a, b, c}) {
			return true
		}
	}
	return false
}

// PolygonSharedArea returns the area shared by a and b, computed by
// triangulating both polygons and summing TriangleSharedArea over every
// pair of triangles.
func PolygonSharedArea(a, b Polygon) float64 {
	ta := SplitPolygonToTriangles(a)
	tb := SplitPolygonToTriangles(b)
	total := 0.0
	for _, t1 := range ta {
		for _, t2 := range tb {
			total += TriangleSharedArea(t1, t2)
		}
	}
	return total
}

// TriangleSharedArea returns the area of the intersection of two triangles.
// It clips t1 against t2 with Sutherland-Hodgman; if fewer than three
// vertices remain, it falls back to a containment test between the two
// triangles' centroids.
func TriangleSharedArea(t1, t2 Triangle) float64 {
	poly := clipConvexPolygon(Polygon{t1[0], t1[1], t1[2]}, Polygon{t2[0], t2[1], t2[2]})
	if len(poly) >= 3 {
		return PolygonArea(poly)
	}
	c1 := Centroid(t1[:])
	c2 := Centroid(t2[:])
	if PointInPolygon(c1, Polygon{t2[0], t2[1], t2[2]}) {
		return PolygonArea(Polygon{t1[0], t1[1], t1[2]})
	}
	if PointInPolygon(c2, Polygon{t1[0], t1[1], t1[2]}) {
		return PolygonArea(Polygon{t2[0], t2[1], t2[2]})
	}
	return 0
}

// clipConvexPolygon clips convex polygon subject against convex polygon
// clip using Sutherland-Hodgman; both inputs are assumed counter-clockwise.
func clipConvexPolygon(subject, clip Polygon) Polygon {
	if signedArea(subject) < 0 {
		reverse(subject)
	}
	if signedArea(clip) < 0 {
		reverse(clip)
	}
	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		j := (i + 1) % n
		edgeA, edgeB := clip[i], clip[j]
		output = clipAgainstEdge(output, edgeA, edgeB)
	}
	return output
}

func clipAgainstEdge(poly Polygon, edgeA, edgeB Point) Polygon {
	var out Polygon
	n := len(poly)
	if n == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curInside := orient2d(edgeA, edgeB, cur) >= -Eps
		prevInside := orient2d(edgeA, edgeB, prev) >= -Eps
		if curInside {
			if !prevInside {
				out = append(out, SegmentIntersection(Segment{prev, cur}, Segment{edgeA, edgeB}))
			}
			out = append(out, cur)
		} else if prevInside {
			out = append(out, SegmentIntersection(Segment{prev, cur}, Segment{edgeA, edgeB}))
		}
	}
	return out
}
