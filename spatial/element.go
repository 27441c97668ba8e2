// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial implements the element-set model, the quadtree search
// index and the element mapper that builds a sparse mapping matrix between
// two element sets.
package spatial

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/oasis/geom"
)

// ElementType tags the uniform geometric kind of every element in a set.
type ElementType int

// element types
const (
	IdBased ElementType = iota
	Point
	Polyline
	Polygon
	Polyhedron
)

func (t ElementType) String() string {
	switch t {
	case IdBased:
		return "IdBased"
	case Point:
		return "Point"
	case Polyline:
		return "Polyline"
	case Polygon:
		return "Polygon"
	case Polyhedron:
		return "Polyhedron"
	}
	return "Unknown"
}

// Face is an ordered list of vertex indices (into the owning element's
// vertex list), used only for polyhedral elements.
type Face struct {
	NodeIndices []int
}

// Element is one spatial entity: an id plus an ordered vertex list and,
// for polyhedral uses, a list of faces over those vertices.
type Element struct {
	Id     string
	Verts  []geom.Coordinate
	Faces  []Face
}

// NumVerts returns the number of vertices.
func (e *Element) NumVerts() int { return len(e.Verts) }

// NumFaces returns the number of faces.
func (e *Element) NumFaces() int { return len(e.Faces) }

// Point2D returns the (x, y) projection of vertex i.
func (e *Element) Point2D(i int) geom.Point {
	c := e.Verts[i]
	return geom.Point{X: c.X, Y: c.Y}
}

// AsPolyline returns the element's vertices as a geom.Polyline.
func (e *Element) AsPolyline() geom.Polyline {
	pl := make(geom.Polyline, len(e.Verts))
	for i, c := range e.Verts {
		pl[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return pl
}

// AsPolygon returns the element's vertices as a geom.Polygon.
func (e *Element) AsPolygon() geom.Polygon {
	pg := make(geom.Polygon, len(e.Verts))
	for i, c := range e.Verts {
		pg[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return pg
}

// Extent returns the 2-D bounding extent of the element's vertices.
func (e *Element) Extent() geom.Extent {
	pts := make([]geom.Point, len(e.Verts))
	for i, c := range e.Verts {
		pts[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return geom.GeomExtent(pts)
}

// ElementSet is an ordered collection of elements sharing one ElementType.
type ElementSet struct {
	Id         string
	Type       ElementType
	SpatialRef string
	Version    int
	Elements   []*Element
}

// Len returns the number of elements in the set.
func (s *ElementSet) Len() int { return len(s.Elements) }

// NumVerts returns the vertex count of element i.
func (s *ElementSet) NumVerts(i int) int { return s.Elements[i].NumVerts() }

// NumFaces returns the face count of element i.
func (s *ElementSet) NumFaces(i int) int { return s.Elements[i].NumFaces() }

// FaceVertIndices returns the node indices of face f of element i.
func (s *ElementSet) FaceVertIndices(i, f int) []int {
	return s.Elements[i].Faces[f].NodeIndices
}

// Coord returns the (x, y, z) of vertex v of element i.
func (s *ElementSet) Coord(i, v int) geom.Coordinate {
	return s.Elements[i].Verts[v]
}

// Validate checks every element against the invariants of spec.md §3,
// returning an error describing the first violation found.
func (s *ElementSet) Validate() error {
	for i, e := range s.Elements {
		switch s.Type {
		case IdBased:
			// only id queries are legal; no geometric invariant to check.
		case Point:
			if len(e.Verts) != 1 {
				return chk.Err("element set %q: point element %q must have exactly one vertex, got %d", s.Id, e.Id, len(e.Verts))
			}
		case Polyline:
			if len(e.Verts) < 2 {
				return chk.Err("element set %q: polyline element %q must have >= 2 vertices, got %d", s.Id, e.Id, len(e.Verts))
			}
			pl := e.AsPolyline()
			for k := 0; k+1 < len(pl); k++ {
				if geom.Distance(pl[k], pl[k+1]) <= geom.Eps {
					return chk.Err("element set %q: polyline element %q has a zero-length segment", s.Id, e.Id)
				}
			}
		case Polygon:
			if len(e.Verts) < 3 {
				return chk.Err("element set %q: polygon element %q must have >= 3 vertices, got %d", s.Id, e.Id, len(e.Verts))
			}
			pg := e.AsPolygon()
			if geom.PolygonArea(pg) <= geom.Eps {
				return chk.Err("element set %q: polygon element %q has non-positive signed area", s.Id, e.Id)
			}
			n := len(pg)
			for k := 0; k < n; k++ {
				k2 := (k + 1) % n
				if geom.Distance(pg[k], pg[k2]) <= geom.Eps {
					return chk.Err("element set %q: polygon element %q has a zero-length segment", s.Id, e.Id)
				}
			}
			if selfIntersects(pg) {
				return chk.Err("element set %q: polygon element %q self-intersects", s.Id, e.Id)
			}
		case Polyhedron:
			if len(e.Faces) == 0 {
				return chk.Err("element set %q: polyhedron element %q must have at least one face", s.Id, e.Id)
			}
		}
	}
	return nil
}

func selfIntersects(pg geom.Polygon) bool {
	n := len(pg)
	for i := 0; i < n; i++ {
		a1, a2 := pg[i], pg[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i {
				continue
			}
			b1, b2 := pg[j], pg[(j+1)%n]
			if geom.SegmentsIntersect(geom.Segment{A: a1, B: a2}, geom.Segment{A: b1, B: b2}) {
				return true
			}
		}
	}
	return false
}
