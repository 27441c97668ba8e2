// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/oasis/geom"
)

// Method names the mapper recognises, see spec.md §4.3.
type Method int

// mapping methods
const (
	Nearest Method = iota
	Inverse
	Mean
	Sum
	WeightedMean
	WeightedSum
	Distribute
	Value
)

func (m Method) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Inverse:
		return "Inverse"
	case Mean:
		return "Mean"
	case Sum:
		return "Sum"
	case WeightedMean:
		return "WeightedMean"
	case WeightedSum:
		return "WeightedSum"
	case Distribute:
		return "Distribute"
	case Value:
		return "Value"
	}
	return "Unknown"
}

// MappingError wraps the cause of a mapper initialization or application
// failure (spec.md §7).
type MappingError struct {
	msg   string
	Cause error
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return e.msg + ": " + e.Cause.Error()
	}
	return e.msg
}

func (e *MappingError) Unwrap() error { return e.Cause }

func newMappingError(cause error, format string, args ...interface{}) *MappingError {
	return &MappingError{msg: chk.Err(format, args...).Error(), Cause: cause}
}

// BoundsError signals an out-of-range row/column access on the mapping
// matrix.
type BoundsError struct{ msg string }

func (e *BoundsError) Error() string { return e.msg }

func newBoundsError(format string, args ...interface{}) *BoundsError {
	return &BoundsError{msg: chk.Err(format, args...).Error()}
}

// Mapper builds and applies a sparse rowsTo x colsFrom mapping matrix
// between a source and a target element set under a named method.
type Mapper struct {
	method      Method
	from        *ElementSet
	to          *ElementSet
	rows, cols  int
	m           [][]float64 // dense backing for the logical sparse matrix
	initialized bool
}

// NewMapper returns an uninitialized mapper.
func NewMapper() *Mapper { return &Mapper{} }

// Initialized reports whether Initialize succeeded and the matrix is held.
func (mp *Mapper) Initialized() bool { return mp.initialized }

// Rows returns the number of target elements (rows of M).
func (mp *Mapper) Rows() int { return mp.rows }

// Cols returns the number of source elements (columns of M).
func (mp *Mapper) Cols() int { return mp.cols }

// GetValueFromMappingMatrix reads M[row][col].
func (mp *Mapper) GetValueFromMappingMatrix(row, col int) (float64, error) {
	if row < 0 || row >= mp.rows || col < 0 || col >= mp.cols {
		return 0, newBoundsError("mapping matrix index (%d,%d) out of range [0,%d)x[0,%d)", row, col, mp.rows, mp.cols)
	}
	return mp.m[row][col], nil
}

// SetValueInMappingMatrix writes M[row][col].
func (mp *Mapper) SetValueInMappingMatrix(row, col int, v float64) error {
	if row < 0 || row >= mp.rows || col < 0 || col >= mp.cols {
		return newBoundsError("mapping matrix index (%d,%d) out of range [0,%d)x[0,%d)", row, col, mp.rows, mp.cols)
	}
	mp.m[row][col] = v
	return nil
}

// allowed combinations, spec.md §4.3 table
var allowedMethods = map[[2]ElementType]map[Method]bool{
	{Point, Point}:       {Nearest: true, Inverse: true},
	{Point, Polyline}:    {Nearest: true, Inverse: true},
	{Point, Polygon}:     {Mean: true, Sum: true},
	{Polyline, Point}:    {Nearest: true, Inverse: true},
	{Polyline, Polygon}:  {WeightedMean: true, WeightedSum: true},
	{Polygon, Point}:     {Value: true},
	{Polygon, Polyline}:  {WeightedMean: true, WeightedSum: true},
	{Polygon, Polygon}:   {WeightedMean: true, WeightedSum: true, Distribute: true},
}

// Initialize validates both element sets, looks up the method, allocates M
// and fills it by dispatching on the (fromType, toType) pair.
func (mp *Mapper) Initialize(method Method, from, to *ElementSet) error {
	if err := from.Validate(); err != nil {
		return newMappingError(err, "mapper: invalid source element set %q", from.Id)
	}
	if err := to.Validate(); err != nil {
		return newMappingError(err, "mapper: invalid target element set %q", to.Id)
	}
	key := [2]ElementType{from.Type, to.Type}
	methods, ok := allowedMethods[key]
	if !ok || !methods[method] {
		return newMappingError(nil, "mapper: method %s not permitted for %s -> %s", method, from.Type, to.Type)
	}
	mp.method = method
	mp.from = from
	mp.to = to
	mp.rows = to.Len()
	mp.cols = from.Len()
	mp.m = geom.Alloc2D(mp.rows, mp.cols)
	mp.initialized = false

	var err error
	switch key {
	case [2]ElementType{Point, Point}, [2]ElementType{Point, Polyline}, [2]ElementType{Polyline, Point}:
		err = mp.fillDistanceBased()
	case [2]ElementType{Point, Polygon}:
		err = mp.fillPointToPolygon()
	case [2]ElementType{Polyline, Polygon}:
		err = mp.fillPolylineToPolygon()
	case [2]ElementType{Polygon, Point}:
		err = mp.fillPolygonToPoint()
	case [2]ElementType{Polygon, Polyline}:
		err = mp.fillPolygonToPolyline()
	case [2]ElementType{Polygon, Polygon}:
		err = mp.fillPolygonToPolygon()
	default:
		err = newMappingError(nil, "mapper: combination %s -> %s is not implemented", from.Type, to.Type)
	}
	if err != nil {
		return err
	}
	mp.initialized = true
	return nil
}

// fillDistanceBased handles Point<->Point, Point->Polyline, Polyline->Point
// by distance: M[i][j] = distance(target_i, source_j), then Nearest/Inverse.
func (mp *Mapper) fillDistanceBased() error {
	for i := 0; i < mp.rows; i++ {
		tp := representativePoint(mp.to, i)
		for j := 0; j < mp.cols; j++ {
			sp := representativePoint(mp.from, j)
			mp.m[i][j] = distanceBetween(mp.to, i, mp.from, j, tp, sp)
		}
	}
	switch mp.method {
	case Nearest:
		mp.applyNearest()
	case Inverse:
		mp.applyInverse()
	default:
		return newMappingError(nil, "mapper: unsupported method %s for distance-based combination", mp.method)
	}
	return nil
}

// representativePoint returns a single point for a Point element (its only
// vertex) or nil hint for Polyline elements, where point-to-polyline
// distance must be computed per element.
func representativePoint(set *ElementSet, i int) *geom.Point {
	if set.Type == Point {
		p := set.Elements[i].Point2D(0)
		return &p
	}
	return nil
}

func distanceBetween(to *ElementSet, i int, from *ElementSet, j int, tp, sp *geom.Point) float64 {
	switch {
	case tp != nil && sp != nil:
		return geom.Distance(*tp, *sp)
	case tp == nil && sp != nil:
		return geom.PointToPolylineDistance(to.Elements[i].AsPolyline(), *sp)
	case tp != nil && sp == nil:
		return geom.PointToPolylineDistance(from.Elements[j].AsPolyline(), *tp)
	default:
		// polyline-to-polyline distance is not part of the documented
		// combinations; fall back to the minimum vertex distance.
		best := -1.0
		for _, a := range to.Elements[i].AsPolyline() {
			d := geom.PointToPolylineDistance(from.Elements[j].AsPolyline(), a)
			if best < 0 || d < best {
				best = d
			}
		}
		return best
	}
}

func (mp *Mapper) applyNearest() {
	for i := 0; i < mp.rows; i++ {
		dmin := mp.m[i][0]
		for j := 1; j < mp.cols; j++ {
			if mp.m[i][j] < dmin {
				dmin = mp.m[i][j]
			}
		}
		k := 0
		for j := 0; j < mp.cols; j++ {
			if mp.m[i][j] == dmin {
				k++
			}
		}
		for j := 0; j < mp.cols; j++ {
			if mp.m[i][j] == dmin {
				mp.m[i][j] = 1.0 / float64(k)
			} else {
				mp.m[i][j] = 0
			}
		}
	}
}

func (mp *Mapper) applyInverse() {
	for i := 0; i < mp.rows; i++ {
		dmin := mp.m[i][0]
		for j := 1; j < mp.cols; j++ {
			if mp.m[i][j] < dmin {
				dmin = mp.m[i][j]
			}
		}
		if dmin <= geom.Eps {
			mp.applyNearestRow(i)
			continue
		}
		dist := make([]float64, mp.cols)
		sum := 0.0
		for j := 0; j < mp.cols; j++ {
			dist[j] = 1.0 / mp.m[i][j]
			sum += dist[j]
		}
		for j := 0; j < mp.cols; j++ {
			mp.m[i][j] = dist[j] / sum
		}
	}
}

func (mp *Mapper) applyNearestRow(i int) {
	dmin := mp.m[i][0]
	for j := 1; j < mp.cols; j++ {
		if mp.m[i][j] < dmin {
			dmin = mp.m[i][j]
		}
	}
	k := 0
	for j := 0; j < mp.cols; j++ {
		if mp.m[i][j] == dmin {
			k++
		}
	}
	for j := 0; j < mp.cols; j++ {
		if mp.m[i][j] == dmin {
			mp.m[i][j] = 1.0 / float64(k)
		} else {
			mp.m[i][j] = 0
		}
	}
}

func (mp *Mapper) fillPointToPolygon() error {
	for i := 0; i < mp.rows; i++ {
		poly := mp.to.Elements[i].AsPolygon()
		count := 0
		inside := make([]bool, mp.cols)
		for j := 0; j < mp.cols; j++ {
			p := mp.from.Elements[j].Point2D(0)
			if geom.PointInPolygon(p, poly) {
				inside[j] = true
				count++
			}
		}
		if count == 0 {
			continue
		}
		for j := 0; j < mp.cols; j++ {
			if !inside[j] {
				continue
			}
			switch mp.method {
			case Mean:
				mp.m[i][j] = 1.0 / float64(count)
			case Sum:
				mp.m[i][j] = 1.0
			default:
				return newMappingError(nil, "mapper: unsupported method %s for Point->Polygon", mp.method)
			}
		}
	}
	return nil
}

func (mp *Mapper) fillPolylineToPolygon() error {
	for i := 0; i < mp.rows; i++ {
		poly := mp.to.Elements[i].AsPolygon()
		rowSum := 0.0
		for j := 0; j < mp.cols; j++ {
			pl := mp.from.Elements[j].AsPolyline()
			v := geom.LengthOfPolylineInsidePolygon(pl, poly)
			mp.m[i][j] = v
			rowSum += v
		}
		switch mp.method {
		case WeightedMean:
			if rowSum > geom.Eps {
				for j := 0; j < mp.cols; j++ {
					mp.m[i][j] /= rowSum
				}
			}
		case WeightedSum:
			for j := 0; j < mp.cols; j++ {
				full := geom.PolylineLength(mp.from.Elements[j].AsPolyline())
				if full > geom.Eps {
					mp.m[i][j] /= full
				}
			}
		default:
			return newMappingError(nil, "mapper: unsupported method %s for Polyline->Polygon", mp.method)
		}
	}
	return nil
}

// candidateColumns returns the candidate source indices for row i: all
// columns, or a quadtree-pruned subset when both sets are large enough.
func (mp *Mapper) candidateColumns(pointExtent geom.Extent) []int {
	if mp.cols > 10 && mp.rows > 10 {
		tree := mp.buildSourceTree()
		return tree.FindElements(pointExtent)
	}
	all := make([]int, mp.cols)
	for j := range all {
		all[j] = j
	}
	return all
}

func (mp *Mapper) buildSourceTree() *ElementSearchTree {
	var ext geom.Extent
	first := true
	for j := 0; j < mp.cols; j++ {
		e := mp.from.Elements[j].Extent()
		if first {
			ext = e
			first = false
		} else {
			geom.UpdateExtent(&ext, geom.Point{X: e.Xmin, Y: e.Ymin})
			geom.UpdateExtent(&ext, geom.Point{X: e.Xmax, Y: e.Ymax})
		}
	}
	tree := NewElementSearchTree(ext)
	for j := 0; j < mp.cols; j++ {
		for _, v := range mp.from.Elements[j].AsPolygon() {
			tree.AddPoint(v)
		}
	}
	for j := 0; j < mp.cols; j++ {
		tree.AddElement(j, mp.from.Elements[j].Extent())
	}
	return tree
}

func (mp *Mapper) fillPolygonToPoint() error {
	if mp.method != Value {
		return newMappingError(nil, "mapper: only Value is permitted for Polygon->Point, got %s", mp.method)
	}
	for i := 0; i < mp.rows; i++ {
		p := mp.to.Elements[i].Point2D(0)
		pe := geom.Extent{Xmin: p.X, Ymin: p.Y, Xmax: p.X + geom.Eps, Ymax: p.Y + geom.Eps}
		candidates := mp.candidateColumns(pe)
		var hits []int
		for _, j := range candidates {
			poly := mp.from.Elements[j].AsPolygon()
			if geom.PointInPolygon(p, poly) || pointOnPolygonBoundary(p, poly) {
				hits = append(hits, j)
			}
		}
		for _, j := range hits {
			mp.m[i][j] = 1.0 / float64(len(hits))
		}
	}
	return nil
}

func pointOnPolygonBoundary(p geom.Point, poly geom.Polygon) bool {
	n := len(poly)
	for k := 0; k < n; k++ {
		k2 := (k + 1) % n
		if geom.PointToLineDistance(geom.Segment{A: poly[k], B: poly[k2]}, p) < geom.Eps {
			return true
		}
	}
	return false
}

func (mp *Mapper) fillPolygonToPolyline() error {
	for i := 0; i < mp.rows; i++ {
		pl := mp.to.Elements[i].AsPolyline()
		rowSum := 0.0
		for j := 0; j < mp.cols; j++ {
			poly := mp.from.Elements[j].AsPolygon()
			v := geom.LengthOfPolylineInsidePolygon(pl, poly)
			mp.m[i][j] = v
			rowSum += v
		}
		switch mp.method {
		case WeightedMean:
			if rowSum > geom.Eps {
				for j := 0; j < mp.cols; j++ {
					mp.m[i][j] /= rowSum
				}
			}
		case WeightedSum:
			full := geom.PolylineLength(pl)
			if full > geom.Eps {
				for j := 0; j < mp.cols; j++ {
					mp.m[i][j] /= full
				}
			}
		default:
			return newMappingError(nil, "mapper: unsupported method %s for Polygon->Polyline", mp.method)
		}
	}
	return nil
}

func (mp *Mapper) fillPolygonToPolygon() error {
	for i := 0; i < mp.rows; i++ {
		target := mp.to.Elements[i].AsPolygon()
		rowSum := 0.0
		for j := 0; j < mp.cols; j++ {
			source := mp.from.Elements[j].AsPolygon()
			v := geom.PolygonSharedArea(target, source)
			mp.m[i][j] = v
			rowSum += v
		}
		switch mp.method {
		case Distribute:
			for j := 0; j < mp.cols; j++ {
				sourceArea := geom.PolygonArea(mp.from.Elements[j].AsPolygon())
				if sourceArea > geom.Eps {
					mp.m[i][j] /= sourceArea
				}
			}
		case WeightedMean:
			if rowSum > geom.Eps {
				for j := 0; j < mp.cols; j++ {
					mp.m[i][j] /= rowSum
				}
			}
		case WeightedSum:
			targetArea := geom.PolygonArea(target)
			if targetArea > geom.Eps {
				for j := 0; j < mp.cols; j++ {
					mp.m[i][j] /= targetArea
				}
			}
		default:
			return newMappingError(nil, "mapper: unsupported method %s for Polygon->Polygon", mp.method)
		}
	}
	return nil
}

// ValueSet2D is the minimal interface the mapper needs from a value set: a
// per-time vector of element values, see temporal.ValueSet2D.
type ValueSet2D interface {
	NumTimes() int
	Row(t int) []float64
}

// MutableValueSet2D additionally allows construction of a new value set with
// the same number of times but a different number of elements per row.
type MutableValueSet2D interface {
	ValueSet2D
	NewLike(cols int) ValueSet2D
	SetRow(t int, row []float64)
}

// MapValues multiplies, time step by time step, the inner value vector of in
// (length Cols()) by M, returning a new value set with Rows() elements per
// time. The caller's value set implementation decides the value definition
// of the result.
func (mp *Mapper) MapValues(in MutableValueSet2D) (MutableValueSet2D, error) {
	if !mp.initialized {
		return nil, newMappingError(nil, "mapper: MapValues called before successful Initialize")
	}
	out := in.NewLike(mp.rows).(MutableValueSet2D)
	for t := 0; t < in.NumTimes(); t++ {
		row := in.Row(t)
		if len(row) != mp.cols {
			return nil, newMappingError(nil, "mapper: input row %d has %d values, expected %d", t, len(row), mp.cols)
		}
		result := make([]float64, mp.rows)
		for i := 0; i < mp.rows; i++ {
			sum := 0.0
			for j := 0; j < mp.cols; j++ {
				sum += mp.m[i][j] * row[j]
			}
			result[i] = sum
		}
		out.SetRow(t, result)
	}
	return out, nil
}

// AsTriplet returns the mapping matrix as a gosl/la sparse triplet, useful
// when the caller wants to fold the mapping into a larger linear system.
func (mp *Mapper) AsTriplet() *la.Triplet {
	nnz := 0
	for i := 0; i < mp.rows; i++ {
		for j := 0; j < mp.cols; j++ {
			if mp.m[i][j] != 0 {
				nnz++
			}
		}
	}
	t := new(la.Triplet)
	t.Init(mp.rows, mp.cols, nnz)
	for i := 0; i < mp.rows; i++ {
		for j := 0; j < mp.cols; j++ {
			if mp.m[i][j] != 0 {
				t.Put(i, j, mp.m[i][j])
			}
		}
	}
	return t
}
