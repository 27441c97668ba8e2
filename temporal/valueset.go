// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temporal

import (
	"github.com/cpmech/gosl/chk"
)

// Primitive is the declared scalar kind a value set's cells are constrained
// to hold (spec.md §3, §9 "dynamically typed value cells").
type Primitive int

// primitive kinds
const (
	RealPrimitive Primitive = iota
	IntPrimitive
)

// ValueSet2D is a logically [time][element] grid of scalars, each validated
// against a declared Primitive on write.
type ValueSet2D struct {
	Primitive Primitive
	rows      [][]float64 // always stored as float64; IntPrimitive cells are validated to be integral
}

// NewValueSet2D returns an empty value set of the given primitive.
func NewValueSet2D(p Primitive) *ValueSet2D {
	return &ValueSet2D{Primitive: p}
}

// NumTimes returns the outer (time) length.
func (v *ValueSet2D) NumTimes() int { return len(v.rows) }

// NumElements returns the inner length at time t.
func (v *ValueSet2D) NumElements(t int) int { return len(v.rows[t]) }

// Row returns the element-value vector at time t.
func (v *ValueSet2D) Row(t int) []float64 { return v.rows[t] }

// SetRow replaces the element-value vector at time t, appending if t ==
// NumTimes(). Every cell is validated against the declared primitive.
func (v *ValueSet2D) SetRow(t int, row []float64) error {
	if v.Primitive == IntPrimitive {
		for _, x := range row {
			if x != float64(int64(x)) {
				return chk.Err("value set: %g is not a valid int-primitive cell", x)
			}
		}
	}
	if t == len(v.rows) {
		v.rows = append(v.rows, row)
		return nil
	}
	if t < 0 || t > len(v.rows) {
		return chk.Err("value set: row index %d out of range [0,%d]", t, len(v.rows))
	}
	v.rows[t] = row
	return nil
}

// Get returns the value at [t][e].
func (v *ValueSet2D) Get(t, e int) float64 { return v.rows[t][e] }

// Set writes the value at [t][e], validating against the primitive.
func (v *ValueSet2D) Set(t, e int, x float64) error {
	if v.Primitive == IntPrimitive && x != float64(int64(x)) {
		return chk.Err("value set: %g is not a valid int-primitive cell", x)
	}
	v.rows[t][e] = x
	return nil
}

// RemoveRow removes the row (time) at index t, shifting later rows down.
func (v *ValueSet2D) RemoveRow(t int) {
	v.rows = append(v.rows[:t], v.rows[t+1:]...)
}

// RemoveColumn removes the element (column) at index e from every row.
func (v *ValueSet2D) RemoveColumn(e int) {
	for t := range v.rows {
		v.rows[t] = append(v.rows[t][:e], v.rows[t][e+1:]...)
	}
}

// Clone returns a deep copy, used by a component's state snapshot/restore
// (spec.md §4's ManageState extension).
func (v *ValueSet2D) Clone() *ValueSet2D {
	if v == nil {
		return nil
	}
	out := &ValueSet2D{Primitive: v.Primitive, rows: make([][]float64, len(v.rows))}
	for t, row := range v.rows {
		out.rows[t] = append([]float64(nil), row...)
	}
	return out
}

// NewLike implements spatial.MutableValueSet2D: a value set with the same
// number of times but `cols` elements per row, all zeroed.
func (v *ValueSet2D) NewLike(cols int) *ValueSet2D {
	out := NewValueSet2D(v.Primitive)
	out.rows = make([][]float64, len(v.rows))
	for t := range out.rows {
		out.rows[t] = make([]float64, cols)
	}
	return out
}
