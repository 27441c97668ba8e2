// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comm implements the exchange-item data model (quantity, unit,
// dimension, element set binding, value set binding), the component state
// machine and the pull-driven update protocol that connects outputs to
// inputs across components (spec.md §3, §4.5, §4.6).
package comm

import "math"

// BaseAxis indexes one of the eight base physical dimensions.
type BaseAxis int

// base axes, spec.md §3
const (
	Length BaseAxis = iota
	Mass
	TimeAxis
	ElectricCurrent
	Temperature
	AmountOfSubstance
	LuminousIntensity
	Currency
	numBaseAxes
)

// Dimension is a mapping from the eight base axes to a real power.
type Dimension struct {
	Powers [numBaseAxes]float64
}

// Equal reports whether two dimensions have identical powers.
func (d Dimension) Equal(o Dimension) bool {
	for i := range d.Powers {
		if d.Powers[i] != o.Powers[i] {
			return false
		}
	}
	return true
}

// WithIncrement returns a copy of d with axis's power increased by delta
// (used by SpaceAreaAdaptor/SpaceLengthAdaptor, spec.md §4.7).
func (d Dimension) WithIncrement(axis BaseAxis, delta float64) Dimension {
	out := d
	out.Powers[axis] += delta
	return out
}

// Unit carries a dimension plus an affine conversion to SI: si = Factor*x +
// Offset.
type Unit struct {
	Id          string
	Caption     string
	Description string
	Dim         Dimension
	Factor      float64
	Offset      float64
}

// Equal compares units structurally across every field.
func (u Unit) Equal(o Unit) bool {
	return u.Id == o.Id && u.Dim.Equal(o.Dim) && u.Factor == o.Factor && u.Offset == o.Offset &&
		u.Caption == o.Caption && u.Description == o.Description
}

// ToSI converts a value expressed in u to SI.
func (u Unit) ToSI(x float64) float64 { return u.Factor*x + u.Offset }

// FromSI converts an SI value to u.
func (u Unit) FromSI(si float64) float64 { return (si - u.Offset) / u.Factor }

// Quantity is a value definition: a unit plus caption, description and a
// missing-data sentinel.
type Quantity struct {
	Unit        Unit
	Caption     string
	Description string
	MissingData float64
}

// Equal compares quantities structurally; two exchange items are connectable
// only if their quantities are equal.
func (q Quantity) Equal(o Quantity) bool {
	if !q.Unit.Equal(o.Unit) {
		return false
	}
	if q.Caption != o.Caption || q.Description != o.Description {
		return false
	}
	if math.IsNaN(q.MissingData) && math.IsNaN(o.MissingData) {
		return true
	}
	return q.MissingData == o.MissingData
}

// IsMissing reports whether x is the quantity's missing-data sentinel.
func (q Quantity) IsMissing(x float64) bool {
	if math.IsNaN(q.MissingData) {
		return math.IsNaN(x)
	}
	return x == q.MissingData
}
