// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temporal

import "github.com/cpmech/oasis/spatial"

// MapperInput adapts a *ValueSet2D to spatial.MutableValueSet2D so it can be
// passed directly to a spatial.Mapper's MapValues.
type MapperInput struct{ V *ValueSet2D }

// NumTimes implements spatial.ValueSet2D.
func (a MapperInput) NumTimes() int { return a.V.NumTimes() }

// Row implements spatial.ValueSet2D.
func (a MapperInput) Row(t int) []float64 { return a.V.Row(t) }

// SetRow implements spatial.MutableValueSet2D; the underlying error (a
// primitive mismatch, which occurs when V is an IntPrimitive set and a mapped
// value is not integral) is surfaced via panic rather than silently discarded.
func (a MapperInput) SetRow(t int, row []float64) {
	if err := a.V.SetRow(t, row); err != nil {
		panic(err)
	}
}

// NewLike implements spatial.MutableValueSet2D.
func (a MapperInput) NewLike(cols int) spatial.ValueSet2D {
	return MapperInput{V: a.V.NewLike(cols)}
}
