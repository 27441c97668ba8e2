// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric implements the operator/boundary factory of spec.md §4.9:
// fields over a mesh.Grid's cells, boundary conditions, and the registered
// finite-volume operators that compute or accumulate into them.
package numeric

// Kind distinguishes the storage shape of a Field's per-cell values.
type Kind int

const (
	Scalar Kind = iota
	Vector3
	Tensor3x3
)

// Field is a named per-cell quantity: one scalar, 3-vector or 3x3-tensor per
// cell, indexed by cell id.
type Field struct {
	Variable string
	Kind     Kind
	scalar   map[int]float64
	vector   map[int][3]float64
	tensor   map[int][3][3]float64
}

// NewField allocates an empty field of the given kind over the given
// variable name (the name an operator matches against, spec.md §4.9).
func NewField(variable string, kind Kind) *Field {
	f := &Field{Variable: variable, Kind: kind}
	switch kind {
	case Scalar:
		f.scalar = map[int]float64{}
	case Vector3:
		f.vector = map[int][3]float64{}
	case Tensor3x3:
		f.tensor = map[int][3][3]float64{}
	}
	return f
}

func (f *Field) Scalar(cellId int) float64           { return f.scalar[cellId] }
func (f *Field) SetScalar(cellId int, v float64)      { f.scalar[cellId] = v }
func (f *Field) Vector(cellId int) [3]float64         { return f.vector[cellId] }
func (f *Field) SetVector(cellId int, v [3]float64)   { f.vector[cellId] = v }
func (f *Field) Tensor(cellId int) [3][3]float64      { return f.tensor[cellId] }
func (f *Field) SetTensor(cellId int, v [3][3]float64) { f.tensor[cellId] = v }

// AddScalar accumulates onto the scalar stored at cellId.
func (f *Field) AddScalar(cellId int, delta float64) { f.scalar[cellId] += delta }

// AddVector accumulates componentwise onto the vector stored at cellId.
func (f *Field) AddVector(cellId int, delta [3]float64) {
	v := f.vector[cellId]
	f.vector[cellId] = [3]float64{v[0] + delta[0], v[1] + delta[1], v[2] + delta[2]}
}

// Coefficient is either a single scalar applied uniformly, or a per-face
// field (one scalar value per face id), matching §4.9's operator input.
type Coefficient struct {
	Uniform   float64
	PerFace   map[int]float64
	isPerFace bool
}

// UniformCoefficient builds a single-valued coefficient.
func UniformCoefficient(v float64) Coefficient { return Coefficient{Uniform: v} }

// PerFaceCoefficient builds a per-face coefficient.
func PerFaceCoefficient(values map[int]float64) Coefficient {
	return Coefficient{PerFace: values, isPerFace: true}
}

// At returns the coefficient's value for faceId.
func (c Coefficient) At(faceId int) float64 {
	if c.isPerFace {
		return c.PerFace[faceId]
	}
	return c.Uniform
}
