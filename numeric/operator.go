// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/oasis/mesh"
)

// Mode is an operator's output shape: Explicit fills an output Field
// directly; Implicit instead contributes to a linear system.
type Mode int

const (
	Explicit Mode = iota
	Implicit
)

// Params is the optional list of named parameters an operator's factory may
// read (spec.md §4.9 "an optional list of named parameters").
type Params map[string]float64

// Operator is the contract every registered finite-volume operator or
// boundary satisfies (spec.md §4.9).
type Operator interface {
	// Validate reports missing grid, missing field, variable-name mismatch,
	// missing coefficient, or missing boundary conditions, as diagnostic
	// strings; an empty slice means valid.
	Validate() []string

	// Process fills the output buffers: for Explicit mode, Output; for
	// Implicit mode, accumulates into Matrix/Rhs.
	Process() error

	Mode() Mode
}

// Factory allocates a zero-argument Operator instance, as registered by
// name (spec.md §4.9 "a global registry maps string names ... to
// zero-argument factories"), grounded on ele/factory.go's allocator
// pattern: the name is resolved, then Configure wires in the call-specific
// grid/field/coefficient/params.
type Factory func() Operator

var registry = make(map[string]Factory)

// Register adds fcn under name; panics if name is already registered
// (a configuration error discovered at startup, not a data error, matching
// ele/factory.go's SetAllocator/SetInfoFunc policy).
func Register(name string, fcn Factory) {
	if _, ok := registry[name]; ok {
		chk.Panic("numeric: operator %q is already registered", name)
	}
	registry[name] = fcn
}

// New allocates the operator registered under name.
func New(name string) (Operator, error) {
	fcn, ok := registry[name]
	if !ok {
		return nil, chk.Err("numeric: no operator registered under name %q", name)
	}
	op := fcn()
	if op == nil {
		return nil, chk.Err("numeric: operator %q factory returned nil", name)
	}
	return op, nil
}

// Configurable is implemented by every concrete operator so New's caller can
// wire in the grid/field/coefficient/params the registry itself knows
// nothing about.
type Configurable interface {
	Configure(grid *mesh.Grid, target *Field, coeff Coefficient, boundaries *BoundarySet, params Params)
}

// ImplicitResult is an Implicit-mode operator's per-invocation output: a
// sparse matrix contribution (built the way fem/domain.go and fem/e_beam.go
// build their stiffness triplets, via la.Triplet) plus an rhs contribution
// map keyed by cell id.
type ImplicitResult struct {
	Matrix *la.Triplet
	Rhs    map[int]float64
}

// NewImplicitResult allocates a triplet sized for nCells unknowns with
// capacity for maxEntries nonzeros, and an empty rhs map.
func NewImplicitResult(nCells, maxEntries int) *ImplicitResult {
	t := new(la.Triplet)
	t.Init(nCells, nCells, maxEntries)
	return &ImplicitResult{Matrix: t, Rhs: map[int]float64{}}
}
