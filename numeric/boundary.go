// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// BCKind distinguishes the two legal boundary-condition shapes of
// spec.md §4.9, plus the "not yet set" sentinel.
type BCKind int

const (
	BCUnknown BCKind = iota
	BCDirichlet
	BCNeumann
)

// BoundaryCondition is a per-face condition: {Dirichlet, Value} or
// {Neumann, Flux}; BCUnknown carries neither. Value/Flux are themselves
// time-and-space functions, following ele/element.go and ele/naturalbcs.go's
// own use of dbf.T for boundary callbacks, rather than fixed scalars: most
// boundary conditions are constant (see ConstantFunc), but the corpus's BC
// functions can depend on simulation time and face position just as well.
type BoundaryCondition struct {
	Kind  BCKind
	Value fun.TimeSpace // for BCDirichlet
	Flux  fun.TimeSpace // for BCNeumann
}

// ConstantFunc wraps v as a fun.TimeSpace that ignores time and position,
// the common case for a boundary condition (spec.md §4.9's "or a constant").
// Grounded on inp/func.go's FuncData, whose "cte" type name this mirrors.
func ConstantFunc(v float64) fun.TimeSpace {
	f, err := fun.New("cte", dbf.Params{&dbf.P{N: "c", V: v}})
	if err != nil {
		// "cte" is a built-in fun type; construction only fails on a
		// programming error in this package, not on caller input.
		panic(err)
	}
	return f
}

// BoundarySet maps boundary face id to condition, with an optional default
// applied to every boundary face lacking an explicit override, and a clock
// every Value/Flux function is evaluated at (spec.md §4.9 operators have no
// time of their own; the owning Stepper calls SetTime before Process).
type BoundarySet struct {
	perFace map[int]BoundaryCondition
	Default BoundaryCondition
	now     float64
}

// NewBoundarySet returns an empty set with no default (BCUnknown).
func NewBoundarySet() *BoundarySet {
	return &BoundarySet{perFace: map[int]BoundaryCondition{}}
}

// Set records an explicit condition for faceId.
func (b *BoundarySet) Set(faceId int, bc BoundaryCondition) { b.perFace[faceId] = bc }

// At returns the condition for faceId: its explicit override, or the
// default if none was set.
func (b *BoundarySet) At(faceId int) BoundaryCondition {
	if bc, ok := b.perFace[faceId]; ok {
		return bc
	}
	return b.Default
}

// SetTime fixes the simulation time every Value/Flux is evaluated at until
// the next call; call once per step, before Process.
func (b *BoundarySet) SetTime(t float64) { b.now = t }

// Now returns the time last set by SetTime.
func (b *BoundarySet) Now() float64 { return b.now }

// ValueAt evaluates bc.Value at this set's current time and face position x.
func (b *BoundarySet) ValueAt(bc BoundaryCondition, x []float64) float64 {
	return bc.Value.F(b.now, x)
}

// FluxAt evaluates bc.Flux at this set's current time and face position x.
func (b *BoundarySet) FluxAt(bc BoundaryCondition, x []float64) float64 {
	return bc.Flux.F(b.now, x)
}
