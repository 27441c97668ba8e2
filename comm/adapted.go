// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import (
	"github.com/cpmech/oasis/spatial"
	"github.com/cpmech/oasis/temporal"
)

// TransformFunc computes an AdaptedOutput's current value set from its
// adaptee's pulled values. Implementations live in comm/adapt (spec.md
// §4.7): SpaceAreaAdaptor, SpaceLengthAdaptor, TimeAdaptor.
type TransformFunc func(ao *AdaptedOutput, earliestConsumerTime float64) (*temporal.ValueSet2D, error)

// AdaptedOutput wraps exactly one adaptee Provider and rewrites its values
// in space or time. It is itself a Provider, so it can be consumed directly
// or wrapped again by a further AdaptedOutput (chaining, spec.md §2).
type AdaptedOutput struct {
	itemCore
	adaptee        Provider
	consumers      []*Input
	adaptedOutputs []*AdaptedOutput
	Args           map[string]float64
	transform      TransformFunc
	state          interface{} // adaptor-private state, e.g. a *temporal.TimeBuffer
}

// NewAdaptedOutput creates an adapted output with the given id, quantity
// (the adaptor is responsible for computing the rewritten quantity before
// construction) and transform function.
func NewAdaptedOutput(id string, q Quantity, transform TransformFunc) *AdaptedOutput {
	return &AdaptedOutput{itemCore: itemCore{Id: id, quantity: q}, transform: transform, Args: map[string]float64{}}
}

func (a *AdaptedOutput) ItemId() string                  { return a.Id }
func (a *AdaptedOutput) Quantity() Quantity               { return a.quantity }
func (a *AdaptedOutput) Elements() *spatial.ElementSet    { return a.elements }
func (a *AdaptedOutput) Times() *temporal.TimeSet         { return a.times }
func (a *AdaptedOutput) Values() *temporal.ValueSet2D     { return a.values }
func (a *AdaptedOutput) Consumers() []*Input              { return a.consumers }
func (a *AdaptedOutput) AdaptedOutputs() []*AdaptedOutput { return a.adaptedOutputs }
func (a *AdaptedOutput) Adaptee() Provider                { return a.adaptee }

// Owner returns the adaptee's owning component, following the chain down to
// the base Output (an adapted output has no component of its own).
func (a *AdaptedOutput) Owner() Component {
	if a.adaptee == nil {
		return nil
	}
	return a.adaptee.Owner()
}

func (a *AdaptedOutput) SetElements(e *spatial.ElementSet) { a.elements = e }
func (a *AdaptedOutput) SetTimes(t *temporal.TimeSet)      { a.times = t }
func (a *AdaptedOutput) SetValues(v *temporal.ValueSet2D)  { a.values = v }
func (a *AdaptedOutput) State() interface{}                { return a.state }
func (a *AdaptedOutput) SetState(s interface{})            { a.state = s }

func (a *AdaptedOutput) addConsumer(i *Input)    { a.consumers = append(a.consumers, i) }
func (a *AdaptedOutput) removeConsumer(i *Input) { a.consumers = removeInput(a.consumers, i) }

// AddAdaptedOutput attaches a further adaptor on top of this one, again
// running only the element-set check (spec.md §4.5).
func (a *AdaptedOutput) AddAdaptedOutput(ao *AdaptedOutput) error {
	if ao.elements != nil && a.elements != nil {
		if err := checkElementSetCompatible(a.elements, ao.elements); err != nil {
			return err
		}
	}
	ao.adaptee = a
	a.adaptedOutputs = append(a.adaptedOutputs, ao)
	return nil
}

// refresh recomputes this adapted output's values from its adaptee without
// an explicit consumer time horizon; used when the parent output is pulled
// and wants every attached adaptor kept current (spec.md §4.6 step 3).
func (a *AdaptedOutput) refresh() {
	earliest := earliestRequiredTime(a.times)
	a.transform(a, earliest)
}

// Pull implements Provider for an adapted output: invoke the transform,
// which is responsible for pulling the adaptee itself.
func (a *AdaptedOutput) Pull(earliestConsumerTime float64) (*temporal.ValueSet2D, error) {
	vs, err := a.transform(a, earliestConsumerTime)
	if err != nil {
		return nil, err
	}
	a.values = vs
	for _, ao := range a.adaptedOutputs {
		ao.refresh()
	}
	return vs, nil
}
