// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import (
	"github.com/cpmech/oasis/spatial"
	"github.com/cpmech/oasis/temporal"
)

// itemCore holds the fields common to every exchange item.
type itemCore struct {
	Id       string
	quantity Quantity
	elements *spatial.ElementSet
	times    *temporal.TimeSet
	values   *temporal.ValueSet2D
}

// Provider is anything that can be pulled from: a base Output or an
// AdaptedOutput wrapping one. spec.md §3 "output".
type Provider interface {
	ItemId() string
	Quantity() Quantity
	Elements() *spatial.ElementSet
	Times() *temporal.TimeSet
	Values() *temporal.ValueSet2D
	Consumers() []*Input
	AdaptedOutputs() []*AdaptedOutput
	AddAdaptedOutput(ao *AdaptedOutput) error
	Owner() Component

	// Pull drives this provider to cover earliestConsumerTime, returning
	// its current value set. Implemented differently by Output (recurses
	// into the owning component's Update) and AdaptedOutput (transforms
	// the adaptee's pulled values).
	Pull(earliestConsumerTime float64) (*temporal.ValueSet2D, error)

	addConsumer(i *Input)
	removeConsumer(i *Input)
}

// Output is a component's producer exchange item.
type Output struct {
	itemCore
	owner          Component
	consumers      []*Input
	adaptedOutputs []*AdaptedOutput
	valid          bool
}

// NewOutput creates an output owned by owner.
func NewOutput(id string, owner Component, q Quantity) *Output {
	return &Output{itemCore: itemCore{Id: id, quantity: q}, owner: owner, valid: true}
}

func (o *Output) ItemId() string                  { return o.Id }
func (o *Output) Quantity() Quantity              { return o.quantity }
func (o *Output) Elements() *spatial.ElementSet   { return o.elements }
func (o *Output) Times() *temporal.TimeSet        { return o.times }
func (o *Output) Values() *temporal.ValueSet2D    { return o.values }
func (o *Output) Consumers() []*Input             { return o.consumers }
func (o *Output) AdaptedOutputs() []*AdaptedOutput { return o.adaptedOutputs }
func (o *Output) Owner() Component                { return o.owner }

// SetElements/SetTimes/SetValues are used by the owning component during
// preparation (spec.md §3 "Lifecycle").
func (o *Output) SetElements(e *spatial.ElementSet) { o.elements = e }
func (o *Output) SetTimes(t *temporal.TimeSet)      { o.times = t }
func (o *Output) SetValues(v *temporal.ValueSet2D)  { o.values = v }

func (o *Output) addConsumer(i *Input)    { o.consumers = append(o.consumers, i) }
func (o *Output) removeConsumer(i *Input) { o.consumers = removeInput(o.consumers, i) }

// AddAdaptedOutput attaches ao to this output, running only the element-set
// compatibility check (spec.md §4.5): quantity and time-set equality are not
// rechecked since an adaptor may rewrite both.
func (o *Output) AddAdaptedOutput(ao *AdaptedOutput) error {
	if ao.elements != nil {
		if err := checkElementSetCompatible(o.elements, ao.elements); err != nil {
			return err
		}
	}
	ao.adaptee = o
	o.adaptedOutputs = append(o.adaptedOutputs, ao)
	return nil
}

// Pull implements spec.md §4.6 Output.getValues: step the owning component
// forward until its horizon covers earliestConsumerTime (or until it is no
// longer Updated), refresh adapted outputs, drop stale entries, and return
// the current value set.
func (o *Output) Pull(earliestConsumerTime float64) (*temporal.ValueSet2D, error) {
	for o.owner != nil && o.owner.Status() == Updated {
		_, horizonEnd := horizonOf(o.times)
		if horizonEnd >= earliestConsumerTime {
			break
		}
		if err := o.owner.Update(); err != nil {
			return nil, err
		}
	}
	for _, ao := range o.adaptedOutputs {
		ao.refresh()
	}
	dropBefore(o.times, o.values, earliestConsumerTime)
	return o.values, nil
}

func horizonOf(ts *temporal.TimeSet) (start, end float64) {
	if ts == nil {
		return 0, 0
	}
	return ts.Horizon()
}

func dropBefore(ts *temporal.TimeSet, vs *temporal.ValueSet2D, t float64) {
	if ts == nil || vs == nil {
		return
	}
	for ts.Len() > 0 && ts.Times[0].Stamp < t-temporal.Eps {
		ts.RemoveAt(0)
		vs.RemoveRow(0)
	}
}

// Input is a component's consumer exchange item.
type Input struct {
	itemCore
	owner     Component
	providers []Provider
}

// NewInput creates an input owned by owner.
func NewInput(id string, owner Component, q Quantity) *Input {
	return &Input{itemCore: itemCore{Id: id, quantity: q}, owner: owner}
}

func (i *Input) ItemId() string                { return i.Id }
func (i *Input) Quantity() Quantity            { return i.quantity }
func (i *Input) Elements() *spatial.ElementSet { return i.elements }
func (i *Input) Times() *temporal.TimeSet      { return i.times }
func (i *Input) Values() *temporal.ValueSet2D  { return i.values }
func (i *Input) Providers() []Provider         { return i.providers }
func (i *Input) Owner() Component              { return i.owner }

func (i *Input) SetElements(e *spatial.ElementSet) { i.elements = e }
func (i *Input) SetTimes(t *temporal.TimeSet)      { i.times = t }
func (i *Input) SetValues(v *temporal.ValueSet2D)  { i.values = v }

// GetValues implements spec.md §4.6 Input.getValues: pull every provider and
// sum componentwise into the input's own time x element grid, treating the
// quantity's missing-data sentinel as "skip".
func (i *Input) GetValues() (*temporal.ValueSet2D, error) {
	if len(i.providers) == 0 {
		return i.values, nil
	}
	earliest := earliestRequiredTime(i.times)
	var nTimes, nElems int
	acc := make(map[int][]float64)
	for _, p := range i.providers {
		vs, err := p.Pull(earliest)
		if err != nil {
			return nil, err
		}
		if vs == nil {
			continue
		}
		if vs.NumTimes() > nTimes {
			nTimes = vs.NumTimes()
		}
		for t := 0; t < vs.NumTimes(); t++ {
			row := vs.Row(t)
			if len(row) > nElems {
				nElems = len(row)
			}
			cur, ok := acc[t]
			if !ok {
				cur = make([]float64, len(row))
				copy(cur, row)
				acc[t] = cur
				continue
			}
			for e, v := range row {
				if e >= len(cur) {
					continue
				}
				if i.quantity.IsMissing(v) {
					continue
				}
				if i.quantity.IsMissing(cur[e]) {
					cur[e] = v
				} else {
					cur[e] += v
				}
			}
		}
	}
	out := temporal.NewValueSet2D(i.quantity.unitPrimitive())
	for t := 0; t < nTimes; t++ {
		row, ok := acc[t]
		if !ok {
			row = make([]float64, nElems)
		}
		out.SetRow(t, row)
	}
	i.values = out
	return out, nil
}

func earliestRequiredTime(ts *temporal.TimeSet) float64 {
	if ts == nil || ts.Len() == 0 {
		return 0
	}
	return ts.Times[0].Stamp
}

func removeInput(list []*Input, target *Input) []*Input {
	out := list[:0]
	for _, x := range list {
		if x != target {
			out = append(out, x)
		}
	}
	return out
}

// unitPrimitive picks the value-set primitive implied by a quantity; real by
// default (oasis has no distinguished integer-quantity marker beyond the
// value-set primitive itself, see spec.md §9).
func (q Quantity) unitPrimitive() temporal.Primitive { return temporal.RealPrimitive }
