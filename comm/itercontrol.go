// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import "math"

// IterationController hosts a set of sub-components wired in a cycle and
// drives them to a joint fixed point once per outer time step (spec.md §9's
// extension surface, supplemented from the original IterationController:
// see DESIGN.md). It is itself a Component, so it nests like any other.
//
// Convergence policy (an Open Question in spec.md §9, decided here): the
// outer iteration stops when every shared exchange item's values changed by
// at most tolerance in absolute value from the previous iteration, relaxing
// each item's new value toward its previous value by relaxation between
// iterations (relaxation=1 disables blending).
type IterationController struct {
	*BaseComponent
	subComponents []Component
	maxIterations int
	tolerance     float64
	relaxation    float64

	lastIterations int
	prevValues     map[string][]float64
}

// NewIterationController creates a controller running subComponents to a
// joint fixed point every outer step, from nowTime to endTime.
func NewIterationController(id string, subComponents []Component, maxIterations int, tolerance, relaxation float64, nowTime, endTime float64) *IterationController {
	c := &IterationController{
		subComponents: subComponents,
		maxIterations: maxIterations,
		tolerance:     tolerance,
		relaxation:    relaxation,
		prevValues:    map[string][]float64{},
	}
	c.BaseComponent = NewBaseComponent(id, c, nowTime, endTime)
	return c
}

// LastIterations reports how many inner iterations the most recent Step ran.
func (c *IterationController) LastIterations() int { return c.lastIterations }

// ApplyInputs is a no-op: the controller's own inputs (if any) are pulled by
// BaseComponent.Update and applied directly by whichever sub-component
// declared them as its own input; the controller itself holds no simulated
// state of its own.
func (c *IterationController) ApplyInputs() error { return nil }

// Step runs the hosted sub-components to a joint fixed point, per spec.md
// §9's supplemented IterationController behavior. Every sub-component
// implementing ManageState (BaseComponent does, by default) is rewound to
// the time level Step started at between non-converged passes, so the loop
// re-solves one step instead of marching the sub-components' clocks forward
// once per inner iteration.
func (c *IterationController) Step() (float64, error) {
	nowTime := c.NowTime()
	for _, sub := range c.subComponents {
		if ms, ok := sub.(ManageState); ok {
			if err := ms.KeepCurrentState(); err != nil {
				return nowTime, err
			}
		}
	}
	for iter := 0; iter < c.maxIterations; iter++ {
		c.lastIterations = iter + 1
		if iter > 0 {
			for _, sub := range c.subComponents {
				if ms, ok := sub.(ManageState); ok {
					if err := ms.RestoreState(); err != nil {
						return nowTime, err
					}
				}
			}
		}
		maxChange := 0.0
		stepNow := c.NowTime()
		for _, sub := range c.subComponents {
			if err := sub.Update(); err != nil {
				return nowTime, err
			}
			for _, out := range sub.Outputs() {
				maxChange = math.Max(maxChange, c.relaxAndMeasure(sub.Id(), out))
			}
			stepNow = math.Max(stepNow, sub.NowTime())
		}
		nowTime = stepNow
		if maxChange <= c.tolerance {
			break
		}
	}
	for _, sub := range c.subComponents {
		if ms, ok := sub.(ManageState); ok {
			ms.ClearState()
		}
	}
	return nowTime, nil
}

// relaxAndMeasure blends out's freshly computed values toward their previous
// iteration's values by c.relaxation, and returns the resulting max absolute
// change so the caller can test convergence.
func (c *IterationController) relaxAndMeasure(ownerId string, out *Output) float64 {
	vs := out.Values()
	if vs == nil {
		return 0
	}
	key := ownerId + "/" + out.ItemId()
	maxChange := 0.0
	for t := 0; t < vs.NumTimes(); t++ {
		row := vs.Row(t)
		prev, ok := c.prevValues[key]
		if ok && len(prev) == len(row) {
			for e := range row {
				blended := c.relaxation*row[e] + (1-c.relaxation)*prev[e]
				change := math.Abs(blended - prev[e])
				if change > maxChange {
					maxChange = change
				}
				row[e] = blended
			}
		} else {
			maxChange = math.Inf(1) // first iteration: force at least one more pass
		}
		c.prevValues[key] = append([]float64(nil), row...)
	}
	return maxChange
}

// RefreshOutputs is a no-op: the controller exposes no outputs of its own,
// only the sub-components' outputs, already refreshed inside Step.
func (c *IterationController) RefreshOutputs() error { return nil }
