// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import (
	"github.com/cpmech/oasis/comm"
	"github.com/cpmech/oasis/temporal"
)

// timeAdaptorState is the adaptor-private state stashed on the AdaptedOutput
// via SetState, so a further chained adaptor or a diagnostic tool can reach
// the underlying buffer without widening the Provider interface.
type timeAdaptorState struct {
	buffer   *temporal.TimeBuffer
	lastFed  float64
	anyFed   bool
}

// NewTimeAdaptor builds an AdaptedOutput that resamples adaptee's time
// series through a TimeBuffer, stepping the adaptee's owning component
// forward as needed to cover the querier's requested stamp (spec.md §4.7).
func NewTimeAdaptor(id string, adaptee comm.Provider) *comm.AdaptedOutput {
	st := &timeAdaptorState{buffer: temporal.NewTimeBuffer()}
	ao := comm.NewAdaptedOutput(id, adaptee.Quantity(), timeTransform)
	ao.SetElements(adaptee.Elements())
	ao.SetState(st)
	return ao
}

// timeTransform implements §4.7's TimeAdaptor.getValues(): step the adaptee
// forward until it covers the requested stamp, drain its current series
// into the buffer, and answer from the buffer.
func timeTransform(ao *comm.AdaptedOutput, earliestConsumerTime float64) (*temporal.ValueSet2D, error) {
	st := ao.State().(*timeAdaptorState)
	adaptee := ao.Adaptee()

	if owner := adaptee.Owner(); owner != nil {
		for owner.Status() == comm.Valid || owner.Status() == comm.Updated {
			_, end := horizonEndOf(adaptee.Times())
			if end >= earliestConsumerTime {
				break
			}
			if err := owner.Update(); err != nil {
				return nil, err
			}
		}
	}

	vs, err := adaptee.Pull(earliestConsumerTime)
	if err != nil {
		return nil, err
	}
	if vs != nil {
		times := adaptee.Times()
		for t := 0; t < vs.NumTimes() && times != nil && t < times.Len(); t++ {
			tm := times.Times[t]
			if st.anyFed && tm.Stamp <= st.lastFed+temporal.Eps {
				continue // already buffered in a previous pull
			}
			if err := st.buffer.AddValues(tm, vs.Row(t)); err != nil {
				return nil, err
			}
			st.lastFed, st.anyFed = tm.Stamp, true
		}
	}

	row, err := st.buffer.GetValues(temporal.Time{Stamp: earliestConsumerTime})
	if err != nil {
		return nil, err
	}
	st.buffer.ClearBefore(earliestConsumerTime)

	out := temporal.NewValueSet2D(temporal.RealPrimitive)
	if err := out.SetRow(0, row); err != nil {
		return nil, err
	}
	ao.SetTimes(&temporal.TimeSet{Id: ao.ItemId(), Times: []temporal.Time{{Stamp: earliestConsumerTime}}})
	return out, nil
}

func horizonEndOf(ts *temporal.TimeSet) (start, end float64) {
	if ts == nil {
		return 0, 0
	}
	return ts.Horizon()
}
