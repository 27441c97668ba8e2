// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt implements the three adapted-output kinds of spec.md §4.7:
// SpaceAreaAdaptor, SpaceLengthAdaptor and TimeAdaptor.
package adapt

import (
	"fmt"
	"math"

	"github.com/cpmech/oasis/comm"
	"github.com/cpmech/oasis/geom"
	"github.com/cpmech/oasis/oasiserr"
	"github.com/cpmech/oasis/spatial"
	"github.com/cpmech/oasis/temporal"
)

// NewSpaceAreaAdaptor builds an AdaptedOutput that multiplies each of
// adaptee's per-element values by area(element)^exponent, a polygon-only
// transform (spec.md §4.7).
func NewSpaceAreaAdaptor(id string, adaptee comm.Provider, exponent float64) (*comm.AdaptedOutput, error) {
	elements := adaptee.Elements()
	if elements == nil || elements.Type != spatial.Polygon {
		return nil, oasiserr.NewIncompatibleItem("space area adaptor %q: adaptee elements must be polygons", id)
	}
	factor := make([]float64, elements.Len())
	for i, e := range elements.Elements {
		factor[i] = math.Pow(geom.PolygonArea(e.AsPolygon()), exponent)
	}
	q := rescaledQuantity(adaptee.Quantity(), comm.Length, 2*exponent, exponent)
	ao := comm.NewAdaptedOutput(id, q, scaleTransform(factor))
	ao.SetElements(elements)
	return ao, nil
}

// NewSpaceLengthAdaptor builds an AdaptedOutput that multiplies each of
// adaptee's per-element values by length(element)^exponent, a polyline-only
// transform (spec.md §4.7).
func NewSpaceLengthAdaptor(id string, adaptee comm.Provider, exponent float64) (*comm.AdaptedOutput, error) {
	elements := adaptee.Elements()
	if elements == nil || elements.Type != spatial.Polyline {
		return nil, oasiserr.NewIncompatibleItem("space length adaptor %q: adaptee elements must be polylines", id)
	}
	factor := make([]float64, elements.Len())
	for i, e := range elements.Elements {
		factor[i] = math.Pow(geom.PolylineLength(e.AsPolyline()), exponent)
	}
	q := rescaledQuantity(adaptee.Quantity(), comm.Length, exponent, exponent)
	ao := comm.NewAdaptedOutput(id, q, scaleTransform(factor))
	ao.SetElements(elements)
	return ao, nil
}

// rescaledQuantity copies q, increments its Length-axis dimension power by
// dimDelta and annotates the caption/description with the m^exp suffix
// (spec.md §4.7).
func rescaledQuantity(q comm.Quantity, axis comm.BaseAxis, dimDelta, exponent float64) comm.Quantity {
	out := q
	out.Unit.Dim = q.Unit.Dim.WithIncrement(axis, dimDelta)
	suffix := fmt.Sprintf(" * m^%g", dimDelta)
	out.Caption = q.Caption + suffix
	out.Description = q.Description + suffix
	return out
}

// scaleTransform returns a TransformFunc that pulls the adaptee, scales its
// current per-element values by factor and rewrites the adapted output's
// time set to the adaptee's.
func scaleTransform(factor []float64) comm.TransformFunc {
	return func(ao *comm.AdaptedOutput, earliestConsumerTime float64) (*temporal.ValueSet2D, error) {
		vs, err := ao.Adaptee().Pull(earliestConsumerTime)
		if err != nil {
			return nil, err
		}
		if vs == nil {
			return nil, nil
		}
		out := temporal.NewValueSet2D(vs.Primitive)
		for t := 0; t < vs.NumTimes(); t++ {
			row := vs.Row(t)
			scaled := make([]float64, len(row))
			for e, v := range row {
				f := 1.0
				if e < len(factor) {
					f = factor[e]
				}
				scaled[e] = v * f
			}
			if err := out.SetRow(t, scaled); err != nil {
				return nil, err
			}
		}
		ao.SetTimes(ao.Adaptee().Times())
		return out, nil
	}
}
