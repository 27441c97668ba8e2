// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temporal

import (
	"github.com/cpmech/gosl/chk"
)

// OutOfHorizonError signals a time-buffer query outside the allowed horizon
// with extrapolation disabled (spec.md §7).
type OutOfHorizonError struct{ msg string }

func (e *OutOfHorizonError) Error() string { return e.msg }

func newOutOfHorizon(format string, args ...interface{}) *OutOfHorizonError {
	return &OutOfHorizonError{msg: chk.Err(format, args...).Error()}
}

// TimeBuffer stores (time, vector-of-element-values) pairs and answers
// "values at T" via interpolation or extrapolation, see spec.md §4.4.
type TimeBuffer struct {
	set           TimeSet
	values        [][]float64
	DoExtrapolate bool
	Relaxation    float64 // 0 = full linear extrapolation, 1 = nearest value
}

// NewTimeBuffer returns a buffer with the teacher-matching defaults:
// extrapolation on, relaxation 1 (nearest extrapolation).
func NewTimeBuffer() *TimeBuffer {
	return &TimeBuffer{DoExtrapolate: true, Relaxation: 1}
}

// Len returns the number of stored samples.
func (b *TimeBuffer) Len() int { return len(b.set.Times) }

// AddValues appends (time, vector) if time is strictly later than the last
// stored time by > Eps; stamps and spans must not be mixed; a span may
// overlap the existing last span only within Eps.
func (b *TimeBuffer) AddValues(t Time, vector []float64) error {
	n := len(b.set.Times)
	if n > 0 {
		last := b.set.Times[n-1]
		if last.HasDuration() != t.HasDuration() {
			return chk.Err("time buffer: cannot mix stamps and spans")
		}
		if t.HasDuration() {
			if t.Stamp < last.Stamp-Eps {
				return chk.Err("time buffer: span must not start before the last stored span beyond tolerance")
			}
			if t.Stamp < last.End()-Eps {
				return chk.Err("time buffer: span overlaps the last stored span beyond tolerance")
			}
		} else {
			if t.Stamp <= last.Stamp+Eps {
				return chk.Err("time buffer: stamp %g is not strictly later than last stamp %g", t.Stamp, last.Stamp)
			}
		}
	}
	b.set.Times = append(b.set.Times, t)
	cp := make([]float64, len(vector))
	copy(cp, vector)
	b.values = append(b.values, cp)
	return nil
}

// horizonCheck applies the §4.4 extrapolation veto.
func (b *TimeBuffer) horizonCheck(lo, hi float64) error {
	if b.DoExtrapolate || len(b.set.Times) == 0 {
		return nil
	}
	start, end := b.set.Horizon()
	if lo < start-Eps || hi > end+Eps {
		return newOutOfHorizon("time buffer: requested interval [%g,%g] is outside the stored horizon [%g,%g]", lo, hi, start, end)
	}
	return nil
}

// GetValues answers a query for requested time t, dispatching on whether the
// store holds stamps or spans and whether t itself is a stamp or a span.
func (b *TimeBuffer) GetValues(t Time) ([]float64, error) {
	if len(b.set.Times) == 0 {
		return nil, chk.Err("time buffer: no data stored")
	}
	if !t.HasDuration() {
		if err := b.horizonCheck(t.Stamp, t.Stamp); err != nil {
			return nil, err
		}
		if b.set.HasDurations() {
			return b.spanToStamp(t.Stamp)
		}
		return b.stampToStamp(t.Stamp)
	}
	lo, hi := t.Stamp, t.End()
	if err := b.horizonCheck(lo, hi); err != nil {
		return nil, err
	}
	if b.set.HasDurations() {
		return b.spanToSpan(lo, hi)
	}
	return b.stampToSpan(lo, hi)
}

func (b *TimeBuffer) nElems() int { return len(b.values[0]) }

// stampToStamp: linear interpolation inside the bracket, blended
// extrapolation (by 1-Relaxation) outside it.
func (b *TimeBuffer) stampToStamp(ts float64) ([]float64, error) {
	n := len(b.set.Times)
	if n == 1 {
		return cloneVec(b.values[0]), nil
	}
	if ts < b.set.Times[0].Stamp {
		return b.extrapolate(ts, 0, 1), nil
	}
	if ts > b.set.Times[n-1].Stamp {
		return b.extrapolate(ts, n-2, n-1), nil
	}
	for k := 0; k+1 < n; k++ {
		t0, t1 := b.set.Times[k].Stamp, b.set.Times[k+1].Stamp
		if ts >= t0 && ts <= t1 {
			return b.interpolate(ts, k, k+1), nil
		}
	}
	return cloneVec(b.values[n-1]), nil
}

func (b *TimeBuffer) interpolate(ts float64, k0, k1 int) []float64 {
	t0, t1 := b.set.Times[k0].Stamp, b.set.Times[k1].Stamp
	frac := 0.0
	if t1 > t0 {
		frac = (ts - t0) / (t1 - t0)
	}
	out := make([]float64, b.nElems())
	for e := 0; e < b.nElems(); e++ {
		out[e] = b.values[k0][e] + frac*(b.values[k1][e]-b.values[k0][e])
	}
	return out
}

// extrapolate computes the full linear extrapolation from the two reference
// samples k0,k1, then blends toward the nearest edge value by (1-Relaxation):
// Relaxation=1 -> nearest edge; Relaxation=0 -> full linear extrapolation.
func (b *TimeBuffer) extrapolate(ts float64, k0, k1 int) []float64 {
	t0, t1 := b.set.Times[k0].Stamp, b.set.Times[k1].Stamp
	nearest := k1
	if ts < t0 {
		nearest = k0
	}
	full := make([]float64, b.nElems())
	slope := 0.0
	for e := 0; e < b.nElems(); e++ {
		if t1 > t0 {
			slope = (b.values[k1][e] - b.values[k0][e]) / (t1 - t0)
		}
		full[e] = b.values[nearest][e] + slope*(ts-b.set.Times[nearest].Stamp)
	}
	out := make([]float64, b.nElems())
	for e := 0; e < b.nElems(); e++ {
		blend := 1 - b.Relaxation
		out[e] = b.values[nearest][e]*(1-blend) + full[e]*blend
	}
	return out
}

// spanToStamp: value of the containing span, or relaxed extrapolation.
func (b *TimeBuffer) spanToStamp(ts float64) ([]float64, error) {
	n := len(b.set.Times)
	for k := 0; k < n; k++ {
		tb, te := b.set.Times[k].Stamp, b.set.Times[k].End()
		if ts >= tb && ts < te+Eps {
			return cloneVec(b.values[k]), nil
		}
	}
	if ts < b.set.Times[0].Stamp {
		return b.extrapolateSpan(ts, 0, minInt(1, n-1)), nil
	}
	return b.extrapolateSpan(ts, maxInt(0, n-2), n-1), nil
}

func (b *TimeBuffer) extrapolateSpan(ts float64, k0, k1 int) []float64 {
	t0 := midSpan(b.set.Times[k0])
	t1 := midSpan(b.set.Times[k1])
	nearest := k1
	if ts < t0 {
		nearest = k0
	}
	out := make([]float64, b.nElems())
	for e := 0; e < b.nElems(); e++ {
		slope := 0.0
		if t1 > t0 {
			slope = (b.values[k1][e] - b.values[k0][e]) / (t1 - t0)
		}
		full := b.values[nearest][e] + slope*(ts-midSpan(b.set.Times[nearest]))
		blend := 1 - b.Relaxation
		out[e] = b.values[nearest][e]*(1-blend) + full*blend
	}
	return out
}

func midSpan(t Time) float64 { return (t.Stamp + t.End()) / 2 }

// stampToSpan: trapezoidal accumulation of stored-stamp intervals that
// overlap [lo,hi], normalized by the requested span length; outside
// coverage falls back to the stamp extrapolation blended by Relaxation.
func (b *TimeBuffer) stampToSpan(lo, hi float64) ([]float64, error) {
	n := len(b.set.Times)
	reqLen := hi - lo
	out := make([]float64, b.nElems())
	if n < 2 {
		return cloneVec(b.values[0]), nil
	}
	for k := 0; k+1 < n; k++ {
		t0, t1 := b.set.Times[k].Stamp, b.set.Times[k+1].Stamp
		ov0, ov1, ok := overlap(t0, t1, lo, hi)
		if !ok {
			continue
		}
		weight := (ov1 - ov0)
		if reqLen > Eps {
			weight /= reqLen
		}
		for e := 0; e < b.nElems(); e++ {
			out[e] += 0.5 * (b.values[k][e] + b.values[k+1][e]) * weight
		}
	}
	if lo < b.set.Times[0].Stamp-Eps {
		extra := b.extrapolate(lo, 0, 1)
		frac := (b.set.Times[0].Stamp - lo) / reqLen
		for e := range out {
			out[e] += extra[e] * frac
		}
	}
	if hi > b.set.Times[n-1].Stamp+Eps {
		extra := b.extrapolate(hi, n-2, n-1)
		frac := (hi - b.set.Times[n-1].Stamp) / reqLen
		for e := range out {
			out[e] += extra[e] * frac
		}
	}
	return out, nil
}

// spanToSpan: same overlap accounting as stampToSpan but piecewise constant
// (no trapezoidal midpointing).
func (b *TimeBuffer) spanToSpan(lo, hi float64) ([]float64, error) {
	n := len(b.set.Times)
	reqLen := hi - lo
	out := make([]float64, b.nElems())
	for k := 0; k < n; k++ {
		tb, te := b.set.Times[k].Stamp, b.set.Times[k].End()
		ov0, ov1, ok := overlap(tb, te, lo, hi)
		if !ok {
			continue
		}
		weight := (ov1 - ov0)
		if reqLen > Eps {
			weight /= reqLen
		}
		for e := 0; e < b.nElems(); e++ {
			out[e] += b.values[k][e] * weight
		}
	}
	if lo < b.set.Times[0].Stamp-Eps {
		extra := b.extrapolateSpan(lo, 0, minInt(1, n-1))
		frac := (b.set.Times[0].Stamp - lo) / reqLen
		for e := range out {
			out[e] += extra[e] * frac
		}
	}
	last := n - 1
	if hi > b.set.Times[last].End()+Eps {
		extra := b.extrapolateSpan(hi, maxInt(0, last-1), last)
		frac := (hi - b.set.Times[last].End()) / reqLen
		for e := range out {
			out[e] += extra[e] * frac
		}
	}
	return out, nil
}

// overlap returns the intersection [max(a0,b0), min(a1,b1)] of [a0,a1] and
// [b0,b1], handling the four partial-overlap cases (inside, covering, left
// overhang, right overhang) uniformly via clamping.
func overlap(a0, a1, b0, b1 float64) (lo, hi float64, ok bool) {
	lo = maxF(a0, b0)
	hi = minF(a1, b1)
	if hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClearBefore drops all entries whose stamp < t.
func (b *TimeBuffer) ClearBefore(t float64) {
	i := 0
	for i < len(b.set.Times) && b.set.Times[i].Stamp < t {
		i++
	}
	b.set.Times = b.set.Times[i:]
	b.values = b.values[i:]
}

// ClearAfter drops all entries whose stamp >= t.
func (b *TimeBuffer) ClearAfter(t float64) {
	i := 0
	for i < len(b.set.Times) && b.set.Times[i].Stamp < t {
		i++
	}
	b.set.Times = b.set.Times[:i]
	b.values = b.values[:i]
}
