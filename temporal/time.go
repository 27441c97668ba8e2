// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package temporal implements the time/time-set/value-set primitives and the
// time buffer that interpolates and extrapolates between stored samples.
package temporal

import (
	"github.com/cpmech/gosl/chk"
)

// Eps is the minimum gap, in days, required between two stamps for the
// later one to be considered strictly later (1 microsecond expressed in
// days, spec.md §6).
const Eps = 1e-6 / 86400.0

// Time is a timestamp, in days since 1970-01-01 00:00:00 UTC, plus a
// duration in days (zero duration means a stamp).
type Time struct {
	Stamp    float64
	Duration float64
}

// HasDuration reports whether this time is a span rather than a stamp.
func (t Time) HasDuration() bool { return t.Duration > 0 }

// End returns Stamp + Duration.
func (t Time) End() float64 { return t.Stamp + t.Duration }

// TimeSet is an ordered list of times, strictly increasing by stamp by at
// least Eps, either all stamps or all spans, never mixed.
type TimeSet struct {
	Id             string
	Times          []Time
	UTCOffsetHours float64
}

// Len returns the number of times.
func (s *TimeSet) Len() int { return len(s.Times) }

// HasDurations reports whether this set holds spans.
func (s *TimeSet) HasDurations() bool {
	if len(s.Times) == 0 {
		return false
	}
	return s.Times[0].HasDuration()
}

// Horizon returns the span from the first stamp to the end of the last
// interval.
func (s *TimeSet) Horizon() (start, end float64) {
	if len(s.Times) == 0 {
		return 0, 0
	}
	return s.Times[0].Stamp, s.Times[len(s.Times)-1].End()
}

// Insert adds t in sort-stable position (after every time whose stamp is <=
// t.Stamp), rejecting only a mix of stamps and spans; it does not enforce the
// Eps gap between stamps, so an equal or out-of-order stamp is accepted.
func (s *TimeSet) Insert(t Time) error {
	if len(s.Times) > 0 && s.Times[0].HasDuration() != t.HasDuration() {
		return chk.Err("time set %q: cannot mix stamps and spans", s.Id)
	}
	i := 0
	for i < len(s.Times) && s.Times[i].Stamp <= t.Stamp {
		i++
	}
	s.Times = append(s.Times, Time{})
	copy(s.Times[i+1:], s.Times[i:])
	s.Times[i] = t
	return nil
}

// Clone returns a deep copy, used by a component's state snapshot/restore
// (spec.md §4's ManageState extension).
func (s *TimeSet) Clone() *TimeSet {
	if s == nil {
		return nil
	}
	return &TimeSet{Id: s.Id, Times: append([]Time(nil), s.Times...), UTCOffsetHours: s.UTCOffsetHours}
}

// RemoveAt removes the time at position i.
func (s *TimeSet) RemoveAt(i int) {
	s.Times = append(s.Times[:i], s.Times[i+1:]...)
}
