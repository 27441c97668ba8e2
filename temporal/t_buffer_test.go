// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temporal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_buffer_roundtrip(tst *testing.T) {
	chk.PrintTitle("buffer_roundtrip")
	b := NewTimeBuffer()
	if err := b.AddValues(Time{Stamp: 0}, []float64{1, 2, 3}); err != nil {
		tst.Fatalf("addValues failed: %v", err)
	}
	got, err := b.GetValues(Time{Stamp: 0})
	if err != nil {
		tst.Fatalf("getValues failed: %v", err)
	}
	chk.Vector(tst, "values at t=0", 1e-9, got, []float64{1, 2, 3})
}

func Test_buffer_interpolation(tst *testing.T) {
	chk.PrintTitle("buffer_interpolation")
	b := NewTimeBuffer()
	b.AddValues(Time{Stamp: 0}, []float64{0})
	b.AddValues(Time{Stamp: 2}, []float64{10})
	got, err := b.GetValues(Time{Stamp: 1})
	if err != nil {
		tst.Fatalf("getValues failed: %v", err)
	}
	chk.Scalar(tst, "interp", 1e-9, got[0], 5.0)
}

func Test_buffer_relaxationNearest(tst *testing.T) {
	chk.PrintTitle("buffer_relaxationNearest")
	b := NewTimeBuffer()
	b.Relaxation = 1
	b.AddValues(Time{Stamp: 0}, []float64{0})
	b.AddValues(Time{Stamp: 2}, []float64{10})
	got, err := b.GetValues(Time{Stamp: 5})
	if err != nil {
		tst.Fatalf("getValues failed: %v", err)
	}
	chk.Scalar(tst, "nearest extrapolation", 1e-9, got[0], 10.0)
}

func Test_buffer_outOfHorizon(tst *testing.T) {
	chk.PrintTitle("buffer_outOfHorizon")
	b := NewTimeBuffer()
	b.DoExtrapolate = false
	b.AddValues(Time{Stamp: 0}, []float64{0})
	b.AddValues(Time{Stamp: 2}, []float64{10})
	b.ClearBefore(1)
	_, err := b.GetValues(Time{Stamp: 0})
	if err == nil {
		tst.Errorf("expected OutOfHorizon error")
	}
	if _, ok := err.(*OutOfHorizonError); !ok {
		tst.Errorf("expected *OutOfHorizonError, got %T", err)
	}
}

func Test_buffer_mixedStampsSpansRejected(tst *testing.T) {
	chk.PrintTitle("buffer_mixedStampsSpansRejected")
	b := NewTimeBuffer()
	b.AddValues(Time{Stamp: 0}, []float64{0})
	err := b.AddValues(Time{Stamp: 1, Duration: 1}, []float64{1})
	if err == nil {
		tst.Errorf("expected mixed stamp/span error")
	}
}
