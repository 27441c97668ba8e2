// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/rs/xid"

	"github.com/cpmech/oasis/oasiserr"
	"github.com/cpmech/oasis/spatial"
	"github.com/cpmech/oasis/temporal"
)

// NewAnonymousGroupId returns a short, collision-resistant id for a "loop"
// link that did not name its iteration group explicitly (spec.md §6: "all
// such groups ... are exposed to the launcher").
func NewAnonymousGroupId() string { return "itergroup-" + xid.New().String() }

// Connect attaches consumer in to provider out after running the three
// checks of spec.md §4.5, in order: quantity equality, time-set
// compatibility, element-set compatibility. Any failure returns
// *oasiserr.IncompatibleItem and leaves both sides untouched. On success the
// edge is recorded symmetrically: out gains in as a consumer and in gains
// out as a provider.
func Connect(out Provider, in *Input) error {
	if !out.Quantity().Equal(in.Quantity()) {
		return oasiserr.NewIncompatibleItem("connect %q -> %q: quantities differ", out.ItemId(), in.ItemId())
	}
	if err := checkTimeSetCompatible(out.Times(), in.Times()); err != nil {
		return oasiserr.NewIncompatibleItem("connect %q -> %q: %v", out.ItemId(), in.ItemId(), err)
	}
	if err := checkElementSetCompatible(out.Elements(), in.Elements()); err != nil {
		return oasiserr.NewIncompatibleItem("connect %q -> %q: %v", out.ItemId(), in.ItemId(), err)
	}
	registerEdge(out, in)
	return nil
}

// Disconnect removes a previously Connect-ed edge, restoring the state prior
// to the matching Connect.
func Disconnect(out Provider, in *Input) {
	out.removeConsumer(in)
	in.providers = removeProvider(in.providers, out)
}

func registerEdge(out Provider, in *Input) {
	out.addConsumer(in)
	in.providers = append(in.providers, out)
}

func removeProvider(list []Provider, target Provider) []Provider {
	out := list[:0]
	for _, x := range list {
		if x != target {
			out = append(out, x)
		}
	}
	return out
}

func checkTimeSetCompatible(producer, consumer *temporal.TimeSet) error {
	if producer == nil {
		return chk.Err("producer has no time set yet")
	}
	if consumer == nil || consumer.Len() == 0 {
		return nil // consumer has not declared a time set yet; nothing to check
	}
	if producer.Len() > 0 && producer.HasDurations() != consumer.HasDurations() {
		return chk.Err("producer and consumer disagree on whether times carry durations")
	}
	pStart, pEnd := producer.Horizon()
	cStart, cEnd := consumer.Horizon()
	if cEnd < pStart-temporal.Eps || cStart > pEnd+temporal.Eps {
		return chk.Err("consumer time set [%g,%g] does not overlap producer horizon [%g,%g]", cStart, cEnd, pStart, pEnd)
	}
	return nil
}

func checkElementSetCompatible(producer, consumer *spatial.ElementSet) error {
	if producer == nil || consumer == nil {
		return chk.Err("both element sets must be set before connecting")
	}
	if producer.Type != consumer.Type {
		return chk.Err("element types differ: %s vs %s", producer.Type, consumer.Type)
	}
	if producer.Len() != consumer.Len() {
		return chk.Err("element counts differ: %d vs %d", producer.Len(), consumer.Len())
	}
	if producer.Type == spatial.IdBased {
		for i := range producer.Elements {
			if producer.Elements[i].Id != consumer.Elements[i].Id {
				return chk.Err("id-based element sets differ at index %d: %q vs %q", i, producer.Elements[i].Id, consumer.Elements[i].Id)
			}
		}
		return nil
	}
	for i := range producer.Elements {
		pe, ce := producer.Elements[i], consumer.Elements[i]
		if len(pe.Verts) != len(ce.Verts) {
			return chk.Err("element %d vertex counts differ: %d vs %d (needs a spatial adapted output)", i, len(pe.Verts), len(ce.Verts))
		}
		for v := range pe.Verts {
			if !coordClose(pe.Verts[v].X, ce.Verts[v].X) || !coordClose(pe.Verts[v].Y, ce.Verts[v].Y) || !coordClose(pe.Verts[v].Z, ce.Verts[v].Z) {
				return chk.Err("element %d vertex %d differs beyond tolerance (needs a spatial adapted output)", i, v)
			}
		}
	}
	return nil
}

func coordClose(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
