// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cpmech/oasis/geom"
	"github.com/cpmech/oasis/spatial"
)

func TestMapper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "spatial mapper suite")
}

func point(id string, x, y float64) *spatial.Element {
	return &spatial.Element{Id: id, Verts: []geom.Coordinate{{X: x, Y: y}}}
}

func square(id string, x0, y0, side float64) *spatial.Element {
	return &spatial.Element{Id: id, Verts: []geom.Coordinate{
		{X: x0, Y: y0}, {X: x0 + side, Y: y0}, {X: x0 + side, Y: y0 + side}, {X: x0, Y: y0 + side},
	}}
}

var _ = Describe("Mapper", func() {
	It("means two points falling inside one target polygon", func() {
		from := &spatial.ElementSet{Id: "rain-gauges", Type: spatial.Point, Elements: []*spatial.Element{
			point("g0", 0.25, 0.25), point("g1", 0.75, 0.75),
		}}
		to := &spatial.ElementSet{Id: "catchment", Type: spatial.Polygon, Elements: []*spatial.Element{
			square("c0", 0, 0, 1),
		}}
		mp := spatial.NewMapper()
		Expect(mp.Initialize(spatial.Mean, from, to)).To(Succeed())
		v00, err := mp.GetValueFromMappingMatrix(0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v00).To(BeNumerically("~", 0.5, 1e-9))
		v01, err := mp.GetValueFromMappingMatrix(0, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(v01).To(BeNumerically("~", 0.5, 1e-9))
	})

	It("rejects a method not permitted for the element type pair", func() {
		from := &spatial.ElementSet{Id: "gauges", Type: spatial.Point, Elements: []*spatial.Element{point("g0", 0, 0)}}
		to := &spatial.ElementSet{Id: "gauges2", Type: spatial.Point, Elements: []*spatial.Element{point("g1", 1, 1)}}
		mp := spatial.NewMapper()
		err := mp.Initialize(spatial.Distribute, from, to)
		Expect(err).To(HaveOccurred())
	})

	It("distributes a fully overlapping polygon at full weight", func() {
		from := &spatial.ElementSet{Id: "source-cells", Type: spatial.Polygon, Elements: []*spatial.Element{
			square("s0", 0, 0, 1),
		}}
		to := &spatial.ElementSet{Id: "target-cells", Type: spatial.Polygon, Elements: []*spatial.Element{
			square("t0", 0, 0, 1),
		}}
		mp := spatial.NewMapper()
		Expect(mp.Initialize(spatial.Distribute, from, to)).To(Succeed())
		v, err := mp.GetValueFromMappingMatrix(0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("reports out-of-range matrix access via BoundsError", func() {
		from := &spatial.ElementSet{Id: "s", Type: spatial.Point, Elements: []*spatial.Element{point("g0", 0, 0)}}
		to := &spatial.ElementSet{Id: "t", Type: spatial.Point, Elements: []*spatial.Element{point("g1", 1, 1)}}
		mp := spatial.NewMapper()
		Expect(mp.Initialize(spatial.Nearest, from, to)).To(Succeed())
		_, err := mp.GetValueFromMappingMatrix(5, 0)
		Expect(err).To(HaveOccurred())
	})
})
