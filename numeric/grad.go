// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/oasis/mesh"
)

func init() {
	Register("FvcGrad01", func() Operator { return &GradOperator{} })
}

// GradOperator computes the Green-Gauss cell gradient of a scalar field
// (spec.md §4.9): for each cell, sum faceNormal*faceArea*faceValue over its
// faces and divide by cell volume. Interior face values are the arithmetic
// mean of the two bordering cells; boundary face values come from the
// boundary condition, Dirichlet directly or Neumann as
// cellValue + flux/faceToCellDistance.
type GradOperator struct {
	grid       *mesh.Grid
	source     *Field
	output     *Field
	coeff      Coefficient
	boundaries *BoundarySet
	params     Params
}

// SetSource fixes the scalar field to differentiate; Configure alone does
// not carry it since spec.md §4.9's common operator contract has only one
// "target field" slot, used here for the output.
func (g *GradOperator) SetSource(f *Field) { g.source = f }

// Configure implements Configurable; target becomes the output vector field.
func (g *GradOperator) Configure(grid *mesh.Grid, target *Field, coeff Coefficient, boundaries *BoundarySet, params Params) {
	g.grid = grid
	g.output = target
	g.coeff = coeff
	g.boundaries = boundaries
	g.params = params
}

func (g *GradOperator) Mode() Mode { return Explicit }

func (g *GradOperator) Validate() []string {
	var diags []string
	if g.grid == nil {
		diags = append(diags, "FvcGrad01: missing grid")
	}
	if g.source == nil {
		diags = append(diags, "FvcGrad01: missing source scalar field")
	}
	if g.output == nil || g.output.Kind != Vector3 {
		diags = append(diags, "FvcGrad01: missing or wrong-kind output field (want Vector3)")
	}
	if g.boundaries == nil {
		diags = append(diags, "FvcGrad01: missing boundary conditions")
	}
	return diags
}

func (g *GradOperator) Process() error {
	for _, c := range g.grid.Cells {
		var sum [3]float64
		for _, faceId := range faceIdsOf(g.grid, c.Id) {
			f := faceOf(g.grid, faceId)
			faceValue := g.faceValue(f, c.Id)
			// Orientation is defined (spec.md §4.8) as the sign of
			// (cellCentroid-faceCentroid)·normal; the stored face normal
			// already points away from a cell exactly when that sign is
			// negative, so the outward multiplier is its negation.
			outward := -float64(f.Orientation[c.Id])
			for k := 0; k < 3; k++ {
				sum[k] += f.Normal[k] * f.Area * faceValue * outward
			}
		}
		if c.Volume > 0 {
			sum = [3]float64{sum[0] / c.Volume, sum[1] / c.Volume, sum[2] / c.Volume}
		}
		g.output.SetVector(c.Id, sum)
	}
	return nil
}

func (g *GradOperator) faceValue(f *mesh.Face, cellId int) float64 {
	if len(f.Cells) == 2 {
		other := f.Cells[0]
		if other == cellId {
			other = f.Cells[1]
		}
		return (g.source.Scalar(cellId) + g.source.Scalar(other)) / 2
	}
	bc := g.boundaries.At(f.Id)
	switch bc.Kind {
	case BCDirichlet:
		return g.boundaries.ValueAt(bc, f.Centroid[:])
	case BCNeumann:
		ge := faceToCellDistance(f, cellId, g.grid)
		if ge == 0 {
			return g.source.Scalar(cellId)
		}
		return g.source.Scalar(cellId) + g.boundaries.FluxAt(bc, f.Centroid[:])/ge
	default:
		return g.source.Scalar(cellId)
	}
}

func faceIdsOf(grid *mesh.Grid, cellId int) []int {
	for _, c := range grid.Cells {
		if c.Id == cellId {
			return c.FaceIds
		}
	}
	return nil
}

func faceOf(grid *mesh.Grid, faceId int) *mesh.Face {
	for _, f := range grid.Faces {
		if f.Id == faceId {
			return f
		}
	}
	return nil
}

// faceToCellDistance is the geometric weighting factor gₑ of spec.md §4.9:
// the distance from the face centroid to the owning cell's centroid along
// the face normal.
func faceToCellDistance(f *mesh.Face, cellId int, grid *mesh.Grid) float64 {
	c := cellOf(grid, cellId)
	if c == nil {
		return 0
	}
	var offset [3]float64
	for k := 0; k < 3; k++ {
		offset[k] = c.Centroid[k] - f.Centroid[k]
	}
	d := utl.Dot3d(offset[:], f.Normal[:])
	if d < 0 {
		d = -d
	}
	return d
}

func cellOf(grid *mesh.Grid, cellId int) *mesh.Cell {
	for _, c := range grid.Cells {
		if c.Id == cellId {
			return c
		}
	}
	return nil
}
