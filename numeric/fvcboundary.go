// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "github.com/cpmech/oasis/mesh"

func init() {
	Register("FvcBoundary01", func() Operator { return &BoundaryFillOperator{} })
}

// BoundaryFillOperator writes each boundary face's resolved value into the
// output field, indexed by face id rather than cell id: Dirichlet faces get
// their fixed value, Neumann faces get the owning cell's current value
// (flux conditions do not fix a boundary value on their own).
type BoundaryFillOperator struct {
	grid       *mesh.Grid
	source     *Field
	output     *Field
	boundaries *BoundarySet
}

func (b *BoundaryFillOperator) SetSource(f *Field) { b.source = f }

func (b *BoundaryFillOperator) Configure(grid *mesh.Grid, target *Field, coeff Coefficient, boundaries *BoundarySet, params Params) {
	b.grid = grid
	b.output = target
	b.boundaries = boundaries
}

func (b *BoundaryFillOperator) Mode() Mode { return Explicit }

func (b *BoundaryFillOperator) Validate() []string {
	var diags []string
	if b.grid == nil {
		diags = append(diags, "FvcBoundary01: missing grid")
	}
	if b.output == nil || b.output.Kind != Scalar {
		diags = append(diags, "FvcBoundary01: missing or wrong-kind output field (want Scalar)")
	}
	if b.boundaries == nil {
		diags = append(diags, "FvcBoundary01: missing boundary conditions")
	}
	return diags
}

func (b *BoundaryFillOperator) Process() error {
	for _, faceId := range b.grid.BoundaryFaces() {
		f := faceOf(b.grid, faceId)
		cellId := f.Cells[0]
		bc := b.boundaries.At(faceId)
		switch bc.Kind {
		case BCDirichlet:
			b.output.SetScalar(faceId, b.boundaries.ValueAt(bc, f.Centroid[:]))
		default:
			if b.source != nil {
				b.output.SetScalar(faceId, b.source.Scalar(cellId))
			}
		}
	}
	return nil
}
