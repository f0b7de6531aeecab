// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discnd

import "github.com/paddyschmidt/gofdpde/field"

// Reconstruct rebuilds the full-shape value grid (batch_shape+gridShape)
// from ND-interior values, generalizing spec §4.2 "Reconstruction" to N
// dimensions: each axis is padded in turn. A face's (α,β,γ) were broadcast
// at Build time to the full extent of every other axis (spec §6); here only
// the axes the loop hasn't padded yet still sit at ND-interior extent in
// cur, so only those need shrinking before the closure formula runs (see
// notYetPadded). Axes are padded in ascending order, which notYetPadded
// relies on; a grid axis keeps position NumBatchDims+j throughout.
func Reconstruct(op *Operator, interior *field.Tensor) (*field.Tensor, error) {
	cur := interior
	for j := range op.Axes {
		axis := op.NumBatchDims + j
		lf, uf := op.lowerFaces[j], op.upperFaces[j]
		lx1, lx2, leta, err := closureAt(lf, notYetPadded(lf, j))
		if err != nil {
			return nil, err
		}
		ux1, ux2, ueta, err := closureAt(uf, notYetPadded(uf, j))
		if err != nil {
			return nil, err
		}
		cur = field.PadAxis(cur, axis, lx1, lx2, leta, ux1, ux2, ueta)
	}
	return cur, nil
}

// notYetPadded returns the subset of f's other-axis dims whose grid axis
// index is greater than j: those are the axes Reconstruct's loop (running
// j=0..dim-1) hasn't padded to full extent yet, so the face tensor still
// needs shrinking there. Axes with a smaller index are already full-size in
// cur and must be left alone.
func notYetPadded(f rawFace, j int) []int {
	var dims []int
	for i, k := range f.otherGridAxis {
		if k > j {
			dims = append(dims, f.otherDims[i])
		}
	}
	return dims
}

// Interior extracts the ND-interior slice out of a full-shape value grid.
func Interior(v *field.Tensor, numBatchDims int) *field.Tensor {
	return field.InteriorAll(v, numBatchDims)
}
