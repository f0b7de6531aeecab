// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disc1d

import "github.com/paddyschmidt/gofdpde/field"

// Reconstruct rebuilds the full-shape value grid (batch_shape + (n,)) from
// the interior values (batch_shape + (m,)) and the closure coefficients
// computed during Build, per spec §4.2 "Reconstruction".
func Reconstruct(op *Operator, interior *field.Tensor, batchShape []int) *field.Tensor {
	m := op.Sys.M
	n := m + 2
	batchCount := 1
	for _, s := range batchShape {
		batchCount *= s
	}
	out := field.New(append(append([]int{}, batchShape...), n))
	for bIdx := 0; bIdx < batchCount; bIdx++ {
		srcOff := bIdx * m
		dstOff := bIdx * n
		for idx := 0; idx < m; idx++ {
			out.Data[dstOff+1+idx] = interior.Data[srcOff+idx]
		}
		v1, v2 := interior.Data[srcOff], interior.Data[srcOff+1]
		out.Data[dstOff] = op.LowerXi1[bIdx]*v1 + op.LowerXi2[bIdx]*v2 + op.LowerEta[bIdx]
		u1, u2 := interior.Data[srcOff+m-1], interior.Data[srcOff+m-2]
		out.Data[dstOff+n-1] = op.UpperXi1[bIdx]*u1 + op.UpperXi2[bIdx]*u2 + op.UpperEta[bIdx]
	}
	return out
}

// Interior extracts the interior slice (batch_shape + (m,)) out of a
// full-shape value grid (batch_shape + (n,)).
func Interior(v *field.Tensor, batchShape []int) *field.Tensor {
	n := v.Shape[len(v.Shape)-1]
	m := n - 2
	batchCount := 1
	for _, s := range batchShape {
		batchCount *= s
	}
	out := field.New(append(append([]int{}, batchShape...), m))
	for bIdx := 0; bIdx < batchCount; bIdx++ {
		copy(out.Data[bIdx*m:bIdx*m+m], v.Data[bIdx*n+1:bIdx*n+1+m])
	}
	return out
}
