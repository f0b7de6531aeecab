// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package discnd implements the L2′ multidimensional discretizer of spec
// §4.4: for each axis independently, the three axis-aligned diagonals
// L^(j) and boundary contribution b^(j), plus the mixed-derivative
// operator M applied only as an explicit matmul (spec: "never used inside
// ADI implicit solves").
package discnd

import (
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/coeff"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
	"github.com/paddyschmidt/gofdpde/tridiag"
)

// AxisOp is the per-axis operator L^(j): its tridiagonal system (stored
// with axis j rotated innermost, ready for a batched solve) and the
// boundary-folded affine term b^(j), stored in the un-rotated
// batch_shape+interior_shape layout used everywhere outside a solve.
type AxisOp struct {
	Axis int
	Sys  *tridiag.System // rotated: axis j innermost
	B    *field.Tensor   // un-rotated, shape batchShape+iShape
	Perm []int           // permutation used to build Sys from un-rotated data
}

// rawFace keeps a boundary function's α,β,γ broadcast to the full (not
// ND-interior) extent of every other axis — spec §6's actual contract — plus
// the two nearest-neighbor spacings, so closure coefficients can be
// recomputed with exactly the other axes shrunk to interior that a later
// stage needs (spec §9 axis-rotation note; here it also lets ND
// reconstruction pad one axis at a time — see Reconstruct).
type rawFace struct {
	alpha, beta, gamma *field.Tensor
	delta0, delta1     float64
	otherDims          []int // dim index in alpha/beta/gamma.Shape, one per other axis
	otherGridAxis      []int // the grid axis otherDims[i] corresponds to
}

// MixedFn applies the explicit-only mixed-derivative operator M to a
// full-shape value tensor (batch_shape+gridShape, boundaries included),
// returning a batch_shape+iShape contribution.
type MixedFn func(vFull *field.Tensor) *field.Tensor

// Operator bundles everything discnd.Build produces for one (t, grid)
// query: one AxisOp per axis, the mixed operator, and enough boundary
// bookkeeping to reconstruct full-shape values after a step.
type Operator struct {
	Axes         []AxisOp
	Mixed        MixedFn
	NumBatchDims int
	IShape       []int

	lowerFaces, upperFaces []rawFace // one per axis
}

// ApplyAxis computes vInt + scale*(L^(j) vInt), rotating to/from the
// axis-innermost layout the underlying tridiagonal primitive needs.
func (op *Operator) ApplyAxis(j int, scale float64, vInt *field.Tensor) *field.Tensor {
	a := op.Axes[j]
	rot := field.Transpose(vInt, a.Perm)
	lx := tridiag.MatMul(a.Sys, rot.Data)
	out := field.New(rot.Shape)
	for i := range out.Data {
		out.Data[i] = rot.Data[i] + scale*lx[i]
	}
	return field.Transpose(out, field.InversePerm(a.Perm))
}

// ApplyAxisL computes L^(j) vInt alone (no added identity), the per-axis
// contribution the Douglas ADI predictor step (spec §4.6) sums over every
// axis before scaling by δt.
func (op *Operator) ApplyAxisL(j int, vInt *field.Tensor) *field.Tensor {
	a := op.Axes[j]
	rot := field.Transpose(vInt, a.Perm)
	lx := tridiag.MatMul(a.Sys, rot.Data)
	out := &field.Tensor{Shape: rot.Shape, Data: lx}
	return field.Transpose(out, field.InversePerm(a.Perm))
}

// SolveAxis solves (I - scale*L^(j)) y = rhs, rotating to/from the
// axis-innermost layout.
func (op *Operator) SolveAxis(j int, scale float64, rhs *field.Tensor) *field.Tensor {
	a := op.Axes[j]
	rot := field.Transpose(rhs, a.Perm)
	y := tridiag.Solve(a.Sys, scale, rot.Data)
	out := &field.Tensor{Shape: rot.Shape, Data: y}
	return field.Transpose(out, field.InversePerm(a.Perm))
}

// axisPerm returns the permutation moving absolute dimension `axis` to the
// last position, preserving the relative order of every other dimension.
func axisPerm(ndimTotal, axis int) []int {
	perm := make([]int, 0, ndimTotal)
	for i := 0; i < ndimTotal; i++ {
		if i != axis {
			perm = append(perm, i)
		}
	}
	perm = append(perm, axis)
	return perm
}

// Build assembles every axis operator, the mixed operator and the boundary
// bookkeeping needed for one (t, grid) query.
func Build(t float64, g *grid.Grid, batchShape []int, second coeff.SecondOrderFn, first coeff.FirstOrderFn, zeroth coeff.ZerothOrderFn, faces []bound.Face) (*Operator, error) {
	dim := g.Dim()
	if err := g.CheckMultidimUniform(1e-9); err != nil {
		return nil, err
	}
	numBatchDims := len(batchShape)
	gshape := g.Shape()
	ishape := make([]int, dim)
	for j := range ishape {
		ishape[j] = gshape[j] - 2
		if ishape[j] < 1 {
			return nil, pdeerr.New(pdeerr.UndersizedGrid, "axis %d has %d points, need >= 3", j, gshape[j])
		}
	}

	ev, err := coeff.Eval(t, g, batchShape, second, first, zeroth)
	if err != nil {
		return nil, err
	}

	op := &Operator{NumBatchDims: numBatchDims, IShape: ishape, Axes: make([]AxisOp, dim)}

	hs := make([]float64, dim)
	for j := 0; j < dim; j++ {
		h, _ := g.UniformSpacing(j, 1e-9)
		hs[j] = h
	}

	rInt := interiorOrNil(ev.R, numBatchDims, gshape)
	batchCount := prod(batchShape)

	for j := 0; j < dim; j++ {
		djj := interiorOrNil(ev.D2(j, j), numBatchDims, gshape)
		muj := interiorOrNil(ev.Mu[j], numBatchDims, gshape)
		sub, main, super := axisDiagonals(djj, muj, rInt, dim, hs[j], batchCount, ishape)

		b := field.New(append(append([]int{}, batchShape...), ishape...))

		lowerFn := faces[j].Lower
		if lowerFn == nil {
			lowerFn = zeroFace
		}
		lf, err := buildRawFace(t, g, batchShape, j, lowerFn, hs[j])
		if err != nil {
			return nil, err
		}
		if faces[j].Lower != nil {
			if err := foldAxisBoundary(sub, main, super, b.Data, ishape, j, true, lf); err != nil {
				return nil, err
			}
		}
		op.lowerFaces = append(op.lowerFaces, lf)

		upperFn := faces[j].Upper
		if upperFn == nil {
			upperFn = zeroFace
		}
		uf, err := buildRawFace(t, g, batchShape, j, upperFn, hs[j])
		if err != nil {
			return nil, err
		}
		if faces[j].Upper != nil {
			if err := foldAxisBoundary(sub, main, super, b.Data, ishape, j, false, uf); err != nil {
				return nil, err
			}
		}
		op.upperFaces = append(op.upperFaces, uf)

		ndimTotal := numBatchDims + dim
		perm := axisPerm(ndimTotal, numBatchDims+j)
		full := append(append([]int{}, batchShape...), ishape...)
		op.Axes[j] = AxisOp{
			Axis: j,
			Sys:  rotateDiagonals(sub, main, super, full, perm, ishape[j]),
			B:    b,
			Perm: perm,
		}
	}

	op.Mixed = buildMixed(ev, dim, hs, numBatchDims, ishape, batchShape)
	return op, nil
}

func interiorOrNil(t *field.Tensor, numBatchDims int, gshape []int) *field.Tensor {
	if t == nil {
		return nil
	}
	return field.InteriorAll(t, numBatchDims)
}
