// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discnd

import (
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/coeff"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
	"github.com/paddyschmidt/gofdpde/tridiag"
)

// axisDiagonals builds the uniform-spacing three diagonals of spec §4.4 for
// one axis: second derivative coefficient 1/h², first derivative 1/(2h),
// and an even 1/dim split of the zeroth-order term, evaluated at every
// ND-interior point. djj, muj, r may each be nil (absent term).
func axisDiagonals(djj, muj, r *field.Tensor, dim int, h float64, batchCount int, ishape []int) (sub, main, super []float64) {
	total := batchCount * prod(ishape)
	sub = make([]float64, total)
	main = make([]float64, total)
	super = make([]float64, total)
	cSecond := 1 / (h * h)
	cFirst := 1 / (2 * h)
	for i := 0; i < total; i++ {
		d := valueOr(djj, i)
		mu := valueOr(muj, i)
		rv := valueOr(r, i)
		super[i] = d*cSecond + mu*cFirst
		sub[i] = d*cSecond - mu*cFirst
		main[i] = -2*d*cSecond + rv/float64(dim)
	}
	return
}

func valueOr(t *field.Tensor, i int) float64 {
	if t == nil {
		return 0
	}
	return t.Data[i]
}

// buildRawFace evaluates a boundary function at (t, g) and eagerly broadcasts
// it to the full (not ND-interior) extent of every other axis — spec §6's
// actual contract for a face function's (α,β,γ). otherDims/otherGridAxis
// record, for each of those other axes, its dimension index in the
// resulting tensors and the grid axis it corresponds to, so a later stage
// can shrink exactly the subset it needs down to ND-interior (see
// closureAt): foldAxisBoundary shrinks all of them, Reconstruct shrinks only
// the axes its padding loop hasn't reached yet. h is the axis's uniform
// spacing (so Δ₀=Δ₁=h here, unlike the nonuniform 1-D case).
func buildRawFace(t float64, g *grid.Grid, batchShape []int, axis int, f bound.Fn, h float64) (rawFace, error) {
	alpha, beta, gamma := f(t, g)
	if alpha == nil {
		alpha = field.Scalar(1)
	}
	if beta == nil {
		beta = field.Scalar(0)
	}
	if gamma == nil {
		gamma = field.Scalar(0)
	}

	gshape := g.Shape()
	cross := append([]int{}, batchShape...)
	var otherDims, otherGridAxis []int
	for k, s := range gshape {
		if k == axis {
			continue
		}
		otherDims = append(otherDims, len(cross))
		otherGridAxis = append(otherGridAxis, k)
		cross = append(cross, s)
	}

	a, err := field.Broadcast(alpha, cross)
	if err != nil {
		return rawFace{}, pdeerr.New(pdeerr.ShapeMismatch, "boundary alpha: %v", err)
	}
	b, err := field.Broadcast(beta, cross)
	if err != nil {
		return rawFace{}, pdeerr.New(pdeerr.ShapeMismatch, "boundary beta: %v", err)
	}
	c, err := field.Broadcast(gamma, cross)
	if err != nil {
		return rawFace{}, pdeerr.New(pdeerr.ShapeMismatch, "boundary gamma: %v", err)
	}
	return rawFace{alpha: a, beta: b, gamma: c, delta0: h, delta1: h, otherDims: otherDims, otherGridAxis: otherGridAxis}, nil
}

// zeroFace is the boundary function substituted for an absent (nil) face:
// alpha=beta=0 makes bound.Closure raise MalformedBoundary, the same fatal
// error an absent face previously degraded to via field.Broadcast(nil, ...).
func zeroFace(t float64, g *grid.Grid) (*field.Tensor, *field.Tensor, *field.Tensor) {
	return field.Scalar(0), field.Scalar(0), field.Scalar(0)
}

// closureAt computes (ξ₁,ξ₂,η) for a raw face, first shrinking the listed
// dims (indices into f.alpha/beta/gamma.Shape, from f.otherDims) from full
// to ND-interior extent.
func closureAt(f rawFace, shrinkDims []int) (*field.Tensor, *field.Tensor, *field.Tensor, error) {
	a := field.InteriorDims(f.alpha, shrinkDims)
	b := field.InteriorDims(f.beta, shrinkDims)
	c := field.InteriorDims(f.gamma, shrinkDims)
	return bound.Closure(a, b, c, f.delta0, f.delta1)
}

// foldAxisBoundary applies the spec §4.2 folding equations in place to the
// flat (batch_shape+iShape)-layout diagonals/affine term, at the slice
// where axis j's local index is 0 (lower) or iShape[j]-1 (upper).
func foldAxisBoundary(sub, main, super, b []float64, ishape []int, axis int, lower bool, f rawFace) error {
	// sub/main/super/b are flat batchCount*prod(iShape) arrays; every batch
	// dim collapses to one leading stride of size batchCount.
	batchCount := len(main) / prod(ishape)
	shape := append([]int{batchCount}, ishape...)
	axisDim := axis + 1

	cshape := make([]int, 0, len(shape)-1)
	for i, s := range shape {
		if i != axisDim {
			cshape = append(cshape, s)
		}
	}
	// At fold time every other axis is already at its ND-interior extent
	// (sub/main/super/b are interior-only arrays), so all of f's other
	// axes need shrinking from the full extent they were broadcast to.
	xi1, xi2, eta, err := closureAt(f, f.otherDims)
	if err != nil {
		return err
	}

	n := shape[axisDim]
	st := stridesOf(shape)
	cst := stridesOf(cshape)
	cn := prod(cshape)
	cIdx := make([]int, len(cshape))
	for lin := 0; lin < cn; lin++ {
		rem := lin
		for i, s := range cst {
			cIdx[i] = rem / s
			rem %= s
		}
		base := 0
		ci := 0
		for i := range shape {
			if i == axisDim {
				continue
			}
			base += cIdx[ci] * st[i]
			ci++
		}
		if lower {
			off := base + 0*st[axisDim]
			l := sub[off]
			main[off] += xi1.Data[lin] * l
			super[off] += xi2.Data[lin] * l
			b[off] = l * eta.Data[lin]
			sub[off] = 0
		} else {
			off := base + (n-1)*st[axisDim]
			l := super[off]
			main[off] += xi1.Data[lin] * l
			sub[off] += xi2.Data[lin] * l
			b[off] = l * eta.Data[lin]
			super[off] = 0
		}
	}
	return nil
}

func prod(s []int) int {
	p := 1
	for _, v := range s {
		p *= v
	}
	return p
}

func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// rotateDiagonals transposes the flat (batchShape+iShape)-layout diagonals
// into the axis-innermost tridiag.System layout.
func rotateDiagonals(sub, main, super []float64, fullShape, perm []int, m int) *tridiag.System {
	subT := &field.Tensor{Shape: fullShape, Data: sub}
	mainT := &field.Tensor{Shape: fullShape, Data: main}
	superT := &field.Tensor{Shape: fullShape, Data: super}
	return &tridiag.System{
		Sub:   field.Transpose(subT, perm).Data,
		Main:  field.Transpose(mainT, perm).Data,
		Super: field.Transpose(superT, perm).Data,
		M:     m,
	}
}

// buildMixed constructs the explicit-only mixed-derivative operator M of
// spec §4.4, using the 4-point stencil
//
//	∂²V/∂x_p∂x_q ≈ (V_{++} − V_{+−} − V_{−+} + V_{−−}) / (4 Δ_p Δ_q)
//
// and the symmetric-sum factor 2·D_pq (the PDE sums D_ij over all ordered
// pairs; only the upper triangle is stored, so off-diagonal contributions
// are doubled). M reads its neighbors from the full-shape value tensor
// (boundaries included), so it never needs ghost extrapolation even for
// interior points adjacent to a face.
func buildMixed(ev *coeff.Evaluated, dim int, hs []float64, numBatchDims int, ishape []int, batchShape []int) MixedFn {
	type pair struct {
		p, q   int
		dInt   []float64 // D_pq at every ND-interior point, flat (batchCount, iShape...) layout
	}
	var pairs []pair
	for p := 0; p < dim; p++ {
		for q := p + 1; q < dim; q++ {
			if d := ev.D2(p, q); d != nil {
				pairs = append(pairs, pair{p, q, field.InteriorAll(d, numBatchDims).Data})
			}
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	gridShape := addTwo(ishape)

	return func(vFull *field.Tensor) *field.Tensor {
		batchCount := 1
		for i := 0; i < numBatchDims; i++ {
			batchCount *= vFull.Shape[i]
		}
		out := field.New(append([]int{batchCount}, ishape...))
		fullShape := append([]int{batchCount}, gridShape...)
		st := stridesOf(fullShape)
		ist := stridesOf(append([]int{batchCount}, ishape...))

		idx := make([]int, len(ist))
		for lin := range out.Data {
			rem := lin
			for i, s := range ist {
				idx[i] = rem / s
				rem %= s
			}
			base := idx[0] * st[0]
			for j := 0; j < dim; j++ {
				base += (idx[j+1] + 1) * st[j+1]
			}
			total := 0.0
			for _, pr := range pairs {
				dVal := pr.dInt[lin]
				if dVal == 0 {
					continue
				}
				hp, hq := hs[pr.p], hs[pr.q]
				offPP := base + st[pr.p+1] + st[pr.q+1]
				offPM := base + st[pr.p+1] - st[pr.q+1]
				offMP := base - st[pr.p+1] + st[pr.q+1]
				offMM := base - st[pr.p+1] - st[pr.q+1]
				stencil := (vFull.Data[offPP] - vFull.Data[offPM] - vFull.Data[offMP] + vFull.Data[offMM]) / (4 * hp * hq)
				total += 2 * dVal * stencil
			}
			out.Data[lin] = total
		}
		out.Shape = append(append([]int{}, batchShape...), ishape...)
		return out
	}
}

func addTwo(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = v + 2
	}
	return out
}
