// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package disc1d implements the L2 one-dimensional discretizer of spec
// §4.3: turning a nonuniform 1-D grid, the coefficient evaluators and a
// pair of boundary conditions into the interior tridiagonal operator L and
// affine term b.
package disc1d

import (
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/coeff"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
	"github.com/paddyschmidt/gofdpde/tridiag"
)

// Operator bundles the tridiagonal system and the affine term produced by
// one call to Build: L's three diagonals (interior shape) plus b (same
// shape), together with the boundary closure coefficients needed to
// reconstruct the full-shape value grid after a step.
type Operator struct {
	Sys *tridiag.System
	B   *field.Tensor

	// closure coefficients, one value per batch element, for reconstructing
	// the boundary points after the scheme advances the interior (spec
	// §4.2 "Reconstruction").
	LowerXi1, LowerXi2, LowerEta []float64
	UpperXi1, UpperXi2, UpperEta []float64
}

// Build assembles L, b for the given time, grid, coefficient evaluators and
// boundary conditions, over the given batch shape.
func Build(t float64, g *grid.Grid, batchShape []int, second coeff.SecondOrderFn, first coeff.FirstOrderFn, zeroth coeff.ZerothOrderFn, face bound.Face) (*Operator, error) {
	n := len(g.Axes[0])
	if n < 3 {
		return nil, pdeerr.New(pdeerr.UndersizedGrid, "grid has %d points, need >= 3", n)
	}
	m := n - 2
	batchCount := 1
	for _, s := range batchShape {
		batchCount *= s
	}

	ev, err := coeff.Eval(t, g, batchShape, second, first, zeroth)
	if err != nil {
		return nil, err
	}
	D := ev.D2(0, 0)
	Mu := ev.Mu[0]
	R := ev.R

	sub := make([]float64, batchCount*m)
	main := make([]float64, batchCount*m)
	super := make([]float64, batchCount*m)
	b := field.New(append(append([]int{}, batchShape...), m))

	x := g.Axes[0]
	for idx := 0; idx < m; idx++ {
		i := idx + 1
		dm := x[i] - x[i-1] // Δ₋
		dp := x[i+1] - x[i] // Δ₊
		sum := dm + dp

		cSuper := 2 / (dp * sum)
		cMain := -2 / (dp * dm)
		cSub := 2 / (dm * sum)
		muSuper := dm / (sum * dp)
		muMain := dp/(sum*dm) - dm/(sum*dp)
		muSub := -dp / (sum * dm)

		for bIdx := 0; bIdx < batchCount; bIdx++ {
			dVal := valueAt(D, bIdx, i, n)
			muVal := valueAt(Mu, bIdx, i, n)
			rVal := valueAt(R, bIdx, i, n)
			off := bIdx*m + idx
			super[off] = dVal*cSuper + muVal*muSuper
			main[off] = dVal*cMain + muVal*muMain + rVal
			sub[off] = dVal*cSub + muVal*muSub
		}
	}

	op := &Operator{Sys: &tridiag.System{Sub: sub, Main: main, Super: super, M: m}, B: b}

	if face.Lower != nil {
		if err := foldLower(t, g, batchShape, batchCount, n, m, op, face.Lower); err != nil {
			return nil, err
		}
	}
	if face.Upper != nil {
		if err := foldUpper(t, g, batchShape, batchCount, n, m, op, face.Upper); err != nil {
			return nil, err
		}
	}
	return op, nil
}

// valueAt reads coefficient tensor c (shape batchShape+(n,), or nil meaning
// absent/zero) at batch index bIdx, grid point i.
func valueAt(c *field.Tensor, bIdx, i, n int) float64 {
	if c == nil {
		return 0
	}
	return c.Data[bIdx*n+i]
}

func foldLower(t float64, g *grid.Grid, batchShape []int, batchCount, n, m int, op *Operator, f bound.Fn) error {
	alphaRaw, betaRaw, gammaRaw := f(t, g)
	alpha, err := field.Broadcast(alphaRaw, batchShape)
	if err != nil {
		return pdeerr.New(pdeerr.ShapeMismatch, "lower boundary alpha: %v", err)
	}
	beta, err := field.Broadcast(betaRaw, batchShape)
	if err != nil {
		return pdeerr.New(pdeerr.ShapeMismatch, "lower boundary beta: %v", err)
	}
	gamma, err := field.Broadcast(gammaRaw, batchShape)
	if err != nil {
		return pdeerr.New(pdeerr.ShapeMismatch, "lower boundary gamma: %v", err)
	}
	x := g.Axes[0]
	delta0, delta1 := x[1]-x[0], x[2]-x[1]
	xi1, xi2, eta, err := bound.Closure(alpha, beta, gamma, delta0, delta1)
	if err != nil {
		return err
	}

	touching := make([]float64, batchCount)
	mainAt := make([]float64, batchCount)
	superAt := make([]float64, batchCount)
	bAt := make([]float64, batchCount)
	for bIdx := 0; bIdx < batchCount; bIdx++ {
		off := bIdx * op.Sys.M
		touching[bIdx] = op.Sys.Sub[off]
	}
	bound.FoldLower(mainAt, superAt, touching, xi1.Data, xi2.Data, eta.Data, bAt)
	for bIdx := 0; bIdx < batchCount; bIdx++ {
		off := bIdx * op.Sys.M
		op.Sys.Main[off] += mainAt[bIdx]
		op.Sys.Super[off] += superAt[bIdx]
		op.Sys.Sub[off] = 0
		op.B.Data[off] = bAt[bIdx]
	}
	op.LowerXi1, op.LowerXi2, op.LowerEta = xi1.Data, xi2.Data, eta.Data
	return nil
}

func foldUpper(t float64, g *grid.Grid, batchShape []int, batchCount, n, m int, op *Operator, f bound.Fn) error {
	alphaRaw, betaRaw, gammaRaw := f(t, g)
	alpha, err := field.Broadcast(alphaRaw, batchShape)
	if err != nil {
		return pdeerr.New(pdeerr.ShapeMismatch, "upper boundary alpha: %v", err)
	}
	beta, err := field.Broadcast(betaRaw, batchShape)
	if err != nil {
		return pdeerr.New(pdeerr.ShapeMismatch, "upper boundary beta: %v", err)
	}
	gamma, err := field.Broadcast(gammaRaw, batchShape)
	if err != nil {
		return pdeerr.New(pdeerr.ShapeMismatch, "upper boundary gamma: %v", err)
	}
	x := g.Axes[0]
	delta0, delta1 := x[n-1]-x[n-2], x[n-2]-x[n-3]
	xi1, xi2, eta, err := bound.Closure(alpha, beta, gamma, delta0, delta1)
	if err != nil {
		return err
	}

	touching := make([]float64, batchCount)
	mainAt := make([]float64, batchCount)
	subAt := make([]float64, batchCount)
	bAt := make([]float64, batchCount)
	for bIdx := 0; bIdx < batchCount; bIdx++ {
		off := bIdx*op.Sys.M + (m - 1)
		touching[bIdx] = op.Sys.Super[off]
	}
	bound.FoldUpper(mainAt, subAt, touching, xi1.Data, xi2.Data, eta.Data, bAt)
	for bIdx := 0; bIdx < batchCount; bIdx++ {
		off := bIdx*op.Sys.M + (m - 1)
		op.Sys.Main[off] += mainAt[bIdx]
		op.Sys.Sub[off] += subAt[bIdx]
		op.Sys.Super[off] = 0
		op.B.Data[off] = bAt[bIdx]
	}
	op.UpperXi1, op.UpperXi2, op.UpperEta = xi1.Data, xi2.Data, eta.Data
	return nil
}
