// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bound implements the L1 boundary closure of spec §4.2: turning a
// Robin condition (αV + β∂V/∂n = γ) at a face into ghost-point coefficients
// (ξ₁, ξ₂, η) and folding them into the interior operator and affine term.
package bound

import (
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
)

// Fn returns (α, β, γ) broadcastable to batch_shape+grid_shape_without_axis
// (spec §6). Either α or β may be zero but not both.
type Fn func(t float64, g *grid.Grid) (alpha, beta, gamma *field.Tensor)

// ValueFn is the scalar value callable wrapped by Dirichlet/Neumann.
type ValueFn func(t float64, g *grid.Grid) *field.Tensor

// Dirichlet builds a boundary function fixing the value: (1, 0, f).
func Dirichlet(f ValueFn) Fn {
	return func(t float64, g *grid.Grid) (*field.Tensor, *field.Tensor, *field.Tensor) {
		return field.Scalar(1), field.Scalar(0), f(t, g)
	}
}

// Neumann builds a boundary function fixing the outward-normal derivative:
// (0, 1, f).
func Neumann(f ValueFn) Fn {
	return func(t float64, g *grid.Grid) (*field.Tensor, *field.Tensor, *field.Tensor) {
		return field.Scalar(0), field.Scalar(1), f(t, g)
	}
}

// Face is one axis's pair of boundary functions.
type Face struct {
	Lower Fn
	Upper Fn
}

// pointClosure implements the spec §4.2 formula for a single scalar point:
//
//	κ  = α Δ₀ Δ₁ (Δ₀+Δ₁) + β Δ₁ (2Δ₀+Δ₁)
//	ξ₁ =  β (Δ₀+Δ₁)² / κ
//	ξ₂ = −β Δ₀² / κ
//	η  =  γ Δ₀ Δ₁ (Δ₀+Δ₁) / κ
func pointClosure(alpha, beta, gamma, delta0, delta1 float64) (xi1, xi2, eta float64, err error) {
	if alpha == 0 && beta == 0 {
		return 0, 0, 0, pdeerr.New(pdeerr.MalformedBoundary, "boundary condition has alpha=beta=0")
	}
	kappa := alpha*delta0*delta1*(delta0+delta1) + beta*delta1*(2*delta0+delta1)
	if kappa == 0 {
		return 0, 0, 0, pdeerr.New(pdeerr.BoundaryIllConditioned, "boundary closure is ill-conditioned: kappa=0")
	}
	xi1 = beta * (delta0 + delta1) * (delta0 + delta1) / kappa
	xi2 = -beta * delta0 * delta0 / kappa
	eta = gamma * delta0 * delta1 * (delta0 + delta1) / kappa
	return
}

// Closure applies pointClosure elementwise across batch+cross-section,
// given the face's two nearest-neighbor spacings delta0 (face to nearest
// interior point), delta1 (nearest to next interior point). alpha, beta and
// gamma must already be broadcast to a common shape by the caller.
func Closure(alpha, beta, gamma *field.Tensor, delta0, delta1 float64) (xi1, xi2, eta *field.Tensor, err error) {
	n := len(alpha.Data)
	xi1 = field.New(alpha.Shape)
	xi2 = field.New(alpha.Shape)
	eta = field.New(alpha.Shape)
	for i := 0; i < n; i++ {
		x1, x2, e, cerr := pointClosure(alpha.Data[i], beta.Data[i], gamma.Data[i], delta0, delta1)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		xi1.Data[i], xi2.Data[i], eta.Data[i] = x1, x2, e
	}
	return xi1, xi2, eta, nil
}

// FoldLower applies the spec §4.2 folding equations at the lower face of an
// axis-aligned tridiagonal operator, given in its interior diagonal
// representation (sub, main, super each of batch+cross-section+axis-interior
// shape; touching = the off-diagonal slice at interior index 0 which, before
// folding, is the coefficient multiplying the eliminated boundary unknown).
// b is written with the affine contribution at that same slice.
func FoldLower(mainAt, superAt []float64, touching []float64, xi1, xi2, eta []float64, bAt []float64) {
	for i := range touching {
		l := touching[i]
		mainAt[i] += xi1[i] * l
		superAt[i] += xi2[i] * l
		bAt[i] = l * eta[i]
	}
}

// FoldUpper is the mirror image at the upper face: touching is the
// off-diagonal slice at the last interior index (coefficient multiplying
// the eliminated boundary unknown on the far side).
func FoldUpper(mainAt, subAt []float64, touching []float64, xi1, xi2, eta []float64, bAt []float64) {
	for i := range touching {
		l := touching[i]
		mainAt[i] += xi1[i] * l
		subAt[i] += xi2[i] * l
		bAt[i] = l * eta[i]
	}
}

// ReconstructLower rebuilds the boundary value V₀ = ξ₁V₁ + ξ₂V₂ + η after a
// step, given the newly computed interior values v1, v2.
func ReconstructLower(xi1, xi2, eta []float64, v1, v2 []float64) []float64 {
	out := make([]float64, len(v1))
	for i := range v1 {
		out[i] = xi1[i]*v1[i] + xi2[i]*v2[i] + eta[i]
	}
	return out
}

// ReconstructUpper is the mirror image using the two interior points nearest
// the upper face, v1 = V_{n-2}, v2 = V_{n-3}.
func ReconstructUpper(xi1, xi2, eta []float64, v1, v2 []float64) []float64 {
	return ReconstructLower(xi1, xi2, eta, v1, v2)
}
