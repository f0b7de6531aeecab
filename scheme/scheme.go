// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scheme implements the L3 one-dimensional time-marching operators
// of spec §4.5: explicit, implicit, weighted θ, Crank–Nicolson, Lawson–
// Morris extrapolation and oscillation-damped CN. Every scheme is built as
// a single closure matching the one-step function contract of spec §4.7/§9,
// so the driver, discretizer and scheme never need to know about each
// other's internals.
package scheme

import (
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/coeff"
	"github.com/paddyschmidt/gofdpde/disc1d"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/tridiag"
)

// Coeffs bundles the three coefficient evaluators of spec §4.1.
type Coeffs struct {
	Second coeff.SecondOrderFn
	First  coeff.FirstOrderFn
	Zeroth coeff.ZerothOrderFn
}

// Step is the stable extension point of spec §9: "a single closure taking
// (t, δt, grid, V, evaluators, BCs) and returning (t', grid', V')". New
// schemes plug in without touching the driver or discretizer.
type Step func(t, dt float64, g *grid.Grid, v *field.Tensor, batchShape []int, c Coeffs, face bound.Face) (float64, *grid.Grid, *field.Tensor, error)

// applyL computes x + scale*(L x), the explicit half shared by every
// scheme's matmul step; b is added separately via addScaledB since its
// scale does not always match L's (Crank–Nicolson scales L by δt/2 but b
// by the full δt).
func applyL(op *disc1d.Operator, scale float64, x *field.Tensor) *field.Tensor {
	lx := tridiag.MatMul(op.Sys, x.Data)
	out := field.New(x.Shape)
	for i := range out.Data {
		out.Data[i] = x.Data[i] + scale*lx[i]
	}
	return out
}

// apply computes x + scale*(L x + b), for schemes where L and b share the
// same scale (explicit, weighted θ's t-side).
func apply(op *disc1d.Operator, scale float64, x *field.Tensor) *field.Tensor {
	return addScaledB(applyL(op, scale, x), scale, op)
}

// solve solves (I - scale*L) y = rhs for the assembled operator.
func solve(op *disc1d.Operator, scale float64, rhs *field.Tensor) *field.Tensor {
	y := tridiag.Solve(op.Sys, scale, rhs.Data)
	return &field.Tensor{Shape: rhs.Shape, Data: y}
}

// addScaledB adds scale*b into rhs in place and returns it.
func addScaledB(rhs *field.Tensor, scale float64, op *disc1d.Operator) *field.Tensor {
	for i := range rhs.Data {
		rhs.Data[i] += scale * op.B.Data[i]
	}
	return rhs
}
