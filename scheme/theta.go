// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/disc1d"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
)

// Theta builds the weighted-θ scheme of spec §4.5:
//
//	(I - (1-θ)δt L_{t+δt}) V_{t+δt} = (I + θδt L_t) V_t + θδt b_t + (1-θ)δt b_{t+δt}
//
// one matmul at t, one solve at t+δt. θ=0 is implicit, θ=1 is explicit,
// θ=1/2 is Crank–Nicolson (CN uses the dedicated midpoint-evaluated
// variant below for its extra accuracy, not this generic form).
func Theta(theta float64) Step {
	return func(t, dt float64, g *grid.Grid, v *field.Tensor, batchShape []int, c Coeffs, face bound.Face) (float64, *grid.Grid, *field.Tensor, error) {
		tNext := t + dt
		opT, err := disc1d.Build(t, g, batchShape, c.Second, c.First, c.Zeroth, face)
		if err != nil {
			return 0, nil, nil, err
		}
		opNext, err := disc1d.Build(tNext, g, batchShape, c.Second, c.First, c.Zeroth, face)
		if err != nil {
			return 0, nil, nil, err
		}
		interior := disc1d.Interior(v, batchShape)
		rhs := apply(opT, theta*dt, interior)
		rhs = addScaledB(rhs, (1-theta)*dt, opNext)
		next := solve(opNext, (1-theta)*dt, rhs)
		full := disc1d.Reconstruct(opNext, next, batchShape)
		return tNext, g, full, nil
	}
}

// CN builds Crank–Nicolson, evaluating L and b once at the midpoint t+δt/2
// for efficiency, as spec §4.5 prescribes:
//
//	(I - δt/2 L_{1/2}) V_{t+δt} = (I + δt/2 L_{1/2}) V_t + δt b_{1/2}
func CN() Step {
	return func(t, dt float64, g *grid.Grid, v *field.Tensor, batchShape []int, c Coeffs, face bound.Face) (float64, *grid.Grid, *field.Tensor, error) {
		tMid := t + dt/2
		op, err := disc1d.Build(tMid, g, batchShape, c.Second, c.First, c.Zeroth, face)
		if err != nil {
			return 0, nil, nil, err
		}
		interior := disc1d.Interior(v, batchShape)
		half := dt / 2
		rhs := applyL(op, half, interior)
		rhs = addScaledB(rhs, dt, op)
		next := solve(op, half, rhs)
		full := disc1d.Reconstruct(op, next, batchShape)
		return t + dt, g, full, nil
	}
}
