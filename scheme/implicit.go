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

// Implicit builds the fully implicit scheme of spec §4.5:
//
//	(I - δt L_{t+δt}) V_{t+δt} = V_t + δt b_{t+δt}
//
// one tridiagonal solve. Unconditionally stable, first-order accurate.
func Implicit() Step {
	return func(t, dt float64, g *grid.Grid, v *field.Tensor, batchShape []int, c Coeffs, face bound.Face) (float64, *grid.Grid, *field.Tensor, error) {
		tNext := t + dt
		op, err := disc1d.Build(tNext, g, batchShape, c.Second, c.First, c.Zeroth, face)
		if err != nil {
			return 0, nil, nil, err
		}
		rhs := addScaledB(disc1d.Interior(v, batchShape), dt, op)
		next := solve(op, dt, rhs)
		full := disc1d.Reconstruct(op, next, batchShape)
		return tNext, g, full, nil
	}
}
