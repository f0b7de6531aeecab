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

// Explicit builds the explicit scheme of spec §4.5:
//
//	V_{t+δt} = (I + δt L_t) V_t + δt b_t
//
// one tridiagonal matmul. Stable only for small |δt|; the scheme does not
// check this (spec §7: stability of the explicit scheme is the caller's
// responsibility).
func Explicit() Step {
	return func(t, dt float64, g *grid.Grid, v *field.Tensor, batchShape []int, c Coeffs, face bound.Face) (float64, *grid.Grid, *field.Tensor, error) {
		op, err := disc1d.Build(t, g, batchShape, c.Second, c.First, c.Zeroth, face)
		if err != nil {
			return 0, nil, nil, err
		}
		interior := disc1d.Interior(v, batchShape)
		next := apply(op, dt, interior)
		full := disc1d.Reconstruct(op, next, batchShape)
		return t + dt, g, full, nil
	}
}
