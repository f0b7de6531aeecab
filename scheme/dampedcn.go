// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"math"

	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/disc1d"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
)

// gershgorinMax estimates the spectral radius of the assembled operator by
// the Gershgorin bound max_i(|sub_i|+|main_i|+|super_i|), a cheap
// closed-form stand-in for an iterative power-method eigenvalue estimate
// (spec §4.5's "estimate of max-eigenvalue").
func gershgorinMax(op *disc1d.Operator) float64 {
	m := op.Sys.M
	n := len(op.Sys.Main)
	best := 0.0
	for i := 0; i < n; i++ {
		row := math.Abs(op.Sys.Main[i])
		if i%m != 0 {
			row += math.Abs(op.Sys.Sub[i])
		}
		if i%m != m-1 {
			row += math.Abs(op.Sys.Super[i])
		}
		if row > best {
			best = row
		}
	}
	return best
}

// DampedCN builds the oscillation-damped Crank–Nicolson scheme of spec
// §4.5: Rannacher/extrapolation smoothing for the first ne steps, then a
// one-shot, non-reverting switch to plain CN. If ne <= 0, ne is derived on
// the first call from a Gershgorin eigenvalue estimate so that
// (δt·λ_max)^{-ne} reaches targetDamping.
func DampedCN(ne int, targetDamping float64) Step {
	resolved := ne > 0
	switched := false
	count := 0
	cn := CN()
	rex := Extrapolation()
	return func(t, dt float64, g *grid.Grid, v *field.Tensor, batchShape []int, c Coeffs, face bound.Face) (float64, *grid.Grid, *field.Tensor, error) {
		if !resolved {
			op, err := disc1d.Build(t, g, batchShape, c.Second, c.First, c.Zeroth, face)
			if err != nil {
				return 0, nil, nil, err
			}
			lambdaMax := gershgorinMax(op)
			dtLambda := math.Abs(dt) * lambdaMax
			if dtLambda > 1 {
				ne = int(math.Ceil(math.Log(1/targetDamping) / math.Log(dtLambda)))
			} else {
				ne = 1
			}
			if ne < 1 {
				ne = 1
			}
			resolved = true
		}
		if !switched {
			count++
			if count >= ne {
				switched = true
			}
			return rex(t, dt, g, v, batchShape, c, face)
		}
		return cn(t, dt, g, v, batchShape, c, face)
	}
}
