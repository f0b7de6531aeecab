// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disc1d

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/coeff"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
)

func unitDiffusion(t float64, g *grid.Grid) [][]*field.Tensor {
	return [][]*field.Tensor{{field.Scalar(1)}}
}

func zeroDirichlet(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }

func Test_disc1d01(tst *testing.T) {

	chk.PrintTitle("disc1d01: uniform grid, unit diffusion, zero Dirichlet")

	g, err := grid.New([]float64{0, 1, 2, 3, 4})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	face := bound.Face{Lower: bound.Dirichlet(zeroDirichlet), Upper: bound.Dirichlet(zeroDirichlet)}
	op, err := Build(0, g, nil, unitDiffusion, nil, nil, face)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	// uniform spacing h=1: L's interior diagonal should be the classic
	// second-difference stencil (1, -2, 1)/h^2 with Dirichlet boundaries
	// folded to zero contribution (xi1=xi2=0, eta=0 for alpha=1,beta=0).
	chk.Array(tst, "sub", 1e-14, op.Sys.Sub, []float64{0, 1, 1})
	chk.Array(tst, "main", 1e-14, op.Sys.Main, []float64{-2, -2, -2})
	chk.Array(tst, "super", 1e-14, op.Sys.Super, []float64{1, 1, 0})
	chk.Array(tst, "b", 1e-14, op.B.Data, []float64{0, 0, 0})
}

func Test_disc1d02(tst *testing.T) {

	chk.PrintTitle("disc1d02: reconstruct recovers the boundary values")

	g, _ := grid.New([]float64{0, 1, 2, 3, 4})
	valueTen := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(10) }
	face := bound.Face{Lower: bound.Dirichlet(valueTen), Upper: bound.Dirichlet(valueTen)}
	op, err := Build(0, g, nil, unitDiffusion, nil, nil, face)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	interior := field.New([]int{3})
	interior.Data = []float64{1, 2, 3}
	full := Reconstruct(op, interior, nil)
	chk.Array(tst, "full", 1e-14, full.Data, []float64{10, 1, 2, 3, 10})

	back := Interior(full, nil)
	chk.Array(tst, "interior round trip", 1e-14, back.Data, interior.Data)
}
