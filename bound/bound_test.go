// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
)

func Test_closure01(tst *testing.T) {

	chk.PrintTitle("closure01: Dirichlet closure reconstructs the fixed value")

	alpha, beta, gamma := field.Scalar(1), field.Scalar(0), field.Scalar(5)
	xi1, xi2, eta, err := Closure(alpha, beta, gamma, 0.1, 0.1)
	if err != nil {
		tst.Fatalf("Closure failed: %v", err)
	}
	chk.Float64(tst, "xi1", 1e-15, xi1.Data[0], 0)
	chk.Float64(tst, "xi2", 1e-15, xi2.Data[0], 0)
	chk.Float64(tst, "eta", 1e-15, eta.Data[0], 5)
}

func Test_closure02(tst *testing.T) {

	chk.PrintTitle("closure02: pure Neumann with zero flux preserves constants")

	alpha, beta, gamma := field.Scalar(0), field.Scalar(1), field.Scalar(0)
	xi1, xi2, eta, err := Closure(alpha, beta, gamma, 0.1, 0.1)
	if err != nil {
		tst.Fatalf("Closure failed: %v", err)
	}
	chk.Float64(tst, "xi1+xi2", 1e-14, xi1.Data[0]+xi2.Data[0], 1)
	chk.Float64(tst, "eta", 1e-15, eta.Data[0], 0)
}

func Test_closure03(tst *testing.T) {

	chk.PrintTitle("closure03: alpha=beta=0 is malformed")

	alpha, beta, gamma := field.Scalar(0), field.Scalar(0), field.Scalar(1)
	_, _, _, err := Closure(alpha, beta, gamma, 0.1, 0.1)
	if !pdeerr.Is(err, pdeerr.MalformedBoundary) {
		tst.Fatalf("expected MalformedBoundary, got %v", err)
	}
}

func Test_dirichlet01(tst *testing.T) {

	chk.PrintTitle("dirichlet01: Dirichlet/Neumann constructors")

	fixed := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(7) }
	fn := Dirichlet(fixed)
	alpha, beta, gamma := fn(0, nil)
	chk.Float64(tst, "alpha", 1e-17, alpha.Data[0], 1)
	chk.Float64(tst, "beta", 1e-17, beta.Data[0], 0)
	chk.Float64(tst, "gamma", 1e-17, gamma.Data[0], 7)

	flux := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(-2) }
	fn2 := Neumann(flux)
	alpha2, beta2, gamma2 := fn2(0, nil)
	chk.Float64(tst, "alpha", 1e-17, alpha2.Data[0], 0)
	chk.Float64(tst, "beta", 1e-17, beta2.Data[0], 1)
	chk.Float64(tst, "gamma", 1e-17, gamma2.Data[0], -2)
}
