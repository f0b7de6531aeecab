// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/config"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
	"github.com/paddyschmidt/gofdpde/scheme"
)

func unitDiffusion(t float64, g *grid.Grid) [][]*field.Tensor {
	return [][]*field.Tensor{{field.Scalar(1)}}
}

func Test_driver01(tst *testing.T) {

	chk.PrintTitle("driver01: NumSteps divides the interval and lands exactly on endTime")

	zeroValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(zeroValue), Upper: bound.Dirichlet(zeroValue)}
	c := scheme.Coeffs{Second: unitDiffusion}

	g, err := grid.New([]float64{0, 1, 2, 3, 4})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	v := field.New([]int{5})

	res, err := StepBack(0, 0.1, g, v, nil, NumSteps(4), c, face, scheme.Implicit(), config.Default())
	if err != nil {
		tst.Fatalf("StepBack failed: %v", err)
	}
	chk.Float64(tst, "final time", 1e-10, res.Time, 0.1)
	chk.IntAssert(res.StepsTaken, 4)
}

func Test_driver02(tst *testing.T) {

	chk.PrintTitle("driver02: backward time runs (endTime < startTime)")

	zeroValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(zeroValue), Upper: bound.Dirichlet(zeroValue)}
	c := scheme.Coeffs{Second: unitDiffusion}

	g, _ := grid.New([]float64{0, 1, 2, 3, 4})
	v := field.New([]int{5})

	res, err := StepBack(1.0, 0.0, g, v, nil, NumSteps(5), c, face, scheme.Implicit(), config.Default())
	if err != nil {
		tst.Fatalf("StepBack failed: %v", err)
	}
	chk.Float64(tst, "final time", 1e-10, res.Time, 0)
	chk.IntAssert(res.StepsTaken, 5)
}

func Test_driver03(tst *testing.T) {

	chk.PrintTitle("driver03: a zero step count is NoProgress")

	zeroValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(zeroValue), Upper: bound.Dirichlet(zeroValue)}
	c := scheme.Coeffs{Second: unitDiffusion}

	g, _ := grid.New([]float64{0, 1, 2, 3, 4})
	v := field.New([]int{5})

	_, err := StepBack(0, 1, g, v, nil, NumSteps(0), c, face, scheme.Implicit(), config.Default())
	if !pdeerr.Is(err, pdeerr.NoProgress) {
		tst.Fatalf("expected NoProgress, got %v", err)
	}
}

func Test_driver04(tst *testing.T) {

	chk.PrintTitle("driver04: CheckFinite catches a diverging explicit step")

	zeroValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(zeroValue), Upper: bound.Dirichlet(zeroValue)}
	c := scheme.Coeffs{Second: unitDiffusion}

	g, _ := grid.New([]float64{0, 1, 2, 3, 4})
	v := field.New([]int{5})
	v.Data = []float64{0, 1, -1, 1, 0}

	cfg := config.Default()
	cfg.CheckFinite = true
	// repeated explicit steps with a wildly oversized fixed δt amplify the
	// solution geometrically every step; it overflows to +-Inf within a few
	// dozen steps, well before reaching the (deliberately distant) endTime.
	_, err := StepBack(0, 1e8, g, v, nil, Fixed(1e6), c, face, scheme.Explicit(), cfg)
	if !pdeerr.Is(err, pdeerr.NumericalInstability) {
		tst.Fatalf("expected NumericalInstability, got %v", err)
	}
}
