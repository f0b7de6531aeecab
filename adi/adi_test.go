// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adi

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/config"
	"github.com/paddyschmidt/gofdpde/driver"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/scheme"
)

func unitDiffusion2D(t float64, g *grid.Grid) [][]*field.Tensor {
	return [][]*field.Tensor{
		{field.Scalar(1), nil},
		{nil, field.Scalar(1)},
	}
}

func Test_douglas01(tst *testing.T) {

	chk.PrintTitle("douglas01: a constant field with matching Dirichlet faces is a fixed point")

	constValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(3) }
	face := bound.Face{Lower: bound.Dirichlet(constValue), Upper: bound.Dirichlet(constValue)}
	c := scheme.Coeffs{Second: unitDiffusion2D}

	g, err := grid.New([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	v := field.New([]int{4, 4})
	v.Fill(3)

	step := Douglas(0.5)
	_, _, vNext, err := step(0, 0.1, g, v, nil, c, []bound.Face{face, face})
	if err != nil {
		tst.Fatalf("step failed: %v", err)
	}
	expect := field.New([]int{4, 4})
	expect.Fill(3)
	chk.Array(tst, "constant field preserved", 1e-9, vNext.Data, expect.Data)
}

func Test_douglas02(tst *testing.T) {

	chk.PrintTitle("douglas02: decaying 2-D mode stays finite and bounded over several steps")

	zeroValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(zeroValue), Upper: bound.Dirichlet(zeroValue)}
	c := scheme.Coeffs{Second: unitDiffusion2D}

	g, err := grid.New([]float64{0, 0.5, 1, 1.5, 2}, []float64{0, 0.5, 1, 1.5, 2})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	v := field.New([]int{5, 5})
	v.Data = []float64{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 1, 2, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	}

	step := Douglas(0.5)
	t := 0.0
	prevMax := v.MaxAbs()
	for i := 0; i < 4; i++ {
		tNext, gNext, vNext, err := step(t, 0.01, g, v, nil, c, []bound.Face{face, face})
		if err != nil {
			tst.Fatalf("step failed: %v", err)
		}
		if !vNext.AllFinite() {
			tst.Fatalf("step produced non-finite values")
		}
		curMax := vNext.MaxAbs()
		if curMax > prevMax+1e-9 {
			tst.Fatalf("expected bounded/decaying amplitude, got %g after %g", curMax, prevMax)
		}
		t, g, v, prevMax = tNext, gNext, vNext, curMax
	}
}

func Test_stepBack01(tst *testing.T) {

	chk.PrintTitle("stepBack01: the N-dimensional driver loop lands exactly on endTime")

	constValue := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(constValue), Upper: bound.Dirichlet(constValue)}
	c := scheme.Coeffs{Second: unitDiffusion2D}

	g, err := grid.New([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	v := field.New([]int{4, 4})

	res, err := StepBack(0, 0.1, g, v, nil, driver.NumSteps(4), c, []bound.Face{face, face}, Douglas(0.5), config.Default())
	if err != nil {
		tst.Fatalf("StepBack failed: %v", err)
	}
	chk.Float64(tst, "final time", 1e-10, res.Time, 0.1)
	chk.IntAssert(res.StepsTaken, 4)
}
