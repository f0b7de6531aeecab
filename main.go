// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/paddyschmidt/gofdpde/ana"
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/config"
	"github.com/paddyschmidt/gofdpde/driver"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/scheme"
)

// a worked example of spec §8 scenario 1: the homogeneous heat equation
// V_t = V_xx on [0, π] with V(0,t) = V(π,t) = 0 and initial condition
// sin(x), run to t=0.5 with Crank–Nicolson and compared against the
// closed-form decaying-mode solution.
func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\ngofdpde -- finite-difference parabolic PDE solver\n\n")

	n := 41
	x := make([]float64, n)
	h := math.Pi / float64(n-1)
	for i := range x {
		x[i] = float64(i) * h
	}
	g, err := grid.New(x)
	if err != nil {
		chk.Panic("grid.New failed:\n%v", err)
	}

	v := field.New([]int{n})
	for i, xi := range x {
		v.Data[i] = math.Sin(xi)
	}

	zero := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	face := bound.Face{Lower: bound.Dirichlet(zero), Upper: bound.Dirichlet(zero)}
	c := scheme.Coeffs{Second: func(t float64, g *grid.Grid) [][]*field.Tensor {
		return [][]*field.Tensor{{field.Scalar(1)}}
	}}

	res, err := driver.StepBack(0, 0.5, g, v, nil, driver.NumSteps(50), c, face, scheme.CN(), config.Default())
	if err != nil {
		chk.Panic("StepBack failed:\n%v", err)
	}

	io.Pf("\n%6s %14s %14s %14s\n", "x", "numeric", "analytic", "abs.error")
	for i := 0; i < n; i += 10 {
		xi := res.Grid.Axes[0][i]
		numeric := res.Values.Data[i]
		exact := ana.HeatSineMode(xi, res.Time, math.Pi, 1, 1)
		io.Pf("%6.3f %14.6e %14.6e %14.3e\n", xi, numeric, exact, math.Abs(numeric-exact))
	}
}
