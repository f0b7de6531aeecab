// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/paddyschmidt/gofdpde/ana"
	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/config"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/scheme"
)

// Test_driver05 is spec §8 scenario 1: the homogeneous heat equation on
// [0,π], Dirichlet-zero, sine initial condition, run to t=0.1 with
// Crank–Nicolson over 100 steps. Expected max-abs error against the
// closed-form decaying mode is < 1e-3.
func Test_driver05(tst *testing.T) {

	chk.PrintTitle("driver05: heat equation sine mode matches the analytic decay within 1e-3")

	const n = 101
	x := make([]float64, n)
	h := math.Pi / float64(n-1)
	for i := range x {
		x[i] = float64(i) * h
	}
	g, err := grid.New(x)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
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

	res, err := StepBack(0, 0.1, g, v, nil, NumSteps(100), c, face, scheme.CN(), config.Default())
	if err != nil {
		tst.Fatalf("StepBack failed: %v", err)
	}

	maxErr := 0.0
	for i, xi := range x {
		exact := ana.HeatSineMode(xi, res.Time, math.Pi, 1, 1)
		if e := math.Abs(res.Values.Data[i] - exact); e > maxErr {
			maxErr = e
		}
	}
	if maxErr >= 1e-3 {
		tst.Fatalf("max-abs error %v exceeds 1e-3", maxErr)
	}
}

// Test_driver06 is spec §8 scenario 2: the Black–Scholes PDE for a European
// call, S∈[0,300], σ=0.2, r=0.05, K=100, T=1, terminal payoff max(S−K,0)
// stepped backward to t=0 with the oscillation-damped CN scheme over 200
// steps. Expected price at S=100 is ≈10.4506 within 1e-2.
func Test_driver06(tst *testing.T) {

	chk.PrintTitle("driver06: Black-Scholes European call matches the closed form within 1e-2")

	const (
		n     = 301
		smax  = 300.0
		sigma = 0.2
		r     = 0.05
		k     = 100.0
		T     = 1.0
	)
	s := make([]float64, n)
	h := smax / float64(n-1)
	for i := range s {
		s[i] = float64(i) * h
	}
	g, err := grid.New(s)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}

	v := field.New([]int{n})
	for i, si := range s {
		v.Data[i] = math.Max(si-k, 0)
	}

	// dV/dt = D(S) V_SS + mu(S) V_S + r_coeff V matches this engine's
	// convention (spec §8 scenario 1 confirms no sign flip against D,mu,r
	// as supplied); the Black-Scholes backward equation
	// dV/dt = -0.5 sigma^2 S^2 V_SS - r S V_S + r V follows by negating the
	// diffusion and drift coefficients and leaving r_coeff unnegated.
	second := func(t float64, g *grid.Grid) [][]*field.Tensor {
		d := field.New([]int{n})
		for i, si := range g.Axes[0] {
			d.Data[i] = -0.5 * sigma * sigma * si * si
		}
		return [][]*field.Tensor{{d}}
	}
	first := func(t float64, g *grid.Grid) []*field.Tensor {
		mu := field.New([]int{n})
		for i, si := range g.Axes[0] {
			mu.Data[i] = -r * si
		}
		return []*field.Tensor{mu}
	}
	zeroth := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(r) }

	zero := func(t float64, g *grid.Grid) *field.Tensor { return field.Scalar(0) }
	upper := func(t float64, g *grid.Grid) *field.Tensor {
		return field.Scalar(smax - k*math.Exp(-r*(T-t)))
	}
	face := bound.Face{Lower: bound.Dirichlet(zero), Upper: bound.Dirichlet(upper)}
	c := scheme.Coeffs{Second: second, First: first, Zeroth: zeroth}

	res, err := StepBack(T, 0, g, v, nil, NumSteps(200), c, face, scheme.DampedCN(2, 1e-3), config.Default())
	if err != nil {
		tst.Fatalf("StepBack failed: %v", err)
	}

	// S=100 is the grid point at index 100 (h=1 here, 301 points over [0,300]).
	idx := 100
	got := res.Values.Data[idx]
	want := ana.EuropeanCall(100, k, r, sigma, T)
	chk.Float64(tst, "European call at S=100", 1e-2, got, want)
}
