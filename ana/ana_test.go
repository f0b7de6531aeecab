// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_heatSineMode01(tst *testing.T) {

	chk.PrintTitle("heatSineMode01: initial condition and decay rate")

	v0 := HeatSineMode(math.Pi/2, 0, math.Pi, 1, 1)
	chk.Float64(tst, "V(x,0)=sin(x)", 1e-14, v0, 1)

	rate := HeatSineDecayRate(math.Pi, 1, 1)
	chk.Float64(tst, "decay rate", 1e-14, rate, 1)

	v1 := HeatSineMode(math.Pi/2, 1, math.Pi, 1, 1)
	chk.Float64(tst, "V(x,1)", 1e-14, v1, math.Exp(-1))
}

func Test_europeanCall01(tst *testing.T) {

	chk.PrintTitle("europeanCall01: deep in-the-money converges to intrinsic value")

	// as volatility and time to maturity vanish, the call price converges
	// to the discounted intrinsic value.
	c := EuropeanCall(150, 100, 0, 1e-6, 1e-6)
	chk.Float64(tst, "deep ITM call", 1e-3, c, 50)
}

func Test_europeanCall02(tst *testing.T) {

	chk.PrintTitle("europeanCall02: put-call parity holds")

	s, k, r, sigma, tau := 100.0, 100.0, 0.05, 0.2, 1.0
	c := EuropeanCall(s, k, r, sigma, tau)
	p := EuropeanPut(s, k, r, sigma, tau)
	lhs := c - p
	rhs := s - k*math.Exp(-r*tau)
	chk.Float64(tst, "C-P = S-Ke^(-r tau)", 1e-9, lhs, rhs)
}

func Test_europeanCall03(tst *testing.T) {

	chk.PrintTitle("europeanCall03: zero time to maturity is the payoff")

	c := EuropeanCall(120, 100, 0.05, 0.2, 0)
	chk.Float64(tst, "payoff", 1e-14, c, 20)
}
