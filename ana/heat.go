// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form analytic solutions used to validate
// the numerical schemes (spec §8's concrete test scenarios).
package ana

import "math"

// HeatSineMode evaluates the n-th Dirichlet-zero eigenmode of the 1-D heat
// equation V_t = D V_xx on [0, L], V(0,t) = V(L,t) = 0, with initial
// condition sin(nπx/L):
//
//	V(x,t) = exp(-D (nπ/L)² t) sin(nπx/L)
func HeatSineMode(x, t, length, diffusivity float64, n int) float64 {
	k := float64(n) * math.Pi / length
	return math.Exp(-diffusivity*k*k*t) * math.Sin(k*x)
}

// HeatSineDecayRate returns the exponential decay rate D(nπ/L)² of
// HeatSineMode's n-th mode, the quantity a convergence test checks the
// numerical solution's log-amplitude slope against.
func HeatSineDecayRate(length, diffusivity float64, n int) float64 {
	k := float64(n) * math.Pi / length
	return diffusivity * k * k
}
