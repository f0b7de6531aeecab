// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// normalCDF is the standard normal cumulative distribution function,
// Φ(x) = (1 + erf(x/√2))/2.
func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// EuropeanCall evaluates the Black–Scholes closed-form price of a European
// call with spot s, strike k, risk-free rate r, volatility sigma and time
// to maturity tau = T-t:
//
//	C = s Φ(d1) - k e^{-r τ} Φ(d2)
//	d1 = (ln(s/k) + (r + σ²/2) τ) / (σ√τ)
//	d2 = d1 - σ√τ
//
// the scenario spec §8 validates the oscillation-damped CN scheme against.
func EuropeanCall(s, k, r, sigma, tau float64) float64 {
	if tau <= 0 {
		return math.Max(s-k, 0)
	}
	sqrtTau := math.Sqrt(tau)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*tau) / (sigma * sqrtTau)
	d2 := d1 - sigma*sqrtTau
	return s*normalCDF(d1) - k*math.Exp(-r*tau)*normalCDF(d2)
}

// EuropeanPut evaluates the put counterpart via put-call parity.
func EuropeanPut(s, k, r, sigma, tau float64) float64 {
	return EuropeanCall(s, k, r, sigma, tau) - s + k*math.Exp(-r*tau)
}
