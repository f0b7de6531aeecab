// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config holds the tolerance knobs the drivers read, plus a damping
// target value for the oscillation-damped CN scheme, the same role the teacher's inp.Solver struct plays for FEM
// solver tolerances (REatol, REmmin, REmmax, NdvgMax, DtMin, ...).
package config

// Solver bundles the ambient tolerances of spec §4.5/§4.7/§7.
type Solver struct {
	// ProgressTol is the driver's "close enough to endTime" tolerance
	// (spec §4.7 step 4).
	ProgressTol float64

	// CheckFinite turns on the optional NumericalInstability diagnostic of
	// spec §7; off by default, matching the teacher's divergence checks
	// being behind a DvgCtrl flag.
	CheckFinite bool

	// DampingTarget is a target damping ratio for the oscillation-damped
	// CN scheme's eigenvalue-derived Rannacher step count (spec §4.5).
	// scheme.DampedCN takes its target as an argument and does not read
	// this field; no package reads it.
	DampingTarget float64
}

// Default returns the solver configuration used when the caller has no
// stronger opinion.
func Default() Solver {
	return Solver{
		ProgressTol:   1e-10,
		CheckFinite:   false,
		DampingTarget: 1e-6,
	}
}
