// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "github.com/cpmech/gosl/fun"

// StepSize collapses the three mutually exclusive step-size specifiers of
// spec §4.7/§6 (num_steps, fixed δt, callable(t)→δt) into the single
// internal primitive "next δt given current t and remaining interval",
// exactly as the teacher's inp.Stage.Control.DtFunc fun.Func collapses a
// fixed-or-computed step size into one callable.
type StepSize struct {
	numSteps int
	fixed    float64
	fn       fun.Func
}

// NumSteps builds a StepSize that divides [start,end] into n equal steps.
// Every call returns the whole span (end-start)/n, not a share of the
// remaining interval.
func NumSteps(n int) StepSize { return StepSize{numSteps: n} }

// Fixed builds a StepSize returning a constant |δt|.
func Fixed(dt float64) StepSize { return StepSize{fixed: dt} }

// Func builds a StepSize delegating to an arbitrary callable(t) -> δt,
// reusing gosl/fun.Func's F(t, x) signature with x left nil — the same
// contract the teacher uses for inp.Stage.Control.DtFunc.
func Func(f fun.Func) StepSize { return StepSize{fn: f} }

// Next returns the raw (unsigned-intent) magnitude of δt for the step
// starting at t, given the total signed span of the run. Exported so the
// N-dimensional driver (package adi) can reuse the same step-size policies.
func (s StepSize) Next(t, start, end float64) float64 {
	switch {
	case s.fn != nil:
		return s.fn.F(t, nil)
	case s.fixed != 0:
		return s.fixed
	default:
		if s.numSteps <= 0 {
			return 0
		}
		return (end - start) / float64(s.numSteps)
	}
}
