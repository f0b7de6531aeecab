// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver implements the L4 time-stepping driver of spec §4.7: the
// backward (or forward) loop over time that picks δt from a pluggable
// policy and dispatches one scheme step at a time, letting the coordinate
// grid evolve between steps.
package driver

import (
	"math"

	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/config"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
	"github.com/paddyschmidt/gofdpde/scheme"
)

// Result is the driver's return value (spec §6: final_values, final_grid,
// final_time, steps_taken).
type Result struct {
	Values    *field.Tensor
	Grid      *grid.Grid
	Time      float64
	StepsTaken int
}

// StepBack runs the backward (sign of end-start may be either way) time
// loop of spec §4.7, from startTime/coordGrid/valuesGrid to endTime, using
// step to advance one step at a time.
func StepBack(startTime, endTime float64, coordGrid *grid.Grid, valuesGrid *field.Tensor, batchShape []int, size StepSize, c scheme.Coeffs, face bound.Face, step scheme.Step, cfg config.Solver) (Result, error) {
	sign := 1.0
	if endTime < startTime {
		sign = -1.0
	}

	t := startTime
	g := coordGrid
	v := valuesGrid
	steps := 0

	for {
		if sign > 0 && t >= endTime {
			break
		}
		if sign < 0 && t <= endTime {
			break
		}

		raw := size.Next(t, startTime, endTime)
		dt := sign * math.Abs(raw)
		if dt == 0 {
			return Result{}, pdeerr.New(pdeerr.NoProgress, "step-size policy returned zero magnitude at t=%g", t)
		}

		// clamp so t+dt does not overshoot endTime
		if sign > 0 && t+dt > endTime {
			dt = endTime - t
		}
		if sign < 0 && t+dt < endTime {
			dt = endTime - t
		}
		if dt == 0 {
			return Result{}, pdeerr.New(pdeerr.NoProgress, "clamped step-size is zero at t=%g", t)
		}

		tNext, gNext, vNext, err := step(t, dt, g, v, batchShape, c, face)
		if err != nil {
			return Result{}, err
		}

		if cfg.CheckFinite && !vNext.AllFinite() {
			return Result{}, pdeerr.New(pdeerr.NumericalInstability, "non-finite values detected after step at t=%g", tNext)
		}

		t, g, v = tNext, gNext, vNext
		steps++

		if math.Abs(t-endTime) <= cfg.ProgressTol {
			t = endTime
			break
		}
	}

	return Result{Values: v, Grid: g, Time: t, StepsTaken: steps}, nil
}
