// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adi

import (
	"math"

	"github.com/paddyschmidt/gofdpde/bound"
	"github.com/paddyschmidt/gofdpde/config"
	"github.com/paddyschmidt/gofdpde/driver"
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
	"github.com/paddyschmidt/gofdpde/scheme"
)

// StepBack is the N-dimensional analogue of driver.StepBack (spec §4.7),
// identical in its time-loop structure but dispatching one Face per axis to
// an adi.Step instead of a single scheme.Step.
func StepBack(startTime, endTime float64, coordGrid *grid.Grid, valuesGrid *field.Tensor, batchShape []int, size driver.StepSize, c scheme.Coeffs, faces []bound.Face, step Step, cfg config.Solver) (driver.Result, error) {
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
			return driver.Result{}, pdeerr.New(pdeerr.NoProgress, "step-size policy returned zero magnitude at t=%g", t)
		}

		if sign > 0 && t+dt > endTime {
			dt = endTime - t
		}
		if sign < 0 && t+dt < endTime {
			dt = endTime - t
		}
		if dt == 0 {
			return driver.Result{}, pdeerr.New(pdeerr.NoProgress, "clamped step-size is zero at t=%g", t)
		}

		tNext, gNext, vNext, err := step(t, dt, g, v, batchShape, c, faces)
		if err != nil {
			return driver.Result{}, err
		}

		if cfg.CheckFinite && !vNext.AllFinite() {
			return driver.Result{}, pdeerr.New(pdeerr.NumericalInstability, "non-finite values detected after step at t=%g", tNext)
		}

		t, g, v = tNext, gNext, vNext
		steps++

		if math.Abs(t-endTime) <= cfg.ProgressTol {
			t = endTime
			break
		}
	}

	return driver.Result{Values: v, Grid: g, Time: t, StepsTaken: steps}, nil
}
