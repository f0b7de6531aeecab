// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the coordinate grid of spec §3: an ordered list
// of per-axis coordinate arrays, arbitrary in 1-D, per-axis uniform in
// multidim, plus the shape bookkeeping every other layer relies on.
package grid

import (
	"github.com/paddyschmidt/gofdpde/pdeerr"
)

// Grid holds dim coordinate arrays, one per axis.
type Grid struct {
	Axes [][]float64 // Axes[j] are the n_j coordinates along axis j
}

// New wraps coordinate arrays into a Grid, validating monotonicity.
func New(axes ...[]float64) (*Grid, error) {
	g := &Grid{Axes: axes}
	for j, a := range axes {
		if len(a) < 3 {
			return nil, pdeerr.New(pdeerr.UndersizedGrid, "axis %d has %d points, need >= 3", j, len(a))
		}
		if !monotone(a) {
			return nil, pdeerr.New(pdeerr.NonMonotoneGrid, "axis %d is not strictly monotone", j)
		}
	}
	return g, nil
}

// Dim is the number of axes.
func (g *Grid) Dim() int { return len(g.Axes) }

// Shape returns (n_1, ..., n_dim).
func (g *Grid) Shape() []int {
	s := make([]int, g.Dim())
	for j, a := range g.Axes {
		s[j] = len(a)
	}
	return s
}

// InteriorShape returns (n_1-2, ..., n_dim-2): the interior representation
// used transiently inside a step (spec §3 invariants).
func (g *Grid) InteriorShape() []int {
	s := g.Shape()
	for j := range s {
		s[j] -= 2
	}
	return s
}

func monotone(a []float64) bool {
	if len(a) < 2 {
		return true
	}
	asc := a[1] > a[0]
	for i := 1; i < len(a); i++ {
		if asc && a[i] <= a[i-1] {
			return false
		}
		if !asc && a[i] >= a[i-1] {
			return false
		}
	}
	return true
}

// UniformSpacing returns the constant spacing of axis j and true, or
// (0, false) if the axis is not uniform up to tol.
func (g *Grid) UniformSpacing(j int, tol float64) (float64, bool) {
	a := g.Axes[j]
	if len(a) < 2 {
		return 0, false
	}
	h := a[1] - a[0]
	for i := 2; i < len(a); i++ {
		if diff := (a[i] - a[i-1]) - h; diff > tol || diff < -tol {
			return 0, false
		}
	}
	return h, true
}

// CheckMultidimUniform validates spec §6's multidim grid contract: every
// axis must be strictly monotone and uniformly spaced up to tol.
func (g *Grid) CheckMultidimUniform(tol float64) error {
	if g.Dim() < 2 {
		return nil
	}
	for j := range g.Axes {
		if _, ok := g.UniformSpacing(j, tol); !ok {
			return pdeerr.New(pdeerr.NonUniformMultidim, "axis %d is not uniformly spaced", j)
		}
	}
	return nil
}

// Spacings returns (Δ₋, Δ₊) around interior point i on axis j (1-based
// interior index conventions of spec §4.3: i ranges over 1..n-2 of Axes[j]).
func (g *Grid) Spacings(j, i int) (minus, plus float64) {
	a := g.Axes[j]
	return a[i] - a[i-1], a[i+1] - a[i]
}

// Clone returns a deep copy, used where a scheme or driver replaces the grid
// between steps without aliasing the caller's arrays.
func (g *Grid) Clone() *Grid {
	axes := make([][]float64, len(g.Axes))
	for j, a := range g.Axes {
		axes[j] = append([]float64{}, a...)
	}
	return &Grid{Axes: axes}
}
