// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tridiag implements the one sparse-operator primitive the whole
// core is built from (spec §9, §5): a batched tridiagonal matrix-vector
// multiply and a batched tridiagonal solve, both treating every dimension
// except the one being stepped as a batch dimension that may execute
// across cores independently (spec §5).
package tridiag

import (
	"github.com/exascience/pargo/parallel"
)

// System is one axis-aligned operator in its three-diagonal representation.
// Sub, Main, Super and any right-hand side all share shape
// (batchCount, M): batchCount independent systems of size M, each laid out
// contiguously (the axis being solved is innermost, per spec §4.6/§9's
// axis-rotation requirement).
type System struct {
	Sub, Main, Super []float64 // each len == batchCount*M
	M                int       // size of one tridiagonal system
}

func (s *System) batchCount() int {
	if s.M == 0 {
		return 0
	}
	return len(s.Main) / s.M
}

// MatMul computes y = L x for every batch element, where L is the
// tridiagonal operator described by s. x and y share s's (batchCount, M)
// layout. y may alias x.
func MatMul(s *System, x []float64) []float64 {
	y := make([]float64, len(x))
	n := s.batchCount()
	parallel.Range(0, n, 0, func(low, high int) {
		for b := low; b < high; b++ {
			off := b * s.M
			matmulOne(s.Sub[off:off+s.M], s.Main[off:off+s.M], s.Super[off:off+s.M], x[off:off+s.M], y[off:off+s.M])
		}
	})
	return y
}

func matmulOne(sub, main, super, x, y []float64) {
	m := len(main)
	for i := 0; i < m; i++ {
		v := main[i] * x[i]
		if i > 0 {
			v += sub[i] * x[i-1]
		}
		if i < m-1 {
			v += super[i] * x[i+1]
		}
		y[i] = v
	}
}

// Solve solves (I - scale*L) y = rhs for every batch element via the Thomas
// algorithm, where L is described by s. This is the primitive every
// implicit-type scheme (spec §4.5/§4.6) reduces to: a solve against
// I - scale*L rather than L itself, since every scheme's implicit half
// assembles that shifted system. rhs may alias the output.
func Solve(s *System, scale float64, rhs []float64) []float64 {
	y := make([]float64, len(rhs))
	n := s.batchCount()
	parallel.Range(0, n, 0, func(low, high int) {
		// scratch reused per batch element within this worker's slice
		cp := make([]float64, s.M)
		dp := make([]float64, s.M)
		for b := low; b < high; b++ {
			off := b * s.M
			thomasShifted(s.Sub[off:off+s.M], s.Main[off:off+s.M], s.Super[off:off+s.M], scale, rhs[off:off+s.M], y[off:off+s.M], cp, dp)
		}
	})
	return y
}

// thomasShifted solves (I - scale*L)y = d for one system, with L given by
// (sub, main, super), using the standard forward-elimination /
// back-substitution Thomas algorithm. cp, dp are caller-provided scratch of
// length m, avoiding an allocation per batch element.
func thomasShifted(sub, main, super []float64, scale float64, d, y, cp, dp []float64) {
	m := len(main)
	if m == 0 {
		return
	}
	// effective diagonals of (I - scale*L)
	a0 := func(i int) float64 {
		if i == 0 {
			return 0
		}
		return -scale * sub[i]
	}
	b0 := func(i int) float64 { return 1 - scale*main[i] }
	c0 := func(i int) float64 {
		if i == m-1 {
			return 0
		}
		return -scale * super[i]
	}

	cp[0] = c0(0) / b0(0)
	dp[0] = d[0] / b0(0)
	for i := 1; i < m; i++ {
		denom := b0(i) - a0(i)*cp[i-1]
		cp[i] = c0(i) / denom
		dp[i] = (d[i] - a0(i)*dp[i-1]) / denom
	}
	y[m-1] = dp[m-1]
	for i := m - 2; i >= 0; i-- {
		y[i] = dp[i] - cp[i]*y[i+1]
	}
}
