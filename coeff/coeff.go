// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coeff implements the L0 coefficient evaluators of spec §4.1: the
// user-supplied callables for the second-, first- and zeroth-order terms of
// the PDE, with absent-term and shape-broadcast handling.
package coeff

import (
	"github.com/paddyschmidt/gofdpde/field"
	"github.com/paddyschmidt/gofdpde/grid"
	"github.com/paddyschmidt/gofdpde/pdeerr"
)

// SecondOrderFn returns D_ij for i<=j; a nil return or a nil entry both mean
// "absent" (spec: zero). Entries with i>j are never read.
type SecondOrderFn func(t float64, g *grid.Grid) [][]*field.Tensor

// FirstOrderFn returns μ_i, one entry per axis; nil return or nil entry
// means absent.
type FirstOrderFn func(t float64, g *grid.Grid) []*field.Tensor

// ZerothOrderFn returns r; nil means absent.
type ZerothOrderFn func(t float64, g *grid.Grid) *field.Tensor

// Evaluated holds the broadcast, absent-resolved coefficients for one (t,
// grid) query, ready for the discretizer to read. A nil entry in D or Mu
// still means "this term is exactly zero everywhere" — discretizers skip it
// rather than adding zeros, but the contract guarantees it is safe to treat
// as a zero tensor.
type Evaluated struct {
	D  [][]*field.Tensor // D[i][j], i<=j populated, upper triangle only
	Mu []*field.Tensor   // Mu[i]
	R  *field.Tensor
}

// Eval invokes the three evaluators (any of which may be nil, meaning the
// whole term is absent) at (t, g) and broadcasts every present entry to
// batchShape+gridShape. batchShape is supplied by the caller because the
// coefficient evaluators alone cannot infer it from an all-absent term.
func Eval(t float64, g *grid.Grid, batchShape []int, second SecondOrderFn, first FirstOrderFn, zeroth ZerothOrderFn) (*Evaluated, error) {
	full := append(append([]int{}, batchShape...), g.Shape()...)
	dim := g.Dim()

	out := &Evaluated{D: make([][]*field.Tensor, dim), Mu: make([]*field.Tensor, dim)}

	if second != nil {
		raw := second(t, g)
		for i := 0; i < dim && i < len(raw); i++ {
			out.D[i] = make([]*field.Tensor, dim)
			for j := i; j < dim && j < len(raw[i]); j++ {
				bt, err := field.Broadcast(raw[i][j], full)
				if err != nil {
					return nil, pdeerr.New(pdeerr.ShapeMismatch, "second_order_coeff_fn[%d][%d]: %v", i, j, err)
				}
				if raw[i][j] != nil {
					out.D[i][j] = bt
				}
			}
		}
	}

	if first != nil {
		raw := first(t, g)
		for i := 0; i < dim && i < len(raw); i++ {
			if raw[i] == nil {
				continue
			}
			bt, err := field.Broadcast(raw[i], full)
			if err != nil {
				return nil, pdeerr.New(pdeerr.ShapeMismatch, "first_order_coeff_fn[%d]: %v", i, err)
			}
			out.Mu[i] = bt
		}
	}

	if zeroth != nil {
		raw := zeroth(t, g)
		if raw != nil {
			target := full
			// Open Question (a): a pure scalar (rank 0) is accepted and
			// broadcast; anything else must broadcast to the full shape.
			if len(raw.Shape) != 0 {
				bt, err := field.Broadcast(raw, target)
				if err != nil {
					return nil, pdeerr.New(pdeerr.ShapeMismatch, "zeroth_order_coeff_fn: %v", err)
				}
				out.R = bt
			} else {
				bt, _ := field.Broadcast(raw, target)
				out.R = bt
			}
		}
	}

	return out, nil
}

// D2 returns D_ij, or nil if absent; it panics on i>j since the lower
// triangle is never meant to be read (spec: "only upper triangle read").
func (e *Evaluated) D2(i, j int) *field.Tensor {
	if i > j {
		panic("coeff: lower triangle of D is never read")
	}
	if e.D[i] == nil {
		return nil
	}
	return e.D[i][j]
}
