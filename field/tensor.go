// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the dense batch_shape+grid_shape array that
// flows between coefficient evaluators, the discretizers and the schemes.
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense row-major array of shape Shape. A nil *Tensor stands for
// the all-absent sentinel (spec §4.1): "whole callable absent" and
// "individual entry absent" both collapse to a nil *Tensor and are treated
// as zero at every point that reads one.
type Tensor struct {
	Shape []int     // e.g. batch_shape + grid_shape
	Data  []float64 // row-major, len(Data) == prod(Shape)
}

// New allocates a zeroed tensor with the given shape.
func New(shape []int) *Tensor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return &Tensor{Shape: append([]int{}, shape...), Data: make([]float64, n)}
}

// Scalar returns a rank-0 tensor holding a single value.
func Scalar(v float64) *Tensor {
	return &Tensor{Shape: nil, Data: []float64{v}}
}

// Len returns the number of elements.
func (t *Tensor) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Data)
}

// strides computes row-major strides for shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// broadcastable reports whether "from" can broadcast to "to" by the usual
// trailing-dimension rule (equal, or from-dim == 1, or from has fewer dims).
func broadcastable(from, to []int) bool {
	if len(from) > len(to) {
		return false
	}
	off := len(to) - len(from)
	for i, d := range from {
		td := to[off+i]
		if d != 1 && d != td {
			return false
		}
	}
	return true
}

// Broadcast returns a new dense tensor of shape "to" filled from t, or an
// all-zero tensor of shape "to" if t is the absent sentinel (nil). For a
// non-nil t that cannot broadcast it returns a plain chk.Err error; callers
// wrap it as a pdeerr.ShapeMismatch.
func Broadcast(t *Tensor, to []int) (*Tensor, error) {
	out := New(to)
	if t == nil {
		return out, nil
	}
	if !broadcastable(t.Shape, to) {
		return nil, chk.Err("cannot broadcast tensor of shape %v to shape %v", t.Shape, to)
	}
	ost := strides(to)
	off := len(to) - len(t.Shape)
	fst := strides(t.Shape)
	idx := make([]int, len(to))
	for linear := range out.Data {
		rem := linear
		for i, s := range ost {
			idx[i] = rem / s
			rem %= s
		}
		floc := 0
		for i, d := range t.Shape {
			j := idx[off+i]
			if d == 1 {
				j = 0
			}
			floc += j * fst[i]
		}
		out.Data[linear] = t.Data[floc]
	}
	return out, nil
}

// AxpyInto computes dst += alpha*x elementwise, using gonum/floats for the
// inner loop the way a batched axpy would be vectorized.
func AxpyInto(dst *Tensor, alpha float64, x *Tensor) {
	floats.AddScaled(dst.Data, alpha, x.Data)
}

// Fill sets every element to v, via la.VecFill the way the teacher zeroes
// residual/scratch vectors before an assembly pass.
func (t *Tensor) Fill(v float64) {
	la.VecFill(t.Data, v)
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	c := &Tensor{Shape: append([]int{}, t.Shape...), Data: append([]float64{}, t.Data...)}
	return c
}

// MaxAbs returns the largest absolute value. la.VecNorm computes the
// Euclidean norm, a different quantity than the max-abs amplitude bound
// ADI's step-to-step divergence check needs, so it is not a fit here; no
// other pack helper computes max-abs, hence the plain loop.
func (t *Tensor) MaxAbs() float64 {
	m := 0.0
	for _, v := range t.Data {
		if a := abs(v); a > m {
			m = a
		}
	}
	return m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// AllFinite reports whether every entry is finite; used by the optional
// NumericalInstability diagnostic (spec §7).
func (t *Tensor) AllFinite() bool {
	for _, v := range t.Data {
		if v != v || v > maxFinite || v < -maxFinite {
			return false
		}
	}
	return true
}

const maxFinite = 1.7976931348623157e+308

// Transpose returns a physical copy of t with dimensions permuted:
// out.Shape[i] = t.Shape[perm[i]]. This is the axis-rotation primitive of
// spec §9/§4.6: ADI needs the axis being solved innermost and contiguous
// before handing a slice to the batched tridiagonal solve, then needs to
// reverse the permutation afterward. A physical copy (rather than a
// logical stride-only view) is used here for simplicity; the buffer is
// released every step by relying on Go's garbage collector, matching the
// "release or reuse" requirement of spec §5 without hand-rolled pooling.
func Transpose(t *Tensor, perm []int) *Tensor {
	toShape := make([]int, len(perm))
	for i, p := range perm {
		toShape[i] = t.Shape[p]
	}
	out := New(toShape)
	fromStride := strides(t.Shape)
	toStride := strides(toShape)
	idx := make([]int, len(toShape))
	for linear := range out.Data {
		rem := linear
		for i, s := range toStride {
			idx[i] = rem / s
			rem %= s
		}
		floc := 0
		for i, p := range perm {
			floc += idx[i] * fromStride[p]
		}
		out.Data[linear] = t.Data[floc]
	}
	return out
}

// InteriorDims strips the outermost and innermost point of exactly the
// listed absolute dimension indices, leaving every other dimension at its
// current extent. It generalizes InteriorAll to a subset of dimensions,
// needed wherever only some of a tensor's axes have reached their
// ND-interior extent and the rest are still at their full coordinate-array
// length (spec §6's boundary-function cross-section contract).
func InteriorDims(t *Tensor, dims []int) *Tensor {
	shrink := make(map[int]bool, len(dims))
	for _, d := range dims {
		shrink[d] = true
	}
	newShape := append([]int{}, t.Shape...)
	for _, d := range dims {
		newShape[d] -= 2
	}
	out := New(newShape)
	tStride := strides(t.Shape)
	oStride := strides(newShape)
	idx := make([]int, len(newShape))
	for linear := range out.Data {
		rem := linear
		for i, s := range oStride {
			idx[i] = rem / s
			rem %= s
		}
		floc := 0
		for i, d := range idx {
			j := d
			if shrink[i] {
				j = d + 1
			}
			floc += j * tStride[i]
		}
		out.Data[linear] = t.Data[floc]
	}
	return out
}

// InteriorAll strips the outermost and innermost point of every dimension
// from numBatchDims onward, turning a batch_shape+gridShape tensor into its
// batch_shape+interiorShape counterpart (spec §3's interior representation).
func InteriorAll(t *Tensor, numBatchDims int) *Tensor {
	dims := make([]int, 0, len(t.Shape)-numBatchDims)
	for i := numBatchDims; i < len(t.Shape); i++ {
		dims = append(dims, i)
	}
	return InteriorDims(t, dims)
}

// PadAxis grows dimension `axis` by two, copying t into the new interior
// positions and filling the two new boundary slices with the Robin
// reconstruction formula V = ξ₁V₁ + ξ₂V₂ + η (spec §4.2 "Reconstruction"),
// where V₁,V₂ are t's two points nearest each end of `axis`. xi1L/xi2L/etaL
// and xi1U/xi2U/etaU must have t's shape with `axis` removed.
func PadAxis(t *Tensor, axis int, xi1L, xi2L, etaL, xi1U, xi2U, etaU *Tensor) *Tensor {
	n := t.Shape[axis]
	newShape := append([]int{}, t.Shape...)
	newShape[axis] = n + 2
	out := New(newShape)
	cshape := make([]int, 0, len(t.Shape)-1)
	for i, s := range t.Shape {
		if i != axis {
			cshape = append(cshape, s)
		}
	}
	cn := 1
	for _, s := range cshape {
		cn *= s
	}
	cst := strides(cshape)
	tStride := strides(t.Shape)
	oStride := strides(newShape)
	cIdx := make([]int, len(cshape))
	for lin := 0; lin < cn; lin++ {
		rem := lin
		for i, s := range cst {
			cIdx[i] = rem / s
			rem %= s
		}
		baseT, baseO := 0, 0
		ci := 0
		for i := range t.Shape {
			if i == axis {
				continue
			}
			baseT += cIdx[ci] * tStride[i]
			baseO += cIdx[ci] * oStride[i]
			ci++
		}
		for k := 0; k < n; k++ {
			out.Data[baseO+(k+1)*oStride[axis]] = t.Data[baseT+k*tStride[axis]]
		}
		v1, v2 := t.Data[baseT], t.Data[baseT+tStride[axis]]
		u1, u2 := t.Data[baseT+(n-1)*tStride[axis]], t.Data[baseT+(n-2)*tStride[axis]]
		out.Data[baseO] = xi1L.Data[lin]*v1 + xi2L.Data[lin]*v2 + etaL.Data[lin]
		out.Data[baseO+(n+1)*oStride[axis]] = xi1U.Data[lin]*u1 + xi2U.Data[lin]*u2 + etaU.Data[lin]
	}
	return out
}

// InversePerm returns the permutation that undoes perm.
func InversePerm(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}
