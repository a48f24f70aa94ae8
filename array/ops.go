// Copyright 2025 The Dimkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/dimkit/dimkit/internal/array"
)

// Vector operations. Into forms write into an explicit output, which may
// alias an input unless the operation says otherwise; value forms derive a
// fresh compact result of matching shape.

// Add returns a + b element-wise.
func Add[T Float](a, b *Vector[T]) *Vector[T] { return array.Add(a, b) }

// AddInto computes dst = a + b element-wise.
func AddInto[T Float](dst, a, b *Vector[T]) { array.AddInto(dst, a, b) }

// Sub returns a - b element-wise.
func Sub[T Float](a, b *Vector[T]) *Vector[T] { return array.Sub(a, b) }

// SubInto computes dst = a - b element-wise.
func SubInto[T Float](dst, a, b *Vector[T]) { array.SubInto(dst, a, b) }

// Mul returns a * b element-wise.
func Mul[T Float](a, b *Vector[T]) *Vector[T] { return array.Mul(a, b) }

// MulInto computes dst = a * b element-wise.
func MulInto[T Float](dst, a, b *Vector[T]) { array.MulInto(dst, a, b) }

// Div returns a / b element-wise.
func Div[T Float](a, b *Vector[T]) *Vector[T] { return array.Div(a, b) }

// DivInto computes dst = a / b element-wise.
func DivInto[T Float](dst, a, b *Vector[T]) { array.DivInto(dst, a, b) }

// MulScalar returns a * s.
func MulScalar[T Float](a *Vector[T], s T) *Vector[T] { return array.MulScalar(a, s) }

// MulScalarInto computes dst = a * s. dst may alias a for in-place scaling.
func MulScalarInto[T Float](dst, a *Vector[T], s T) { array.MulScalarInto(dst, a, s) }

// AddScalar returns a + s.
func AddScalar[T Float](a *Vector[T], s T) *Vector[T] { return array.AddScalar(a, s) }

// AddScalarInto computes dst = a + s.
func AddScalarInto[T Float](dst, a *Vector[T], s T) { array.AddScalarInto(dst, a, s) }

// ScaledAdd returns sa*a + sb*b.
func ScaledAdd[T Float](a *Vector[T], sa T, b *Vector[T], sb T) *Vector[T] {
	return array.ScaledAdd(a, sa, b, sb)
}

// ScaledAddInto computes dst = sa*a + sb*b.
func ScaledAddInto[T Float](dst, a *Vector[T], sa T, b *Vector[T], sb T) {
	array.ScaledAddInto(dst, a, sa, b, sb)
}

// Lerp returns the linear interpolation (1-t)*a + t*b.
func Lerp[T Float](a, b *Vector[T], t T) *Vector[T] { return array.Lerp(a, b, t) }

// LerpInto computes dst = (1-t)*a + t*b.
func LerpInto[T Float](dst, a, b *Vector[T], t T) { array.LerpInto(dst, a, b, t) }

// Mean returns the arithmetic mean of all elements.
func Mean[T Float](v *Vector[T]) T { return array.Mean(v) }

// MeanSquare returns the mean of squared elements.
func MeanSquare[T Float](v *Vector[T]) T { return array.MeanSquare(v) }

// Min returns the smallest element.
func Min[T Float](v *Vector[T]) T { return array.Min(v) }

// Max returns the largest element.
func Max[T Float](v *Vector[T]) T { return array.Max(v) }

// CumSum returns inclusive prefix sums: out[i] = v[0] + ... + v[i], with
// out[0] = v[0] exactly.
func CumSum[T Float](v *Vector[T]) *Vector[T] { return array.CumSum(v) }

// CumSumInto computes inclusive prefix sums into dst. dst may alias v for
// in-place accumulation.
func CumSumInto[T Float](dst, v *Vector[T]) { array.CumSumInto(dst, v) }

// Pad returns a copy of v extended by before and after elements filled
// according to mode.
func Pad[T Element](v *Vector[T], before, after int, mode PadMode) *Vector[T] {
	return array.Pad(v, before, after, mode)
}

// Convolve convolves v with fil over the given domain: ConvolveValid
// yields v.Len()-fil.Len()+1 outputs, ConvolveSame edge-pads first and
// yields v.Len() outputs.
func Convolve[T Float](v, fil *Vector[T], domain ConvolveDomain) *Vector[T] {
	return array.Convolve(v, fil, domain)
}

// Median applies a sliding median filter of width k (odd, positive) with
// edge-replicated boundaries.
func Median[T Float](v *Vector[T], k int) *Vector[T] { return array.Median(v, k) }

// Matrix operations.

// MatAdd returns a + b element-wise.
func MatAdd[T Float](a, b *Matrix[T]) *Matrix[T] { return array.MatAdd(a, b) }

// MatAddInto computes dst = a + b element-wise.
func MatAddInto[T Float](dst, a, b *Matrix[T]) { array.MatAddInto(dst, a, b) }

// MatSub returns a - b element-wise.
func MatSub[T Float](a, b *Matrix[T]) *Matrix[T] { return array.MatSub(a, b) }

// MatSubInto computes dst = a - b element-wise.
func MatSubInto[T Float](dst, a, b *Matrix[T]) { array.MatSubInto(dst, a, b) }

// MatElemMul returns a * b element-wise.
func MatElemMul[T Float](a, b *Matrix[T]) *Matrix[T] { return array.MatElemMul(a, b) }

// MatElemMulInto computes dst = a * b element-wise.
func MatElemMulInto[T Float](dst, a, b *Matrix[T]) { array.MatElemMulInto(dst, a, b) }

// MatDiv returns a / b element-wise. Compact operands only; non-compact
// layouts panic.
func MatDiv[T Float](a, b *Matrix[T]) *Matrix[T] { return array.MatDiv(a, b) }

// MatDivInto computes dst = a / b element-wise. Compact operands only.
func MatDivInto[T Float](dst, a, b *Matrix[T]) { array.MatDivInto(dst, a, b) }

// MatMulScalar returns a * s.
func MatMulScalar[T Float](a *Matrix[T], s T) *Matrix[T] { return array.MatMulScalar(a, s) }

// MatMulScalarInto computes dst = a * s. dst may alias a.
func MatMulScalarInto[T Float](dst, a *Matrix[T], s T) { array.MatMulScalarInto(dst, a, s) }

// MatScaledAdd returns sa*a + sb*b.
func MatScaledAdd[T Float](a *Matrix[T], sa T, b *Matrix[T], sb T) *Matrix[T] {
	return array.MatScaledAdd(a, sa, b, sb)
}

// MatLerp returns the linear interpolation (1-t)*a + t*b.
func MatLerp[T Float](a, b *Matrix[T], t T) *Matrix[T] { return array.MatLerp(a, b, t) }

// MatMean returns the arithmetic mean of all elements.
func MatMean[T Float](m *Matrix[T]) T { return array.MatMean(m) }

// MatMeanSquare returns the mean of squared elements.
func MatMeanSquare[T Float](m *Matrix[T]) T { return array.MatMeanSquare(m) }

// MatMin returns the smallest element.
func MatMin[T Float](m *Matrix[T]) T { return array.MatMin(m) }

// MatMax returns the largest element.
func MatMax[T Float](m *Matrix[T]) T { return array.MatMax(m) }

// MatMul returns the dense matrix product a @ b. Requires a.Cols() ==
// b.Rows(); operands must be addressable by a row-major GEMM.
func MatMul[T Float](a, b *Matrix[T]) *Matrix[T] { return array.MatMul(a, b) }

// MatMulInto computes dst = a @ b. dst must not alias a or b.
func MatMulInto[T Float](dst, a, b *Matrix[T]) { array.MatMulInto(dst, a, b) }

// MatVecMul returns a @ x, treating x as a column.
func MatVecMul[T Float](a *Matrix[T], x *Vector[T]) *Vector[T] { return array.MatVecMul(a, x) }

// MatVecMulInto computes dst = a @ x. dst must not alias a or x.
func MatVecMulInto[T Float](dst *Vector[T], a *Matrix[T], x *Vector[T]) {
	array.MatVecMulInto(dst, a, x)
}

// Transpose returns a compact materialized transpose of m. For a zero-copy
// alternative use m.TransposedView.
func Transpose[T Element](m *Matrix[T]) *Matrix[T] { return array.Transpose(m) }

// TransposeInto writes m's transpose into dst. dst must not alias m.
func TransposeInto[T Element](dst, m *Matrix[T]) { array.TransposeInto(dst, m) }

// Conv2D returns the same-size 2-D convolution of a single-precision image
// with fil. Both filter dimensions must be odd; all operands must be
// compact.
func Conv2D(src, fil *Matrix[float32]) *Matrix[float32] { return array.Conv2D(src, fil) }

// Conv2DInto computes the same-size 2-D convolution into dst. dst must not
// alias src.
func Conv2DInto(dst, src, fil *Matrix[float32]) { array.Conv2DInto(dst, src, fil) }

// Derive allocates a compact zero matrix with src's shape and fills it via
// fill.
func Derive[T Element](src *Matrix[T], fill func(out *Matrix[T])) *Matrix[T] {
	return array.Derive(src, fill)
}

// DeriveVector allocates a compact zero vector with src's length and fills
// it via fill.
func DeriveVector[T Element](src *Vector[T], fill func(out *Vector[T])) *Vector[T] {
	return array.DeriveVector(src, fill)
}
