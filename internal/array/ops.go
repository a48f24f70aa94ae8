package array

import (
	"fmt"

	"github.com/dimkit/dimkit/internal/kernel"
)

// binKernel is the shape of a strided element-wise binary primitive.
type binKernel[T Float] func(a []T, ao, as int, b []T, bo, bs int, out []T, oo, os int, n int)

// scalarKernel is the shape of a strided scalar-affine primitive.
type scalarKernel[T Float] func(a []T, ao, as int, s T, out []T, oo, os int, n int)

// assertSameShape panics unless every storage has the first one's shape.
// Shape mismatch is a contract violation, never an implicit broadcast.
func assertSameShape[T Element](op string, sts ...*Storage[T]) {
	base := sts[0].shape
	for _, st := range sts[1:] {
		if !shapesEqual(base, st.shape) {
			panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, base, st.shape))
		}
	}
}

// elementwiseBinary runs k over every element of equal-shape operands.
// When all three storages are compact it issues a single flat kernel call;
// otherwise it aligns one constant-stride pass per innermost row. Aliasing
// dst with an operand is allowed for kernels that tolerate it.
func elementwiseBinary[T Float](op string, dst, a, b *Storage[T], k binKernel[T]) {
	assertSameShape(op, dst, a, b)
	if dst.IsCompact() && a.IsCompact() && b.IsCompact() {
		k(a.data(), a.offset, 1, b.data(), b.offset, 1, dst.data(), dst.offset, 1, dst.NumElements())
		return
	}
	switch dst.Rank() {
	case 1:
		k(a.data(), a.offset, a.stride[0],
			b.data(), b.offset, b.stride[0],
			dst.data(), dst.offset, dst.stride[0], dst.shape[0])
	case 2:
		for r := 0; r < dst.shape[0]; r++ {
			ra, rb, rd := a.rowSpan(r), b.rowSpan(r), dst.rowSpan(r)
			k(a.data(), ra.offset, ra.stride,
				b.data(), rb.offset, rb.stride,
				dst.data(), rd.offset, rd.stride, rd.count)
		}
	default:
		panic(fmt.Sprintf("%s: rank-%d storage not supported", op, dst.Rank()))
	}
}

// elementwiseScalar is elementwiseBinary for one array operand and a
// scalar.
func elementwiseScalar[T Float](op string, dst, a *Storage[T], s T, k scalarKernel[T]) {
	assertSameShape(op, dst, a)
	if dst.IsCompact() && a.IsCompact() {
		k(a.data(), a.offset, 1, s, dst.data(), dst.offset, 1, dst.NumElements())
		return
	}
	switch dst.Rank() {
	case 1:
		k(a.data(), a.offset, a.stride[0], s,
			dst.data(), dst.offset, dst.stride[0], dst.shape[0])
	case 2:
		for r := 0; r < dst.shape[0]; r++ {
			ra, rd := a.rowSpan(r), dst.rowSpan(r)
			k(a.data(), ra.offset, ra.stride, s,
				dst.data(), rd.offset, rd.stride, rd.count)
		}
	default:
		panic(fmt.Sprintf("%s: rank-%d storage not supported", op, dst.Rank()))
	}
}

// Reduction folds. Each reduction kernel may be invoked once per
// constant-stride run; partial results combine per reduction kind.

// foldMean combines per-run means count-weighted.
func foldMean[T Float](s *Storage[T]) T {
	var sum T
	total := 0
	for _, sp := range s.spans() {
		sum += kernel.VecMean(s.data(), sp.offset, sp.stride, sp.count) * T(sp.count)
		total += sp.count
	}
	return sum / T(total)
}

// foldMeanSquare combines per-run mean squares count-weighted.
func foldMeanSquare[T Float](s *Storage[T]) T {
	var sum T
	total := 0
	for _, sp := range s.spans() {
		sum += kernel.VecMeanSquare(s.data(), sp.offset, sp.stride, sp.count) * T(sp.count)
		total += sp.count
	}
	return sum / T(total)
}

// foldMin takes the minimum of per-run minimums.
func foldMin[T Float](s *Storage[T]) T {
	spans := s.spans()
	m := kernel.VecMin(s.data(), spans[0].offset, spans[0].stride, spans[0].count)
	for _, sp := range spans[1:] {
		if r := kernel.VecMin(s.data(), sp.offset, sp.stride, sp.count); r < m {
			m = r
		}
	}
	return m
}

// foldMax takes the maximum of per-run maximums.
func foldMax[T Float](s *Storage[T]) T {
	spans := s.spans()
	m := kernel.VecMax(s.data(), spans[0].offset, spans[0].stride, spans[0].count)
	for _, sp := range spans[1:] {
		if r := kernel.VecMax(s.data(), sp.offset, sp.stride, sp.count); r > m {
			m = r
		}
	}
	return m
}

// Vector operations. Into forms write the result into dst, which may alias
// an input unless noted; value forms derive a fresh compact result.

// AddInto computes dst = a + b element-wise.
func AddInto[T Float](dst, a, b *Vector[T]) {
	elementwiseBinary("add", dst.st, a.st, b.st, kernel.VecAdd[T])
}

// Add returns a + b element-wise.
func Add[T Float](a, b *Vector[T]) *Vector[T] {
	out := deriveVector(a)
	AddInto(out, a, b)
	return out
}

// SubInto computes dst = a - b element-wise.
func SubInto[T Float](dst, a, b *Vector[T]) {
	elementwiseBinary("sub", dst.st, a.st, b.st, kernel.VecSub[T])
}

// Sub returns a - b element-wise.
func Sub[T Float](a, b *Vector[T]) *Vector[T] {
	out := deriveVector(a)
	SubInto(out, a, b)
	return out
}

// MulInto computes dst = a * b element-wise.
func MulInto[T Float](dst, a, b *Vector[T]) {
	elementwiseBinary("mul", dst.st, a.st, b.st, kernel.VecMul[T])
}

// Mul returns a * b element-wise.
func Mul[T Float](a, b *Vector[T]) *Vector[T] {
	out := deriveVector(a)
	MulInto(out, a, b)
	return out
}

// DivInto computes dst = a / b element-wise.
func DivInto[T Float](dst, a, b *Vector[T]) {
	elementwiseBinary("div", dst.st, a.st, b.st, kernel.VecDiv[T])
}

// Div returns a / b element-wise.
func Div[T Float](a, b *Vector[T]) *Vector[T] {
	out := deriveVector(a)
	DivInto(out, a, b)
	return out
}

// MulScalarInto computes dst = a * s.
func MulScalarInto[T Float](dst, a *Vector[T], s T) {
	elementwiseScalar("mulscalar", dst.st, a.st, s, kernel.VecScalarMul[T])
}

// MulScalar returns a * s.
func MulScalar[T Float](a *Vector[T], s T) *Vector[T] {
	out := deriveVector(a)
	MulScalarInto(out, a, s)
	return out
}

// AddScalarInto computes dst = a + s.
func AddScalarInto[T Float](dst, a *Vector[T], s T) {
	elementwiseScalar("addscalar", dst.st, a.st, s, kernel.VecScalarAdd[T])
}

// AddScalar returns a + s.
func AddScalar[T Float](a *Vector[T], s T) *Vector[T] {
	out := deriveVector(a)
	AddScalarInto(out, a, s)
	return out
}

// ScaledAddInto computes dst = sa*a + sb*b.
func ScaledAddInto[T Float](dst, a *Vector[T], sa T, b *Vector[T], sb T) {
	elementwiseBinary("scaledadd", dst.st, a.st, b.st,
		func(av []T, ao, as int, bv []T, bo, bs int, out []T, oo, os int, n int) {
			kernel.VecScaledSum(av, ao, as, sa, bv, bo, bs, sb, out, oo, os, n)
		})
}

// ScaledAdd returns sa*a + sb*b.
func ScaledAdd[T Float](a *Vector[T], sa T, b *Vector[T], sb T) *Vector[T] {
	out := deriveVector(a)
	ScaledAddInto(out, a, sa, b, sb)
	return out
}

// LerpInto computes dst = (1-t)*a + t*b.
func LerpInto[T Float](dst, a, b *Vector[T], t T) {
	ScaledAddInto(dst, a, 1-t, b, t)
}

// Lerp returns the linear interpolation (1-t)*a + t*b.
func Lerp[T Float](a, b *Vector[T], t T) *Vector[T] {
	out := deriveVector(a)
	LerpInto(out, a, b, t)
	return out
}

// Mean returns the arithmetic mean of all elements.
func Mean[T Float](v *Vector[T]) T {
	return foldMean(v.st)
}

// MeanSquare returns the mean of squared elements.
func MeanSquare[T Float](v *Vector[T]) T {
	return foldMeanSquare(v.st)
}

// Min returns the smallest element.
func Min[T Float](v *Vector[T]) T {
	return foldMin(v.st)
}

// Max returns the largest element.
func Max[T Float](v *Vector[T]) T {
	return foldMax(v.st)
}

// CumSumInto computes inclusive prefix sums: dst[i] = src[0] + ... +
// src[i], with dst[0] = src[0] exactly. dst may alias src for in-place
// accumulation.
//
// The running-sum kernel never writes position 0, so elements 0 and 1 are
// handled by direct addition around the kernel call.
func CumSumInto[T Float](dst, src *Vector[T]) {
	assertSameShape("cumsum", dst.st, src.st)
	n := src.Len()
	first := src.At(0)
	var second T
	if n > 1 {
		second = first + src.At(1)
	}
	if n > 2 {
		kernel.VecRunningSum(src.st.data(), src.st.offset, src.st.stride[0], 1,
			dst.st.data(), dst.st.offset, dst.st.stride[0], n)
	}
	if n > 1 {
		dst.Set(1, second)
	}
	dst.Set(0, first)
}

// CumSum returns the inclusive prefix sums of v.
func CumSum[T Float](v *Vector[T]) *Vector[T] {
	out := deriveVector(v)
	CumSumInto(out, v)
	return out
}
