package array

import (
	"fmt"

	"github.com/dimkit/dimkit/internal/kernel"
)

// Matrix element-wise and reduction operations. Into forms write into dst,
// which may alias an input unless noted; value forms derive fresh compact
// results.

// MatAddInto computes dst = a + b element-wise.
func MatAddInto[T Float](dst, a, b *Matrix[T]) {
	elementwiseBinary("matadd", dst.st, a.st, b.st, kernel.VecAdd[T])
}

// MatAdd returns a + b element-wise.
func MatAdd[T Float](a, b *Matrix[T]) *Matrix[T] {
	out := deriveMatrix(a)
	MatAddInto(out, a, b)
	return out
}

// MatSubInto computes dst = a - b element-wise.
func MatSubInto[T Float](dst, a, b *Matrix[T]) {
	elementwiseBinary("matsub", dst.st, a.st, b.st, kernel.VecSub[T])
}

// MatSub returns a - b element-wise.
func MatSub[T Float](a, b *Matrix[T]) *Matrix[T] {
	out := deriveMatrix(a)
	MatSubInto(out, a, b)
	return out
}

// MatElemMulInto computes dst = a * b element-wise. Compact operands take
// one flat kernel call; otherwise each innermost row is one strided kernel
// call.
func MatElemMulInto[T Float](dst, a, b *Matrix[T]) {
	elementwiseBinary("matelemmul", dst.st, a.st, b.st, kernel.VecMul[T])
}

// MatElemMul returns a * b element-wise.
func MatElemMul[T Float](a, b *Matrix[T]) *Matrix[T] {
	out := deriveMatrix(a)
	MatElemMulInto(out, a, b)
	return out
}

// MatDivInto computes dst = a / b element-wise. Only compact operands are
// supported; a strided fallback for division is deliberately not provided
// (see DESIGN.md), so non-compact input is an unsupported layout.
func MatDivInto[T Float](dst, a, b *Matrix[T]) {
	assertSameShape("matdiv", dst.st, a.st, b.st)
	if !dst.IsCompact() || !a.IsCompact() || !b.IsCompact() {
		panic("matdiv: unsupported layout (non-compact storage)")
	}
	kernel.VecDiv(a.st.data(), a.st.offset, 1,
		b.st.data(), b.st.offset, 1,
		dst.st.data(), dst.st.offset, 1, dst.st.NumElements())
}

// MatDiv returns a / b element-wise. Compact operands only.
func MatDiv[T Float](a, b *Matrix[T]) *Matrix[T] {
	out := deriveMatrix(a)
	MatDivInto(out, a, b)
	return out
}

// MatMulScalarInto computes dst = a * s.
func MatMulScalarInto[T Float](dst, a *Matrix[T], s T) {
	elementwiseScalar("matmulscalar", dst.st, a.st, s, kernel.VecScalarMul[T])
}

// MatMulScalar returns a * s.
func MatMulScalar[T Float](a *Matrix[T], s T) *Matrix[T] {
	out := deriveMatrix(a)
	MatMulScalarInto(out, a, s)
	return out
}

// MatScaledAddInto computes dst = sa*a + sb*b.
func MatScaledAddInto[T Float](dst, a *Matrix[T], sa T, b *Matrix[T], sb T) {
	elementwiseBinary("matscaledadd", dst.st, a.st, b.st,
		func(av []T, ao, as int, bv []T, bo, bs int, out []T, oo, os int, n int) {
			kernel.VecScaledSum(av, ao, as, sa, bv, bo, bs, sb, out, oo, os, n)
		})
}

// MatScaledAdd returns sa*a + sb*b.
func MatScaledAdd[T Float](a *Matrix[T], sa T, b *Matrix[T], sb T) *Matrix[T] {
	out := deriveMatrix(a)
	MatScaledAddInto(out, a, sa, b, sb)
	return out
}

// MatLerpInto computes dst = (1-t)*a + t*b.
func MatLerpInto[T Float](dst, a, b *Matrix[T], t T) {
	MatScaledAddInto(dst, a, 1-t, b, t)
}

// MatLerp returns the linear interpolation (1-t)*a + t*b.
func MatLerp[T Float](a, b *Matrix[T], t T) *Matrix[T] {
	out := deriveMatrix(a)
	MatLerpInto(out, a, b, t)
	return out
}

// MatMean returns the arithmetic mean of all elements. Non-compact views
// fold one run per row, count-weighted.
func MatMean[T Float](m *Matrix[T]) T {
	return foldMean(m.st)
}

// MatMeanSquare returns the mean of squared elements.
func MatMeanSquare[T Float](m *Matrix[T]) T {
	return foldMeanSquare(m.st)
}

// MatMin returns the smallest element.
func MatMin[T Float](m *Matrix[T]) T {
	return foldMin(m.st)
}

// MatMax returns the largest element.
func MatMax[T Float](m *Matrix[T]) T {
	return foldMax(m.st)
}

// Derive allocates a compact zero matrix with src's shape and fills it via
// fill. The closure receives the freshly derived output.
func Derive[T Element](src *Matrix[T], fill func(out *Matrix[T])) *Matrix[T] {
	out := deriveMatrix(src)
	fill(out)
	return out
}

// DeriveVector allocates a compact zero vector with src's length and fills
// it via fill.
func DeriveVector[T Element](src *Vector[T], fill func(out *Vector[T])) *Vector[T] {
	out := deriveVector(src)
	fill(out)
	return out
}

// assertNoAlias panics when two storages share a buffer. Used by kernels
// whose outputs must not alias their inputs.
func assertNoAlias[T Element](op string, dst *Storage[T], srcs ...*Storage[T]) {
	for _, src := range srcs {
		if dst.buf == src.buf {
			panic(fmt.Sprintf("%s: output must not share a buffer with an input", op))
		}
	}
}
