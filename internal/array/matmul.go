package array

import (
	"fmt"

	"github.com/dimkit/dimkit/internal/kernel"
	"github.com/dimkit/dimkit/internal/parallel"
)

// loopCfg controls the parallel loops used by the heavy matrix kernels.
var loopCfg = parallel.DefaultConfig()

// MatMulInto computes dst = a @ b. Requires a.Cols() == b.Rows() and dst
// shaped a.Rows()×b.Cols(); dst must not alias a or b.
//
// The operands must be addressable by a row-major GEMM: unit column stride
// with a valid leading dimension (compact matrices and row-aligned
// sub-matrix views qualify). Anything else is an unsupported layout and
// panics; materialize with Clone first.
func MatMulInto[T Float](dst, a, b *Matrix[T]) {
	if a.Cols() != b.Rows() {
		panic(fmt.Sprintf("matmul: %dx%d @ %dx%d (inner dimensions disagree)",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		panic(fmt.Sprintf("matmul: output is %dx%d, want %dx%d",
			dst.Rows(), dst.Cols(), a.Rows(), b.Cols()))
	}
	assertNoAlias("matmul", dst.st, a.st, b.st)

	av, bv, dv := a.st.strided(), b.st.strided(), dst.st.strided()
	if !av.gemmCompatible() || !bv.gemmCompatible() || !dv.gemmCompatible() {
		panic("matmul: unsupported layout (non-compact storage)")
	}
	kernel.Gemm(av.rows, bv.cols, av.cols, one[T](),
		a.st.data()[av.offset:], av.rowStride,
		b.st.data()[bv.offset:], bv.rowStride,
		0, dst.st.data()[dv.offset:], dv.rowStride)
}

// MatMul returns a @ b.
func MatMul[T Float](a, b *Matrix[T]) *Matrix[T] {
	out := NewMatrix[T](a.Rows(), b.Cols())
	MatMulInto(out, a, b)
	return out
}

// MatVecMulInto computes dst = a @ x, treating x as an a.Cols()×1 matrix.
// Same layout contract as MatMulInto; x and dst must additionally be
// unit-stride vectors.
func MatVecMulInto[T Float](dst *Vector[T], a *Matrix[T], x *Vector[T]) {
	if a.Cols() != x.Len() {
		panic(fmt.Sprintf("matvecmul: %dx%d @ vector of length %d",
			a.Rows(), a.Cols(), x.Len()))
	}
	if dst.Len() != a.Rows() {
		panic(fmt.Sprintf("matvecmul: output length %d, want %d", dst.Len(), a.Rows()))
	}
	assertNoAlias("matvecmul", dst.st, a.st, x.st)

	av := a.st.strided()
	if !av.gemmCompatible() || x.st.stride[0] != 1 || dst.st.stride[0] != 1 {
		panic("matvecmul: unsupported layout (non-compact storage)")
	}
	kernel.Gemm(av.rows, 1, av.cols, one[T](),
		a.st.data()[av.offset:], av.rowStride,
		x.st.data()[x.st.offset:], 1,
		0, dst.st.data()[dst.st.offset:], 1)
}

// MatVecMul returns a @ x.
func MatVecMul[T Float](a *Matrix[T], x *Vector[T]) *Vector[T] {
	out := NewVector[T](a.Rows())
	MatVecMulInto(out, a, x)
	return out
}

// TransposeInto writes src's transpose into dst, shaped src.Cols()×
// src.Rows(). dst must not alias src. Compact matrices go through the
// transpose kernel; any strided view falls back to an explicit (i, j) →
// (j, i) copy through both position maps.
func TransposeInto[T Element](dst, src *Matrix[T]) {
	if dst.Rows() != src.Cols() || dst.Cols() != src.Rows() {
		panic(fmt.Sprintf("transpose: output is %dx%d, want %dx%d",
			dst.Rows(), dst.Cols(), src.Cols(), src.Rows()))
	}
	assertNoAlias("transpose", dst.st, src.st)

	if dst.IsCompact() && src.IsCompact() {
		kernel.MatTranspose(src.st.data(), src.st.offset, 1,
			dst.st.data(), dst.st.offset, 1, src.Rows(), src.Cols())
		return
	}
	sv, dv := src.st.strided(), dst.st.strided()
	srcData, dstData := src.st.data(), dst.st.data()
	for i := 0; i < sv.rows; i++ {
		for j := 0; j < sv.cols; j++ {
			dstData[dv.position(j, i)] = srcData[sv.position(i, j)]
		}
	}
}

// Transpose returns a compact materialized transpose of m. For a zero-copy
// alternative use TransposedView.
func Transpose[T Element](m *Matrix[T]) *Matrix[T] {
	out := NewMatrix[T](m.Cols(), m.Rows())
	TransposeInto(out, m)
	return out
}

// Conv2DInto convolves a single-precision image with fil, writing a
// same-size output into dst. Out-of-range taps replicate the nearest edge
// pixel. Both filter dimensions must be odd, and image, filter, and output
// must all be compact. dst must not alias src.
func Conv2DInto(dst, src, fil *Matrix[float32]) {
	if fil.Rows()%2 == 0 || fil.Cols()%2 == 0 {
		panic(fmt.Sprintf("conv2d: filter dimensions %dx%d must both be odd",
			fil.Rows(), fil.Cols()))
	}
	assertSameShape("conv2d", dst.st, src.st)
	assertNoAlias("conv2d", dst.st, src.st)
	if !dst.IsCompact() || !src.IsCompact() || !fil.IsCompact() {
		panic("conv2d: unsupported layout (non-compact storage)")
	}
	kernel.Conv2D(src.st.data(), src.st.offset, src.Rows(), src.Cols(),
		fil.st.data(), fil.st.offset, fil.Rows(), fil.Cols(),
		dst.st.data(), dst.st.offset, loopCfg)
}

// Conv2D returns the same-size 2-D convolution of src with fil.
func Conv2D(src, fil *Matrix[float32]) *Matrix[float32] {
	out := deriveMatrix(src)
	Conv2DInto(out, src, fil)
	return out
}
