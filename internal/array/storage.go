package array

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// buffer is a reference-counted flat slice of elements shared by every view
// derived from the same allocation.
type buffer[T Element] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a reference-counted buffer with refCount = 1.
func newBuffer[T Element](size int) *buffer[T] {
	b := &buffer[T]{data: make([]T, size)}
	b.refCount.Store(1)
	return b
}

// addRef increments the reference count (taken when a view is created).
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the data at 0.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique reports whether this buffer has a single reference.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}

// Storage is a strided window into a shared buffer: shape gives the extent
// of each dimension, stride the element step per dimension (negative and
// non-monotonic strides are valid), and offset the buffer index of the
// first element.
//
// Invariant: offset + sum(index[d]*stride[d]) is inside the buffer for
// every valid multi-index. Constructors and view methods maintain this; the
// access paths rely on it without rechecking.
type Storage[T Element] struct {
	buf    *buffer[T]
	shape  []int
	stride []int
	offset int
}

// newStorage allocates compact row-major storage for the given shape.
func newStorage[T Element](shape ...int) *Storage[T] {
	for i, dim := range shape {
		if dim <= 0 {
			panic(fmt.Sprintf("storage: invalid dimension at index %d: %d (must be > 0)", i, dim))
		}
	}
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return &Storage[T]{
		buf:    newBuffer[T](n),
		shape:  append([]int(nil), shape...),
		stride: canonicalStrides(shape),
	}
}

// canonicalStrides computes row-major strides for a shape:
// stride[i] = product of all extents after i.
func canonicalStrides(shape []int) []int {
	strides := make([]int, len(shape))
	if len(shape) == 0 {
		return strides
	}
	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}

// view derives a Storage sharing this buffer with new metadata.
func (s *Storage[T]) view(offset int, shape, stride []int) *Storage[T] {
	s.buf.addRef()
	return &Storage[T]{
		buf:    s.buf,
		shape:  append([]int(nil), shape...),
		stride: append([]int(nil), stride...),
		offset: offset,
	}
}

// Shape returns the per-dimension extents.
func (s *Storage[T]) Shape() []int {
	return s.shape
}

// Strides returns the per-dimension element steps.
func (s *Storage[T]) Strides() []int {
	return s.stride
}

// Offset returns the buffer index of the first element.
func (s *Storage[T]) Offset() int {
	return s.offset
}

// Rank returns the number of dimensions.
func (s *Storage[T]) Rank() int {
	return len(s.shape)
}

// NumElements returns the total logical element count.
func (s *Storage[T]) NumElements() int {
	n := 1
	for _, dim := range s.shape {
		n *= dim
	}
	return n
}

// IsCompact reports whether the strides equal the canonical row-major
// strides for the shape. Only compact storage may be handed to a batched
// kernel as one flat pass.
func (s *Storage[T]) IsCompact() bool {
	canonical := canonicalStrides(s.shape)
	for i := range s.stride {
		if s.stride[i] != canonical[i] {
			return false
		}
	}
	return true
}

// IsUnique reports whether this storage is the only reference to its
// buffer.
func (s *Storage[T]) IsUnique() bool {
	return s.buf.isUnique()
}

// Release drops this storage's reference to the shared buffer. The buffer
// is freed once the last referencing container is gone.
func (s *Storage[T]) Release() {
	s.buf.release()
}

// data exposes the whole backing slice for kernel calls. Kernels address it
// through (offset, stride) pairs, so views and negative strides need no
// copying.
func (s *Storage[T]) data() []T {
	return s.buf.data
}

// position maps a multi-index to its buffer index.
func (s *Storage[T]) position(index ...int) int {
	if len(index) != len(s.shape) {
		panic(fmt.Sprintf("storage: %d indices for rank-%d storage", len(index), len(s.shape)))
	}
	p := s.offset
	for d, i := range index {
		if i < 0 || i >= s.shape[d] {
			panic(fmt.Sprintf("storage: index %d out of range [0, %d) in dimension %d", i, s.shape[d], d))
		}
		p += i * s.stride[d]
	}
	return p
}

// span is one constant-stride pass over elements in canonical iteration
// order: count elements starting at buffer index offset, stepping by
// stride.
type span struct {
	offset int
	stride int
	count  int
}

// spans linearizes the storage into constant-stride passes covering every
// element in canonical order. Compact storage and any rank-1 storage
// produce a single span; non-compact higher-rank storage produces one span
// per innermost row. Callers folding a reduction must aggregate across
// spans (count-weighted mean, min-of-mins, max-of-maxes) instead of
// assuming a single pass.
func (s *Storage[T]) spans() []span {
	switch {
	case len(s.shape) == 0:
		return []span{{offset: s.offset, stride: 1, count: 1}}
	case len(s.shape) == 1:
		return []span{{offset: s.offset, stride: s.stride[0], count: s.shape[0]}}
	case s.IsCompact():
		return []span{{offset: s.offset, stride: 1, count: s.NumElements()}}
	}

	inner := len(s.shape) - 1
	rows := 1
	for _, dim := range s.shape[:inner] {
		rows *= dim
	}
	out := make([]span, 0, rows)
	index := make([]int, inner)
	for r := 0; r < rows; r++ {
		off := s.offset
		for d, i := range index {
			off += i * s.stride[d]
		}
		out = append(out, span{offset: off, stride: s.stride[inner], count: s.shape[inner]})
		for d := inner - 1; d >= 0; d-- {
			index[d]++
			if index[d] < s.shape[d] {
				break
			}
			index[d] = 0
		}
	}
	return out
}

// rowSpan returns the pass covering innermost row r of rank-2 storage,
// regardless of compactness. Used to align operands when at least one of
// them cannot be covered by a single flat pass.
func (s *Storage[T]) rowSpan(r int) span {
	if len(s.shape) != 2 {
		panic(fmt.Sprintf("storage: rowSpan on rank-%d storage", len(s.shape)))
	}
	return span{offset: s.offset + r*s.stride[0], stride: s.stride[1], count: s.shape[1]}
}

// stridedView is the rank-2 access form consumed by the matrix kernels: a
// base position plus independent row and column strides.
type stridedView struct {
	offset    int
	rowStride int
	colStride int
	rows      int
	cols      int
	compact   bool
}

// strided derives the rank-2 access form for this storage.
func (s *Storage[T]) strided() stridedView {
	if len(s.shape) != 2 {
		panic(fmt.Sprintf("storage: strided access on rank-%d storage", len(s.shape)))
	}
	return stridedView{
		offset:    s.offset,
		rowStride: s.stride[0],
		colStride: s.stride[1],
		rows:      s.shape[0],
		cols:      s.shape[1],
		compact:   s.IsCompact(),
	}
}

// position maps (i, j) to a buffer index.
func (v stridedView) position(i, j int) int {
	return v.offset + i*v.rowStride + j*v.colStride
}

// gemmCompatible reports whether a BLAS-style row-major kernel can address
// this view directly: unit column stride with a non-overlapping leading
// dimension.
func (v stridedView) gemmCompatible() bool {
	return v.colStride == 1 && v.rowStride >= v.cols
}

// shapesEqual reports element-wise equality of two shapes.
func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
