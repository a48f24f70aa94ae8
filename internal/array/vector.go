package array

import (
	"fmt"
	"strings"
)

// Vector is a rank-1 dimensional array over shared strided storage.
// Slicing and reversal return views into the same buffer; no element data
// is copied until Clone.
type Vector[T Element] struct {
	st *Storage[T]
}

// NewVector allocates a compact zero-filled vector of length n.
func NewVector[T Element](n int) *Vector[T] {
	return &Vector[T]{st: newStorage[T](n)}
}

// vectorOver wraps existing storage. The storage must be rank 1.
func vectorOver[T Element](st *Storage[T]) *Vector[T] {
	if st.Rank() != 1 {
		panic(fmt.Sprintf("vector: rank-%d storage", st.Rank()))
	}
	return &Vector[T]{st: st}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.st.shape[0]
}

// DType returns the runtime element type tag.
func (v *Vector[T]) DType() DataType {
	return dataTypeOf[T]()
}

// At returns element i. Panics when i is out of range.
func (v *Vector[T]) At(i int) T {
	return v.st.data()[v.st.position(i)]
}

// Set stores x at element i. Panics when i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	v.st.data()[v.st.position(i)] = x
}

// Slice returns a view over elements [from, to). The view shares this
// vector's buffer; writes through either side are visible to both.
func (v *Vector[T]) Slice(from, to int) *Vector[T] {
	if from < 0 || to > v.Len() || from > to || from == to {
		panic(fmt.Sprintf("vector: invalid slice [%d, %d) of length %d", from, to, v.Len()))
	}
	off := v.st.offset + from*v.st.stride[0]
	return vectorOver(v.st.view(off, []int{to - from}, []int{v.st.stride[0]}))
}

// Reversed returns a view traversing the same elements back to front, via a
// negated stride.
func (v *Vector[T]) Reversed() *Vector[T] {
	n := v.Len()
	off := v.st.offset + (n-1)*v.st.stride[0]
	return vectorOver(v.st.view(off, []int{n}, []int{-v.st.stride[0]}))
}

// Clone returns a compact copy of this vector's elements.
func (v *Vector[T]) Clone() *Vector[T] {
	out := NewVector[T](v.Len())
	dst := out.st.data()
	src := v.st.data()
	p := v.st.offset
	for i := 0; i < v.Len(); i++ {
		dst[i] = src[p]
		p += v.st.stride[0]
	}
	return out
}

// Data returns the underlying elements of a unit-stride vector as a slice.
// Panics for non-unit strides; Clone first in that case.
func (v *Vector[T]) Data() []T {
	if v.st.stride[0] != 1 {
		panic(fmt.Sprintf("vector: Data on stride-%d view", v.st.stride[0]))
	}
	return v.st.data()[v.st.offset : v.st.offset+v.Len()]
}

// IsCompact reports whether this vector is a single contiguous run.
func (v *Vector[T]) IsCompact() bool {
	return v.st.IsCompact()
}

// Storage returns the underlying strided storage.
func (v *Vector[T]) Storage() *Storage[T] {
	return v.st
}

// Release drops this vector's reference to the shared buffer.
func (v *Vector[T]) Release() {
	v.st.Release()
}

// Equal reports element-wise equality with another vector of the same
// length.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// String renders the vector as "[x0 x1 ...]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v.At(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// deriveVector allocates a compact result with the same length as src.
func deriveVector[T Element](src *Vector[T]) *Vector[T] {
	return NewVector[T](src.Len())
}
