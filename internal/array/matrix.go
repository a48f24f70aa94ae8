package array

import (
	"fmt"
	"strings"
)

// Matrix is a rank-2 dimensional array over shared strided storage,
// row-major by convention. Row, column, sub-matrix, and transposed views
// share the buffer; only Clone and Transpose materialize copies.
type Matrix[T Element] struct {
	st *Storage[T]
}

// NewMatrix allocates a compact zero-filled rows×cols matrix.
func NewMatrix[T Element](rows, cols int) *Matrix[T] {
	return &Matrix[T]{st: newStorage[T](rows, cols)}
}

// matrixOver wraps existing storage. The storage must be rank 2.
func matrixOver[T Element](st *Storage[T]) *Matrix[T] {
	if st.Rank() != 2 {
		panic(fmt.Sprintf("matrix: rank-%d storage", st.Rank()))
	}
	return &Matrix[T]{st: st}
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int {
	return m.st.shape[0]
}

// Cols returns the column count.
func (m *Matrix[T]) Cols() int {
	return m.st.shape[1]
}

// DType returns the runtime element type tag.
func (m *Matrix[T]) DType() DataType {
	return dataTypeOf[T]()
}

// At returns element (i, j). Panics when out of range.
func (m *Matrix[T]) At(i, j int) T {
	return m.st.data()[m.st.position(i, j)]
}

// Set stores x at element (i, j). Panics when out of range.
func (m *Matrix[T]) Set(i, j int, x T) {
	m.st.data()[m.st.position(i, j)] = x
}

// Row returns a vector view of row i.
func (m *Matrix[T]) Row(i int) *Vector[T] {
	if i < 0 || i >= m.Rows() {
		panic(fmt.Sprintf("matrix: row %d out of range [0, %d)", i, m.Rows()))
	}
	off := m.st.offset + i*m.st.stride[0]
	return vectorOver(m.st.view(off, []int{m.Cols()}, []int{m.st.stride[1]}))
}

// Col returns a vector view of column j.
func (m *Matrix[T]) Col(j int) *Vector[T] {
	if j < 0 || j >= m.Cols() {
		panic(fmt.Sprintf("matrix: column %d out of range [0, %d)", j, m.Cols()))
	}
	off := m.st.offset + j*m.st.stride[1]
	return vectorOver(m.st.view(off, []int{m.Rows()}, []int{m.st.stride[0]}))
}

// SubMatrix returns a rows×cols view with top-left corner (r0, c0).
func (m *Matrix[T]) SubMatrix(r0, c0, rows, cols int) *Matrix[T] {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		panic(fmt.Sprintf("matrix: invalid %dx%d sub-matrix at (%d, %d) of %dx%d",
			rows, cols, r0, c0, m.Rows(), m.Cols()))
	}
	off := m.st.offset + r0*m.st.stride[0] + c0*m.st.stride[1]
	return matrixOver(m.st.view(off, []int{rows, cols}, m.st.stride))
}

// TransposedView returns a cols×rows view with the row and column strides
// swapped. The view is non-compact unless the matrix is 1×1.
func (m *Matrix[T]) TransposedView() *Matrix[T] {
	return matrixOver(m.st.view(m.st.offset,
		[]int{m.Cols(), m.Rows()},
		[]int{m.st.stride[1], m.st.stride[0]}))
}

// Clone returns a compact copy of this matrix's elements.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := NewMatrix[T](m.Rows(), m.Cols())
	dst := out.st.data()
	src := m.st.data()
	k := 0
	for i := 0; i < m.Rows(); i++ {
		p := m.st.offset + i*m.st.stride[0]
		for j := 0; j < m.Cols(); j++ {
			dst[k] = src[p]
			k++
			p += m.st.stride[1]
		}
	}
	return out
}

// Data returns the underlying elements of a compact matrix as a flat
// row-major slice. Panics for non-compact views; Clone first in that case.
func (m *Matrix[T]) Data() []T {
	if !m.st.IsCompact() {
		panic("matrix: Data on non-compact view")
	}
	return m.st.data()[m.st.offset : m.st.offset+m.st.NumElements()]
}

// IsCompact reports whether this matrix is one contiguous row-major run.
func (m *Matrix[T]) IsCompact() bool {
	return m.st.IsCompact()
}

// Storage returns the underlying strided storage.
func (m *Matrix[T]) Storage() *Storage[T] {
	return m.st
}

// Release drops this matrix's reference to the shared buffer.
func (m *Matrix[T]) Release() {
	m.st.Release()
}

// Equal reports element-wise equality with another matrix of the same
// shape.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.At(i, j) != other.At(i, j) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix one row per line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		sb.WriteByte('[')
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", m.At(i, j))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// deriveMatrix allocates a compact result with the same shape as src.
func deriveMatrix[T Element](src *Matrix[T]) *Matrix[T] {
	return NewMatrix[T](src.Rows(), src.Cols())
}
