package array

import (
	"fmt"
	"math"

	"github.com/dimkit/dimkit/internal/kernel"
)

// Zeros creates a compact zero-filled vector of length n.
func Zeros[T Element](n int) *Vector[T] {
	return NewVector[T](n)
}

// Ones creates a vector filled with the multiplicative identity.
func Ones[T Element](n int) *Vector[T] {
	v := NewVector[T](n)
	data := v.Data()
	o := one[T]()
	for i := range data {
		data[i] = o
	}
	return v
}

// Full creates a vector filled with value.
func Full[T Element](n int, value T) *Vector[T] {
	v := NewVector[T](n)
	data := v.Data()
	for i := range data {
		data[i] = value
	}
	return v
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[T Element](data []T) (*Vector[T], error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("array: cannot build a vector from an empty slice")
	}
	v := NewVector[T](len(data))
	copy(v.Data(), data)
	return v, nil
}

// Rand creates a vector of uniform samples from [lo, hi).
func Rand[T Numeric](n int, lo, hi T) *Vector[T] {
	v := NewVector[T](n)
	data := v.Data()
	for i := range data {
		data[i] = randomIn(lo, hi)
	}
	return v
}

// Linspace creates count evenly spaced values from start to stop inclusive.
// count must be at least 2 so that both endpoints exist.
func Linspace[T Float](start, stop T, count int) *Vector[T] {
	if count < 2 {
		panic(fmt.Sprintf("linspace: count %d < 2", count))
	}
	v := NewVector[T](count)
	step := (stop - start) / T(count-1)
	kernel.VecRamp(start, step, v.st.data(), v.st.offset, 1, count)
	v.Set(count-1, stop) // exact endpoint, independent of step rounding
	return v
}

// Range creates values start, start+step, ... strictly below stop (above,
// for negative steps). step must be nonzero and share the sign of
// stop-start; the count is ceil((stop-start)/step).
func Range[T Float](start, stop, step T) *Vector[T] {
	if step == 0 {
		panic("range: step must be nonzero")
	}
	span := float64(stop - start)
	if span*float64(step) <= 0 {
		panic(fmt.Sprintf("range: step %v does not advance from %v to %v", step, start, stop))
	}
	count := int(math.Ceil(span / float64(step)))
	v := NewVector[T](count)
	kernel.VecRamp(start, step, v.st.data(), v.st.offset, 1, count)
	return v
}

// ZerosMatrix creates a compact zero-filled rows×cols matrix.
func ZerosMatrix[T Element](rows, cols int) *Matrix[T] {
	return NewMatrix[T](rows, cols)
}

// OnesMatrix creates a rows×cols matrix filled with the multiplicative
// identity.
func OnesMatrix[T Element](rows, cols int) *Matrix[T] {
	m := NewMatrix[T](rows, cols)
	data := m.Data()
	o := one[T]()
	for i := range data {
		data[i] = o
	}
	return m
}

// MatrixFromSlice creates a rows×cols matrix holding a copy of the
// row-major data.
func MatrixFromSlice[T Element](data []T, rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("array: invalid matrix shape %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("array: shape %dx%d requires %d elements, but got %d",
			rows, cols, rows*cols, len(data))
	}
	m := NewMatrix[T](rows, cols)
	copy(m.Data(), data)
	return m, nil
}

// RandMatrix creates a rows×cols matrix of uniform samples from [lo, hi).
func RandMatrix[T Numeric](rows, cols int, lo, hi T) *Matrix[T] {
	m := NewMatrix[T](rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = randomIn(lo, hi)
	}
	return m
}

// Eye creates the n×n identity matrix.
func Eye[T Element](n int) *Matrix[T] {
	m := NewMatrix[T](n, n)
	o := one[T]()
	for i := 0; i < n; i++ {
		m.Set(i, i, o)
	}
	return m
}
