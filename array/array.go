// Copyright 2025 The Dimkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array is the public API over the internal array implementation.
package array

import (
	"github.com/dimkit/dimkit/internal/array"
)

// Type aliases for the public API.

// Element is the constraint for admissible scalar types: float32, float64,
// int32, bool.
type Element = array.Element

// Numeric is the subset of Element supporting ordering and sampling.
type Numeric = array.Numeric

// Float is the subset of Element supporting the arithmetic kernels.
type Float = array.Float

// DataType is the runtime tag for an element type.
type DataType = array.DataType

// Runtime element type tags.
const (
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int32   DataType = array.Int32
	Bool    DataType = array.Bool
)

// Vector is a rank-1 dimensional array over shared strided storage.
//
// Example:
//
//	v := array.Linspace[float64](0, 1, 5)
//	head := v.Slice(0, 2) // view, shares v's buffer
type Vector[T Element] = array.Vector[T]

// Matrix is a rank-2 row-major dimensional array over shared strided
// storage.
type Matrix[T Element] = array.Matrix[T]

// Storage is the strided buffer metadata shared by containers and views.
type Storage[T Element] = array.Storage[T]

// PadMode selects how out-of-range positions are filled.
type PadMode = array.PadMode

// PadEdge replicates the nearest boundary element.
const PadEdge PadMode = array.PadEdge

// ConvolveDomain selects which output positions a convolution produces.
type ConvolveDomain = array.ConvolveDomain

// Convolution domains.
const (
	ConvolveValid ConvolveDomain = array.ConvolveValid
	ConvolveSame  ConvolveDomain = array.ConvolveSame
)

// Creation functions.

// NewVector allocates a compact zero-filled vector of length n.
func NewVector[T Element](n int) *Vector[T] {
	return array.NewVector[T](n)
}

// Zeros creates a zero-filled vector of length n.
func Zeros[T Element](n int) *Vector[T] {
	return array.Zeros[T](n)
}

// Ones creates a vector filled with the multiplicative identity.
func Ones[T Element](n int) *Vector[T] {
	return array.Ones[T](n)
}

// Full creates a vector filled with value.
func Full[T Element](n int, value T) *Vector[T] {
	return array.Full(n, value)
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[T Element](data []T) (*Vector[T], error) {
	return array.FromSlice(data)
}

// Rand creates a vector of uniform samples from [lo, hi).
func Rand[T Numeric](n int, lo, hi T) *Vector[T] {
	return array.Rand(n, lo, hi)
}

// Linspace creates count evenly spaced values from start to stop
// inclusive. count must be at least 2.
//
// Example:
//
//	array.Linspace[float64](0, 10, 11) // [0 1 2 ... 10]
func Linspace[T Float](start, stop T, count int) *Vector[T] {
	return array.Linspace(start, stop, count)
}

// Range creates values start, start+step, ... strictly below stop.
//
// Example:
//
//	array.Range[float64](0, 10, 2) // [0 2 4 6 8]
func Range[T Float](start, stop, step T) *Vector[T] {
	return array.Range(start, stop, step)
}

// NewMatrix allocates a compact zero-filled rows×cols matrix.
func NewMatrix[T Element](rows, cols int) *Matrix[T] {
	return array.NewMatrix[T](rows, cols)
}

// ZerosMatrix creates a zero-filled rows×cols matrix.
func ZerosMatrix[T Element](rows, cols int) *Matrix[T] {
	return array.ZerosMatrix[T](rows, cols)
}

// OnesMatrix creates a rows×cols matrix filled with the multiplicative
// identity.
func OnesMatrix[T Element](rows, cols int) *Matrix[T] {
	return array.OnesMatrix[T](rows, cols)
}

// MatrixFromSlice creates a rows×cols matrix holding a copy of the
// row-major data.
func MatrixFromSlice[T Element](data []T, rows, cols int) (*Matrix[T], error) {
	return array.MatrixFromSlice(data, rows, cols)
}

// RandMatrix creates a rows×cols matrix of uniform samples from [lo, hi).
func RandMatrix[T Numeric](rows, cols int, lo, hi T) *Matrix[T] {
	return array.RandMatrix(rows, cols, lo, hi)
}

// Eye creates the n×n identity matrix.
func Eye[T Element](n int) *Matrix[T] {
	return array.Eye[T](n)
}
