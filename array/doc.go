// Copyright 2025 The Dimkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides strided vector and matrix containers with numeric
// operations dispatched to optimized kernels.
//
// # Overview
//
// Containers own or view reference-counted strided storage. This package
// provides:
//   - Generic type-safe vectors and matrices (Vector[T], Matrix[T])
//   - Zero-copy slicing, reversal, sub-matrix, and transposed views
//   - Element-wise arithmetic, reductions, convolution, padding, median
//     filtering, matrix multiply, and transpose
//   - A contiguous fast path into flat kernels, with explicit strided
//     fallbacks where a kernel cannot express the layout
//
// # Basic Usage
//
//	import "github.com/dimkit/dimkit/array"
//
//	func main() {
//	    x := array.Linspace[float64](0, 10, 11) // [0 1 2 ... 10]
//	    y := array.Ones[float64](11)
//
//	    z := array.Add(x, y)       // element-wise sum
//	    m := array.Mean(z)         // reduction
//
//	    a := array.Eye[float64](3)
//	    b := array.MatMul(a, a)    // dense matrix multiply
//	    _ = b
//	    _ = m
//	}
//
// # Supported Data Types
//
// The Element constraint admits float32, float64, int32, and bool. The
// arithmetic operations are defined for the Float subset (float32,
// float64); every element type supports construction, views, equality,
// random sampling, and display.
//
// # Views and Memory
//
// Slicing never copies: a view is (buffer, shape, stride, offset) over a
// shared reference-counted buffer, freed when the last referencing
// container calls Release. Negative strides are valid, so a reversed
// vector is a view too. The library performs no locking; concurrent
// mutation of a shared buffer is the caller's responsibility.
//
// # Shape Contracts
//
// Operand shapes must match exactly. There is no implicit broadcasting:
// shape mismatch, like every other contract violation (even median kernel,
// degenerate range direction, non-compact input to a compact-only
// operation), panics rather than returning an error.
package array
