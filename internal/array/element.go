// Package array provides the core dimensional-array types: strided storage,
// the linearized/strided access protocol, Vector and Matrix containers, and
// the numeric operations built on top of them.
package array

import (
	"fmt"
	"math/rand"
	"reflect"
)

// Element is the constraint for admissible scalar types.
type Element interface {
	~float32 | ~float64 | ~int32 | ~bool
}

// Numeric is the subset of Element supporting ordering and sampling.
type Numeric interface {
	~float32 | ~float64 | ~int32
}

// Float is the subset of Element supporting the arithmetic kernels.
type Float interface {
	~float32 | ~float64
}

// DataType is the runtime tag for an Element instantiation.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// dataTypeOf infers the DataType tag for a generic element type. Dispatch
// is by reflect kind so that named types satisfying the constraint resolve
// to their underlying tag.
func dataTypeOf[T Element]() DataType {
	var z T
	switch reflect.TypeOf(z).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Bool:
		return Bool
	default:
		panic(fmt.Sprintf("unsupported element type %T", z))
	}
}

// one returns the multiplicative identity (true for bool).
func one[T Element]() T {
	var z T
	rv := reflect.ValueOf(&z).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(1)
	case reflect.Int32:
		rv.SetInt(1)
	case reflect.Bool:
		rv.SetBool(true)
	default:
		panic(fmt.Sprintf("unsupported element type %T", z))
	}
	return z
}

// randomIn samples uniformly from [lo, hi).
// Uses math/rand: reproducible numeric sampling, not cryptographic.
// For integer elements the sample is truncated toward lo.
func randomIn[T Numeric](lo, hi T) T {
	span := float64(hi) - float64(lo)
	if span <= 0 {
		panic("randomIn: empty range")
	}
	return lo + T(rand.Float64()*span) //nolint:gosec // G404: numeric sampling
}
