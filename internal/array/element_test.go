package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intensity exercises the ~float32 branch of the element constraints with a
// named type.
type intensity float32

func TestDataType_SizeAndString(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 1, Bool.Size())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "bool", Bool.String())
}

func TestNamedElementType(t *testing.T) {
	v := Ones[intensity](3)
	defer v.Release()
	require.Equal(t, Float32, v.DType())
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, intensity(1), v.At(i))
	}

	r := Rand[intensity](16, 2, 5)
	defer r.Release()
	for i := 0; i < r.Len(); i++ {
		assert.GreaterOrEqual(t, r.At(i), intensity(2))
		assert.Less(t, r.At(i), intensity(5))
	}
}

func TestRand_Int32Range(t *testing.T) {
	v := Rand[int32](64, -3, 3)
	defer v.Release()
	for i := 0; i < v.Len(); i++ {
		assert.GreaterOrEqual(t, v.At(i), int32(-3))
		assert.Less(t, v.At(i), int32(3))
	}
	assert.Panics(t, func() { Rand[int32](4, 5, 5) })
}

func TestOne_BoolIdentity(t *testing.T) {
	v := Ones[bool](2)
	defer v.Release()
	assert.True(t, v.At(0))
	assert.True(t, v.At(1))
}
