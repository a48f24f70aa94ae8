package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Basics(t *testing.T) {
	v, err := FromSlice([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, v.Len())
	assert.Equal(t, Float64, v.DType())
	assert.Equal(t, 3.0, v.At(2))

	v.Set(2, 30)
	assert.Equal(t, 30.0, v.At(2))

	assert.Panics(t, func() { v.At(5) })
	assert.Panics(t, func() { v.At(-1) })
}

func TestVector_FromSliceEmpty(t *testing.T) {
	_, err := FromSlice([]float64{})
	assert.Error(t, err)
}

func TestVector_SliceIsView(t *testing.T) {
	v, _ := FromSlice([]float64{1, 2, 3, 4, 5})
	s := v.Slice(1, 4)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2.0, s.At(0))

	// Writes through the view are visible to the parent, and vice versa.
	s.Set(0, 20)
	assert.Equal(t, 20.0, v.At(1))
	v.Set(3, 40)
	assert.Equal(t, 40.0, s.At(2))

	assert.Panics(t, func() { v.Slice(3, 2) })
	assert.Panics(t, func() { v.Slice(0, 6) })
}

func TestVector_Reversed(t *testing.T) {
	v, _ := FromSlice([]float64{1, 2, 3, 4})
	r := v.Reversed()

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []float64{4, 3, 2, 1}, r.Clone().Data())
	assert.False(t, r.IsCompact())

	// Still a view.
	r.Set(0, 40)
	assert.Equal(t, 40.0, v.At(3))

	// Reversing twice restores order.
	assert.True(t, r.Reversed().Equal(v))
}

func TestVector_CloneIsCompactCopy(t *testing.T) {
	v, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6})
	odd := v.Slice(1, 6)
	stridedView := odd.Reversed()

	c := stridedView.Clone()
	assert.True(t, c.IsCompact())
	assert.Equal(t, []float64{6, 5, 4, 3, 2}, c.Data())

	// Copy is independent.
	c.Set(0, -1)
	assert.Equal(t, 6.0, v.At(5))
}

func TestVector_DataRequiresUnitStride(t *testing.T) {
	v, _ := FromSlice([]float64{1, 2, 3})
	assert.Panics(t, func() { v.Reversed().Data() })

	// Unit-stride slice views are fine.
	assert.Equal(t, []float64{2, 3}, v.Slice(1, 3).Data())
}

func TestVector_String(t *testing.T) {
	v, _ := FromSlice([]float64{1.5, 2, 3})
	assert.Equal(t, "[1.5 2 3]", v.String())
}

func TestVector_BoolAndInt(t *testing.T) {
	b := Ones[bool](3)
	assert.Equal(t, true, b.At(1))
	assert.Equal(t, Bool, b.DType())

	i := Full[int32](4, 7)
	assert.Equal(t, int32(7), i.At(3))
	assert.Equal(t, Int32, i.DType())
}

func TestRand_InRange(t *testing.T) {
	v := Rand[float64](100, -1, 1)
	for i := 0; i < v.Len(); i++ {
		x := v.At(i)
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}

	iv := Rand[int32](100, 5, 10)
	for i := 0; i < iv.Len(); i++ {
		x := iv.At(i)
		assert.GreaterOrEqual(t, x, int32(5))
		assert.Less(t, x, int32(10))
	}
}

func TestLinspace(t *testing.T) {
	v := Linspace[float64](0, 10, 11)
	require.Equal(t, 11, v.Len())
	for i := 0; i <= 10; i++ {
		assert.Equal(t, float64(i), v.At(i))
	}
	// Endpoints are exact.
	assert.Equal(t, 0.0, v.At(0))
	assert.Equal(t, 10.0, v.At(10))

	assert.Panics(t, func() { Linspace[float64](0, 1, 1) })
}

func TestRange(t *testing.T) {
	v := Range[float64](0, 10, 2)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, v.Data())

	// Stop is excluded even when not hit exactly.
	w := Range[float64](0, 5, 2)
	assert.Equal(t, []float64{0, 2, 4}, w.Data())

	// Descending.
	d := Range[float64](5, 0, -2)
	assert.Equal(t, []float64{5, 3, 1}, d.Data())

	assert.Panics(t, func() { Range[float64](0, 10, 0) })
	assert.Panics(t, func() { Range[float64](0, 10, -1) })
}
