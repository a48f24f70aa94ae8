package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalStrides(t *testing.T) {
	assert.Equal(t, []int{1}, canonicalStrides([]int{7}))
	assert.Equal(t, []int{4, 1}, canonicalStrides([]int{3, 4}))
	assert.Equal(t, []int{12, 4, 1}, canonicalStrides([]int{2, 3, 4}))
}

func TestStorage_Compactness(t *testing.T) {
	st := newStorage[float64](3, 4)
	assert.True(t, st.IsCompact())

	// Stride-swapped (transposed) view is not compact.
	tv := st.view(st.offset, []int{4, 3}, []int{1, 4})
	defer tv.Release()
	assert.False(t, tv.IsCompact())

	// A full-width row view is compact.
	row := st.view(st.offset+4, []int{4}, []int{1})
	defer row.Release()
	assert.True(t, row.IsCompact())

	// A column view is not.
	col := st.view(st.offset+1, []int{3}, []int{4})
	defer col.Release()
	assert.False(t, col.IsCompact())
}

func TestStorage_SpansCompact(t *testing.T) {
	st := newStorage[float64](3, 4)
	spans := st.spans()
	require.Len(t, spans, 1)
	assert.Equal(t, span{offset: 0, stride: 1, count: 12}, spans[0])
}

func TestStorage_SpansPerRow(t *testing.T) {
	st := newStorage[float64](3, 4)
	// 3x2 sub-view at column 1: one span per row.
	sub := st.view(1, []int{3, 2}, []int{4, 1})
	defer sub.Release()

	spans := sub.spans()
	require.Len(t, spans, 3)
	assert.Equal(t, span{offset: 1, stride: 1, count: 2}, spans[0])
	assert.Equal(t, span{offset: 5, stride: 1, count: 2}, spans[1])
	assert.Equal(t, span{offset: 9, stride: 1, count: 2}, spans[2])
}

func TestStorage_SpansRank1AlwaysSingle(t *testing.T) {
	st := newStorage[float64](8)
	// Reversed view: single span with negative stride.
	rev := st.view(7, []int{8}, []int{-1})
	defer rev.Release()

	spans := rev.spans()
	require.Len(t, spans, 1)
	assert.Equal(t, span{offset: 7, stride: -1, count: 8}, spans[0])
}

func TestStorage_SpansCoverEveryElement(t *testing.T) {
	st := newStorage[float64](4, 5)
	data := st.data()
	for i := range data {
		data[i] = float64(i)
	}
	// Interior 2x3 view.
	sub := st.view(st.offset+1*5+1, []int{2, 3}, []int{5, 1})
	defer sub.Release()

	var seen []float64
	for _, sp := range sub.spans() {
		p := sp.offset
		for i := 0; i < sp.count; i++ {
			seen = append(seen, data[p])
			p += sp.stride
		}
	}
	assert.Equal(t, []float64{6, 7, 8, 11, 12, 13}, seen)
}

func TestStorage_Position(t *testing.T) {
	st := newStorage[int32](3, 4)
	assert.Equal(t, 0, st.position(0, 0))
	assert.Equal(t, 7, st.position(1, 3))
	assert.Panics(t, func() { st.position(3, 0) })
	assert.Panics(t, func() { st.position(0) })
}

func TestStorage_RefCounting(t *testing.T) {
	st := newStorage[float64](4)
	require.True(t, st.IsUnique())

	v := st.view(0, []int{2}, []int{1})
	assert.False(t, st.IsUnique())

	v.Release()
	assert.True(t, st.IsUnique())

	st.Release()
	assert.Nil(t, st.buf.data)
}

func TestStorage_InvalidShape(t *testing.T) {
	assert.Panics(t, func() { newStorage[float64](0) })
	assert.Panics(t, func() { newStorage[float64](3, -1) })
}

func TestStridedView(t *testing.T) {
	st := newStorage[float64](3, 4)
	sv := st.strided()
	assert.True(t, sv.compact)
	assert.True(t, sv.gemmCompatible())
	assert.Equal(t, 6, sv.position(1, 2))

	tv := st.view(0, []int{4, 3}, []int{1, 4}).strided()
	assert.False(t, tv.compact)
	assert.False(t, tv.gemmCompatible())
	assert.Equal(t, 9, tv.position(1, 2))
}
