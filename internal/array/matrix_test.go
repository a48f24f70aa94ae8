package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, data []float64, rows, cols int) *Matrix[float64] {
	t.Helper()
	m, err := MatrixFromSlice(data, rows, cols)
	require.NoError(t, err)
	return m
}

func TestMatrix_Basics(t *testing.T) {
	m := mustMatrix(t, []float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))

	m.Set(0, 1, 20)
	assert.Equal(t, 20.0, m.At(0, 1))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, 3) })
}

func TestMatrixFromSlice_Validation(t *testing.T) {
	_, err := MatrixFromSlice([]float64{1, 2, 3}, 2, 2)
	assert.Error(t, err)
	_, err = MatrixFromSlice([]float64{1}, 0, 1)
	assert.Error(t, err)
}

func TestMatrix_RowColViews(t *testing.T) {
	m := mustMatrix(t, []float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)

	row := m.Row(1)
	assert.Equal(t, []float64{4, 5, 6}, row.Clone().Data())
	assert.True(t, row.IsCompact())

	col := m.Col(2)
	assert.Equal(t, []float64{3, 6}, col.Clone().Data())
	assert.False(t, col.IsCompact())

	// Views write through.
	row.Set(0, 40)
	assert.Equal(t, 40.0, m.At(1, 0))
	col.Set(0, 30)
	assert.Equal(t, 30.0, m.At(0, 2))

	assert.Panics(t, func() { m.Row(2) })
	assert.Panics(t, func() { m.Col(3) })
}

func TestMatrix_SubMatrix(t *testing.T) {
	m := mustMatrix(t, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, 3, 4)

	sub := m.SubMatrix(1, 1, 2, 2)
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, 2, sub.Cols())
	assert.Equal(t, 6.0, sub.At(0, 0))
	assert.Equal(t, 7.0, sub.At(0, 1))
	assert.Equal(t, 10.0, sub.At(1, 0))
	assert.Equal(t, 11.0, sub.At(1, 1))
	assert.False(t, sub.IsCompact())

	sub.Set(0, 0, 60)
	assert.Equal(t, 60.0, m.At(1, 1))

	assert.Panics(t, func() { m.SubMatrix(2, 0, 2, 2) })
}

func TestMatrix_TransposedView(t *testing.T) {
	m := mustMatrix(t, []float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)

	tv := m.TransposedView()
	assert.Equal(t, 3, tv.Rows())
	assert.Equal(t, 2, tv.Cols())
	assert.Equal(t, 2.0, tv.At(1, 0))
	assert.False(t, tv.IsCompact())

	// Shares the buffer.
	tv.Set(2, 1, 60)
	assert.Equal(t, 60.0, m.At(1, 2))

	// Double stride swap restores the original layout.
	assert.True(t, tv.TransposedView().Equal(m))
}

func TestMatrix_Clone(t *testing.T) {
	m := mustMatrix(t, []float64{
		1, 2,
		3, 4,
	}, 2, 2)

	c := m.TransposedView().Clone()
	assert.True(t, c.IsCompact())
	assert.Equal(t, []float64{1, 3, 2, 4}, c.Data())

	c.Set(0, 0, -1)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestMatrix_DataRequiresCompact(t *testing.T) {
	m := mustMatrix(t, []float64{1, 2, 3, 4}, 2, 2)
	assert.Panics(t, func() { m.TransposedView().Data() })
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data())
}

func TestEye(t *testing.T) {
	m := Eye[float64](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, m.At(i, j))
		}
	}
}

func TestMatrix_String(t *testing.T) {
	m := mustMatrix(t, []float64{1, 2, 3, 4}, 2, 2)
	assert.Equal(t, "[1 2]\n[3 4]\n", m.String())
}
