// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aislenav/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewSquare(0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	m, err = matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 3.5))
	require.NoError(t, m.Set(1, 0, math.Inf(1)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {2, 0}}, m.ToRows())
	require.Equal(t, "[0, 1]\n[2, 0]\n", m.String())

	_, err = matrix.NewDenseFrom([][]float64{{0, 1}, {2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaN)

	empty, err := matrix.NewDenseFrom(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

func TestDense_CloneIndependent(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{7, 7}, {7, 7}})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 1))

	v, _ := m.At(0, 0)
	require.Equal(t, 7.0, v)
	require.Nil(t, m.Row(5))
	require.Equal(t, [][]float64{{7, 7}, {7, 7}}, m.ToRows())
}
