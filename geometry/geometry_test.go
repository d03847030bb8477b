package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox_Extend(t *testing.T) {
	var bb geometry.BoundingBox
	require.True(t, bb.IsEmpty())

	bb = bb.ExtendSegment(geometry.LineSegment{
		Start: geometry.Point2D{X: 3, Y: -1},
		End:   geometry.Point2D{X: -2, Y: 4.5},
	})
	require.False(t, bb.IsEmpty())
	require.Equal(t, -2.0, bb.MinX())
	require.Equal(t, -1.0, bb.MinY())
	require.Equal(t, 3.0, bb.MaxX())
	require.Equal(t, 4.5, bb.MaxY())
}

func TestBoundingBox_CellDims(t *testing.T) {
	bb := geometry.NewBoundingBox(0, 0, 9.2, 4)
	w, h := bb.CellDims(5)
	// ceil(9.2)+1+5 = 16, ceil(4)+1+5 = 10
	require.Equal(t, 16, w)
	require.Equal(t, 10, h)

	var empty geometry.BoundingBox
	w, h = empty.CellDims(5)
	require.Zero(t, w)
	require.Zero(t, h)
}

func TestBoundingBox_ToCell(t *testing.T) {
	bb := geometry.NewBoundingBox(10, 20, 30, 40)
	c := bb.ToCell(geometry.Point2D{X: 12.7, Y: 20}, 5)
	require.Equal(t, geometry.Cell{X: 4, Y: 2}, c)
}

func TestTraceLine_Endpoints(t *testing.T) {
	cases := []struct {
		name string
		a, b geometry.Cell
		n    int
	}{
		{"Single", geometry.Cell{X: 2, Y: 2}, geometry.Cell{X: 2, Y: 2}, 1},
		{"Horizontal", geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 5, Y: 0}, 6},
		{"VerticalReverse", geometry.Cell{X: 1, Y: 7}, geometry.Cell{X: 1, Y: 3}, 5},
		{"Diagonal", geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 4, Y: 4}, 5},
		{"Steep", geometry.Cell{X: 3, Y: 0}, geometry.Cell{X: 0, Y: 8}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cells []geometry.Cell
			reached := geometry.TraceLine(tc.a.X, tc.a.Y, tc.b.X, tc.b.Y, func(x, y int) bool {
				cells = append(cells, geometry.Cell{X: x, Y: y})
				return true
			})
			require.True(t, reached)
			require.Len(t, cells, tc.n)
			require.Equal(t, tc.a, cells[0])
			require.Equal(t, tc.b, cells[len(cells)-1])
			for i := 1; i < len(cells); i++ {
				step := geometry.StepLength(cells[i-1], cells[i])
				require.LessOrEqual(t, step, math.Sqrt2+1e-12, "cells must be 8-connected")
			}
		})
	}
}

func TestTraceLine_StopsEarly(t *testing.T) {
	visited := 0
	reached := geometry.TraceLine(0, 0, 10, 0, func(x, y int) bool {
		visited++
		return x < 3
	})
	require.False(t, reached)
	require.Equal(t, 4, visited)
}

func TestPoint2D_Distance(t *testing.T) {
	p := geometry.Point2D{X: 0, Y: 0}
	q := geometry.Point2D{X: 3, Y: 4}
	require.InDelta(t, 5.0, p.Distance(q), 1e-12)
	require.True(t, p.Finite())
	require.False(t, geometry.Point2D{X: math.NaN()}.Finite())
}
