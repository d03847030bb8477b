package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/stretchr/testify/require"
)

func TestFreeRegions(t *testing.T) {
	cases := []struct {
		name  string
		rows  [][]int
		count int
	}{
		{"AllFree", [][]int{{0, 0}, {0, 0}}, 1},
		{"AllWall", [][]int{{1, 1}, {1, 1}}, 0},
		{"SplitByColumn", [][]int{{0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}}, 2},
		{"DiagonalBlocked", [][]int{{0, 1}, {1, 0}}, 2},
		{"DiagonalOneSideOpen", [][]int{{0, 1}, {0, 0}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.FromRows(tc.rows)
			require.NoError(t, err)
			require.Equal(t, tc.count, gridgraph.FreeRegions(g).Count)
		})
	}
}

func TestRegions_Connected(t *testing.T) {
	g, err := gridgraph.FromRows([][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	r := gridgraph.FreeRegions(g)

	require.Equal(t, 1, r.Count)
	require.True(t, r.Connected(geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 3, Y: 0}))
	require.False(t, r.Connected(geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 2, Y: 0}), "wall cell")
	require.Equal(t, -1, r.Label(9, 9))
	require.Equal(t, -1, r.Label(-1, 0))
}
