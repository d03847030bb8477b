package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
)

func TestExpandRegion_SingleWall(t *testing.T) {
	g, err := gridgraph.FromRows([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})
	require.NoError(t, err)

	path, cost, err := gridgraph.ExpandRegion(g, geometry.Cell{X: 0, Y: 1}, geometry.Cell{X: 4, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 1, cost)
	require.Equal(t, geometry.Cell{X: 0, Y: 1}, path[0])
	require.Equal(t, geometry.Cell{X: 4, Y: 1}, path[len(path)-1])

	walls := 0
	for _, c := range path {
		if g.Occupied(c.X, c.Y) {
			walls++
		}
	}
	require.Equal(t, cost, walls)
}

func TestExpandRegion_DoubleWallAndConnected(t *testing.T) {
	g, err := gridgraph.FromRows([][]int{
		{0, 1, 1, 0},
		{0, 1, 1, 0},
	})
	require.NoError(t, err)

	_, cost, err := gridgraph.ExpandRegion(g, geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 3, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 2, cost)

	path, cost, err := gridgraph.ExpandRegion(g, geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 0, Y: 1})
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Len(t, path, 2)

	path, cost, err = gridgraph.ExpandRegion(g, geometry.Cell{X: 3, Y: 0}, geometry.Cell{X: 3, Y: 0})
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Equal(t, []geometry.Cell{{X: 3, Y: 0}}, path)
}

// TestExpandRegion_NoCornerSqueeze checks that a diagonal between two
// occupied cells is not a free crossing.
func TestExpandRegion_NoCornerSqueeze(t *testing.T) {
	g, err := gridgraph.FromRows([][]int{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)

	_, cost, err := gridgraph.ExpandRegion(g, geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 1, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 1, cost)
}

func TestExpandRegion_Errors(t *testing.T) {
	_, _, err := gridgraph.ExpandRegion(nil, geometry.Cell{}, geometry.Cell{})
	require.ErrorIs(t, err, gridgraph.ErrNilGrid)

	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)
	_, _, err = gridgraph.ExpandRegion(g, geometry.Cell{}, geometry.Cell{X: 3, Y: 0})
	require.ErrorIs(t, err, gridgraph.ErrCellOutOfBounds)
}
