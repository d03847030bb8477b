package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 0}, {0}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGrid_Dimensions(t *testing.T) {
	_, err := gridgraph.NewGrid(-1, 3)
	require.ErrorIs(t, err, gridgraph.ErrInvalidDimensions)

	g, err := gridgraph.NewGrid(0, 0)
	require.NoError(t, err)
	require.True(t, g.Empty())

	g, err = gridgraph.NewGrid(4, 3)
	require.NoError(t, err)
	require.False(t, g.Empty())
	require.Equal(t, 12, g.Len())
	require.Zero(t, g.Count())
}

// TestGrid_Access checks bounds, occupancy and index round trips on a 3×2 grid.
func TestGrid_Access(t *testing.T) {
	g, err := gridgraph.FromRows([][]int{
		{0, 1, 0},
		{1, 0, 2},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, 3, g.Count())

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		require.True(t, g.InBounds(xy[0], xy[1]))
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		require.False(t, g.InBounds(xy[0], xy[1]))
		require.True(t, g.Occupied(xy[0], xy[1]), "outside counts as occupied")
	}

	require.True(t, g.Occupied(1, 0))
	require.True(t, g.Walkable(geometry.Cell{X: 1, Y: 1}))

	x, y := g.Coordinate(g.Index(2, 1))
	require.Equal(t, 2, x)
	require.Equal(t, 1, y)

	require.Equal(t, ".#.\n#.#\n", g.String())
	require.Equal(t, [][]int{{0, 1, 0}, {1, 0, 1}}, g.Rows())
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(1, 1, true)
	require.False(t, g.Occupied(1, 1))
	require.False(t, g.Equal(c))

	c.Set(10, 10, true) // ignored
	require.Equal(t, 1, c.Count())
}
