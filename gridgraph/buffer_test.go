package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/stretchr/testify/require"
)

func dot(t *testing.T, w, h, x, y int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(w, h)
	require.NoError(t, err)
	g.Set(x, y, true)

	return g
}

func TestBuffer_ZeroIsIdentity(t *testing.T) {
	g, err := gridgraph.FromRows([][]int{
		{0, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)

	out, err := gridgraph.Buffer(g, 0)
	require.NoError(t, err)
	require.True(t, g.Equal(out))
	require.NotSame(t, g, out)
}

func TestBuffer_Errors(t *testing.T) {
	_, err := gridgraph.Buffer(dot(t, 3, 3, 1, 1), -1)
	require.ErrorIs(t, err, gridgraph.ErrNegativeRadius)

	_, err = gridgraph.Buffer(nil, 1)
	require.ErrorIs(t, err, gridgraph.ErrNilGrid)
}

// TestBuffer_CircularNoCascade checks the disk shape and that growth is
// computed from the original grid only.
func TestBuffer_CircularNoCascade(t *testing.T) {
	cases := []struct {
		r    int
		want int
	}{
		{1, 5},  // plus sign
		{2, 13}, // corners (±2,±2), (±1,±2) excluded
		{3, 29},
	}
	for _, tc := range cases {
		g := dot(t, 11, 11, 5, 5)
		out, err := gridgraph.Buffer(g, tc.r)
		require.NoError(t, err)
		require.Equal(t, tc.want, out.Count(), "r=%d", tc.r)
		require.Equal(t, 1, g.Count(), "input untouched")
	}

	out, err := gridgraph.Buffer(dot(t, 5, 5, 2, 2), 1)
	require.NoError(t, err)
	require.False(t, out.Occupied(3, 3), "diagonal at distance √2 > 1")
	require.True(t, out.Occupied(3, 2))
}

func TestBuffer_ClipsAtEdges(t *testing.T) {
	out, err := gridgraph.Buffer(dot(t, 4, 4, 0, 0), 1)
	require.NoError(t, err)
	require.Equal(t, 3, out.Count())
}

func TestClearDisk(t *testing.T) {
	orig, err := gridgraph.NewGrid(5, 3)
	require.NoError(t, err)
	g, err := gridgraph.FromRows([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	n := gridgraph.ClearDisk(g, orig, geometry.Cell{X: 2, Y: 1}, 1)
	require.Equal(t, 5, n)
	require.False(t, g.Occupied(2, 1))
	require.False(t, g.Occupied(2, 0))
	require.True(t, g.Occupied(3, 0))

	require.Zero(t, gridgraph.ClearDisk(g, orig, geometry.Cell{X: 2, Y: 1}, 1), "already clear")
	require.Zero(t, gridgraph.ClearDisk(nil, orig, geometry.Cell{}, 1))
	require.Zero(t, gridgraph.ClearDisk(g, nil, geometry.Cell{}, 1))
	require.Zero(t, gridgraph.ClearDisk(g, dot(t, 4, 3, 0, 0), geometry.Cell{}, 1), "size mismatch")
}

// TestClearDisk_KeepsWalls checks that clearance only gives back buffer
// halo: a wall cell next to the stop stays occupied.
func TestClearDisk_KeepsWalls(t *testing.T) {
	orig, err := gridgraph.NewGrid(9, 5)
	require.NoError(t, err)
	for y := 0; y < 5; y++ {
		orig.Set(4, y, true)
	}
	g, err := gridgraph.Buffer(orig, 2)
	require.NoError(t, err)
	require.True(t, g.Occupied(3, 2))

	n := gridgraph.ClearDisk(g, orig, geometry.Cell{X: 3, Y: 2}, 2)
	require.Positive(t, n)
	require.False(t, g.Occupied(3, 2), "halo under the stop is freed")
	require.False(t, g.Occupied(2, 2))
	for y := 0; y < 5; y++ {
		require.True(t, g.Occupied(4, y), "wall cell (4,%d) must stay", y)
	}
	require.False(t, gridgraph.FreeRegions(g).Connected(geometry.Cell{X: 3, Y: 2}, geometry.Cell{X: 5, Y: 2}))
}

func TestMalformedGrid(t *testing.T) {
	g := &gridgraph.Grid{Width: 2, Height: 2}

	_, err := gridgraph.Buffer(g, 1)
	require.ErrorIs(t, err, gridgraph.ErrMalformedGrid)
	require.True(t, g.Occupied(0, 0))
	g.Set(1, 1, true)
	require.Zero(t, gridgraph.FreeRegions(g).Count)
	require.Equal(t, -1, gridgraph.FreeRegions(g).Label(1, 1))
	require.Equal(t, "##\n##\n", g.String())
	require.Equal(t, [][]int{{1, 1}, {1, 1}}, g.Rows())

	_, _, err = gridgraph.ExpandRegion(g, geometry.Cell{}, geometry.Cell{X: 1, Y: 1})
	require.ErrorIs(t, err, gridgraph.ErrMalformedGrid)
}
