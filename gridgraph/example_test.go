// File: gridgraph/example_test.go
package gridgraph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
)

// ExampleRasterize traces a single shelf edge into a small grid and then
// applies a one-cell safety buffer.
func ExampleRasterize() {
	shelf := []geometry.LineSegment{{
		Start: geometry.Point2D{X: 0, Y: 0},
		End:   geometry.Point2D{X: 4, Y: 0},
	}}
	bb := geometry.NewBoundingBox(0, 0, 4, 0)

	layout, _ := gridgraph.Rasterize(context.Background(), shelf, bb, gridgraph.WithMargin(2))
	g := layout.(*gridgraph.Grid)
	fmt.Print(g)

	buffered, _ := gridgraph.Buffer(g, 1)
	fmt.Print(buffered)
	// Output:
	// .......
	// .#####.
	// .......
	// .#####.
	// #######
	// .#####.
}
