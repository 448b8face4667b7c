package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/pathfind"
	"github.com/katalvlaran/sylves/sylveserr"
)

func TestKruskalSpansRectangularGrid(t *testing.T) {
	base := grid.NewSquareGrid(1.0)
	g := grid.BoundBy(base, bound.NewRect(0, 0, 2, 1)) // 3x2 = 6 cells

	mst, total, err := pathfind.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, mst, 5) // |V|-1
	require.InDelta(t, 5, total, 1e-9)
}

func TestKruskalRejectsUnboundedGrid(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	_, _, err := pathfind.Kruskal(g)
	require.ErrorIs(t, err, sylveserr.ErrUnbounded)
}
