package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/pathfind"
	"github.com/katalvlaran/sylves/sylveserr"
)

func TestBFSSquareGridDistance(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	res, err := pathfind.BFS(g, cell.Cell{}, pathfind.WithMaxDistance(10))
	require.NoError(t, err)

	target := cell.Cell{X: 3, Y: 4}
	require.InDelta(t, 7, res.Distance[target], 1e-9)

	path, ok := pathfind.ExtractPath(res, target)
	require.True(t, ok)
	require.Len(t, path.Steps, 7)
	require.Equal(t, target, path.Steps[len(path.Steps)-1].Dest)
	require.Equal(t, cell.Cell{}, path.Steps[0].Src)
}

func TestBFSSourceEqualsTarget(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	res, err := pathfind.BFS(g, cell.Cell{}, pathfind.WithMaxDistance(10))
	require.NoError(t, err)

	path, ok := pathfind.ExtractPath(res, cell.Cell{})
	require.True(t, ok)
	require.Empty(t, path.Steps)
	require.Zero(t, path.TotalLength)
}

func TestBFSUnreachableTarget(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	accessible := func(c cell.Cell) bool { return c.X < 2 }
	res, err := pathfind.BFS(g, cell.Cell{}, pathfind.WithAccessibility(accessible), pathfind.WithMaxDistance(10))
	require.NoError(t, err)

	_, ok := pathfind.ExtractPath(res, cell.Cell{X: 3, Y: 4})
	require.False(t, ok)
}

func TestBFSRejectsSourceOutsideGrid(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	_, err := pathfind.BFS(g, cell.Cell{Z: 1})
	require.ErrorIs(t, err, sylveserr.ErrCellNotInGrid)
}
