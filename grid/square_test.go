package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

func TestSquareGridTryMoveReciprocity(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	c := cell.Cell{X: 2, Y: 3}

	for _, dir := range []cell.CellDir{0, 1, 2, 3} {
		dest, inv, _, ok := g.TryMove(c, dir)
		require.True(t, ok)

		back, backInv, _, ok := g.TryMove(dest, inv)
		require.True(t, ok)
		require.Equal(t, c, back)
		require.Equal(t, dir, backInv)
	}
}

func TestSquareGridUnboundedHasNoBound(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	require.Nil(t, g.Bound())
	require.False(t, g.IsFinite())
	require.EqualValues(t, -1, g.GetCellCount())
}

func TestSquareGridBoundByRestrictsMembershipAndCount(t *testing.T) {
	base := grid.NewSquareGrid(1.0)
	rect := bound.NewRect(0, 0, 2, 1) // 3 wide, 2 tall -> 6 cells
	bounded := grid.BoundBy(base, rect)

	require.True(t, bounded.IsCellInGrid(cell.Cell{X: 0, Y: 0}))
	require.True(t, bounded.IsCellInGrid(cell.Cell{X: 2, Y: 1}))
	require.False(t, bounded.IsCellInGrid(cell.Cell{X: 3, Y: 0}))
	require.False(t, bounded.IsCellInGrid(cell.Cell{X: 0, Y: 2}))

	require.NotNil(t, bounded.Bound())
	count, err := bounded.Bound().CellCount()
	require.NoError(t, err)
	require.EqualValues(t, 6, count)

	cells, err := bounded.Bound().GetCells(nil)
	require.NoError(t, err)
	require.Len(t, cells, 6)
}

func TestSquareGridBoundByRejectsMovesAcrossTheEdge(t *testing.T) {
	base := grid.NewSquareGrid(1.0)
	rect := bound.NewRect(0, 0, 2, 1)
	bounded := grid.BoundBy(base, rect)

	// (2,0) moving in +X direction (0) falls outside the rect.
	_, _, _, ok := bounded.TryMove(cell.Cell{X: 2, Y: 0}, 0)
	require.False(t, ok)

	// (2,0) moving in +Y direction (1) stays inside.
	dest, _, _, ok := bounded.TryMove(cell.Cell{X: 2, Y: 0}, 1)
	require.True(t, ok)
	require.Equal(t, cell.Cell{X: 2, Y: 1}, dest)
}

func TestSquareGridUnboundedUndoesBoundBy(t *testing.T) {
	base := grid.NewSquareGrid(1.0)
	rect := bound.NewRect(0, 0, 2, 1)
	bounded := grid.BoundBy(base, rect)

	restored := grid.Unbounded(bounded)
	require.Nil(t, restored.Bound())
	require.True(t, restored.IsCellInGrid(cell.Cell{X: 100, Y: -100}))
}

func TestSquareGridFindCellRoundTrip(t *testing.T) {
	g := grid.NewSquareGrid(2.0)
	c := cell.Cell{X: 3, Y: -1}
	center := g.GetCellCenter(c)

	found, ok := g.FindCell(center)
	require.True(t, ok)
	require.Equal(t, c, found)
}
