package bound_test

import (
	"testing"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/stretchr/testify/require"
)

// TestRect3x2 pins the literal scenario from spec §8.1.
func TestRect3x2(t *testing.T) {
	r := bound.NewRect(0, 0, 2, 1)
	count, err := r.CellCount()
	require.NoError(t, err)
	require.Equal(t, int64(6), count)

	require.True(t, r.Contains(cell.Cell{X: 0, Y: 0}))
	require.False(t, r.Contains(cell.Cell{X: 3, Y: 0}))
}

func TestRectGetCellsOrderYOuterXInner(t *testing.T) {
	r := bound.NewRect(0, 0, 1, 1)
	cells, err := r.GetCells(nil)
	require.NoError(t, err)
	require.Equal(t, []cell.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	}, cells)
}

func TestRectIntersectAndUnion(t *testing.T) {
	a := bound.NewRect(0, 0, 5, 5)
	b := bound.NewRect(3, 3, 8, 8)
	got, err := a.Intersect(b)
	require.NoError(t, err)
	require.Equal(t, bound.NewRect(3, 3, 5, 5), got)

	u, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, bound.NewRect(0, 0, 8, 8), u)
}

func TestRectIntersectMismatchedVariant(t *testing.T) {
	a := bound.NewRect(0, 0, 1, 1)
	_, err := a.Intersect(bound.NewCube(0, 0, 0, 1, 1, 1))
	require.ErrorIs(t, err, bound.ErrNotSupported)
}

func TestCubeCellCount(t *testing.T) {
	c := bound.NewCube(0, 0, 0, 1, 1, 1)
	count, err := c.CellCount()
	require.NoError(t, err)
	require.Equal(t, int64(8), count)
}

func TestAABB2DContainsCellCenter(t *testing.T) {
	a := bound.AABB2D{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	require.True(t, a.Contains(cell.Cell{X: 0, Y: 0}))
	require.True(t, a.Contains(cell.Cell{X: 1, Y: 1}))
	require.False(t, a.Contains(cell.Cell{X: 2, Y: 2})) // center at 2.5 exceeds Max=2
}

func TestMaskAddRemoveAndExtent(t *testing.T) {
	m := bound.NewMask()
	_, err := m.GetRect()
	require.ErrorIs(t, err, bound.ErrEmptyMask)

	m.Add(cell.Cell{X: 1, Y: 2})
	m.Add(cell.Cell{X: -1, Y: 5})
	require.True(t, m.Contains(cell.Cell{X: 1, Y: 2}))

	r, err := m.GetRect()
	require.NoError(t, err)
	require.Equal(t, bound.NewRect(-1, 2, 1, 5), r)

	m.Remove(cell.Cell{X: 1, Y: 2})
	require.False(t, m.Contains(cell.Cell{X: 1, Y: 2}))

	m.Clear()
	count, err := m.CellCount()
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestMaskIntersectUnion(t *testing.T) {
	a := bound.NewMask(cell.Cell{X: 0}, cell.Cell{X: 1})
	b := bound.NewMask(cell.Cell{X: 1}, cell.Cell{X: 2})

	inter, err := a.Intersect(b)
	require.NoError(t, err)
	count, _ := inter.CellCount()
	require.Equal(t, int64(1), count)

	u, err := a.Union(b)
	require.NoError(t, err)
	count, _ = u.CellCount()
	require.Equal(t, int64(3), count)
}
