package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/registry"
	"github.com/katalvlaran/sylves/sylveserr"
)

func TestLookupCellTypeBuiltins(t *testing.T) {
	ct, err := registry.LookupCellType("Square")
	require.NoError(t, err)
	require.Equal(t, cell.KindSquare, ct.Kind())

	poly, err := registry.LookupCellType("Polygon", 5)
	require.NoError(t, err)
	require.Equal(t, 5, poly.DirCount())
}

func TestLookupUnknownNameFails(t *testing.T) {
	_, err := registry.LookupCellType("NoSuchShape")
	require.ErrorIs(t, err, sylveserr.ErrNotFound)
}

func TestLookupBoundAndGrid(t *testing.T) {
	b, err := registry.LookupBound("Rect", 0, 0, 2, 1)
	require.NoError(t, err)
	n, err := b.CellCount()
	require.NoError(t, err)
	require.Equal(t, int64(6), n)

	g, err := registry.LookupGrid("Square", 1.0)
	require.NoError(t, err)
	require.True(t, g.IsCellInGrid(cell.Cell{}))
}

func TestRegisterOverridesExisting(t *testing.T) {
	custom := cell.NewPolygon(8)
	registry.RegisterCellType("Square", func(args ...int) (cell.CellType, error) { return custom, nil })
	t.Cleanup(func() {
		registry.RegisterCellType("Square", func(args ...int) (cell.CellType, error) { return cell.NewSquare(), nil })
	})

	ct, err := registry.LookupCellType("Square")
	require.NoError(t, err)
	require.Equal(t, custom, ct)
}

func TestNameListsAreSorted(t *testing.T) {
	names := registry.CellTypeNames()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		require.LessOrEqual(t, names[i-1], names[i])
	}
}
