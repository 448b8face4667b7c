package registry

import (
	"fmt"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/sylveserr"
)

// init registers every built-in CellType, Bound and Grid constructor
// under its spec name, so embedding applications can resolve the whole
// fixed shape set by string without importing cell/bound/grid directly.
func init() {
	RegisterCellType("Square", func(args ...int) (cell.CellType, error) { return cell.NewSquare(), nil })
	RegisterCellType("HexFT", func(args ...int) (cell.CellType, error) { return cell.NewHexFT(), nil })
	RegisterCellType("HexPT", func(args ...int) (cell.CellType, error) { return cell.NewHexPT(), nil })
	RegisterCellType("TriFT", func(args ...int) (cell.CellType, error) { return cell.NewTriFT(), nil })
	RegisterCellType("TriFS", func(args ...int) (cell.CellType, error) { return cell.NewTriFS(), nil })
	RegisterCellType("Cube", func(args ...int) (cell.CellType, error) { return cell.NewCube(), nil })
	RegisterCellType("Polygon", func(args ...int) (cell.CellType, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("registry: Polygon requires exactly 1 arg (n), got %d: %w", len(args), sylveserr.ErrInvalidArgument)
		}
		return cell.NewPolygon(args[0]), nil
	})

	RegisterBound("Rect", func(args ...int) (bound.Bound, error) {
		if len(args) != 4 {
			return nil, fmt.Errorf("registry: Rect requires 4 args (minX,minY,maxX,maxY), got %d: %w", len(args), sylveserr.ErrInvalidArgument)
		}
		return bound.NewRect(args[0], args[1], args[2], args[3]), nil
	})
	RegisterBound("Cube", func(args ...int) (bound.Bound, error) {
		if len(args) != 6 {
			return nil, fmt.Errorf("registry: Cube requires 6 args, got %d: %w", len(args), sylveserr.ErrInvalidArgument)
		}
		return bound.NewCube(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	})

	RegisterGrid("Square", func(cellSize float64, args ...int) (grid.Grid, error) {
		return grid.NewSquareGrid(cellSize), nil
	})
	RegisterGrid("Cube", func(cellSize float64, args ...int) (grid.Grid, error) {
		return grid.NewCubeGrid(cellSize), nil
	})
	RegisterGrid("HexFT", func(cellSize float64, args ...int) (grid.Grid, error) {
		return grid.NewHexGrid(cellSize, false), nil
	})
	RegisterGrid("HexPT", func(cellSize float64, args ...int) (grid.Grid, error) {
		return grid.NewHexGrid(cellSize, true), nil
	})
	RegisterGrid("TriFS", func(cellSize float64, args ...int) (grid.Grid, error) {
		return grid.NewTriangleGrid(cellSize, true), nil
	})
	RegisterGrid("TriFT", func(cellSize float64, args ...int) (grid.Grid, error) {
		return grid.NewTriangleGrid(cellSize, false), nil
	})
}
