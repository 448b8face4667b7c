package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/sylveserr"
)

// squareDirOffsets maps cell.CellDir (0..3) to an integer cell-space step,
// in the same cyclic order cell.NewSquare()'s dihedral algebra assumes:
// rotating direction 0 by rotation 1 yields direction 1 (spec §8.2).
var squareDirOffsets = [4]cell.Cell{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// SquareGrid is the regular 2D square grid (spec §4.3), intrinsically
// unbounded; wrap with BoundBy for a finite grid.
type SquareGrid struct {
	cellSize float64
	ct       cell.CellType
}

// NewSquareGrid returns an unbounded square grid with the given cell size.
func NewSquareGrid(cellSize float64) *SquareGrid {
	return &SquareGrid{cellSize: cellSize, ct: cell.NewSquare()}
}

func (g *SquareGrid) IsCellInGrid(c cell.Cell) bool { return c.Z == 0 }

func (g *SquareGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	if !g.IsCellInGrid(c) {
		return nil, fmt.Errorf("grid: %v not in square grid: %w", c, sylveserr.ErrCellNotInGrid)
	}
	return g.ct, nil
}

func (g *SquareGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if int(dir) < 0 || int(dir) >= 4 {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	dest := c.Add(squareDirOffsets[dir])
	if !g.IsCellInGrid(dest) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	inv := g.ct.InvertDir(dir)
	return dest, inv, cell.Connection{}, true
}

func (g *SquareGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return g.ct.EnumerateDirs(), nil
}

func (g *SquareGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	if !g.IsCellInGrid(c) {
		sylveserr.LogStructural("square grid: GetCellCenter on invalid cell %v", c)
		return vecmath.Vector3{}
	}
	return vecmath.Vector3{X: float64(c.X) * g.cellSize, Y: float64(c.Y) * g.cellSize}
}

func (g *SquareGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	center := g.GetCellCenter(c)
	corners := g.ct.EnumerateCorners()
	out := make([]vecmath.Vector3, len(corners))
	for i, co := range corners {
		out[i] = center.Add(g.ct.CornerPosition(co).Scale(g.cellSize))
	}
	return out
}

func (g *SquareGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 {
	center := g.GetCellCenter(c)
	order := polygonOrder(g.ct)
	out := make([]vecmath.Vector3, len(order))
	for i, co := range order {
		out[i] = center.Add(g.ct.CornerPosition(co).Scale(g.cellSize))
	}
	return out
}

func (g *SquareGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	x := int(math.Round(pos.X / g.cellSize))
	y := int(math.Round(pos.Y / g.cellSize))
	return cell.Cell{X: x, Y: y}, true
}

func (g *SquareGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	center := g.GetCellCenter(c)
	half := g.cellSize * 0.5
	return vecmath.Vector3{X: center.X - half, Y: center.Y - half},
		vecmath.Vector3{X: center.X + half, Y: center.Y + half}
}

func (g *SquareGrid) IsFinite() bool      { return false }
func (g *SquareGrid) Is2D() bool          { return true }
func (g *SquareGrid) Is3D() bool          { return false }
func (g *SquareGrid) GetCellCount() int64 { return -1 }
func (g *SquareGrid) Bound() bound.Bound  { return nil }
