package grid

import (
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
)

// cubeDirOffsets matches cell.NewCube()'s direction indexing (spec §4.1:
// 0:+X 1:-X 2:+Y 3:-Y 4:+Z 5:-Z).
var cubeDirOffsets = [6]cell.Cell{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// CubeGrid is the regular 3D cube grid (spec §4.3), intrinsically
// unbounded.
type CubeGrid struct {
	cellSize float64
	ct       cell.CellType
}

// NewCubeGrid returns an unbounded cube grid with the given cell size.
func NewCubeGrid(cellSize float64) *CubeGrid {
	return &CubeGrid{cellSize: cellSize, ct: cell.NewCube()}
}

func (g *CubeGrid) IsCellInGrid(c cell.Cell) bool { return true }

func (g *CubeGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	return g.ct, nil
}

func (g *CubeGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if int(dir) < 0 || int(dir) >= 6 {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	dest := c.Add(cubeDirOffsets[dir])
	return dest, g.ct.InvertDir(dir), cell.Connection{}, true
}

func (g *CubeGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	return g.ct.EnumerateDirs(), nil
}

func (g *CubeGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	return vecmath.Vector3{X: float64(c.X) * g.cellSize, Y: float64(c.Y) * g.cellSize, Z: float64(c.Z) * g.cellSize}
}

func (g *CubeGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	center := g.GetCellCenter(c)
	corners := g.ct.EnumerateCorners()
	out := make([]vecmath.Vector3, len(corners))
	for i, co := range corners {
		out[i] = center.Add(g.ct.CornerPosition(co).Scale(g.cellSize))
	}
	return out
}

func (g *CubeGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 {
	// A cube has no single planar polygon; returns the 8 corners (spec
	// §4.3 leaves get_polygon's meaning for 3D cells to the caller).
	return g.GetCellCorners(c)
}

func (g *CubeGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	return cell.Cell{
		X: int(math.Round(pos.X / g.cellSize)),
		Y: int(math.Round(pos.Y / g.cellSize)),
		Z: int(math.Round(pos.Z / g.cellSize)),
	}, true
}

func (g *CubeGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	center := g.GetCellCenter(c)
	half := g.cellSize * 0.5
	return vecmath.Vector3{X: center.X - half, Y: center.Y - half, Z: center.Z - half},
		vecmath.Vector3{X: center.X + half, Y: center.Y + half, Z: center.Z + half}
}

func (g *CubeGrid) IsFinite() bool      { return false }
func (g *CubeGrid) Is2D() bool          { return false }
func (g *CubeGrid) Is3D() bool          { return true }
func (g *CubeGrid) GetCellCount() int64 { return -1 }
func (g *CubeGrid) Bound() bound.Bound  { return nil }
