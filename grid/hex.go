package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/sylveserr"
)

// hexAxialOffsets is the CCW axial-neighbour table shared by flat-topped
// and pointy-topped hex grids; only the pixel conversion differs between
// the two layouts (spec §4.1's "pointy-topped is the flat-topped layout
// rotated 30 degrees").
var hexAxialOffsets = [6]cell.Cell{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// HexGrid is the regular hexagonal grid (spec §4.3), intrinsically
// unbounded. Pointy selects pointy-topped layout; otherwise flat-topped.
type HexGrid struct {
	cellSize float64
	pointy   bool
	ct       cell.CellType
}

// NewHexGrid returns an unbounded hex grid. pointy selects pointy-topped
// over flat-topped layout.
func NewHexGrid(cellSize float64, pointy bool) *HexGrid {
	ct := cell.NewHexFT()
	if pointy {
		ct = cell.NewHexPT()
	}
	return &HexGrid{cellSize: cellSize, pointy: pointy, ct: ct}
}

func (g *HexGrid) IsCellInGrid(c cell.Cell) bool { return c.Z == 0 }

func (g *HexGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	if !g.IsCellInGrid(c) {
		return nil, fmt.Errorf("grid: %v not in hex grid: %w", c, sylveserr.ErrCellNotInGrid)
	}
	return g.ct, nil
}

func (g *HexGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if int(dir) < 0 || int(dir) >= 6 {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	dest := c.Add(hexAxialOffsets[dir])
	if !g.IsCellInGrid(dest) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	return dest, g.ct.InvertDir(dir), cell.Connection{}, true
}

func (g *HexGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return g.ct.EnumerateDirs(), nil
}

func (g *HexGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	if !g.IsCellInGrid(c) {
		sylveserr.LogStructural("hex grid: GetCellCenter on invalid cell %v", c)
		return vecmath.Vector3{}
	}
	q, r := float64(c.X), float64(c.Y)
	if g.pointy {
		return vecmath.Vector3{
			X: g.cellSize * math.Sqrt(3) * (q + r/2),
			Y: g.cellSize * 1.5 * r,
		}
	}
	return vecmath.Vector3{
		X: g.cellSize * 1.5 * q,
		Y: g.cellSize * math.Sqrt(3) * (r + q/2),
	}
}

func (g *HexGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	center := g.GetCellCenter(c)
	corners := g.ct.EnumerateCorners()
	out := make([]vecmath.Vector3, len(corners))
	for i, co := range corners {
		out[i] = center.Add(g.ct.CornerPosition(co).Scale(g.cellSize))
	}
	return out
}

func (g *HexGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 {
	center := g.GetCellCenter(c)
	order := polygonOrder(g.ct)
	out := make([]vecmath.Vector3, len(order))
	for i, co := range order {
		out[i] = center.Add(g.ct.CornerPosition(co).Scale(g.cellSize))
	}
	return out
}

func (g *HexGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	// Axial round via cube-coordinate rounding (redblobgames' standard
	// algorithm), inverting GetCellCenter.
	var q, r float64
	if g.pointy {
		q = (math.Sqrt(3)/3*pos.X - pos.Y/3) / g.cellSize
		r = (2.0 / 3 * pos.Y) / g.cellSize
	} else {
		q = (2.0 / 3 * pos.X) / g.cellSize
		r = (-pos.X/3 + math.Sqrt(3)/3*pos.Y) / g.cellSize
	}
	x, _, y := cubeRound(q, -q-r, r)
	return cell.Cell{X: x, Y: y}, true
}

func cubeRound(x, y, z float64) (int, int, int) {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return int(rx), int(ry), int(rz)
}

func (g *HexGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	corners := g.GetCellCorners(c)
	min, max := corners[0], corners[0]
	for _, p := range corners[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

func (g *HexGrid) IsFinite() bool      { return false }
func (g *HexGrid) Is2D() bool          { return true }
func (g *HexGrid) Is3D() bool          { return false }
func (g *HexGrid) GetCellCount() int64 { return -1 }
func (g *HexGrid) Bound() bound.Bound  { return nil }
