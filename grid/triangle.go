package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/sylveserr"
)

// TriangleGrid is the regular triangular grid (spec §4.3), intrinsically
// unbounded. A cell's orientation ("up" or "down") is implied by the
// parity of X+Y, not stored separately, the compact encoding used
// throughout triangular-grid literature.
//
// cell.NewTriFT/TriFS expose 6 CellDir values (the dihedral group of the
// up/down triangle pair), but each individual triangle only has 3 real
// edge neighbours; this grid exposes those on CellDir 0, 2, 4 and reports
// CellDir 1, 3, 5 as having no neighbour (ok=false from TryMove), a
// documented simplification rather than a claim of full 6-edge adjacency.
type TriangleGrid struct {
	cellSize float64
	flatSide bool
	ct       cell.CellType
}

// NewTriangleGrid returns an unbounded triangle grid. flatSide selects
// the TriFS layout over TriFT.
func NewTriangleGrid(cellSize float64, flatSide bool) *TriangleGrid {
	ct := cell.NewTriFT()
	if flatSide {
		ct = cell.NewTriFS()
	}
	return &TriangleGrid{cellSize: cellSize, flatSide: flatSide, ct: ct}
}

func (g *TriangleGrid) isUp(c cell.Cell) bool { return (c.X+c.Y)%2 == 0 }

func (g *TriangleGrid) IsCellInGrid(c cell.Cell) bool { return c.Z == 0 }

func (g *TriangleGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	if !g.IsCellInGrid(c) {
		return nil, fmt.Errorf("grid: %v not in triangle grid: %w", c, sylveserr.ErrCellNotInGrid)
	}
	return g.ct, nil
}

// neighbourOffset returns the real-edge neighbour (and its structural
// slot 0/1/2) for up- and down-pointing triangles.
func (g *TriangleGrid) neighbourOffset(c cell.Cell, slot int) cell.Cell {
	up := g.isUp(c)
	switch slot {
	case 0:
		return cell.Cell{X: c.X + 1, Y: c.Y}
	case 1:
		return cell.Cell{X: c.X - 1, Y: c.Y}
	default:
		if up {
			return cell.Cell{X: c.X, Y: c.Y + 1}
		}
		return cell.Cell{X: c.X, Y: c.Y - 1}
	}
}

func (g *TriangleGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if int(dir)%2 != 0 || int(dir) < 0 || int(dir) >= 6 {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	slot := int(dir) / 2
	dest := g.neighbourOffset(c, slot)
	if !g.IsCellInGrid(dest) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	return dest, triInvertDir(dir), cell.Connection{}, true
}

// triInvertDir inverts one of the three real edge directions (0, 2, 4):
// the +X/-X pair (slots 0 and 1) invert into each other, and the vertical
// slot (2) is self-inverse because it flips the up/down orientation each
// step (see neighbourOffset).
func triInvertDir(dir cell.CellDir) cell.CellDir {
	switch dir {
	case 0:
		return 2
	case 2:
		return 0
	default:
		return dir
	}
}

func (g *TriangleGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return []cell.CellDir{0, 2, 4}, nil
}

func (g *TriangleGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	if !g.IsCellInGrid(c) {
		sylveserr.LogStructural("triangle grid: GetCellCenter on invalid cell %v", c)
		return vecmath.Vector3{}
	}
	// Triangles of a row share a baseline; columns step by half a unit.
	h := g.cellSize * math.Sqrt(3) / 2
	x := float64(c.X) * g.cellSize / 2
	y := float64(c.Y) * h
	return vecmath.Vector3{X: x, Y: y}
}

func (g *TriangleGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	center := g.GetCellCenter(c)
	corners := g.ct.EnumerateCorners()
	out := make([]vecmath.Vector3, 0, 3)
	group := 0
	if !g.isUp(c) {
		group = 1
	}
	for _, co := range corners {
		if int(co)/3 != group {
			continue
		}
		out = append(out, center.Add(g.ct.CornerPosition(co).Scale(g.cellSize)))
	}
	return out
}

func (g *TriangleGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 {
	return g.GetCellCorners(c)
}

func (g *TriangleGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	h := g.cellSize * math.Sqrt(3) / 2
	y := int(math.Round(pos.Y / h))
	x := int(math.Round(pos.X * 2 / g.cellSize))
	return cell.Cell{X: x, Y: y}, true
}

func (g *TriangleGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	corners := g.GetCellCorners(c)
	min, max := corners[0], corners[0]
	for _, p := range corners[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

func (g *TriangleGrid) IsFinite() bool      { return false }
func (g *TriangleGrid) Is2D() bool          { return true }
func (g *TriangleGrid) Is3D() bool          { return false }
func (g *TriangleGrid) GetCellCount() int64 { return -1 }
func (g *TriangleGrid) Bound() bound.Bound  { return nil }
