package grid

import (
	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/sylveserr"
)

// packAxis / unpackAxis implement spec §8.2's 16-bit nested-cell bit
// slicing per axis: upper 16 bits hold the outer coordinate, lower 16
// the inner, both as signed 16-bit values (spec §8.2: "for all inner
// coordinates with |x|,|y|,|z| < 32768").
func packAxis(outer, inner int) int {
	return (outer << 16) | (int(int16(inner)) & 0xFFFF)
}

func unpackAxis(packed int) (outer, inner int) {
	inner = int(int16(packed & 0xFFFF))
	outer = packed >> 16
	return
}

// PackNested combines an outer and inner cell into one Cell via per-axis
// 16-bit slicing (spec §4.3 "Nested modifier").
func PackNested(outer, inner cell.Cell) cell.Cell {
	return cell.Cell{
		X: packAxis(outer.X, inner.X),
		Y: packAxis(outer.Y, inner.Y),
		Z: packAxis(outer.Z, inner.Z),
	}
}

// UnpackNested splits a packed Cell back into its outer and inner
// components (spec §8.2's get_base/get_child).
func UnpackNested(c cell.Cell) (outer, inner cell.Cell) {
	ox, ix := unpackAxis(c.X)
	oy, iy := unpackAxis(c.Y)
	oz, iz := unpackAxis(c.Z)
	return cell.Cell{X: ox, Y: oy, Z: oz}, cell.Cell{X: ix, Y: iy, Z: iz}
}

// NestedGrid packs an outer cell and a child-grid cell into one Cell
// (spec §4.3 "Nested modifier"). childOf maps an outer cell to the Grid
// that tiles its interior; every outer cell must map to a
// structurally-identical child grid for boundary re-entry to make sense.
type NestedGrid struct {
	outer   Grid
	childOf func(cell.Cell) Grid
}

// NewNestedGrid returns a nested modifier over outer, whose interior at
// each outer cell is tiled by childOf(outerCell).
func NewNestedGrid(outer Grid, childOf func(cell.Cell) Grid) *NestedGrid {
	return &NestedGrid{outer: outer, childOf: childOf}
}

func (g *NestedGrid) IsCellInGrid(c cell.Cell) bool {
	outer, inner := UnpackNested(c)
	if !g.outer.IsCellInGrid(outer) {
		return false
	}
	child := g.childOf(outer)
	return child != nil && child.IsCellInGrid(inner)
}

func (g *NestedGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	outer, inner := UnpackNested(c)
	child := g.childOf(outer)
	if child == nil {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return child.GetCellType(inner)
}

// TryMove first tries to move within the inner child grid; if that walks
// off the child's boundary, it moves the outer cell and re-enters the
// child at the mapped edge (spec §4.3). Per spec §9's design note, an
// ambiguous re-entry (the outer grid has no TryMove in that direction)
// fails NotSupported-as-not-found (ok=false) rather than guessing.
func (g *NestedGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	outer, inner := UnpackNested(c)
	child := g.childOf(outer)
	if child == nil {
		return cell.Cell{}, 0, cell.Connection{}, false
	}

	if innerDest, inv, conn, ok := child.TryMove(inner, dir); ok {
		return PackNested(outer, innerDest), inv, conn, true
	}

	// Re-entry: move the outer cell in the same direction, then enter the
	// new child grid at the mirror edge (the destination's cell in the
	// inverse direction from its boundary, per spec §9's suggested rule).
	outerDest, outerInv, conn, ok := g.outer.TryMove(outer, dir)
	if !ok {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	newChild := g.childOf(outerDest)
	if newChild == nil {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	entry, entryInv, entryConn, ok := newChild.TryMove(inner, outerInv)
	if !ok {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	_ = entryConn
	return PackNested(outerDest, entry), entryInv, conn, true
}

func (g *NestedGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	outer, inner := UnpackNested(c)
	child := g.childOf(outer)
	if child == nil {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return child.GetCellDirs(inner)
}

func (g *NestedGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	outer, inner := UnpackNested(c)
	child := g.childOf(outer)
	if child == nil {
		sylveserr.LogStructural("nested grid: GetCellCenter on invalid cell %v", c)
		return vecmath.Vector3{}
	}
	return g.outer.GetCellCenter(outer).Add(child.GetCellCenter(inner))
}

func (g *NestedGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	outer, inner := UnpackNested(c)
	child := g.childOf(outer)
	if child == nil {
		return nil
	}
	base := g.outer.GetCellCenter(outer)
	corners := child.GetCellCorners(inner)
	out := make([]vecmath.Vector3, len(corners))
	for i, p := range corners {
		out[i] = base.Add(p)
	}
	return out
}

func (g *NestedGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 { return g.GetCellCorners(c) }

func (g *NestedGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	outer, ok := g.outer.FindCell(pos)
	if !ok {
		return cell.Cell{}, false
	}
	child := g.childOf(outer)
	if child == nil {
		return cell.Cell{}, false
	}
	local := pos.Sub(g.outer.GetCellCenter(outer))
	inner, ok := child.FindCell(local)
	if !ok {
		return cell.Cell{}, false
	}
	return PackNested(outer, inner), true
}

func (g *NestedGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	outer, inner := UnpackNested(c)
	child := g.childOf(outer)
	if child == nil {
		return vecmath.Vector3{}, vecmath.Vector3{}
	}
	base := g.outer.GetCellCenter(outer)
	min, max := child.GetCellAABB(inner)
	return base.Add(min), base.Add(max)
}

func (g *NestedGrid) IsFinite() bool      { return g.outer.IsFinite() }
func (g *NestedGrid) Is2D() bool          { return g.outer.Is2D() }
func (g *NestedGrid) Is3D() bool          { return g.outer.Is3D() }
func (g *NestedGrid) GetCellCount() int64 { return -1 }
func (g *NestedGrid) Bound() bound.Bound  { return nil }
