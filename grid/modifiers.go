package grid

import (
	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/sylveserr"
)

// boundedGrid is the bound-by modifier (spec §4.3): refuses membership
// outside b but otherwise delegates every query to the wrapped grid.
type boundedGrid struct {
	base Grid
	b    bound.Bound
}

// BoundBy wraps base so that only cells inside b are considered part of
// the grid (spec §4.3: "Bound-by").
func BoundBy(base Grid, b bound.Bound) Grid {
	return &boundedGrid{base: base, b: b}
}

// Unbounded returns an equivalent grid with no bound (spec §4.3:
// "unbounded() returns an equivalent grid with no bound").
func Unbounded(g Grid) Grid {
	if bg, ok := g.(*boundedGrid); ok {
		return bg.base
	}
	return g
}

func (g *boundedGrid) IsCellInGrid(c cell.Cell) bool {
	return g.b.Contains(c) && g.base.IsCellInGrid(c)
}

func (g *boundedGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return g.base.GetCellType(c)
}

func (g *boundedGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if !g.IsCellInGrid(c) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	dest, inv, conn, ok := g.base.TryMove(c, dir)
	if !ok || !g.b.Contains(dest) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	return dest, inv, conn, true
}

func (g *boundedGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return g.base.GetCellDirs(c)
}

func (g *boundedGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 { return g.base.GetCellCenter(c) }
func (g *boundedGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	return g.base.GetCellCorners(c)
}
func (g *boundedGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 { return g.base.GetPolygon(c) }

func (g *boundedGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	c, ok := g.base.FindCell(pos)
	if !ok || !g.IsCellInGrid(c) {
		return cell.Cell{}, false
	}
	return c, true
}

func (g *boundedGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	return g.base.GetCellAABB(c)
}

func (g *boundedGrid) IsFinite() bool { return true }
func (g *boundedGrid) Is2D() bool     { return g.base.Is2D() }
func (g *boundedGrid) Is3D() bool     { return g.base.Is3D() }
func (g *boundedGrid) GetCellCount() int64 {
	n, err := g.b.CellCount()
	if err != nil {
		return -1
	}
	return n
}
func (g *boundedGrid) Bound() bound.Bound { return g.b }

// maskedGrid is the mask modifier (spec §4.3): wraps a grid plus a
// contains predicate; try_move returns none when the destination fails
// the predicate, and enumeration filters by the predicate.
type maskedGrid struct {
	base     Grid
	contains func(cell.Cell) bool
}

// Masked wraps base so that only cells satisfying contains are considered
// part of the grid.
func Masked(base Grid, contains func(cell.Cell) bool) Grid {
	return &maskedGrid{base: base, contains: contains}
}

func (g *maskedGrid) IsCellInGrid(c cell.Cell) bool {
	return g.contains(c) && g.base.IsCellInGrid(c)
}

func (g *maskedGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return g.base.GetCellType(c)
}

func (g *maskedGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if !g.IsCellInGrid(c) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	dest, inv, conn, ok := g.base.TryMove(c, dir)
	if !ok || !g.contains(dest) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	return dest, inv, conn, true
}

func (g *maskedGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	if !g.IsCellInGrid(c) {
		return nil, sylveserr.ErrCellNotInGrid
	}
	return g.base.GetCellDirs(c)
}

func (g *maskedGrid) GetCellCenter(c cell.Cell) vecmath.Vector3     { return g.base.GetCellCenter(c) }
func (g *maskedGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3  { return g.base.GetCellCorners(c) }
func (g *maskedGrid) GetPolygon(c cell.Cell) []vecmath.Vector3     { return g.base.GetPolygon(c) }

func (g *maskedGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	c, ok := g.base.FindCell(pos)
	if !ok || !g.IsCellInGrid(c) {
		return cell.Cell{}, false
	}
	return c, true
}

func (g *maskedGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	return g.base.GetCellAABB(c)
}

func (g *maskedGrid) IsFinite() bool      { return g.base.IsFinite() }
func (g *maskedGrid) Is2D() bool          { return g.base.Is2D() }
func (g *maskedGrid) Is3D() bool          { return g.base.Is3D() }
func (g *maskedGrid) GetCellCount() int64 { return -1 }
func (g *maskedGrid) Bound() bound.Bound  { return g.base.Bound() }

// bijectionGrid is the bijection modifier (spec §4.3): holds a wrapped
// grid and two pure functions relating the modifier's cell space to the
// base grid's. Both functions are required; a nil Forward or Backward
// makes the modifier refuse every query.
type bijectionGrid struct {
	base     Grid
	forward  func(cell.Cell) cell.Cell
	backward func(cell.Cell) cell.Cell
}

// Bijection wraps base, translating every cell through backward before
// delegating and every result through forward before returning (spec
// §4.3: "try_move(src, dir) = forward(base.try_move(backward(src), dir))").
func Bijection(base Grid, forward, backward func(cell.Cell) cell.Cell) Grid {
	return &bijectionGrid{base: base, forward: forward, backward: backward}
}

func (g *bijectionGrid) ready() bool { return g.forward != nil && g.backward != nil }

func (g *bijectionGrid) IsCellInGrid(c cell.Cell) bool {
	if !g.ready() {
		return false
	}
	return g.base.IsCellInGrid(g.backward(c))
}

func (g *bijectionGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	if !g.ready() {
		return nil, sylveserr.ErrNotSupported
	}
	return g.base.GetCellType(g.backward(c))
}

func (g *bijectionGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	if !g.ready() {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	dest, inv, conn, ok := g.base.TryMove(g.backward(c), dir)
	if !ok {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	return g.forward(dest), inv, conn, true
}

func (g *bijectionGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	if !g.ready() {
		return nil, sylveserr.ErrNotSupported
	}
	return g.base.GetCellDirs(g.backward(c))
}

func (g *bijectionGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	if !g.ready() {
		return vecmath.Vector3{}
	}
	return g.base.GetCellCenter(g.backward(c))
}

func (g *bijectionGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	if !g.ready() {
		return nil
	}
	return g.base.GetCellCorners(g.backward(c))
}

func (g *bijectionGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 {
	if !g.ready() {
		return nil
	}
	return g.base.GetPolygon(g.backward(c))
}

func (g *bijectionGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	if !g.ready() {
		return cell.Cell{}, false
	}
	c, ok := g.base.FindCell(pos)
	if !ok {
		return cell.Cell{}, false
	}
	return g.forward(c), true
}

func (g *bijectionGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	if !g.ready() {
		return vecmath.Vector3{}, vecmath.Vector3{}
	}
	return g.base.GetCellAABB(g.backward(c))
}

func (g *bijectionGrid) IsFinite() bool      { return g.ready() && g.base.IsFinite() }
func (g *bijectionGrid) Is2D() bool          { return g.base.Is2D() }
func (g *bijectionGrid) Is3D() bool          { return g.base.Is3D() }
func (g *bijectionGrid) GetCellCount() int64 { return g.base.GetCellCount() }
func (g *bijectionGrid) Bound() bound.Bound  { return g.base.Bound() }
