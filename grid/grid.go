// Package grid implements the Grid protocol of spec §4.3: a sum type at
// the interface boundary (callers never name a concrete grid), concrete
// grids for the regular shapes plus mesh-backed grids, and the modifier
// chain (bijection, mask, nested, bound-by) that wraps any Grid.
//
// Grounded on gridgraph.GridGraph's shape (TryMove/NeighborOffsets/
// InBounds) for the concrete regular grids, and builder's
// Constructor-wrapping-Constructor functional pattern for the modifiers.
package grid

import (
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
)

// Grid is the protocol every concrete and modifier grid implements (spec
// §4.3). The variant set is open (user-provided grids are an explicit
// extension point, spec §9), so this is a Go interface rather than a
// closed sum type.
type Grid interface {
	IsCellInGrid(c cell.Cell) bool
	GetCellType(c cell.Cell) (cell.CellType, error)

	// TryMove returns the destination cell, the direction in dest that
	// points back at c, and the symmetry connection relating the two
	// local frames. ok is false when the move falls off the grid or into
	// a masked-out cell — not an error (spec §4.3).
	TryMove(c cell.Cell, dir cell.CellDir) (dest cell.Cell, inverseDir cell.CellDir, conn cell.Connection, ok bool)

	GetCellDirs(c cell.Cell) ([]cell.CellDir, error)

	GetCellCenter(c cell.Cell) vecmath.Vector3
	GetCellCorners(c cell.Cell) []vecmath.Vector3
	GetPolygon(c cell.Cell) []vecmath.Vector3

	FindCell(pos vecmath.Vector3) (cell.Cell, bool)
	GetCellAABB(c cell.Cell) (min, max vecmath.Vector3)

	IsFinite() bool
	Is2D() bool
	Is3D() bool
	// GetCellCount returns the number of cells, or -1 if infinite. The
	// mask and nested modifiers always return -1, even over a finite grid.
	GetCellCount() int64

	Bound() bound.Bound // nil if unbounded
}

// polygonOrder returns corner positions sorted counter-clockwise by angle
// around the origin, turning an index-order corner list into a drawable
// polygon regardless of the cell type's corner-numbering convention.
func polygonOrder(ct cell.CellType) []cell.CellCorner {
	corners := ct.EnumerateCorners()
	type scored struct {
		c     cell.CellCorner
		angle float64
	}
	scored2 := make([]scored, len(corners))
	for i, c := range corners {
		p := ct.CornerPosition(c)
		scored2[i] = scored{c: c, angle: angleOf(p)}
	}
	for i := 1; i < len(scored2); i++ {
		for j := i; j > 0 && scored2[j].angle < scored2[j-1].angle; j-- {
			scored2[j], scored2[j-1] = scored2[j-1], scored2[j]
		}
	}
	out := make([]cell.CellCorner, len(scored2))
	for i, s := range scored2 {
		out[i] = s.c
	}
	return out
}

func angleOf(v vecmath.Vector3) float64 {
	return math.Atan2(v.Y, v.X)
}
