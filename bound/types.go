// Package bound implements the Bound variants of spec §3/§4.2: Rect, Cube,
// AABB2D, AABB3D and Mask — a predicate+enumerator over a cell subset.
//
// Grounded on gridgraph.GridGraph's immutable-after-construction shape
// (deep-copy on build, a fast InBounds predicate) and core.Graph's
// sync.RWMutex-guarded mutable state, applied here to the Mask variant's
// backing set.
package bound

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sylves/cell"
)

// Sentinel errors for bound package operations.
var (
	// ErrNotSupported indicates a binary op (intersect/union) was attempted
	// across mismatched Bound variants.
	ErrNotSupported = errors.New("bound: operation not supported across variants")

	// ErrInfinite indicates GetCells was called on a Bound with no finite
	// cell enumeration (none of the current variants are infinite, but the
	// contract is kept for future variants per spec §4.2).
	ErrInfinite = errors.New("bound: bound has no finite enumeration")

	// ErrEmptyMask indicates GetRect/GetCube was called on a Mask with no
	// stored cells.
	ErrEmptyMask = errors.New("bound: mask has no cells")

	// ErrOverflow indicates CellCount overflowed while computing Π(max-min+1).
	ErrOverflow = errors.New("bound: cell count overflow")
)

// Bound is implemented by every variant. Kind distinguishes the concrete
// variant for binary ops (spec §4.2: "binary ops require matching variant").
type Bound interface {
	Kind() Kind
	Contains(c cell.Cell) bool
	GetCells(buf []cell.Cell) ([]cell.Cell, error)
	CellCount() (int64, error)
}

// Kind identifies the concrete Bound variant.
type Kind int

const (
	KindRect Kind = iota
	KindCube
	KindAABB2D
	KindAABB3D
	KindMask
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "Rect"
	case KindCube:
		return "Cube"
	case KindAABB2D:
		return "AABB2D"
	case KindAABB3D:
		return "AABB3D"
	case KindMask:
		return "Mask"
	default:
		return "Unknown"
	}
}

func variantMismatch(op string, a, b Kind) error {
	return fmt.Errorf("bound: %s requires matching variants, got %s and %s: %w", op, a, b, ErrNotSupported)
}
