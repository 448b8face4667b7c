// Package cell implements the per-cell-shape symmetry group algebra (spec
// §3, §4.1): CellDir/CellCorner indices, the CellRotation encoding
// (reflections as the bitwise complement of a rotation index), Connection,
// and the CellType interface with one concrete implementation per shape
// (Square, HexFT, HexPT, TriFT, TriFS, Cube).
//
// The shape set is closed (spec §9 calls CellType a natural sum type), so
// callers construct a CellType via the package-level constructors
// (NewSquare, NewHexFT, ...) rather than implementing the interface
// themselves.
package cell

import "github.com/katalvlaran/sylves/internal/vecmath"

// Cell is an integer triple identifying a grid element (spec §3). Its
// interpretation is grid-specific; in 2D grids Z is conventionally 0.
type Cell struct {
	X, Y, Z int
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell {
	return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// CellDir is a non-negative index into a cell's finite direction set.
type CellDir int

// CellCorner is a non-negative index into a cell's finite corner set.
type CellCorner int

// CellRotation encodes an element of a cell's symmetry group. Non-negative
// values are rotations; a reflection is stored as the bitwise complement
// (^k) of the rotation index k it is composed with. Identity is 0.
type CellRotation int

// IsReflection reports whether r encodes a reflection (negative encoding).
func (r CellRotation) IsReflection() bool { return r < 0 }

// Magnitude returns the underlying rotation index k for a reflection ^k, or
// r itself when r is already a plain rotation.
func (r CellRotation) Magnitude() int {
	if r < 0 {
		return int(^r)
	}
	return int(r)
}

// Connection describes how the local frame of a neighbouring cell relates to
// the local frame of the source cell across a shared edge (spec §3).
type Connection struct {
	Rotation int
	IsMirror bool
}

// Invert returns the connection that relates the source back to the
// neighbour, i.e. the inverse of the symmetry element this Connection
// encodes. Re-derived directly from the CellType algebra (spec §9: "do not
// copy [connection.c's mirror-invert] formula verbatim without verifying
// invert(invert(c)) = c"): encode c as a CellRotation, invert via the
// owning CellType, and re-split into (Rotation, IsMirror).
func (c Connection) Invert(ct CellType) Connection {
	r := c.asRotation()
	inv := ct.InvertRotation(r)
	return connectionFromRotation(inv)
}

func (c Connection) asRotation() CellRotation {
	if c.IsMirror {
		return ^CellRotation(c.Rotation)
	}
	return CellRotation(c.Rotation)
}

func connectionFromRotation(r CellRotation) Connection {
	if r.IsReflection() {
		return Connection{Rotation: r.Magnitude(), IsMirror: true}
	}
	return Connection{Rotation: int(r), IsMirror: false}
}

// Kind identifies the concrete shape of a CellType.
type Kind int

const (
	KindSquare Kind = iota
	KindHexFT
	KindHexPT
	KindTriFT
	KindTriFS
	KindCube
	// KindPolygon is a generic n-gon CellType for mesh-grid faces whose
	// vertex count isn't one of the fixed regular shapes above.
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "Square"
	case KindHexFT:
		return "HexFT"
	case KindHexPT:
		return "HexPT"
	case KindTriFT:
		return "TriFT"
	case KindTriFS:
		return "TriFS"
	case KindCube:
		return "Cube"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// CellType is the symmetry-group algebra for one cell shape (spec §4.1).
type CellType interface {
	Kind() Kind
	Name() string
	DirCount() int
	CornerCount() int
	Dimension() int

	EnumerateDirs() []CellDir
	EnumerateCorners() []CellCorner
	EnumerateRotations() []CellRotation

	InvertDir(d CellDir) CellDir
	RotateDir(d CellDir, r CellRotation) CellDir
	RotateCorner(c CellCorner, r CellRotation) CellCorner

	MultiplyRotations(a, b CellRotation) CellRotation
	InvertRotation(r CellRotation) CellRotation
	IdentityRotation() CellRotation

	CornerPosition(c CellCorner) vecmath.Vector3
	RotationMatrix(r CellRotation) vecmath.Matrix4x4

	GetConnection(dir CellDir, r CellRotation) (CellDir, Connection)
	TryGetRotation(from, to CellDir, conn Connection) (CellRotation, bool)
}
