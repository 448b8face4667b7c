package cell

import (
	"math"

	"github.com/katalvlaran/sylves/internal/vecmath"
)

// ngonCellType implements the shared NGon symmetry-group algebra (spec
// §4.1) used by Square, HexFT, HexPT, TriFT and TriFS: a dihedral group of
// order 2n acting on n directions/corners, with rotations mapping
// d -> (d+r) mod n and reflections ^k mapping d -> (n-d+k) mod n.
type ngonCellType struct {
	kind Kind
	n    int
}

// NewSquare returns the CellType for the 4-direction square grid.
func NewSquare() CellType { return &ngonCellType{kind: KindSquare, n: 4} }

// NewHexFT returns the CellType for a flat-topped hexagon.
func NewHexFT() CellType { return &ngonCellType{kind: KindHexFT, n: 6} }

// NewHexPT returns the CellType for a pointy-topped hexagon.
func NewHexPT() CellType { return &ngonCellType{kind: KindHexPT, n: 6} }

// NewTriFT returns the CellType for a flat-topped triangle pairing.
func NewTriFT() CellType { return &ngonCellType{kind: KindTriFT, n: 6} }

// NewTriFS returns the CellType for a flat-side triangle pairing.
func NewTriFS() CellType { return &ngonCellType{kind: KindTriFS, n: 6} }

// NewPolygon returns a generic regular n-gon CellType, for mesh-grid
// faces whose vertex count isn't one of the fixed shapes above. Shares
// the same dihedral-group algebra as Square/HexFT/etc (spec §4.1's
// formulas are stated in terms of n regardless of shape).
func NewPolygon(n int) CellType { return &ngonCellType{kind: KindPolygon, n: n} }

func (c *ngonCellType) Kind() Kind  { return c.kind }
func (c *ngonCellType) Name() string { return c.kind.String() }

func (c *ngonCellType) DirCount() int    { return c.n }
func (c *ngonCellType) CornerCount() int { return c.n }
func (c *ngonCellType) Dimension() int   { return 2 }

func (c *ngonCellType) EnumerateDirs() []CellDir {
	out := make([]CellDir, c.n)
	for i := range out {
		out[i] = CellDir(i)
	}
	return out
}

func (c *ngonCellType) EnumerateCorners() []CellCorner {
	out := make([]CellCorner, c.n)
	for i := range out {
		out[i] = CellCorner(i)
	}
	return out
}

func (c *ngonCellType) EnumerateRotations() []CellRotation {
	out := make([]CellRotation, 0, 2*c.n)
	for i := 0; i < c.n; i++ {
		out = append(out, CellRotation(i))
	}
	for i := 0; i < c.n; i++ {
		out = append(out, ^CellRotation(i))
	}
	return out
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func (c *ngonCellType) InvertDir(d CellDir) CellDir {
	return CellDir(mod(int(d)+c.n/2, c.n))
}

// RotateDir implements spec §4.1's rotate_dir: rotations map d -> (d+r) mod
// n; reflections ^k map d -> (n-d+k) mod n.
func (c *ngonCellType) RotateDir(d CellDir, r CellRotation) CellDir {
	if r >= 0 {
		return CellDir(mod(int(d)+int(r), c.n))
	}
	k := r.Magnitude()
	return CellDir(mod(c.n-int(d)+k, c.n))
}

// RotateCorner implements spec §4.1's rotate_corner: rotations map
// c -> (c+r) mod n; reflections ^k map c -> (1+n-c+k) mod n.
func (c *ngonCellType) RotateCorner(corner CellCorner, r CellRotation) CellCorner {
	if r >= 0 {
		return CellCorner(mod(int(corner)+int(r), c.n))
	}
	k := r.Magnitude()
	return CellCorner(mod(1+c.n-int(corner)+k, c.n))
}

// MultiplyRotations implements spec §4.1's group law for NGon groups.
func (c *ngonCellType) MultiplyRotations(a, b CellRotation) CellRotation {
	n := c.n
	switch {
	case a >= 0 && b >= 0:
		return CellRotation(mod(int(a)+int(b), n))
	case a >= 0 && b < 0:
		j := b.Magnitude()
		return ^CellRotation(mod(int(a)+j, n))
	case a < 0 && b >= 0:
		i := a.Magnitude()
		return ^CellRotation(mod(n+i-int(b), n))
	default: // both reflections
		i := a.Magnitude()
		j := b.Magnitude()
		return CellRotation(mod(n+i-j, n))
	}
}

// InvertRotation implements spec §4.1: rotations invert to (n-r) mod n;
// reflections are self-inverse.
func (c *ngonCellType) InvertRotation(r CellRotation) CellRotation {
	if r >= 0 {
		return CellRotation(mod(c.n-int(r), c.n))
	}
	return r
}

func (c *ngonCellType) IdentityRotation() CellRotation { return 0 }

// CornerPosition returns the canonical corner position in a unit-sized cell
// centred at the origin (spec §4.1).
func (c *ngonCellType) CornerPosition(corner CellCorner) vecmath.Vector3 {
	switch c.kind {
	case KindSquare:
		return squareCornerPosition(corner)
	case KindHexFT, KindHexPT:
		return hexCornerPosition(corner, c.kind == KindHexPT)
	case KindTriFT, KindTriFS:
		return triCornerPosition(corner, c.kind == KindTriFS)
	default:
		return vecmath.Vector3{}
	}
}

func squareCornerPosition(corner CellCorner) vecmath.Vector3 {
	// Low bit selects X sign, next bit selects Y sign, per spec §4.1.
	x := 0.5
	if corner&1 == 0 {
		x = -0.5
	}
	y := 0.5
	if corner&2 == 0 {
		y = -0.5
	}
	return vecmath.Vector3{X: x, Y: y}
}

// hexCornerPosition computes a corner of a regular hexagon with inradius
// 0.5, per spec §4.1. Pointy-topped hexagons are the flat-topped layout
// rotated by 30 degrees.
func hexCornerPosition(corner CellCorner, pointy bool) vecmath.Vector3 {
	const inradius = 0.5
	circumradius := inradius / math.Cos(math.Pi/6)
	angle := float64(corner) * math.Pi / 3
	if pointy {
		angle += math.Pi / 6
	}
	return vecmath.Vector3{
		X: circumradius * math.Cos(angle),
		Y: circumradius * math.Sin(angle),
	}
}

// triCornerPosition computes a corner of a unit equilateral triangle. Corner
// indices are grouped in threes (spec §4.1: "up/down based on parity of
// c/3"): corners 0..2 belong to the "up" triangle sharing this cell's NGon
// group, corners 3..5 to the "down" triangle reached by the same
// symmetry group. FS (flat-side) layouts are the FT (flat-topped) layout
// rotated by 90 degrees.
func triCornerPosition(corner CellCorner, flatSide bool) vecmath.Vector3 {
	circumradius := 1.0 / math.Sqrt(3)
	group := int(corner) / 3
	idx := int(corner) % 3
	base := math.Pi / 2
	if group%2 == 1 {
		base = -math.Pi / 2 // "down" triangle: apex pointing down
	}
	if flatSide {
		base += math.Pi / 2
	}
	angle := base + float64(idx)*2*math.Pi/3
	return vecmath.Vector3{
		X: circumradius * math.Cos(angle),
		Y: circumradius * math.Sin(angle),
	}
}

// RotationMatrix implements spec §4.1: NGon rotations are a Z-axis rotation
// by 2*pi*k/n; reflections apply a Y-flip first and then the rotation by
// the reflection's magnitude (documented once here, used by every NGon
// CellType; the Cube CellType composes its reflections the same way).
func (c *ngonCellType) RotationMatrix(r CellRotation) vecmath.Matrix4x4 {
	if r >= 0 {
		return vecmath.RotationZ(2 * math.Pi * float64(r) / float64(c.n))
	}
	k := r.Magnitude()
	return vecmath.RotationZ(2 * math.Pi * float64(k) / float64(c.n)).Mul(vecmath.ReflectY())
}

// GetConnection implements spec §4.1: dir' = rotate_dir(dir, r); connection
// = {rotation: |r|, is_mirror: r<0}.
func (c *ngonCellType) GetConnection(dir CellDir, r CellRotation) (CellDir, Connection) {
	dir2 := c.RotateDir(dir, r)
	return dir2, Connection{Rotation: r.Magnitude(), IsMirror: r < 0}
}

// TryGetRotation implements spec §4.1: solves for r such that
// rotate_dir(from, r) = to given the connection's mirror flag.
func (c *ngonCellType) TryGetRotation(from, to CellDir, conn Connection) (CellRotation, bool) {
	n := c.n
	if conn.IsMirror {
		k := mod(int(to)+int(from), n)
		return ^CellRotation(k), true
	}
	k := mod(int(to)-int(from), n)
	return CellRotation(k), true
}
