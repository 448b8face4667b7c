package cell

import (
	"math"

	"github.com/katalvlaran/sylves/internal/vecmath"
)

// cubeCellType implements the 6-direction, 8-corner cube CellType. Per spec
// §4.1 this uses "its own small rotation table (90 degree rotations about a
// fixed axis in the provided source)", not the full 24-element octahedral
// group — extending to the full group is explicitly named as out of scope
// (spec §9).
//
// Directions are indexed 0:+X 1:-X 2:+Y 3:-Y 4:+Z 5:-Z. The rotation group
// has order 4 (0 deg, 90 deg, 180 deg, 270 deg about Z) plus the 4
// corresponding reflections, reusing the same multiply/invert algebra as
// the NGon groups with n=4 (spec §4.1's group-law formulas are stated in
// terms of n regardless of shape).
type cubeCellType struct {
	ngon ngonCellType // n=4 algebra for multiply/invert/get_connection
}

// NewCube returns the CellType for the 6-faced cube.
func NewCube() CellType {
	return &cubeCellType{ngon: ngonCellType{kind: KindCube, n: 4}}
}

func (c *cubeCellType) Kind() Kind   { return KindCube }
func (c *cubeCellType) Name() string { return KindCube.String() }

func (c *cubeCellType) DirCount() int    { return 6 }
func (c *cubeCellType) CornerCount() int { return 8 }
func (c *cubeCellType) Dimension() int   { return 3 }

func (c *cubeCellType) EnumerateDirs() []CellDir {
	return []CellDir{0, 1, 2, 3, 4, 5}
}

func (c *cubeCellType) EnumerateCorners() []CellCorner {
	out := make([]CellCorner, 8)
	for i := range out {
		out[i] = CellCorner(i)
	}
	return out
}

func (c *cubeCellType) EnumerateRotations() []CellRotation {
	return c.ngon.EnumerateRotations()
}

// cube direction indices.
const (
	dirPX CellDir = iota
	dirNX
	dirPY
	dirNY
	dirPZ
	dirNZ
)

func (c *cubeCellType) InvertDir(d CellDir) CellDir {
	return d ^ 1 // opposite face: flip the low bit of each axis pair
}

// zRotTable[k] maps a direction under a k*90 degree rotation about Z
// (k in 0..3). Z-aligned directions are fixed points.
var zRotTable = [4][6]CellDir{
	{dirPX, dirNX, dirPY, dirNY, dirPZ, dirNZ},
	{dirPY, dirNY, dirNX, dirPX, dirPZ, dirNZ},
	{dirNX, dirPX, dirNY, dirPY, dirPZ, dirNZ},
	{dirNY, dirPY, dirPX, dirNX, dirPZ, dirNZ},
}

func (c *cubeCellType) RotateDir(d CellDir, r CellRotation) CellDir {
	if r >= 0 {
		k := mod(int(r), 4)
		return zRotTable[k][d]
	}
	// Reflection: mirror across the X axis (negate Y-bearing directions),
	// then apply the rotation magnitude, matching the NGon convention that
	// a reflection ^k is "rotate by k after an axis mirror".
	k := r.Magnitude()
	mirrored := d
	switch d {
	case dirPY:
		mirrored = dirNY
	case dirNY:
		mirrored = dirPY
	}
	return zRotTable[mod(k, 4)][mirrored]
}

// cube corner bit layout: bit0 = +X(1)/-X(0), bit1 = +Y(1)/-Y(0),
// bit2 = +Z(1)/-Z(0), per spec §4.1 "±0.5 triple selected by the low 3
// bits".
func (c *cubeCellType) RotateCorner(corner CellCorner, r CellRotation) CellCorner {
	x := corner&1 != 0
	y := corner&2 != 0
	z := corner&4 != 0
	rotateXY := func(k int, x, y bool) (bool, bool) {
		for i := 0; i < k; i++ {
			x, y = !y, x // 90 degree CCW turn: (x,y) -> (-y,x) in boolean-sign terms
		}
		return x, y
	}
	if r >= 0 {
		k := mod(int(r), 4)
		x, y = rotateXY(k, x, y)
	} else {
		k := r.Magnitude()
		y = !y // mirror Y
		x, y = rotateXY(mod(k, 4), x, y)
	}
	out := CellCorner(0)
	if x {
		out |= 1
	}
	if y {
		out |= 2
	}
	if z {
		out |= 4
	}
	return out
}

func (c *cubeCellType) MultiplyRotations(a, b CellRotation) CellRotation {
	return c.ngon.MultiplyRotations(a, b)
}

func (c *cubeCellType) InvertRotation(r CellRotation) CellRotation {
	return c.ngon.InvertRotation(r)
}

func (c *cubeCellType) IdentityRotation() CellRotation { return 0 }

func (c *cubeCellType) CornerPosition(corner CellCorner) vecmath.Vector3 {
	x, y, z := -0.5, -0.5, -0.5
	if corner&1 != 0 {
		x = 0.5
	}
	if corner&2 != 0 {
		y = 0.5
	}
	if corner&4 != 0 {
		z = 0.5
	}
	return vecmath.Vector3{X: x, Y: y, Z: z}
}

func (c *cubeCellType) RotationMatrix(r CellRotation) vecmath.Matrix4x4 {
	if r >= 0 {
		k := mod(int(r), 4)
		return vecmath.RotationZ(float64(k) * math.Pi / 2)
	}
	k := r.Magnitude()
	return vecmath.RotationZ(float64(mod(k, 4)) * math.Pi / 2).Mul(vecmath.ReflectY())
}

func (c *cubeCellType) GetConnection(dir CellDir, r CellRotation) (CellDir, Connection) {
	dir2 := c.RotateDir(dir, r)
	return dir2, Connection{Rotation: r.Magnitude(), IsMirror: r < 0}
}

// TryGetRotation performs a brute-force search over the small (order-8)
// cube rotation group, since cube direction permutations are table-based
// rather than modular arithmetic on a single cyclic index.
func (c *cubeCellType) TryGetRotation(from, to CellDir, conn Connection) (CellRotation, bool) {
	for _, r := range c.EnumerateRotations() {
		if r.IsReflection() != conn.IsMirror {
			continue
		}
		if c.RotateDir(from, r) == to {
			return r, true
		}
	}
	return 0, false
}
