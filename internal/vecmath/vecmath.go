// Package vecmath provides the L0 math primitives sylves is built on:
// 3-vectors and 4x4 homogeneous transform matrices. Spec §2 classifies this
// layer as "assumed available with standard semantics"; following the
// teacher's own texture (matrix/ops/{eigen,lu,qr}.go reimplement their
// numeric kernels by hand rather than import a general-purpose linear
// algebra library), this package is a small hand-rolled kernel rather than a
// wired third-party dependency.
package vecmath

import "math"

// Vector3 is a 3-component vector (or point) in R^3.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Lerp linearly interpolates between v and o at parameter t in [0,1].
func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return Vector3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Matrix4x4 is a row-major 4x4 homogeneous transform matrix.
type Matrix4x4 struct {
	M [16]float64
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4x4 {
	return Matrix4x4{M: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// at returns element (row, col), 0-indexed.
func (m Matrix4x4) at(row, col int) float64 {
	return m.M[row*4+col]
}

// Mul returns m * o (m applied after o, matching column-vector convention
// v' = m * (o * v)).
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.at(row, k) * o.at(k, col)
			}
			r.M[row*4+col] = sum
		}
	}
	return r
}

// MulPoint transforms a point (implicit w=1) by m.
func (m Matrix4x4) MulPoint(v Vector3) Vector3 {
	x := m.at(0, 0)*v.X + m.at(0, 1)*v.Y + m.at(0, 2)*v.Z + m.at(0, 3)
	y := m.at(1, 0)*v.X + m.at(1, 1)*v.Y + m.at(1, 2)*v.Z + m.at(1, 3)
	z := m.at(2, 0)*v.X + m.at(2, 1)*v.Y + m.at(2, 2)*v.Z + m.at(2, 3)
	w := m.at(3, 0)*v.X + m.at(3, 1)*v.Y + m.at(3, 2)*v.Z + m.at(3, 3)
	if w != 0 && w != 1 {
		return Vector3{x / w, y / w, z / w}
	}
	return Vector3{x, y, z}
}

// Translation returns the translation-only matrix for t.
func Translation(t Vector3) Matrix4x4 {
	m := Identity4()
	m.M[3] = t.X
	m.M[7] = t.Y
	m.M[11] = t.Z
	return m
}

// Scale4 returns the scale-only matrix for s (component-wise).
func Scale4(s Vector3) Matrix4x4 {
	return Matrix4x4{M: [16]float64{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}}
}

// RotationZ returns a rotation of theta radians about the Z axis.
func RotationZ(theta float64) Matrix4x4 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix4x4{M: [16]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// ReflectY returns the matrix that negates the Y axis (used by CellType's
// rotation_matrix for mirrored NGon rotations, per spec §4.1).
func ReflectY() Matrix4x4 {
	return Matrix4x4{M: [16]float64{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// TRS composes translation, rotation (about Z, radians) and per-axis scale
// into a single matrix, applied scale-then-rotate-then-translate.
func TRS(t Vector3, rotZ float64, s Vector3) Matrix4x4 {
	return Translation(t).Mul(RotationZ(rotZ)).Mul(Scale4(s))
}

const epsilon = 1e-9

// ApproxEqual reports whether a and b differ by no more than epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
