package math

import "math"

// Mat4 is a 4x4 matrix in column-major order.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Unlike a 3D homogeneous transform, all four rows act on X, Y, Z, W directly.
type Mat4 [16]float64

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// planeRotation builds a rotation in the plane spanned by axes i and j,
// matching Vec4.RotatedXY and friends: i' = i*c + j*s, j' = j*c - i*s.
func planeRotation(i, j int, angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[i*4+i] = c
	m[j*4+j] = c
	m[j*4+i] = s  // row i, column j
	m[i*4+j] = -s // row j, column i
	return m
}

// RotationXY returns a rotation matrix in the XY plane.
func RotationXY(angle float64) Mat4 { return planeRotation(0, 1, angle) }

// RotationXZ returns a rotation matrix in the XZ plane.
func RotationXZ(angle float64) Mat4 { return planeRotation(0, 2, angle) }

// RotationXW returns a rotation matrix in the XW plane.
func RotationXW(angle float64) Mat4 { return planeRotation(0, 3, angle) }

// RotationYZ returns a rotation matrix in the YZ plane.
func RotationYZ(angle float64) Mat4 { return planeRotation(1, 2, angle) }

// RotationYW returns a rotation matrix in the YW plane.
func RotationYW(angle float64) Mat4 { return planeRotation(1, 3, angle) }

// RotationZW returns a rotation matrix in the ZW plane.
func RotationZW(angle float64) Mat4 { return planeRotation(2, 3, angle) }

// Rotation composes the six plane rotations of a in the fixed XY, XZ, XW, YZ, YW, ZW order.
func Rotation(a Angle) Mat4 {
	return RotationZW(a.ZW).
		Mul(RotationYW(a.YW)).
		Mul(RotationYZ(a.YZ)).
		Mul(RotationXW(a.XW)).
		Mul(RotationXZ(a.XZ)).
		Mul(RotationXY(a.XY))
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix. For rotations this is the inverse.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[row*4+col] = m[col*4+row]
		}
	}
	return t
}
