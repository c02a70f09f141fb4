package math

// Angle holds the six plane rotation angles, in radians.
// Rotations are always applied in the order XY, XZ, XW, YZ, YW, ZW.
type Angle struct {
	XY, XZ, XW, YZ, YW, ZW float64
}

// IsZero reports whether every angle is zero.
func (a Angle) IsZero() bool {
	return a == Angle{}
}

// Reset sets every angle to zero.
func (a *Angle) Reset() {
	*a = Angle{}
}

// Add returns the component-wise sum of two angles.
func (a Angle) Add(other Angle) Angle {
	return Angle{
		XY: a.XY + other.XY,
		XZ: a.XZ + other.XZ,
		XW: a.XW + other.XW,
		YZ: a.YZ + other.YZ,
		YW: a.YW + other.YW,
		ZW: a.ZW + other.ZW,
	}
}

// Neg returns the angle with every component negated.
// Note that Rotate(Neg) is not the inverse of Rotate unless a single plane is non-zero,
// since plane rotations do not commute.
func (a Angle) Neg() Angle {
	return Angle{-a.XY, -a.XZ, -a.XW, -a.YZ, -a.YW, -a.ZW}
}

// Rotate returns v rotated through all six planes. v itself is not modified.
func (a Angle) Rotate(v Vec4) Vec4 {
	return v.RotatedXY(a.XY).
		RotatedXZ(a.XZ).
		RotatedXW(a.XW).
		RotatedYZ(a.YZ).
		RotatedYW(a.YW).
		RotatedZW(a.ZW)
}

// Matrix returns the rotation as a single matrix.
func (a Angle) Matrix() Mat4 {
	return Rotation(a)
}
