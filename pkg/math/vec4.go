package math

import (
	"fmt"
	"math"
)

// Vec4 is a point or direction in 4D space.
type Vec4 struct {
	X, Y, Z, W float64
}

// Splat returns a vector with all four components set to v.
func Splat(v float64) Vec4 {
	return Vec4{v, v, v, v}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / scalar.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return v.Div(l)
}

// Distance returns the distance to another point.
func (v Vec4) Distance(other Vec4) float64 {
	return v.Sub(other).Length()
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// String formats the vector as Vertex(x, y, z, w).
func (v Vec4) String() string {
	return fmt.Sprintf("Vertex(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// RotatedXY rotates v in the XY plane by angle radians.
func (v Vec4) RotatedXY(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{v.X*c + v.Y*s, v.Y*c - v.X*s, v.Z, v.W}
}

// RotatedXZ rotates v in the XZ plane by angle radians.
func (v Vec4) RotatedXZ(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{v.X*c + v.Z*s, v.Y, v.Z*c - v.X*s, v.W}
}

// RotatedXW rotates v in the XW plane by angle radians.
func (v Vec4) RotatedXW(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{v.X*c + v.W*s, v.Y, v.Z, v.W*c - v.X*s}
}

// RotatedYZ rotates v in the YZ plane by angle radians.
func (v Vec4) RotatedYZ(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{v.X, v.Y*c + v.Z*s, v.Z*c - v.Y*s, v.W}
}

// RotatedYW rotates v in the YW plane by angle radians.
func (v Vec4) RotatedYW(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{v.X, v.Y*c + v.W*s, v.Z, v.W*c - v.Y*s}
}

// RotatedZW rotates v in the ZW plane by angle radians.
func (v Vec4) RotatedZW(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{v.X, v.Y, v.Z*c + v.W*s, v.W*c - v.Z*s}
}
