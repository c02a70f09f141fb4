package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", z)
	}
}

func TestVec4Arithmetic(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}

	if got, want := a.Add(b), Splat(5); got != want {
		t.Errorf("Vec4.Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec4{-3, -1, 1, 3}); got != want {
		t.Errorf("Vec4.Sub() = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec4{2, 4, 6, 8}); got != want {
		t.Errorf("Vec4.Scale() = %v, want %v", got, want)
	}
	if got, want := a.Div(2), (Vec4{0.5, 1, 1.5, 2}); got != want {
		t.Errorf("Vec4.Div() = %v, want %v", got, want)
	}
	if got := a.Dot(b); got != 20 {
		t.Errorf("Vec4.Dot() = %v, want 20", got)
	}
}

func TestVec4LengthAndDistance(t *testing.T) {
	if got := (Vec4{1, 1, 1, 1}).Length(); got != 2 {
		t.Errorf("Vec4.Length() = %v, want 2", got)
	}
	if got := (Vec4{}).Distance(Vec4{0, 3, 0, 4}); got != 5 {
		t.Errorf("Vec4.Distance() = %v, want 5", got)
	}
	n := Vec4{0, 3, 0, 4}.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Vec4.Normalize().Length() = %v, want 1", n.Length())
	}
}

func TestVec4String(t *testing.T) {
	got := Vec4{1, -1, 0.5, 2}.String()
	want := "Vertex(1, -1, 0.5, 2)"
	if got != want {
		t.Errorf("Vec4.String() = %q, want %q", got, want)
	}
}

func TestPlaneRotations(t *testing.T) {
	// 90 degrees in each plane moves the second axis onto the first:
	// a' = a*cos + b*sin, b' = b*cos - a*sin.
	quarter := math.Pi / 2
	tests := []struct {
		name string
		in   Vec4
		rot  func(Vec4, float64) Vec4
		want Vec4
	}{
		{"xy", Vec4{1, 0, 0, 0}, Vec4.RotatedXY, Vec4{0, -1, 0, 0}},
		{"xz", Vec4{1, 0, 0, 0}, Vec4.RotatedXZ, Vec4{0, 0, -1, 0}},
		{"xw", Vec4{1, 0, 0, 0}, Vec4.RotatedXW, Vec4{0, 0, 0, -1}},
		{"yz", Vec4{0, 1, 0, 0}, Vec4.RotatedYZ, Vec4{0, 0, -1, 0}},
		{"yw", Vec4{0, 1, 0, 0}, Vec4.RotatedYW, Vec4{0, 0, 0, -1}},
		{"zw", Vec4{0, 0, 1, 0}, Vec4.RotatedZW, Vec4{0, 0, 0, -1}},
		{"zw keeps xy", Vec4{2, 3, 0, 0}, Vec4.RotatedZW, Vec4{2, 3, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rot(tt.in, quarter)
			if !near(got, tt.want, 1e-12) {
				t.Errorf("rotated = %v, want %v", got, tt.want)
			}
		})
	}
}

func near(a, b Vec4, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps &&
		math.Abs(a.W-b.W) <= eps
}
