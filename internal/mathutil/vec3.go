package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// The same type carries positions, directions and colors; the role is set by the call site.
type Vec3 [3]float64

// Point3 is a Vec3 used as a position.
type Point3 = Vec3

// Color is a Vec3 holding (r, g, b) in [0, 1].
type Color = Vec3

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Scale is the scalar-first form of v.Scale(s).
func Scale(s float64, v Vec3) Vec3 {
	return v.Scale(s)
}

func (v Vec3) Div(s float64) Vec3 {
	return v.Scale(1 / s)
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns v / |v|. The caller must not pass a zero vector:
// the result is then NaN in every component.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Len())
}

// Lerp blends (1-t)·a + t·b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}
