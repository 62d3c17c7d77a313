package scene

import "sphere-tracer/internal/mathutil"

// Sphere is the single object of the scene.
type Sphere struct {
	Center mathutil.Point3
	Radius float64
}

// DefaultSphere sits one unit in front of the camera.
var DefaultSphere = Sphere{Center: mathutil.Point3{0, 0, -1}, Radius: 0.5}

// HitSphere reports whether r intersects the sphere, using the discriminant of
// |origin + t·dir - center|² = radius². A tangent ray (discriminant == 0) is a miss.
func HitSphere(center mathutil.Point3, radius float64, r mathutil.Ray) bool {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	discriminant := b*b - 4*a*c
	return discriminant > 0
}

// Hit is HitSphere for s.
func (s Sphere) Hit(r mathutil.Ray) bool {
	return HitSphere(s.Center, s.Radius, r)
}
