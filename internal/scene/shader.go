package scene

import (
	"fmt"
	"sort"
	"strings"

	"sphere-tracer/internal/mathutil"
)

// Shader maps one camera sample to a color. u and v are the normalized pixel
// coordinates the ray was built from.
type Shader interface {
	Shade(u, v float64, r mathutil.Ray) mathutil.Color
}

// SkyColor is the vertical background gradient: white at unit_direction.y = -1,
// sky blue at +1. It depends on the ray direction only.
func SkyColor(r mathutil.Ray) mathutil.Color {
	unit := r.Direction.Normalize()
	t := 0.5 * (unit.Y() + 1)
	return mathutil.Lerp(mathutil.White, mathutil.SkyBlue, t)
}

// UVPattern ignores the ray and returns (u, v, Blue).
type UVPattern struct {
	Blue float64
}

func (p UVPattern) Shade(u, v float64, _ mathutil.Ray) mathutil.Color {
	return mathutil.Color{u, v, p.Blue}
}

// Sky shades every ray with the background gradient.
type Sky struct{}

func (Sky) Shade(_, _ float64, r mathutil.Ray) mathutil.Color {
	return SkyColor(r)
}

// SphereScene returns HitColor for rays that hit Sphere and the sky otherwise.
type SphereScene struct {
	Sphere   Sphere
	HitColor mathutil.Color
}

// RayColor shades r without reference to its pixel.
func (s SphereScene) RayColor(r mathutil.Ray) mathutil.Color {
	if s.Sphere.Hit(r) {
		return s.HitColor
	}
	return SkyColor(r)
}

func (s SphereScene) Shade(_, _ float64, r mathutil.Ray) mathutil.Color {
	return s.RayColor(r)
}

// Default is the red sphere against the sky.
func Default() SphereScene {
	return SphereScene{Sphere: DefaultSphere, HitColor: mathutil.Red}
}

// RayColor shades r with the default scene.
func RayColor(r mathutil.Ray) mathutil.Color {
	return Default().RayColor(r)
}

// Preset names accepted by ByName.
const (
	NameUV     = "uv"
	NameSky    = "sky"
	NameSphere = "sphere"
)

var presets = map[string]func() Shader{
	NameUV:     func() Shader { return UVPattern{Blue: 0.25} },
	NameSky:    func() Shader { return Sky{} },
	NameSphere: func() Shader { return Default() },
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName resolves a preset shader. Matching is case-insensitive.
func ByName(name string) (Shader, error) {
	mk, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}
