package camera

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sphere-tracer/internal/mathutil"
)

// Config is the immutable camera/image description. Build it once and pass it
// by value to every render call.
type Config struct {
	AspectRatio    float64
	Width          int
	Height         int // 0 derives floor(Width / AspectRatio)
	ViewportHeight float64
	FocalLength    float64
	Origin         mathutil.Point3
}

// Default matches the reference image: 400 px wide, 16:9.
func Default() Config {
	return Config{
		AspectRatio:    16.0 / 9.0,
		Width:          400,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// ImageHeight returns the explicit height, or floor(Width / AspectRatio).
func (c Config) ImageHeight() int {
	if c.Height > 0 {
		return c.Height
	}
	return int(float64(c.Width) / c.AspectRatio)
}

// Validate rejects geometry the sweep cannot handle. u and v divide by
// (dimension - 1), so both dimensions must be at least 2.
func (c Config) Validate() error {
	if c.AspectRatio <= 0 {
		return fmt.Errorf("camera: aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.Width < 2 {
		return fmt.Errorf("camera: width must be at least 2, got %d", c.Width)
	}
	if h := c.ImageHeight(); h < 2 {
		return fmt.Errorf("camera: height must be at least 2, got %d", h)
	}
	if c.ViewportHeight <= 0 {
		return fmt.Errorf("camera: viewport height must be positive, got %g", c.ViewportHeight)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("camera: focal length must be positive, got %g", c.FocalLength)
	}
	return nil
}

// Camera holds the viewport geometry derived from a Config.
type Camera struct {
	Width, Height int

	Origin          mathutil.Point3
	Horizontal      mathutil.Vec3
	Vertical        mathutil.Vec3
	LowerLeftCorner mathutil.Point3
}

// New derives the viewport: the viewport width follows the aspect ratio, not
// the pixel dimensions, so an explicit Height does not change ray directions.
func New(c Config) Camera {
	viewportWidth := c.AspectRatio * c.ViewportHeight

	origin := c.Origin
	horizontal := mathutil.Vec3{viewportWidth, 0, 0}
	vertical := mathutil.Vec3{0, c.ViewportHeight, 0}
	lowerLeft := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(mathutil.Vec3{0, 0, c.FocalLength})

	return Camera{
		Width:           c.Width,
		Height:          c.ImageHeight(),
		Origin:          origin,
		Horizontal:      horizontal,
		Vertical:        vertical,
		LowerLeftCorner: lowerLeft,
	}
}

// Ray returns the ray through viewport coordinates (u, v), both in [0, 1].
func (c Camera) Ray(u, v float64) mathutil.Ray {
	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Scale(u)).
		Add(c.Vertical.Scale(v)).
		Sub(c.Origin)
	return mathutil.NewRay(c.Origin, direction)
}

// PixelRay returns the ray for column i and viewport row j (j = 0 is the bottom).
func (c Camera) PixelRay(i, j int) (u, v float64, r mathutil.Ray) {
	u = float64(i) / float64(c.Width-1)
	v = float64(j) / float64(c.Height-1)
	return u, v, c.Ray(u, v)
}

// ParseAspect accepts "W:H", "W/H" or a plain decimal ratio.
func ParseAspect(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("camera: empty aspect ratio")
	}
	for _, sep := range []string{":", "/"} {
		if w, h, ok := strings.Cut(s, sep); ok {
			num, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
			if err != nil {
				return 0, fmt.Errorf("camera: parse aspect %q: %w", s, err)
			}
			den, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
			if err != nil {
				return 0, fmt.Errorf("camera: parse aspect %q: %w", s, err)
			}
			if num <= 0 || den <= 0 {
				return 0, fmt.Errorf("camera: aspect %q must be positive", s)
			}
			return num / den, nil
		}
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("camera: parse aspect %q: %w", s, err)
	}
	if r <= 0 {
		return 0, fmt.Errorf("camera: aspect %q must be positive", s)
	}
	return r, nil
}
