package raster

import (
	"fmt"

	"sphere-tracer/internal/mathutil"
)

// scale255 maps [0, 1] onto 0..255 by truncation; only exactly 1.0 reaches 255.
const scale255 = 255.99

// quantize truncates c*255.99 toward zero. Out-of-range channels are not clamped.
func quantize(c float64) int {
	return int(c * scale255)
}

// quantize8 is quantize saturated to one byte.
func quantize8(c float64) uint8 {
	q := quantize(c)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// WriteColor formats c as the PPM triple "r g b " (trailing space, no newline).
func WriteColor(c mathutil.Color) string {
	return fmt.Sprintf("%d %d %d ", quantize(c[0]), quantize(c[1]), quantize(c[2]))
}

// PackRGBA returns c as (r, g, b, 255).
func PackRGBA(c mathutil.Color) [4]uint8 {
	return [4]uint8{quantize8(c[0]), quantize8(c[1]), quantize8(c[2]), 0xFF}
}
