package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sphere-tracer/internal/mathutil"
)

func TestWriteColor(t *testing.T) {
	tests := []struct {
		c    mathutil.Color
		want string
	}{
		{mathutil.Color{0, 1, 0.25}, "0 255 63 "},
		{mathutil.Color{0.5, 0.999, 1}, "127 255 255 "},
		{mathutil.Color{0.5, 0.7, 1}, "127 179 255 "},
		// No clamping: out-of-range channels pass straight through the cast.
		{mathutil.Color{1.5, -0.1, 0}, "383 -25 0 "},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, WriteColor(tc.c), "%v", tc.c)
	}
}

func TestPackRGBA(t *testing.T) {
	assert.Equal(t, [4]uint8{0, 255, 63, 255}, PackRGBA(mathutil.Color{0, 1, 0.25}))
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, PackRGBA(mathutil.Red))
	assert.Equal(t, [4]uint8{255, 0, 127, 255}, PackRGBA(mathutil.Color{1.5, -0.1, 0.5}))
}
