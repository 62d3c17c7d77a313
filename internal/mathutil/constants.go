package mathutil

// Fixed colors used by the shaders.
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	SkyBlue = Color{0.5, 0.7, 1.0}
)
