package raster

import "image"

// FrameBuffer holds one rendered frame as RGBA interleaved bytes, top row first.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // len = W*H*4
}

// NewFrameBuffer allocates a zeroed color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Sink returns a sink writing into fb.
func (fb *FrameBuffer) Sink() *BufferSink {
	return NewBufferSink(fb.Color)
}

// NRGBA wraps the buffer without copying. Alpha is always 255, so the
// straight and premultiplied forms agree.
func (fb *FrameBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
