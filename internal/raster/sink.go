package raster

import (
	"bufio"
	"fmt"
	"io"

	"sphere-tracer/internal/mathutil"
)

// Sink receives one color per pixel in sweep order. index counts pixels from
// the top-left of the final image, row-major.
type Sink interface {
	Begin(width, height int) error
	Emit(index int, c mathutil.Color) error
	End() error
}

// PPMSink writes a plain-text P3 image.
type PPMSink struct {
	w *bufio.Writer
}

func NewPPMSink(w io.Writer) *PPMSink {
	return &PPMSink{w: bufio.NewWriter(w)}
}

func (s *PPMSink) Begin(width, height int) error {
	_, err := fmt.Fprintf(s.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// Emit ignores index: PPM pixels are positional.
func (s *PPMSink) Emit(_ int, c mathutil.Color) error {
	if _, err := s.w.WriteString(WriteColor(c)); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *PPMSink) End() error {
	return s.w.Flush()
}

// BufferSink packs RGBA bytes into a caller-owned buffer of width*height*4 bytes.
type BufferSink struct {
	buf []byte
}

func NewBufferSink(buf []byte) *BufferSink {
	return &BufferSink{buf: buf}
}

func (s *BufferSink) Begin(width, height int) error {
	if want := width * height * 4; len(s.buf) != want {
		return fmt.Errorf("raster: buffer is %d bytes, want %d for %dx%d", len(s.buf), want, width, height)
	}
	return nil
}

func (s *BufferSink) Emit(index int, c mathutil.Color) error {
	px := PackRGBA(c)
	copy(s.buf[index*4:index*4+4], px[:])
	return nil
}

func (s *BufferSink) End() error { return nil }
