package raster

import (
	"fmt"
	"io"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/scene"
)

// Render sweeps every pixel once: viewport rows j from Height-1 down to 0,
// columns i from 0 up. The first emitted row is the top of the image.
//
// The camera is rebuilt from cfg on every call; nothing is cached between
// frames. When progress is non-nil one "Scanlines remaining" line is written
// per row. The first sink error aborts the sweep.
func Render(cfg camera.Config, sh scene.Shader, sink Sink, progress io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cam := camera.New(cfg)
	w, h := cam.Width, cam.Height

	if err := sink.Begin(w, h); err != nil {
		return fmt.Errorf("raster: begin %dx%d: %w", w, h, err)
	}

	index := 0
	for j := h - 1; j >= 0; j-- {
		if progress != nil {
			fmt.Fprintf(progress, "Scanlines remaining: %d\n", j)
		}
		for i := 0; i < w; i++ {
			u, v, r := cam.PixelRay(i, j)
			if err := sink.Emit(index, sh.Shade(u, v, r)); err != nil {
				return fmt.Errorf("raster: emit pixel %d: %w", index, err)
			}
			index++
		}
	}

	if err := sink.End(); err != nil {
		return fmt.Errorf("raster: end frame: %w", err)
	}
	return nil
}

// RenderFrame renders into a new FrameBuffer sized from cfg.
func RenderFrame(cfg camera.Config, sh scene.Shader, progress io.Writer) (*FrameBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fb := NewFrameBuffer(cfg.Width, cfg.ImageHeight())
	if err := Render(cfg, sh, fb.Sink(), progress); err != nil {
		return nil, err
	}
	return fb, nil
}
