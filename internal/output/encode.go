package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format chosen by extension.
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var extensions = map[string]Format{
	".ppm":  PPM,
	".png":  PNG,
	".webp": WebP,
	".tga":  TGA,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

// FormatFromPath returns the format for path's extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("output: unsupported extension %q in %s", ext, path)
	}
	return f, nil
}

// Encode writes img in the given raster format. PPM is produced by the
// renderer's text sink and is rejected here.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PPM:
		return fmt.Errorf("output: %s is written by the text sink, not the image encoder", f)
	}
	return fmt.Errorf("output: unknown format %q", f)
}

// WriteFile encodes img to path, creating parent directories.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if f == PPM {
		return fmt.Errorf("output: %s: ppm is written by the text sink, not the image encoder", path)
	}
	return Create(path, func(w io.Writer) error {
		if err := Encode(w, img, f); err != nil {
			return fmt.Errorf("output: encode %s: %w", path, err)
		}
		return nil
	})
}

// Create opens path (and its parent directories), hands a buffered writer to
// write, then flushes and closes. The first error wins.
func Create(path string, write func(w io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
