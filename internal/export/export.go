// Package export renders a shape list to PNG or PDF files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/shape"
)

// ErrUnknownFormat is returned for output names without a .png or .pdf
// extension.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an output encoding.
type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
)

// Options sizes the page and styles what is behind the shapes.
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	// Shadow is applied to raster output only.
	Shadow render.ShadowOptions
}

// FormatOf picks the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".pdf":
		return PDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Image draws shapes onto a transparent layer and flattens it over the
// background with the configured shadow.
func Image(shapes []shape.Shape, opts Options) *image.RGBA {
	layer := render.NewRaster(opts.Width, opts.Height, color.RGBA{})
	for _, s := range shapes {
		s.Draw(layer, false)
	}
	return render.Flatten(layer.Image(), opts.Background, opts.Shadow)
}

// Write encodes shapes to w in format f. It returns the raster image for PNG
// output and nil for PDF.
func Write(w io.Writer, f Format, shapes []shape.Shape, opts Options) (image.Image, error) {
	switch f {
	case PNG:
		img := Image(shapes, opts)
		if err := png.Encode(w, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return img, nil
	case PDF:
		page := render.NewPDF(float64(opts.Width), float64(opts.Height), opts.Background)
		for _, s := range shapes {
			s.Draw(page, false)
		}
		if _, err := page.WriteTo(w); err != nil {
			return nil, fmt.Errorf("encode pdf: %w", err)
		}
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// File writes shapes to path in the format its extension names. A partial
// file is removed on failure.
func File(path string, shapes []shape.Shape, opts Options) (image.Image, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	img, err := Write(out, f, shapes, opts)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(path); rerr != nil {
			log.Printf("export: remove %s: %v", path, rerr)
		}
		return nil, err
	}
	log.Printf("export: wrote %d shapes to %s", len(shapes), path)
	return img, nil
}
