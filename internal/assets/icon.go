// Package assets provides the application icon, rendered from a small
// embedded drawing.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/shape"
)

// baseSize is the edge length the icon drawing is authored at.
const baseSize = 64

//go:embed icon.json
var iconDrawing []byte

var (
	loadOnce sync.Once
	loadErr  error
	base     *image.RGBA

	mu      sync.Mutex
	scaled  = map[int]*image.RGBA{}
	encoded = map[int][]byte{}
)

func load() {
	shapes, err := shape.Decode(iconDrawing)
	if err != nil {
		loadErr = fmt.Errorf("icon: %w", err)
		return
	}
	base = export.Image(shapes, export.Options{Width: baseSize, Height: baseSize, Background: color.RGBA{}})
}

// IconImage returns the icon at size x size pixels.
func IconImage(size int) (image.Image, error) {
	img, err := iconAt(size)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func iconAt(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	if size == baseSize {
		return base, nil
	}
	mu.Lock()
	defer mu.Unlock()
	if img, ok := scaled[size]; ok {
		return img, nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(img, img.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	scaled[size] = img
	return img, nil
}

// IconPNG returns a copy of the icon encoded as PNG.
func IconPNG(size int) ([]byte, error) {
	img, err := iconAt(size)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	data, ok := encoded[size]
	mu.Unlock()
	if !ok {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		data = buf.Bytes()
		mu.Lock()
		encoded[size] = data
		mu.Unlock()
	}
	return append([]byte(nil), data...), nil
}
