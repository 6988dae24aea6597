package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

var white = color.RGBA{255, 255, 255, 255}

func rect(t *testing.T) shape.Shape {
	t.Helper()
	s, err := shape.Begin(shape.KindRectangle, geom.Pt(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	s.Update(geom.Pt(40, 30))
	s.(shape.Filler).FillStyle().FillColor = "#00f"
	return s
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{"a.png": PNG, "b.PDF": PDF} {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%s) = %v, %v", path, got, err)
		}
	}
	if _, err := FormatOf("a.svg"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestImageDrawsOverBackground(t *testing.T) {
	img := Image([]shape.Shape{rect(t)}, Options{Width: 60, Height: 50, Background: white})
	if got := img.RGBAAt(25, 20); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("inside = %v", got)
	}
	if got := img.RGBAAt(55, 45); got != white {
		t.Fatalf("outside = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	img, err := Write(&buf, PNG, []shape.Shape{rect(t)}, Options{Width: 60, Height: 50, Background: white})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds = %v", decoded.Bounds())
	}
}

func TestFileWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	img, err := File(path, []shape.Shape{rect(t)}, Options{Width: 60, Height: 50, Background: white})
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if img != nil {
		t.Fatal("pdf export has no raster preview")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("missing pdf header")
	}
}

func TestFileRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if _, err := File(path, nil, Options{Width: 1, Height: 1}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no file should be created")
	}
}
