package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestIconRenders(t *testing.T) {
	img, err := IconImage(baseSize)
	if err != nil {
		t.Fatalf("IconImage: %v", err)
	}
	if img.Bounds().Dx() != baseSize {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if _, _, _, a := img.At(8, 30).RGBA(); a == 0 {
		t.Fatal("expected the frame fill inside the icon")
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Fatal("corners should stay transparent")
	}
}

func TestIconScales(t *testing.T) {
	img, err := IconImage(32)
	if err != nil {
		t.Fatalf("IconImage: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	again, _ := IconImage(32)
	if again != img {
		t.Fatal("scaled icons should be cached")
	}
	if _, err := IconImage(0); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestIconPNG(t *testing.T) {
	data, err := IconPNG(48)
	if err != nil {
		t.Fatalf("IconPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 48 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	data[0] = 0
	if again, _ := IconPNG(48); bytes.Equal(again, data) {
		t.Fatal("IconPNG should return a copy")
	}
}
