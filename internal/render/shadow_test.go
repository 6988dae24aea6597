package render

import (
	"image"
	"image/color"
	"testing"
)

func TestBoxBlurSpreadsAlpha(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 9, 9))
	src.SetAlpha(4, 4, color.Alpha{A: 255})

	out := boxBlur(src, 1)
	if got := out.AlphaAt(4, 4).A; got != 255/9 {
		t.Fatalf("centre = %d, want %d", got, 255/9)
	}
	if out.AlphaAt(5, 5).A == 0 {
		t.Fatal("expected alpha to spread to the diagonal neighbour")
	}
	if out.AlphaAt(7, 7).A != 0 {
		t.Fatal("alpha spread beyond the blur radius")
	}
}

func TestBoxBlurZeroRadiusIsIdentity(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 3, 3))
	if boxBlur(src, 0) != src {
		t.Fatal("zero radius should return the source mask")
	}
}

func TestAlphaMaskCopiesCoverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(2, 2, 6, 6))
	img.SetRGBA(3, 3, color.RGBA{R: 10, A: 128})
	m := alphaMask(img)
	if !m.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds = %v", m.Bounds())
	}
	if m.AlphaAt(3, 3).A != 128 || m.AlphaAt(4, 4).A != 0 {
		t.Fatal("mask does not follow layer alpha")
	}
}

func TestFlattenClampsOpacity(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 10, 10))
	layer.SetRGBA(2, 2, color.RGBA{A: 255})
	out := Flatten(layer, color.RGBA{255, 255, 255, 255}, ShadowOptions{Offset: image.Pt(3, 3), Opacity: 5})
	if got := out.RGBAAt(5, 5); got != (color.RGBA{A: 255}) {
		t.Fatalf("shadow pixel = %v, want opaque black", got)
	}
}

func TestShadowTint(t *testing.T) {
	got := scale(color.RGBA{R: 200, A: 200}, 0.5)
	if got != (color.RGBA{R: 100, A: 100}) {
		t.Fatalf("scale = %v", got)
	}
	if scale(color.RGBA{}, 1) != (color.RGBA{A: 255}) {
		t.Fatal("zero colour should mean black")
	}
}
