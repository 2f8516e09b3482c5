package rasterizers

import (
	"image"
	"image/color"
	"testing"
)

func TestFlattenOnWhite_TransparentPage(t *testing.T) {
	// Полностью прозрачная страница
	src := image.NewNRGBA(image.Rect(10, 10, 40, 30))

	flat := FlattenOnWhite(src)

	if flat.Bounds().Dx() != 30 || flat.Bounds().Dy() != 20 {
		t.Fatalf("Expected 30x20, got %v", flat.Bounds())
	}

	for y := 0; y < flat.Bounds().Dy(); y++ {
		for x := 0; x < flat.Bounds().Dx(); x++ {
			c := flat.RGBAAt(x, y)
			if c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				t.Fatalf("Pixel (%d,%d) = %v, want opaque white", x, y, c)
			}
		}
	}
}

func TestFlattenOnWhite_BlendsSemiTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	flat := FlattenOnWhite(src)

	if c := flat.RGBAAt(0, 0); c != (color.RGBA{A: 255}) {
		t.Errorf("Opaque black pixel changed: %v", c)
	}

	half := flat.RGBAAt(1, 0)
	if half.A != 255 {
		t.Errorf("Expected opaque pixel, got alpha %d", half.A)
	}
	if half.R < 120 || half.R > 135 {
		t.Errorf("Expected mid-gray after blending over white, got %v", half)
	}
}

func TestFlattenOnWhite_OpaqueRGBAWithoutCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	if flat := FlattenOnWhite(src); flat != src {
		t.Errorf("Expected opaque RGBA raster to be returned as is")
	}

	// Хотя бы один прозрачный пиксель требует наложения на белый
	src.SetRGBA(0, 0, color.RGBA{})
	flat := FlattenOnWhite(src)
	if flat == src {
		t.Fatalf("Expected a flattened copy for non-opaque raster")
	}
	if c := flat.RGBAAt(0, 0); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Transparent pixel = %v, want opaque white", c)
	}
}
