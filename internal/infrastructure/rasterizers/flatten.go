package rasterizers

import (
	"image"
	"image/draw"
)

// FlattenOnWhite возвращает непрозрачный растр: холст заливается
// белым, затем поверх рисуется содержимое страницы. Прозрачные области
// становятся белыми, а не черными после кодирования в JPEG.
// Непрозрачный *image.RGBA возвращается как есть, без копии.
func FlattenOnWhite(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Opaque() {
		return rgba
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)

	return dst
}
