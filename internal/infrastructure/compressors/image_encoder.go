package compressors

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	"github.com/nfnt/resize"

	"pdfshrink/internal/domain/entities"
)

// JPEGEncoder кодирует растры страниц в JPEG
type JPEGEncoder struct {
	// maxDimension ограничение длинной стороны растра в пикселях, 0 - без ограничения
	maxDimension uint
}

// NewJPEGEncoder создает новый JPEG кодировщик
func NewJPEGEncoder(maxDimension int) *JPEGEncoder {
	if maxDimension < 0 {
		maxDimension = 0
	}
	return &JPEGEncoder{maxDimension: uint(maxDimension)}
}

// Encode кодирует растр с качеством от 0 до 1
func (e *JPEGEncoder) Encode(img image.Image, quality float64) ([]byte, error) {
	if quality < 0 || quality > 1 || math.IsNaN(quality) {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidImageQuality, quality)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("растр нулевой площади: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Слишком большие растры уменьшаем с сохранением пропорций
	finalImg := img
	if e.maxDimension > 0 && (uint(bounds.Dx()) > e.maxDimension || uint(bounds.Dy()) > e.maxDimension) {
		finalImg = resize.Thumbnail(e.maxDimension, e.maxDimension, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	options := &jpeg.Options{Quality: JPEGQuality(quality)}
	if err := jpeg.Encode(&buf, finalImg, options); err != nil {
		return nil, fmt.Errorf("не удалось закодировать JPEG: %w", err)
	}

	return buf.Bytes(), nil
}

// JPEGQuality переводит качество от 0 до 1 в шкалу JPEG 1-100
func JPEGQuality(quality float64) int {
	q := int(math.Round(quality * 100))
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}
