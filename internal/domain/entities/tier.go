package entities

// QualityTier пара параметров сжатия: масштаб растеризации и качество JPEG
type QualityTier struct {
	Name         string
	RasterScale  float64 // Масштаб относительно 96 DPI
	ImageQuality float64 // Качество JPEG от 0 до 1
}

// Фиксированные уровни сжатия
var (
	// PrimaryTier хорошее качество для текстовых документов
	PrimaryTier = QualityTier{Name: "основной", RasterScale: 1.5, ImageQuality: 0.65}

	// FallbackTier более агрессивное сжатие для повторного прохода
	FallbackTier = QualityTier{Name: "резервный", RasterScale: 1.2, ImageQuality: 0.5}
)

// Validate проверяет корректность параметров уровня
func (t QualityTier) Validate() error {
	if t.RasterScale <= 0 {
		return ErrInvalidRasterScale
	}
	if t.ImageQuality < 0 || t.ImageQuality > 1 {
		return ErrInvalidImageQuality
	}
	return nil
}

// DPI возвращает разрешение растеризации для уровня
func (t QualityTier) DPI() float64 {
	return ReferenceDPI * t.RasterScale
}
