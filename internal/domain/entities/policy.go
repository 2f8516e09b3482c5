package entities

const (
	// ReferenceDPI разрешение, соответствующее масштабу 1
	ReferenceDPI = 96.0

	// PointsPerReferenceUnit перевод пикселей при 96 DPI в пункты (72 на дюйм)
	PointsPerReferenceUnit = 0.75

	// TargetMaxBytes желаемый максимальный размер одного документа
	TargetMaxBytes = 200 * 1024

	// MaxFallbackPages повторный проход выполняется только для коротких документов
	MaxFallbackPages = 3
)

// PolicyDecision решение политики сжатия по результату основного прохода
type PolicyDecision struct {
	Accept bool        // Результат основного прохода принимается
	Tier   QualityTier // Уровень, которым выполнен либо нужно выполнить проход
}

// CompressionPolicy определяет, нужен ли повторный проход с резервным уровнем
type CompressionPolicy struct {
	Primary        QualityTier
	Fallback       QualityTier
	TargetMaxBytes int64
	MaxPages       int
}

// DefaultCompressionPolicy возвращает политику с фиксированными уровнями
func DefaultCompressionPolicy() CompressionPolicy {
	return CompressionPolicy{
		Primary:        PrimaryTier,
		Fallback:       FallbackTier,
		TargetMaxBytes: TargetMaxBytes,
		MaxPages:       MaxFallbackPages,
	}
}

// Decide возвращает решение по размеру результата основного прохода.
//
// Резервный уровень выбирается только если размер строго больше порога
// и страниц не больше MaxPages. Результат резервного прохода политикой
// больше не проверяется.
func (p CompressionPolicy) Decide(outputSize int64, pageCount int) PolicyDecision {
	if outputSize > p.TargetMaxBytes && pageCount <= p.MaxPages {
		return PolicyDecision{Accept: false, Tier: p.Fallback}
	}
	return PolicyDecision{Accept: true, Tier: p.Primary}
}

// PageDimension переводит собственный размер страницы (пиксели при 96 DPI) в пункты
func PageDimension(intrinsic float64) float64 {
	return intrinsic * PointsPerReferenceUnit
}

// PageImage сжатое изображение страницы и размер страницы в пунктах
type PageImage struct {
	Data   []byte
	Width  float64
	Height float64
}
