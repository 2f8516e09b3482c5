package usecases

import (
	"fmt"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// DocumentTranscoder перекодирует один документ с заданным уровнем качества
type DocumentTranscoder interface {
	Execute(doc entities.InputDocument, tier entities.QualityTier) (output []byte, pageCount int, err error)
}

// TranscodeDocumentUseCase сценарий перекодирования документа:
// каждая страница растеризуется, сжимается в JPEG, и из изображений
// собирается новый PDF
type TranscodeDocumentUseCase struct {
	rasterizer repositories.Rasterizer
	encoder    repositories.ImageEncoder
	assembler  repositories.DocumentAssembler
	logger     repositories.Logger
}

// NewTranscodeDocumentUseCase создает новый сценарий перекодирования
func NewTranscodeDocumentUseCase(
	rasterizer repositories.Rasterizer,
	encoder repositories.ImageEncoder,
	assembler repositories.DocumentAssembler,
	logger repositories.Logger,
) *TranscodeDocumentUseCase {
	return &TranscodeDocumentUseCase{
		rasterizer: rasterizer,
		encoder:    encoder,
		assembler:  assembler,
		logger:     logger,
	}
}

// Execute перекодирует документ. Возвращает либо полностью собранный
// документ, либо ошибку *entities.TranscodeError; частичный результат
// не возвращается никогда.
func (uc *TranscodeDocumentUseCase) Execute(doc entities.InputDocument, tier entities.QualityTier) ([]byte, int, error) {
	if err := tier.Validate(); err != nil {
		return nil, 0, fmt.Errorf("недопустимый уровень качества %q: %w", tier.Name, err)
	}

	rasterDoc, err := uc.rasterizer.Open(doc.Data)
	if err != nil {
		return nil, 0, entities.NewTranscodeError(entities.ErrRasterization, doc.Name, 0, err)
	}
	defer rasterDoc.Close()

	pageCount := rasterDoc.NumPages()
	if pageCount <= 0 {
		return nil, 0, entities.NewTranscodeError(entities.ErrRasterization, doc.Name, 0, fmt.Errorf("документ не содержит страниц"))
	}

	// Страницы обрабатываются строго по очереди: в памяти одновременно
	// находится не больше одного растра
	pages := make([]entities.PageImage, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		page, err := uc.transcodePage(rasterDoc, doc.Name, i, tier)
		if err != nil {
			return nil, 0, err
		}
		pages = append(pages, page)
	}

	output, err := uc.assembler.Assemble(pages)
	if err != nil {
		return nil, 0, entities.NewTranscodeError(entities.ErrAssembly, doc.Name, 0, err)
	}

	uc.logDebug("%s: %d стр., уровень %s (масштаб %.1f, качество %.2f) → %s",
		doc.Name, pageCount, tier.Name, tier.RasterScale, tier.ImageQuality, entities.FormatSize(int64(len(output))))

	return output, pageCount, nil
}

// transcodePage растеризует и сжимает одну страницу.
// Растр не выходит за пределы этой функции.
func (uc *TranscodeDocumentUseCase) transcodePage(
	rasterDoc repositories.RasterDocument,
	name string,
	index int,
	tier entities.QualityTier,
) (entities.PageImage, error) {
	pageNumber := index + 1

	raster, err := rasterDoc.Render(index, tier.RasterScale)
	if err != nil {
		return entities.PageImage{}, entities.NewTranscodeError(entities.ErrRasterization, name, pageNumber, err)
	}

	data, err := uc.encoder.Encode(raster, tier.ImageQuality)
	if err != nil {
		return entities.PageImage{}, entities.NewTranscodeError(entities.ErrEncoding, name, pageNumber, err)
	}

	// Размер страницы не зависит от масштаба растеризации
	width, height, err := rasterDoc.IntrinsicSize(index)
	if err != nil {
		return entities.PageImage{}, entities.NewTranscodeError(entities.ErrRasterization, name, pageNumber, err)
	}

	return entities.PageImage{
		Data:   data,
		Width:  entities.PageDimension(width),
		Height: entities.PageDimension(height),
	}, nil
}

func (uc *TranscodeDocumentUseCase) logDebug(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}
