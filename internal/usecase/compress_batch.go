package usecases

import (
	"context"
	"fmt"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// BatchProgressShare доля прогресса (в процентах), отведенная на сжатие документов.
// Остаток до 100% занимает архивация.
const BatchProgressShare = 90.0

// ProgressFunc получает процент выполнения (0-100) и сообщение для пользователя
type ProgressFunc func(percent float64, message string)

// CompressBatchUseCase сценарий сжатия пакета документов.
// Документы обрабатываются по одному в исходном порядке.
type CompressBatchUseCase struct {
	transcoder     DocumentTranscoder
	policy         entities.CompressionPolicy
	logger         repositories.Logger
	resultListener func(entities.TranscodeResult)
}

// NewCompressBatchUseCase создает новый сценарий сжатия пакета
func NewCompressBatchUseCase(
	transcoder DocumentTranscoder,
	policy entities.CompressionPolicy,
	logger repositories.Logger,
) *CompressBatchUseCase {
	return &CompressBatchUseCase{
		transcoder: transcoder,
		policy:     policy,
		logger:     logger,
	}
}

// SetResultListener устанавливает функцию, получающую результат каждого документа
func (uc *CompressBatchUseCase) SetResultListener(listener func(entities.TranscodeResult)) {
	uc.resultListener = listener
}

// BatchProgress прогресс перед обработкой документа index из total
func BatchProgress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index) / float64(total) * BatchProgressShare
}

// Execute сжимает все документы. Ошибка любого документа прерывает пакет:
// оставшиеся документы не обрабатываются, итог не возвращается.
// Отмена контекста проверяется между документами.
func (uc *CompressBatchUseCase) Execute(
	ctx context.Context,
	docs []entities.InputDocument,
	progress ProgressFunc,
) (*entities.BatchSummary, error) {
	if len(docs) == 0 {
		return nil, entities.ErrEmptyQueue
	}

	summary := &entities.BatchSummary{
		Results: make([]entities.TranscodeResult, 0, len(docs)),
	}
	total := len(docs)

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("обработка прервана перед %s: %w", doc.Name, err)
		}

		if progress != nil {
			progress(BatchProgress(i, total), fmt.Sprintf("Сжатие: %s (%d/%d)", doc.Name, i+1, total))
		}

		result, err := uc.compressDocument(doc)
		if err != nil {
			uc.logError("[%d/%d] ✗ %s", i+1, total, doc.Name)
			uc.logError("    └─ Ошибка: %v", err)
			return nil, err
		}

		summary.Add(result)
		if uc.resultListener != nil {
			uc.resultListener(result)
		}

		uc.logSuccess("[%d/%d] ✓ %s", i+1, total, doc.Name)
		uc.logInfo("    └─ Размер: %s → %s (%.1f%%)",
			entities.FormatSize(result.OriginalSize),
			entities.FormatSize(result.CompressedSize),
			result.CompressionRatio())
	}

	return summary, nil
}

// compressDocument выполняет основной проход и, если политика требует,
// один резервный проход, результат которого принимается без проверки
func (uc *CompressBatchUseCase) compressDocument(doc entities.InputDocument) (entities.TranscodeResult, error) {
	output, pageCount, err := uc.transcoder.Execute(doc, uc.policy.Primary)
	if err != nil {
		return entities.TranscodeResult{}, err
	}

	decision := uc.policy.Decide(int64(len(output)), pageCount)
	if decision.Accept {
		return entities.NewTranscodeResult(doc, output, false), nil
	}

	uc.logWarning("    └─ %s: %s больше %s, повторное сжатие (уровень %s)",
		doc.Name,
		entities.FormatSize(int64(len(output))),
		entities.FormatSize(uc.policy.TargetMaxBytes),
		decision.Tier.Name)

	output, _, err = uc.transcoder.Execute(doc, decision.Tier)
	if err != nil {
		return entities.TranscodeResult{}, err
	}

	return entities.NewTranscodeResult(doc, output, true), nil
}

// Методы для логирования
func (uc *CompressBatchUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *CompressBatchUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *CompressBatchUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *CompressBatchUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
