package usecases

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// Прогресс этапа архивации
const (
	archiveProgress  = 95.0
	completeProgress = 100.0
)

// ProcessPDFsUseCase сценарий обработки директории: сканирование PDF файлов,
// сжатие пакета и упаковка результатов в архив
type ProcessPDFsUseCase struct {
	batch            *CompressBatchUseCase
	archiver         repositories.Archiver
	fileRepo         repositories.FileRepository
	logger           repositories.Logger
	queue            *entities.InputQueue
	progressReporter func(entities.ProcessingStatus)
}

// NewProcessPDFsUseCase создает новый сценарий обработки PDF
func NewProcessPDFsUseCase(
	batch *CompressBatchUseCase,
	archiver repositories.Archiver,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *ProcessPDFsUseCase {
	return &ProcessPDFsUseCase{
		batch:    batch,
		archiver: archiver,
		fileRepo: fileRepo,
		logger:   logger,
		queue:    entities.NewInputQueue(),
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *ProcessPDFsUseCase) SetProgressReporter(reporter func(entities.ProcessingStatus)) {
	uc.progressReporter = reporter
}

// Queue возвращает очередь документов. Очередь сохраняется между запусками:
// после ошибки документы остаются в ней для повторной попытки.
func (uc *ProcessPDFsUseCase) Queue() *entities.InputQueue {
	return uc.queue
}

// reportProgress отправляет копию статуса: получатель читает ее
// в своей горутине, пока обработка продолжает менять оригинал
func (uc *ProcessPDFsUseCase) reportProgress(status *entities.ProcessingStatus) {
	if uc.progressReporter != nil {
		uc.progressReporter(status.Snapshot())
	}
}

// Execute выполняет обработку PDF файлов согласно конфигурации.
// При ошибке архив не создается и очередь не очищается.
func (uc *ProcessPDFsUseCase) Execute(ctx context.Context, config *entities.Config) (*entities.ProcessingStatus, error) {
	// Фаза 1: Инициализация
	status := entities.NewProcessingStatus(0)
	status.SetPhase(entities.PhaseInitializing, "Инициализация обработки...")
	uc.reportProgress(status)

	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Начало обработки PDF файлов")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Исходная директория: %s", config.Scanner.SourceDirectory)
	uc.logInfo("║ Целевая директория: %s", config.Scanner.TargetDirectory)
	uc.logInfo("║ Сборщик: %s", config.Compression.Assembler)
	uc.logInfo("║ Уровни: %s %.1fx/%.2f, %s %.1fx/%.2f, порог %s",
		entities.PrimaryTier.Name, entities.PrimaryTier.RasterScale, entities.PrimaryTier.ImageQuality,
		entities.FallbackTier.Name, entities.FallbackTier.RasterScale, entities.FallbackTier.ImageQuality,
		entities.FormatSize(entities.TargetMaxBytes))
	uc.logInfo("╚════════════════════════════════════════════════════════════")

	// Проверяем существование исходной директории
	if uc.queue.Len() == 0 && !uc.fileRepo.FileExists(config.Scanner.SourceDirectory) {
		err := fmt.Errorf("%w: %s", entities.ErrDirectoryNotFound, config.Scanner.SourceDirectory)
		return uc.fail(status, err)
	}

	if err := uc.fileRepo.CreateDirectory(config.Scanner.TargetDirectory); err != nil {
		return uc.fail(status, fmt.Errorf("ошибка создания целевой директории: %w", err))
	}

	// Фаза 2: Сканирование файлов. Если очередь уже заполнена
	// (документы добавлены заранее или остались после ошибки),
	// обрабатывается она как есть.
	if uc.queue.Len() == 0 {
		status.SetPhase(entities.PhaseScanning, "Сканирование PDF файлов...")
		uc.reportProgress(status)
		uc.logInfo("🔍 Сканирование директории...")

		_, skipped, err := uc.enqueueDirectory(config.Scanner.SourceDirectory)
		status.SkippedFiles = skipped
		if err != nil {
			return uc.fail(status, err)
		}
	}

	if uc.queue.Len() == 0 {
		uc.logWarning("⚠️  PDF файлы не найдены в директории: %s", config.Scanner.SourceDirectory)
		status.Complete("PDF файлы не найдены")
		uc.reportProgress(status)
		return status, nil
	}

	docs := uc.queue.Documents()
	status.TotalFiles = len(docs)
	uc.logSuccess("✓ Документов в очереди: %d (%s)", len(docs), entities.FormatSize(uc.queue.TotalSize()))

	// Фаза 3: Сжатие файлов
	status.SetPhase(entities.PhaseCompressing, "Сжатие PDF файлов...")
	uc.reportProgress(status)
	uc.logInfo("")
	uc.logInfo("🔄 Начало сжатия файлов...")
	uc.logInfo("─────────────────────────────────────────────────────────────")

	uc.batch.SetResultListener(func(result entities.TranscodeResult) {
		status.AddResult(result)
		uc.reportProgress(status)
	})
	defer uc.batch.SetResultListener(nil)

	summary, err := uc.batch.Execute(ctx, docs, func(percent float64, message string) {
		if next := status.ProcessedFiles; next < len(docs) {
			status.SetCurrentFile(docs[next].Name, docs[next].Size)
		}
		status.SetProgress(percent, message)
		uc.reportProgress(status)
	})
	if err != nil {
		return uc.fail(status, err)
	}

	// Фаза 4: Архивация
	status.SetPhase(entities.PhaseArchiving, "Создание архива...")
	status.SetProgress(archiveProgress, "Создание ZIP архива...")
	uc.reportProgress(status)

	var archive bytes.Buffer
	if err := uc.archiver.Archive(&archive, summary); err != nil {
		return uc.fail(status, fmt.Errorf("ошибка создания архива: %w", err))
	}

	archivePath := filepath.Join(config.Scanner.TargetDirectory, uc.archiver.ArchiveName(config.Scanner.ArchivePrefix))
	if err := uc.fileRepo.WriteFile(archivePath, archive.Bytes()); err != nil {
		return uc.fail(status, fmt.Errorf("ошибка сохранения архива: %w", err))
	}

	status.Summary = summary
	status.ArchivePath = archivePath
	status.Complete("Готово!")
	uc.reportProgress(status)

	if config.Scanner.ClearAfterArchive {
		uc.queue.Clear()
	}

	uc.logSummary(status, summary)
	return status, nil
}

// Scan добавляет в очередь PDF файлы исходной директории.
// Возвращает количество добавленных документов.
func (uc *ProcessPDFsUseCase) Scan(config *entities.Config) (int, error) {
	if !uc.fileRepo.FileExists(config.Scanner.SourceDirectory) {
		return 0, fmt.Errorf("%w: %s", entities.ErrDirectoryNotFound, config.Scanner.SourceDirectory)
	}

	added, skipped, err := uc.enqueueDirectory(config.Scanner.SourceDirectory)
	if err != nil {
		return added, err
	}

	uc.logInfo("Добавлено в очередь: %d, пропущено: %d, всего: %d", added, skipped, uc.queue.Len())
	return added, nil
}

// enqueueDirectory добавляет в очередь PDF файлы директории.
// Файлы, не являющиеся PDF, и дубликаты пропускаются.
func (uc *ProcessPDFsUseCase) enqueueDirectory(directory string) (added, skipped int, err error) {
	files, err := uc.fileRepo.ListPDFFiles(directory)
	if err != nil {
		return 0, 0, fmt.Errorf("ошибка получения списка файлов: %w", err)
	}

	for _, path := range files {
		doc, err := uc.fileRepo.LoadDocument(path)
		if errors.Is(err, entities.ErrInvalidFileFormat) {
			uc.logWarning("Пропуск файла: %v", err)
			skipped++
			continue
		}
		if err != nil {
			return added, skipped, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
		}

		if err := uc.queue.Add(doc); errors.Is(err, entities.ErrDuplicateInput) {
			uc.logDebug("Документ уже в очереди: %s (%s)", doc.Name, entities.FormatSize(doc.Size))
			continue
		}
		added++
		uc.logQueued(path, doc)
	}

	return added, skipped, nil
}

// logQueued сообщает число страниц добавленного документа и то,
// возможен ли для него повторный проход с пониженным качеством
func (uc *ProcessPDFsUseCase) logQueued(path string, doc entities.InputDocument) {
	info, err := uc.fileRepo.GetFileInfo(path)
	if err != nil || info.Pages <= 0 {
		uc.logInfo("В очереди: %s (%s), число страниц неизвестно", doc.Name, entities.FormatSize(doc.Size))
		return
	}

	fallback := "нет"
	if info.Pages <= entities.MaxFallbackPages {
		fallback = "да"
	}
	uc.logInfo("В очереди: %s (%s), страниц: %d, повторный проход: %s",
		doc.Name, entities.FormatSize(doc.Size), info.Pages, fallback)
}

// fail отмечает обработку как неудачную
func (uc *ProcessPDFsUseCase) fail(status *entities.ProcessingStatus, err error) (*entities.ProcessingStatus, error) {
	status.Fail(err)
	uc.reportProgress(status)
	uc.logError("Ошибка обработки: %v", err)
	return status, err
}

// logSummary логирует итоговую статистику
func (uc *ProcessPDFsUseCase) logSummary(status *entities.ProcessingStatus, summary *entities.BatchSummary) {
	uc.logInfo("")
	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Обработка завершена")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Время выполнения: %s", status.FormatElapsedTime())
	uc.logInfo("║ Архив: %s", status.ArchivePath)
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Статистика файлов:")
	uc.logInfo("║   • Всего: %d", len(summary.Results))
	uc.logInfo("║   • Повторно сжато: %d", summary.FallbackCount())

	if status.SkippedFiles > 0 {
		uc.logWarning("║   • Пропущено: %d", status.SkippedFiles)
	}

	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Статистика сжатия:")
	uc.logInfo("║   • Исходный размер: %s", entities.FormatSize(summary.TotalOriginalSize))
	uc.logInfo("║   • Сжатый размер: %s", entities.FormatSize(summary.TotalCompressedSize))
	uc.logSuccess("║   • Среднее сжатие: %.1f%%", summary.AverageCompression())
	uc.logSuccess("║   • Сэкономлено: %s", entities.FormatSize(summary.SavedSpace()))
	uc.logInfo("╚════════════════════════════════════════════════════════════")
}

// Методы для логирования
func (uc *ProcessPDFsUseCase) logDebug(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
