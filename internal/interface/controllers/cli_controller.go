package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pdfshrink/internal/domain/entities"
	usecases "pdfshrink/internal/usecase"
)

// CLIController контроллер для запуска без TUI (флаг -headless).
// Выполняет одну обработку и печатает отчет.
type CLIController struct {
	processUseCase     *usecases.ProcessPDFsUseCase
	compressPDFUseCase *usecases.CompressPDFUseCase
	out                io.Writer
	lastProgress       float64
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(
	processUseCase *usecases.ProcessPDFsUseCase,
	compressPDFUseCase *usecases.CompressPDFUseCase,
	out io.Writer,
) *CLIController {
	return &CLIController{
		processUseCase:     processUseCase,
		compressPDFUseCase: compressPDFUseCase,
		out:                out,
		lastProgress:       -1,
	}
}

// ConsoleLog выводит журнал в консоль без отладочных сообщений
type ConsoleLog struct {
	out io.Writer
}

// NewConsoleLog создает консольный журнал
func NewConsoleLog(out io.Writer) *ConsoleLog {
	return &ConsoleLog{out: out}
}

// AddLog печатает запись журнала
func (c *ConsoleLog) AddLog(level, message string) {
	if strings.EqualFold(level, "debug") {
		return
	}
	fmt.Fprintf(c.out, "%-7s %s\n", strings.ToUpper(level), message)
}

// ReportProgress печатает прогресс при смене процента
func (c *CLIController) ReportProgress(status entities.ProcessingStatus) {
	if status.Progress == c.lastProgress || status.IsComplete {
		return
	}
	c.lastProgress = status.Progress
	fmt.Fprintf(c.out, "[%5.1f%%] %s\n", status.Progress, status.Message)
}

// HandleSingleFile обрабатывает сжатие одного файла
func (c *CLIController) HandleSingleFile(ctx context.Context, inputPath, outputPath string) error {
	fmt.Fprintln(c.out, "🔥 PDF Shrink - Сжатие PDF файла")
	fmt.Fprintln(c.out, "====================================")
	fmt.Fprintf(c.out, "\n🚀 Начинаем сжатие файла: %s\n", inputPath)

	if outputPath == "" {
		outputPath = usecases.CompressedPath(inputPath)
	}

	result, err := c.compressPDFUseCase.Execute(ctx, inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("ошибка сжатия: %w", err)
	}

	c.showCompressionResult(result, outputPath)
	return nil
}

// HandleDirectory обрабатывает сжатие исходной директории и создает архив
func (c *CLIController) HandleDirectory(ctx context.Context, config *entities.Config) error {
	fmt.Fprintln(c.out, "🔥 PDF Shrink - Сжатие директории PDF файлов")
	fmt.Fprintln(c.out, "================================================")
	fmt.Fprintf(c.out, "\n🚀 Начинаем сжатие директории: %s\n", config.Scanner.SourceDirectory)

	c.processUseCase.SetProgressReporter(c.ReportProgress)
	defer c.processUseCase.SetProgressReporter(nil)

	status, err := c.processUseCase.Execute(ctx, config)
	if err != nil {
		return fmt.Errorf("ошибка сжатия директории: %w", err)
	}

	c.showDirectoryResult(status)
	return nil
}

// showCompressionResult показывает результат сжатия файла
func (c *CLIController) showCompressionResult(result *entities.TranscodeResult, outputPath string) {
	fmt.Fprintln(c.out, "\n📊 Результаты сжатия:")
	fmt.Fprintf(c.out, "Исходный размер: %s\n", entities.FormatSize(result.OriginalSize))
	fmt.Fprintf(c.out, "Сжатый размер: %s\n", entities.FormatSize(result.CompressedSize))
	fmt.Fprintf(c.out, "Сжатие: %.1f%%\n", result.CompressionRatio())
	fmt.Fprintf(c.out, "Сэкономлено: %s\n", entities.FormatSize(result.SavedSpace()))

	if result.UsedFallback {
		fmt.Fprintln(c.out, "↻ Применено повторное сжатие с пониженным качеством")
	}

	if result.IsEffective() {
		fmt.Fprintln(c.out, "✅ Сжатие выполнено успешно!")
	} else {
		fmt.Fprintln(c.out, "⚠️ Файл не уменьшился (возможно, уже оптимизирован)")
	}

	fmt.Fprintf(c.out, "\n🎉 Готово! Сжатый файл сохранен как: %s\n", outputPath)
}

// showDirectoryResult показывает результат сжатия директории
func (c *CLIController) showDirectoryResult(status *entities.ProcessingStatus) {
	if status.Summary == nil {
		fmt.Fprintf(c.out, "\n⚠️ %s\n", status.Message)
		return
	}

	summary := status.Summary
	fmt.Fprintf(c.out, "\n📊 Результаты сжатия директории:\n")
	fmt.Fprintf(c.out, "Всего файлов: %d\n", len(summary.Results))
	fmt.Fprintf(c.out, "Повторно сжато: %d\n", summary.FallbackCount())
	if status.SkippedFiles > 0 {
		fmt.Fprintf(c.out, "Пропущено: %d\n", status.SkippedFiles)
	}

	// Показываем статистику по каждому файлу
	for i, result := range summary.Results {
		fmt.Fprintf(c.out, "\n[%d] %s: %s → %s, сжатие: %.1f%%",
			i+1, result.Name,
			entities.FormatSize(result.OriginalSize),
			entities.FormatSize(result.CompressedSize),
			result.CompressionRatio())
	}

	fmt.Fprintf(c.out, "\n\nИтого: %s → %s, сэкономлено: %s (%.1f%%)\n",
		entities.FormatSize(summary.TotalOriginalSize),
		entities.FormatSize(summary.TotalCompressedSize),
		entities.FormatSize(summary.SavedSpace()),
		summary.AverageCompression())

	fmt.Fprintf(c.out, "\n🎉 Обработка завершена за %s! Архив: %s\n", status.FormatElapsedTime(), status.ArchivePath)
}
