package entities

import (
	"strings"
	"time"
)

// Алгоритмы сборки выходного документа
const (
	AssemblerPDFCPU = "pdfcpu"
	AssemblerUniPDF = "unipdf"
)

// Config представляет конфигурацию приложения
type Config struct {
	Scanner     ScannerConfig        `yaml:"scanner"`
	Compression AppCompressionConfig `yaml:"compression"`
	Output      OutputConfig         `yaml:"output"`
}

// ScannerConfig настройки сканирования директорий
type ScannerConfig struct {
	SourceDirectory   string `yaml:"source_directory"`
	TargetDirectory   string `yaml:"target_directory"`
	ArchivePrefix     string `yaml:"archive_prefix"`
	ClearAfterArchive bool   `yaml:"clear_after_archive"`
}

// AppCompressionConfig настройки сжатия приложения.
// Уровни качества фиксированы и здесь не настраиваются.
type AppCompressionConfig struct {
	Assembler          string `yaml:"assembler"`
	AutoStart          bool   `yaml:"auto_start"`
	UniPDFLicenseKey   string `yaml:"unipdf_license_key"`
	MaxRasterDimension int    `yaml:"max_raster_dimension"` // 0 - без ограничения
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	ProgressBar  bool   `yaml:"progress_bar"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

// Validate проверяет корректность конфигурации сжатия
func (c *AppCompressionConfig) Validate() error {
	switch strings.ToLower(c.Assembler) {
	case "", AssemblerPDFCPU, AssemblerUniPDF:
	default:
		return ErrUnknownAssembler
	}
	if c.MaxRasterDimension < 0 {
		return ErrInvalidRasterDimension
	}
	return nil
}

// ProcessingStatus статус обработки
type ProcessingStatus struct {
	// Текущая фаза обработки
	Phase ProcessingPhase

	// Информация о текущем файле
	CurrentFile     string
	CurrentFileSize int64

	// Общая статистика
	TotalFiles     int
	ProcessedFiles int
	FallbackFiles  int
	SkippedFiles   int

	// Прогресс в процентах (0-100)
	Progress float64

	// Статистика сжатия
	TotalOriginalSize   int64
	TotalCompressedSize int64

	// Последний результат
	LastResult *TranscodeResult

	// Итог пакета и путь к архиву после завершения
	Summary     *BatchSummary
	ArchivePath string

	// Время выполнения
	StartTime   time.Time
	ElapsedTime time.Duration

	// Состояние
	IsComplete bool
	Error      error

	// Сообщение для UI
	Message string
}

// ProcessingPhase фаза обработки
type ProcessingPhase int

const (
	PhaseInitializing ProcessingPhase = iota
	PhaseScanning
	PhaseCompressing
	PhaseArchiving
	PhaseCompleted
	PhaseFailed
)

// UIScreen типы экранов UI
type UIScreen int

const (
	UIScreenMenu UIScreen = iota
	UIScreenConfig
	UIScreenQueue
	UIScreenProcessing
)

// NewProcessingStatus создает новый статус обработки
func NewProcessingStatus(totalFiles int) *ProcessingStatus {
	return &ProcessingStatus{
		Phase:      PhaseInitializing,
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// SetProgress обновляет процент и сообщение
func (ps *ProcessingStatus) SetProgress(percent float64, message string) {
	ps.Progress = percent
	ps.Message = message
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// AddResult учитывает результат обработки документа
func (ps *ProcessingStatus) AddResult(result TranscodeResult) {
	ps.ProcessedFiles++
	ps.LastResult = &result
	ps.TotalOriginalSize += result.OriginalSize
	ps.TotalCompressedSize += result.CompressedSize
	if result.UsedFallback {
		ps.FallbackFiles++
	}
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// SavedSpace сэкономленное место
func (ps *ProcessingStatus) SavedSpace() int64 {
	return ps.TotalOriginalSize - ps.TotalCompressedSize
}

// AverageCompression средний процент сжатия
func (ps *ProcessingStatus) AverageCompression() float64 {
	return compressionRatio(ps.TotalOriginalSize, ps.TotalCompressedSize)
}

// SetPhase устанавливает фазу обработки
func (ps *ProcessingStatus) SetPhase(phase ProcessingPhase, message string) {
	ps.Phase = phase
	ps.Message = message
}

// SetCurrentFile устанавливает текущий обрабатываемый файл
func (ps *ProcessingStatus) SetCurrentFile(name string, size int64) {
	ps.CurrentFile = name
	ps.CurrentFileSize = size
}

// Complete завершает обработку
func (ps *ProcessingStatus) Complete(message string) {
	ps.IsComplete = true
	ps.Phase = PhaseCompleted
	ps.Progress = 100
	ps.Message = message
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// Fail отмечает обработку как неудачную
func (ps *ProcessingStatus) Fail(err error) {
	ps.IsComplete = true
	ps.Phase = PhaseFailed
	ps.Error = err
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// Snapshot возвращает копию статуса, не разделяющую память с оригиналом.
// Копию можно передавать в другую горутину, пока обработка продолжается.
func (ps *ProcessingStatus) Snapshot() ProcessingStatus {
	snapshot := *ps

	if ps.LastResult != nil {
		result := *ps.LastResult
		snapshot.LastResult = &result
	}

	if ps.Summary != nil {
		summary := *ps.Summary
		summary.Results = append([]TranscodeResult(nil), ps.Summary.Results...)
		snapshot.Summary = &summary
	}

	return snapshot
}

// String возвращает название фазы
func (phase ProcessingPhase) String() string {
	switch phase {
	case PhaseInitializing:
		return "Инициализация"
	case PhaseScanning:
		return "Сканирование файлов"
	case PhaseCompressing:
		return "Сжатие файлов"
	case PhaseArchiving:
		return "Создание архива"
	case PhaseCompleted:
		return "Завершено"
	case PhaseFailed:
		return "Ошибка"
	default:
		return "Неизвестно"
	}
}

// FormatElapsedTime форматирует время выполнения
func (ps *ProcessingStatus) FormatElapsedTime() string {
	if ps.ElapsedTime < time.Second {
		return "< 1 сек"
	}
	return ps.ElapsedTime.Round(time.Second).String()
}
