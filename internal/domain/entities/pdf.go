package entities

import (
	"fmt"
	"time"
)

// PDFDocument представляет PDF файл на диске
type PDFDocument struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
	Pages        int
}

// TranscodeResult результат перекодирования одного документа
type TranscodeResult struct {
	Name           string
	OriginalSize   int64
	CompressedSize int64
	Output         []byte
	UsedFallback   bool
}

// NewTranscodeResult создает результат для документа и итогового буфера
func NewTranscodeResult(doc InputDocument, output []byte, usedFallback bool) TranscodeResult {
	return TranscodeResult{
		Name:           doc.Name,
		OriginalSize:   doc.Size,
		CompressedSize: int64(len(output)),
		Output:         output,
		UsedFallback:   usedFallback,
	}
}

// CompressionRatio процент уменьшения размера
func (r TranscodeResult) CompressionRatio() float64 {
	return compressionRatio(r.OriginalSize, r.CompressedSize)
}

// SavedSpace сэкономленное место в байтах
func (r TranscodeResult) SavedSpace() int64 {
	return r.OriginalSize - r.CompressedSize
}

// IsEffective проверяет, стал ли документ меньше
func (r TranscodeResult) IsEffective() bool {
	return r.CompressedSize < r.OriginalSize
}

// BatchSummary итоги обработки пакета документов
type BatchSummary struct {
	TotalOriginalSize   int64
	TotalCompressedSize int64
	Results             []TranscodeResult
}

// Add учитывает результат очередного документа
func (s *BatchSummary) Add(result TranscodeResult) {
	s.TotalOriginalSize += result.OriginalSize
	s.TotalCompressedSize += result.CompressedSize
	s.Results = append(s.Results, result)
}

// SavedSpace суммарно сэкономленное место
func (s *BatchSummary) SavedSpace() int64 {
	return s.TotalOriginalSize - s.TotalCompressedSize
}

// AverageCompression общий процент уменьшения размера
func (s *BatchSummary) AverageCompression() float64 {
	return compressionRatio(s.TotalOriginalSize, s.TotalCompressedSize)
}

// FallbackCount количество документов, сжатых резервным уровнем
func (s *BatchSummary) FallbackCount() int {
	count := 0
	for _, r := range s.Results {
		if r.UsedFallback {
			count++
		}
	}
	return count
}

func compressionRatio(original, compressed int64) float64 {
	if original <= 0 {
		return 0
	}
	return (float64(original) - float64(compressed)) / float64(original) * 100
}

// FormatSize форматирует размер в человекочитаемый вид
func FormatSize(size int64) string {
	switch {
	case size < 0:
		return "-" + FormatSize(-size)
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/1024/1024)
	}
}
