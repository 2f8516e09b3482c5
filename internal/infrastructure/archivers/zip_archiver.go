package archivers

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"

	"pdfshrink/internal/domain/entities"
)

// ZipArchiver упаковывает сжатые документы в ZIP архив
type ZipArchiver struct {
	level int
	now   func() time.Time
}

// NewZipArchiver создает архиватор с максимальным уровнем сжатия DEFLATE
func NewZipArchiver() *ZipArchiver {
	return &ZipArchiver{
		level: flate.BestCompression,
		now:   time.Now,
	}
}

// Archive записывает по одной записи на каждый результат, под исходным именем документа
func (a *ZipArchiver) Archive(w io.Writer, summary *entities.BatchSummary) error {
	if summary == nil || len(summary.Results) == 0 {
		return errors.New("нет документов для архивации")
	}

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, a.level)
	})

	modified := a.now()
	used := make(map[string]int, len(summary.Results))

	for _, result := range summary.Results {
		header := &zip.FileHeader{
			Name:     uniqueEntryName(result.Name, used),
			Method:   zip.Deflate,
			Modified: modified,
		}

		entry, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("ошибка создания записи %s: %w", header.Name, err)
		}
		if _, err := entry.Write(result.Output); err != nil {
			zw.Close()
			return fmt.Errorf("ошибка записи %s в архив: %w", header.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("ошибка завершения архива: %w", err)
	}
	return nil
}

// ArchiveName имя архива вида <prefix>_2006-01-02.zip
func (a *ZipArchiver) ArchiveName(prefix string) string {
	if prefix == "" {
		prefix = "compressed_pdfs"
	}
	return fmt.Sprintf("%s_%s.zip", prefix, a.now().Format("2006-01-02"))
}

// uniqueEntryName не допускает одинаковых имен в архиве:
// документы с одним именем, но разным размером, получают суффикс " (N)"
func uniqueEntryName(name string, used map[string]int) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "document.pdf"
	}

	used[name]++
	if used[name] == 1 {
		return name
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := used[name]; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if used[candidate] == 0 {
			used[candidate] = 1
			return candidate
		}
	}
}
