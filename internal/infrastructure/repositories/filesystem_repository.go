package repositories

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfshrink/internal/domain/entities"
)

const pdfMimeType = "application/pdf"

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// GetFileInfo получает информацию о PDF файле.
// Количество страниц определяется через PDFCPU; для нечитаемого файла остается 0.
func (r *FileSystemRepository) GetFileInfo(path string) (*entities.PDFDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		pages = 0
	}

	return &entities.PDFDocument{
		Path:         path,
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
		Pages:        pages,
	}, nil
}

// FileExists проверяет существование файла
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// CreateDirectory создает директорию
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// ListPDFFiles возвращает список PDF файлов в директории и всех подпапках
func (r *FileSystemRepository) ListPDFFiles(directory string) ([]string, error) {
	var pdfFiles []string

	err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".pdf") {
			pdfFiles = append(pdfFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(pdfFiles)
	return pdfFiles, nil
}

// LoadDocument читает файл в память и проверяет, что это PDF
func (r *FileSystemRepository) LoadDocument(path string) (entities.InputDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entities.InputDocument{}, fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
		}
		return entities.InputDocument{}, err
	}

	if !mimetype.Detect(data).Is(pdfMimeType) {
		return entities.InputDocument{}, fmt.Errorf("%w: %s не является PDF", entities.ErrInvalidFileFormat, filepath.Base(path))
	}

	return entities.NewInputDocument(filepath.Base(path), data), nil
}

// WriteFile записывает файл через временный файл, чтобы не оставлять частично записанный результат
func (r *FileSystemRepository) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("не удалось создать директорию %s: %w", filepath.Dir(path), err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("не удалось записать временный файл: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("не удалось переименовать временный файл: %w", err)
	}
	return nil
}
