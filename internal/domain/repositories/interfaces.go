package repositories

import (
	"image"
	"io"

	"pdfshrink/internal/domain/entities"
)

// Rasterizer открывает PDF документ для постраничной растеризации
type Rasterizer interface {
	// Open разбирает документ; поврежденный или неподдерживаемый документ
	// должен приводить к ошибке
	Open(data []byte) (RasterDocument, error)
}

// RasterDocument открытый для растеризации документ.
// Страницы нумеруются с 0.
type RasterDocument interface {
	NumPages() int
	// Render растеризует страницу в заданном масштабе (1 = 96 DPI)
	// поверх непрозрачного белого фона
	Render(page int, scale float64) (image.Image, error)
	// IntrinsicSize размер страницы в пикселях при масштабе 1
	IntrinsicSize(page int) (width, height float64, err error)
	Close() error
}

// ImageEncoder сжимает растр в байты изображения
type ImageEncoder interface {
	// Encode кодирует растр с качеством от 0 до 1
	Encode(img image.Image, quality float64) ([]byte, error)
}

// DocumentAssembler собирает новый PDF из изображений страниц
type DocumentAssembler interface {
	Assemble(pages []entities.PageImage) ([]byte, error)
}

// Archiver упаковывает результаты пакета в один архив
type Archiver interface {
	Archive(w io.Writer, summary *entities.BatchSummary) error
	// ArchiveName имя файла архива для заданного префикса
	ArchiveName(prefix string) string
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.PDFDocument, error)
	FileExists(path string) bool
	CreateDirectory(path string) error
	ListPDFFiles(directory string) ([]string, error)
	// LoadDocument читает PDF файл в память
	LoadDocument(path string) (entities.InputDocument, error)
	WriteFile(path string, data []byte) error
}

// AppConfigRepository интерфейс для работы с конфигурацией приложения
type AppConfigRepository interface {
	Load(configPath string) (*entities.Config, error)
	Save(configPath string, config *entities.Config) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
	Close() error
}
