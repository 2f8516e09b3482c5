package entities

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	ErrInvalidRasterScale     = errors.New("масштаб растеризации должен быть больше нуля")
	ErrInvalidImageQuality    = errors.New("качество изображения должно быть от 0 до 1")
	ErrFileNotFound           = errors.New("файл не найден")
	ErrInvalidFileFormat      = errors.New("неверный формат файла")
	ErrDirectoryNotFound      = errors.New("директория не найдена")
	ErrNoFilesFound           = errors.New("PDF файлы не найдены")
	ErrEmptyQueue             = errors.New("очередь документов пуста")
	ErrUnknownAssembler       = errors.New("неизвестный алгоритм сборки документа")
	ErrInvalidRasterDimension = errors.New("максимальный размер растра не может быть отрицательным")

	// ErrDuplicateInput не является ошибкой обработки: документ с тем же
	// именем и размером уже в очереди, повторное добавление ничего не меняет.
	ErrDuplicateInput = errors.New("документ уже добавлен в очередь")

	// Виды ошибок перекодирования документа
	ErrRasterization = errors.New("ошибка растеризации")
	ErrEncoding      = errors.New("ошибка кодирования изображения")
	ErrAssembly      = errors.New("ошибка сборки документа")
)

// TranscodeError описывает сбой при перекодировании документа.
// Page нумеруется с 1; 0 означает, что страницу определить нельзя.
type TranscodeError struct {
	Kind     error
	Document string
	Page     int
	Err      error
}

// NewTranscodeError создает ошибку перекодирования заданного вида
func NewTranscodeError(kind error, document string, page int, err error) *TranscodeError {
	return &TranscodeError{
		Kind:     kind,
		Document: document,
		Page:     page,
		Err:      err,
	}
}

func (e *TranscodeError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("%v: %s, страница %d: %v", e.Kind, e.Document, e.Page, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Document, e.Err)
}

// Unwrap позволяет errors.Is находить как вид ошибки, так и исходную причину
func (e *TranscodeError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
