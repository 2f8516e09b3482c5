package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// CompressPDFUseCase сценарий сжатия одного PDF файла
type CompressPDFUseCase struct {
	batch    *CompressBatchUseCase
	fileRepo repositories.FileRepository
}

// NewCompressPDFUseCase создает новый сценарий сжатия PDF
func NewCompressPDFUseCase(
	batch *CompressBatchUseCase,
	fileRepo repositories.FileRepository,
) *CompressPDFUseCase {
	return &CompressPDFUseCase{
		batch:    batch,
		fileRepo: fileRepo,
	}
}

// CompressedPath путь к сжатому файлу рядом с исходным
func CompressedPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_compressed" + ext
}

// Execute выполняет сжатие PDF файла.
// Если outputPath пуст, результат сохраняется рядом с исходным файлом.
func (uc *CompressPDFUseCase) Execute(ctx context.Context, inputPath string, outputPath string) (*entities.TranscodeResult, error) {
	// Проверяем существование входного файла
	if !uc.fileRepo.FileExists(inputPath) {
		return nil, fmt.Errorf("%w: %s", entities.ErrFileNotFound, inputPath)
	}

	doc, err := uc.fileRepo.LoadDocument(inputPath)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = CompressedPath(inputPath)
	}

	summary, err := uc.batch.Execute(ctx, []entities.InputDocument{doc}, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка сжатия файла: %w", err)
	}

	result := summary.Results[0]
	if err := uc.fileRepo.WriteFile(outputPath, result.Output); err != nil {
		return nil, fmt.Errorf("ошибка сохранения файла: %w", err)
	}

	return &result, nil
}
