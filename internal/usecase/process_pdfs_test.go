package usecases

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pdfshrink/internal/domain/entities"
)

func newProcessConfig(clearAfter bool) *entities.Config {
	return &entities.Config{
		Scanner: entities.ScannerConfig{
			SourceDirectory:   "in",
			TargetDirectory:   "out",
			ArchivePrefix:     "batch",
			ClearAfterArchive: clearAfter,
		},
		Compression: entities.AppCompressionConfig{Assembler: entities.AssemblerPDFCPU},
	}
}

func newProcessFixture() (*ProcessPDFsUseCase, *fakeTranscoder, *fakeFileRepository, *fakeArchiver) {
	transcoder := newFakeTranscoder()
	fileRepo := newFakeFileRepository()
	fileRepo.dirs["in"] = true
	archiver := &fakeArchiver{}

	batch := NewCompressBatchUseCase(transcoder, entities.DefaultCompressionPolicy(), nil)
	return NewProcessPDFsUseCase(batch, archiver, fileRepo, nil), transcoder, fileRepo, archiver
}

func TestProcessPDFs_Success(t *testing.T) {
	uc, transcoder, fileRepo, archiver := newProcessFixture()

	fileRepo.files["in/a.pdf"] = []byte("%PDF-a")
	fileRepo.files["in/b.pdf"] = []byte("%PDF-bb")
	fileRepo.files["in/fake.pdf"] = []byte("not a pdf")
	fileRepo.files["in/sub/a.pdf"] = []byte("%PDF-a")
	transcoder.set("a.pdf", 1, 3, 0)
	transcoder.set("b.pdf", 1, 4, 0)

	var reports []entities.ProcessingStatus
	uc.SetProgressReporter(func(status entities.ProcessingStatus) {
		reports = append(reports, status)
	})

	status, err := uc.Execute(context.Background(), newProcessConfig(true))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if status.Phase != entities.PhaseCompleted || status.Progress != 100 {
		t.Errorf("Expected completed at 100%%, got %v at %v", status.Phase, status.Progress)
	}
	if status.ProcessedFiles != 2 {
		t.Errorf("Expected 2 processed files, got %d", status.ProcessedFiles)
	}
	if status.SkippedFiles != 1 {
		t.Errorf("Expected 1 skipped file, got %d", status.SkippedFiles)
	}

	// Дубликат in/sub/a.pdf совпадает по имени и размеру с in/a.pdf
	if !reflect.DeepEqual(archiver.archived, []string{"a.pdf", "b.pdf"}) {
		t.Errorf("Expected archived [a.pdf b.pdf], got %v", archiver.archived)
	}

	if status.ArchivePath != "out/batch.zip" {
		t.Errorf("Expected archive path out/batch.zip, got %s", status.ArchivePath)
	}
	if string(fileRepo.written["out/batch.zip"]) != "a.pdf\nb.pdf\n" {
		t.Errorf("Unexpected archive content %q", fileRepo.written["out/batch.zip"])
	}
	if !fileRepo.dirs["out"] {
		t.Error("Expected target directory to be created")
	}

	if status.Summary == nil || len(status.Summary.Results) != 2 {
		t.Fatalf("Expected summary with 2 results, got %+v", status.Summary)
	}
	if uc.Queue().Len() != 0 {
		t.Errorf("Expected queue cleared, got %d documents", uc.Queue().Len())
	}

	var last float64
	var sawArchive bool
	for _, report := range reports {
		if report.Progress < last {
			t.Errorf("Progress went backwards: %v after %v", report.Progress, last)
		}
		last = report.Progress
		if report.Phase == entities.PhaseArchiving && report.Progress == 95 {
			sawArchive = true
		}
	}
	if !sawArchive {
		t.Error("Expected archiving report at 95%")
	}

	// Получатель видит копию итога, а не общий с обработкой срез
	final := reports[len(reports)-1]
	if final.Summary == nil || final.Summary == status.Summary {
		t.Fatalf("Expected reported summary to be a copy, got %p", final.Summary)
	}
	if !reflect.DeepEqual(final.Summary.Results, status.Summary.Results) {
		t.Errorf("Reported summary differs from result: %+v", final.Summary.Results)
	}
}

func TestProcessPDFs_ScanReportsPageCounts(t *testing.T) {
	transcoder := newFakeTranscoder()
	fileRepo := newFakeFileRepository()
	fileRepo.dirs["in"] = true
	logger := &fakeLogger{}
	batch := NewCompressBatchUseCase(transcoder, entities.DefaultCompressionPolicy(), nil)
	uc := NewProcessPDFsUseCase(batch, &fakeArchiver{}, fileRepo, logger)

	fileRepo.files["in/short.pdf"] = []byte("%PDF-short")
	fileRepo.files["in/long.pdf"] = []byte("%PDF-long")
	fileRepo.files["in/unknown.pdf"] = []byte("%PDF-unknown")
	fileRepo.files["in/fake.pdf"] = []byte("not a pdf")
	fileRepo.pages["in/short.pdf"] = entities.MaxFallbackPages
	fileRepo.pages["in/long.pdf"] = entities.MaxFallbackPages + 1

	added, err := uc.Scan(newProcessConfig(true))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if added != 3 {
		t.Fatalf("Expected 3 documents added, got %d", added)
	}

	// Сведения запрашиваются только для принятых в очередь файлов
	expectedCalls := []string{"in/long.pdf", "in/short.pdf", "in/unknown.pdf"}
	if !reflect.DeepEqual(fileRepo.infoCalls, expectedCalls) {
		t.Errorf("Expected GetFileInfo calls %v, got %v", expectedCalls, fileRepo.infoCalls)
	}

	tests := []struct {
		name     string
		expected string
	}{
		{"short.pdf", "страниц: 3, повторный проход: да"},
		{"long.pdf", "страниц: 4, повторный проход: нет"},
		{"unknown.pdf", "число страниц неизвестно"},
	}
	for _, tt := range tests {
		if !logger.hasLine(tt.name, tt.expected) {
			t.Errorf("Expected log line for %s with %q, got %v", tt.name, tt.expected, logger.lines)
		}
	}
}

func TestProcessPDFs_KeepQueue(t *testing.T) {
	uc, transcoder, fileRepo, _ := newProcessFixture()
	fileRepo.files["in/a.pdf"] = []byte("%PDF-a")
	transcoder.set("a.pdf", 1, 3, 0)

	if _, err := uc.Execute(context.Background(), newProcessConfig(false)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if uc.Queue().Len() != 1 {
		t.Errorf("Expected queue to keep 1 document, got %d", uc.Queue().Len())
	}
}

func TestProcessPDFs_FailureKeepsQueue(t *testing.T) {
	uc, transcoder, fileRepo, archiver := newProcessFixture()
	fileRepo.files["in/a.pdf"] = []byte("%PDF-a")
	fileRepo.files["in/b.pdf"] = []byte("%PDF-b")
	transcoder.set("a.pdf", 1, 3, 0)
	transcoder.errs["b.pdf"] = entities.NewTranscodeError(entities.ErrAssembly, "b.pdf", 0, errors.New("boom"))

	status, err := uc.Execute(context.Background(), newProcessConfig(true))
	if !errors.Is(err, entities.ErrAssembly) {
		t.Fatalf("Expected ErrAssembly, got %v", err)
	}
	if status.Phase != entities.PhaseFailed || status.Error == nil {
		t.Errorf("Expected failed status, got %v", status.Phase)
	}
	if len(archiver.archived) != 0 || len(fileRepo.written) != 0 {
		t.Error("Expected no archive after failure")
	}
	if uc.Queue().Len() != 2 {
		t.Errorf("Expected queue intact with 2 documents, got %d", uc.Queue().Len())
	}
}

func TestProcessPDFs_NoFiles(t *testing.T) {
	uc, transcoder, fileRepo, _ := newProcessFixture()

	status, err := uc.Execute(context.Background(), newProcessConfig(true))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !status.IsComplete || status.Summary != nil {
		t.Errorf("Expected completed status without summary, got %+v", status)
	}
	if len(transcoder.calls) != 0 || len(fileRepo.written) != 0 {
		t.Error("Expected nothing processed")
	}
}

func TestProcessPDFs_MissingSource(t *testing.T) {
	uc, _, fileRepo, _ := newProcessFixture()
	delete(fileRepo.dirs, "in")

	status, err := uc.Execute(context.Background(), newProcessConfig(true))
	if !errors.Is(err, entities.ErrDirectoryNotFound) {
		t.Errorf("Expected ErrDirectoryNotFound, got %v", err)
	}
	if status.Phase != entities.PhaseFailed {
		t.Errorf("Expected failed phase, got %v", status.Phase)
	}
}

func TestProcessPDFs_ProcessesPreparedQueue(t *testing.T) {
	uc, transcoder, fileRepo, archiver := newProcessFixture()
	fileRepo.files["in/a.pdf"] = []byte("%PDF-a")
	fileRepo.files["in/b.pdf"] = []byte("%PDF-b")
	fileRepo.files["in/c.pdf"] = []byte("%PDF-c")
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		transcoder.set(name, 1, 3, 0)
	}

	config := newProcessConfig(true)
	added, err := uc.Scan(config)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if added != 3 {
		t.Fatalf("Expected 3 documents added, got %d", added)
	}

	// Повторное сканирование не добавляет дубликаты
	if added, _ := uc.Scan(config); added != 0 {
		t.Errorf("Expected no documents on rescan, got %d", added)
	}

	if !uc.Queue().Remove(1) {
		t.Fatal("Remove(1) failed")
	}

	if _, err := uc.Execute(context.Background(), config); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !reflect.DeepEqual(archiver.archived, []string{"a.pdf", "c.pdf"}) {
		t.Errorf("Expected archived [a.pdf c.pdf], got %v", archiver.archived)
	}
	if calls := transcoder.callsFor("b.pdf"); len(calls) != 0 {
		t.Errorf("Expected removed document not processed, got %v", calls)
	}
}

func TestProcessPDFs_ScanMissingSource(t *testing.T) {
	uc, _, fileRepo, _ := newProcessFixture()
	delete(fileRepo.dirs, "in")

	if _, err := uc.Scan(newProcessConfig(true)); !errors.Is(err, entities.ErrDirectoryNotFound) {
		t.Errorf("Expected ErrDirectoryNotFound, got %v", err)
	}
}
