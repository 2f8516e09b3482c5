package tui

import (
	"errors"
	"strings"
	"testing"

	"pdfshrink/internal/domain/entities"
)

func TestCreateProgressBar(t *testing.T) {
	tests := []struct {
		progress   float64
		wantFilled int
		wantColor  string
	}{
		{-5, 0, "red"},
		{0, 0, "red"},
		{30, 3, "yellow"},
		{60, 6, "blue"},
		{95, 10, "green"},
		{150, 10, "green"},
	}

	for _, tt := range tests {
		bar := createProgressBar(tt.progress, 10)
		if got := strings.Count(bar, "█"); got != tt.wantFilled {
			t.Errorf("createProgressBar(%v): expected %d filled, got %d", tt.progress, tt.wantFilled, got)
		}
		if got := strings.Count(bar, "░"); got != 10-tt.wantFilled {
			t.Errorf("createProgressBar(%v): expected %d empty, got %d", tt.progress, 10-tt.wantFilled, got)
		}
		if !strings.HasPrefix(bar, "["+tt.wantColor+"]") {
			t.Errorf("createProgressBar(%v): expected color %s, got %q", tt.progress, tt.wantColor, bar)
		}
	}
}

func TestTruncateFileName(t *testing.T) {
	if got := truncateFileName("short.pdf", 10, 7); got != "short.pdf" {
		t.Errorf("Expected unchanged name, got %q", got)
	}
	if got := truncateFileName("очень_длинное_имя.pdf", 10, 7); got != "очень_д..." {
		t.Errorf("Expected rune-aware truncation, got %q", got)
	}
}

func TestAssemblerOption(t *testing.T) {
	tests := map[string]int{
		"pdfcpu": 0,
		"unipdf": 1,
		"UniPDF": 1,
		"":       0,
	}
	for assembler, want := range tests {
		if got := assemblerOption(assembler); got != want {
			t.Errorf("assemblerOption(%q) = %d, expected %d", assembler, got, want)
		}
	}
}

func TestFormatStatus_Completed(t *testing.T) {
	status := entities.NewProcessingStatus(2)
	summary := &entities.BatchSummary{}
	first := entities.TranscodeResult{Name: "a.pdf", OriginalSize: 400 * 1024, CompressedSize: 100 * 1024}
	second := entities.TranscodeResult{Name: "b.pdf", OriginalSize: 900 * 1024, CompressedSize: 150 * 1024, UsedFallback: true}
	for _, result := range []entities.TranscodeResult{first, second} {
		summary.Add(result)
		status.AddResult(result)
	}
	status.Summary = summary
	status.ArchivePath = "out/compressed_pdfs_2026-10-15.zip"
	status.Complete("Готово!")

	text := formatStatus(*status)

	for _, want := range []string{
		"Готово!",
		"100.0%",
		"out/compressed_pdfs_2026-10-15.zip",
		"1. a.pdf: 400.00 KB → 100.00 KB (75.0%)",
		"2. b.pdf: 900.00 KB → 150.00 KB",
		"(повторно)",
		"Повторно сжато: [yellow]1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected status text to contain %q:\n%s", want, text)
		}
	}
}

func TestFormatStatus_Failed(t *testing.T) {
	status := entities.NewProcessingStatus(3)
	status.Fail(errors.New("страница 2 повреждена"))

	text := formatStatus(*status)
	if !strings.Contains(text, "страница 2 повреждена") {
		t.Errorf("Expected error in status text:\n%s", text)
	}
	if strings.Contains(text, "Архив:") {
		t.Error("Expected no archive on failure")
	}
}
