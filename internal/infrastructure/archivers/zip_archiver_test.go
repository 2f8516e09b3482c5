package archivers

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"pdfshrink/internal/domain/entities"
)

func TestZipArchiver_Archive(t *testing.T) {
	archiver := NewZipArchiver()

	summary := &entities.BatchSummary{}
	summary.Add(entities.TranscodeResult{Name: "a.pdf", OriginalSize: 10, CompressedSize: 5, Output: []byte("first")})
	summary.Add(entities.TranscodeResult{Name: "dir/b.pdf", OriginalSize: 20, CompressedSize: 6, Output: []byte("second")})
	summary.Add(entities.TranscodeResult{Name: "a.pdf", OriginalSize: 11, CompressedSize: 5, Output: []byte("third")})

	var buf bytes.Buffer
	if err := archiver.Archive(&buf, summary); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Invalid zip: %v", err)
	}

	expected := []struct {
		name    string
		content string
	}{
		{"a.pdf", "first"},
		{"b.pdf", "second"},
		{"a (2).pdf", "third"},
	}

	if len(reader.File) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(reader.File))
	}

	for i, file := range reader.File {
		if file.Name != expected[i].name {
			t.Errorf("Entry %d: expected name %q, got %q", i, expected[i].name, file.Name)
		}

		rc, err := file.Open()
		if err != nil {
			t.Fatalf("Open(%s) error = %v", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Read(%s) error = %v", file.Name, err)
		}
		if string(content) != expected[i].content {
			t.Errorf("Entry %s: expected %q, got %q", file.Name, expected[i].content, content)
		}
	}
}

func TestZipArchiver_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	if err := NewZipArchiver().Archive(&buf, &entities.BatchSummary{}); err == nil {
		t.Errorf("Expected error for empty summary")
	}
}

func TestZipArchiver_ArchiveName(t *testing.T) {
	archiver := NewZipArchiver()
	archiver.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		prefix   string
		expected string
	}{
		{"", "compressed_pdfs_2024-03-09.zip"},
		{"reports", "reports_2024-03-09.zip"},
	}

	for _, tt := range tests {
		if got := archiver.ArchiveName(tt.prefix); got != tt.expected {
			t.Errorf("ArchiveName(%q) = %q, want %q", tt.prefix, got, tt.expected)
		}
	}
}
