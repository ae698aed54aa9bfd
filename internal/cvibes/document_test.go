package cvibes

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileType(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect string
	}{
		{
			name:   "lowercases the extension",
			path:   "resume.PDF",
			expect: "pdf",
		},
		{
			name:   "keeps the last extension only",
			path:   "jane.doe.docx",
			expect: "docx",
		},
		{
			name:   "empty when no extension",
			path:   "README",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileType(tt.path); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestSupportedFile(t *testing.T) {
	if !SupportedFile("cv.pdf") || !SupportedFile("cv.DOC") || !SupportedFile("cv.docx") {
		t.Fatal("expected pdf, doc and docx to be supported")
	}
	if SupportedFile("cv.txt") || SupportedFile("cv") {
		t.Fatal("expected unknown extensions to be unsupported")
	}
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.PDF")
	content := []byte("%PDF-1.4 fake cv")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.FileType != "pdf" {
		t.Fatalf("expected file type pdf, got %q", doc.FileType)
	}

	decoded, err := base64.StdEncoding.DecodeString(doc.Base64)
	if err != nil {
		t.Fatalf("decoding base64: %v", err)
	}
	if string(decoded) != string(content) {
		t.Fatalf("expected content round-trip, got %q", decoded)
	}
}

func TestEncodeFilesAbortsBatchOnReadFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pdf")
	if err := os.WriteFile(good, []byte("ok"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	documents, err := EncodeFiles([]string{good, filepath.Join(dir, "missing.pdf")})
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}
	if documents != nil {
		t.Fatalf("expected no partial batch, got %d documents", len(documents))
	}

	var readErr *FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected a *FileReadError, got %T", err)
	}
	if readErr.Path == good {
		t.Fatal("error should name the failing file, not the good one")
	}
}
