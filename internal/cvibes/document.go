package cvibes

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
)

// Document is the transport form of one uploaded CV file.
type Document struct {
	Base64   string `json:"base64"`
	FileType string `json:"fileType"`
}

// supportedFileTypes mirrors the uploader's accept list.
var supportedFileTypes = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// FileType returns the lower-cased extension of the path without the
// leading dot, or an empty string when the file has no extension.
func FileType(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SupportedFile reports whether the file carries one of the accepted
// CV extensions.
func SupportedFile(path string) bool {
	return supportedFileTypes[FileType(path)]
}

// EncodeFile reads the file and converts it to its transport form.
// Read failures come back as *FileReadError so callers can tell them
// apart from transport failures.
func EncodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	return &Document{
		Base64:   base64.StdEncoding.EncodeToString(data),
		FileType: FileType(path),
	}, nil
}

// EncodeFiles encodes the batch in order. A single read failure aborts the
// whole batch: nothing partially encoded is ever submitted.
func EncodeFiles(paths []string) ([]*Document, error) {
	documents := make([]*Document, 0, len(paths))

	for _, path := range paths {
		doc, err := EncodeFile(path)
		if err != nil {
			return nil, err
		}

		documents = append(documents, doc)
	}

	return documents, nil
}
