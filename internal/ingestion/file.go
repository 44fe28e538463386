package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a document, extracts its text by file extension, and
// returns the cleaned text with metadata. Extensions other than .pdf and
// .docx are treated as plain text.
func ReadFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	return FromBytes(filepath.Base(path), data)
}

// FromBytes extracts and cleans text from an in-memory document. The name
// is only used for extension dispatch and metadata.
func FromBytes(name string, data []byte) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(name))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract text from %s: %w", name, err)
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(name, ext, cleaned), nil
}
