// Package parse provides the Document Parser collaborators: per-format
// adapters that turn a document path into an ordered sequence of
// (page number, raw text) pairs. Parsing here is deliberately thin plumbing;
// everything interesting happens downstream in segmentation and scoring.
package parse

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Page is one page of raw extracted text. Page numbers are 1-based and
// strictly increasing within a document.
type Page struct {
	Number int
	Text   string
}

// Parser extracts pages from one document format. An empty page slice with a
// nil error means the document produced no usable text; callers treat that as
// a degraded result, not a failure.
type Parser interface {
	Parse(path string) ([]Page, error)
}

// SupportedExtensions lists the file extensions the pipeline can ingest.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// ForFile returns the parser for a filename based on its extension.
func ForFile(filename string) (Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension reports whether a filename can be parsed.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// normalizePage NFC-normalizes extracted text so that keyword matching sees
// one canonical byte form regardless of how the source encoded accents.
func normalizePage(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
