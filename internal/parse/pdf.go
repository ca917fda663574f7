package parse

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser extracts per-page plain text from PDF files.
type PDFParser struct{}

func (p *PDFParser) Parse(path string) ([]Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page degrades to a gap, not a failure.
			continue
		}
		if t := normalizePage(text); t != "" {
			pages = append(pages, Page{Number: i, Text: t})
		}
	}
	return pages, nil
}
