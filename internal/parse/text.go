package parse

import (
	"fmt"
	"os"
	"strings"
)

// TextParser reads plain text files. Form feeds act as page separators, the
// convention pdftotext and friends use when flattening paginated output.
type TextParser struct{}

func (p *TextParser) Parse(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	var pages []Page
	for i, chunk := range strings.Split(string(data), "\f") {
		if t := normalizePage(chunk); t != "" {
			pages = append(pages, Page{Number: i + 1, Text: t})
		}
	}
	return pages, nil
}
