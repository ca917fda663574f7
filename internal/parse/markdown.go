package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser flattens a Markdown document into a single text page.
// Headings are emitted as standalone lines so the downstream header
// heuristics can pick them up as section titles.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(path string) ([]Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(nodeText(node, src))
			b.WriteString("\n")
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if t := nodeText(item, src); t != "" {
					b.WriteString(t)
					b.WriteString("\n")
				}
			}
		default:
			if t := nodeText(n, src); t != "" {
				b.WriteString(t)
				b.WriteString("\n")
			}
		}
	}

	pageText := normalizePage(b.String())
	if pageText == "" {
		return nil, nil
	}
	return []Page{{Number: 1, Text: pageText}}, nil
}

// nodeText collects the raw text content beneath an AST node.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(cur ast.Node) {
		if t, ok := cur.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString(" ")
			}
		}
		for c := cur.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
