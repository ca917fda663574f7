package parse

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// HTMLParser extracts readable text from an HTML document, preferring <main>
// or <article> and falling back to <body>. Headings, paragraphs and list
// items are separated by newlines; obvious boilerplate containers such as
// <nav> and <footer> are skipped. The whole document maps to a single page.
type HTMLParser struct{}

func (p *HTMLParser) Parse(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	node, err := html.Parse(f)
	if err != nil || node == nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}

	var b strings.Builder
	if content != nil {
		collectText(&b, content)
	}
	text := normalizePage(collapseBlankLines(b.String()))
	if text == "" {
		return nil, nil
	}
	return []Page{{Number: 1, Text: text}}, nil
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "br", "hr", "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li":
			b.WriteString("\n")
		}
	}
}

// collapseBlankLines trims each line and keeps at most one consecutive blank.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
