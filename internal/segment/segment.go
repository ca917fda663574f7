// Package segment splits raw page text into (title, body) section candidates
// using line-oriented header heuristics. The heuristics' boundary conditions
// are load-bearing: downstream ranking output depends on exactly which lines
// count as headers, so the thresholds here must not be tuned casually.
package segment

import (
	"strings"
	"unicode"

	"github.com/hyperifyio/gosift/internal/parse"
)

// Section is a (title, body) span derived from header detection within one
// page. It is immutable after creation and carries its source document and
// page of origin as plain data.
type Section struct {
	Document string
	Title    string
	Body     string
	Page     int
	// Position is the discovery index within the document, used as the
	// deterministic tie-break when ranking scores are equal.
	Position int
}

// Candidate is one detected section within a single page.
type Candidate struct {
	Title string
	Body  string
	Line  int
}

// structural keywords that open a header regardless of shape.
var structuralPrefixes = []string{"Chapter", "Section", "Part"}

// topicWords mark lines that introduce well-known content blocks.
var topicWords = []string{
	"guide", "overview", "introduction", "summary",
	"tips", "tricks", "instructions", "steps", "recipe",
	"ingredients", "method", "procedure", "workflow",
	"feature", "tool", "function", "destination", "activity",
}

// titleCaseStopwords are the articles and prepositions allowed lowercase in
// an otherwise title-cased header.
var titleCaseStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
}

// Page scans page text line by line and returns the section candidates in
// discovery order. A page with no detected header yields zero candidates;
// that is a normal outcome, not an error.
func Page(text string) []Candidate {
	lines := strings.Split(text, "\n")

	var candidates []Candidate
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || !IsHeader(line) {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if IsHeader(strings.TrimSpace(lines[j])) {
				end = j
				break
			}
		}
		body := strings.TrimSpace(strings.Join(lines[i+1:end], "\n"))
		candidates = append(candidates, Candidate{Title: line, Body: body, Line: i})
	}
	return candidates
}

// Document segments every page of a document and concatenates the results in
// page order, tagging each section with its page of origin and its discovery
// position within the document.
func Document(docID string, pages []parse.Page) []Section {
	var sections []Section
	for _, page := range pages {
		for _, c := range Page(page.Text) {
			sections = append(sections, Section{
				Document: docID,
				Title:    c.Title,
				Body:     c.Body,
				Page:     page.Number,
				Position: len(sections),
			})
		}
	}
	return sections
}

// IsHeader reports whether a trimmed line looks like a section header. A line
// qualifies when any of these hold: it is entirely upper-case and longer than
// 3 characters; it starts with a structural keyword; it is at most 8 words
// but longer than 10 characters; it contains a topic-indicator word; or it is
// title-cased with only articles and prepositions allowed lowercase.
func IsHeader(line string) bool {
	if len(line) < 3 {
		return false
	}
	if isUpperLine(line) && len(line) > 3 {
		return true
	}
	for _, prefix := range structuralPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	words := strings.Fields(line)
	if len(words) <= 8 && len(line) > 10 {
		return true
	}
	lower := strings.ToLower(line)
	for _, w := range topicWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return isTitleCase(line, words)
}

// isUpperLine reports whether a line has at least one cased rune and no
// lowercase ones, mirroring the usual "all caps" notion for mixed content
// like "STEP 2: SIGN".
func isUpperLine(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func isTitleCase(line string, words []string) bool {
	if len(words) == 0 || strings.Count(line, " ") < 1 {
		return false
	}
	first := []rune(line)
	if !unicode.IsUpper(first[0]) {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if unicode.IsUpper(r[0]) || titleCaseStopwords[strings.ToLower(w)] {
			continue
		}
		return false
	}
	return true
}
