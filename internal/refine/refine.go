// Package refine turns raw page text into bounded, content-type-tailored
// actionable summaries. Every stage is a pure function and total over empty
// or whitespace input: bad text yields an empty summary, never an error.
package refine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hyperifyio/gosift/internal/persona"
)

const (
	// MaxSummaryLength caps generic summaries. A single extracted field span
	// may still exceed it; assembly never truncates inside a span.
	MaxSummaryLength = 500
	// MinAcceptLength is the acceptance threshold: shorter results are
	// discarded so near-empty fragments never reach the report.
	MinAcceptLength = 50
	// minFallbackSentence filters fragments in the action-word fallback.
	minFallbackSentence = 20
)

var (
	pageNumRe    = regexp.MustCompile(`\b(?:Page|P)\s*\d+\b`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
	bulletRe     = regexp.MustCompile(`(?m)^\s*[•\-\*]\s*`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`https?://\S+`)
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	punctRunRe   = regexp.MustCompile(`[.!?]{3,}`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// boilerplateRes is the fixed denylist of extraction artifacts stripped
// case-insensitively from every text.
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Adobe\s+Reader`),
	regexp.MustCompile(`(?i)PDF\s+Document`),
	regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`),
	regexp.MustCompile(`(?i)©\s*\d{4}`),
	regexp.MustCompile(`(?i)All\s+rights\s+reserved`),
	regexp.MustCompile(`(?i)Confidential`),
	regexp.MustCompile(`(?i)Draft`),
	regexp.MustCompile(`(?i)Adobe\s+Acrobat`),
	regexp.MustCompile(`(?i)Learn\s+Acrobat`),
	regexp.MustCompile(`(?i)Adobe\s+PDF`),
}

var importanceWords = []string{"important", "key", "essential", "main", "primary", "best", "top"}
var actionWords = []string{"create", "build", "make", "do", "use", "try", "visit", "explore"}
var domainTerms = []string{"recipe", "ingredient", "form", "workflow", "destination", "activity"}

// Refine produces an actionable summary of one page's text under a content
// profile. It may return an empty string; callers apply Accept before
// including the result in any output.
func Refine(text string, p persona.Profile) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	cleaned := RemoveNoise(StripArtifacts(text))
	if len(p.Fields) == 0 {
		return Summarize(cleaned, MaxSummaryLength)
	}
	if s := assemble(cleaned, p); s != "" {
		return s
	}
	if s := fallbackSentences(cleaned, p.FallbackWords); s != "" {
		return s
	}
	return Summarize(cleaned, MaxSummaryLength)
}

// Accept reports whether a refined result is long enough to keep.
func Accept(s string) bool {
	return len(s) > MinAcceptLength
}

// StripArtifacts removes common extraction leftovers: page-number tokens,
// runs of three or more newlines, boilerplate phrases, leading bullet
// markers, and internal whitespace runs.
func StripArtifacts(text string) string {
	text = pageNumRe.ReplaceAllString(text, "")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	for _, re := range boilerplateRes {
		text = re.ReplaceAllString(text, "")
	}
	text = bulletRe.ReplaceAllString(text, "")
	return spaceRunRe.ReplaceAllString(text, " ")
}

// RemoveNoise strips URLs and email addresses and collapses repeated
// terminal punctuation to a single mark.
func RemoveNoise(text string) string {
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = punctRunRe.ReplaceAllString(text, ".")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(text, " "))
}

// assemble builds the summary from extracted field spans in the profile's
// priority order. Fields with MaxSpans zero are extraction-only and never
// contribute to assembly.
func assemble(text string, p persona.Profile) string {
	var parts []string
	for _, f := range p.Fields {
		if f.MaxSpans == 0 {
			continue
		}
		matches := f.Pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		spans := make([]string, 0, f.MaxSpans)
		for _, m := range matches {
			if len(m) < 2 {
				continue
			}
			if span := strings.TrimSpace(m[1]); span != "" {
				spans = append(spans, span)
			}
			if len(spans) >= f.MaxSpans {
				break
			}
		}
		if len(spans) > 0 {
			parts = append(parts, f.Label+": "+strings.Join(spans, ", "))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ")
}

// fallbackSentences keeps up to two sentences that carry one of the
// profile's action words.
func fallbackSentences(text string, words []string) string {
	if len(words) == 0 {
		return ""
	}
	var kept []string
	for _, raw := range sentenceRe.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) <= minFallbackSentence {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, w := range words {
			if strings.Contains(lower, w) {
				kept = append(kept, sentence)
				break
			}
		}
		if len(kept) >= 2 {
			break
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// Summarize is the generic fallback: it scores sentences with a fixed
// heuristic, keeps the top five in their original order, and joins them up
// to maxLength. Text already within the limit is returned unchanged.
func Summarize(text string, maxLength int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if len(text) <= maxLength {
		return text
	}

	type scored struct {
		sentence string
		index    int
		score    int
	}
	var sentences []scored
	for i, raw := range sentenceRe.Split(text, -1) {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		sentences = append(sentences, scored{sentence: s, index: i, score: sentenceScore(s)})
	}
	if len(sentences) == 0 {
		return ""
	}

	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].score > sentences[j].score
	})
	if len(sentences) > 5 {
		sentences = sentences[:5]
	}
	// Restore original order for readability and determinism.
	sort.Slice(sentences, func(i, j int) bool {
		return sentences[i].index < sentences[j].index
	})

	var b strings.Builder
	for _, s := range sentences {
		if b.Len()+len(s.sentence) > maxLength {
			break
		}
		b.WriteString(s.sentence)
		b.WriteString(". ")
	}
	return strings.TrimSpace(b.String())
}

// sentenceScore applies the fixed importance heuristic: a length-band bonus,
// plus bonuses for importance words, action words and domain terms.
func sentenceScore(s string) int {
	score := 0
	switch n := len(s); {
	case n >= 20 && n <= 100:
		score += 2
	case n >= 10 && n <= 150:
		score += 1
	}
	lower := strings.ToLower(s)
	for _, w := range importanceWords {
		if strings.Contains(lower, w) {
			score += 3
		}
	}
	for _, w := range actionWords {
		if strings.Contains(lower, w) {
			score += 2
		}
	}
	for _, w := range domainTerms {
		if strings.Contains(lower, w) {
			score += 2
		}
	}
	return score
}
