// Package score implements the additive, saturating relevance measure used by
// both section and page ranking. Scoring is a pure function of its inputs:
// same text, taxonomy, category and task always produce the same score and
// matched-keyword set.
package score

import (
	"sort"
	"strings"

	"github.com/hyperifyio/gosift/internal/persona"
)

// Fixed weights of the bag-of-words scheme. Repeated occurrences of one
// keyword within a text never add more than the first match; the check is
// substring presence, not frequency.
const (
	IdentityWeight = 0.1
	TaskWeight     = 0.2
	FreeTermWeight = 0.15
)

// minFreeTermLen filters trivial task tokens ("a", "the", "for").
const minFreeTermLen = 3

// Text scores a text unit against a persona category and task description.
// It returns a score clamped to [0, 1] and the sorted set of distinct matched
// keywords. Matching is case-insensitive substring containment, so a keyword
// can match inside a longer word ("form" inside "format"); this imprecision
// is kept deliberately because changing it would reorder ranking output.
func Text(text string, tax *persona.Taxonomy, cat persona.Category, task string) (float64, []string) {
	textLower := strings.ToLower(text)
	taskLower := strings.ToLower(task)

	total := 0.0
	matched := map[string]struct{}{}

	for _, topic := range tax.Identity(cat) {
		for _, kw := range topic.Words {
			if strings.Contains(textLower, kw) {
				total += IdentityWeight
				matched[kw] = struct{}{}
			}
		}
	}
	for _, topic := range tax.Task(cat) {
		for _, kw := range topic.Words {
			if strings.Contains(textLower, kw) {
				total += TaskWeight
				matched[kw] = struct{}{}
			}
		}
	}
	for _, term := range strings.Fields(taskLower) {
		if len(term) > minFreeTermLen && strings.Contains(textLower, term) {
			total += FreeTermWeight
			matched[term] = struct{}{}
		}
	}

	if total > 1.0 {
		total = 1.0
	}

	keywords := make([]string, 0, len(matched))
	for kw := range matched {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return total, keywords
}
