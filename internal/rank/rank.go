// Package rank orders sections and pages by descending relevance with a
// deterministic tie-break: equal scores keep their original discovery order.
package rank

import (
	"sort"

	"github.com/hyperifyio/gosift/internal/persona"
	"github.com/hyperifyio/gosift/internal/score"
	"github.com/hyperifyio/gosift/internal/segment"
)

// TopK is the fixed number of entries each ranking keeps for the output.
const TopK = 5

// Fixed blend of title and body relevance for sections. Body weight exceeds
// title weight so content depth dominates while title matches still count.
const (
	TitleWeight = 0.4
	BodyWeight  = 0.6
)

// ScoredSection pairs a section with its blended relevance score.
type ScoredSection struct {
	Section segment.Section
	Score   float64
}

// PageText is one full page of raw text bound to its source document.
type PageText struct {
	Document string
	Number   int
	Text     string
}

// ScoredPage pairs a page with its relevance score.
type ScoredPage struct {
	Page  PageText
	Score float64
}

// Sections scores and orders sections, truncating to TopK. Title and body
// are scored independently and blended; the sort is stable so equal scores
// preserve input order across runs.
func Sections(sections []segment.Section, tax *persona.Taxonomy, cat persona.Category, task string) []ScoredSection {
	scored := make([]ScoredSection, 0, len(sections))
	for _, s := range sections {
		titleScore, _ := score.Text(s.Title, tax, cat, task)
		bodyScore, _ := score.Text(s.Body, tax, cat, task)
		scored = append(scored, ScoredSection{
			Section: s,
			Score:   titleScore*TitleWeight + bodyScore*BodyWeight,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > TopK {
		scored = scored[:TopK]
	}
	return scored
}

// Pages scores and orders full pages, truncating to TopK. Pages have no
// title, so the whole text is scored directly.
func Pages(pages []PageText, tax *persona.Taxonomy, cat persona.Category, task string) []ScoredPage {
	scored := make([]ScoredPage, 0, len(pages))
	for _, p := range pages {
		s, _ := score.Text(p.Text, tax, cat, task)
		scored = append(scored, ScoredPage{Page: p, Score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > TopK {
		scored = scored[:TopK]
	}
	return scored
}
