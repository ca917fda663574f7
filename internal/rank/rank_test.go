package rank

import (
	"fmt"
	"testing"

	"github.com/hyperifyio/gosift/internal/persona"
	"github.com/hyperifyio/gosift/internal/segment"
)

func TestSections_OrderAndTruncation(t *testing.T) {
	tax := persona.NewTaxonomy()
	sections := []segment.Section{
		{Document: "a.pdf", Title: "Printing Basics", Body: "no relevant vocabulary shows up in this one"},
		{Document: "a.pdf", Title: "City Guide", Body: "visit the city and explore the beach"},
		{Document: "b.pdf", Title: "Filler", Body: "still nothing relevant anywhere in sight"},
		{Document: "b.pdf", Title: "Hotels", Body: "book a hotel with the group and share the budget"},
		{Document: "c.pdf", Title: "More Filler", Body: "yet more text with no vocabulary overlap"},
		{Document: "c.pdf", Title: "Even More", Body: "padding beyond the cutoff for truncation"},
	}
	got := Sections(sections, tax, persona.TravelPlanner, "Plan a trip")
	if len(got) != TopK {
		t.Fatalf("expected %d sections, got %d", TopK, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not non-increasing at %d: %f > %f", i, got[i].Score, got[i-1].Score)
		}
	}
	if got[0].Section.Title != "Hotels" && got[0].Section.Title != "City Guide" {
		t.Fatalf("expected a relevant section first, got %q (%f)", got[0].Section.Title, got[0].Score)
	}
	if got[0].Score <= got[len(got)-1].Score {
		t.Fatalf("relevant sections did not outrank filler: %+v", got)
	}
}

func TestSections_StableTieBreak(t *testing.T) {
	tax := persona.NewTaxonomy()
	var sections []segment.Section
	for i := 0; i < 4; i++ {
		sections = append(sections, segment.Section{
			Document: fmt.Sprintf("doc-%d.pdf", i),
			Title:    "Identical",
			Body:     "identical body with no keyword matches whatsoever",
			Position: i,
		})
	}
	got := Sections(sections, tax, persona.HRProfessional, "")
	for i, s := range got {
		if s.Section.Position != i {
			t.Fatalf("tie at index %d resolved to position %d; input order not preserved", i, s.Section.Position)
		}
	}
}

func TestSections_BodyOutweighsTitle(t *testing.T) {
	tax := persona.NewTaxonomy()
	sections := []segment.Section{
		{Title: "hotel", Body: "no overlap in this body text at all"},
		{Title: "no overlap here", Body: "hotel"},
	}
	got := Sections(sections, tax, persona.TravelPlanner, "")
	if got[0].Section.Body != "hotel" {
		t.Fatalf("body match should outrank equal title match, got title=%q first", got[0].Section.Title)
	}
}

func TestPages_OrderAndTruncation(t *testing.T) {
	tax := persona.NewTaxonomy()
	var pages []PageText
	for i := 0; i < 7; i++ {
		pages = append(pages, PageText{Document: "d.pdf", Number: i + 1, Text: "plain filler with nothing of note"})
	}
	pages[3].Text = "visit the coast, book a hotel and explore the local culture"
	got := Pages(pages, tax, persona.TravelPlanner, "Plan a trip")
	if len(got) != TopK {
		t.Fatalf("expected %d pages, got %d", TopK, len(got))
	}
	if got[0].Page.Number != 4 {
		t.Fatalf("expected page 4 first, got %d (%f)", got[0].Page.Number, got[0].Score)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("page scores not non-increasing at %d", i)
		}
	}
}
