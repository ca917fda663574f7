package segment

import (
	"testing"

	"github.com/hyperifyio/gosift/internal/parse"
)

func TestIsHeader_Shapes(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		// all-caps needs more than three characters
		{"ABCD", true},
		{"ABC", false},
		{"STEP 2: SIGN", true},
		// structural prefixes
		{"Chapter 1", true},
		{"Section 4.2 details", true},
		{"Part II", true},
		// short line longer than ten characters
		{"Introduction to Paris", true},
		{"hi", false},
		// topic indicator in an otherwise long line
		{"a complete guide covering everything you could possibly want to know today", true},
		// title case with stopword allowance
		{"The Art of the Meal", true},
		// plain prose fails every rule
		{"the cat sat on the mat while the dog slept outside yesterday evening", false},
	}
	for _, c := range cases {
		if got := IsHeader(c.line); got != c.want {
			t.Fatalf("IsHeader(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestPage_SplitsAtHeaders(t *testing.T) {
	text := "OVERVIEW\n" +
		"the first body line rambles on for quite a while without stopping anywhere\n" +
		"and so does the second body line which keeps going well past the cutoff\n" +
		"NEXT PART\n" +
		"the closing body also has more than eight lowercase words in it somewhere\n"
	got := Page(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}
	if got[0].Title != "OVERVIEW" || got[1].Title != "NEXT PART" {
		t.Fatalf("unexpected titles %q, %q", got[0].Title, got[1].Title)
	}
	if got[0].Line != 0 || got[1].Line != 3 {
		t.Fatalf("unexpected line offsets %d, %d", got[0].Line, got[1].Line)
	}
	if got[0].Body == "" || got[1].Body == "" {
		t.Fatalf("bodies not captured: %+v", got)
	}
	// first body stops at the next header
	if want := "the first body line"; len(got[0].Body) < len(want) {
		t.Fatalf("first body truncated: %q", got[0].Body)
	}
}

func TestPage_NoHeadersYieldsNothing(t *testing.T) {
	text := "just some plain lowercase words here that ramble on without structure\n" +
		"another equally plain lowercase line that also fails every single rule\n"
	if got := Page(text); got != nil {
		t.Fatalf("expected no candidates, got %+v", got)
	}
	if got := Page(""); got != nil {
		t.Fatalf("empty page produced candidates: %+v", got)
	}
}

func TestDocument_TagsPageAndPosition(t *testing.T) {
	pages := []parse.Page{
		{Number: 1, Text: "FIRST\nthe body of the first page stretches past the short line threshold easily\n"},
		{Number: 2, Text: "SECOND\nthe body of the second page stretches past the short line threshold too\n"},
	}
	got := Document("doc.pdf", pages)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	for i, s := range got {
		if s.Document != "doc.pdf" {
			t.Fatalf("section %d has document %q", i, s.Document)
		}
		if s.Position != i {
			t.Fatalf("section %d has position %d", i, s.Position)
		}
	}
	if got[0].Page != 1 || got[1].Page != 2 {
		t.Fatalf("page tags %d, %d", got[0].Page, got[1].Page)
	}
}
