package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/gosift/internal/record"
	"github.com/hyperifyio/gosift/internal/request"
)

func sampleOutput() *record.Output {
	m := request.Manifest{
		ChallengeInfo: request.ChallengeInfo{ChallengeID: "c1"},
		Documents:     []request.Document{{Filename: "cities.pdf"}, {Filename: "cuisine.pdf"}},
		Persona:       request.Persona{Role: "Travel Planner"},
		JobToBeDone:   request.Job{Task: "Plan a trip of 4 days for a group of 10 college friends."},
	}
	out := record.Builder{}.New(m)
	out.AddSection("cities.pdf", "Coastal Adventures", 1, 2)
	out.AddSection("cuisine.pdf", "Culinary Experiences", 2, 6)
	out.AddSubsection("cities.pdf", "Key destinations: the coast and the old town with plenty to see", 2)
	return out
}

func TestSummary(t *testing.T) {
	out := sampleOutput()
	var buf bytes.Buffer
	Summary(&buf, "collection-1", out, SummaryStats{Persona: "Travel Planner", Documents: 2, Pages: 9, Sections: 14})

	got := buf.String()
	for _, want := range []string{"collection-1", "Coastal Adventures", "#1", "#2", "2 documents", "1 refined summaries"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestWritePDF(t *testing.T) {
	out := sampleOutput()
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF(out, path); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("not a pdf file: %q", b[:8])
	}
}
