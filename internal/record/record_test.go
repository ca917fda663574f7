package record

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/gosift/internal/request"
)

func pinnedBuilder() Builder {
	return Builder{Now: func() time.Time {
		return time.Date(2025, 7, 10, 15, 31, 22, 0, time.UTC)
	}}
}

func sampleManifest() request.Manifest {
	return request.Manifest{
		ChallengeInfo: request.ChallengeInfo{ChallengeID: "c1"},
		Documents:     []request.Document{{Filename: "a.pdf"}, {Filename: "b.pdf"}},
		Persona:       request.Persona{Role: "Food Contractor"},
		JobToBeDone:   request.Job{Task: "Prepare a vegetarian buffet"},
	}
}

func TestBuilderNew(t *testing.T) {
	out := pinnedBuilder().New(sampleManifest())
	if got := out.Metadata.ProcessingTimestamp; got != "2025-07-10T15:31:22Z" {
		t.Fatalf("timestamp = %q", got)
	}
	if out.Metadata.Persona != "Food Contractor" {
		t.Fatalf("persona = %q", out.Metadata.Persona)
	}
	if len(out.Metadata.InputDocuments) != 2 {
		t.Fatalf("input documents = %v", out.Metadata.InputDocuments)
	}
	if out.ExtractedSections == nil || out.SubsectionAnalysis == nil {
		t.Fatal("section lists must be empty, not nil")
	}
}

func TestMarshal_EmptyListsSerializeAsArrays(t *testing.T) {
	b, err := pinnedBuilder().New(sampleManifest()).Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"extracted_sections": []`) {
		t.Fatalf("extracted_sections not an empty array:\n%s", s)
	}
	if !strings.Contains(s, `"subsection_analysis": []`) {
		t.Fatalf("subsection_analysis not an empty array:\n%s", s)
	}
	if strings.Contains(s, "null") {
		t.Fatalf("null leaked into output:\n%s", s)
	}
}

func TestValidate(t *testing.T) {
	fresh := func() *Output {
		out := pinnedBuilder().New(sampleManifest())
		out.AddSection("a.pdf", "Buffet Basics", 1, 2)
		out.AddSubsection("a.pdf", strings.Repeat("refined ", 10), 2)
		return out
	}
	if err := fresh().Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	out := fresh()
	out.AddSection("a.pdf", "Extra", 0, 1)
	if err := out.Validate(); err == nil {
		t.Fatal("rank below 1 accepted")
	}

	out = fresh()
	for i := 0; i < 6; i++ {
		out.AddSection("a.pdf", "Over", i+1, 1)
	}
	if err := out.Validate(); err == nil {
		t.Fatal("more than five sections accepted")
	}

	out = fresh()
	out.AddSubsection("a.pdf", "", 3)
	if err := out.Validate(); err == nil {
		t.Fatal("empty refined text accepted")
	}
}

func TestSave_CreatesParentDirs(t *testing.T) {
	out := pinnedBuilder().New(sampleManifest())
	path := filepath.Join(t.TempDir(), "nested", "dir", "output.json")
	if err := out.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if b[len(b)-1] != '\n' {
		t.Fatal("output file missing trailing newline")
	}
	var round Output
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("saved record not valid JSON: %v", err)
	}
	if round.Metadata.JobToBeDone != "Prepare a vegetarian buffet" {
		t.Fatalf("round-tripped task = %q", round.Metadata.JobToBeDone)
	}
}
