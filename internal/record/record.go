// Package record builds and serializes the fixed-schema analysis output.
// The record is the final representation: once built it keeps no reference
// to the intermediate sections or pages it was derived from.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hyperifyio/gosift/internal/request"
)

// Metadata echoes the request plus the processing timestamp, which is the
// only non-deterministic field in the whole record.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section entry.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis is one refined page summary entry.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Output is the aggregate analysis result for one collection.
type Output struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// Builder constructs Output records. Now is injectable so tests can pin the
// processing timestamp; zero value uses the wall clock.
type Builder struct {
	Now func() time.Time
}

// New creates an Output shell from a manifest with empty (never null)
// section lists.
func (b Builder) New(m request.Manifest) *Output {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return &Output{
		Metadata: Metadata{
			InputDocuments:      m.Filenames(),
			Persona:             m.Persona.Role,
			JobToBeDone:         m.JobToBeDone.Task,
			ProcessingTimestamp: now().Format(time.RFC3339),
		},
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []SubsectionAnalysis{},
	}
}

// AddSection appends an extracted section entry.
func (o *Output) AddSection(document, title string, rank, page int) {
	o.ExtractedSections = append(o.ExtractedSections, ExtractedSection{
		Document:       document,
		SectionTitle:   title,
		ImportanceRank: rank,
		PageNumber:     page,
	})
}

// AddSubsection appends a refined summary entry.
func (o *Output) AddSubsection(document, refined string, page int) {
	o.SubsectionAnalysis = append(o.SubsectionAnalysis, SubsectionAnalysis{
		Document:    document,
		RefinedText: refined,
		PageNumber:  page,
	})
}

// Validate checks the structural requirements of a finished record.
func (o *Output) Validate() error {
	if len(o.Metadata.InputDocuments) == 0 {
		return errors.New("metadata.input_documents is empty")
	}
	if o.Metadata.Persona == "" {
		return errors.New("metadata.persona is empty")
	}
	if o.Metadata.JobToBeDone == "" {
		return errors.New("metadata.job_to_be_done is empty")
	}
	if o.Metadata.ProcessingTimestamp == "" {
		return errors.New("metadata.processing_timestamp is empty")
	}
	if len(o.ExtractedSections) > 5 {
		return fmt.Errorf("extracted_sections has %d entries, cap is 5", len(o.ExtractedSections))
	}
	for i, s := range o.ExtractedSections {
		if s.Document == "" || s.SectionTitle == "" {
			return fmt.Errorf("extracted_sections[%d] is missing document or title", i)
		}
		if s.ImportanceRank < 1 || s.ImportanceRank > 5 {
			return fmt.Errorf("extracted_sections[%d] rank %d out of range", i, s.ImportanceRank)
		}
	}
	if len(o.SubsectionAnalysis) > 5 {
		return fmt.Errorf("subsection_analysis has %d entries, cap is 5", len(o.SubsectionAnalysis))
	}
	for i, s := range o.SubsectionAnalysis {
		if s.Document == "" || s.RefinedText == "" {
			return fmt.Errorf("subsection_analysis[%d] is missing document or text", i)
		}
	}
	return nil
}

// Marshal encodes the record with stable two-space indentation.
func (o *Output) Marshal() ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// Save writes the record to path, creating parent directories as needed.
func (o *Output) Save(path string) error {
	b, err := o.Marshal()
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
