// Package request loads and validates the input manifest describing one
// analysis collection: the documents to read, the persona, and the job to be
// done. Validation failures here are hard errors for the owning collection
// but never spread to sibling collections.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Document names one input file within the collection.
type Document struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// Persona carries the requester's free-text role.
type Persona struct {
	Role string `json:"role"`
}

// Job carries the free-text task description.
type Job struct {
	Task string `json:"task"`
}

// ChallengeInfo is opaque request metadata; only the id is checked.
type ChallengeInfo struct {
	ChallengeID string `json:"challenge_id"`
	TestCase    string `json:"test_case_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Manifest is the parsed input record. The pipeline core reads only
// Persona.Role and JobToBeDone.Task; the rest is carried through to output
// metadata.
type Manifest struct {
	ChallengeInfo ChallengeInfo `json:"challenge_info"`
	Documents     []Document    `json:"documents"`
	Persona       Persona       `json:"persona"`
	JobToBeDone   Job           `json:"job_to_be_done"`
}

// Load reads and validates a manifest file.
func Load(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Validate checks the required structure of a manifest.
func (m Manifest) Validate() error {
	if m.ChallengeInfo.ChallengeID == "" {
		return errors.New("missing challenge_id in challenge_info")
	}
	if len(m.Documents) == 0 {
		return errors.New("documents must be a non-empty list")
	}
	for i, d := range m.Documents {
		if d.Filename == "" {
			return fmt.Errorf("document %d is missing a filename", i)
		}
	}
	if m.Persona.Role == "" {
		return errors.New("persona must have a role field")
	}
	if m.JobToBeDone.Task == "" {
		return errors.New("job_to_be_done must have a task field")
	}
	return nil
}

// Filenames returns the manifest's document filenames in order.
func (m Manifest) Filenames() []string {
	names := make([]string, 0, len(m.Documents))
	for _, d := range m.Documents {
		names = append(names, d.Filename)
	}
	return names
}
