package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

// ManifestEntry carries per-file metadata supplied alongside transcript files.
type ManifestEntry struct {
	OpportunityName string `yaml:"opportunity_name"`
	AccountName     string `yaml:"account_name"`
	OpportunityID   string `yaml:"opportunity_id"`
	CallDate        string `yaml:"call_date"`
	Source          string `yaml:"source"`
	Owner           string `yaml:"owner"`
	Stage           string `yaml:"stage"`
}

// Manifest maps transcript filenames to their metadata.
type Manifest struct {
	Transcripts map[string]ManifestEntry `yaml:"transcripts"`
}

// LoadManifest reads a YAML manifest from disk. A missing path returns an
// empty manifest, not an error.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return &Manifest{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// MetadataFor resolves metadata for one transcript file, falling back to a
// filename-derived opportunity name when the manifest has no entry.
func (m *Manifest) MetadataFor(filename string) entities.TranscriptMetadata {
	entry := m.Transcripts[filename]

	name := entry.OpportunityName
	if name == "" {
		name = entities.GuessOpportunityName(filename)
	}

	var callDate *time.Time
	if entry.CallDate != "" {
		if d, err := time.Parse("2006-01-02", entry.CallDate); err == nil {
			callDate = &d
		}
	}

	return entities.TranscriptMetadata{
		OpportunityName: name,
		AccountName:     entry.AccountName,
		OpportunityID:   entry.OpportunityID,
		CallDate:        callDate,
		Source:          entities.ParseSource(entry.Source),
		Owner:           entry.Owner,
		Stage:           entry.Stage,
	}
}
