package notes

import (
	"strings"
	"testing"
	"time"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

func sampleTranscript() *entities.TranscriptInput {
	d := time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)
	return &entities.TranscriptInput{
		Filename:    "acme_renewal.vtt",
		RawText:     "raw",
		CleanedText: "We discussed the renewal. Next step: send pricing.",
		Metadata: entities.TranscriptMetadata{
			OpportunityName: "Acme Renewal",
			AccountName:     "Acme Corp",
			CallDate:        &d,
			Source:          entities.SourceGong,
			Owner:           "JD",
			Stage:           "Negotiation",
		},
	}
}

func TestBuildNotesPromptDeterministic(t *testing.T) {
	a := BuildNotesPrompt(sampleTranscript())
	b := BuildNotesPrompt(sampleTranscript())
	if a != b {
		t.Fatal("prompt must be byte-identical for identical input")
	}
}

func TestBuildNotesPromptContent(t *testing.T) {
	p := BuildNotesPrompt(sampleTranscript())

	for _, want := range []string{
		`"opportunity_name":"Acme Renewal"`,
		`"call_date":"2025-08-12"`,
		`"source":"gong"`,
		"opportunity_comments",
		"We discussed the renewal.",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	// Transcript text goes last, appended verbatim.
	if !strings.Contains(p[strings.Index(p, "Transcript:"):], "send pricing.") {
		t.Fatal("transcript not appended after the Transcript marker")
	}
}

func TestBuildNotesPromptNullCallDate(t *testing.T) {
	in := sampleTranscript()
	in.Metadata.CallDate = nil
	p := BuildNotesPrompt(in)
	if !strings.Contains(p, `"call_date":null`) {
		t.Fatal("missing call_date should serialize as null")
	}
}

func TestSchemaHintContainsAllFields(t *testing.T) {
	hint := schemaHintJSON()
	for _, field := range []string{
		"opportunity_name", "account_name", "executive_summary", "opportunity_comments",
		"customer_pain", "use_cases", "stakeholders", "competitors_or_alternatives",
		"products_or_features_discussed", "risks_or_blockers", "next_steps",
		"open_questions", "confidence", "tags",
	} {
		if !strings.Contains(hint, `"`+field+`"`) {
			t.Fatalf("schema hint missing field %q", field)
		}
	}
	if !strings.Contains(hint, `"enum"`) {
		t.Fatal("schema hint missing confidence enum")
	}
}
