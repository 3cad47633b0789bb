package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

func TestNotesCSV(t *testing.T) {
	ns := []entities.OpportunityNotes{
		{
			OpportunityName:  "Acme Renewal",
			AccountName:      "Acme Corp",
			ExecutiveSummary: "Renewal discussed, pricing \"almost\" final.",
			NextSteps:        []string{"send pricing", "book follow-up"},
			Confidence:       entities.ConfidenceHigh,
			ModelName:        "gpt-test",
		},
		{
			OpportunityName: "Beta Deal",
			NextSteps:       []string{},
		},
	}

	doc, err := NotesCSV(ns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "opportunity_name" || len(rows[0]) != 16 {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "Acme Renewal" {
		t.Fatalf("got %q", first[0])
	}
	// Quotes survive the round trip.
	if !strings.Contains(first[3], `"almost"`) {
		t.Fatalf("got summary %q", first[3])
	}
	// Lists flatten with a semicolon separator.
	if first[11] != "send pricing; book follow-up" {
		t.Fatalf("got next_steps %q", first[11])
	}

	second := rows[2]
	if second[11] != "" {
		t.Fatalf("empty list must flatten to empty string, got %q", second[11])
	}
}

func TestNotesCSVEmpty(t *testing.T) {
	doc, err := NotesCSV(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestDefaultFilename(t *testing.T) {
	name := DefaultFilename()
	if !strings.HasPrefix(name, "sfdc_notes_") || !strings.HasSuffix(name, ".csv") {
		t.Fatalf("got %q", name)
	}
}
