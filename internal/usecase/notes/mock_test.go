package notes

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

func fixedMock(initials string) *MockSummarizer {
	m := NewMockSummarizer(initials)
	m.now = func() time.Time { return time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC) }
	return m
}

func TestMockSummarizerExtractsNextSteps(t *testing.T) {
	text := strings.Join([]string{
		"We talked about the roadmap.",
		"Next step: send the pricing sheet by Friday.",
		"There is an open question about SSO support.",
		"Follow-up scheduled with the security team.",
	}, "\n")

	n, err := fixedMock("SE").Summarize(context.Background(), &entities.TranscriptInput{
		Filename:    "call.txt",
		CleanedText: text,
	})
	if err != nil {
		t.Fatalf("mock must never fail: %v", err)
	}

	if len(n.NextSteps) != 2 {
		t.Fatalf("expected 2 next steps, got %v", n.NextSteps)
	}
	if len(n.OpenQuestions) != 1 {
		t.Fatalf("expected 1 open question, got %v", n.OpenQuestions)
	}
	if n.Confidence != entities.ConfidenceLow {
		t.Fatalf("mock confidence must be low, got %s", n.Confidence)
	}
	if n.ModelName != "MockSummarizer" {
		t.Fatalf("got model %q", n.ModelName)
	}
	if n.Debug["source"] != "mock" {
		t.Fatalf("got debug %v", n.Debug)
	}
}

func TestMockSummarizerCommentsHeader(t *testing.T) {
	n, err := fixedMock("se").Summarize(context.Background(), &entities.TranscriptInput{
		Filename:    "call.txt",
		CleanedText: "Short call.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(n.OpportunityComments, "\n")
	if lines[0] != "SE - 2025.08.12" {
		t.Fatalf("got header %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "* ") {
			t.Fatalf("bullet without marker: %q", l)
		}
	}
}

func TestMockSummarizerOwnerOverridesInitials(t *testing.T) {
	n, err := fixedMock("SE").Summarize(context.Background(), &entities.TranscriptInput{
		Filename:    "call.txt",
		CleanedText: "Short call.",
		Metadata:    entities.TranscriptMetadata{Owner: "jqd extra words"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(n.OpportunityComments, "JQD - ") {
		t.Fatalf("got %q", n.OpportunityComments)
	}
}

func TestMockSummarizerEmptyTranscript(t *testing.T) {
	n, err := fixedMock("SE").Summarize(context.Background(), &entities.TranscriptInput{
		Filename:    "empty.txt",
		CleanedText: "",
	})
	if err != nil {
		t.Fatalf("mock must never fail: %v", err)
	}
	if n.ExecutiveSummary == "" {
		t.Fatal("empty transcript must still produce a placeholder summary")
	}
	if n.NextSteps == nil || n.Tags == nil {
		t.Fatal("list fields must be initialized")
	}
}

func TestMockSummarizerSummaryCapped(t *testing.T) {
	long := strings.Repeat("This sentence talks about many things in the call. ", 30)
	n, err := fixedMock("SE").Summarize(context.Background(), &entities.TranscriptInput{
		Filename:    "long.txt",
		CleanedText: long,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.ExecutiveSummary) > mockMaxSummaryChars {
		t.Fatalf("summary too long: %d chars", len(n.ExecutiveSummary))
	}
}
