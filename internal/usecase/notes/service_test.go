package notes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

type scriptedSummarizer struct {
	calls int
	fail  map[string]error
}

func (s *scriptedSummarizer) Name() string { return "scripted" }

func (s *scriptedSummarizer) Summarize(_ context.Context, t *entities.TranscriptInput) (*entities.OpportunityNotes, error) {
	s.calls++
	if err, ok := s.fail[t.Filename]; ok {
		return nil, err
	}
	return &entities.OpportunityNotes{
		ExecutiveSummary: "summary of " + t.Filename,
		NextSteps:        []string{},
	}, nil
}

type memoryCache struct {
	store map[string]*entities.OpportunityNotes
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string]*entities.OpportunityNotes{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*entities.OpportunityNotes, bool) {
	n, ok := c.store[key]
	return n, ok
}

func (c *memoryCache) Set(_ context.Context, key string, n *entities.OpportunityNotes) {
	c.store[key] = n
}

func inputs(names ...string) []entities.TranscriptInput {
	out := make([]entities.TranscriptInput, 0, len(names))
	for _, n := range names {
		out = append(out, BuildTranscript(n, "Some call content about "+n, entities.TranscriptMetadata{
			OpportunityName: strings.TrimSuffix(n, ".txt"),
		}))
	}
	return out
}

func TestServiceRunPartialFailure(t *testing.T) {
	s := &scriptedSummarizer{fail: map[string]error{
		"b.txt": errors.New("backend exploded"),
	}}
	svc := NewService(s, nil, nil)

	run := svc.Run(context.Background(), inputs("a.txt", "b.txt", "c.txt"))

	if len(run.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(run.Notes))
	}
	if len(run.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(run.Failures))
	}
	if run.Failures[0].Filename != "b.txt" {
		t.Fatalf("failure attributed to %q", run.Failures[0].Filename)
	}
	if !strings.Contains(run.Failures[0].Message, "backend exploded") {
		t.Fatalf("failure message lost the cause: %q", run.Failures[0].Message)
	}

	// Order preserved: surviving notes correspond to a.txt then c.txt.
	if run.Notes[0].ExecutiveSummary != "summary of a.txt" || run.Notes[1].ExecutiveSummary != "summary of c.txt" {
		t.Fatalf("order broken: %+v", run.Notes)
	}
}

func TestServiceRunBackfillsIdentity(t *testing.T) {
	svc := NewService(&scriptedSummarizer{}, nil, nil)
	run := svc.Run(context.Background(), inputs("acme.txt"))

	if len(run.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(run.Notes))
	}
	if run.Notes[0].OpportunityName != "acme" {
		t.Fatalf("identity not backfilled: %+v", run.Notes[0])
	}
}

func TestServiceRunMetadata(t *testing.T) {
	svc := NewService(&scriptedSummarizer{}, nil, nil)
	run := svc.Run(context.Background(), nil)

	if run.Backend != "scripted" {
		t.Fatalf("got backend %q", run.Backend)
	}
	if !strings.HasPrefix(run.RunID, "run_") {
		t.Fatalf("got run id %q", run.RunID)
	}
	if len(run.Notes) != 0 || len(run.Failures) != 0 {
		t.Fatalf("empty batch must yield empty run: %+v", run)
	}
}

func TestServiceCacheHitSkipsBackend(t *testing.T) {
	s := &scriptedSummarizer{}
	cache := newMemoryCache()
	svc := NewService(s, cache, nil)

	svc.Run(context.Background(), inputs("a.txt"))
	if s.calls != 1 {
		t.Fatalf("expected 1 backend call, got %d", s.calls)
	}

	svc.Run(context.Background(), inputs("a.txt"))
	if s.calls != 1 {
		t.Fatalf("cache hit must not call the backend, got %d calls", s.calls)
	}

	// Different content misses the cache.
	batch := inputs("a.txt")
	batch[0].CleanedText = "entirely different content"
	svc.Run(context.Background(), batch)
	if s.calls != 2 {
		t.Fatalf("changed content must miss the cache, got %d calls", s.calls)
	}
}

func TestServiceFailedItemsNotCached(t *testing.T) {
	s := &scriptedSummarizer{fail: map[string]error{"a.txt": errors.New("boom")}}
	cache := newMemoryCache()
	svc := NewService(s, cache, nil)

	svc.Run(context.Background(), inputs("a.txt"))
	if len(cache.store) != 0 {
		t.Fatalf("failures must not be cached: %v", cache.store)
	}
}
