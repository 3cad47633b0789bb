package notes

import (
	"testing"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

func TestNewSummarizerDefaultsToMock(t *testing.T) {
	for _, backend := range []string{"", "mock"} {
		cfg := &config.Config{}
		cfg.Summarizer.Backend = backend
		s, err := NewSummarizer(cfg, nil)
		if err != nil {
			t.Fatalf("backend %q: unexpected error %v", backend, err)
		}
		if _, ok := s.(*MockSummarizer); !ok {
			t.Fatalf("backend %q: got %T", backend, s)
		}
	}
}

func TestNewSummarizerUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Summarizer.Backend = "bard"
	_, err := NewSummarizer(cfg, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperrors.IsConfig(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestNewSummarizerOpenAIRequiresKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Summarizer.Backend = config.BackendOpenAI
	_, err := NewSummarizer(cfg, nil)
	if err == nil {
		t.Fatal("expected missing-credential error")
	}
	if !apperrors.IsConfig(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
