package notes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

// SummaryCache caches note records keyed by prompt digest. Implementations
// must be safe to call with a canceled context; cache failures are advisory.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*entities.OpportunityNotes, bool)
	Set(ctx context.Context, key string, n *entities.OpportunityNotes)
}

// Service drives a batch of transcripts through the summarizer, strictly one
// at a time in submission order. The i-th note always corresponds to the i-th
// successful input; failed items are recorded per filename and never abort
// the batch.
type Service struct {
	summarizer Summarizer
	cache      SummaryCache
	logger     *zap.Logger
}

// NewService constructs the batch service. cache may be nil.
func NewService(summarizer Summarizer, cache SummaryCache, logger *zap.Logger) *Service {
	return &Service{summarizer: summarizer, cache: cache, logger: logger}
}

// BuildTranscript normalizes raw text and freezes it together with its
// metadata into a TranscriptInput.
func BuildTranscript(filename, rawText string, md entities.TranscriptMetadata) entities.TranscriptInput {
	return entities.TranscriptInput{
		Filename:    filename,
		RawText:     rawText,
		CleanedText: Clean(filename, rawText),
		Metadata:    md,
	}
}

// Run summarizes every transcript in order and returns the assembled run.
// A backend failure on one item is recorded as a failure entry and processing
// continues with the next item.
func (s *Service) Run(ctx context.Context, transcripts []entities.TranscriptInput) *entities.RunResult {
	run := entities.NewRunResult(s.summarizer.Name())

	for i := range transcripts {
		t := &transcripts[i]

		n, err := s.summarizeOne(ctx, t)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("transcript failed",
					zap.String("run_id", run.RunID),
					zap.String("filename", t.Filename),
					zap.Error(err),
				)
			}
			run.Failures = append(run.Failures, entities.RunFailure{
				Filename: t.Filename,
				Message:  err.Error(),
			})
			continue
		}

		n.BackfillIdentity(t.Metadata)
		run.Notes = append(run.Notes, *n)
	}

	if s.logger != nil {
		s.logger.Info("run complete",
			zap.String("run_id", run.RunID),
			zap.String("backend", run.Backend),
			zap.Int("notes", len(run.Notes)),
			zap.Int("failures", len(run.Failures)),
		)
	}
	return run
}

func (s *Service) summarizeOne(ctx context.Context, t *entities.TranscriptInput) (*entities.OpportunityNotes, error) {
	key := s.cacheKey(t)

	if s.cache != nil {
		if n, ok := s.cache.Get(ctx, key); ok {
			if s.logger != nil {
				s.logger.Debug("summary cache hit", zap.String("filename", t.Filename))
			}
			return n, nil
		}
	}

	n, err := s.summarizer.Summarize(ctx, t)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, n)
	}
	return n, nil
}

// cacheKey digests the summarizer identity together with the full prompt, so
// any change to metadata, transcript text or prompt layout misses the cache.
func (s *Service) cacheKey(t *entities.TranscriptInput) string {
	h := sha256.New()
	h.Write([]byte(s.summarizer.Name()))
	h.Write([]byte{0})
	h.Write([]byte(BuildNotesPrompt(t)))
	return "notes:" + hex.EncodeToString(h.Sum(nil))
}
