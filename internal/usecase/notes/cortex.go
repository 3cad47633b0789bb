package notes

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	pkgai "github.com/salesnotes/sfdc-notes-agent/pkg/ai"
)

// CortexSummarizer runs the prompt through a warehouse-hosted completion
// function over SQL. The response column is free text, not guaranteed JSON,
// so extraction goes through ParseModelResponse.
type CortexSummarizer struct {
	client *pkgai.CortexClient
	model  string
	logger *zap.Logger
}

// NewCortexSummarizer wraps an already-connected Cortex client.
func NewCortexSummarizer(client *pkgai.CortexClient, model string, logger *zap.Logger) *CortexSummarizer {
	return &CortexSummarizer{client: client, model: model, logger: logger}
}

func (s *CortexSummarizer) Name() string { return "CortexSummarizer" }

// Close releases the warehouse session.
func (s *CortexSummarizer) Close() error { return s.client.Close() }

func (s *CortexSummarizer) Summarize(ctx context.Context, t *entities.TranscriptInput) (*entities.OpportunityNotes, error) {
	prompt := BuildNotesPrompt(t)

	content, err := s.client.Complete(ctx, s.model, prompt)
	if err != nil {
		if errors.Is(err, pkgai.ErrEmptyCompletion) {
			return nil, apperrors.ErrSummaryEmptyResponse("cortex")
		}
		return nil, apperrors.ErrSummaryBackendFailed("cortex", err)
	}

	obj, err := ParseModelResponse(content)
	if err != nil {
		return nil, apperrors.ErrSummaryParseFailed(err)
	}

	if s.logger != nil {
		s.logger.Debug("cortex completion parsed",
			zap.String("filename", t.Filename),
			zap.String("model", s.model),
		)
	}

	n := CoerceNotes(obj)
	n.ModelName = "cortex:" + s.model
	return n, nil
}
