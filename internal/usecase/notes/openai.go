package notes

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	pkgai "github.com/salesnotes/sfdc-notes-agent/pkg/ai"
)

// OpenAISummarizer summarizes through a hosted chat-completion endpoint in
// JSON-response mode. The response content must be a JSON object outright;
// this backend does not get the prose-tolerant extraction the warehouse
// channel needs.
type OpenAISummarizer struct {
	client *pkgai.OpenAIClient
	model  string
	logger *zap.Logger
}

// NewOpenAISummarizer wraps an already-constructed client. Credential checks
// happen at client construction, not per item.
func NewOpenAISummarizer(client *pkgai.OpenAIClient, model string, logger *zap.Logger) *OpenAISummarizer {
	return &OpenAISummarizer{client: client, model: model, logger: logger}
}

func (s *OpenAISummarizer) Name() string { return "OpenAISummarizer" }

func (s *OpenAISummarizer) Summarize(ctx context.Context, t *entities.TranscriptInput) (*entities.OpportunityNotes, error) {
	prompt := BuildNotesPrompt(t)

	content, err := s.client.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, apperrors.ErrSummaryBackendFailed("openai", err)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return nil, apperrors.ErrSummaryParseFailed(err)
	}

	if s.logger != nil {
		s.logger.Debug("openai completion parsed",
			zap.String("filename", t.Filename),
			zap.Int("content_len", len(content)),
		)
	}

	n := CoerceNotes(obj)
	n.ModelName = s.model
	return n, nil
}
