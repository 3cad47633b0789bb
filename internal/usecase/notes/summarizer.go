package notes

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	pkgai "github.com/salesnotes/sfdc-notes-agent/pkg/ai"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// Summarizer turns one transcript into one note record. An error is a
// per-item failure; the batch driver records it and moves on.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, t *entities.TranscriptInput) (*entities.OpportunityNotes, error)
}

// NewSummarizer maps the configured backend selector to a constructed
// summarizer. An unrecognized selector is a fatal configuration error.
// Missing credentials for a selected backend surface here, before any
// per-item work begins.
func NewSummarizer(cfg *config.Config, logger *zap.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Backend {
	case config.BackendMock, "":
		return NewMockSummarizer(cfg.Summarizer.Initials), nil

	case config.BackendOpenAI:
		client, err := pkgai.NewOpenAIClient(&cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		return NewOpenAISummarizer(client, cfg.OpenAI.Model, logger), nil

	case config.BackendCortex, "snowflake", "snowflake_cortex":
		client, err := pkgai.NewCortexClient(&cfg.Snowflake)
		if err != nil {
			return nil, err
		}
		return NewCortexSummarizer(client, cfg.Snowflake.Model, logger), nil

	default:
		return nil, apperrors.ErrUnknownBackend("summarizer", cfg.Summarizer.Backend)
	}
}
