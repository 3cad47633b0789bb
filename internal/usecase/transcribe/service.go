package transcribe

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	pkgai "github.com/salesnotes/sfdc-notes-agent/pkg/ai"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// Transcriber converts raw audio bytes into plain text.
type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error)
}

// NewTranscriber maps the configured transcription backend to a constructed
// instance. "none" yields a transcriber whose calls fail with a configuration
// error, so the selection surfaces at the call site rather than at startup.
func NewTranscriber(cfg *config.Config, logger *zap.Logger) (Transcriber, error) {
	switch cfg.Transcription.Backend {
	case config.TranscriptionNone, "":
		return &disabled{}, nil

	case config.TranscriptionOpenAI:
		client, err := pkgai.NewWhisperClient(&cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		return &hosted{name: "whisper:" + cfg.OpenAI.AudioModel, client: client, logger: logger}, nil

	case config.TranscriptionAssemblyAI:
		client, err := pkgai.NewAssemblyAIClient(&cfg.AssemblyAI)
		if err != nil {
			return nil, err
		}
		return &hosted{name: "assemblyai", client: client, logger: logger}, nil

	default:
		return nil, apperrors.ErrUnknownBackend("transcription", cfg.Transcription.Backend)
	}
}

type disabled struct{}

func (d *disabled) Name() string { return "disabled" }

func (d *disabled) Transcribe(context.Context, []byte, string, string) (string, error) {
	return "", apperrors.ErrConfigInvalid("transcription backend is disabled; set TRANSCRIPTION_BACKEND to enable audio uploads")
}

// audioClient is the capability both hosted backends expose.
type audioClient interface {
	Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error)
}

type hosted struct {
	name   string
	client audioClient
	logger *zap.Logger
}

func (h *hosted) Name() string { return h.name }

func (h *hosted) Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error) {
	text, err := h.client.Transcribe(ctx, audio, filename, language)
	if err != nil {
		return "", apperrors.ErrTranscriptionFailed(err)
	}
	if text == "" {
		return "", apperrors.ErrTranscriptionEmpty()
	}
	if h.logger != nil {
		h.logger.Info("audio transcribed",
			zap.String("backend", h.name),
			zap.String("filename", filename),
			zap.Int("chars", len(text)),
		)
	}
	return text, nil
}
