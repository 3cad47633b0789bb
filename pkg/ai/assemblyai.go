package ai

import (
	"bytes"
	"context"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// AssemblyAIClient transcribes audio through the official AssemblyAI SDK.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client from config.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) (*AssemblyAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.ErrMissingCredential("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{client: aai.NewClient(cfg.APIKey)}, nil
}

// Transcribe uploads raw audio bytes, waits for the transcript to complete
// and returns the recognized plain text.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte, _ string, language string) (string, error) {
	params := &aai.TranscriptOptionalParams{}
	if language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(language)
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, bytes.NewReader(audio), params)
	if err != nil {
		return "", err
	}
	if transcript.Text == nil {
		return "", nil
	}
	return strings.TrimSpace(*transcript.Text), nil
}
