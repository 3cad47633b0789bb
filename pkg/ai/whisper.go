package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

const transcribeTimeout = 180 * time.Second

// WhisperClient transcribes audio through a hosted transcription endpoint
// using multipart upload.
type WhisperClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewWhisperClient creates a transcription client from config. A missing API
// key is a fatal configuration error.
func NewWhisperClient(cfg *config.OpenAIConfig) (*WhisperClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.ErrMissingCredential("OPENAI_API_KEY")
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com"
	}

	return &WhisperClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: base,
		model:   cfg.AudioModel,
		client:  &http.Client{Timeout: transcribeTimeout},
	}, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads raw audio bytes and returns the recognized plain text.
// language is an optional hint. Empty resulting text is a failure.
func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", err
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return "", err
	}
	if language != "" {
		if err := mw.WriteField("language", language); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("transcription returned status %d", resp.StatusCode)
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return strings.TrimSpace(tr.Text), nil
}
