package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

func TestCompleteJSON_Success(t *testing.T) {
	// Mock chat-completion server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Fatalf("expected json_object response format, got %+v", req.ResponseFormat)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "the prompt" {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"executive_summary": "ok"}`}},
			},
		})
	}))
	defer ts.Close()

	client, err := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", Model: "gpt-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("client init failed: %v", err)
	}

	content, err := client.CompleteJSON(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if content != `{"executive_summary": "ok"}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestCompleteJSON_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, err := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("client init failed: %v", err)
	}

	if _, err := client.CompleteJSON(context.Background(), "p"); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestCompleteJSON_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer ts.Close()

	client, err := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("client init failed: %v", err)
	}

	if _, err := client.CompleteJSON(context.Background(), "p"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient(&config.OpenAIConfig{APIKey: "  "}); err == nil {
		t.Fatal("expected missing-credential error")
	}
}
