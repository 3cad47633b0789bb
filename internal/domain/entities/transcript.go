package entities

import (
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Source identifies where a transcript came from.
type Source string

const (
	SourceGong  Source = "gong"
	SourceZoom  Source = "zoom"
	SourceOther Source = "other"
)

// ParseSource maps an arbitrary string to a known Source, defaulting to SourceOther.
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceGong:
		return SourceGong
	case SourceZoom:
		return SourceZoom
	default:
		return SourceOther
	}
}

// TranscriptMetadata carries the opportunity context attached to one transcript.
// All fields are optional; it is not mutated after the TranscriptInput is built.
type TranscriptMetadata struct {
	OpportunityName string     `json:"opportunity_name"`
	AccountName     string     `json:"account_name"`
	OpportunityID   string     `json:"opportunity_id"`
	CallDate        *time.Time `json:"call_date,omitempty"`
	Source          Source     `json:"source"`
	Owner           string     `json:"owner"`
	Stage           string     `json:"stage"`
}

// TranscriptInput is one uploaded or typed transcript, created once per item
// and never mutated after normalization.
type TranscriptInput struct {
	Filename    string             `json:"filename"`
	RawText     string             `json:"raw_text"`
	CleanedText string             `json:"cleaned_text"`
	Metadata    TranscriptMetadata `json:"metadata"`
}

// GuessOpportunityName derives a default opportunity name from a transcript
// filename: extension dropped, separators replaced with spaces, capped at 80 chars.
func GuessOpportunityName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.TrimSpace(base)
	if len(base) > 80 {
		base = strings.TrimSpace(base[:80])
	}
	return base
}

// DecodeTranscriptBytes decodes uploaded transcript bytes as UTF-8, falling back
// to a Latin-1 reinterpretation when the bytes are not valid UTF-8.
func DecodeTranscriptBytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	runes := make([]rune, 0, len(b))
	for _, c := range b {
		runes = append(runes, rune(c))
	}
	return string(runes)
}
