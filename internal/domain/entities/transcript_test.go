package entities

import (
	"strings"
	"testing"
)

func TestGuessOpportunityName(t *testing.T) {
	cases := map[string]string{
		"acme_renewal_2025.vtt":     "acme renewal 2025",
		"big-deal-call.txt":         "big deal call",
		"/tmp/uploads/acme_q3.srt":  "acme q3",
		"plain":                     "plain",
		"___":                       "",
	}
	for in, want := range cases {
		if got := GuessOpportunityName(in); got != want {
			t.Fatalf("GuessOpportunityName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGuessOpportunityNameCapped(t *testing.T) {
	long := strings.Repeat("a", 200) + ".txt"
	got := GuessOpportunityName(long)
	if len(got) > 80 {
		t.Fatalf("name too long: %d chars", len(got))
	}
}

func TestDecodeTranscriptBytesUTF8(t *testing.T) {
	in := []byte("héllo wörld")
	if got := DecodeTranscriptBytes(in); got != "héllo wörld" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeTranscriptBytesLatin1Fallback(t *testing.T) {
	// 0xE9 is 'é' in Latin-1 but invalid standalone UTF-8.
	in := []byte{'c', 'a', 'f', 0xE9}
	if got := DecodeTranscriptBytes(in); got != "café" {
		t.Fatalf("got %q", got)
	}
}

func TestParseSource(t *testing.T) {
	cases := map[string]Source{
		"gong":    SourceGong,
		" Zoom ":  SourceZoom,
		"teams":   SourceOther,
		"":        SourceOther,
	}
	for in, want := range cases {
		if got := ParseSource(in); got != want {
			t.Fatalf("ParseSource(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if !strings.HasPrefix(a, "run_") {
		t.Fatalf("got %q", a)
	}
	if a == b {
		t.Fatalf("run ids must be unique: %q", a)
	}
	parts := strings.Split(a, "_")
	if len(parts) != 3 || len(parts[2]) != 6 {
		t.Fatalf("unexpected shape %q", a)
	}
}
