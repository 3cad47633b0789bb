package notes

import (
	"errors"
	"strings"
	"testing"
)

func TestParseModelResponseDirectJSON(t *testing.T) {
	obj, err := ParseModelResponse(`{"executive_summary": "short", "confidence": "high"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["confidence"] != "high" {
		t.Fatalf("got %v", obj)
	}
}

func TestParseModelResponseWrappedInProse(t *testing.T) {
	obj, err := ParseModelResponse("Sure! Here you go: {\"a\": 1} thanks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["a"] != float64(1) {
		t.Fatalf("got %v", obj)
	}
}

func TestParseModelResponseMapPassthrough(t *testing.T) {
	in := map[string]any{"x": "y"}
	obj, err := ParseModelResponse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["x"] != "y" {
		t.Fatalf("got %v", obj)
	}
}

func TestParseModelResponseEmpty(t *testing.T) {
	for _, in := range []any{nil, "", "   \n  "} {
		_, err := ParseModelResponse(in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("input %v: expected ParseError, got %v", in, err)
		}
		if perr.Reason != "empty response" {
			t.Fatalf("input %v: got reason %q", in, perr.Reason)
		}
	}
}

func TestParseModelResponseArrayRejected(t *testing.T) {
	_, err := ParseModelResponse(`[1, 2, 3]`)
	if err == nil {
		t.Fatal("expected error for a JSON array")
	}
}

func TestParseModelResponseGarbageCarriesExcerpt(t *testing.T) {
	_, err := ParseModelResponse("not json\nat all")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Excerpt == "" {
		t.Fatal("expected excerpt")
	}
	if strings.Contains(perr.Excerpt, "\n") {
		t.Fatalf("excerpt must escape newlines: %q", perr.Excerpt)
	}
}

func TestParseModelResponseExcerptCapped(t *testing.T) {
	long := strings.Repeat("x", 1000)
	_, err := ParseModelResponse(long)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(perr.Excerpt) > 400 {
		t.Fatalf("excerpt too long: %d", len(perr.Excerpt))
	}
}

func TestParseModelResponseUnexpectedType(t *testing.T) {
	_, err := ParseModelResponse(42)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(perr.Reason, "unexpected type") {
		t.Fatalf("got reason %q", perr.Reason)
	}
}
