package notes

import (
	"strings"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	in := "Hello   world\r\nSecond\tline\n\n\n\n\nAfter blanks   "
	got := NormalizeWhitespace(in)
	want := "Hello world\nSecond line\n\nAfter blanks"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeWhitespaceIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\r\nb\r\nc",
		"x\n\n\n\n\ny",
		"  padded\t\twith   tabs  ",
	}
	for _, in := range inputs {
		once := NormalizeWhitespace(in)
		twice := NormalizeWhitespace(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestStripVTT(t *testing.T) {
	in := "WEBVTT\n\n00:00:01.000 --> 00:00:04.000\nHello from the call.\n\n00:00:05.000 --> 00:00:09.000 align:start\nSecond caption line.\n"
	got := StripVTT(in)

	if strings.Contains(got, "WEBVTT") {
		t.Fatalf("header survived: %q", got)
	}
	if strings.Contains(got, "-->") {
		t.Fatalf("timestamps survived: %q", got)
	}
	if !strings.Contains(got, "Hello from the call.") || !strings.Contains(got, "Second caption line.") {
		t.Fatalf("caption text lost: %q", got)
	}
}

func TestStripVTTWithBOMAndCueSettings(t *testing.T) {
	in := "\ufeffWEBVTT - metadata header\n\nalign:middle\n00:00:01.500 --> 00:00:02.500\nOnly caption.\n"
	got := StripVTT(in)
	if got != "Only caption." {
		t.Fatalf("got %q", got)
	}
}

func TestStripSRT(t *testing.T) {
	in := "1\n00:00:01,000 --> 00:00:04,000\nFirst caption.\n\n2\n00:00:05,000 --> 00:00:08,000\nSecond caption.\n"
	got := StripSRT(in)

	if strings.Contains(got, "-->") {
		t.Fatalf("timestamps survived: %q", got)
	}
	if !strings.Contains(got, "First caption.") || !strings.Contains(got, "Second caption.") {
		t.Fatalf("caption text lost: %q", got)
	}
	// Bare index lines must go, but numbers inside captions stay.
	if strings.HasPrefix(got, "1\n") {
		t.Fatalf("index line survived: %q", got)
	}
}

func TestCleanDispatchesOnExtension(t *testing.T) {
	vtt := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nCaption.\n"
	if got := Clean("call.VTT", vtt); got != "Caption." {
		t.Fatalf("vtt dispatch: got %q", got)
	}

	srt := "1\n00:00:01,000 --> 00:00:02,000\nCaption.\n"
	if got := Clean("call.srt", srt); got != "Caption." {
		t.Fatalf("srt dispatch: got %q", got)
	}

	if got := Clean("call.txt", "  plain   text  "); got != "plain text" {
		t.Fatalf("txt dispatch: got %q", got)
	}

	// Unknown extension degrades to whitespace normalization.
	if got := Clean("call.bin", "a\r\nb"); got != "a\nb" {
		t.Fatalf("unknown dispatch: got %q", got)
	}
}
