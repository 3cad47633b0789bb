package notes

import (
	"regexp"
	"strings"
)

var (
	vttHeaderRe    = regexp.MustCompile(`(?im)^\x{FEFF}?WEBVTT.*$`)
	vttTimestampRe = regexp.MustCompile(`(?m)^\d{2}:\d{2}:\d{2}\.\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}\.\d{3}.*$`)
	cueSettingRe   = regexp.MustCompile(`(?im)^(align|position|size|line):.*$`)

	srtIndexRe     = regexp.MustCompile(`(?m)^\d+\s*$`)
	srtTimestampRe = regexp.MustCompile(`(?m)^\d{2}:\d{2}:\d{2},\d{3}\s+-->\s+\d{2}:\d{2}:\d{2},\d{3}.*$`)

	hspaceRe   = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace canonicalizes line endings, collapses runs of horizontal
// whitespace to one space, collapses 3+ blank lines to exactly one blank line
// and trims the result. Idempotent.
func NormalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = hspaceRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// StripVTT removes WebVTT header, timestamp and cue-setting lines, keeping only
// caption text.
func StripVTT(text string) string {
	t := vttHeaderRe.ReplaceAllString(text, "")
	t = vttTimestampRe.ReplaceAllString(t, "")
	t = cueSettingRe.ReplaceAllString(t, "")
	return NormalizeWhitespace(t)
}

// StripSRT removes SubRip index and timestamp lines, keeping only caption text.
func StripSRT(text string) string {
	t := srtIndexRe.ReplaceAllString(text, "")
	t = srtTimestampRe.ReplaceAllString(t, "")
	return NormalizeWhitespace(t)
}

// Clean normalizes raw transcript text, dispatching on the filename extension.
// Unrecognized formats degrade to whitespace normalization only; Clean never
// fails.
func Clean(filename, rawText string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".vtt"):
		return StripVTT(rawText)
	case strings.HasSuffix(lower, ".srt"):
		return StripSRT(rawText)
	default:
		return NormalizeWhitespace(rawText)
	}
}
