package notes

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

const (
	mockMaxSummaryChars = 260
	mockMaxLineChars    = 140
	mockMinLineChars    = 5
	mockMaxNextSteps    = 6
	mockMaxOpenQs       = 5
)

var (
	nextStepPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bnext step\b`),
		regexp.MustCompile(`\bnext steps\b`),
		regexp.MustCompile(`\baction item\b`),
		regexp.MustCompile(`\bfollow[- ]?up\b`),
		regexp.MustCompile(`\bwe will\b`),
	}
	openQuestionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bquestion\b`),
		regexp.MustCompile(`\bopen question\b`),
		regexp.MustCompile(`\bunknown\b`),
	}

	sentenceEndRe = regexp.MustCompile(`(?:[.!?])\s+`)
	wsRunRe       = regexp.MustCompile(`\s+`)
)

// MockSummarizer produces notes from keyword heuristics with no external call.
// It always succeeds and exists to validate the pipeline end to end without
// any backend dependency. Confidence is fixed to "low".
type MockSummarizer struct {
	initials string
	now      func() time.Time
}

// NewMockSummarizer creates the heuristic summarizer. initials seeds the
// comments-block header when transcript metadata has no owner.
func NewMockSummarizer(initials string) *MockSummarizer {
	return &MockSummarizer{initials: initials, now: time.Now}
}

func (m *MockSummarizer) Name() string { return "MockSummarizer" }

func (m *MockSummarizer) Summarize(_ context.Context, t *entities.TranscriptInput) (*entities.OpportunityNotes, error) {
	md := t.Metadata
	text := t.CleanedText

	nextSteps := extractMatchingLines(text, nextStepPatterns, mockMaxNextSteps)
	openQs := extractMatchingLines(text, openQuestionPatterns, mockMaxOpenQs)

	summary := firstSentences(text, mockMaxSummaryChars)
	if summary == "" {
		summary = "Transcript uploaded. Enable an LLM backend for real summarization."
	}

	initials := m.initials
	if owner := strings.TrimSpace(md.Owner); owner != "" {
		initials = strings.Fields(owner)[0]
	}
	if len(initials) > 3 {
		initials = initials[:3]
	}
	initials = strings.ToUpper(initials)

	comments := strings.Join([]string{
		initials + " - " + m.now().Format("2006.01.02"),
		"* Enable an LLM backend (Cortex/OpenAI) for real summaries",
		"* Review transcript and confirm next steps & risks",
	}, "\n")

	return &entities.OpportunityNotes{
		OpportunityName:     md.OpportunityName,
		AccountName:         md.AccountName,
		OpportunityID:       md.OpportunityID,
		ExecutiveSummary:    summary,
		OpportunityComments: comments,
		CustomerPain:        []string{},
		UseCases:            []string{},
		Stakeholders:        []string{},
		CompetitorsOrAlternatives:   []string{},
		ProductsOrFeaturesDiscussed: []string{},
		RisksOrBlockers:             []string{},
		NextSteps:                   nextSteps,
		OpenQuestions:               openQs,
		Confidence:                  entities.ConfidenceLow,
		Tags:                        []string{},
		ModelName:                   m.Name(),
		Debug:                       datatypes.JSONMap{"source": "mock"},
	}, nil
}

// firstSentences returns the first 1-3 sentences of text, capped at maxChars,
// using a naive sentence split.
func firstSentences(text string, maxChars int) string {
	t := strings.TrimSpace(wsRunRe.ReplaceAllString(text, " "))
	if t == "" {
		return ""
	}

	parts := splitSentences(t)
	out := ""
	for i, p := range parts {
		if i >= 3 || p == "" {
			break
		}
		candidate := strings.TrimSpace(out + " " + p)
		if len(candidate) > maxChars && out != "" {
			break
		}
		out = candidate
		if len(out) >= maxChars {
			break
		}
	}
	if len(out) > maxChars {
		out = out[:maxChars]
	}
	return strings.TrimSpace(out)
}

// splitSentences splits after sentence-final punctuation, keeping the
// punctuation with the preceding sentence.
func splitSentences(t string) []string {
	idxs := sentenceEndRe.FindAllStringIndex(t, -1)
	if len(idxs) == 0 {
		return []string{t}
	}
	parts := make([]string, 0, len(idxs)+1)
	prev := 0
	for _, loc := range idxs {
		// loc[0]+1 keeps the terminator with the sentence.
		parts = append(parts, t[prev:loc[0]+1])
		prev = loc[1]
	}
	if prev < len(t) {
		parts = append(parts, t[prev:])
	}
	return parts
}

// extractMatchingLines returns up to limit transcript lines matching any of
// the patterns, case-insensitively, skipping short lines and near-duplicates.
func extractMatchingLines(text string, patterns []*regexp.Regexp, limit int) []string {
	hits := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.Trim(line, listMarkers)
		if len(line) < mockMinLineChars {
			continue
		}
		low := strings.ToLower(line)
		matched := false
		for _, p := range patterns {
			if p.MatchString(low) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		clipped := strings.TrimSpace(wsRunRe.ReplaceAllString(line, " "))
		if len(clipped) > mockMaxLineChars {
			clipped = clipped[:mockMaxLineChars]
		}
		if clipped == "" || contains(hits, clipped) {
			continue
		}
		hits = append(hits, clipped)
		if len(hits) >= limit {
			break
		}
	}
	return hits
}

func contains(list []string, s string) bool {
	for _, el := range list {
		if el == s {
			return true
		}
	}
	return false
}
