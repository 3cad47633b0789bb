package entities

import (
	"strings"

	"gorm.io/datatypes"
)

// Confidence is the model's self-reported confidence in a note set.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ParseConfidence maps an arbitrary string to a Confidence. Anything outside
// the three known values becomes ConfidenceMedium.
func ParseConfidence(s string) Confidence {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceLow:
		return ConfidenceLow
	case ConfidenceHigh:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// OpportunityNotes is the structured note record produced from one transcript.
//
// Every list field holds only non-empty, trimmed strings. A note set is created
// by a summarizer and mutated exactly once afterwards, to backfill the
// opportunity identity from transcript metadata when the backend omitted it.
type OpportunityNotes struct {
	OpportunityName string `json:"opportunity_name"`
	AccountName     string `json:"account_name"`
	OpportunityID   string `json:"opportunity_id"`

	ExecutiveSummary    string `json:"executive_summary"`
	OpportunityComments string `json:"opportunity_comments"`

	CustomerPain                []string `json:"customer_pain"`
	UseCases                    []string `json:"use_cases"`
	Stakeholders                []string `json:"stakeholders"`
	CompetitorsOrAlternatives   []string `json:"competitors_or_alternatives"`
	ProductsOrFeaturesDiscussed []string `json:"products_or_features_discussed"`
	RisksOrBlockers             []string `json:"risks_or_blockers"`
	NextSteps                   []string `json:"next_steps"`
	OpenQuestions               []string `json:"open_questions"`

	Confidence Confidence `json:"confidence"`
	Tags       []string   `json:"tags"`

	ModelName string            `json:"model_name"`
	Debug     datatypes.JSONMap `json:"debug,omitempty"`
}

// BackfillIdentity fills blank opportunity identity fields from transcript
// metadata. This is the single permitted post-construction mutation.
func (n *OpportunityNotes) BackfillIdentity(md TranscriptMetadata) {
	if n.OpportunityName == "" {
		n.OpportunityName = md.OpportunityName
	}
	if n.AccountName == "" {
		n.AccountName = md.AccountName
	}
	if n.OpportunityID == "" {
		n.OpportunityID = md.OpportunityID
	}
}
