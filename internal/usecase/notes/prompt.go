package notes

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

// noteSchema is the model-facing shape of a note record. The schema hint
// embedded in the prompt is reflected from this struct, so the prompt and the
// coercer stay aligned on field names.
type noteSchema struct {
	OpportunityName             string   `json:"opportunity_name"`
	AccountName                 string   `json:"account_name"`
	ExecutiveSummary            string   `json:"executive_summary" jsonschema:"description=1-3 sentences"`
	OpportunityComments         string   `json:"opportunity_comments" jsonschema:"description=Ready-to-paste Salesforce entry: header line '<INITIALS> - <YYYY.MM.DD>' then 2-4 bullets starting with '* '"`
	CustomerPain                []string `json:"customer_pain"`
	UseCases                    []string `json:"use_cases"`
	Stakeholders                []string `json:"stakeholders"`
	CompetitorsOrAlternatives   []string `json:"competitors_or_alternatives"`
	ProductsOrFeaturesDiscussed []string `json:"products_or_features_discussed"`
	RisksOrBlockers             []string `json:"risks_or_blockers"`
	NextSteps                   []string `json:"next_steps"`
	OpenQuestions               []string `json:"open_questions"`
	Confidence                  string   `json:"confidence" jsonschema:"enum=low,enum=medium,enum=high"`
	Tags                        []string `json:"tags"`
}

// promptMetadata serializes the transcript context into the prompt in a fixed
// field order.
type promptMetadata struct {
	OpportunityName string          `json:"opportunity_name"`
	AccountName     string          `json:"account_name"`
	CallDate        *string         `json:"call_date"`
	Source          entities.Source `json:"source"`
	Owner           string          `json:"owner"`
	Stage           string          `json:"stage"`
	Filename        string          `json:"filename"`
}

var (
	schemaHintOnce sync.Once
	schemaHint     string
)

// schemaHintJSON renders the note schema's properties as a JSON object mapping
// field name to type/description. Reflection follows struct field order, so
// the output is deterministic.
func schemaHintJSON() string {
	schemaHintOnce.Do(func() {
		r := &jsonschema.Reflector{
			DoNotReference:            true,
			AllowAdditionalProperties: true,
		}
		s := r.Reflect(&noteSchema{})
		b, err := json.Marshal(s.Properties)
		if err != nil {
			// Reflection of a plain struct cannot fail to marshal; guard anyway.
			b = []byte("{}")
		}
		schemaHint = string(b)
	})
	return schemaHint
}

const promptInstructions = `You are a senior sales engineer writing concise Salesforce pipeline notes.

Goal: produce VERY concise, high-signal notes that help an AE/SE update the opportunity quickly.

Constraints:
- Output MUST be valid JSON (no markdown, no code fences, no commentary).
- Keep executive_summary to 1-3 sentences.
- opportunity_comments MUST be a ready-to-paste Salesforce "Opportunity Comments" entry:
  - First line: "<INITIALS> - <YYYY.MM.DD>"
  - Then 2-4 bullets, each starting with "* "
  - Bullets should focus on next steps, risks/blockers, and critical updates for leadership
  - Keep each bullet <= ~18 words
- Prefer short bullet-like strings in arrays (max ~12 words each).
- If unknown, use empty string or empty array (not null), except call_date which is already provided above.`

// BuildNotesPrompt renders the full prompt for one transcript: fixed
// instructions, serialized metadata, the schema hint and the cleaned
// transcript appended verbatim. Pure function of its input.
func BuildNotesPrompt(t *entities.TranscriptInput) string {
	md := t.Metadata

	var callDate *string
	if md.CallDate != nil {
		d := md.CallDate.Format("2006-01-02")
		callDate = &d
	}

	metaJSON, err := json.Marshal(promptMetadata{
		OpportunityName: md.OpportunityName,
		AccountName:     md.AccountName,
		CallDate:        callDate,
		Source:          md.Source,
		Owner:           md.Owner,
		Stage:           md.Stage,
		Filename:        t.Filename,
	})
	if err != nil {
		metaJSON = []byte("{}")
	}

	return fmt.Sprintf(`%s

Metadata (authoritative if filled in):
%s

Return JSON with this shape:
%s

Transcript:
%s
`, promptInstructions, metaJSON, schemaHintJSON(), t.CleanedText)
}
