package notes

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

// listMarkers are the prefix characters stripped from newline-separated list
// fallbacks ("- item", "* item", "• item").
const listMarkers = "-•* \t"

// CoerceNotes validates and repairs an arbitrary decoded JSON object into a
// well-formed note record. It is the sole boundary between untrusted model
// output and the rest of the system: it never fails, malformed input degrades
// to empty or default fields.
func CoerceNotes(obj map[string]any) *entities.OpportunityNotes {
	if obj == nil {
		obj = map[string]any{}
	}

	return &entities.OpportunityNotes{
		OpportunityName: coerceString(obj["opportunity_name"]),
		AccountName:     coerceString(obj["account_name"]),
		OpportunityID:   coerceString(obj["opportunity_id"]),

		ExecutiveSummary:    coerceString(obj["executive_summary"]),
		OpportunityComments: coerceString(obj["opportunity_comments"]),

		CustomerPain:                coerceStringList(obj["customer_pain"]),
		UseCases:                    coerceStringList(obj["use_cases"]),
		Stakeholders:                coerceStringList(obj["stakeholders"]),
		CompetitorsOrAlternatives:   coerceStringList(obj["competitors_or_alternatives"]),
		ProductsOrFeaturesDiscussed: coerceStringList(obj["products_or_features_discussed"]),
		RisksOrBlockers:             coerceStringList(obj["risks_or_blockers"]),
		NextSteps:                   coerceStringList(obj["next_steps"]),
		OpenQuestions:               coerceStringList(obj["open_questions"]),

		Confidence: entities.ParseConfidence(coerceString(obj["confidence"])),
		Tags:       coerceStringList(obj["tags"]),

		ModelName: coerceString(obj["model_name"]),
		Debug:     coerceDebug(obj["debug"]),
	}
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; render integers without the ".0".
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceStringList(v any) []string {
	switch list := v.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(list))
		for _, el := range list {
			if el == nil {
				continue
			}
			if s := strings.TrimSpace(coerceString(el)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		// Newline-separated fallback with list-marker prefixes allowed.
		out := []string{}
		for _, line := range strings.Split(list, "\n") {
			line = strings.TrimSpace(strings.Trim(line, listMarkers))
			if line != "" {
				out = append(out, line)
			}
		}
		return out
	default:
		if s := strings.TrimSpace(coerceString(v)); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

func coerceDebug(v any) datatypes.JSONMap {
	if m, ok := v.(map[string]any); ok {
		return datatypes.JSONMap(m)
	}
	return datatypes.JSONMap{}
}
