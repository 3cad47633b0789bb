package notes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError classifies a model response that could not be turned into a JSON
// object. Excerpt carries up to 400 characters of the offending response with
// newlines escaped, for diagnostics.
type ParseError struct {
	Reason  string
	Excerpt string
}

func (e *ParseError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("model response not parseable: %s", e.Reason)
	}
	return fmt.Sprintf("model response not parseable: %s: %q", e.Reason, e.Excerpt)
}

// ParseModelResponse extracts a JSON object from a model completion. The
// warehouse response channel is not guaranteed to contain pure JSON;
// completions frequently wrap the payload in conversational prose. Two tiers:
// a direct parse, then the substring between the first '{' and the last '}'.
// Only JSON objects are accepted, never arrays or scalars.
func ParseModelResponse(content any) (map[string]any, error) {
	switch c := content.(type) {
	case map[string]any:
		return c, nil
	case nil:
		return nil, &ParseError{Reason: "empty response"}
	case string:
		return parseTextResponse(c)
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("unexpected type %T", content)}
	}
}

func parseTextResponse(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ParseError{Reason: "empty response"}
	}

	if obj, ok := tryParseObject(trimmed); ok {
		return obj, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if obj, ok := tryParseObject(trimmed[start : end+1]); ok {
			return obj, nil
		}
	}

	return nil, &ParseError{Reason: "no JSON object found", Excerpt: excerpt(trimmed)}
}

func tryParseObject(s string) (map[string]any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

func excerpt(s string) string {
	if len(s) > 400 {
		s = s[:400]
	}
	return strings.ReplaceAll(s, "\n", `\n`)
}
