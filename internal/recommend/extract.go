package recommend

import (
	"encoding/json"
	"strings"
)

// rawCourse mirrors a course object as the provider emits it. The score is a
// pointer so an omitted score is distinguishable from an explicit zero;
// similarity_score is an accepted legacy alias for relevance_score.
type rawCourse struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	Prerequisites   []string `json:"prerequisites"`
	Price           string   `json:"price"`
	Difficulty      string   `json:"difficulty"`
	Duration        string   `json:"duration"`
	Roadmap         []string `json:"roadmap"`
	RelevanceScore  *float64 `json:"relevance_score"`
	SimilarityScore *float64 `json:"similarity_score"`
}

// score returns the provider-declared score, honoring the legacy alias, and
// whether any score was present.
func (c *rawCourse) score() (float64, bool) {
	if c.RelevanceScore != nil {
		return *c.RelevanceScore, true
	}
	if c.SimilarityScore != nil {
		return *c.SimilarityScore, true
	}
	return 0, false
}

// ExtractCandidate recovers the JSON candidate substring from free-form
// provider text. Markdown code fences are stripped first, then the minimal
// substring from the first '{' to the last '}' is taken; if no such
// delimiters exist the whole text is the candidate. Idempotent.
func ExtractCandidate(raw string) string {
	text := stripFences(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}

// stripFences removes markdown code block wrappers. Providers often wrap JSON
// in ```json ... ``` even when instructed not to.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// parseBatch decodes a JSON candidate into raw course entries. The candidate
// must be an object carrying a non-empty courses array; the array elements
// are shape-checked by the caller, not here.
func parseBatch(raw, candidate string) ([]rawCourse, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return nil, &UnparsableError{
			RawText: raw,
			Message: "candidate is not a JSON object",
			Cause:   err,
		}
	}

	coursesRaw, ok := probe["courses"]
	if !ok {
		return nil, &UnparsableError{
			RawText: raw,
			Message: "response has no courses field",
		}
	}

	var courses []rawCourse
	if err := json.Unmarshal(coursesRaw, &courses); err != nil {
		return nil, &UnparsableError{
			RawText: raw,
			Message: "courses field is not a course array",
			Cause:   err,
		}
	}

	if len(courses) == 0 {
		return nil, &UnparsableError{
			RawText: raw,
			Message: "no courses found in response",
		}
	}

	return courses, nil
}
