package quiz

import (
	"encoding/json"
	"strings"
)

// triviaCandidate is the optimistic shape of one model-produced question
// before validation.
type triviaCandidate struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	FunFact      string   `json:"funFact"`
}

// parseTriviaResponse parses model output: strict parse first, then a
// bracket-scanning recovery parse. Malformed output is an expected, frequent
// condition and yields an empty slice, never an error.
func parseTriviaResponse(raw string) []triviaCandidate {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil
	}

	if candidates, ok := tryParse(cleaned); ok {
		return candidates
	}

	// Recovery pass: extract the first top-level array, else object.
	if extracted := extractDelimited(cleaned, '[', ']'); extracted != "" {
		if candidates, ok := tryParse(extracted); ok {
			return candidates
		}
	}
	if extracted := extractDelimited(cleaned, '{', '}'); extracted != "" {
		if candidates, ok := tryParse(extracted); ok {
			return candidates
		}
	}
	return nil
}

func tryParse(s string) ([]triviaCandidate, bool) {
	var direct []triviaCandidate
	if err := json.Unmarshal([]byte(s), &direct); err == nil {
		return direct, true
	}

	// Some model runs wrap the array in an envelope object.
	var wrapped struct {
		Questions []triviaCandidate `json:"questions"`
	}
	if err := json.Unmarshal([]byte(s), &wrapped); err == nil && len(wrapped.Questions) > 0 {
		return wrapped.Questions, true
	}
	return nil, false
}

// stripCodeFences removes markdown fence markers the model tends to add
// around JSON output.
func stripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	return strings.TrimSpace(response)
}

// extractDelimited returns the substring from the first open delimiter to
// the last matching close delimiter, or "" when no such span exists.
func extractDelimited(s string, open, close byte) string {
	first := strings.IndexByte(s, open)
	if first == -1 {
		return ""
	}
	last := strings.LastIndexByte(s, close)
	if last == -1 || last <= first {
		return ""
	}
	return strings.TrimSpace(s[first : last+1])
}
