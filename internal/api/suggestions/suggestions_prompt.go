package suggestions

import (
	"encoding/json"
	"fmt"
	"strings"
)

func buildEnrichmentPrompt(name, city, category, address string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are writing factual travel content about %q in %s.\n", name, city)
	if category != "" {
		fmt.Fprintf(&sb, "It is categorized as: %s.\n", category)
	}
	if address != "" {
		fmt.Fprintf(&sb, "Its address is: %s.\n", address)
	}
	sb.WriteString(`
Write:
1. A factual description of 1-2 sentences. No opinions, no superlatives.
2. Exactly one fun fact sentence of 12 to 25 words containing a concrete
   detail: a number, a year, a measurement, or a specific name. Never use
   marketing language ("popular", "must-visit", "hidden gem", "stunning").

Respond with STRICT JSON, no markdown fences, no additional text:
{"description": "...", "funFact": "..."}
`)
	return sb.String()
}

type enrichmentCandidate struct {
	Description string `json:"description"`
	FunFact     string `json:"funFact"`
}

// parseEnrichmentResponse extracts the description/funFact object from raw
// model output, tolerating code fences and surrounding chatter.
func parseEnrichmentResponse(raw string) *enrichmentCandidate {
	cleaned := stripCodeFences(raw)

	var cand enrichmentCandidate
	if err := json.Unmarshal([]byte(cleaned), &cand); err == nil && cand.Description != "" {
		return &cand
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &cand); err == nil && cand.Description != "" {
			return &cand
		}
	}
	return nil
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	return strings.TrimSpace(cleaned)
}
