package suggestions

import (
	"strings"
	"unicode"
)

const (
	minFunFactWords        = 12
	minNumericFunFactWords = 6
	maxFunFactWords        = 25
)

// bannedFunFactPhrases are marketing filler the generator keeps reaching for.
// A fun fact containing any of them is worse than no fun fact.
var bannedFunFactPhrases = []string{
	"popular",
	"must-visit",
	"must see",
	"must-see",
	"well-known",
	"well known",
	"famous for its charm",
	"hidden gem",
	"breathtaking",
	"stunning",
	"vibrant",
	"bustling",
}

var measurementUnits = map[string]bool{
	"meters": true, "metres": true, "meter": true, "metre": true,
	"feet": true, "foot": true, "km": true, "kilometers": true,
	"kilometres": true, "miles": true, "tons": true, "tonnes": true,
	"kg": true, "hectares": true, "acres": true, "floors": true,
	"steps": true, "rooms": true, "seats": true, "years": true,
}

// acceptFunFact decides whether a generated fun fact is specific enough to
// show. A fact must be one sentence of at most 25 words, free of marketing
// phrases, and anchored by at least one concrete signal: a number, a
// four-digit year, a measurement unit, or a proper-noun token. The usual
// floor is 12 words, but a fact carrying a number earns a lower floor of 6:
// "Built in 1887, the tower weighs 10,100 tons." says more in eight words
// than most sentences manage in twenty.
func acceptFunFact(fact string) bool {
	fact = strings.TrimSpace(fact)
	if fact == "" {
		return false
	}

	lower := strings.ToLower(fact)
	for _, phrase := range bannedFunFactPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	words := strings.Fields(fact)
	minWords := minFunFactWords
	if hasNumericToken(words) {
		minWords = minNumericFunFactWords
	}
	if len(words) < minWords || len(words) > maxFunFactWords {
		return false
	}

	if countTerminalPunctuation(fact) > 1 {
		return false
	}

	return hasConcreteSignal(words)
}

func countTerminalPunctuation(s string) int {
	n := 0
	for _, r := range s {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	return n
}

func hasConcreteSignal(words []string) bool {
	for i, word := range words {
		trimmed := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if trimmed == "" {
			continue
		}

		// Numbers and years both land here.
		if containsDigit(trimmed) {
			return true
		}
		if measurementUnits[strings.ToLower(trimmed)] {
			return true
		}
		// Proper noun: capitalized token past the sentence start.
		if i > 0 && unicode.IsUpper([]rune(trimmed)[0]) {
			return true
		}
	}
	return false
}

func hasNumericToken(words []string) bool {
	for _, word := range words {
		if containsDigit(word) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

