package quiz

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

const minFunFactLen = 5

// genericPatterns is the POI-grounding quality gate: questions answerable
// from a schoolbook rather than from knowing the city are rejected.
var genericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)what\s+is\s+the\s+capital\s+of`),
	regexp.MustCompile(`(?i)capital\s+city\s+of`),
	regexp.MustCompile(`(?i)what\s+currency`),
	regexp.MustCompile(`(?i)official\s+currency`),
	regexp.MustCompile(`(?i)what\s+language`),
	regexp.MustCompile(`(?i)official\s+language`),
	regexp.MustCompile(`(?i)which\s+continent`),
	regexp.MustCompile(`(?i)on\s+what\s+continent`),
	regexp.MustCompile(`(?i)what\s+is\s+the\s+population`),
	regexp.MustCompile(`(?i)(?:in|of)\s+which\s+country`),
	regexp.MustCompile(`(?i)which\s+country\s+is`),
}

// validateCandidate enforces the structural invariants of a trivia question:
// exactly 4 options, all distinct after case/whitespace normalization, a
// correct index in range, a non-trivial fun fact, and no generic-knowledge
// question patterns.
func validateCandidate(c triviaCandidate) (types.TriviaQuestion, bool) {
	question := strings.TrimSpace(c.Question)
	if question == "" || len(c.Options) != 4 {
		return types.TriviaQuestion{}, false
	}
	if c.CorrectIndex < 0 || c.CorrectIndex > 3 {
		return types.TriviaQuestion{}, false
	}

	options := make([]string, 0, 4)
	seen := make(map[string]bool, 4)
	for _, opt := range c.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return types.TriviaQuestion{}, false
		}
		norm := normalizeOption(trimmed)
		if seen[norm] {
			return types.TriviaQuestion{}, false
		}
		seen[norm] = true
		options = append(options, trimmed)
	}

	funFact := strings.TrimSpace(c.FunFact)
	if len(funFact) < minFunFactLen {
		return types.TriviaQuestion{}, false
	}

	for _, pattern := range genericPatterns {
		if pattern.MatchString(question) {
			return types.TriviaQuestion{}, false
		}
	}

	return types.TriviaQuestion{
		Question:     question,
		Options:      options,
		CorrectIndex: c.CorrectIndex,
		FunFact:      funFact,
	}, true
}

// normalizeOption collapses case and whitespace so "The  Louvre" and
// "the louvre" count as duplicates.
func normalizeOption(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// shuffleOptions applies a Fisher-Yates permutation over the 4 option slots
// and recomputes CorrectIndex to keep tracking the true answer. Defeats the
// positional bias LLMs show toward the first slot.
func shuffleOptions(q *types.TriviaQuestion, rng *rand.Rand) {
	perm := [4]int{0, 1, 2, 3}
	for i := 3; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	shuffled := make([]string, 4)
	newIndex := q.CorrectIndex
	for pos, src := range perm {
		shuffled[pos] = q.Options[src]
		if src == q.CorrectIndex {
			newIndex = pos
		}
	}
	q.Options = shuffled
	q.CorrectIndex = newIndex
}

// enforceAnswerSpread reshuffles the whole batch once when 4+ questions all
// landed on index 0, which signals a degenerate model output pattern that a
// single per-question shuffle happened to preserve.
func enforceAnswerSpread(questions []types.TriviaQuestion, rng *rand.Rand) {
	if len(questions) < 4 {
		return
	}
	for i := range questions {
		if questions[i].CorrectIndex != 0 {
			return
		}
	}
	for i := range questions {
		shuffleOptions(&questions[i], rng)
	}
}

// StableQuestionID hashes (place id, difficulty, question text) to an id
// that is deterministic across processes and restarts. Cosmetic edits to
// options do not change the id. 32-bit wrapping rolling hash rendered
// base-36 with the sign cleared.
func StableQuestionID(placeID, difficulty, question string) string {
	input := placeID + "|" + difficulty + "|" + question
	var h int32
	for _, r := range input {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
