package types

// Difficulty levels accepted by the quiz endpoint.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Source values reported on quiz responses. These are wire-contract values
// consumed by the client and must not change.
const (
	SourceAI       = "openai"
	SourceCache    = "cache"
	SourceFallback = "fallback"
	SourceError    = "error"
)

// TriviaQuestion is a validated quiz question. Invariants: exactly 4
// options, all distinct after case/whitespace normalization, CorrectIndex in
// [0,3], FunFact of non-trivial length.
type TriviaQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	FunFact      string   `json:"funFact"`
}

// QuizRequest is the body of POST /api/quiz/generate.
type QuizRequest struct {
	City               string   `json:"city"`
	Difficulty         string   `json:"difficulty,omitempty"`
	Count              int      `json:"count,omitempty"`
	ExcludeQuestionIDs []string `json:"excludeQuestionIds,omitempty"`
	CityPlaceID        string   `json:"cityPlaceId,omitempty"`
	CityLabel          string   `json:"cityLabel,omitempty"`
}

// QuizResponse is the body returned by POST /api/quiz/generate. QuestionIDs
// are stable across restarts and line up index-for-index with Questions.
type QuizResponse struct {
	Questions     []TriviaQuestion `json:"questions"`
	QuestionIDs   []string         `json:"questionIds"`
	CityLabel     string           `json:"cityLabel"`
	CityPlaceID   string           `json:"cityPlaceId,omitempty"`
	PoolExhausted bool             `json:"poolExhausted"`
	Source        string           `json:"source"`
}
