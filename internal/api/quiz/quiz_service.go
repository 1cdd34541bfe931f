package quiz

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/selinamariefuchs/brain-trip-planner/internal/api/city"
	"github.com/selinamariefuchs/brain-trip-planner/internal/cache"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

const (
	defaultQuestionCount = 8
	maxQuestionCount     = 16
	cacheMinBatch        = 4

	// Past this many excluded ids the client has likely seen most of what a
	// city/difficulty pair can produce.
	exhaustionExcludeThreshold = 30

	// Past this many excluded ids we over-generate, anticipating heavy
	// filtering.
	overGenerateExcludeThreshold = 10
)

// ErrGenerationUnavailable signals that the caller explicitly pinned a place
// id and generation still failed. Curated fallback would contradict the
// caller's grounding request, so the handler answers 503 instead.
var ErrGenerationUnavailable = errors.New("quiz generation unavailable for requested place")

// ContentGenerator is the slice of the AI client this service needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GenerateQuiz(ctx context.Context, req types.QuizRequest) (*types.QuizResponse, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	citySvc city.Service
	ai      ContentGenerator // nil when no model credential is configured
	caches  *cache.Layers
}

func NewServiceImpl(citySvc city.Service, ai ContentGenerator, caches *cache.Layers, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		citySvc: citySvc,
		ai:      ai,
		caches:  caches,
	}
}

// GenerateQuiz runs the full trivia pipeline: resolve, ground, generate,
// validate, dedupe against the caller's seen set, and fall back when live
// content runs out.
func (s *ServiceImpl) GenerateQuiz(ctx context.Context, req types.QuizRequest) (*types.QuizResponse, error) {
	ctx, span := otel.Tracer("QuizService").Start(ctx, "GenerateQuiz")
	defer span.End()

	difficulty := normalizeDifficulty(req.Difficulty)
	count := req.Count
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}
	threshold := count
	if threshold > cacheMinBatch {
		threshold = cacheMinBatch
	}

	excluded := make(map[string]bool, len(req.ExcludeQuestionIDs))
	for _, id := range req.ExcludeQuestionIDs {
		excluded[id] = true
	}

	// Caller-pinned place id wins over resolution; otherwise resolve softly.
	placeID := strings.TrimSpace(req.CityPlaceID)
	label := strings.TrimSpace(req.CityLabel)
	if placeID == "" {
		if resolved := s.citySvc.ResolveCity(ctx, req.City); resolved != nil {
			placeID = resolved.PlaceID
			label = resolved.Label
		}
	}
	if label == "" {
		label = strings.TrimSpace(req.City)
	}

	poolKey := placeID
	if poolKey == "" {
		poolKey = cache.CityKey(req.City)
	}
	triviaKey := cache.TriviaKey(poolKey, difficulty)
	span.SetAttributes(
		attribute.String("quiz.key", triviaKey),
		attribute.Int("quiz.exclude_count", len(excluded)),
	)

	source := types.SourceCache
	var pool []types.TriviaQuestion
	cached, cacheHit := s.caches.TriviaPool.Get(triviaKey)
	if cacheHit {
		pool = cached.([]types.TriviaQuestion)
	} else {
		pool = s.generate(ctx, label, placeID, difficulty, count, len(excluded), triviaKey)
		source = types.SourceAI
	}

	filtered := filterExcluded(pool, poolKey, difficulty, excluded)

	// Exhaustion recovery: a cache hit emptied by exclusion filtering gets
	// invalidated and regenerated exactly once.
	if cacheHit && len(filtered) < threshold {
		span.AddEvent("cache pool exhausted, regenerating")
		s.caches.TriviaPool.Delete(triviaKey)
		regenerated := s.generate(ctx, label, placeID, difficulty, count, len(excluded), triviaKey)
		filtered = filterExcluded(regenerated, poolKey, difficulty, excluded)
		source = types.SourceAI
	}

	// Curated fallback applies only when no stable place id grounds this
	// city; substituting curated content under a resolved id would break the
	// grounding promise.
	if placeID == "" && len(filtered) < threshold {
		fallback := matchCurated(req.City)
		if fallback == nil {
			fallback = genericQuestions(req.City)
		}
		fallback = filterExcluded(fallback, poolKey, difficulty, excluded)

		if len(filtered) == 0 && len(fallback) > 0 {
			source = types.SourceFallback
		}
		seenText := make(map[string]bool, len(filtered))
		for _, q := range filtered {
			seenText[q.Question] = true
		}
		for _, q := range fallback {
			if len(filtered) >= count {
				break
			}
			if !seenText[q.Question] {
				filtered = append(filtered, q)
			}
		}
	}

	if len(filtered) == 0 {
		if strings.TrimSpace(req.CityPlaceID) != "" {
			span.SetStatus(codes.Error, "generation failed for pinned place")
			return nil, ErrGenerationUnavailable
		}
		source = types.SourceError
	}

	poolExhausted := len(excluded) > exhaustionExcludeThreshold && len(filtered) < threshold

	if len(filtered) > count {
		filtered = filtered[:count]
	}

	ids := make([]string, len(filtered))
	for i, q := range filtered {
		ids[i] = StableQuestionID(poolKey, difficulty, q.Question)
	}

	span.SetAttributes(
		attribute.Int("quiz.questions", len(filtered)),
		attribute.String("quiz.source", source),
		attribute.Bool("quiz.pool_exhausted", poolExhausted),
	)
	span.SetStatus(codes.Ok, "quiz generated")

	return &types.QuizResponse{
		Questions:     filtered,
		QuestionIDs:   ids,
		CityLabel:     label,
		CityPlaceID:   placeID,
		PoolExhausted: poolExhausted,
		Source:        source,
	}, nil
}

// generate runs one model round: prompt, parse, validate, shuffle, and cache
// the batch when enough questions survive. Every failure mode returns an
// empty slice.
func (s *ServiceImpl) generate(ctx context.Context, label, placeID, difficulty string, count, excludeCount int, triviaKey string) []types.TriviaQuestion {
	ctx, span := otel.Tracer("QuizService").Start(ctx, "generate")
	defer span.End()

	if s.ai == nil {
		span.AddEvent("no model client configured")
		return nil
	}

	requestCount := count
	if excludeCount > overGenerateExcludeThreshold {
		requestCount = count * 2
		if requestCount > maxQuestionCount {
			requestCount = maxQuestionCount
		}
	}

	var poiNames []string
	if placeID != "" {
		if cityCtx := s.citySvc.GetCityContext(ctx, placeID, label); cityCtx != nil {
			for _, poi := range cityCtx.POIs {
				poiNames = append(poiNames, poi.Name)
			}
		}
	}

	prompt := buildTriviaPrompt(label, poiNames, difficulty, requestCount)
	raw, err := s.ai.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.8),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "trivia generation failed",
			slog.String("city", label), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return nil
	}

	candidates := parseTriviaResponse(raw)
	span.SetAttributes(attribute.Int("model.candidates", len(candidates)))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	accepted := make([]types.TriviaQuestion, 0, len(candidates))
	for _, c := range candidates {
		q, ok := validateCandidate(c)
		if !ok {
			continue
		}
		shuffleOptions(&q, rng)
		accepted = append(accepted, q)
	}
	enforceAnswerSpread(accepted, rng)

	if len(accepted) >= cacheMinBatch {
		s.caches.TriviaPool.Set(triviaKey, accepted, gocache.DefaultExpiration)
	}
	span.SetAttributes(attribute.Int("model.accepted", len(accepted)))
	return accepted
}

func filterExcluded(questions []types.TriviaQuestion, poolKey, difficulty string, excluded map[string]bool) []types.TriviaQuestion {
	if len(excluded) == 0 {
		return questions
	}
	kept := make([]types.TriviaQuestion, 0, len(questions))
	for _, q := range questions {
		if !excluded[StableQuestionID(poolKey, difficulty, q.Question)] {
			kept = append(kept, q)
		}
	}
	return kept
}

func normalizeDifficulty(difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case types.DifficultyEasy:
		return types.DifficultyEasy
	case types.DifficultyHard:
		return types.DifficultyHard
	default:
		return types.DifficultyMedium
	}
}
