package quiz

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/selinamariefuchs/brain-trip-planner/app/observability/metrics"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Generate handles POST /api/quiz/generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("QuizHandler").Start(r.Context(), "Generate")
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateQuiz"))
	start := time.Now()

	var req types.QuizRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid quiz request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.City) == "" {
		span.SetStatus(codes.Error, "missing city")
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}

	resp, err := h.service.GenerateQuiz(ctx, req)
	if err != nil {
		if errors.Is(err, ErrGenerationUnavailable) {
			// The caller pinned a place id; substituting unrelated curated
			// content would contradict that, so signal retry instead.
			l.WarnContext(ctx, "Generation unavailable for pinned place",
				slog.String("city", req.City), slog.String("placeId", req.CityPlaceID))
			span.SetStatus(codes.Error, "generation unavailable")
			metrics.Get().QuizRequestsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("source", types.SourceError)))
			api.WriteJSONResponse(w, r, http.StatusServiceUnavailable, types.QuizResponse{
				Questions:   []types.TriviaQuestion{},
				QuestionIDs: []string{},
				CityLabel:   req.CityLabel,
				CityPlaceID: req.CityPlaceID,
				Source:      types.SourceError,
			})
			return
		}
		l.ErrorContext(ctx, "Quiz generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "service failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to generate quiz")
		return
	}

	m := metrics.Get()
	m.QuizRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", resp.Source)))
	m.QuizDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if resp.Source == types.SourceFallback {
		m.QuizFallbacksTotal.Add(ctx, 1)
	}

	l.InfoContext(ctx, "Quiz generated",
		slog.String("city", req.City),
		slog.Int("questions", len(resp.Questions)),
		slog.String("source", resp.Source),
		slog.Bool("pool_exhausted", resp.PoolExhausted),
	)
	span.SetStatus(codes.Ok, "quiz returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
