package suggestions

import (
	"log/slog"
	"net/http"
	"strings"

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

// Generate handles POST /api/suggestions/generate. Other than a missing
// city, it never fails: an empty pool degrades into the curated fallback.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SuggestionsHandler").Start(r.Context(), "Generate")
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateSuggestions"))

	var req types.SuggestionsRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid suggestions request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.City) == "" {
		span.SetStatus(codes.Error, "missing city")
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}

	resp := h.service.GenerateSuggestions(ctx, req)

	metrics.Get().SuggestionRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.Int("count", len(resp.Suggestions))))
	l.InfoContext(ctx, "Suggestions generated",
		slog.String("city", req.City),
		slog.Int("count", len(resp.Suggestions)),
	)
	span.SetStatus(codes.Ok, "suggestions returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// EnrichPOI handles POST /api/suggestions/enrich-poi. Always 200: failures
// carry a generic description so clients render without special-casing.
func (h *Handler) EnrichPOI(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SuggestionsHandler").Start(r.Context(), "EnrichPOI")
	defer span.End()

	l := h.logger.With(slog.String("handler", "EnrichPOI"))

	var req types.EnrichPOIRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid enrichment request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.service.EnrichPOI(ctx, req)

	metrics.Get().EnrichmentRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("has_fun_fact", resp.FunFact != "")))
	span.SetStatus(codes.Ok, "poi enriched")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
