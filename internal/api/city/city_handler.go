package city

import (
	"context"
	"errors"
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

// Geocode handles POST /api/geocode.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "Geocode")
	defer span.End()

	l := h.logger.With(slog.String("handler", "Geocode"))

	var req types.GeocodeRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid geocode request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		span.SetStatus(codes.Error, "missing address")
		api.ErrorResponse(w, r, http.StatusBadRequest, "address is required")
		return
	}

	loc, err := h.service.Geocode(ctx, req.Address)
	metrics.Get().GeocodeRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("found", err == nil && loc != nil)))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.WarnContext(ctx, "Geocoding timed out", slog.String("address", req.Address))
			span.SetStatus(codes.Error, "geocode timeout")
			api.ErrorResponse(w, r, http.StatusGatewayTimeout, "geocoding timed out")
			return
		}
		l.WarnContext(ctx, "Geocoding failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode failed")
		api.ErrorResponse(w, r, http.StatusNotFound, "address not found")
		return
	}
	if loc == nil {
		span.SetStatus(codes.Error, "no result")
		api.ErrorResponse(w, r, http.StatusNotFound, "address not found")
		return
	}

	span.SetStatus(codes.Ok, "address geocoded")
	api.WriteJSONResponse(w, r, http.StatusOK, loc)
}
