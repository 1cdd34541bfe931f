package trips

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

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

// List handles GET /api/trips.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "List")
	defer span.End()

	trips, err := h.service.ListTrips(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list trips", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to list trips")
		return
	}
	if trips == nil {
		trips = []*types.Trip{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, trips)
}

// Create handles POST /api/trips.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "Create")
	defer span.End()

	var req types.CreateTripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.City) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}

	trip, err := h.service.CreateTrip(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to create trip", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to create trip")
		return
	}
	span.SetStatus(codes.Ok, "trip created")
	api.WriteJSONResponse(w, r, http.StatusCreated, trip)
}

// Get handles GET /api/trips/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "Get")
	defer span.End()

	tripID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	trip, err := h.service.GetTrip(ctx, tripID)
	if err != nil {
		h.writeServiceError(ctx, w, r, err, "failed to get trip")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, trip)
}

// Update handles PATCH /api/trips/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "Update")
	defer span.End()

	tripID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateTripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := h.service.UpdateTrip(ctx, tripID, req)
	if err != nil {
		h.writeServiceError(ctx, w, r, err, "failed to update trip")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, trip)
}

// Delete handles DELETE /api/trips/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "Delete")
	defer span.End()

	tripID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTrip(ctx, tripID); err != nil {
		h.writeServiceError(ctx, w, r, err, "failed to delete trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSpot handles POST /api/trips/{id}/spots.
func (h *Handler) AddSpot(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "AddSpot")
	defer span.End()

	tripID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req types.AddSpotRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "spot name is required")
		return
	}

	spot, err := h.service.AddSpot(ctx, tripID, req)
	if err != nil {
		h.writeServiceError(ctx, w, r, err, "failed to add spot")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, spot)
}

// DeleteSpot handles DELETE /api/trips/{id}/spots/{spotId}.
func (h *Handler) DeleteSpot(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "DeleteSpot")
	defer span.End()

	tripID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}
	spotID, ok := h.parseID(w, r, "spotId")
	if !ok {
		return
	}

	if err := h.service.DeleteSpot(ctx, tripID, spotID); err != nil {
		h.writeServiceError(ctx, w, r, err, "failed to delete spot")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, ErrNotFound) {
		api.ErrorResponse(w, r, http.StatusNotFound, "trip not found")
		return
	}
	h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
	api.ErrorResponse(w, r, http.StatusInternalServerError, msg)
}
