package trips

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service owns trip lifecycle and spot management.
type Service interface {
	CreateTrip(ctx context.Context, req types.CreateTripRequest) (*types.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*types.Trip, error)
	ListTrips(ctx context.Context) ([]*types.Trip, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, req types.UpdateTripRequest) (*types.Trip, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error
	AddSpot(ctx context.Context, tripID uuid.UUID, req types.AddSpotRequest) (*types.TripSpot, error)
	DeleteSpot(ctx context.Context, tripID, spotID uuid.UUID) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewServiceImpl(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// CreateTrip validates and persists a new trip.
func (s *ServiceImpl) CreateTrip(ctx context.Context, req types.CreateTripRequest) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "CreateTrip")
	defer span.End()

	if strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("city is required")
	}

	now := time.Now().UTC()
	trip := types.Trip{
		ID:         uuid.New(),
		City:       strings.TrimSpace(req.City),
		CityLabel:  req.CityLabel,
		Mode:       req.Mode,
		Difficulty: req.Difficulty,
		Score:      req.Score,
		Hotel:      req.Hotel,
		HotelLat:   req.HotelLat,
		HotelLng:   req.HotelLng,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, err
	}
	trip.Spots = []types.TripSpot{}
	span.SetAttributes(attribute.String("trip.id", trip.ID.String()))
	return &trip, nil
}

// GetTrip loads a trip with its spots.
func (s *ServiceImpl) GetTrip(ctx context.Context, tripID uuid.UUID) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "GetTrip")
	defer span.End()

	trip, err := s.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	spots, err := s.repo.GetSpots(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if spots == nil {
		spots = []types.TripSpot{}
	}
	trip.Spots = spots
	return &trip, nil
}

// ListTrips returns all trips without spots, newest first.
func (s *ServiceImpl) ListTrips(ctx context.Context) ([]*types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "ListTrips")
	defer span.End()
	return s.repo.ListTrips(ctx)
}

// UpdateTrip applies a partial update; nil request fields are unchanged.
func (s *ServiceImpl) UpdateTrip(ctx context.Context, tripID uuid.UUID, req types.UpdateTripRequest) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "UpdateTrip")
	defer span.End()

	trip, err := s.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.CityLabel != nil {
		trip.CityLabel = *req.CityLabel
	}
	if req.Mode != nil {
		trip.Mode = *req.Mode
	}
	if req.Difficulty != nil {
		trip.Difficulty = *req.Difficulty
	}
	if req.Score != nil {
		trip.Score = *req.Score
	}
	if req.Hotel != nil {
		trip.Hotel = *req.Hotel
	}
	if req.HotelLat != nil {
		trip.HotelLat = req.HotelLat
	}
	if req.HotelLng != nil {
		trip.HotelLng = req.HotelLng
	}
	trip.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateTrip(ctx, trip); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &trip, nil
}

// DeleteTrip removes a trip and, via cascade, its spots.
func (s *ServiceImpl) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "DeleteTrip")
	defer span.End()
	return s.repo.DeleteTrip(ctx, tripID)
}

// AddSpot appends a suggestion to a trip. The trip must exist.
func (s *ServiceImpl) AddSpot(ctx context.Context, tripID uuid.UUID, req types.AddSpotRequest) (*types.TripSpot, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "AddSpot")
	defer span.End()

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("spot name is required")
	}
	if _, err := s.repo.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}

	spot := types.TripSpot{
		ID:          uuid.New(),
		TripID:      tripID,
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Description: req.Description,
		FunFact:     req.FunFact,
		Address:     req.Address,
		PlaceID:     req.PlaceID,
		Lat:         req.Lat,
		Lng:         req.Lng,
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.AddSpot(ctx, spot); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("spot.id", spot.ID.String()))
	return &spot, nil
}

// DeleteSpot removes one spot from a trip.
func (s *ServiceImpl) DeleteSpot(ctx context.Context, tripID, spotID uuid.UUID) error {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "DeleteSpot")
	defer span.End()
	return s.repo.DeleteSpot(ctx, tripID, spotID)
}
