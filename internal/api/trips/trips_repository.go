package trips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

// ErrNotFound is returned when a trip or spot id does not exist.
var ErrNotFound = errors.New("trip not found")

var _ Repository = (*RepositoryImpl)(nil)

// querier is the subset of pgxpool.Pool the repository uses. pgxmock
// satisfies it in tests.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RepositoryImpl holds the logger and database connection pool.
type RepositoryImpl struct {
	logger *slog.Logger
	db     querier
}

// Repository defines the persistence operations for trips and their spots.
type Repository interface {
	CreateTrip(ctx context.Context, trip types.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (types.Trip, error)
	ListTrips(ctx context.Context) ([]*types.Trip, error)
	UpdateTrip(ctx context.Context, trip types.Trip) error
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error
	AddSpot(ctx context.Context, spot types.TripSpot) error
	GetSpots(ctx context.Context, tripID uuid.UUID) ([]types.TripSpot, error)
	DeleteSpot(ctx context.Context, tripID, spotID uuid.UUID) error
}

func NewRepository(pgxpool *pgxpool.Pool, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		db:     pgxpool,
	}
}

// CreateTrip inserts a new trip into the trips table.
func (r *RepositoryImpl) CreateTrip(ctx context.Context, trip types.Trip) error {
	query := `
        INSERT INTO trips (
            id, city, city_label, mode, difficulty, score, hotel,
            hotel_lat, hotel_lng, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
        )
    `
	_, err := r.db.Exec(ctx, query,
		trip.ID, trip.City, trip.CityLabel, trip.Mode, trip.Difficulty, trip.Score, trip.Hotel,
		trip.HotelLat, trip.HotelLng, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to create trip", slog.Any("error", err))
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by its ID, without spots.
func (r *RepositoryImpl) GetTrip(ctx context.Context, tripID uuid.UUID) (types.Trip, error) {
	query := `
        SELECT id, city, city_label, mode, difficulty, score, hotel,
               hotel_lat, hotel_lng, created_at, updated_at
        FROM trips
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, tripID)
	var trip types.Trip
	err := row.Scan(
		&trip.ID, &trip.City, &trip.CityLabel, &trip.Mode, &trip.Difficulty, &trip.Score, &trip.Hotel,
		&trip.HotelLat, &trip.HotelLng, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.Trip{}, ErrNotFound
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to get trip", slog.Any("error", err))
		return types.Trip{}, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListTrips retrieves all trips ordered by most recently updated.
func (r *RepositoryImpl) ListTrips(ctx context.Context) ([]*types.Trip, error) {
	query := `
        SELECT id, city, city_label, mode, difficulty, score, hotel,
               hotel_lat, hotel_lng, created_at, updated_at
        FROM trips
        ORDER BY updated_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list trips", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*types.Trip
	for rows.Next() {
		var trip types.Trip
		err := rows.Scan(
			&trip.ID, &trip.City, &trip.CityLabel, &trip.Mode, &trip.Difficulty, &trip.Score, &trip.Hotel,
			&trip.HotelLat, &trip.HotelLng, &trip.CreatedAt, &trip.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, &trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// UpdateTrip updates all mutable fields of a trip.
func (r *RepositoryImpl) UpdateTrip(ctx context.Context, trip types.Trip) error {
	query := `
        UPDATE trips
        SET city_label = $2, mode = $3, difficulty = $4, score = $5,
            hotel = $6, hotel_lat = $7, hotel_lng = $8, updated_at = $9
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		trip.ID, trip.CityLabel, trip.Mode, trip.Difficulty, trip.Score,
		trip.Hotel, trip.HotelLat, trip.HotelLng, trip.UpdatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update trip", slog.Any("error", err))
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTrip removes a trip; spots cascade at the schema level.
func (r *RepositoryImpl) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete trip", slog.Any("error", err))
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddSpot inserts one spot into a trip.
func (r *RepositoryImpl) AddSpot(ctx context.Context, spot types.TripSpot) error {
	query := `
        INSERT INTO trip_spots (
            id, trip_id, name, category, description, fun_fact, address,
            place_id, lat, lng, sort_order, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )
    `
	_, err := r.db.Exec(ctx, query,
		spot.ID, spot.TripID, spot.Name, spot.Category, spot.Description, spot.FunFact, spot.Address,
		spot.PlaceID, spot.Lat, spot.Lng, spot.SortOrder, spot.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to add spot", slog.Any("error", err))
		return fmt.Errorf("failed to add spot: %w", err)
	}
	return nil
}

// GetSpots retrieves a trip's spots in sort order.
func (r *RepositoryImpl) GetSpots(ctx context.Context, tripID uuid.UUID) ([]types.TripSpot, error) {
	query := `
        SELECT id, trip_id, name, category, description, fun_fact, address,
               place_id, lat, lng, sort_order, created_at
        FROM trip_spots
        WHERE trip_id = $1
        ORDER BY sort_order ASC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to get spots", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get spots: %w", err)
	}
	defer rows.Close()

	var spots []types.TripSpot
	for rows.Next() {
		var spot types.TripSpot
		err := rows.Scan(
			&spot.ID, &spot.TripID, &spot.Name, &spot.Category, &spot.Description, &spot.FunFact, &spot.Address,
			&spot.PlaceID, &spot.Lat, &spot.Lng, &spot.SortOrder, &spot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spot: %w", err)
		}
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spots: %w", err)
	}
	return spots, nil
}

// DeleteSpot removes one spot from a trip.
func (r *RepositoryImpl) DeleteSpot(ctx context.Context, tripID, spotID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trip_spots WHERE trip_id = $1 AND id = $2`, tripID, spotID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete spot", slog.Any("error", err))
		return fmt.Errorf("failed to delete spot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
