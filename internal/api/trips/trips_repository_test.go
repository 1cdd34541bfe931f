package trips

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

func newMockRepository(t *testing.T) (*RepositoryImpl, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return &RepositoryImpl{logger: testLogger(), db: pool}, pool
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestRepositoryCreateTripExecutesInsert(t *testing.T) {
	repo, pool := newMockRepository(t)
	now := time.Now().UTC()
	trip := types.Trip{
		ID:         uuid.New(),
		City:       "Paris",
		CityLabel:  "Paris, France",
		Mode:       "walking",
		Difficulty: "medium",
		Score:      3,
		Hotel:      "Hotel Lutetia",
		HotelLat:   floatPtr(48.8512),
		HotelLng:   floatPtr(2.3259),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	pool.ExpectExec("INSERT INTO trips").
		WithArgs(trip.ID, trip.City, trip.CityLabel, trip.Mode, trip.Difficulty, trip.Score, trip.Hotel,
			trip.HotelLat, trip.HotelLng, trip.CreatedAt, trip.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateTrip(context.Background(), trip)
	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryGetTripScansRow(t *testing.T) {
	repo, pool := newMockRepository(t)
	tripID := uuid.New()
	now := time.Now().UTC()

	pool.ExpectQuery("FROM trips").
		WithArgs(tripID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "city", "city_label", "mode", "difficulty", "score", "hotel",
			"hotel_lat", "hotel_lng", "created_at", "updated_at",
		}).AddRow(tripID, "Paris", "Paris, France", "walking", "easy", 5, "Hotel Lutetia",
			floatPtr(48.8512), floatPtr(2.3259), now, now))

	trip, err := repo.GetTrip(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, tripID, trip.ID)
	assert.Equal(t, "Paris", trip.City)
	assert.Equal(t, 5, trip.Score)
	require.NotNil(t, trip.HotelLat)
	assert.InDelta(t, 48.8512, *trip.HotelLat, 0.0001)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryGetTripUnknownIDReturnsNotFound(t *testing.T) {
	repo, pool := newMockRepository(t)
	tripID := uuid.New()

	pool.ExpectQuery("FROM trips").
		WithArgs(tripID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetTrip(context.Background(), tripID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryUpdateTripZeroRowsReturnsNotFound(t *testing.T) {
	repo, pool := newMockRepository(t)
	trip := types.Trip{ID: uuid.New(), City: "Paris", UpdatedAt: time.Now().UTC()}

	pool.ExpectExec("UPDATE trips").
		WithArgs(trip.ID, trip.CityLabel, trip.Mode, trip.Difficulty, trip.Score,
			trip.Hotel, trip.HotelLat, trip.HotelLng, trip.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateTrip(context.Background(), trip)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryDeleteTripZeroRowsReturnsNotFound(t *testing.T) {
	repo, pool := newMockRepository(t)
	tripID := uuid.New()

	pool.ExpectExec("DELETE FROM trips").
		WithArgs(tripID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteTrip(context.Background(), tripID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryGetSpotsScansRowsInOrder(t *testing.T) {
	repo, pool := newMockRepository(t)
	tripID := uuid.New()
	now := time.Now().UTC()
	firstID, secondID := uuid.New(), uuid.New()

	pool.ExpectQuery("FROM trip_spots").
		WithArgs(tripID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "trip_id", "name", "category", "description", "fun_fact", "address",
			"place_id", "lat", "lng", "sort_order", "created_at",
		}).
			AddRow(firstID, tripID, "Louvre Museum", "Culture", "", "", "Rue de Rivoli",
				"place-louvre", floatPtr(48.8606), floatPtr(2.3376), 0, now).
			AddRow(secondID, tripID, "Luxembourg Gardens", "Nature", "", "", "",
				"place-luxembourg", nil, nil, 1, now))

	spots, err := repo.GetSpots(context.Background(), tripID)
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, "Louvre Museum", spots[0].Name)
	assert.Equal(t, 0, spots[0].SortOrder)
	assert.Equal(t, "Luxembourg Gardens", spots[1].Name)
	assert.Nil(t, spots[1].Lat)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryDeleteSpotZeroRowsReturnsNotFound(t *testing.T) {
	repo, pool := newMockRepository(t)
	tripID, spotID := uuid.New(), uuid.New()

	pool.ExpectExec("DELETE FROM trip_spots").
		WithArgs(tripID, spotID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteSpot(context.Background(), tripID, spotID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}
