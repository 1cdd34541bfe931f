package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selinamariefuchs/brain-trip-planner/internal/api/city"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/quiz"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/suggestions"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/trips"
	"github.com/selinamariefuchs/brain-trip-planner/internal/container"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

type stubCityService struct{}

func (stubCityService) ResolveCity(context.Context, string) *types.ResolvedCity { return nil }
func (stubCityService) GetCityContext(_ context.Context, placeID, label string) *types.CityContext {
	return &types.CityContext{Label: label, PlaceID: placeID, POIs: []types.ContextPOI{}}
}
func (stubCityService) Geocode(context.Context, string) (*types.LatLng, error) {
	return &types.LatLng{Lat: 48.85, Lng: 2.35}, nil
}

type stubQuizService struct{}

func (stubQuizService) GenerateQuiz(_ context.Context, req types.QuizRequest) (*types.QuizResponse, error) {
	return &types.QuizResponse{
		Questions:   []types.TriviaQuestion{},
		QuestionIDs: []string{},
		CityLabel:   req.City,
		Source:      types.SourceFallback,
	}, nil
}

type stubSuggestionsService struct{}

func (stubSuggestionsService) GenerateSuggestions(context.Context, types.SuggestionsRequest) *types.SuggestionsResponse {
	return &types.SuggestionsResponse{Suggestions: []types.Suggestion{{Title: "Eiffel Tower"}}}
}
func (stubSuggestionsService) EnrichPOI(_ context.Context, req types.EnrichPOIRequest) *types.EnrichPOIResponse {
	return &types.EnrichPOIResponse{Name: req.Name, Description: "A landmark."}
}

type stubTripsService struct{}

func (stubTripsService) CreateTrip(_ context.Context, req types.CreateTripRequest) (*types.Trip, error) {
	return &types.Trip{ID: uuid.New(), City: req.City, Spots: []types.TripSpot{}}, nil
}
func (stubTripsService) GetTrip(context.Context, uuid.UUID) (*types.Trip, error) {
	return nil, trips.ErrNotFound
}
func (stubTripsService) ListTrips(context.Context) ([]*types.Trip, error) {
	return []*types.Trip{}, nil
}
func (stubTripsService) UpdateTrip(context.Context, uuid.UUID, types.UpdateTripRequest) (*types.Trip, error) {
	return nil, trips.ErrNotFound
}
func (stubTripsService) DeleteTrip(context.Context, uuid.UUID) error { return trips.ErrNotFound }
func (stubTripsService) AddSpot(context.Context, uuid.UUID, types.AddSpotRequest) (*types.TripSpot, error) {
	return nil, trips.ErrNotFound
}
func (stubTripsService) DeleteSpot(context.Context, uuid.UUID, uuid.UUID) error {
	return trips.ErrNotFound
}

func testRouter() http.Handler {
	logger := slog.New(slog.DiscardHandler)
	c := &container.Container{
		Logger:             logger,
		CityHandler:        city.NewHandler(stubCityService{}, logger),
		QuizHandler:        quiz.NewHandler(stubQuizService{}, logger),
		SuggestionsHandler: suggestions.NewHandler(stubSuggestionsService{}, logger),
		TripsHandler:       trips.NewHandler(stubTripsService{}, logger),
	}
	return SetupRouter(c)
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestQuizGenerateRequiresCity(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuizGenerateRouted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(`{"city":"Paris"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source"`)
}

func TestSuggestionsGenerateRouted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions/generate", strings.NewReader(`{"city":"Paris"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Eiffel Tower")
}

func TestTripsListRouted(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripsUnknownIDIs404(t *testing.T) {
	target := "/api/trips/" + uuid.NewString()
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
