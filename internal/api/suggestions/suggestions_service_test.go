package suggestions

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/selinamariefuchs/brain-trip-planner/internal/cache"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

type MockSearchProvider struct {
	mock.Mock
	credential bool
}

func (m *MockSearchProvider) TextSearch(ctx context.Context, query string, limit int) ([]types.PlaceResult, error) {
	args := m.Called(ctx, query, limit)
	if res := args.Get(0); res != nil {
		return res.([]types.PlaceResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSearchProvider) HasCredential() bool { return m.credential }

type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func place(id, name string, rating float64, count int, tags ...string) types.PlaceResult {
	return types.PlaceResult{
		PlaceID:     id,
		Name:        name,
		Rating:      rating,
		RatingCount: count,
		Types:       tags,
	}
}

func TestGetPoolMergesDedupesAndFiltersGenericNames(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "attractions")
	}), poolQueryLimit).Return([]types.PlaceResult{
		place("p1", "Eiffel Tower", 4.7, 300000, "point_of_interest"),
		place("", "Downtown", 4.0, 100),
		place("", "XY", 4.0, 100),
	}, nil)
	provider.On("TextSearch", mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "museums")
	}), poolQueryLimit).Return([]types.PlaceResult{
		place("p2", "Louvre Museum", 4.7, 250000, "museum"),
		place("p1", "Eiffel Tower", 4.7, 300000, "point_of_interest"),
	}, nil)
	provider.On("TextSearch", mock.Anything, mock.Anything, poolQueryLimit).Return([]types.PlaceResult{}, nil)

	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())
	pool := svc.GetPool(context.Background(), "Paris")

	require.Len(t, pool, 2)
	assert.Equal(t, "Eiffel Tower", pool[0].Title)
	assert.Equal(t, types.CategoryLandmark, pool[0].Category)
	assert.Equal(t, "Louvre Museum", pool[1].Title)
	assert.Equal(t, types.CategoryCulture, pool[1].Category)
}

func TestGetPoolSecondCallServedFromCache(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.Anything, poolQueryLimit).
		Return([]types.PlaceResult{place("p1", "Eiffel Tower", 4.7, 300000)}, nil)

	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())
	first := svc.GetPool(context.Background(), "Paris")
	second := svc.GetPool(context.Background(), "paris ")

	assert.Equal(t, first, second)
	provider.AssertNumberOfCalls(t, "TextSearch", len(poolQueries))
}

func TestGetPoolWithoutCredentialIsEmpty(t *testing.T) {
	provider := &MockSearchProvider{credential: false}
	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())
	assert.Empty(t, svc.GetPool(context.Background(), "Paris"))
	provider.AssertNotCalled(t, "TextSearch")
}

func TestGetPoolSurvivesPartialQueryFailure(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "restaurants")
	}), poolQueryLimit).Return(nil, assert.AnError)
	provider.On("TextSearch", mock.Anything, mock.Anything, poolQueryLimit).
		Return([]types.PlaceResult{place("p1", "Eiffel Tower", 4.7, 300000)}, nil)

	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())
	pool := svc.GetPool(context.Background(), "Paris")
	require.Len(t, pool, 1)
}

// poolAt builds a POI offset north of the hotel by roughly km kilometers.
func poolAt(id, title string, hotel types.LatLng, km float64, rating float64, count int) types.PoolPOI {
	return types.PoolPOI{
		PlaceID:     id,
		Title:       title,
		Lat:         hotel.Lat + km/111.19,
		Lng:         hotel.Lng,
		Rating:      rating,
		RatingCount: count,
		Category:    types.CategoryLandmark,
	}
}

func TestRankTieBreaksByDistanceWithinDecile(t *testing.T) {
	hotel := types.LatLng{Lat: 48.8566, Lng: 2.3522}
	pool := []types.PoolPOI{
		poolAt("far", "Far Place", hotel, 8, 4.5, 1000),
		poolAt("near", "Near Place", hotel, 2, 4.5, 1000),
	}

	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	ranked := svc.Rank(pool, &hotel, nil, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Near Place", ranked[0].Title)
	assert.Equal(t, "Far Place", ranked[1].Title)
	require.NotNil(t, ranked[0].DistanceKm)
	assert.InDelta(t, 2, *ranked[0].DistanceKm, 0.1)
}

func TestRankHigherDecileBeatsCloserDistance(t *testing.T) {
	hotel := types.LatLng{Lat: 48.8566, Lng: 2.3522}
	pool := []types.PoolPOI{
		poolAt("near", "Mediocre Nearby", hotel, 1, 3.0, 50),
		poolAt("far", "Beloved Faraway", hotel, 30, 4.8, 500000),
	}

	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	ranked := svc.Rank(pool, &hotel, nil, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Beloved Faraway", ranked[0].Title)
}

func TestRankDropsBeyondHotelRadius(t *testing.T) {
	hotel := types.LatLng{Lat: 48.8566, Lng: 2.3522}
	pool := []types.PoolPOI{
		poolAt("ok", "In Range", hotel, 50, 4.5, 1000),
		poolAt("gone", "Other City", hotel, 150, 4.9, 900000),
	}

	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	ranked := svc.Rank(pool, &hotel, nil, nil)

	require.Len(t, ranked, 1)
	assert.Equal(t, "In Range", ranked[0].Title)
}

func TestRankWithoutHotelKeepsEverything(t *testing.T) {
	pool := []types.PoolPOI{
		{PlaceID: "a", Title: "Alpha", Rating: 4.0, RatingCount: 100, Lat: 0, Lng: 0},
		{PlaceID: "b", Title: "Beta", Rating: 4.8, RatingCount: 90000, Lat: 89, Lng: 0},
	}

	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	ranked := svc.Rank(pool, nil, nil, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Beta", ranked[0].Title)
	assert.Nil(t, ranked[0].DistanceKm)
}

func TestRankAppliesExclusions(t *testing.T) {
	pool := []types.PoolPOI{
		{PlaceID: "a", Title: "Eiffel Tower", Rating: 4.7, RatingCount: 300000},
		{PlaceID: "b", Title: "Louvre Museum", Rating: 4.7, RatingCount: 250000},
		{PlaceID: "c", Title: "Arc de Triomphe", Rating: 4.7, RatingCount: 200000},
	}

	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	ranked := svc.Rank(pool, nil, []string{"  eiffel   tower "}, []string{"b"})

	require.Len(t, ranked, 1)
	assert.Equal(t, "Arc de Triomphe", ranked[0].Title)
}

func TestRankCapsAtFive(t *testing.T) {
	pool := make([]types.PoolPOI, 0, 12)
	for i := 0; i < 12; i++ {
		pool = append(pool, types.PoolPOI{
			PlaceID:     string(rune('a' + i)),
			Title:       "Place " + string(rune('A'+i)),
			Rating:      4.0 + float64(i)*0.05,
			RatingCount: 1000 * (i + 1),
		})
	}

	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	ranked := svc.Rank(pool, nil, nil, nil)
	assert.Len(t, ranked, maxSuggestions)
}

func TestGenerateSuggestionsFallsBackToCuratedSet(t *testing.T) {
	provider := &MockSearchProvider{credential: false}
	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())

	resp := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{City: "Paris, France"})

	require.Len(t, resp.Suggestions, maxSuggestions)
	assert.Equal(t, "Eiffel Tower", resp.Suggestions[0].Title)
	for _, sg := range resp.Suggestions {
		assert.NotEmpty(t, sg.Description)
	}
}

func TestGenerateSuggestionsCuratedHonorsExclusions(t *testing.T) {
	provider := &MockSearchProvider{credential: false}
	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())

	resp := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{
		City:    "Paris",
		Exclude: []string{"EIFFEL TOWER"},
	})

	for _, sg := range resp.Suggestions {
		assert.NotEqual(t, "Eiffel Tower", sg.Title)
	}
}

func TestGenerateSuggestionsUnknownCityEmptyPool(t *testing.T) {
	provider := &MockSearchProvider{credential: false}
	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())

	resp := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{City: "Quahog"})
	assert.Empty(t, resp.Suggestions)
}

func TestGenerateSuggestionsPoolEntriesGetPlaceholderDescriptions(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.Anything, poolQueryLimit).
		Return([]types.PlaceResult{place("p1", "Louvre Museum", 4.7, 250000, "museum")}, nil)

	svc := NewServiceImpl(provider, nil, cache.NewLayers(), testLogger())
	resp := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{City: "Paris"})

	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "A culture in Paris.", resp.Suggestions[0].Description)
	assert.Empty(t, resp.Suggestions[0].FunFact)
}

func TestEnrichPOIHappyPathAndCache(t *testing.T) {
	ai := &MockAIClient{}
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"description": "A wrought-iron lattice tower on the Champ de Mars.", "funFact": "Repainting the tower takes 60 tons of paint and is done roughly every 7 years by hand"}`, nil).
		Once()

	svc := NewServiceImpl(&MockSearchProvider{}, ai, cache.NewLayers(), testLogger())
	req := types.EnrichPOIRequest{City: "Paris", Name: "Eiffel Tower", PlaceID: "p1", Category: "Landmark"}

	first := svc.EnrichPOI(context.Background(), req)
	assert.Equal(t, "A wrought-iron lattice tower on the Champ de Mars.", first.Description)
	assert.NotEmpty(t, first.FunFact)

	second := svc.EnrichPOI(context.Background(), req)
	assert.Equal(t, first.Description, second.Description)
	ai.AssertNumberOfCalls(t, "GenerateContent", 1)
}

func TestEnrichPOIRejectedFunFactFallsBackGeneric(t *testing.T) {
	ai := &MockAIClient{}
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"description": "A nice museum.", "funFact": "A popular spot for tourists."}`, nil)

	svc := NewServiceImpl(&MockSearchProvider{}, ai, cache.NewLayers(), testLogger())
	resp := svc.EnrichPOI(context.Background(), types.EnrichPOIRequest{
		City: "Paris", Name: "Louvre", PlaceID: "p2", Category: "Museum",
	})

	assert.Equal(t, "A museum in Paris.", resp.Description)
	assert.Empty(t, resp.FunFact)
}

func TestEnrichPOIModelFailureFallsBackGeneric(t *testing.T) {
	ai := &MockAIClient{}
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	svc := NewServiceImpl(&MockSearchProvider{}, ai, cache.NewLayers(), testLogger())
	resp := svc.EnrichPOI(context.Background(), types.EnrichPOIRequest{
		City: "Paris", Name: "Louvre", Category: "Museum",
	})

	assert.Equal(t, "A museum in Paris.", resp.Description)
	assert.Empty(t, resp.FunFact)
}

func TestEnrichPOIWithoutModelClient(t *testing.T) {
	svc := NewServiceImpl(&MockSearchProvider{}, nil, cache.NewLayers(), testLogger())
	resp := svc.EnrichPOI(context.Background(), types.EnrichPOIRequest{
		City: "Tokyo", Name: "Senso-ji", Category: "Temple",
	})
	assert.Equal(t, "A temple in Tokyo.", resp.Description)
}

func TestEnrichPOIUnparseableResponseFallsBackGeneric(t *testing.T) {
	ai := &MockAIClient{}
	ai.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("I'm sorry, I can't help with that.", nil)

	svc := NewServiceImpl(&MockSearchProvider{}, ai, cache.NewLayers(), testLogger())
	resp := svc.EnrichPOI(context.Background(), types.EnrichPOIRequest{
		City: "Rome", Name: "Colosseum", Category: "Landmark",
	})
	assert.Equal(t, "A landmark in Rome.", resp.Description)
}
