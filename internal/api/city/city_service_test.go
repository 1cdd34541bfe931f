package city

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/selinamariefuchs/brain-trip-planner/internal/cache"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

type MockSearchProvider struct {
	mock.Mock
	credential bool
}

func (m *MockSearchProvider) TextSearch(ctx context.Context, query string, limit int) ([]types.PlaceResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PlaceResult), args.Error(1)
}

func (m *MockSearchProvider) Geocode(ctx context.Context, address string) (*types.LatLng, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LatLng), args.Error(1)
}

func (m *MockSearchProvider) HasCredential() bool { return m.credential }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newService(provider *MockSearchProvider) *ServiceImpl {
	return NewServiceImpl(provider, cache.NewLayers(), testLogger())
}

func TestResolveCityParsesAddress(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, "Porto", 1).Return([]types.PlaceResult{
		{
			PlaceID:          "ChIJporto",
			Name:             "Porto",
			FormattedAddress: "Porto, Porto District, Portugal",
			Lat:              41.15,
			Lng:              -8.61,
		},
	}, nil)

	svc := newService(provider)
	resolved := svc.ResolveCity(context.Background(), "Porto")
	require.NotNil(t, resolved)
	assert.Equal(t, "ChIJporto", resolved.PlaceID)
	assert.Equal(t, "Porto, Porto District, Portugal", resolved.Label)
	assert.Equal(t, "Portugal", resolved.Country)
	assert.Equal(t, "Porto District", resolved.Region)
	assert.Equal(t, 41.15, resolved.Lat)
}

func TestResolveCityTwoSegmentAddressHasNoRegion(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, "Monaco", 1).Return([]types.PlaceResult{
		{PlaceID: "ChIJmonaco", Name: "Monaco", FormattedAddress: "Monaco, Monaco"},
	}, nil)

	svc := newService(provider)
	resolved := svc.ResolveCity(context.Background(), "Monaco")
	require.NotNil(t, resolved)
	assert.Equal(t, "Monaco", resolved.Country)
	assert.Empty(t, resolved.Region)
}

func TestResolveCityLabelTruncatedToThreeSegments(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.Anything, 1).Return([]types.PlaceResult{
		{PlaceID: "x", Name: "Brooklyn", FormattedAddress: "Brooklyn, Kings County, New York, NY, USA"},
	}, nil)

	svc := newService(provider)
	resolved := svc.ResolveCity(context.Background(), "brooklyn")
	require.NotNil(t, resolved)
	assert.Equal(t, "Brooklyn, Kings County, New York", resolved.Label)
	assert.Equal(t, "USA", resolved.Country)
	assert.Equal(t, "NY", resolved.Region)
}

func TestResolveCityFailuresYieldNil(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, "Atlantis", 1).Return(nil, fmt.Errorf("upstream down"))
	provider.On("TextSearch", mock.Anything, "Nowhere", 1).Return([]types.PlaceResult{}, nil)

	svc := newService(provider)
	assert.Nil(t, svc.ResolveCity(context.Background(), "Atlantis"))
	assert.Nil(t, svc.ResolveCity(context.Background(), "Nowhere"))
	assert.Nil(t, svc.ResolveCity(context.Background(), "   "))
}

func TestResolveCityUsesCache(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.Anything, 1).Return([]types.PlaceResult{
		{PlaceID: "ChIJparis", Name: "Paris", FormattedAddress: "Paris, France"},
	}, nil).Once()

	svc := newService(provider)
	first := svc.ResolveCity(context.Background(), "Paris")
	require.NotNil(t, first)

	// Second call with differently-cased input hits the cache; the provider
	// expectation above allows a single call only.
	second := svc.ResolveCity(context.Background(), "  paris ")
	require.NotNil(t, second)
	assert.Equal(t, first.PlaceID, second.PlaceID)
	provider.AssertExpectations(t)
}

func TestGetCityContextMergesAndDedupes(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, "Lisbon top attractions landmarks", 10).Return([]types.PlaceResult{
		{PlaceID: "a", Name: "Belem Tower", Types: []string{"tourist_attraction"}, Rating: 4.6, RatingCount: 60000},
		{PlaceID: "b", Name: "Se", Types: []string{"church"}}, // name too short, dropped
		{PlaceID: "c", Name: "Jeronimos Monastery"},
	}, nil)
	provider.On("TextSearch", mock.Anything, "Lisbon museums parks historical sites", 10).Return([]types.PlaceResult{
		{PlaceID: "a", Name: "Belem Tower"}, // duplicate id, dropped
		{PlaceID: "d", Name: "Gulbenkian Museum"},
	}, nil)

	svc := newService(provider)
	cityCtx := svc.GetCityContext(context.Background(), "ChIJlisbon", "Lisbon, Portugal")
	require.NotNil(t, cityCtx)
	require.Len(t, cityCtx.POIs, 3)
	assert.Equal(t, "Belem Tower", cityCtx.POIs[0].Name)
	assert.Equal(t, "Jeronimos Monastery", cityCtx.POIs[1].Name)
	assert.Equal(t, "Gulbenkian Museum", cityCtx.POIs[2].Name)
}

func TestGetCityContextOneQueryFailing(t *testing.T) {
	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, "Rome top attractions landmarks", 10).Return(nil, fmt.Errorf("timeout"))
	provider.On("TextSearch", mock.Anything, "Rome museums parks historical sites", 10).Return([]types.PlaceResult{
		{PlaceID: "x", Name: "Colosseum"},
	}, nil)

	svc := newService(provider)
	cityCtx := svc.GetCityContext(context.Background(), "ChIJrome", "Rome, Italy")
	require.NotNil(t, cityCtx)
	require.Len(t, cityCtx.POIs, 1)
	assert.Equal(t, "Colosseum", cityCtx.POIs[0].Name)
}

func TestGetCityContextWithoutCredential(t *testing.T) {
	provider := &MockSearchProvider{credential: false}
	svc := newService(provider)

	cityCtx := svc.GetCityContext(context.Background(), "ChIJx", "Anywhere")
	require.NotNil(t, cityCtx)
	assert.Empty(t, cityCtx.POIs)
	provider.AssertNotCalled(t, "TextSearch")
}

func TestGetCityContextCapsAtTwenty(t *testing.T) {
	many := make([]types.PlaceResult, 0, 15)
	for i := 0; i < 15; i++ {
		many = append(many, types.PlaceResult{
			PlaceID: fmt.Sprintf("q1-%d", i),
			Name:    fmt.Sprintf("Attraction %d", i),
		})
	}
	more := make([]types.PlaceResult, 0, 15)
	for i := 0; i < 15; i++ {
		more = append(more, types.PlaceResult{
			PlaceID: fmt.Sprintf("q2-%d", i),
			Name:    fmt.Sprintf("Museum %d", i),
		})
	}

	provider := &MockSearchProvider{credential: true}
	provider.On("TextSearch", mock.Anything, mock.Anything, 10).Return(many, nil).Once()
	provider.On("TextSearch", mock.Anything, mock.Anything, 10).Return(more, nil).Once()

	svc := newService(provider)
	cityCtx := svc.GetCityContext(context.Background(), "ChIJbig", "Big City")
	require.NotNil(t, cityCtx)
	assert.Len(t, cityCtx.POIs, 20)
}
