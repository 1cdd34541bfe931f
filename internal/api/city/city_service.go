package city

import (
	"context"
	"log/slog"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/selinamariefuchs/brain-trip-planner/internal/api/places"
	"github.com/selinamariefuchs/brain-trip-planner/internal/cache"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

// maxContextPOIs caps how many POIs ground a single city's trivia.
const maxContextPOIs = 20

// SearchProvider is the slice of the places client this service needs.
type SearchProvider interface {
	TextSearch(ctx context.Context, query string, limit int) ([]types.PlaceResult, error)
	Geocode(ctx context.Context, address string) (*types.LatLng, error)
	HasCredential() bool
}

var _ Service = (*ServiceImpl)(nil)

// Service resolves free-text city input and assembles POI grounding context.
// Resolution failures are soft: callers receive nil and proceed without
// grounding, never an error.
type Service interface {
	ResolveCity(ctx context.Context, cityText string) *types.ResolvedCity
	GetCityContext(ctx context.Context, placeID, label string) *types.CityContext
	Geocode(ctx context.Context, address string) (*types.LatLng, error)
}

type ServiceImpl struct {
	logger   *slog.Logger
	provider SearchProvider
	caches   *cache.Layers
}

func NewServiceImpl(provider SearchProvider, caches *cache.Layers, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		provider: provider,
		caches:   caches,
	}
}

// ResolveCity turns free-text input into a canonical place. Returns nil on
// any provider failure or empty result.
func (s *ServiceImpl) ResolveCity(ctx context.Context, cityText string) *types.ResolvedCity {
	ctx, span := otel.Tracer("CityService").Start(ctx, "ResolveCity")
	defer span.End()

	key := cache.CityKey(cityText)
	if key == "" {
		return nil
	}
	span.SetAttributes(attribute.String("city.input", key))

	if cached, found := s.caches.CityResolve.Get(key); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(*types.ResolvedCity)
	}

	searchCtx, cancel := context.WithTimeout(ctx, places.SearchTimeout)
	defer cancel()

	results, err := s.provider.TextSearch(searchCtx, cityText, 1)
	if err != nil {
		s.logger.WarnContext(ctx, "city resolution failed, proceeding without grounding",
			slog.String("city", key), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider search failed")
		return nil
	}
	if len(results) == 0 {
		s.logger.DebugContext(ctx, "city resolution returned no results", slog.String("city", key))
		return nil
	}

	top := results[0]
	resolved := &types.ResolvedCity{
		Label:   buildLabel(top.FormattedAddress, top.Name),
		PlaceID: top.PlaceID,
		Lat:     top.Lat,
		Lng:     top.Lng,
	}
	resolved.Country, resolved.Region = parseCountryRegion(top.FormattedAddress)

	s.caches.CityResolve.Set(key, resolved, gocache.DefaultExpiration)
	span.SetStatus(codes.Ok, "city resolved")
	return resolved
}

// GetCityContext fetches and merges the notable-POI set for a resolved
// place. Without a provider credential it returns an empty-POI context.
func (s *ServiceImpl) GetCityContext(ctx context.Context, placeID, label string) *types.CityContext {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCityContext")
	defer span.End()
	span.SetAttributes(attribute.String("place.id", placeID))

	if cached, found := s.caches.CityContext.Get(placeID); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(*types.CityContext)
	}

	if !s.provider.HasCredential() {
		return &types.CityContext{Label: label, PlaceID: placeID, POIs: []types.ContextPOI{}}
	}

	short := shortLabel(label)
	queries := []string{
		short + " top attractions landmarks",
		short + " museums parks historical sites",
	}

	// Fan out the two queries; each branch soft-fails into an empty list so
	// one provider hiccup never costs the other half of the context.
	resultSets := make([][]types.PlaceResult, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			qctx, cancel := context.WithTimeout(gctx, places.SearchTimeout)
			defer cancel()
			res, err := s.provider.TextSearch(qctx, q, 10)
			if err != nil {
				s.logger.WarnContext(gctx, "context query failed",
					slog.String("query", q), slog.Any("error", err))
				return nil
			}
			resultSets[i] = res
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]bool)
	pois := make([]types.ContextPOI, 0, maxContextPOIs)
	for _, set := range resultSets {
		for _, r := range set {
			if len(r.Name) < 3 || seen[r.PlaceID] {
				continue
			}
			seen[r.PlaceID] = true
			pois = append(pois, types.ContextPOI{
				PlaceID:     r.PlaceID,
				Name:        r.Name,
				Types:       r.Types,
				Rating:      r.Rating,
				RatingCount: r.RatingCount,
			})
			if len(pois) >= maxContextPOIs {
				break
			}
		}
		if len(pois) >= maxContextPOIs {
			break
		}
	}

	cityCtx := &types.CityContext{Label: label, PlaceID: placeID, POIs: pois}
	s.caches.CityContext.Set(placeID, cityCtx, gocache.DefaultExpiration)
	span.SetAttributes(attribute.Int("pois.count", len(pois)))
	span.SetStatus(codes.Ok, "context assembled")
	return cityCtx
}

// Geocode resolves an address to coordinates with the standard search timeout.
func (s *ServiceImpl) Geocode(ctx context.Context, address string) (*types.LatLng, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "Geocode")
	defer span.End()

	geoCtx, cancel := context.WithTimeout(ctx, places.SearchTimeout)
	defer cancel()
	return s.provider.Geocode(geoCtx, address)
}

// buildLabel keeps the first up to 3 comma-separated segments of the
// formatted address, falling back to the place name.
func buildLabel(formatted, name string) string {
	if formatted == "" {
		return name
	}
	parts := splitAddress(formatted)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ", ")
}

// parseCountryRegion derives country and region from a comma-separated
// formatted address: country is the last segment, region the second-to-last
// when at least 3 segments are present.
func parseCountryRegion(formatted string) (country, region string) {
	parts := splitAddress(formatted)
	if len(parts) == 0 {
		return "", ""
	}
	country = parts[len(parts)-1]
	if len(parts) >= 3 {
		region = parts[len(parts)-2]
	}
	return country, region
}

func shortLabel(label string) string {
	if i := strings.Index(label, ","); i >= 0 {
		return strings.TrimSpace(label[:i])
	}
	return strings.TrimSpace(label)
}

func splitAddress(formatted string) []string {
	raw := strings.Split(formatted, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
