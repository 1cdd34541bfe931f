package suggestions

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/selinamariefuchs/brain-trip-planner/internal/api/places"
	"github.com/selinamariefuchs/brain-trip-planner/internal/cache"
	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

const (
	// poolQueryLimit caps each category query; six queries at 20 gives the
	// ranker up to 120 candidates before dedupe.
	poolQueryLimit = 20
	// maxSuggestions is how many ranked entries a response carries.
	maxSuggestions = 5
)

// poolQueries are the category searches fanned out per city.
var poolQueries = []string{
	"%s attractions",
	"%s landmarks",
	"%s museums",
	"%s parks gardens",
	"%s restaurants",
	"%s viewpoints",
}

// SearchProvider is the slice of the places client this service needs.
type SearchProvider interface {
	TextSearch(ctx context.Context, query string, limit int) ([]types.PlaceResult, error)
	HasCredential() bool
}

// ContentGenerator produces enrichment text for a single POI.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

// Service builds ranked suggestion lists and enriches individual POIs.
// Every path degrades instead of erroring: an empty pool falls back to the
// curated set and a failed enrichment returns a generic description.
type Service interface {
	GenerateSuggestions(ctx context.Context, req types.SuggestionsRequest) *types.SuggestionsResponse
	EnrichPOI(ctx context.Context, req types.EnrichPOIRequest) *types.EnrichPOIResponse
}

type ServiceImpl struct {
	logger   *slog.Logger
	provider SearchProvider
	ai       ContentGenerator
	caches   *cache.Layers
}

// NewServiceImpl wires the suggestion pipeline. ai may be nil; enrichment
// then always returns the generic description.
func NewServiceImpl(provider SearchProvider, ai ContentGenerator, caches *cache.Layers, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		provider: provider,
		ai:       ai,
		caches:   caches,
	}
}

// GenerateSuggestions assembles the city pool, ranks it against the caller's
// hotel and exclusions, and falls back to the curated set when the pool
// yields nothing.
func (s *ServiceImpl) GenerateSuggestions(ctx context.Context, req types.SuggestionsRequest) *types.SuggestionsResponse {
	ctx, span := otel.Tracer("SuggestionsService").Start(ctx, "GenerateSuggestions")
	defer span.End()
	span.SetAttributes(attribute.String("city", cache.CityKey(req.City)))

	pool := s.GetPool(ctx, req.City)
	ranked := s.Rank(pool, req.HotelLocation, req.Exclude, req.ExcludePlaceIDs)

	if len(ranked) == 0 {
		ranked = s.curatedFallback(req.City, req.Exclude)
		span.SetAttributes(attribute.Bool("fallback", true))
	}

	for i := range ranked {
		s.applyCachedEnrichment(&ranked[i], req.City)
	}

	span.SetAttributes(attribute.Int("suggestions.count", len(ranked)))
	span.SetStatus(codes.Ok, "suggestions assembled")
	return &types.SuggestionsResponse{Suggestions: ranked}
}

// GetPool fetches and merges the category searches for a city. Results are
// cached for an hour; an empty pool is never cached so a transient provider
// outage does not pin an empty list.
func (s *ServiceImpl) GetPool(ctx context.Context, city string) []types.PoolPOI {
	ctx, span := otel.Tracer("SuggestionsService").Start(ctx, "GetPool")
	defer span.End()

	key := cache.CityKey(city)
	if key == "" {
		return nil
	}

	if cached, found := s.caches.Pool.Get(key); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.([]types.PoolPOI)
	}

	if !s.provider.HasCredential() {
		return nil
	}

	// Fan out one query per category; each branch soft-fails into an empty
	// list so one provider hiccup never empties the whole pool.
	resultSets := make([][]types.PlaceResult, len(poolQueries))
	g, gctx := errgroup.WithContext(ctx)
	for i, pattern := range poolQueries {
		query := fmt.Sprintf(pattern, city)
		g.Go(func() error {
			qctx, cancel := context.WithTimeout(gctx, places.SearchTimeout)
			defer cancel()
			res, err := s.provider.TextSearch(qctx, query, poolQueryLimit)
			if err != nil {
				s.logger.WarnContext(gctx, "pool query failed",
					slog.String("query", query), slog.Any("error", err))
				return nil
			}
			resultSets[i] = res
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]bool)
	pool := make([]types.PoolPOI, 0, poolQueryLimit*len(poolQueries))
	for _, set := range resultSets {
		for _, r := range set {
			if len(r.Name) < 3 || isGenericName(r.Name) {
				continue
			}
			dedupeKey := r.PlaceID
			if dedupeKey == "" {
				dedupeKey = normalizeTitle(r.Name)
			}
			if seen[dedupeKey] {
				continue
			}
			seen[dedupeKey] = true
			pool = append(pool, types.PoolPOI{
				PlaceID:     r.PlaceID,
				Title:       r.Name,
				Lat:         r.Lat,
				Lng:         r.Lng,
				Category:    mapCategory(r.Types),
				Address:     r.FormattedAddress,
				Rating:      r.Rating,
				RatingCount: r.RatingCount,
			})
		}
	}

	if len(pool) > 0 {
		s.caches.Pool.Set(key, pool, gocache.DefaultExpiration)
	}
	span.SetAttributes(attribute.Int("pool.size", len(pool)))
	return pool
}

// Rank orders the pool by popularity decile then proximity and returns the
// top entries as placeholder suggestions.
func (s *ServiceImpl) Rank(pool []types.PoolPOI, hotel *types.LatLng, excludeTitles, excludePlaceIDs []string) []types.Suggestion {
	type candidate struct {
		poi      types.PoolPOI
		distance *float64
		score    float64
		bucket   int
	}

	candidates := make([]candidate, 0, len(pool))
	for _, poi := range pool {
		c := candidate{poi: poi, score: popularityScore(poi.Rating, poi.RatingCount)}
		if hotel != nil {
			d := calculateDistance(hotel.Lat, hotel.Lng, poi.Lat, poi.Lng)
			if d > maxHotelDistanceKm {
				continue
			}
			c.distance = &d
		}
		candidates = append(candidates, c)
	}

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = c.score
	}
	buckets := decileBuckets(scores)
	for i := range candidates {
		candidates[i].bucket = buckets[i]
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.bucket != b.bucket {
			return a.bucket > b.bucket
		}
		if a.distance != nil && b.distance != nil {
			return *a.distance < *b.distance
		}
		return false
	})

	titleSet := make(map[string]bool, len(excludeTitles))
	for _, t := range excludeTitles {
		titleSet[normalizeTitle(t)] = true
	}
	idSet := make(map[string]bool, len(excludePlaceIDs))
	for _, id := range excludePlaceIDs {
		idSet[id] = true
	}

	ranked := make([]types.Suggestion, 0, maxSuggestions)
	for _, c := range candidates {
		if titleSet[normalizeTitle(c.poi.Title)] || (c.poi.PlaceID != "" && idSet[c.poi.PlaceID]) {
			continue
		}
		score := c.score
		sg := types.Suggestion{
			Title:           c.poi.Title,
			Category:        c.poi.Category,
			Address:         c.poi.Address,
			PlaceID:         c.poi.PlaceID,
			Lat:             ptr(c.poi.Lat),
			Lng:             ptr(c.poi.Lng),
			DistanceKm:      c.distance,
			PopularityScore: &score,
		}
		ranked = append(ranked, sg)
		if len(ranked) >= maxSuggestions {
			break
		}
	}
	return ranked
}

// EnrichPOI generates the description/funFact pair for one POI. Any failure
// degrades into a generic description and an empty fun fact; the handler
// always answers 200 with whatever this returns.
func (s *ServiceImpl) EnrichPOI(ctx context.Context, req types.EnrichPOIRequest) *types.EnrichPOIResponse {
	ctx, span := otel.Tracer("SuggestionsService").Start(ctx, "EnrichPOI")
	defer span.End()
	span.SetAttributes(attribute.String("poi.name", req.Name))

	resp := &types.EnrichPOIResponse{Name: req.Name, PlaceID: req.PlaceID}

	if req.PlaceID != "" {
		if cached, found := s.caches.Enrichment.Get(req.PlaceID); found {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			e := cached.(types.Enrichment)
			resp.Description = e.Description
			resp.FunFact = e.FunFact
			return resp
		}
	}

	enrichment, ok := s.generateEnrichment(ctx, req)
	if !ok {
		resp.Description = genericDescription(req.Category, req.City)
		return resp
	}

	if req.PlaceID != "" {
		s.caches.Enrichment.Set(req.PlaceID, enrichment, gocache.DefaultExpiration)
	}
	resp.Description = enrichment.Description
	resp.FunFact = enrichment.FunFact
	span.SetStatus(codes.Ok, "poi enriched")
	return resp
}

func (s *ServiceImpl) generateEnrichment(ctx context.Context, req types.EnrichPOIRequest) (types.Enrichment, bool) {
	if s.ai == nil {
		return types.Enrichment{}, false
	}

	prompt := buildEnrichmentPrompt(req.Name, req.City, req.Category, req.Address)
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.4),
	}
	raw, err := s.ai.GenerateContent(ctx, prompt, config)
	if err != nil {
		s.logger.WarnContext(ctx, "enrichment generation failed",
			slog.String("poi", req.Name), slog.Any("error", err))
		return types.Enrichment{}, false
	}

	cand := parseEnrichmentResponse(raw)
	if cand == nil {
		s.logger.WarnContext(ctx, "enrichment response unparseable", slog.String("poi", req.Name))
		return types.Enrichment{}, false
	}
	if !acceptFunFact(cand.FunFact) {
		s.logger.DebugContext(ctx, "fun fact rejected", slog.String("poi", req.Name))
		return types.Enrichment{}, false
	}

	return types.Enrichment{
		Description: strings.TrimSpace(cand.Description),
		FunFact:     strings.TrimSpace(cand.FunFact),
	}, true
}

// curatedFallback serves the hand-picked set for known cities, honoring
// title exclusions.
func (s *ServiceImpl) curatedFallback(city string, excludeTitles []string) []types.Suggestion {
	set := matchCurated(city)
	if set == nil {
		return []types.Suggestion{}
	}

	titleSet := make(map[string]bool, len(excludeTitles))
	for _, t := range excludeTitles {
		titleSet[normalizeTitle(t)] = true
	}

	out := make([]types.Suggestion, 0, maxSuggestions)
	for _, sg := range set {
		if titleSet[normalizeTitle(sg.Title)] {
			continue
		}
		out = append(out, sg)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

// applyCachedEnrichment fills a suggestion's description and fun fact from
// the enrichment cache when present, else leaves the generic placeholder.
// Only those two fields are touched.
func (s *ServiceImpl) applyCachedEnrichment(sg *types.Suggestion, city string) {
	if sg.Description != "" {
		return
	}
	if sg.PlaceID != "" {
		if cached, found := s.caches.Enrichment.Get(sg.PlaceID); found {
			e := cached.(types.Enrichment)
			sg.Description = e.Description
			sg.FunFact = e.FunFact
			return
		}
	}
	sg.Description = genericDescription(string(sg.Category), city)
}

func genericDescription(category, city string) string {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		cat = "place"
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return fmt.Sprintf("A %s worth a visit.", cat)
	}
	return fmt.Sprintf("A %s in %s.", cat, city)
}

func ptr(f float64) *float64 { return &f }
