package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Default TTLs per cache domain. The suggestion pool feeds consumer-visible
// lists and refreshes more often than the trivia grounding data; enrichment
// holds factual content about landmarks which rarely changes.
const (
	CityResolveTTL = 24 * time.Hour
	CityContextTTL = 24 * time.Hour
	TriviaPoolTTL  = 24 * time.Hour
	EnrichmentTTL  = 30 * 24 * time.Hour
	PoolTTL        = 1 * time.Hour
)

// Layers groups the five independent caches the pipeline consults. Each is
// keyed and expired on its own; there are no cross-cache transactions.
// go-cache is safe for concurrent use and all writes here are idempotent
// last-write-wins.
type Layers struct {
	CityResolve *gocache.Cache // lowercased city text -> *types.ResolvedCity
	CityContext *gocache.Cache // place id -> *types.CityContext
	TriviaPool  *gocache.Cache // "placeIdOrCity|difficulty" -> []types.TriviaQuestion
	Enrichment  *gocache.Cache // place id -> types.Enrichment
	Pool        *gocache.Cache // lowercased city text -> []types.PoolPOI
}

// NewLayers builds the cache set with production TTLs.
func NewLayers() *Layers {
	return &Layers{
		CityResolve: gocache.New(CityResolveTTL, 1*time.Hour),
		CityContext: gocache.New(CityContextTTL, 1*time.Hour),
		TriviaPool:  gocache.New(TriviaPoolTTL, 1*time.Hour),
		Enrichment:  gocache.New(EnrichmentTTL, 6*time.Hour),
		Pool:        gocache.New(PoolTTL, 10*time.Minute),
	}
}

// NewLayersWithTTL builds a cache set where every cache shares one TTL.
// Used by tests to exercise expiry boundaries without waiting hours.
func NewLayersWithTTL(ttl, cleanup time.Duration) *Layers {
	return &Layers{
		CityResolve: gocache.New(ttl, cleanup),
		CityContext: gocache.New(ttl, cleanup),
		TriviaPool:  gocache.New(ttl, cleanup),
		Enrichment:  gocache.New(ttl, cleanup),
		Pool:        gocache.New(ttl, cleanup),
	}
}

// CityKey normalizes free-text city input into a cache key.
func CityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// TriviaKey builds the trivia-pool cache key from a place id (or normalized
// city name when resolution failed) and a difficulty.
func TriviaKey(placeOrCity, difficulty string) string {
	return placeOrCity + "|" + difficulty
}
