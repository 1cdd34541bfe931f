package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// SearchTimeout bounds every provider call. A timed-out call is a soft
// failure upstream, never a request-level fault.
const SearchTimeout = 5 * time.Second

// Client talks to the Google Maps Platform text-search and geocoding APIs.
// An empty API key is a supported degraded mode: every search returns no
// results without error.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: SearchTimeout + time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// HasCredential reports whether a provider API key is configured.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

type textSearchResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Rating           float64 `json:"rating,omitempty"`
	UserRatingsTotal int     `json:"user_ratings_total,omitempty"`
}

type textSearchResponse struct {
	Results []textSearchResult `json:"results"`
	Status  string             `json:"status"`
}

// TextSearch runs one Places Text Search query, bounded at limit results.
// Returns (nil, nil) when no API key is configured.
func (c *Client) TextSearch(ctx context.Context, query string, limit int) ([]types.PlaceResult, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	apiURL := fmt.Sprintf("%s/place/textsearch/json?query=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	body, err := c.get(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	var parsed textSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse text search response: %w", err)
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API error: %s", parsed.Status)
	}

	results := make([]types.PlaceResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.Name == "" {
			continue
		}
		results = append(results, types.PlaceResult{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Types:            r.Types,
			FormattedAddress: r.FormattedAddress,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
			Rating:           r.Rating,
			RatingCount:      r.UserRatingsTotal,
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Geocode resolves a free-text address to coordinates. Returns (nil, nil)
// when the address cannot be geocoded or no API key is configured; timeouts
// surface as context.DeadlineExceeded so the handler can answer 504.
func (c *Client) Geocode(ctx context.Context, address string) (*types.LatLng, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	apiURL := fmt.Sprintf("%s/geocode/json?address=%s&key=%s",
		c.baseURL, url.QueryEscape(address), url.QueryEscape(c.apiKey))

	body, err := c.get(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse geocode response: %w", err)
	}
	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		return nil, nil
	}
	loc := parsed.Results[0].Geometry.Location
	return &types.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func (c *Client) get(ctx context.Context, apiURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
