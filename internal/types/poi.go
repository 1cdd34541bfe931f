package types

// Category buckets a POI for presentation. Unmatched provider tags map to
// CategoryLandmark.
type Category string

const (
	CategoryCulture       Category = "Culture"
	CategoryFood          Category = "Food"
	CategoryNature        Category = "Nature"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryLandmark      Category = "Landmark"
)

// PlaceResult is one entry from a provider text-search query, modelled with
// optional fields defaulting to zero values rather than erroring on absence.
type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	Rating           float64  `json:"rating"`
	RatingCount      int      `json:"user_ratings_total"`
}

// ContextPOI is the trivia-grounding variant of a POI.
type ContextPOI struct {
	PlaceID     string   `json:"placeId"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
}

// PoolPOI is the suggestions-pool variant of a POI.
type PoolPOI struct {
	PlaceID     string   `json:"placeId"`
	Title       string   `json:"title"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    Category `json:"category"`
	Address     string   `json:"address"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
}

// Suggestion is a presentation-ready POI. Description and FunFact start as
// placeholders and are filled in by the enrichment step; enrichment merges
// those two fields only and never replaces the rest.
type Suggestion struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        Category `json:"category"`
	FunFact         string   `json:"funFact"`
	Address         string   `json:"address,omitempty"`
	PlaceID         string   `json:"placeId,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	DistanceKm      *float64 `json:"distanceKm,omitempty"`
	PopularityScore *float64 `json:"popularityScore,omitempty"`
}

// Enrichment holds the long-lived generated facts about a single POI.
type Enrichment struct {
	Description string `json:"description"`
	FunFact     string `json:"funFact"`
}

// SuggestionsRequest is the body of POST /api/suggestions/generate.
type SuggestionsRequest struct {
	City            string   `json:"city"`
	HotelLocation   *LatLng  `json:"hotelLocation,omitempty"`
	Exclude         []string `json:"exclude,omitempty"`
	ExcludePlaceIDs []string `json:"excludePlaceIds,omitempty"`
}

// SuggestionsResponse is the body returned by POST /api/suggestions/generate.
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// EnrichPOIRequest is the body of POST /api/suggestions/enrich-poi.
type EnrichPOIRequest struct {
	City     string `json:"city"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Address  string `json:"address,omitempty"`
	PlaceID  string `json:"placeId,omitempty"`
}

// EnrichPOIResponse is always returned with status 200, best effort.
type EnrichPOIResponse struct {
	Name        string `json:"name"`
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
	FunFact     string `json:"funFact"`
}
