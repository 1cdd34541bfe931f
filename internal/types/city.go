package types

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ResolvedCity is the canonical form of a free-text city input, produced by
// the place-search provider. Immutable once resolved; cached by the
// lowercased, trimmed input text.
type ResolvedCity struct {
	Label   string  `json:"label"`
	PlaceID string  `json:"placeId"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
}

// CityContext is the bounded set of notable POIs used to ground trivia
// generation for one resolved place.
type CityContext struct {
	Label   string       `json:"label"`
	PlaceID string       `json:"placeId"`
	POIs    []ContextPOI `json:"pois"`
}

// GeocodeRequest is the body of POST /api/geocode.
type GeocodeRequest struct {
	Address string `json:"address"`
}
