package types

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a saved itinerary. Spots are ordered by SortOrder.
type Trip struct {
	ID         uuid.UUID  `json:"id"`
	City       string     `json:"city"`
	CityLabel  string     `json:"cityLabel,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	Difficulty string     `json:"difficulty,omitempty"`
	Score      int        `json:"score"`
	Hotel      string     `json:"hotel,omitempty"`
	HotelLat   *float64   `json:"hotelLat,omitempty"`
	HotelLng   *float64   `json:"hotelLng,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Spots      []TripSpot `json:"spots,omitempty"`
}

// TripSpot is one saved suggestion inside a trip.
type TripSpot struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"tripId"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	FunFact     string    `json:"funFact,omitempty"`
	Address     string    `json:"address,omitempty"`
	PlaceID     string    `json:"placeId,omitempty"`
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTripRequest is the body of POST /api/trips.
type CreateTripRequest struct {
	City       string   `json:"city"`
	CityLabel  string   `json:"cityLabel,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Score      int      `json:"score,omitempty"`
	Hotel      string   `json:"hotel,omitempty"`
	HotelLat   *float64 `json:"hotelLat,omitempty"`
	HotelLng   *float64 `json:"hotelLng,omitempty"`
}

// UpdateTripRequest is the body of PATCH /api/trips/{id}. Nil fields are
// left unchanged.
type UpdateTripRequest struct {
	CityLabel  *string  `json:"cityLabel,omitempty"`
	Mode       *string  `json:"mode,omitempty"`
	Difficulty *string  `json:"difficulty,omitempty"`
	Score      *int     `json:"score,omitempty"`
	Hotel      *string  `json:"hotel,omitempty"`
	HotelLat   *float64 `json:"hotelLat,omitempty"`
	HotelLng   *float64 `json:"hotelLng,omitempty"`
}

// AddSpotRequest is the body of POST /api/trips/{id}/spots.
type AddSpotRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	FunFact     string   `json:"funFact,omitempty"`
	Address     string   `json:"address,omitempty"`
	PlaceID     string   `json:"placeId,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	SortOrder   int      `json:"sortOrder,omitempty"`
}
