package places

import "context"

// Place is a point of interest returned by a places provider.
type Place struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Types    []string `json:"types,omitempty"`
	Rating   float32  `json:"rating,omitempty"`
	Vicinity string   `json:"vicinity,omitempty"`
}

// Provider answers nearby-search queries around a coordinate.
type Provider interface {
	// NearbySearch returns places of the given category within radius meters
	// of (lat, lng). Category follows the provider's place-type vocabulary.
	NearbySearch(ctx context.Context, lat, lng float64, radius int, category string) ([]Place, error)
}
