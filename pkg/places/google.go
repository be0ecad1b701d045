package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type GooglePlacesProvider struct {
	client *maps.Client
}

func NewGooglePlacesProvider(apiKey string) (*GooglePlacesProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GooglePlacesProvider{
		client: client,
	}, nil
}

func (g *GooglePlacesProvider) NearbySearch(ctx context.Context, lat, lng float64, radius int, category string) ([]Place, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   uint(radius),
	}
	if category != "" {
		req.Type = maps.PlaceType(category)
	}

	resp, err := g.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("nearby search failed: %w", err)
	}

	results := make([]Place, len(resp.Results))
	for i, result := range resp.Results {
		results[i] = Place{
			PlaceID:  result.PlaceID,
			Name:     result.Name,
			Lat:      result.Geometry.Location.Lat,
			Lng:      result.Geometry.Location.Lng,
			Types:    result.Types,
			Rating:   result.Rating,
			Vicinity: result.Vicinity,
		}
	}

	return results, nil
}
