// Package maps wraps the Google Maps API client used to backfill vendor
// coordinates from street addresses.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"marketfees/internal/modules/geo"
)

// GeocodeService resolves street addresses through the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode returns the first match for the address. Region biasing keeps
// ambiguous queries inside Ghana, where the marketplace operates.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (geo.Point, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  "GH",
	})
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return geo.Point{}, fmt.Errorf("geocode %q: no results", address)
	}
	loc := results[0].Geometry.Location
	return geo.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
