package contracts

import (
	"context"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"

	"googlemaps.github.io/maps"
)

// MapsClient is the subset of the Google Maps client the places proxy uses.
type MapsClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

type PlacesUsecase interface {
	Geocode(ctx context.Context, request *requests.Geocode) (*responses.Geocode, error)
	NearbyPlaces(ctx context.Context, request *requests.NearbyPlaces) (*responses.NearbyPlaces, error)
	GetMapsConfig(ctx context.Context) *responses.MapsConfig
	Configured() bool
}
