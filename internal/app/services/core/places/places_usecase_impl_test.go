package places

import (
	"context"
	"errors"
	"halo-service/internal/app/mocks"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func place(id string, rating float32, types ...string) maps.PlacesSearchResult {
	return maps.PlacesSearchResult{
		PlaceID: id,
		Name:    "Place " + id,
		Rating:  rating,
		Types:   types,
		Geometry: maps.AddressGeometry{
			Location: maps.LatLng{Lat: 20.29, Lng: 85.82},
		},
	}
}

func TestPlacesUsecase_Geocode(t *testing.T) {
	ctx := context.Background()

	t.Run("missing query", func(t *testing.T) {
		uc := NewPlacesUsecase(new(mocks.MockMapsClient), nil, zap.NewNop())
		_, err := uc.Geocode(ctx, &requests.Geocode{Query: "  "})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewPlacesUsecase(nil, nil, zap.NewNop())
		assert.False(t, uc.Configured())

		_, err := uc.Geocode(ctx, &requests.Geocode{Query: "Bhubaneswar"})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientMapsNotConfigured, customErr.ClientMessage)
	})

	t.Run("maps results", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		client.On("Geocode", mock.Anything, mock.MatchedBy(func(r *maps.GeocodingRequest) bool {
			return r.Address == "Bhubaneswar" && r.Region == "in"
		})).Return([]maps.GeocodingResult{{
			FormattedAddress: "Bhubaneswar, Odisha, India",
			PlaceID:          "abc",
			Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: 20.29, Lng: 85.82}},
		}}, nil)

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		result, err := uc.Geocode(ctx, &requests.Geocode{Query: "Bhubaneswar", Region: "IN"})
		require.NoError(t, err)
		assert.Equal(t, "OK", result.Status)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "abc", result.Results[0].PlaceID)
		assert.InDelta(t, 85.82, result.Results[0].Lng, 0.0001)
		client.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		client.On("Geocode", mock.Anything, mock.Anything).Return(nil, errors.New("REQUEST_DENIED"))

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		_, err := uc.Geocode(ctx, &requests.Geocode{Query: "Cuttack"})
		assert.Equal(t, constvars.StatusBadGateway, statusOf(t, err))
	})
}

func TestPlacesUsecase_NearbyPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("merges, filters and sorts", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		client.On("NearbySearch", mock.Anything, mock.MatchedBy(func(r *maps.NearbySearchRequest) bool {
			return r.Type == maps.PlaceTypeHospital
		})).Return(maps.PlacesSearchResponse{Results: []maps.PlacesSearchResult{
			place("h1", 4.2, "hospital", "health"),
			place("low", 2.9, "hospital"),
			place("edge", 3.0, "hospital"),
		}}, nil)
		client.On("NearbySearch", mock.Anything, mock.MatchedBy(func(r *maps.NearbySearchRequest) bool {
			return r.Type == maps.PlaceTypePharmacy
		})).Return(maps.PlacesSearchResponse{Results: []maps.PlacesSearchResult{
			place("p1", 4.8, "pharmacy"),
			place("h1", 4.2, "hospital"),
		}}, nil)

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		result, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{
			Lat:   coordinate(20.29),
			Lng:   coordinate(85.82),
			Types: []string{"hospital", "pharmacy"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(constvars.PlacesDefaultRadiusMeters), result.Radius)
		require.Len(t, result.Places, 2)
		assert.Equal(t, "p1", result.Places[0].PlaceID)
		assert.Equal(t, "Pharmacy", result.Places[0].Category)
		assert.Equal(t, "h1", result.Places[1].PlaceID)
		assert.Equal(t, "Hospital", result.Places[1].Category)
	})

	t.Run("searches every medical type by default and caps radius", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		client.On("NearbySearch", mock.Anything, mock.MatchedBy(func(r *maps.NearbySearchRequest) bool {
			return r.Radius == constvars.PlacesMaxRadiusMeters
		})).Return(maps.PlacesSearchResponse{}, nil)

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		result, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{Lat: coordinate(1), Lng: coordinate(1), Radius: 90000})
		require.NoError(t, err)
		assert.Empty(t, result.Places)
		client.AssertNumberOfCalls(t, "NearbySearch", len(MedicalPlaceTypes))
	})

	t.Run("limits results", func(t *testing.T) {
		results := make([]maps.PlacesSearchResult, 0, 30)
		for i := 0; i < 30; i++ {
			results = append(results, place(string(rune('a'+i)), 4.0, "doctor"))
		}
		client := new(mocks.MockMapsClient)
		client.On("NearbySearch", mock.Anything, mock.Anything).Return(maps.PlacesSearchResponse{Results: results}, nil)

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		result, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{Lat: coordinate(1), Lng: coordinate(1), Types: []string{"doctor"}})
		require.NoError(t, err)
		assert.Len(t, result.Places, constvars.PlacesResultLimit)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := NewPlacesUsecase(new(mocks.MockMapsClient), nil, zap.NewNop())
		_, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{Lat: coordinate(120), Lng: coordinate(1)})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("missing coordinates", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		uc := NewPlacesUsecase(client, nil, zap.NewNop())

		_, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{Lng: coordinate(85.82)})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		client.AssertNotCalled(t, "NearbySearch", mock.Anything, mock.Anything)
	})

	t.Run("equator and meridian are valid", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		client.On("NearbySearch", mock.Anything, mock.MatchedBy(func(r *maps.NearbySearchRequest) bool {
			return r.Location.Lat == 0 && r.Location.Lng == 0
		})).Return(maps.PlacesSearchResponse{}, nil).Once()

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		_, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{Lat: coordinate(0), Lng: coordinate(0), Types: []string{"doctor"}})

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client := new(mocks.MockMapsClient)
		client.On("NearbySearch", mock.Anything, mock.Anything).Return(maps.PlacesSearchResponse{}, errors.New("OVER_QUERY_LIMIT"))

		uc := NewPlacesUsecase(client, nil, zap.NewNop())
		_, err := uc.NearbyPlaces(ctx, &requests.NearbyPlaces{Lat: coordinate(1), Lng: coordinate(1)})
		assert.Equal(t, constvars.StatusBadGateway, statusOf(t, err))
	})
}

func coordinate(v float64) *float64 {
	return &v
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Hospital", Category([]string{"pharmacy", "hospital"}))
	assert.Equal(t, "Dentist", Category([]string{"dentist", "health"}))
	assert.Equal(t, "Medical Service", Category([]string{"physiotherapist"}))
}

func TestPlacesUsecase_GetMapsConfig(t *testing.T) {
	cfg := NewPlacesUsecase(nil, nil, zap.NewNop()).GetMapsConfig(context.Background())
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10000, cfg.GeolocationTimeoutMs)
	assert.Equal(t, 300000, cfg.MaximumAgeMs)
	assert.Equal(t, 5000, cfg.DefaultRadiusMeters)
}
