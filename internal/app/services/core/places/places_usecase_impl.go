package places

import (
	"context"
	"errors"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"
)

// MedicalPlaceTypes are searched when the caller does not narrow the types.
var MedicalPlaceTypes = []string{
	string(maps.PlaceTypeHospital),
	string(maps.PlaceTypeDoctor),
	string(maps.PlaceTypePharmacy),
	string(maps.PlaceTypePhysiotherapist),
	string(maps.PlaceTypeDentist),
}

type placesUsecase struct {
	MapsClient contracts.MapsClient
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewPlacesUsecase accepts a nil client; every lookup then fails with the
// not-configured error while the config endpoint keeps answering.
func NewPlacesUsecase(mapsClient contracts.MapsClient, limiter *rate.Limiter, logger *zap.Logger) contracts.PlacesUsecase {
	return &placesUsecase{
		MapsClient: mapsClient,
		Limiter:    limiter,
		Log:        logger,
	}
}

func (uc *placesUsecase) Configured() bool {
	return uc.MapsClient != nil
}

func (uc *placesUsecase) Geocode(ctx context.Context, request *requests.Geocode) (*responses.Geocode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := strings.TrimSpace(request.Query)
	if query == "" {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMapsQueryRequired, constvars.ErrDevInvalidInput)
	}
	if !uc.Configured() {
		return nil, exceptions.ErrMapsNotConfigured(nil)
	}

	uc.Log.Info("placesUsecase.Geocode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryTextKey, query),
	)

	if err := uc.wait(ctx); err != nil {
		return nil, err
	}

	results, err := uc.MapsClient.Geocode(ctx, &maps.GeocodingRequest{
		Address: query,
		Region:  strings.ToLower(request.Region),
	})
	if err != nil {
		uc.Log.Error("placesUsecase.Geocode error calling MapsClient.Geocode",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMapsRequestFailed(err, "geocode")
	}

	response := &responses.Geocode{
		Status:  "OK",
		Results: make([]responses.GeocodeResult, 0, len(results)),
	}
	if len(results) == 0 {
		response.Status = "ZERO_RESULTS"
	}
	for _, result := range results {
		response.Results = append(response.Results, responses.GeocodeResult{
			FormattedAddress: result.FormattedAddress,
			Lat:              result.Geometry.Location.Lat,
			Lng:              result.Geometry.Location.Lng,
			PlaceID:          result.PlaceID,
		})
	}

	uc.Log.Info("placesUsecase.Geocode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.Results)),
	)
	return response, nil
}

// NearbyPlaces runs one nearby search per medical type and merges the
// results into a single well-rated list.
func (uc *placesUsecase) NearbyPlaces(ctx context.Context, request *requests.NearbyPlaces) (*responses.NearbyPlaces, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if request.Lat == nil || request.Lng == nil {
		return nil, exceptions.ErrPlacesMissingCoords(nil)
	}
	lat, lng := *request.Lat, *request.Lng
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPlacesInvalidCoords, constvars.ErrDevInvalidInput)
	}
	if !uc.Configured() {
		return nil, exceptions.ErrMapsNotConfigured(nil)
	}

	radius := clampRadius(request.Radius)
	types := request.Types
	if len(types) == 0 {
		types = MedicalPlaceTypes
	}

	uc.Log.Info("placesUsecase.NearbyPlaces called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint(constvars.LoggingRadiusKey, radius),
	)

	seen := make(map[string]bool)
	places := make([]responses.Place, 0)
	for _, placeType := range types {
		if err := uc.wait(ctx); err != nil {
			return nil, err
		}

		result, err := uc.MapsClient.NearbySearch(ctx, &maps.NearbySearchRequest{
			Location: &maps.LatLng{Lat: lat, Lng: lng},
			Radius:   radius,
			Type:     maps.PlaceType(placeType),
		})
		if err != nil {
			uc.Log.Error("placesUsecase.NearbyPlaces error calling MapsClient.NearbySearch",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPlaceTypeKey, placeType),
				zap.Error(err),
			)
			return nil, exceptions.ErrMapsRequestFailed(err, "nearby search")
		}

		for _, candidate := range result.Results {
			if seen[candidate.PlaceID] || candidate.Rating <= constvars.PlacesMinRating {
				continue
			}
			seen[candidate.PlaceID] = true
			places = append(places, toPlace(candidate))
		}
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})
	if len(places) > constvars.PlacesResultLimit {
		places = places[:constvars.PlacesResultLimit]
	}

	uc.Log.Info("placesUsecase.NearbyPlaces succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(places)),
	)
	return &responses.NearbyPlaces{Places: places, Radius: radius}, nil
}

func (uc *placesUsecase) GetMapsConfig(ctx context.Context) *responses.MapsConfig {
	return &responses.MapsConfig{
		GeolocationTimeoutMs: constvars.GeolocationTimeoutInMillis,
		MaximumAgeMs:         constvars.GeolocationMaximumAgeInMs,
		DefaultRadiusMeters:  constvars.PlacesDefaultRadiusMeters,
		MinRating:            constvars.PlacesMinRating,
		ResultLimit:          constvars.PlacesResultLimit,
		PlaceTypes:           append([]string(nil), MedicalPlaceTypes...),
		Enabled:              uc.Configured(),
	}
}

func (uc *placesUsecase) wait(ctx context.Context) error {
	if uc.Limiter == nil {
		return nil
	}
	err := uc.Limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return exceptions.ErrTooManyRequests(err)
}

func clampRadius(radius uint) uint {
	switch {
	case radius == 0:
		return constvars.PlacesDefaultRadiusMeters
	case radius > constvars.PlacesMaxRadiusMeters:
		return constvars.PlacesMaxRadiusMeters
	default:
		return radius
	}
}

func toPlace(result maps.PlacesSearchResult) responses.Place {
	place := responses.Place{
		PlaceID:  result.PlaceID,
		Name:     result.Name,
		Vicinity: result.Vicinity,
		Rating:   result.Rating,
		Category: Category(result.Types),
		Types:    result.Types,
		Lat:      result.Geometry.Location.Lat,
		Lng:      result.Geometry.Location.Lng,
	}
	if result.OpeningHours != nil {
		place.OpenNow = result.OpeningHours.OpenNow
	}
	return place
}

// Category picks the display label for a place from its Places API types.
func Category(types []string) string {
	has := func(want maps.PlaceType) bool {
		for _, t := range types {
			if t == string(want) {
				return true
			}
		}
		return false
	}
	switch {
	case has(maps.PlaceTypeHospital):
		return "Hospital"
	case has(maps.PlaceTypePharmacy):
		return "Pharmacy"
	case has(maps.PlaceTypeDoctor):
		return "Doctor"
	case has(maps.PlaceTypeDentist):
		return "Dentist"
	default:
		return "Medical Service"
	}
}
