package controllers

import (
	"context"
	"errors"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type PlacesController struct {
	Log           *zap.Logger
	PlacesUsecase contracts.PlacesUsecase
}

func NewPlacesController(logger *zap.Logger, placesUsecase contracts.PlacesUsecase) *PlacesController {
	return &PlacesController{
		Log:           logger,
		PlacesUsecase: placesUsecase,
	}
}

func (ctrl *PlacesController) Geocode(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("PlacesController.Geocode requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PlacesController.Geocode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.Geocode{
		Query:  r.URL.Query().Get(constvars.URLQueryQuery),
		Region: r.URL.Query().Get(constvars.URLQueryRegion),
	}
	utils.SanitizeGeocodeRequest(request)

	if request.Query == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMapsQueryRequired, constvars.ErrDevInvalidInput))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PlacesUsecase.Geocode(ctx, request)
	if err != nil {
		ctrl.Log.Error("PlacesController.Geocode error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PlacesController.Geocode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GeocodeSuccessMessage, result)
}

func (ctrl *PlacesController) NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("PlacesController.NearbyPlaces requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PlacesController.NearbyPlaces called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, err := parseNearbyPlacesQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeNearbyPlacesRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.PlacesUsecase.NearbyPlaces(ctx, request)
	if err != nil {
		ctrl.Log.Error("PlacesController.NearbyPlaces error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PlacesController.NearbyPlaces succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Places)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NearbyPlacesSuccessMessage, result)
}

func (ctrl *PlacesController) GetMapsConfig(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MapsConfigSuccessMessage, ctrl.PlacesUsecase.GetMapsConfig(r.Context()))
}

func parseNearbyPlacesQuery(r *http.Request) (*requests.NearbyPlaces, error) {
	query := r.URL.Query()
	invalidCoords := func(err error) error {
		return exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientPlacesInvalidCoords, constvars.ErrDevInvalidInput)
	}

	rawLat, rawLng := query.Get(constvars.URLQueryLat), query.Get(constvars.URLQueryLng)
	if rawLat == "" || rawLng == "" {
		return nil, exceptions.ErrPlacesMissingCoords(nil)
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, invalidCoords(err)
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, invalidCoords(err)
	}

	request := &requests.NearbyPlaces{Lat: &lat, Lng: &lng}
	if raw := query.Get(constvars.URLQueryRadius); raw != "" {
		radius, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, exceptions.ErrURLParamValidation(err, constvars.URLQueryRadius)
		}
		request.Radius = uint(radius)
	}
	if raw := query.Get(constvars.URLQueryTypes); raw != "" {
		request.Types = strings.Split(raw, ",")
	}
	return request, nil
}
