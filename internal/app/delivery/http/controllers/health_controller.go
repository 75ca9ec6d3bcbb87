package controllers

import (
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthController struct {
	Log           *zap.Logger
	HealthUsecase contracts.HealthUsecase
}

func NewHealthController(logger *zap.Logger, healthUsecase contracts.HealthUsecase) *HealthController {
	return &HealthController{
		Log:           logger,
		HealthUsecase: healthUsecase,
	}
}

func (ctrl *HealthController) CalculateBMI(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("HealthController.CalculateBMI requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CalculateBMI)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.HealthUsecase.CalculateBMI(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("HealthController.CalculateBMI error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateBMISuccessMessage, result)
}
