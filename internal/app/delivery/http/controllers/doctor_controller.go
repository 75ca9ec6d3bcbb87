package controllers

import (
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	result, err := ctrl.DoctorUsecase.ListDoctors(r.Context(), r.URL.Query().Get(constvars.URLQuerySpecialty))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, result)
}

func (ctrl *DoctorController) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := utils.GetRequestID(r.Context())

	doctorID, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		ctrl.Log.Error("DoctorController.GetDoctorByID invalid doctor id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamDoctorID))
		return
	}

	result, err := ctrl.DoctorUsecase.GetDoctorByID(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, result)
}
