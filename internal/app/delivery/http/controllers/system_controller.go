package controllers

import (
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SystemController struct {
	Log           *zap.Logger
	SystemUsecase contracts.SystemUsecase
}

func NewSystemController(logger *zap.Logger, systemUsecase contracts.SystemUsecase) *SystemController {
	return &SystemController{
		Log:           logger,
		SystemUsecase: systemUsecase,
	}
}

// HealthCheck always answers 200; a failing component shows up as degraded.
func (ctrl *SystemController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result := ctrl.SystemUsecase.GetServiceHealth(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, result)
}

func (ctrl *SystemController) GetAPIInfo(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WelcomeMessage, ctrl.SystemUsecase.GetAPIInfo(r.Context()))
}

func (ctrl *SystemController) GetLanguages(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLanguagesSuccessMessage, ctrl.SystemUsecase.GetLanguages(r.Context()))
}
