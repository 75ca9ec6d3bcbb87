package controllers

import (
	"context"
	"errors"
	"fmt"
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
	InternalConfig   *config.InternalConfig
}

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase, internalConfig *config.InternalConfig) *DiagnosisController {
	return &DiagnosisController{
		Log:              logger,
		DiagnosisUsecase: diagnosisUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *DiagnosisController) GetDiagnosis(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("DiagnosisController.GetDiagnosis requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DiagnosisController.GetDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Diagnosis)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("DiagnosisController.GetDiagnosis error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeDiagnosisRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.ClientKey = clientKey(r)

	timeout := time.Duration(ctrl.InternalConfig.Diagnosis.TimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.GetDiagnosis(ctx, request)
	if err != nil {
		ctrl.Log.Error("DiagnosisController.GetDiagnosis error from usecase",
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

	ctrl.Log.Info("DiagnosisController.GetDiagnosis succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceKey, result.Source),
		zap.Bool(constvars.LoggingQuotaExceededKey, result.QuotaExceeded),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) TestAI(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("DiagnosisController.TestAI requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DiagnosisController.TestAI called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.TestAI(ctx)
	if err != nil {
		ctrl.Log.Error("DiagnosisController.TestAI error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DiagnosisController.TestAI succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, result.Provider),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AITestSuccessMessage, result)
}

func (ctrl *DiagnosisController) GetCommonSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms := ctrl.DiagnosisUsecase.GetCommonSymptoms(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCommonSymptomsSuccess, symptoms)
}

// clientKey names the quota bucket of the caller: the session user when
// signed in, the client address otherwise.
func clientKey(r *http.Request) string {
	if session, err := utils.GetSessionFromContext(r.Context()); err == nil {
		return fmt.Sprintf(constvars.ClientKeyUserFormat, session.UserID)
	}
	ip := utils.GetClientIPFromContext(r.Context())
	if ip == "" {
		ip = utils.RemoteIP(r)
	}
	return fmt.Sprintf(constvars.ClientKeyIPFormat, ip)
}
