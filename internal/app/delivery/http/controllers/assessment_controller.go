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
	"time"

	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
	}
}

func (ctrl *AssessmentController) GetEQQuestions(w http.ResponseWriter, r *http.Request) {
	result := ctrl.AssessmentUsecase.GetEQQuestions(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEQQuestionsSuccessMessage, result)
}

func (ctrl *AssessmentController) ScoreEQ(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("AssessmentController.ScoreEQ requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AssessmentController.ScoreEQ called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ScoreEQ)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AssessmentController.ScoreEQ validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssessmentUsecase.ScoreEQ(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.ScoreEQ error from usecase",
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

	ctrl.Log.Info("AssessmentController.ScoreEQ succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOverallScoreKey, result.Overall),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreEQSuccessMessage, result)
}
