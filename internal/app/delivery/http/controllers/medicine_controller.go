package controllers

import (
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type MedicineController struct {
	Log             *zap.Logger
	MedicineUsecase contracts.MedicineUsecase
	InternalConfig  *config.InternalConfig
}

func NewMedicineController(logger *zap.Logger, medicineUsecase contracts.MedicineUsecase, internalConfig *config.InternalConfig) *MedicineController {
	return &MedicineController{
		Log:             logger,
		MedicineUsecase: medicineUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *MedicineController) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok {
		ctrl.Log.Error("MedicineController.AnalyzeImage requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MedicineController.AnalyzeImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxSizeInMB := ctrl.InternalConfig.Storage.MedicineImageMaxUploadSizeInMB
	r.Body = http.MaxBytesReader(w, r.Body, (maxSizeInMB+1)*1024*1024)
	if err := r.ParseMultipartForm(maxSizeInMB * 1024 * 1024); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.MultipartImageField)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoFileUploaded(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateImage(fileHeader, maxSizeInMB); err != nil {
		ctrl.Log.Error("MedicineController.AnalyzeImage image validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.MedicineUsecase.AnalyzeImage(r.Context(), &requests.AnalyzeMedicine{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineController.AnalyzeImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeMedicineSuccessMessage, result)
}
