package medicines

import (
	"context"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type medicineUsecase struct {
	Log *zap.Logger
}

func NewMedicineUsecase(logger *zap.Logger) contracts.MedicineUsecase {
	return &medicineUsecase{Log: logger}
}

// AnalyzeImage has no recognition model behind it yet. Every accepted image
// yields the same reference record, flagged as a placeholder.
func (uc *medicineUsecase) AnalyzeImage(ctx context.Context, request *requests.AnalyzeMedicine) (*responses.MedicineAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.AnalyzeImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, request.FileName),
		zap.String(constvars.LoggingContentTypeKey, request.ContentType),
		zap.Int64(constvars.LoggingFileSizeKey, request.Size),
	)

	return &responses.MedicineAnalysis{
		MedicineInfo: referenceMedicine(),
		Placeholder:  true,
	}, nil
}

func referenceMedicine() models.MedicineInfo {
	return models.MedicineInfo{
		Name:         "Paracetamol 500mg",
		GenericName:  "Acetaminophen",
		Manufacturer: "Generic Pharma",
		Uses: []string{
			"Pain relief (headache, toothache, muscle pain)",
			"Fever reduction",
			"Cold and flu symptoms",
		},
		Dosage: models.MedicineDosage{
			Adults:   "500mg-1000mg every 4-6 hours",
			Children: "Consult pediatrician for proper dosage",
			MaxDaily: "Do not exceed 4000mg in 24 hours",
		},
		SideEffects: []string{
			"Rare: Nausea, stomach upset",
			"Serious: Liver damage (with overdose)",
			"Allergic reactions (rash, swelling)",
		},
		Warnings: []string{
			"Do not exceed recommended dose",
			"Avoid alcohol while taking this medication",
			"Consult doctor if symptoms persist beyond 3 days",
			"Not suitable for people with liver problems",
		},
	}
}
