package contracts

import (
	"context"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specialty string) ([]models.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID int) (*models.Doctor, error)
}

type MedicineUsecase interface {
	AnalyzeImage(ctx context.Context, request *requests.AnalyzeMedicine) (*responses.MedicineAnalysis, error)
}
