package doctors

import (
	"context"
	"fmt"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"strings"

	"go.uber.org/zap"
)

const placeholderImage = "/api/placeholder/150/150"

var directory = []models.Doctor{
	{
		ID:           1,
		Name:         "Dr. Sarah Johnson",
		Specialty:    "General Medicine",
		Rating:       4.8,
		Experience:   "10 years",
		Availability: "Available Now",
		Fee:          "$50",
		Image:        placeholderImage,
	},
	{
		ID:           2,
		Name:         "Dr. Michael Chen",
		Specialty:    "Cardiology",
		Rating:       4.9,
		Experience:   "15 years",
		Availability: "Available in 30 mins",
		Fee:          "$75",
		Image:        placeholderImage,
	},
	{
		ID:           3,
		Name:         "Dr. Emily Rodriguez",
		Specialty:    "Pediatrics",
		Rating:       4.7,
		Experience:   "8 years",
		Availability: "Available Tomorrow",
		Fee:          "$60",
		Image:        placeholderImage,
	},
}

type doctorUsecase struct {
	Doctors []models.Doctor
	Log     *zap.Logger
}

func NewDoctorUsecase(logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		Doctors: directory,
		Log:     logger,
	}
}

// ListDoctors returns the directory, narrowed to one specialty when given.
func (uc *doctorUsecase) ListDoctors(ctx context.Context, specialty string) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	specialty = strings.TrimSpace(specialty)
	result := make([]models.Doctor, 0, len(uc.Doctors))
	for _, doctor := range uc.Doctors {
		if specialty != "" && !strings.EqualFold(doctor.Specialty, specialty) {
			continue
		}
		result = append(result, doctor)
	}

	uc.Log.Info("doctorUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID int) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	for _, doctor := range uc.Doctors {
		if doctor.ID == doctorID {
			found := doctor
			return &found, nil
		}
	}

	uc.Log.Error("doctorUsecase.GetDoctorByID doctor not found",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, doctorID),
	)
	return nil, exceptions.ErrNotFound(fmt.Errorf("doctor %d not found", doctorID), constvars.ErrClientDoctorNotFound)
}
