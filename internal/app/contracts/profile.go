package contracts

import (
	"context"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"io"
)

type ProfileUsecase interface {
	GetCompleteProfile(ctx context.Context, session *models.Session, userID string) (*responses.CompleteProfile, error)
	UpdatePersonalInfo(ctx context.Context, session *models.Session, userID string, request *requests.UpdatePersonalInfo) (*models.UserProfile, error)
	UpdateHealthProfile(ctx context.Context, session *models.Session, userID string, request *requests.UpdateHealthProfile) (*models.HealthProfile, error)
	UpdateSettings(ctx context.Context, session *models.Session, userID string, request *requests.UpdateSettings) (*models.UserSettings, error)
	AddActivity(ctx context.Context, session *models.Session, userID string, request *requests.AddActivity) (*models.Activity, error)
	AddMedicalHistory(ctx context.Context, session *models.Session, userID string, request *requests.AddMedicalHistory) (*models.MedicalHistoryEntry, error)
	GetMedicalHistory(ctx context.Context, session *models.Session, userID string) ([]models.MedicalHistoryEntry, error)
	UploadProfilePicture(ctx context.Context, session *models.Session, file io.Reader, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error)
}

type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, userID string, fields map[string]interface{}) (*models.UserProfile, error)
}

type HealthProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.HealthProfile, error)
	Upsert(ctx context.Context, userID string, fields map[string]interface{}) (*models.HealthProfile, error)
}

type UserSettingsRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserSettings, error)
	Upsert(ctx context.Context, userID string, fields map[string]interface{}) (*models.UserSettings, error)
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity *models.Activity) error
	FindRecentByUserID(ctx context.Context, userID string, limit int64) ([]models.Activity, error)
}

type MedicalHistoryRepository interface {
	Insert(ctx context.Context, entry *models.MedicalHistoryEntry) error
	// FindByUserID returns entries newest first; limit 0 means no limit.
	FindByUserID(ctx context.Context, userID string, limit int64) ([]models.MedicalHistoryEntry, error)
}
