package profiles

import (
	"context"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/bmi"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	partProfile        = "profile"
	partHealth         = "health"
	partActivities     = "activities"
	partSettings       = "settings"
	partMedicalHistory = "medicalHistory"
)

type profileUsecase struct {
	UserProfileRepository    contracts.UserProfileRepository
	HealthProfileRepository  contracts.HealthProfileRepository
	UserSettingsRepository   contracts.UserSettingsRepository
	ActivityRepository       contracts.ActivityRepository
	MedicalHistoryRepository contracts.MedicalHistoryRepository
	Storage                  contracts.Storage
	Log                      *zap.Logger
}

func NewProfileUsecase(
	userProfileRepository contracts.UserProfileRepository,
	healthProfileRepository contracts.HealthProfileRepository,
	userSettingsRepository contracts.UserSettingsRepository,
	activityRepository contracts.ActivityRepository,
	medicalHistoryRepository contracts.MedicalHistoryRepository,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		UserProfileRepository:    userProfileRepository,
		HealthProfileRepository:  healthProfileRepository,
		UserSettingsRepository:   userSettingsRepository,
		ActivityRepository:       activityRepository,
		MedicalHistoryRepository: medicalHistoryRepository,
		Storage:                  storage,
		Log:                      logger,
	}
}

func (uc *profileUsecase) GetCompleteProfile(ctx context.Context, session *models.Session, userID string) (*responses.CompleteProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetCompleteProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var (
		profile        *models.UserProfile
		health         *models.HealthProfile
		activities     []models.Activity
		settings       *models.UserSettings
		medicalHistory []models.MedicalHistoryEntry

		profileSource, healthSource, activitiesSource, settingsSource, historySource string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, profileSource = uc.profileChain(session, now).Resolve(gctx, userID)
		return nil
	})
	g.Go(func() error {
		health, healthSource = uc.healthChain(now).Resolve(gctx, userID)
		return nil
	})
	g.Go(func() error {
		activities, activitiesSource = uc.activitiesChain(now).Resolve(gctx, userID)
		return nil
	})
	g.Go(func() error {
		settings, settingsSource = uc.settingsChain(now).Resolve(gctx, userID)
		return nil
	})
	g.Go(func() error {
		medicalHistory, historySource = uc.medicalHistoryChain(now).Resolve(gctx, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	applyBMI(health)

	uc.Log.Info("profileUsecase.GetCompleteProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.CompleteProfile{
		Profile:        profile,
		Health:         health,
		Activities:     activities,
		Settings:       settings,
		MedicalHistory: medicalHistory,
		Sources: map[string]string{
			partProfile:        profileSource,
			partHealth:         healthSource,
			partActivities:     activitiesSource,
			partSettings:       settingsSource,
			partMedicalHistory: historySource,
		},
	}, nil
}

func (uc *profileUsecase) UpdatePersonalInfo(ctx context.Context, session *models.Session, userID string, request *requests.UpdatePersonalInfo) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdatePersonalInfo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setIfNotEmpty(fields, "name", request.Name)
	setIfNotEmpty(fields, "gender", request.Gender)
	setIfNotEmpty(fields, "phone", request.Phone)
	setIfNotEmpty(fields, "location", request.Location)
	setIfNotEmpty(fields, "emergencyContact", request.EmergencyContact)
	if request.Age != nil {
		fields["age"] = *request.Age
	}

	profile, err := uc.UserProfileRepository.Upsert(ctx, userID, fields)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdatePersonalInfo error calling UserProfileRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UpdatePersonalInfo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return profile, nil
}

func (uc *profileUsecase) UpdateHealthProfile(ctx context.Context, session *models.Session, userID string, request *requests.UpdateHealthProfile) (*models.HealthProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateHealthProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setIfNotEmpty(fields, "height", request.Height)
	setIfNotEmpty(fields, "heightUnit", strings.ToLower(request.HeightUnit))
	setIfNotEmpty(fields, "weight", request.Weight)
	setIfNotEmpty(fields, "bloodType", request.BloodType)
	setIfNotEmpty(fields, "bloodPressure", request.BloodPressure)
	setIfNotEmpty(fields, "heartRate", request.HeartRate)
	if request.Allergies != nil {
		fields["allergies"] = request.Allergies
	}
	if request.Medications != nil {
		fields["medications"] = request.Medications
	}

	health, err := uc.HealthProfileRepository.Upsert(ctx, userID, fields)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateHealthProfile error calling HealthProfileRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	applyBMI(health)

	uc.Log.Info("profileUsecase.UpdateHealthProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBMIKey, health.BMI),
	)
	return health, nil
}

func (uc *profileUsecase) UpdateSettings(ctx context.Context, session *models.Session, userID string, request *requests.UpdateSettings) (*models.UserSettings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Notifications != nil {
		fields["notifications"] = models.NotificationSettings{
			HealthReminders:     request.Notifications.HealthReminders,
			AppointmentAlerts:   request.Notifications.AppointmentAlerts,
			MedicationReminders: request.Notifications.MedicationReminders,
		}
	}
	if request.Privacy != nil {
		fields["privacy"] = models.PrivacySettings{
			ProfileVisibility: request.Privacy.ProfileVisibility,
			DataSharing:       request.Privacy.DataSharing,
		}
	}
	setIfNotEmpty(fields, "language", request.Language)

	settings, err := uc.UserSettingsRepository.Upsert(ctx, userID, fields)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateSettings error calling UserSettingsRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UpdateSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return settings, nil
}

func (uc *profileUsecase) AddActivity(ctx context.Context, session *models.Session, userID string, request *requests.AddActivity) (*models.Activity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.AddActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        request.Type,
		Title:       request.Title,
		Description: request.Description,
		Timestamp:   time.Now().UTC(),
	}
	if err := uc.ActivityRepository.Insert(ctx, activity); err != nil {
		uc.Log.Error("profileUsecase.AddActivity error calling ActivityRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return activity, nil
}

func (uc *profileUsecase) AddMedicalHistory(ctx context.Context, session *models.Session, userID string, request *requests.AddMedicalHistory) (*models.MedicalHistoryEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.AddMedicalHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &models.MedicalHistoryEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        request.Type,
		Title:       request.Title,
		Description: request.Description,
		Doctor:      request.Doctor,
		Location:    request.Location,
		Date:        request.Date,
		Timestamp:   now,
	}
	if entry.Date == "" {
		entry.Date = now.Format(time.DateOnly)
	}

	if err := uc.MedicalHistoryRepository.Insert(ctx, entry); err != nil {
		uc.Log.Error("profileUsecase.AddMedicalHistory error calling MedicalHistoryRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return entry, nil
}

func (uc *profileUsecase) GetMedicalHistory(ctx context.Context, session *models.Session, userID string) ([]models.MedicalHistoryEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetMedicalHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := authorizeOwner(session, userID); err != nil {
		return nil, err
	}

	entries, err := uc.MedicalHistoryRepository.FindByUserID(ctx, userID, 0)
	if err != nil {
		uc.Log.Error("profileUsecase.GetMedicalHistory error calling MedicalHistoryRepository.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.GetMedicalHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(entries)),
	)
	return entries, nil
}

func (uc *profileUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, file io.Reader, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingFileNameKey, request.FileName),
		zap.Int64(constvars.LoggingFileSizeKey, request.Size),
	)

	if err := authorizeOwner(session, request.UserID); err != nil {
		return nil, err
	}
	if uc.Storage == nil {
		uc.Log.Warn("profileUsecase.UploadProfilePicture object storage not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrStorageNotConfigured(nil)
	}

	objectName := utils.GenerateObjectName(constvars.ProfilePictureObjectDir, request.UserID, request.FileName)
	photoURL, err := uc.Storage.UploadObject(ctx, file, request.Size, objectName, request.ContentType)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error calling Storage.UploadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	_, err = uc.UserProfileRepository.Upsert(ctx, request.UserID, map[string]interface{}{"photoURL": photoURL})
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error calling UserProfileRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UploadProfilePicture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectURLKey, photoURL),
	)
	return &responses.UploadProfilePicture{PhotoURL: photoURL}, nil
}

func (uc *profileUsecase) profileChain(session *models.Session, now time.Time) PartChain[*models.UserProfile] {
	return PartChain[*models.UserProfile]{
		Part: partProfile,
		Log:  uc.Log,
		Providers: []PartProvider[*models.UserProfile]{
			providerFunc[*models.UserProfile]{
				source: constvars.ProfileSourceDatabase,
				load: func(ctx context.Context, userID string) (*models.UserProfile, bool, error) {
					profile, err := uc.UserProfileRepository.FindByUserID(ctx, userID)
					return profile, profile != nil, err
				},
			},
			providerFunc[*models.UserProfile]{
				source: constvars.ProfileSourceDefault,
				load: func(ctx context.Context, userID string) (*models.UserProfile, bool, error) {
					return defaultUserProfile(session, now), true, nil
				},
			},
		},
	}
}

func (uc *profileUsecase) healthChain(now time.Time) PartChain[*models.HealthProfile] {
	return PartChain[*models.HealthProfile]{
		Part: partHealth,
		Log:  uc.Log,
		Providers: []PartProvider[*models.HealthProfile]{
			providerFunc[*models.HealthProfile]{
				source: constvars.ProfileSourceDatabase,
				load: func(ctx context.Context, userID string) (*models.HealthProfile, bool, error) {
					health, err := uc.HealthProfileRepository.FindByUserID(ctx, userID)
					return health, health != nil, err
				},
			},
			providerFunc[*models.HealthProfile]{
				source: constvars.ProfileSourceDefault,
				load: func(ctx context.Context, userID string) (*models.HealthProfile, bool, error) {
					return defaultHealthProfile(userID, now), true, nil
				},
			},
		},
	}
}

func (uc *profileUsecase) activitiesChain(now time.Time) PartChain[[]models.Activity] {
	return PartChain[[]models.Activity]{
		Part: partActivities,
		Log:  uc.Log,
		Providers: []PartProvider[[]models.Activity]{
			providerFunc[[]models.Activity]{
				source: constvars.ProfileSourceDatabase,
				load: func(ctx context.Context, userID string) ([]models.Activity, bool, error) {
					activities, err := uc.ActivityRepository.FindRecentByUserID(ctx, userID, constvars.ProfileRecentActivitiesLimit)
					return activities, len(activities) > 0, err
				},
			},
			providerFunc[[]models.Activity]{
				source: constvars.ProfileSourceDefault,
				load: func(ctx context.Context, userID string) ([]models.Activity, bool, error) {
					return defaultActivities(userID, now), true, nil
				},
			},
		},
	}
}

func (uc *profileUsecase) settingsChain(now time.Time) PartChain[*models.UserSettings] {
	return PartChain[*models.UserSettings]{
		Part: partSettings,
		Log:  uc.Log,
		Providers: []PartProvider[*models.UserSettings]{
			providerFunc[*models.UserSettings]{
				source: constvars.ProfileSourceDatabase,
				load: func(ctx context.Context, userID string) (*models.UserSettings, bool, error) {
					settings, err := uc.UserSettingsRepository.FindByUserID(ctx, userID)
					return settings, settings != nil, err
				},
			},
			providerFunc[*models.UserSettings]{
				source: constvars.ProfileSourceDefault,
				load: func(ctx context.Context, userID string) (*models.UserSettings, bool, error) {
					return defaultUserSettings(userID, now), true, nil
				},
			},
		},
	}
}

func (uc *profileUsecase) medicalHistoryChain(now time.Time) PartChain[[]models.MedicalHistoryEntry] {
	return PartChain[[]models.MedicalHistoryEntry]{
		Part: partMedicalHistory,
		Log:  uc.Log,
		Providers: []PartProvider[[]models.MedicalHistoryEntry]{
			providerFunc[[]models.MedicalHistoryEntry]{
				source: constvars.ProfileSourceDatabase,
				load: func(ctx context.Context, userID string) ([]models.MedicalHistoryEntry, bool, error) {
					entries, err := uc.MedicalHistoryRepository.FindByUserID(ctx, userID, constvars.ProfileRecentMedicalHistoryLimit)
					return entries, len(entries) > 0, err
				},
			},
			providerFunc[[]models.MedicalHistoryEntry]{
				source: constvars.ProfileSourceDefault,
				load: func(ctx context.Context, userID string) ([]models.MedicalHistoryEntry, bool, error) {
					return defaultMedicalHistory(userID, now), true, nil
				},
			},
		},
	}
}

func authorizeOwner(session *models.Session, userID string) error {
	if session == nil || session.UserID != userID {
		return exceptions.ErrAccessDenied(nil)
	}
	return nil
}

func setIfNotEmpty(fields map[string]interface{}, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

// applyBMI fills the derived BMI fields. Unusable inputs leave them empty.
func applyBMI(health *models.HealthProfile) {
	if health == nil {
		return
	}
	value, err := bmi.CalculateFromStrings(health.Height, health.HeightUnit, health.Weight)
	if err != nil {
		health.BMI = ""
		health.BMICategory = ""
		return
	}
	health.BMI = bmi.Format(value)
	health.BMICategory = bmi.Category(bmi.Round(value))
}
