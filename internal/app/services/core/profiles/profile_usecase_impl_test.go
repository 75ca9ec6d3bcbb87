package profiles

import (
	"bytes"
	"context"
	"errors"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/mocks"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type profileFixture struct {
	profiles   *mocks.MockUserProfileRepository
	health     *mocks.MockHealthProfileRepository
	settings   *mocks.MockUserSettingsRepository
	activities *mocks.MockActivityRepository
	history    *mocks.MockMedicalHistoryRepository
	storage    *mocks.MockStorage
	usecase    contracts.ProfileUsecase
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		profiles:   new(mocks.MockUserProfileRepository),
		health:     new(mocks.MockHealthProfileRepository),
		settings:   new(mocks.MockUserSettingsRepository),
		activities: new(mocks.MockActivityRepository),
		history:    new(mocks.MockMedicalHistoryRepository),
		storage:    new(mocks.MockStorage),
	}
	f.usecase = NewProfileUsecase(f.profiles, f.health, f.settings, f.activities, f.history, f.storage, zap.NewNop())
	return f
}

var ownerSession = &models.Session{SessionID: "s-1", UserID: "user-1", Name: "Asha", Email: "asha@example.com"}

func TestProfileUsecase_GetCompleteProfile(t *testing.T) {
	t.Run("reads every part from the database", func(t *testing.T) {
		f := newProfileFixture()
		f.profiles.On("FindByUserID", mock.Anything, "user-1").Return(&models.UserProfile{UserID: "user-1", Name: "Asha R"}, nil).Once()
		f.health.On("FindByUserID", mock.Anything, "user-1").Return(&models.HealthProfile{UserID: "user-1", Height: "175", Weight: "70 kg"}, nil).Once()
		f.activities.On("FindRecentByUserID", mock.Anything, "user-1", int64(10)).Return([]models.Activity{{ID: "a-1"}}, nil).Once()
		f.settings.On("FindByUserID", mock.Anything, "user-1").Return(&models.UserSettings{UserID: "user-1", Language: "hi"}, nil).Once()
		f.history.On("FindByUserID", mock.Anything, "user-1", int64(5)).Return([]models.MedicalHistoryEntry{{ID: "h-1"}}, nil).Once()

		result, err := f.usecase.GetCompleteProfile(context.Background(), ownerSession, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "Asha R", result.Profile.Name)
		assert.Equal(t, "22.9", result.Health.BMI)
		assert.Equal(t, "Normal", result.Health.BMICategory)
		assert.Equal(t, "hi", result.Settings.Language)
		assert.Len(t, result.Activities, 1)
		assert.Len(t, result.MedicalHistory, 1)
		for part, source := range result.Sources {
			assert.Equal(t, constvars.ProfileSourceDatabase, source, "part %s should come from the database", part)
		}
	})

	t.Run("serves defaults when the database is unreachable", func(t *testing.T) {
		f := newProfileFixture()
		dbErr := errors.New("server selection timeout")
		f.profiles.On("FindByUserID", mock.Anything, "user-1").Return(nil, dbErr).Once()
		f.health.On("FindByUserID", mock.Anything, "user-1").Return(nil, dbErr).Once()
		f.activities.On("FindRecentByUserID", mock.Anything, "user-1", int64(10)).Return(nil, dbErr).Once()
		f.settings.On("FindByUserID", mock.Anything, "user-1").Return(nil, dbErr).Once()
		f.history.On("FindByUserID", mock.Anything, "user-1", int64(5)).Return(nil, dbErr).Once()

		result, err := f.usecase.GetCompleteProfile(context.Background(), ownerSession, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "Asha", result.Profile.Name)
		assert.Equal(t, "asha@example.com", result.Profile.Email)
		assert.Equal(t, 25, result.Profile.Age)
		assert.Equal(t, `5'8"`, result.Health.Height)
		assert.Equal(t, "23.5", result.Health.BMI)
		assert.Equal(t, []string{"None known"}, result.Health.Allergies)
		assert.Equal(t, "private", result.Settings.Privacy.ProfileVisibility)
		assert.True(t, result.Settings.Notifications.HealthReminders)
		assert.False(t, result.Settings.Notifications.MedicationReminders)
		assert.Len(t, result.Activities, 2)
		assert.Len(t, result.MedicalHistory, 1)
		for part, source := range result.Sources {
			assert.Equal(t, constvars.ProfileSourceDefault, source, "part %s should fall back to defaults", part)
		}
	})

	t.Run("another user's profile is forbidden", func(t *testing.T) {
		f := newProfileFixture()

		_, err := f.usecase.GetCompleteProfile(context.Background(), ownerSession, "user-2")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
		assert.Equal(t, "Access denied", customErr.ClientMessage)
		f.profiles.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

func TestProfileUsecase_UpdatePersonalInfo(t *testing.T) {
	t.Run("only supplied fields are sent", func(t *testing.T) {
		f := newProfileFixture()
		age := 31
		expectedFields := map[string]interface{}{"name": "Asha R", "phone": "+91 98765 43210", "age": 31}
		stored := &models.UserProfile{UserID: "user-1", Name: "Asha R", Age: 31}
		f.profiles.On("Upsert", mock.Anything, "user-1", expectedFields).Return(stored, nil).Once()

		result, err := f.usecase.UpdatePersonalInfo(context.Background(), ownerSession, "user-1", &requests.UpdatePersonalInfo{
			Name: "Asha R", Phone: "+91 98765 43210", Age: &age,
		})

		require.NoError(t, err)
		assert.Same(t, stored, result)
		f.profiles.AssertExpectations(t)
	})

	t.Run("another user's profile is forbidden", func(t *testing.T) {
		f := newProfileFixture()

		_, err := f.usecase.UpdatePersonalInfo(context.Background(), ownerSession, "user-2", &requests.UpdatePersonalInfo{Name: "X"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
		f.profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileUsecase_UpdateHealthProfile(t *testing.T) {
	f := newProfileFixture()
	f.health.On("Upsert", mock.Anything, "user-1", map[string]interface{}{
		"height":     "5.5",
		"heightUnit": "ft",
		"weight":     "65",
		"allergies":  []string{"Peanuts"},
	}).Return(&models.HealthProfile{UserID: "user-1", Height: "5.5", HeightUnit: "ft", Weight: "65", Allergies: []string{"Peanuts"}}, nil).Once()

	health, err := f.usecase.UpdateHealthProfile(context.Background(), ownerSession, "user-1", &requests.UpdateHealthProfile{
		Height:     "5.5",
		HeightUnit: "FT",
		Weight:     "65",
		Allergies:  []string{"Peanuts"},
	})

	require.NoError(t, err)
	assert.Equal(t, "23.1", health.BMI)
	f.health.AssertExpectations(t)
}

func TestProfileUsecase_UpdateSettings(t *testing.T) {
	f := newProfileFixture()
	f.settings.On("Upsert", mock.Anything, "user-1", map[string]interface{}{
		"privacy":  models.PrivacySettings{ProfileVisibility: "friends", DataSharing: true},
		"language": "pa",
	}).Return(&models.UserSettings{UserID: "user-1", Language: "pa"}, nil).Once()

	settings, err := f.usecase.UpdateSettings(context.Background(), ownerSession, "user-1", &requests.UpdateSettings{
		Privacy:  &requests.PrivacySettings{ProfileVisibility: "friends", DataSharing: true},
		Language: "pa",
	})

	require.NoError(t, err)
	assert.Equal(t, "pa", settings.Language)
	f.settings.AssertExpectations(t)
}

func TestProfileUsecase_AddEntries(t *testing.T) {
	t.Run("activity gets id and timestamp", func(t *testing.T) {
		f := newProfileFixture()
		f.activities.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
			return a.ID != "" && a.UserID == "user-1" && !a.Timestamp.IsZero()
		})).Return(nil).Once()

		activity, err := f.usecase.AddActivity(context.Background(), ownerSession, "user-1", &requests.AddActivity{Type: "consultation", Title: "Visit"})

		require.NoError(t, err)
		assert.Equal(t, "Visit", activity.Title)
	})

	t.Run("medical history write failure surfaces", func(t *testing.T) {
		f := newProfileFixture()
		f.history.On("Insert", mock.Anything, mock.Anything).Return(exceptions.ErrMongoDBInsertDocument(errors.New("down"))).Once()

		_, err := f.usecase.AddMedicalHistory(context.Background(), ownerSession, "user-1", &requests.AddMedicalHistory{Type: "checkup", Title: "Annual"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})

	t.Run("medical history list is unbounded", func(t *testing.T) {
		f := newProfileFixture()
		f.history.On("FindByUserID", mock.Anything, "user-1", int64(0)).Return([]models.MedicalHistoryEntry{{ID: "h-2"}, {ID: "h-1"}}, nil).Once()

		entries, err := f.usecase.GetMedicalHistory(context.Background(), ownerSession, "user-1")

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestProfileUsecase_UploadProfilePicture(t *testing.T) {
	f := newProfileFixture()
	body := bytes.NewReader([]byte("png-bytes"))
	f.storage.On("UploadObject", mock.Anything, body, int64(9), mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "profile-pictures/user-1/") && strings.HasSuffix(name, ".png")
	}), "image/png").Return("https://cdn.example.com/halo/profile-pictures/user-1/x.png", nil).Once()
	f.profiles.On("Upsert", mock.Anything, "user-1", map[string]interface{}{
		"photoURL": "https://cdn.example.com/halo/profile-pictures/user-1/x.png",
	}).Return(&models.UserProfile{UserID: "user-1"}, nil).Once()

	result, err := f.usecase.UploadProfilePicture(context.Background(), ownerSession, body, &requests.UploadProfilePicture{
		UserID:      "user-1",
		FileName:    "Me.PNG",
		ContentType: "image/png",
		Size:        9,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/halo/profile-pictures/user-1/x.png", result.PhotoURL)
	f.storage.AssertExpectations(t)
	f.profiles.AssertExpectations(t)
}

func TestProfileUsecase_UploadProfilePicture_StorageNotConfigured(t *testing.T) {
	profiles := new(mocks.MockUserProfileRepository)
	usecase := NewProfileUsecase(profiles, new(mocks.MockHealthProfileRepository), new(mocks.MockUserSettingsRepository),
		new(mocks.MockActivityRepository), new(mocks.MockMedicalHistoryRepository), nil, zap.NewNop())

	result, err := usecase.UploadProfilePicture(context.Background(), ownerSession, bytes.NewReader([]byte("png-bytes")), &requests.UploadProfilePicture{
		UserID:      "user-1",
		FileName:    "me.png",
		ContentType: "image/png",
		Size:        9,
	})

	assert.Nil(t, result)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 503, customErr.StatusCode)
	assert.Equal(t, "File storage is not configured", customErr.ClientMessage)
	profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}
