package profiles

import (
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"time"
)

func defaultUserProfile(session *models.Session, now time.Time) *models.UserProfile {
	return &models.UserProfile{
		UserID:           session.UserID,
		Name:             session.Name,
		Email:            session.Email,
		Age:              constvars.ProfileDefaultAge,
		Gender:           constvars.ProfileDefaultGender,
		Phone:            constvars.ProfileDefaultPhone,
		Location:         constvars.ProfileDefaultLocation,
		EmergencyContact: constvars.ProfileDefaultEmergencyContact,
		TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
}

func defaultHealthProfile(userID string, now time.Time) *models.HealthProfile {
	health := &models.HealthProfile{
		UserID:        userID,
		Height:        constvars.ProfileDefaultHeight,
		Weight:        constvars.ProfileDefaultWeight,
		BloodType:     constvars.ProfileDefaultBloodType,
		BloodPressure: constvars.ProfileDefaultBloodPressure,
		HeartRate:     constvars.ProfileDefaultHeartRate,
		Allergies:     []string{constvars.ProfileDefaultAllergy},
		Medications:   []string{constvars.ProfileDefaultMedication},
		TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	applyBMI(health)
	return health
}

func defaultUserSettings(userID string, now time.Time) *models.UserSettings {
	return &models.UserSettings{
		UserID: userID,
		Notifications: models.NotificationSettings{
			HealthReminders:     true,
			AppointmentAlerts:   true,
			MedicationReminders: false,
		},
		Privacy: models.PrivacySettings{
			ProfileVisibility: constvars.ProfileVisibilityPrivate,
			DataSharing:       false,
		},
		Language:  constvars.ProfileDefaultLanguage,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
}

func defaultActivities(userID string, now time.Time) []models.Activity {
	return []models.Activity{
		{
			ID:          "1",
			UserID:      userID,
			Type:        constvars.ProfileActivityHealthAssessment,
			Title:       constvars.ProfileDefaultAssessmentTitle,
			Description: constvars.ProfileDefaultAssessmentDetail,
			Timestamp:   now.AddDate(0, 0, -constvars.ProfileDefaultActivityAgeInDays),
		},
		{
			ID:          "2",
			UserID:      userID,
			Type:        constvars.ProfileActivityConsultation,
			Title:       constvars.ProfileDefaultConsultationTitle,
			Description: constvars.ProfileDefaultConsultationDetail,
			Timestamp:   now.AddDate(0, 0, -constvars.ProfileDefaultActivityOlderInDays),
		},
	}
}

func defaultMedicalHistory(userID string, now time.Time) []models.MedicalHistoryEntry {
	return []models.MedicalHistoryEntry{
		{
			ID:          "1",
			UserID:      userID,
			Type:        constvars.ProfileMedicalHistoryTypeCheckup,
			Title:       constvars.ProfileDefaultCheckupTitle,
			Description: constvars.ProfileDefaultCheckupDescription,
			Doctor:      constvars.ProfileDefaultCheckupDoctor,
			Location:    constvars.ProfileDefaultCheckupLocation,
			Date:        now.AddDate(0, 0, -constvars.ProfileDefaultCheckupAgeInDays).Format(time.DateOnly),
			Timestamp:   now.AddDate(0, 0, -constvars.ProfileDefaultCheckupAgeInDays),
		},
	}
}
