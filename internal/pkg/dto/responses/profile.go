package responses

import "halo-service/internal/app/models"

type CompleteProfile struct {
	Profile        *models.UserProfile          `json:"profile"`
	Health         *models.HealthProfile        `json:"health"`
	Activities     []models.Activity            `json:"activities"`
	Settings       *models.UserSettings         `json:"settings"`
	MedicalHistory []models.MedicalHistoryEntry `json:"medicalHistory"`
	// Sources tells, per part, whether it came from the database or defaults.
	Sources map[string]string `json:"sources"`
}

type UploadProfilePicture struct {
	PhotoURL string `json:"photoURL"`
}
