package requests

type UpdatePersonalInfo struct {
	Name             string `json:"name" validate:"omitempty,min=3,max=100"`
	Age              *int   `json:"age" validate:"omitempty,gte=1,lte=120"`
	Gender           string `json:"gender" validate:"omitempty,max=50"`
	Phone            string `json:"phone" validate:"omitempty,phone_number"`
	Location         string `json:"location" validate:"omitempty,max=200"`
	EmergencyContact string `json:"emergencyContact" validate:"omitempty,phone_number"`
}

type UpdateHealthProfile struct {
	Height        string   `json:"height" validate:"omitempty,max=20"`
	HeightUnit    string   `json:"heightUnit" validate:"omitempty,height_unit"`
	Weight        string   `json:"weight" validate:"omitempty,max=20"`
	BloodType     string   `json:"bloodType" validate:"omitempty,blood_type"`
	BloodPressure string   `json:"bloodPressure" validate:"omitempty,max=20"`
	HeartRate     string   `json:"heartRate" validate:"omitempty,max=20"`
	Allergies     []string `json:"allergies" validate:"omitempty,dive,max=100"`
	Medications   []string `json:"medications" validate:"omitempty,dive,max=100"`
}

type NotificationSettings struct {
	HealthReminders     bool `json:"healthReminders"`
	AppointmentAlerts   bool `json:"appointmentAlerts"`
	MedicationReminders bool `json:"medicationReminders"`
}

type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility" validate:"required,oneof=private public friends"`
	DataSharing       bool   `json:"dataSharing"`
}

type UpdateSettings struct {
	Notifications *NotificationSettings `json:"notifications"`
	Privacy       *PrivacySettings      `json:"privacy" validate:"omitempty"`
	Language      string                `json:"language" validate:"omitempty,language"`
}

type AddActivity struct {
	Type        string `json:"type" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type AddMedicalHistory struct {
	Type        string `json:"type" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Doctor      string `json:"doctor" validate:"omitempty,max=100"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Date        string `json:"date" validate:"omitempty,max=40"`
}

type UploadProfilePicture struct {
	UserID      string
	FileName    string
	ContentType string
	Size        int64
}
