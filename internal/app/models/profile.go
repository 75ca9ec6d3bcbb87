package models

import "time"

// UserProfile, HealthProfile and UserSettings are singleton documents keyed
// by the owning user id.
type UserProfile struct {
	UserID           string  `json:"userId" bson:"_id"`
	Name             string  `json:"name" bson:"name,omitempty"`
	Email            string  `json:"email" bson:"email,omitempty"`
	Age              int     `json:"age" bson:"age,omitempty"`
	Gender           string  `json:"gender" bson:"gender,omitempty"`
	Phone            string  `json:"phone" bson:"phone,omitempty"`
	Location         string  `json:"location" bson:"location,omitempty"`
	EmergencyContact string  `json:"emergencyContact" bson:"emergencyContact,omitempty"`
	PhotoURL         *string `json:"photoURL" bson:"photoURL,omitempty"`
	TimeModel        `bson:",inline"`
}

type HealthProfile struct {
	UserID        string   `json:"userId" bson:"_id"`
	Height        string   `json:"height" bson:"height,omitempty"`
	HeightUnit    string   `json:"heightUnit,omitempty" bson:"heightUnit,omitempty"`
	Weight        string   `json:"weight" bson:"weight,omitempty"`
	BMI           string   `json:"bmi" bson:"-"`
	BMICategory   string   `json:"bmiCategory,omitempty" bson:"-"`
	BloodType     string   `json:"bloodType" bson:"bloodType,omitempty"`
	BloodPressure string   `json:"bloodPressure" bson:"bloodPressure,omitempty"`
	HeartRate     string   `json:"heartRate" bson:"heartRate,omitempty"`
	Allergies     []string `json:"allergies" bson:"allergies,omitempty"`
	Medications   []string `json:"medications" bson:"medications,omitempty"`
	TimeModel     `bson:",inline"`
}

type NotificationSettings struct {
	HealthReminders     bool `json:"healthReminders" bson:"healthReminders"`
	AppointmentAlerts   bool `json:"appointmentAlerts" bson:"appointmentAlerts"`
	MedicationReminders bool `json:"medicationReminders" bson:"medicationReminders"`
}

type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility" bson:"profileVisibility"`
	DataSharing       bool   `json:"dataSharing" bson:"dataSharing"`
}

type UserSettings struct {
	UserID        string               `json:"userId" bson:"_id"`
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
	Privacy       PrivacySettings      `json:"privacy" bson:"privacy"`
	Language      string               `json:"language" bson:"language,omitempty"`
	TimeModel     `bson:",inline"`
}

type Activity struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"userId"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

type MedicalHistoryEntry struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"userId"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Doctor      string    `json:"doctor" bson:"doctor"`
	Location    string    `json:"location" bson:"location"`
	Date        string    `json:"date" bson:"date"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
