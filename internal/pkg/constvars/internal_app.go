package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_IP_KEY            ContextKey = "client_ip"
)

const (
	REQUEST_ID_PREFIX = "HALO_SVC_"
)

const (
	EQScalePercentDescription    = "Default. Each answer counts as a share of the top rating, so all 1s score 20."
	EQScaleNormalizedDescription = "Rescales the 1-5 range onto 0-100, so all 1s score 0."
)

const (
	ClientKeyUserFormat = "user:%s"
	ClientKeyIPFormat   = "ip:%s"
)

const (
	ServiceName        = "HALO Healthcare API"
	ServiceVersion     = "1.0.0"
	ServiceTagline     = "AI-powered healthcare assistance"
	ServiceSupportMail = "halo.ai.care@gmail.com"
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	ComponentStatusUp     = "connected"
	ComponentStatusDown   = "disconnected"
	ComponentStatusActive = "active"
	ComponentStatusOff    = "not configured"
	HealthCheckTimeout    = 2 * time.Second
)

const (
	OTPLength                   = 6
	DefaultOTPMaxVerifyAttempts = 5
	RegisterLockTTLInSecs       = 10
)

const (
	ProfilePictureMaxSizeInMB = 5
	ProfilePictureObjectDir   = "profile-pictures"
	MedicineImageMaxSizeInMB  = 5
	MultipartFileField        = "file"
	MultipartImageField       = "image"
)

const (
	ProfileRecentActivitiesLimit      = 10
	ProfileRecentMedicalHistoryLimit  = 5
	ProfileSourceDatabase             = "database"
	ProfileSourceDefault              = "default"
	ProfileVisibilityPrivate          = "private"
	ProfileVisibilityPublic           = "public"
	ProfileVisibilityFriends          = "friends"
	ProfileActivityHealthAssessment   = "health_assessment"
	ProfileActivityConsultation       = "consultation"
	ProfileActivityProfileUpdated     = "profile_update"
	ProfileMedicalHistoryTypeCheckup  = "checkup"
	ProfileDefaultGender              = "Not specified"
	ProfileDefaultAge                 = 25
	ProfileDefaultHeight              = `5'8"`
	ProfileDefaultWeight              = "70 kg"
	ProfileDefaultBloodType           = "O+"
	ProfileDefaultBloodPressure       = "120/80"
	ProfileDefaultHeartRate           = "72 bpm"
	ProfileDefaultAllergy             = "None known"
	ProfileDefaultMedication          = "Multivitamin"
	ProfileDefaultLanguage            = "en"
	ProfileDefaultPhone               = "+1 234 567 8900"
	ProfileDefaultLocation            = "Test City, Country"
	ProfileDefaultEmergencyContact    = "+1 234 567 8901"
	ProfileDefaultConsultationDoctor  = "Dr. Smith"
	ProfileDefaultCheckupDoctor       = "Dr. Johnson"
	ProfileDefaultCheckupLocation     = "City Medical Center"
	ProfileDefaultCheckupTitle        = "Annual Health Checkup"
	ProfileDefaultAssessmentTitle     = "Health Assessment Completed"
	ProfileDefaultConsultationTitle   = "Doctor Consultation Scheduled"
	ProfileDefaultAssessmentDetail    = "Completed comprehensive health assessment"
	ProfileDefaultConsultationDetail  = "Scheduled consultation with Dr. Smith"
	ProfileDefaultCheckupDescription  = "Routine annual physical examination. All vitals normal."
	ProfileDefaultActivityAgeInDays   = 1
	ProfileDefaultActivityOlderInDays = 3
	ProfileDefaultCheckupAgeInDays    = 30
)

const (
	GeolocationTimeoutInMillis = 10000
	GeolocationMaximumAgeInMs  = 300000
	PlacesDefaultRadiusMeters  = 5000
	PlacesMaxRadiusMeters      = 50000
	PlacesMinRating            = 3.0
	PlacesResultLimit          = 20
)
