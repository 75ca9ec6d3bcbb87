package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionUserProfiles   = "users_profiles"
	MongoCollectionHealthProfiles = "health_profiles"
	MongoCollectionUserSettings   = "user_settings"
	MongoCollectionActivities     = "user_activities"
	MongoCollectionMedicalHistory = "medical_history"
)

const (
	RedisKeySessionFormat      = "session:%s"
	RedisKeyOTPFormat          = "otp:%s"
	RedisKeyOTPVerifiedFormat  = "otp-verified:%s"
	RedisKeyOTPAttemptsFormat  = "otp-attempts:%s"
	RedisKeyDiagnosisFormat    = "diagnosis:%s"
	RedisKeyRegisterLockFormat = "lock:register:%s"
)

const (
	LimiterGroupDiagnosis = "diagnosis-quota"
)

const (
	StorageDriverMinio = "minio"
	StorageDriverS3    = "s3"
)
