package config

import (
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "halo"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp.gmail.com"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 587),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "halo"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			PublicURL:  utils.GetEnvString("MINIO_PUBLIC_URL", ""),
		},
		S3: S3{
			Region:          utils.GetEnvString("S3_REGION", "ap-south-1"),
			AccessKeyID:     utils.GetEnvString("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: utils.GetEnvString("S3_SECRET_ACCESS_KEY", ""),
			BucketName:      utils.GetEnvString("S3_BUCKET_NAME", "halo"),
			Endpoint:        utils.GetEnvString("S3_ENDPOINT", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "5000"),
			Version:                    utils.GetEnvString("APP_VERSION", constvars.ServiceVersion),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			AuthMaxRequestsPerMinute:   utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 10),
			AuthBlockTimeInSeconds:     utils.GetEnvInt("APP_AUTH_BLOCK_TIME_IN_SECONDS", 60),
			TrustedProxies:             utils.GetEnvString("APP_TRUSTED_PROXIES", ""),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		OTP: AppOTP{
			ExpiredTimeInMinutes:  utils.GetEnvInt("OTP_EXPIRED_TIME_IN_MINUTES", 5),
			VerifiedTimeInMinutes: utils.GetEnvInt("OTP_VERIFIED_TIME_IN_MINUTES", 10),
			MaxVerifyAttempts:     utils.GetEnvInt("OTP_MAX_VERIFY_ATTEMPTS", 5),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", constvars.ServiceSupportMail),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "halo-mailer"),
		},
		Storage: AppStorage{
			Driver:                          utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverMinio),
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt64("APP_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", constvars.ProfilePictureMaxSizeInMB),
			MedicineImageMaxUploadSizeInMB:  utils.GetEnvInt64("APP_MEDICINE_IMAGE_UPLOAD_MAX_SIZE_IN_MB", constvars.MedicineImageMaxSizeInMB),
		},
		Diagnosis: AppDiagnosis{
			LocalFallbackEnabled:      utils.GetEnvBool("DIAGNOSIS_LOCAL_FALLBACK_ENABLED", true),
			TimeoutInSeconds:          utils.GetEnvInt("DIAGNOSIS_TIMEOUT_IN_SECONDS", 30),
			CacheTTLInMinutes:         utils.GetEnvInt("DIAGNOSIS_CACHE_TTL_IN_MINUTES", 60),
			QuotaPerWindow:            utils.GetEnvInt("DIAGNOSIS_QUOTA_PER_WINDOW", 20),
			QuotaWindowInSeconds:      utils.GetEnvInt("DIAGNOSIS_QUOTA_WINDOW_IN_SECONDS", 3600),
			OutboundRequestsPerMinute: utils.GetEnvInt("DIAGNOSIS_OUTBOUND_REQUESTS_PER_MINUTE", 15),
		},
		Gemini: AppGemini{
			APIKey: utils.GetEnvString("GEMINI_API_KEY", ""),
			Model:  utils.GetEnvString("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Completion: AppCompletion{
			BaseURL:              utils.GetEnvString("COMPLETION_BASE_URL", ""),
			APIKey:               utils.GetEnvString("COMPLETION_API_KEY", ""),
			Model:                utils.GetEnvString("COMPLETION_MODEL", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("COMPLETION_HTTP_TIMEOUT_IN_SECONDS", 20),
		},
		Maps: AppMaps{
			APIKey:            utils.GetEnvString("GOOGLE_MAPS_API_KEY", ""),
			BaseURL:           utils.GetEnvString("GOOGLE_MAPS_BASE_URL", ""),
			RequestsPerSecond: utils.GetEnvFloat("GOOGLE_MAPS_REQUESTS_PER_SECOND", 10),
		},
	}
}
