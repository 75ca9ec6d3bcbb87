package config

type InternalConfig struct {
	App        App           `mapstructure:"app"`
	JWT        AppJWT        `mapstructure:"jwt"`
	OTP        AppOTP        `mapstructure:"otp"`
	Mailer     AppMailer     `mapstructure:"mailer"`
	RabbitMQ   AppRabbitMQ   `mapstructure:"rabbitmq"`
	Storage    AppStorage    `mapstructure:"storage"`
	Diagnosis  AppDiagnosis  `mapstructure:"diagnosis"`
	Gemini     AppGemini     `mapstructure:"gemini"`
	Completion AppCompletion `mapstructure:"completion"`
	Maps       AppMaps       `mapstructure:"maps"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	AuthMaxRequestsPerMinute   int    `mapstructure:"auth_max_requests_per_minute"`
	AuthBlockTimeInSeconds     int    `mapstructure:"auth_block_time_in_seconds"`
	TrustedProxies             string `mapstructure:"trusted_proxies"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppOTP struct {
	ExpiredTimeInMinutes  int `mapstructure:"expired_time_in_minutes"`
	VerifiedTimeInMinutes int `mapstructure:"verified_time_in_minutes"`
	MaxVerifyAttempts     int `mapstructure:"max_verify_attempts"`
}

type AppMailer struct {
	EmailSender string `mapstructure:"email_sender"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}

type AppStorage struct {
	// Driver is either "minio" or "s3".
	Driver                          string `mapstructure:"driver"`
	ProfilePictureMaxUploadSizeInMB int64  `mapstructure:"profile_picture_max_upload_size_in_mb"`
	MedicineImageMaxUploadSizeInMB  int64  `mapstructure:"medicine_image_max_upload_size_in_mb"`
}

type AppDiagnosis struct {
	LocalFallbackEnabled      bool `mapstructure:"local_fallback_enabled"`
	TimeoutInSeconds          int  `mapstructure:"timeout_in_seconds"`
	CacheTTLInMinutes         int  `mapstructure:"cache_ttl_in_minutes"`
	QuotaPerWindow            int  `mapstructure:"quota_per_window"`
	QuotaWindowInSeconds      int  `mapstructure:"quota_window_in_seconds"`
	OutboundRequestsPerMinute int  `mapstructure:"outbound_requests_per_minute"`
}

type AppGemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// AppCompletion points at an OpenAI-compatible chat completions endpoint.
type AppCompletion struct {
	BaseURL              string `mapstructure:"base_url"`
	APIKey               string `mapstructure:"api_key"`
	Model                string `mapstructure:"model"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

type AppMaps struct {
	APIKey            string  `mapstructure:"api_key"`
	BaseURL           string  `mapstructure:"base_url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}
