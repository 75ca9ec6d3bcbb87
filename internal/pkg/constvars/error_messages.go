package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"len":          "must be %s characters long",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"uuid":         "must be a valid UUID",
	"latitude":     "must be a valid latitude",
	"longitude":    "must be a valid longitude",
	"dive":         "contains an invalid item",
	"password":     "must be at least 6 characters long",
	"phone_number": "phone number must be in international format, for example +1 234 567 8900",
	"blood_type":   "must be one of [A+, A-, B+, B-, AB+, AB-, O+, O-]",
	"language":     "must be one of [en, hi, pa, or]",
	"height_unit":  "must be one of [cm, m, ft, in]",
	"not_blank":    "must not be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Tags whose message already names the problem without the field prefix
var TagsWithStandaloneMessage = map[string]bool{
	"phone_number": true,
}

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientAccessDenied                  = "Access denied"
	ErrClientTooManyRequests               = "too many requests, please try again later"

	ErrClientUserAlreadyExists    = "User already exists"
	ErrClientInvalidCredentials   = "Invalid credentials"
	ErrClientUserNotFound         = "User not found"
	ErrClientOTPNotFound          = "OTP not found"
	ErrClientOTPInvalid           = "Invalid OTP"
	ErrClientOTPExpired           = "OTP expired"
	ErrClientOTPNotVerified       = "OTP verification required before resetting password"
	ErrClientOTPTooManyAttempts   = "Too many invalid OTP attempts, please request a new code"
	ErrClientStorageNotConfigured = "File storage is not configured"
	ErrClientInvalidImageType     = "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed"
	ErrClientImageTooLarge        = "File too large. Maximum size is %dMB"
	ErrClientNoFileUploaded       = "No file uploaded"
	ErrClientNoSymptomsProvided   = "No symptoms provided"
	ErrClientDiagnosisFailed      = "Failed to get diagnosis"
	ErrClientQuotaExceeded        = "QUOTA_EXCEEDED"
	ErrClientAITestFailed         = "AI test failed"
	ErrClientInvalidScale         = "scale must be either 'percent' or 'normalized'"
	ErrClientDuplicateAnswer      = "question %d answered more than once"
	ErrClientUnknownQuestion      = "question %d does not exist"
	ErrClientCategoryMismatch     = "question %d belongs to category %s"
	ErrClientInvalidBMIInput      = "height and weight must be positive numbers"
	ErrClientDoctorNotFound       = "Doctor not found"
	ErrClientMapsQueryRequired    = "Query parameter is required"
	ErrClientMapsNotConfigured    = "GOOGLE_MAPS_API_KEY is not configured"
	ErrClientMapsUpstreamFailed   = "Geocoding request failed"
	ErrClientPlacesInvalidCoords  = "lat and lng must be valid coordinates"
	ErrClientPlacesMissingCoords  = "lat and lng query parameters are required"
	ErrClientRequestInProgress    = "a request for this account is already in progress"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "validation failed"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevUpstreamStatus           = "upstream %s responded with status %d"
	ErrDevDecodeUpstreamResponse   = "failed to decode %s response"
)

const (
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevUserNotExists        = "user not exists in our system"
	ErrDevOTPNotFound          = "no OTP stored for the given email"
	ErrDevOTPMismatch          = "submitted OTP does not match the stored one"
	ErrDevOTPExpired           = "stored OTP passed its expiry time"
	ErrDevOTPNotVerified       = "no verified OTP marker for the given email"
	ErrDevOTPTooManyAttempts   = "OTP verify attempts exceeded, stored code discarded"
	ErrDevProfileOwnerMismatch = "session user does not own the requested profile"
)

const (
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevServerParseSessionData    = "failed to parse session data"
)

const (
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
)

const (
	ErrDevStorageFailedToCreateObject = "failed to create object into %s storage with bucket name '%s'"
)

const (
	ErrDevRedisSetData         = "failed to SET data into redis"
	ErrDevRedisGetData         = "failed to GET data from redis"
	ErrDevRedisDeleteData      = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue  = "failed to INCR data in redis"
	ErrDevRedisTTL             = "failed to read TTL from redis"
	ErrDevRedisUnlock          = "failed to release redis lock"
	ErrDevRedisLockNotAcquired = "lock is held by another request"
)

const (
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"
	ErrDevSMTPSendEmail          = "failed to send email via SMTP client hostname %s"
)

const (
	ErrDevDiagnosisQuotaExceeded   = "every diagnosis provider reported quota exhaustion"
	ErrDevDiagnosisAllProviders    = "every diagnosis provider failed"
	ErrDevDiagnosisEmptyCompletion = "diagnosis provider %s returned an empty completion"
	ErrDevAIProviderNotConfigured  = "no remote AI provider configured"
	ErrDevMapsNotConfigured        = "maps API key missing"
	ErrDevPlacesMissingCoords      = "nearby search called without lat or lng"
	ErrDevStorageNotConfigured     = "no object storage driver configured"
	ErrDevMapsRequestFailed        = "maps %s request failed"
)

const (
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerNotFound         = "resource not found"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)
