package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingSessionIDKey      = "session_id"
	LoggingUserIDKey         = "user_id"
	LoggingEmailKey          = "email"
	LoggingLanguageKey       = "language"
	LoggingProviderKey       = "provider"
	LoggingSourceKey         = "source"
	LoggingQuotaExceededKey  = "quota_exceeded"
	LoggingCacheHitKey       = "cache_hit"
	LoggingFileNameKey       = "file_name"
	LoggingFileSizeKey       = "file_size"
	LoggingContentTypeKey    = "content_type"
	LoggingObjectURLKey      = "object_url"
	LoggingQueueKey          = "queue"
	LoggingCountKey          = "count"
	LoggingProfilePartKey    = "profile_part"
	LoggingHealthStatusKey   = "health_status"
	LoggingOverallScoreKey   = "overall_score"
	LoggingBMIKey            = "bmi"
	LoggingQueryTextKey      = "query_text"
	LoggingRetryAfterSecsKey = "retry_after_secs"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLimiterKey        = "limiter_key"
	LoggingRadiusKey         = "radius"
	LoggingPlaceTypeKey      = "place_type"
	LoggingAttemptsKey       = "attempts"
)
