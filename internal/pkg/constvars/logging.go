package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingProviderIDKey    = "provider_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingQueueKey         = "queue"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
)
