package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingUserIDKey     = "user_id"
	LoggingDoctorIDKey   = "doctor_id"
	LoggingSessionIDKey  = "session_id"
	LoggingBookingIDKey  = "booking_id"
	LoggingQueueKey      = "queue"
	LoggingEmailToKey    = "email_to"
)
