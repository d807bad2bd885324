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
	LoggingRequestKey        = "request"
	LoggingResponseCountKey  = "response_count"
	LoggingItemIDKey         = "item_id"
	LoggingReservationIDKey  = "reservation_id"
	LoggingCategoryIDKey     = "category_id"
	LoggingLocationIDKey     = "location_id"
	LoggingAdminSessionIDKey = "admin_session_id"
	LoggingWindowStartKey    = "window_start"
	LoggingWindowDaysKey     = "window_days"
	LoggingLaneCountKey      = "lane_count"
	LoggingBackendURLKey     = "backend_url"
	LoggingBackendStatusKey  = "backend_status"
	LoggingEventTypeKey      = "event_type"
	LoggingObjectNameKey     = "object_name"
)
