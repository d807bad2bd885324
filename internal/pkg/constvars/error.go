package constvars

// Client facing messages
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientAdminModeRequired             = "this action is only available in admin mode"
	ErrClientInvalidAdminPin               = "the admin PIN was not accepted"
	ErrClientAdminSessionExpired           = "your admin session ended, please enter the PIN again"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientInventoryUnavailable          = "the inventory service is currently unavailable"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientItemNotOut                    = "the item is not currently lent out"
	ErrClientReservationRangeInvalid       = "reservation end must be after its start"
	ErrClientLoanDueInPast                 = "the due date must be in the future"
)

// Developer facing messages
const (
	ErrDevValidationFailed            = "validation failed"
	ErrDevInvalidInput                = "invalid input"
	ErrDevURLParamIDValidationFailed  = "url param %s failed validation"
	ErrDevCannotParseJSON             = "failed to parse JSON"
	ErrDevCannotMarshalJSON           = "failed to marshal JSON"
	ErrDevCannotParseDate             = "failed to parse date"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevDecodeResponse              = "failed to decode response from %s"
	ErrDevBackendNotFound             = "inventory backend returned not found for %s"
	ErrDevBackendNotAuthorized        = "inventory backend rejected credentials for %s"
	ErrDevBackendRejected             = "inventory backend rejected request to %s"
	ErrDevBackendUnexpectedStatus     = "inventory backend returned status %d for %s"
	ErrDevBackendThrottled            = "outbound throttle wait failed"
	ErrDevClientRateLimited           = "client %s temporarily blocked by rate limiter"
	ErrDevAdminModeRequired           = "admin capability missing on privileged route"
	ErrDevAdminPinRejected            = "admin ping rejected the supplied PIN"
	ErrDevAdminTokenInvalidOrExpired  = "admin token invalid or expired"
	ErrDevAdminTokenGenerate          = "failed to sign admin token"
	ErrDevAdminSessionNotFound        = "admin session not found"
	ErrDevItemNotOut                  = "item status is not OUT"
	ErrDevReservationRangeInvalid     = "reservation end is not after start"
	ErrDevLoanDueInPast               = "loan due date is not in the future"
	ErrDevRedisGetData                = "failed to get data from redis"
	ErrDevRedisGetNoData              = "no data found in redis for key %s"
	ErrDevRedisSetData                = "failed to set data in redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevDBFailedToInsertDocument    = "failed to insert document"
	ErrDevDBFailedToFindDocument      = "failed to find document"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents"
	ErrDevMinioFailedToCreateObject   = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject  = "failed to presign object in bucket %s"
	ErrDevRabbitMQFailedToPublish     = "failed to publish message to queue %s"
	ErrDevTimelineWindowInvalid       = "timeline window is invalid"
	ErrDevTimelineStorageNotAvailable = "object storage is not configured"
)

const (
	ResponseUnknown = "unknown"
)
