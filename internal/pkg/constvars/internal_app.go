package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ADMIN_PIN_KEY            ContextKey = "admin_pin"
	CONTEXT_ADMIN_SESSION_KEY        ContextKey = "admin_session"
)

const (
	REQUEST_ID_PREFIX = "INVRENT_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	AdminActorPin   = "pin"
	AdminActorToken = "token"
)
