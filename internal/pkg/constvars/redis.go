package constvars

const (
	RedisKeyCategoryList      = "invrent:categories"
	RedisKeyLocationList      = "invrent:locations"
	RedisKeyAdminSessionFmt   = "invrent:admin_session:%s"
	RedisCategoryCacheTTLHour = 1
)
