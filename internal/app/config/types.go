package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
	}
	MongoDB struct {
		Enabled  bool   `mapstructure:"enabled"`
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		DBName   string `mapstructure:"db_name"`
	}
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_filename"`
		OutputErrorFileName string `mapstructure:"output_error_filename"`
	}
	RabbitMQ struct {
		Enabled  bool   `mapstructure:"enabled"`
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Minio struct {
		Enabled  bool   `mapstructure:"enabled"`
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseSSL   bool   `mapstructure:"use_ssl"`
	}
)

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	Inventory AppInventory `mapstructure:"inventory"`
	Admin     AppAdmin     `mapstructure:"admin"`
	Timeline  AppTimeline  `mapstructure:"timeline"`
	Catalog   AppCatalog   `mapstructure:"catalog"`
	Minio     AppMinio     `mapstructure:"minio"`
	RabbitMQ  AppRabbitMQ  `mapstructure:"rabbitmq"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port"`
	Version                  string `mapstructure:"version"`
	BaseUrl                  string `mapstructure:"base_url"`
	Timezone                 string `mapstructure:"timezone"`
	EndpointPrefix           string `mapstructure:"endpoint_prefix"`
	MaxRequests              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds  int    `mapstructure:"request_timeout_in_seconds"`
	CorsAllowedOrigins       string `mapstructure:"cors_allowed_origins"`
}

// AppInventory points at the REST backend that owns items, loans and
// reservations.
type AppInventory struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	RateLimitPerSecond      float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst          int     `mapstructure:"rate_limit_burst"`
}

type AppAdmin struct {
	JWTSecret                  string `mapstructure:"jwt_secret"`
	SessionExpiredTimeInMinute int    `mapstructure:"session_expired_time_in_minute"`
	PinFingerprintKey          string `mapstructure:"pin_fingerprint_key"`
}

type AppTimeline struct {
	DefaultDays   int    `mapstructure:"default_days"`
	Locale        string `mapstructure:"locale"`
	SortedPacking bool   `mapstructure:"sorted_packing"`
	StyleFile     string `mapstructure:"style_file"`
}

// AppCatalog schedules the category/location cache refresh. An empty spec
// disables the worker.
type AppCatalog struct {
	RefreshCronSpec string `mapstructure:"refresh_cron_spec"`
}

type AppMinio struct {
	BucketName                         string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryTimeInHour int    `mapstructure:"pre_signed_url_object_expiry_time_in_hour"`
}

type AppRabbitMQ struct {
	EventQueue string `mapstructure:"event_queue"`
}
