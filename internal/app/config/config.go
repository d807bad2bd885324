package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file, using environment variables only: %v", err)
		}
	}
	return v
}

func NewDriverConfig() *DriverConfig {
	v := newViper()

	v.SetDefault("mongodb.enabled", false)
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("mongodb.username", "")
	v.SetDefault("mongodb.password", "")
	v.SetDefault("mongodb.db_name", "invrent")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.output_filename", "logger.log")
	v.SetDefault("logger.output_error_filename", "logger_error.log")

	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", "5672")
	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")

	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.host", "localhost")
	v.SetDefault("minio.port", "9000")
	v.SetDefault("minio.username", "")
	v.SetDefault("minio.password", "")
	v.SetDefault("minio.use_ssl", false)

	driverConfig := new(DriverConfig)
	if err := v.Unmarshal(driverConfig); err != nil {
		log.Fatalf("Failed to load driver config: %v", err)
	}
	return driverConfig
}

func NewInternalConfig() *InternalConfig {
	v := newViper()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("app.timezone", "Europe/Berlin")
	v.SetDefault("app.endpoint_prefix", "api")
	v.SetDefault("app.max_requests", 600)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_timeout_in_seconds", 10)
	v.SetDefault("app.cors_allowed_origins", "*")

	v.SetDefault("inventory.base_url", "http://localhost:3000/api")
	v.SetDefault("inventory.request_timeout_in_seconds", 8)
	v.SetDefault("inventory.rate_limit_per_second", 20.0)
	v.SetDefault("inventory.rate_limit_burst", 40)

	v.SetDefault("admin.jwt_secret", "change-me")
	v.SetDefault("admin.session_expired_time_in_minute", 60)
	v.SetDefault("admin.pin_fingerprint_key", "invrent-audit")

	v.SetDefault("timeline.default_days", 21)
	v.SetDefault("timeline.locale", "de")
	v.SetDefault("timeline.sorted_packing", false)
	v.SetDefault("timeline.style_file", "")

	v.SetDefault("catalog.refresh_cron_spec", "@every 30m")

	v.SetDefault("minio.bucket_name", "invrent-timelines")
	v.SetDefault("minio.pre_signed_url_object_expiry_time_in_hour", 24)

	v.SetDefault("rabbitmq.event_queue", "invrent.events")

	internalConfig := new(InternalConfig)
	if err := v.Unmarshal(internalConfig); err != nil {
		log.Fatalf("Failed to load internal config: %v", err)
	}
	return internalConfig
}
