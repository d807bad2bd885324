package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	cfg := NewInternalConfig()

	assert.Equal(t, 21, cfg.Timeline.DefaultDays)
	assert.Equal(t, "de", cfg.Timeline.Locale)
	assert.False(t, cfg.Timeline.SortedPacking, "input order packing is the default")
	assert.Equal(t, "api", cfg.App.EndpointPrefix)
	assert.Equal(t, "v1", cfg.App.Version)
	assert.Equal(t, 60, cfg.Admin.SessionExpiredTimeInMinute)
	assert.Equal(t, "@every 30m", cfg.Catalog.RefreshCronSpec)
}

func TestNewInternalConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("TIMELINE_SORTED_PACKING", "true")
	t.Setenv("TIMELINE_LOCALE", "en")
	t.Setenv("INVENTORY_BASE_URL", "http://backend:3000/api")
	t.Setenv("INVENTORY_RATE_LIMIT_PER_SECOND", "2.5")

	cfg := NewInternalConfig()

	assert.Equal(t, ":9090", cfg.App.Port)
	assert.True(t, cfg.Timeline.SortedPacking)
	assert.Equal(t, "en", cfg.Timeline.Locale)
	assert.Equal(t, "http://backend:3000/api", cfg.Inventory.BaseUrl)
	assert.Equal(t, 2.5, cfg.Inventory.RateLimitPerSecond)
}

func TestNewDriverConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("MINIO_ENABLED", "true")

	cfg := NewDriverConfig()

	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.True(t, cfg.Minio.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
}
