package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "eplradar_session", cfg.Cookie.Name)
	assert.Empty(t, cfg.Kafka.Broker)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EPLRADAR_APP_PORT", "9090")
	t.Setenv("EPLRADAR_APP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("EPLRADAR_DB_SSL_MODE", "require")
	t.Setenv("EPLRADAR_JWT_TTL", "90m")
	t.Setenv("EPLRADAR_CACHE_REDIS_ADDRESS", "redis:6379")
	t.Setenv("EPLRADAR_SCHEDULE_MATCH_DURATION", "105m")
	t.Setenv("EPLRADAR_RATELIMIT_LOGIN_BURST", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "require", cfg.DB.SSLMode)
	assert.Equal(t, 90*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddress)
	assert.Equal(t, 105*time.Minute, cfg.Schedule.MatchDuration)
	assert.Equal(t, 10, cfg.RateLimit.LoginBurst)
	// untouched keys keep their defaults
	assert.Equal(t, "localhost", cfg.DB.Host)
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("EPLRADAR_APP_ENV", "staging")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.host", envKey("EPLRADAR_DB_HOST"))
	assert.Equal(t, "cache.redis_address", envKey("EPLRADAR_CACHE_REDIS_ADDRESS"))
}

func TestEnvValueSplitsLists(t *testing.T) {
	key, v := envValue("EPLRADAR_APP_ALLOWED_ORIGINS", " https://a.example, ,https://b.example ")
	assert.Equal(t, "app.allowed_origins", key)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, v)

	key, v = envValue("EPLRADAR_DB_HOST", "db,replica")
	assert.Equal(t, "db.host", key)
	assert.Equal(t, "db,replica", v)
}

func TestDSN(t *testing.T) {
	cfg := Defaults()
	assert.Contains(t, cfg.DSN(), "dbname=eplradar")
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}
