package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto config keys. EPLRADAR_DB_HOST becomes db.host.
const EnvPrefix = "EPLRADAR_"

const defaultJWTSecret = "change-me-eplradar-secret"

type Config struct {
	App struct {
		Env            string   `koanf:"env" validate:"required,oneof=development production test"`
		Port           string   `koanf:"port" validate:"required"`
		AllowedOrigins []string `koanf:"allowed_origins" validate:"required,min=1"`
		MediaURL       string   `koanf:"media_url"`
		DataDir        string   `koanf:"data_dir" validate:"required"`
		MediaDir       string   `koanf:"media_dir" validate:"required"`
		LogLevel       string   `koanf:"log_level" validate:"required,oneof=trace debug info warn error"`
	} `koanf:"app"`
	DB struct {
		Host     string `koanf:"host" validate:"required"`
		Port     string `koanf:"port" validate:"required"`
		User     string `koanf:"user" validate:"required"`
		Password string `koanf:"password"`
		Name     string `koanf:"name" validate:"required"`
		SSLMode  string `koanf:"ssl_mode" validate:"required"`
	} `koanf:"db"`
	JWT struct {
		Secret string        `koanf:"secret" validate:"required,min=16"`
		TTL    time.Duration `koanf:"ttl" validate:"required"`
	} `koanf:"jwt"`
	Cookie struct {
		Name   string `koanf:"name" validate:"required"`
		Secure bool   `koanf:"secure"`
	} `koanf:"cookie"`
	Cache struct {
		TTL           time.Duration `koanf:"ttl" validate:"required"`
		RedisAddress  string        `koanf:"redis_address"`
		RedisPassword string        `koanf:"redis_password"`
	} `koanf:"cache"`
	Kafka struct {
		Broker string `koanf:"broker"`
		Topic  string `koanf:"topic" validate:"required"`
	} `koanf:"kafka"`
	Schedule struct {
		StatusSpec    string        `koanf:"status_spec" validate:"required"`
		MatchDuration time.Duration `koanf:"match_duration" validate:"required"`
	} `koanf:"schedule"`
	RateLimit struct {
		LoginRPS   float64 `koanf:"login_rps" validate:"gt=0"`
		LoginBurst int     `koanf:"login_burst" validate:"gt=0"`
	} `koanf:"ratelimit"`
}

// Defaults returns a Config holding the values used when no environment
// variable overrides them.
func Defaults() *Config {
	cfg := &Config{}

	cfg.App.Env = "development"
	cfg.App.Port = "8088"
	cfg.App.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.App.MediaURL = "/media"
	cfg.App.DataDir = "./data"
	cfg.App.MediaDir = "./media"
	cfg.App.LogLevel = "info"

	cfg.DB.Host = "localhost"
	cfg.DB.Port = "5432"
	cfg.DB.User = "postgres"
	cfg.DB.Password = "password"
	cfg.DB.Name = "eplradar"
	cfg.DB.SSLMode = "disable"

	cfg.JWT.Secret = defaultJWTSecret
	cfg.JWT.TTL = 24 * time.Hour

	cfg.Cookie.Name = "eplradar_session"

	cfg.Cache.TTL = 30 * time.Second

	cfg.Kafka.Topic = "eplradar.events"

	cfg.Schedule.StatusSpec = "0 * * * * *"
	cfg.Schedule.MatchDuration = 2 * time.Hour

	cfg.RateLimit.LoginRPS = 1
	cfg.RateLimit.LoginBurst = 5

	return cfg
}

// envKey maps EPLRADAR_CACHE_REDIS_ADDRESS to cache.redis_address.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// listKeys are decoded from comma separated environment values.
var listKeys = map[string]bool{
	"app.allowed_origins": true,
}

func envValue(k, v string) (string, interface{}) {
	key := envKey(k)
	if !listKeys[key] {
		return key, v
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig reads a .env file when present, overlays EPLRADAR_* environment
// variables on the defaults and validates the result.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	k := koanf.New(".")
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.JWT.Secret == defaultJWTSecret {
		log.Warn().Msg("using the default JWT secret, set EPLRADAR_JWT_SECRET outside development")
	}
	if cfg.DB.Password == "password" && cfg.IsProduction() {
		log.Warn().Msg("using the default database password in production")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	)
}

// ConnectDB opens the postgres connection described by cfg.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Str("host", cfg.DB.Host).Str("db", cfg.DB.Name).Msg("connected to database")
	return db, nil
}
