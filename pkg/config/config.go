package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Admin  AdminConfig
	Store  StoreConfig
	Upload UploadConfig
	Cache  CacheConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
}

// AdminConfig holds the shared secret gating all mutating operations.
// The default is an insecure placeholder and must be overridden in any
// real deployment.
type AdminConfig struct {
	Token      string
	TokenHash  string
	SessionTTL time.Duration
}

// StoreConfig locates the JSON document holding the teammate collection.
type StoreConfig struct {
	DataFile string
}

// UploadConfig controls where teammate photos land on disk.
type UploadConfig struct {
	Dir      string
	ImageDir string
}

// CacheConfig toggles the optional Redis-backed list cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Admin = AdminConfig{
		Token:      v.GetString("ADMIN_TOKEN"),
		TokenHash:  v.GetString("ADMIN_TOKEN_HASH"),
		SessionTTL: parseDuration(v.GetString("SESSION_TTL"), 12*time.Hour),
	}

	cfg.Store = StoreConfig{
		DataFile: v.GetString("DATA_FILE"),
	}

	cfg.Upload = UploadConfig{
		Dir:      v.GetString("UPLOAD_DIR"),
		ImageDir: v.GetString("IMAGE_DIR"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("ADMIN_TOKEN", "changeme")
	v.SetDefault("ADMIN_TOKEN_HASH", "")
	v.SetDefault("SESSION_TTL", "12h")

	v.SetDefault("DATA_FILE", "./data/teammates.json")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("IMAGE_DIR", "./images")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
