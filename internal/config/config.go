package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	AppPort           string
	AppEnv            string
	AppVersion        string
	APIBasePath       string
	TranslationFolder string
	TrustedProxies    []string

	DbDriver          string
	DbDSN             string
	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration
	DbMaxRetries      int
	DbRetryMaxDelay   time.Duration
	DbCreateSchema    bool

	DemoUserEmail string
	DemoUserName  string
}

// ConfigError reports a required setting that is missing or unusable. The
// process must not start when LoadConfig returns one.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Key, e.Reason)
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "development"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		APIBasePath:       getEnv("API_BASE_PATH", "/api"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DbDSN:             strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		DbMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DbMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DbConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		DbMaxRetries:      getEnvInt("DB_MAX_RETRIES", 3),
		DbRetryMaxDelay:   getEnvDuration("DB_RETRY_MAX_DELAY", 5*time.Second),
		DbCreateSchema:    getEnvBool("DB_CREATE_SCHEMA", false),

		DemoUserEmail: getEnv("DEMO_USER_EMAIL", "demo@example.com"),
		DemoUserName:  getEnv("DEMO_USER_NAME", "Demo User"),
	}

	if cfg.DbDSN == "" {
		return nil, &ConfigError{Key: "DATABASE_DSN", Reason: "is required"}
	}
	if cfg.DbDriver != DriverMySQL && cfg.DbDriver != DriverSQLite {
		return nil, &ConfigError{Key: "DB_DRIVER", Reason: fmt.Sprintf("must be %q or %q", DriverMySQL, DriverSQLite)}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		zap.L().Warn("invalid integer setting, using default", zap.String("key", key), zap.String("value", value))
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		zap.L().Warn("invalid duration setting, using default", zap.String("key", key), zap.String("value", value))
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		zap.L().Warn("invalid boolean setting, using default", zap.String("key", key), zap.String("value", value))
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
