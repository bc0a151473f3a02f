package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageBackendMemory   = "memory"
	StorageBackendFile     = "file"
	StorageBackendSQLite   = "sqlite"
	StorageBackendPostgres = "postgres"

	DefaultStorageKey = "finance-tracker-transactions"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Currency  string
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// StorageConfig selects where the transaction list is persisted.
type StorageConfig struct {
	Backend    string
	DataDir    string
	Key        string
	SQLitePath string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// AuthConfig configures bearer tokens for the HTTP API. An empty secret disables auth.
type AuthConfig struct {
	TokenSecret   string
	TokenDuration time.Duration
	Issuer        string
}

type RateLimitConfig struct {
	PerSecond int
	Burst     int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Backend:    strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendFile)),
			DataDir:    getEnv("STORAGE_DATA_DIR", "./data"),
			Key:        getEnv("STORAGE_KEY", DefaultStorageKey),
			SQLitePath: getEnv("SQLITE_PATH", "./data/finance.db"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			TokenSecret:   os.Getenv("AUTH_TOKEN_SECRET"),
			TokenDuration: getDurationEnv("AUTH_TOKEN_DURATION", 24*time.Hour),
			Issuer:        getEnv("AUTH_TOKEN_ISSUER", "finance-tracker"),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			Burst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Currency: strings.ToUpper(getEnv("CURRENCY", "INR")),
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports every invalid setting in one error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Storage.Backend {
	case StorageBackendMemory:
	case StorageBackendFile:
		if c.Storage.DataDir == "" {
			problems = append(problems, "storage data directory cannot be empty when using file backend")
		}
	case StorageBackendSQLite:
		if c.Storage.SQLitePath == "" {
			problems = append(problems, "SQLite database path cannot be empty when using sqlite backend")
		}
	case StorageBackendPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required when using postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of %v", c.Storage.Backend, StorageBackends()))
	}

	if strings.TrimSpace(c.Storage.Key) == "" {
		problems = append(problems, "storage key cannot be empty")
	}

	if c.RateLimit.PerSecond <= 0 {
		problems = append(problems, fmt.Sprintf("invalid rate limit %d: must be positive", c.RateLimit.PerSecond))
	}
	if c.RateLimit.Burst < c.RateLimit.PerSecond {
		problems = append(problems, fmt.Sprintf("invalid rate limit burst %d: must be at least %d", c.RateLimit.Burst, c.RateLimit.PerSecond))
	}

	if c.Auth.TokenDuration <= 0 {
		problems = append(problems, "auth token duration must be positive")
	}
	if c.IsProduction() && c.Auth.TokenSecret != "" && len(c.Auth.TokenSecret) < 32 {
		problems = append(problems, "AUTH_TOKEN_SECRET must be at least 32 characters in production")
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// StorageBackends lists the accepted STORAGE_BACKEND values.
func StorageBackends() []string {
	return []string{StorageBackendMemory, StorageBackendFile, StorageBackendSQLite, StorageBackendPostgres}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// UsesDatabase reports whether the storage backend is backed by gorm.
func (c *StorageConfig) UsesDatabase() bool {
	return c.Backend == StorageBackendSQLite || c.Backend == StorageBackendPostgres
}

// AuthEnabled reports whether the HTTP API requires bearer tokens.
func (c *Config) AuthEnabled() bool {
	return c.Auth.TokenSecret != ""
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
