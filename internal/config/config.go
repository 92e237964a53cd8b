package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/spec-kit/notice-board/internal/domain"
)

// DefaultJWTSecret is the insecure development fallback for JWT_SECRET.
const DefaultJWTSecret = "dev-secret"

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Notices  NoticesConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	CORSAllowOrigins      string
}

// DatabaseConfig holds store connection values.
type DatabaseConfig struct {
	Driver         string
	DSN            string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret          string
	TokenTTLHours      int
	BcryptCost         int
	LoginMaxAttempts   int
	LoginWindowMinutes int
}

// NoticesConfig holds notice board settings.
type NoticesConfig struct {
	Departments []string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	switch driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "college-notice-board"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("PORT", getEnv("APP_PORT", "9001")),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			CORSAllowOrigins:      getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:         driver,
			DSN:            os.Getenv("DB_DSN"),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", defaultPort(driver)),
			User:           getEnv("DB_USER", "root"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           getEnv("DB_NAME", "college_notice_board"),
			MaxConns:       int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("DB_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("DB_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("DB_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("DB_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTLHours:      getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
			BcryptCost:         getEnvAsInt("AUTH_BCRYPT_COST", 12),
			LoginMaxAttempts:   getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginWindowMinutes: getEnvAsInt("LOGIN_WINDOW_MINUTES", 15),
		},
		Notices: NoticesConfig{
			Departments: getEnvAsList("NOTICE_DEPARTMENTS", domain.DefaultDepartments),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsDevelopment reports whether the service runs with development defaults.
func (a AppConfig) IsDevelopment() bool {
	return strings.EqualFold(a.Env, "development")
}

// ConnectionString returns DSN as-is or assembles one for the driver.
func (d DatabaseConfig) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&clientFoundRows=true", d.User, d.Password, d.Host, d.Port, d.Name)
	case DriverSQLite:
		return d.Name + ".db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.Name)
	}
}

// TokenTTL returns the session token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// LoginWindow returns the failed-login counting window.
func (a AuthConfig) LoginWindow() time.Duration {
	if a.LoginWindowMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(a.LoginWindowMinutes) * time.Minute
}

// InsecureDefaults lists settings still on development fallbacks.
func (c *Config) InsecureDefaults() []string {
	var out []string
	if c.Auth.JWTSecret == DefaultJWTSecret {
		out = append(out, "JWT_SECRET")
	}
	if c.Database.Driver != DriverSQLite && c.Database.DSN == "" && c.Database.Password == "" {
		out = append(out, "DB_PASSWORD")
	}
	return out
}

func defaultPort(driver string) string {
	switch driver {
	case DriverMySQL:
		return "3306"
	case DriverSQLite:
		return ""
	default:
		return "5432"
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
