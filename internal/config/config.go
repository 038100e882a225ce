package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	envProduction = "production"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Sentry   SentryConfig
	Metrics  MetricsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// DatabaseConfig holds the reporting store connection values.
type DatabaseConfig struct {
	Driver         string
	DSN            string
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnMaxIdleSec int
	ConnMaxLifeSec int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SentryConfig enables optional error reporting.
type SentryConfig struct {
	DSN         string
	Environment string
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	defaultPort := 3306
	switch driver {
	case DriverMySQL:
	case DriverPostgres:
		defaultPort = 5432
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: want %s or %s", driver, DriverMySQL, DriverPostgres)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-ops-api"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Database: DatabaseConfig{
			Driver:         driver,
			DSN:            os.Getenv("DB_DSN"),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvAsInt("DB_PORT", defaultPort),
			User:           getEnv("DB_USER", "root"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           getEnv("DB_NAME", "payment_support_ops"),
			MaxOpenConns:   getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:   getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxIdleSec: getEnvAsInt("DB_CONN_MAX_IDLE_SECONDS", 30),
			ConnMaxLifeSec: getEnvAsInt("DB_CONN_MAX_LIFE_SECONDS", 300),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Sentry: SentryConfig{
			DSN:         os.Getenv("SENTRY_DSN"),
			Environment: getEnv("SENTRY_ENVIRONMENT", env),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

// IsProduction reports whether internal error details must be hidden.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, envProduction)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ConnectionString returns DB_DSN or assembles one from the individual settings.
// MySQL connections always parse DATETIME columns as UTC time.Time values.
func (d DatabaseConfig) ConnectionString() (string, error) {
	switch d.Driver {
	case DriverMySQL:
		var mc *mysql.Config
		if d.DSN != "" {
			parsed, err := mysql.ParseDSN(d.DSN)
			if err != nil {
				return "", fmt.Errorf("parse DB_DSN: %w", err)
			}
			mc = parsed
		} else {
			mc = mysql.NewConfig()
			mc.User = d.User
			mc.Passwd = d.Password
			mc.Net = "tcp"
			mc.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
			mc.DBName = d.Name
		}
		mc.ParseTime = true
		mc.Loc = time.UTC
		return mc.FormatDSN(), nil
	case DriverPostgres:
		if d.DSN != "" {
			return d.DSN, nil
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:     "/" + d.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported driver %q", d.Driver)
	}
}

// ConnMaxIdleTime returns the idle recycling duration.
func (d DatabaseConfig) ConnMaxIdleTime() time.Duration {
	return time.Duration(d.ConnMaxIdleSec) * time.Second
}

// ConnMaxLifetime returns the connection recycling duration.
func (d DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifeSec) * time.Second
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
