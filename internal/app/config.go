package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/routinely-backend/internal/data/db"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/platform/envutil"
)

const ServiceName = "routinely"

type Config struct {
	Env     string
	Port    int
	LogMode string
	Version string

	DB db.Config

	// Location defines the calendar day that "today" refers to.
	Location *time.Location

	RedisAddr      string
	CORSOrigins    []string
	MetricsEnabled bool
	Otel           observability.OtelConfig
}

// LoadDotEnv reads the given .env files (default ".env") into the process
// environment without overriding variables that are already set. A missing
// default file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

func LoadConfig(version string) (Config, error) {
	tzName := envutil.String("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return Config{}, fmt.Errorf("APP_TIMEZONE %q: %w", tzName, err)
	}

	env := envutil.String("APP_ENV", "development")
	cfg := Config{
		Env:     env,
		Port:    envutil.Int("PORT", 8080),
		LogMode: envutil.String("LOG_MODE", "development"),
		Version: version,
		DB: db.Config{
			Driver:           strings.ToLower(envutil.String("DB_DRIVER", db.DriverSQLite)),
			DatabaseURL:      envutil.String("DATABASE_URL", ""),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "routinely"),
			SQLitePath:       envutil.String("SQLITE_PATH", "routinely.db"),
			MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:     envutil.Int("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime:  envutil.Duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			SlowThreshold:    envutil.Duration("DB_SLOW_THRESHOLD", time.Second),
		},
		Location:       loc,
		RedisAddr:      envutil.String("REDIS_ADDR", ""),
		CORSOrigins:    envutil.List("CORS_ALLOW_ORIGINS", []string{"*"}),
		MetricsEnabled: envutil.Bool("METRICS_ENABLED", false),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", ServiceName),
			Environment: env,
			Version:     version,
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", db.DriverPostgres, db.DriverSQLite, c.DB.Driver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
