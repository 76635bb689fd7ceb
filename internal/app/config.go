package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/contracts-data-backend/internal/data/db"
	"github.com/yungbote/contracts-data-backend/internal/observability"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
	"github.com/yungbote/contracts-data-backend/internal/utils"
)

type Config struct {
	Port            string                   `yaml:"port"`
	ShutdownTimeout int                      `yaml:"shutdown_timeout_seconds"`
	AllowedOrigins  []string                 `yaml:"allowed_origins"`
	DB              db.Config                `yaml:"db"`
	Otel            observability.OtelConfig `yaml:"otel"`
}

func DefaultConfig() Config {
	return Config{
		Port:            "8080",
		ShutdownTimeout: 5,
		DB: db.Config{
			Driver:  db.DriverPostgres,
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "contracts",
			SSLMode: "disable",
		},
		Otel: observability.OtelConfig{
			ServiceName: "contracts-data",
			SampleRatio: 0.1,
		},
	}
}

// LoadConfig layers defaults, the optional YAML file named by CONFIG_FILE, then env vars.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := DefaultConfig()
	if path := strings.TrimSpace(utils.GetEnv("CONFIG_FILE", "", log)); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg, log)
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, log *logger.Logger) {
	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.ShutdownTimeout = utils.GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeout, log)
	cfg.AllowedOrigins = utils.GetEnvAsList("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins, log)

	cfg.DB.Driver = utils.GetEnv("DB_DRIVER", cfg.DB.Driver, log)
	cfg.DB.Host = utils.GetEnv("POSTGRES_HOST", cfg.DB.Host, log)
	cfg.DB.Port = utils.GetEnv("POSTGRES_PORT", cfg.DB.Port, log)
	cfg.DB.User = utils.GetEnv("POSTGRES_USER", cfg.DB.User, log)
	cfg.DB.Password = utils.GetEnv("POSTGRES_PASSWORD", cfg.DB.Password, nil)
	cfg.DB.Name = utils.GetEnv("POSTGRES_NAME", cfg.DB.Name, log)
	cfg.DB.SSLMode = utils.GetEnv("POSTGRES_SSLMODE", cfg.DB.SSLMode, log)
	cfg.DB.SQLitePath = utils.GetEnv("SQLITE_PATH", cfg.DB.SQLitePath, log)

	cfg.Otel.Enabled = utils.GetEnvAsBool("OTEL_ENABLED", cfg.Otel.Enabled, log)
	cfg.Otel.ServiceName = utils.GetEnv("OTEL_SERVICE_NAME", cfg.Otel.ServiceName, log)
	cfg.Otel.Environment = utils.GetEnv("OTEL_ENVIRONMENT", cfg.Otel.Environment, log)
	cfg.Otel.Endpoint = utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint, log)
	cfg.Otel.Insecure = utils.GetEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure, log)
	cfg.Otel.SampleRatio = utils.GetEnvAsFloat("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio, log)
	if headers := observability.ParseHeaders(utils.GetEnv("OTEL_EXPORTER_OTLP_HEADERS", "", nil)); headers != nil {
		cfg.Otel.Headers = headers
	}
}

func (c Config) shutdownTimeout() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeout) * time.Second
}
