package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	CourseTitle string  `yaml:"course-title" env-default:"Introduction to Go for Rubberdøk, 2023"`
	Mounts      Mounts  `yaml:"mounts"`
	Redis       Redis   `yaml:"redis"`
	Tracing     Tracing `yaml:"tracing"`
}

// Mounts - bounds the registry of rendered pages kept for activation routing.
type Mounts struct {
	Capacity int           `yaml:"capacity" env-default:"1024"`
	TTL      time.Duration `yaml:"ttl" env-default:"30m"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env-default:"localhost"`
	Port    string `yaml:"port" env-default:"6379"`
}

type Tracing struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe-tutorial"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// ParseLevel - maps the log-level setting to a slog level. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
