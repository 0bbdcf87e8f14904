// Package config loads service configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	defaultServiceName    = "cookscan"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultConcurrency    = 4
	defaultReadTimeoutSec = 10
	defaultWriteTimeout   = 30
	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
	defaultMaxBatchSize   = 100
	defaultStoragePath    = "cookscan.db"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Config holds all configuration for the extraction service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Debug       bool   `yaml:"debug"`
	Concurrency int    `yaml:"concurrency"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	RateLimitRPS   int           `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
}

// StorageConfig holds SQLite storage configuration.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ExtractionConfig holds extraction run settings.
type ExtractionConfig struct {
	Source       string `yaml:"source"`
	Category     string `yaml:"category"`
	MaxBatchSize int    `yaml:"max_batch_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load loads configuration from the specified path. A missing path yields
// a default configuration. A .env file, if present, is loaded first so
// environment overrides work in local development.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COOKSCAN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("COOKSCAN_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Service.Concurrency = n
		}
	}
	if v := os.Getenv("COOKSCAN_DEBUG"); v != "" {
		cfg.Service.Debug = v == "true" || v == "1"
	}
	if v := os.Getenv("COOKSCAN_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setServerDefaults(&cfg.Server)
	setStorageDefaults(&cfg.Storage)
	setExtractionDefaults(&cfg.Extraction)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
}

func setServerDefaults(s *ServerConfig) {
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeout * time.Second
	}
	if s.RateLimitRPS == 0 {
		s.RateLimitRPS = defaultRateLimitRPS
	}
	if s.RateLimitBurst == 0 {
		s.RateLimitBurst = defaultRateLimitBurst
	}
}

func setStorageDefaults(s *StorageConfig) {
	if s.Path == "" {
		s.Path = defaultStoragePath
	}
}

func setExtractionDefaults(e *ExtractionConfig) {
	if e.MaxBatchSize == 0 {
		e.MaxBatchSize = defaultMaxBatchSize
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
