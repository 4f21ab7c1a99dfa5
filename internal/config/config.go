package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	CatalogBuiltin  = "builtin"
	CatalogYAML     = "yaml"
	CatalogPostgres = "postgres"
)

// Glamour holds all configuration for glamourctl.
type Glamour struct {
	LogLevel string `yaml:"log_level" env:"GLAMOUR_LOG_LEVEL"`

	Catalog  CatalogConfig  `yaml:"catalog" envPrefix:"GLAMOUR_CATALOG_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"GLAMOUR_DB_"`
	Batch    BatchConfig    `yaml:"batch" envPrefix:"GLAMOUR_BATCH_"`
}

// CatalogConfig selects where items and human models come from.
type CatalogConfig struct {
	Source string `yaml:"source" env:"SOURCE"` // builtin | yaml | postgres
	Path   string `yaml:"path" env:"PATH"`     // YAML overlay for source=yaml
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// BatchConfig tunes `glamourctl migrate`.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"WORKERS"` // concurrent decoders (default: 4)
}

// Default returns Glamour config with sensible defaults.
func Default() Glamour {
	return Glamour{
		LogLevel: "info",
		Catalog: CatalogConfig{
			Source: CatalogBuiltin,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "glamour",
			Password: "glamour",
			DBName:   "glamour",
			SSLMode:  "disable",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// Load loads config from a YAML file, then applies GLAMOUR_* environment overrides.
// If the file doesn't exist, defaults are used.
func Load(path string) (Glamour, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that have a closed set of options.
func (c Glamour) Validate() error {
	switch c.Catalog.Source {
	case CatalogBuiltin, CatalogPostgres:
	case CatalogYAML:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog source %q requires catalog.path", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1, got %d", c.Batch.Workers)
	}
	return nil
}

// ParseEnv loads overrides from environment variables into target.
// Fields without a matching variable keep their current value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
