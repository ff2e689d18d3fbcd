// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the POSTS_ prefix. A double underscore separates
	nesting levels, a single underscore stays part of the key:

		POSTS_SERVER__PORT          -> server.port         -> Config.Server.Port
		POSTS_SERVER__READ_TIMEOUT  -> server.read_timeout -> Config.Server.ReadTimeout
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "POSTS_"

// Storage drivers understood by the repository layer.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Mail          MailConfig           `koanf:"mail" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Usually used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// StorageConfig selects the post store implementation.
type StorageConfig struct {
	Driver       string `koanf:"driver" validate:"required,oneof=postgres memory"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
	CacheEnabled bool   `koanf:"cache_enabled"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// It is only required when the postgres storage driver is selected,
// see Config.validate.
type DatabaseConfig struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name"`
	SSLMode         string `koanf:"ssl_mode"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address  string `koanf:"address" validate:"required"`
	CacheTTL int    `koanf:"cache_ttl" validate:"min=0"`
}

// IntegrationConfig stores third-party credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// MailConfig drives the example mail endpoint and the outgoing sender identity.
type MailConfig struct {
	FromName         string `koanf:"from_name" validate:"required"`
	FromAddress      string `koanf:"from_address" validate:"required,email"`
	ExampleRecipient string `koanf:"example_recipient" validate:"required,email"`
	ExampleMessage   string `koanf:"example_message" validate:"required"`
}

// DefaultConfig returns a Config populated with development defaults.
// Environment variables are layered on top of these values.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			ShutdownTimeout:    10,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Storage: StorageConfig{
			Driver:      StorageDriverPostgres,
			AutoMigrate: true,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "posts",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
		Redis: RedisConfig{
			Address:  "localhost:6379",
			CacheTTL: 300,
		},
		Mail: MailConfig{
			FromName:         "Posts",
			FromAddress:      "onboarding@resend.dev",
			ExampleRecipient: "john@doe.com",
			ExampleMessage:   "Hello John",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it, applies observability defaults, and returns
// the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// POSTS_DATABASE__SSL_MODE -> database.ssl_mode
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

func (c *Config) validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Storage.Driver == StorageDriverPostgres {
		if err := validate.Struct(databaseRequirements(c.Database)); err != nil {
			return fmt.Errorf("database config validation failed: %w", err)
		}
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// databaseRequirementsConfig mirrors DatabaseConfig with the tags that only
// apply to the postgres driver.
type databaseRequirementsConfig struct {
	Host    string `validate:"required"`
	Port    int    `validate:"required,min=1,max=65535"`
	User    string `validate:"required"`
	Name    string `validate:"required"`
	SSLMode string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

func databaseRequirements(db DatabaseConfig) databaseRequirementsConfig {
	return databaseRequirementsConfig{
		Host:    db.Host,
		Port:    db.Port,
		User:    db.User,
		Name:    db.Name,
		SSLMode: db.SSLMode,
	}
}

// IsLocal reports whether the app runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

