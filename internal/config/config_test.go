package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "john@doe.com", cfg.Mail.ExampleRecipient)
	assert.Equal(t, "Hello John", cfg.Mail.ExampleMessage)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("POSTS_PRIMARY__ENV", "production")
	t.Setenv("POSTS_SERVER__PORT", "9090")
	t.Setenv("POSTS_SERVER__READ_TIMEOUT", "5")
	t.Setenv("POSTS_STORAGE__DRIVER", "memory")
	t.Setenv("POSTS_STORAGE__CACHE_ENABLED", "true")
	t.Setenv("POSTS_DATABASE__HOST", "")
	t.Setenv("POSTS_MAIL__EXAMPLE_RECIPIENT", "jane@doe.com")
	t.Setenv("POSTS_OBSERVABILITY__LOGGING__LEVEL", "debug")
	t.Setenv("POSTS_OBSERVABILITY__HEALTH_CHECKS__INTERVAL", "1m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.CacheEnabled)
	assert.Equal(t, "jane@doe.com", cfg.Mail.ExampleRecipient)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, time.Minute, cfg.Observability.HealthChecks.Interval)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"POSTS_STORAGE__DRIVER":               "sqlite",
		"POSTS_MAIL__EXAMPLE_RECIPIENT":       "not-an-email",
		"POSTS_DATABASE__SSL_MODE":            "sometimes",
		"POSTS_OBSERVABILITY__LOGGING__LEVEL": "verbose",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseOnlyRequiredForPostgres(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Host = ""
	assert.Error(t, cfg.validate())

	cfg = DefaultConfig()
	cfg.Database.Host = ""
	cfg.Storage.Driver = StorageDriverMemory
	assert.NoError(t, cfg.validate())
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.HealthChecks.Interval = 10 * time.Millisecond
	assert.Error(t, cfg.Validate())

	cfg.HealthChecks.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestNewRelicEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.False(t, cfg.NewRelicEnabled())

	cfg.NewRelic.LicenseKey = "key"
	assert.True(t, cfg.NewRelicEnabled())
}
