package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Success_Defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "0.0.0.0", cfg.ServerHost)
		assert.Equal(t, 8080, cfg.ServerPort)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 24*time.Hour, cfg.OnboardingTokenExpiration)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, "hrvault", cfg.MetricsNamespace)
	})

	t.Run("Success_EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("FIELD_KEY", "dGVzdA==")
		t.Setenv("RATE_LIMIT_ENABLED", "false")

		cfg := Load()

		assert.Equal(t, 9090, cfg.ServerPort)
		assert.Equal(t, "mysql", cfg.DBDriver)
		assert.Equal(t, "dGVzdA==", cfg.FieldKey)
		assert.False(t, cfg.RateLimitEnabled)
	})
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.logLevel}
		assert.Equal(t, tt.expected, cfg.GetGinMode(), "log level %q", tt.logLevel)
	}
}
