package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.InsightsCacheTTL)
	assert.Equal(t, "0 7 * * *", cfg.AlertsSchedule)
	assert.False(t, cfg.MailEnabled())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("ALERTS_SCHEDULE", "")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "finance@example.com")
	t.Setenv("DIGEST_RECIPIENT", "me@example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.AlertsSchedule)
	assert.True(t, cfg.MailEnabled())
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "empty db conn", env: map[string]string{"DB_CONN": ""}},
		{name: "auth without secret", env: map[string]string{"AUTH_ENABLED": "1", "ADMIN_PASSWORD_HASH": "x"}},
		{name: "auth without hash", env: map[string]string{"AUTH_ENABLED": "1", "JWT_SECRET": "x"}},
		{name: "bad bool", env: map[string]string{"AUTH_ENABLED": "maybe"}},
		{name: "bad duration", env: map[string]string{"INSIGHTS_CACHE_TTL": "soon"}},
		{name: "zero cache ttl", env: map[string]string{"INSIGHTS_CACHE_TTL": "0s"}},
		{name: "negative cache ttl", env: map[string]string{"INSIGHTS_CACHE_TTL": "-5m"}},
		{name: "negative token ttl", env: map[string]string{"TOKEN_TTL": "-1h"}},
		{name: "bad schedule", env: map[string]string{"ALERTS_SCHEDULE": "every day"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
