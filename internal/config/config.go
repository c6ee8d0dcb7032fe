package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string
	LogLevel string

	AuthEnabled       bool
	JWTSecret         string
	AdminPasswordHash string
	TokenTTL          time.Duration

	CBRURL string

	RedisAddr        string
	RedisPassword    string
	InsightsCacheTTL time.Duration

	AlertsSchedule  string
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SenderEmail     string
	DigestRecipient string

	FrontendURL string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	authEnabled, err := getEnvBool("AUTH_ENABLED", false)
	if err != nil {
		return nil, err
	}
	tokenTTL, err := getEnvDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("INSIGHTS_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBConn:            getEnv("DB_CONN", "host=localhost port=5432 user=finance password=finance dbname=finance sslmode=disable"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		AuthEnabled:       authEnabled,
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		TokenTTL:          tokenTTL,
		CBRURL:            getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		InsightsCacheTTL:  cacheTTL,
		AlertsSchedule:    getEnv("ALERTS_SCHEDULE", "0 7 * * *"),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SenderEmail:       getEnv("SENDER_EMAIL", ""),
		DigestRecipient:   getEnv("DIGEST_RECIPIENT", ""),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.AuthEnabled {
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
		}
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required when AUTH_ENABLED is set")
		}
	}
	if cfg.InsightsCacheTTL <= 0 {
		return nil, fmt.Errorf("INSIGHTS_CACHE_TTL must be positive, got %s", cfg.InsightsCacheTTL)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.AlertsSchedule != "" {
		if _, err := cron.ParseStandard(cfg.AlertsSchedule); err != nil {
			return nil, fmt.Errorf("invalid ALERTS_SCHEDULE: %w", err)
		}
	}

	return cfg, nil
}

// MailEnabled reports whether the alert digest can be sent
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != "" && c.DigestRecipient != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
