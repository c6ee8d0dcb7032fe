package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/metrics"
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

// Service handles business logic
type Service struct {
	store   Store
	cache   Cache
	rates   KeyRateSource
	metrics *metrics.Metrics
	log     *logrus.Logger
	config  *config.Config
	now     func() time.Time
}

// NewService initializes a new service
func NewService(store Store, cache Cache, rates KeyRateSource, m *metrics.Metrics, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		rates:   rates,
		metrics: m,
		log:     log,
		config:  cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Health checks the database connection
func (s *Service) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// monthBounds returns the [start, end) range of a calendar month
func monthBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func insightsKey(now time.Time) string {
	return "insights:" + rules.CurrentMonth(now).Key
}

// invalidateInsights drops the cached insights of the current month; failures only log
func (s *Service) invalidateInsights(ctx context.Context) {
	if err := s.cache.Delete(ctx, insightsKey(s.now())); err != nil {
		s.log.Warnf("Failed to invalidate insights cache: %v", err)
	}
}

func requireString(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", models.NewFieldError(field, "is required")
	}
	return strings.TrimSpace(*v), nil
}

func requirePositive(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, models.NewFieldError(field, "is required")
	}
	if *v <= 0 {
		return 0, models.NewFieldError(field, "must be greater than zero")
	}
	return *v, nil
}

func checkNonNegative(field string, v float64) error {
	if v < 0 {
		return models.NewFieldError(field, "must not be negative")
	}
	return nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return models.NewFieldError("month", "must be between 1 and 12")
	}
	return nil
}

func checkYear(year int) error {
	if year < 1900 || year > 9999 {
		return models.NewFieldError("year", "is out of range")
	}
	return nil
}
