// Package scheduler runs the periodic alert regeneration job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/models"
)

// jobTimeout bounds a single alert run
const jobTimeout = time.Minute

// AlertGenerator rebuilds the alert set
type AlertGenerator interface {
	GenerateAlerts(ctx context.Context) ([]models.Alert, error)
}

// Notifier delivers a digest of freshly generated alerts
type Notifier interface {
	SendAlertDigest(alerts []models.Alert) error
}

// Scheduler regenerates alerts on a cron schedule and optionally mails a digest
type Scheduler struct {
	cron     *cron.Cron
	alerts   AlertGenerator
	notifier Notifier
	log      *logrus.Logger
}

// New registers the alert job on the cron schedule. A nil notifier disables the digest.
func New(schedule string, alerts AlertGenerator, notifier Notifier, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithLogger(cron.PrintfLogger(log))),
		alerts:   alerts,
		notifier: notifier,
		log:      log,
	}
	if _, err := s.cron.AddFunc(schedule, s.runAlerts); err != nil {
		return nil, fmt.Errorf("failed to schedule alerts job %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop halts the schedule and waits for a running job to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("Scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out, job still running")
	}
}

func (s *Scheduler) runAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	if err := s.generate(ctx); err != nil {
		s.log.Errorf("Scheduled alert run failed: %v", err)
	}
}

func (s *Scheduler) generate(ctx context.Context) error {
	alerts, err := s.alerts.GenerateAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate alerts: %w", err)
	}
	s.log.WithField("count", len(alerts)).Info("Alerts regenerated")

	if s.notifier == nil {
		return nil
	}
	if err := s.notifier.SendAlertDigest(alerts); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}
