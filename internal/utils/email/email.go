package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// urgentAlerts keeps the critical and high alerts
func urgentAlerts(alerts []models.Alert) []models.Alert {
	var urgent []models.Alert
	for _, a := range alerts {
		if a.Severity == models.SeverityCritical || a.Severity == models.SeverityHigh {
			urgent = append(urgent, a)
		}
	}
	return urgent
}

// buildDigest formats the digest subject and body; ok is false when nothing is urgent
func buildDigest(alerts []models.Alert, frontendURL string, now time.Time) (subject, body string, ok bool) {
	urgent := urgentAlerts(alerts)
	if len(urgent) == 0 {
		return "", "", false
	}

	subject = fmt.Sprintf("Finance alerts for %s: %d need attention", now.Format("2006-01-02"), len(urgent))

	var b strings.Builder
	b.WriteString("Hello,\n\n")
	b.WriteString("The following alerts were raised today:\n\n")
	for _, a := range urgent {
		fmt.Fprintf(&b, "[%s] %s\n    %s\n", strings.ToUpper(string(a.Severity)), a.Title, a.Message)
	}
	if frontendURL != "" {
		fmt.Fprintf(&b, "\nReview them at %s\n", frontendURL)
	}
	b.WriteString("\nBest regards,\nFinance Service")

	return subject, b.String(), true
}

// SendAlertDigest emails the critical and high alerts to the digest recipient.
// Nothing is sent when there are none.
func (s *Sender) SendAlertDigest(alerts []models.Alert) error {
	subject, body, ok := buildDigest(alerts, s.cfg.FrontendURL, time.Now())
	if !ok {
		s.logger.Debug("No urgent alerts, digest skipped")
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.DigestRecipient}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send alert digest to %s: %v", s.cfg.DigestRecipient, err)
		return fmt.Errorf("failed to send alert digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.DigestRecipient, e.Subject)
	return nil
}
