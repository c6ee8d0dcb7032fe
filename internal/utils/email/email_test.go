package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Dan9191/finance-service/internal/models"
)

func TestBuildDigest(t *testing.T) {
	now := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)
	alerts := []models.Alert{
		{Title: "Budget exceeded", Message: "You exceeded the budget by 20.0% (Food)", Severity: models.SeverityCritical},
		{Title: "Investment opportunity", Message: "Consider investing", Severity: models.SeverityLow},
		{Title: "Goal deadline approaching", Message: "Only 10 days left", Severity: models.SeverityHigh},
	}

	subject, body, ok := buildDigest(alerts, "http://localhost:5173", now)
	assert.True(t, ok)
	assert.Equal(t, "Finance alerts for 2026-10-19: 2 need attention", subject)
	assert.Contains(t, body, "[CRITICAL] Budget exceeded")
	assert.Contains(t, body, "[HIGH] Goal deadline approaching")
	assert.NotContains(t, body, "Investment opportunity")
	assert.Contains(t, body, "http://localhost:5173")
}

func TestBuildDigestNothingUrgent(t *testing.T) {
	alerts := []models.Alert{{Title: "Low balance", Severity: models.SeverityMedium}}

	_, _, ok := buildDigest(alerts, "", time.Now())
	assert.False(t, ok)
}
