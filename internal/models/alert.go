package models

import (
	"fmt"
	"time"
)

type AlertType string

const (
	AlertBudgetLimit   AlertType = "budget_limit"
	AlertGoalDeadline  AlertType = "goal_deadline"
	AlertDebtDue       AlertType = "debt_due"
	AlertEmergencyFund AlertType = "emergency_fund"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Alert is a generated warning about budgets, goals, debts or the balance.
// RelatedID is nil for balance alerts.
type Alert struct {
	ID        int64     `json:"id"`
	Type      AlertType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	IsRead    bool      `json:"is_read"`
	RelatedID *int64    `json:"related_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Fingerprint identifies an alert across regenerations so read state can be carried over
func (a Alert) Fingerprint() string {
	related := "-"
	if a.RelatedID != nil {
		related = fmt.Sprintf("%d", *a.RelatedID)
	}
	return fmt.Sprintf("%s|%s|%s", a.Type, related, a.Title)
}
