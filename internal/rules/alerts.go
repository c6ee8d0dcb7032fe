// Package rules holds the financial rules engine: pure calculators over
// snapshots of records that the caller already loaded from storage.
package rules

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

// Budget usage thresholds, in percent of the limit
const (
	budgetExceededPct = 100.0
	budgetHighPct     = 90.0
	budgetMediumPct   = 80.0
)

// Balance thresholds
const (
	investmentBalance = 1000.0
	lowBalance        = 500.0
)

// AlertInput is the snapshot the alert generator reads.
// ExpenseSum carries the signed (negative) sum of expense amounts.
type AlertInput struct {
	Budgets    []models.Budget
	Goals      []models.Goal
	Debts      []models.Debt
	IncomeSum  float64
	ExpenseSum float64
}

var severityRank = map[models.Severity]int{
	models.SeverityCritical: 1,
	models.SeverityHigh:     2,
	models.SeverityMedium:   3,
	models.SeverityLow:      4,
}

// SeverityRank orders severities from most to least urgent; unknown values rank last
func SeverityRank(s models.Severity) int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return 5
}

// SortAlerts orders alerts by severity rank, keeping the relative order of equal ranks
func SortAlerts(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return SeverityRank(alerts[i].Severity) < SeverityRank(alerts[j].Severity)
	})
}

// GenerateAlerts evaluates every rule against the snapshot and returns a fresh,
// severity-sorted alert list. Each record yields at most one alert.
func GenerateAlerts(in AlertInput, now time.Time) []models.Alert {
	alerts := make([]models.Alert, 0)

	for _, b := range in.Budgets {
		if a, ok := budgetAlert(b); ok {
			alerts = append(alerts, a)
		}
	}
	for _, g := range in.Goals {
		if a, ok := goalAlert(g, now); ok {
			alerts = append(alerts, a)
		}
	}
	for _, d := range in.Debts {
		if d.Status != models.DebtActive {
			continue
		}
		if a, ok := debtAlert(d, now); ok {
			alerts = append(alerts, a)
		}
	}
	alerts = append(alerts, balanceAlerts(in.IncomeSum, in.ExpenseSum)...)

	SortAlerts(alerts)
	return alerts
}

// daysUntil counts whole days from now to t, rounding up
func daysUntil(t, now time.Time) int {
	return int(math.Ceil(float64(t.Sub(now)) / float64(24*time.Hour)))
}

func relatedID(id int64) *int64 {
	return &id
}

func budgetAlert(b models.Budget) (models.Alert, bool) {
	if b.Amount <= 0 {
		return models.Alert{}, false
	}
	pct := b.Spent / b.Amount * 100

	alert := models.Alert{Type: models.AlertBudgetLimit, RelatedID: relatedID(b.ID)}
	switch {
	case pct >= budgetExceededPct:
		alert.Severity = models.SeverityCritical
		alert.Title = "Budget exceeded"
		alert.Message = fmt.Sprintf("You exceeded the budget by %s%%", formatPercent(pct-100))
	case pct >= budgetHighPct:
		alert.Severity = models.SeverityHigh
		alert.Title = "Budget almost exhausted"
		alert.Message = fmt.Sprintf("You have already spent %s%% of the budget", formatPercent(pct))
	case pct >= budgetMediumPct:
		alert.Severity = models.SeverityMedium
		alert.Title = "Budget nearing its limit"
		alert.Message = fmt.Sprintf("You have spent %s%% of this category's budget", formatPercent(pct))
	default:
		return models.Alert{}, false
	}
	if b.CategoryName != "" {
		alert.Message += fmt.Sprintf(" (%s)", b.CategoryName)
	}
	return alert, true
}

func goalAlert(g models.Goal, now time.Time) (models.Alert, bool) {
	if g.TargetAmount <= 0 {
		return models.Alert{}, false
	}
	daysLeft := daysUntil(g.TargetDate, now)
	progress := g.CurrentAmount / g.TargetAmount * 100

	alert := models.Alert{Type: models.AlertGoalDeadline, RelatedID: relatedID(g.ID)}
	switch {
	case daysLeft <= 7 && progress < 50:
		alert.Severity = models.SeverityCritical
		alert.Title = "Critical goal"
		alert.Message = fmt.Sprintf("Goal %q is due in %d days with only %s%% completed", g.Name, daysLeft, formatPercent(progress))
	case daysLeft <= 15 && progress < 70:
		alert.Severity = models.SeverityHigh
		alert.Title = "Goal at risk"
		alert.Message = fmt.Sprintf("Goal %q is due in %d days and you are at %s%% of the target", g.Name, daysLeft, formatPercent(progress))
	case daysLeft <= 30 && progress < 80:
		alert.Severity = models.SeverityMedium
		alert.Title = "Goal behind schedule"
		alert.Message = fmt.Sprintf("Goal %q needs attention - %s%% completed", g.Name, formatPercent(progress))
	default:
		return models.Alert{}, false
	}
	return alert, true
}

func debtAlert(d models.Debt, now time.Time) (models.Alert, bool) {
	daysLeft := daysUntil(d.DueDate, now)

	alert := models.Alert{Type: models.AlertDebtDue, RelatedID: relatedID(d.ID)}
	switch {
	case daysLeft < 0:
		alert.Severity = models.SeverityCritical
		alert.Title = "Debt overdue"
		alert.Message = fmt.Sprintf("Debt %q is overdue by %d days", d.Name, -daysLeft)
	case daysLeft == 0:
		alert.Severity = models.SeverityCritical
		alert.Title = "Due today"
		alert.Message = fmt.Sprintf("Debt %q is due today!", d.Name)
	case daysLeft <= 3:
		alert.Severity = models.SeverityHigh
		alert.Title = "Payment due soon"
		alert.Message = fmt.Sprintf("Debt %q is due in %d days", d.Name, daysLeft)
	case daysLeft <= 7:
		alert.Severity = models.SeverityMedium
		alert.Title = "Upcoming payment"
		alert.Message = fmt.Sprintf("Debt %q is due in %d days", d.Name, daysLeft)
	default:
		return models.Alert{}, false
	}
	return alert, true
}

// balanceAlerts checks the net balance; the three checks are independent
func balanceAlerts(incomeSum, expenseSum float64) []models.Alert {
	balance := dec(incomeSum).Add(dec(expenseSum)).InexactFloat64()

	var alerts []models.Alert
	if balance < 0 {
		alerts = append(alerts, models.Alert{
			Type:     models.AlertBudgetLimit,
			Title:    "Negative balance",
			Message:  fmt.Sprintf("Your expenses exceed your income by %s. Review your spending and cut non-essential expenses.", formatMoney(math.Abs(balance))),
			Severity: models.SeverityCritical,
		})
	}
	if balance > investmentBalance {
		alerts = append(alerts, models.Alert{
			Type:     models.AlertEmergencyFund,
			Title:    "Investment opportunity",
			Message:  fmt.Sprintf("You have %s available. Consider investing it.", formatMoney(balance)),
			Severity: models.SeverityLow,
		})
	}
	if balance > 0 && balance <= lowBalance {
		alerts = append(alerts, models.Alert{
			Type:     models.AlertEmergencyFund,
			Title:    "Low balance",
			Message:  fmt.Sprintf("Your balance is low: %s. Consider reducing expenses or increasing income.", formatMoney(balance)),
			Severity: models.SeverityMedium,
		})
	}
	return alerts
}
