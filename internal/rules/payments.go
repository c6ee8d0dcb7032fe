package rules

import "github.com/Dan9191/finance-service/internal/models"

// RecalculateFundTarget sizes the fund as monthly expenses times the covered months
func RecalculateFundTarget(f models.EmergencyFund) models.EmergencyFund {
	f.TargetAmount = dec(f.MonthlyExpenses).Mul(dec(float64(f.TargetMonths))).InexactFloat64()
	return f
}
