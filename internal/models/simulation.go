package models

import "time"

// Simulation is a stored "what-if" purchase calculation
type Simulation struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	TargetAmount    float64   `json:"target_amount"`
	TargetMonths    int       `json:"target_months"`
	MonthlyIncome   float64   `json:"monthly_income"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	MonthlySavings  float64   `json:"monthly_savings"`
	IsViable        bool      `json:"is_viable"`
	CreatedAt       time.Time `json:"created_at"`
}

// SimulationResult adds the derived, non-persisted figures to a Simulation.
// AdjustedMonths is nil when savings are zero or negative.
type SimulationResult struct {
	Simulation
	TotalSavings         float64  `json:"total_savings"`
	NeededMonthlySavings float64  `json:"needed_monthly_savings"`
	Surplus              float64  `json:"surplus"`
	AdjustedMonths       *int     `json:"adjusted_months"`
	Recommendations      []string `json:"recommendations"`
}

type SimulationInput struct {
	Name         *string  `json:"name"`
	TargetAmount *float64 `json:"target_amount"`
	TargetMonths *int     `json:"target_months"`
}
