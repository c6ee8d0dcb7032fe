package rules

import (
	"fmt"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/shopspring/decimal"
)

// SimulationLookbackMonths is how many months of history feed the averages
const SimulationLookbackMonths = 3

// Reduction tiers, in percent of monthly expenses
const (
	mildReductionPct     = 10.0
	moderateReductionPct = 25.0
)

// LookbackStart returns the earliest transaction date the simulator considers
func LookbackStart(now time.Time) time.Time {
	return now.AddDate(0, -SimulationLookbackMonths, 0)
}

// SimulatePurchase projects whether targetAmount can be saved within targetMonths
// at the average monthly savings rate of recent.
func SimulatePurchase(recent []models.Transaction, targetAmount float64, targetMonths int) (models.SimulationResult, error) {
	if targetAmount <= 0 {
		return models.SimulationResult{}, models.NewFieldError("target_amount", "must be greater than zero")
	}
	if targetMonths <= 0 {
		return models.SimulationResult{}, models.NewFieldError("target_months", "must be greater than zero")
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range recent {
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(dec(t.Magnitude()))
		case models.TransactionExpense:
			expenses = expenses.Add(dec(t.Magnitude()))
		}
	}

	lookback := decimal.NewFromInt(SimulationLookbackMonths)
	months := decimal.NewFromInt(int64(targetMonths))
	target := dec(targetAmount)

	monthlyIncome := income.Div(lookback)
	monthlyExpenses := expenses.Div(lookback)
	monthlySavings := monthlyIncome.Sub(monthlyExpenses)
	totalSavings := monthlySavings.Mul(months)
	needed := target.Div(months)

	var adjusted *int
	if monthlySavings.IsPositive() {
		n := int(target.Div(monthlySavings).Ceil().IntPart())
		adjusted = &n
	}

	return models.SimulationResult{
		Simulation: models.Simulation{
			TargetAmount:    targetAmount,
			TargetMonths:    targetMonths,
			MonthlyIncome:   monthlyIncome.InexactFloat64(),
			MonthlyExpenses: monthlyExpenses.InexactFloat64(),
			MonthlySavings:  monthlySavings.InexactFloat64(),
			IsViable:        totalSavings.GreaterThanOrEqual(target),
		},
		TotalSavings:         totalSavings.InexactFloat64(),
		NeededMonthlySavings: needed.InexactFloat64(),
		Surplus:              monthlySavings.Sub(needed).InexactFloat64(),
		AdjustedMonths:       adjusted,
		Recommendations:      recommendations(monthlySavings, needed, monthlyExpenses),
	}, nil
}

func recommendations(savings, needed, monthlyExpenses decimal.Decimal) []string {
	if savings.GreaterThanOrEqual(needed) {
		return []string{"Goal is achievable! You can save enough every month."}
	}

	deficit := needed.Sub(savings)
	recs := []string{fmt.Sprintf("You need to save %s more per month.", deficit.StringFixed(2))}

	// No expenses to cut from: the reduction percentage is undefined.
	if !monthlyExpenses.IsPositive() {
		return recs
	}

	reduction := deficit.Div(monthlyExpenses).Mul(decimal.NewFromInt(100))
	pct := reduction.InexactFloat64()
	switch {
	case pct <= mildReductionPct:
		recs = append(recs, fmt.Sprintf("Cut your spending by %s%% to reach the goal.", reduction.StringFixed(1)))
	case pct <= moderateReductionPct:
		recs = append(recs, fmt.Sprintf("You will need to cut spending by %s%%. Review your expenses.", reduction.StringFixed(1)))
	default:
		recs = append(recs, "Very ambitious goal. Consider extending the deadline or lowering the amount.")
	}
	return recs
}
