package rules

import (
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/shopspring/decimal"
)

// Summarize totals income and expense magnitudes and groups expenses by category
func Summarize(txs []models.Transaction) models.TransactionSummary {
	income, expenses := decimal.Zero, decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range txs {
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(dec(t.Magnitude()))
		case models.TransactionExpense:
			expenses = expenses.Add(dec(t.Magnitude()))
			name := categoryName(t)
			byCategory[name] = byCategory[name].Add(dec(t.Magnitude()))
		}
	}

	categoryExpenses := make(map[string]float64, len(byCategory))
	for name, total := range byCategory {
		categoryExpenses[name] = total.InexactFloat64()
	}
	return models.TransactionSummary{
		Income:           income.InexactFloat64(),
		Expenses:         expenses.InexactFloat64(),
		Balance:          income.Sub(expenses).InexactFloat64(),
		CategoryExpenses: categoryExpenses,
	}
}
