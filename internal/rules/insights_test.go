package rules

import (
	"testing"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(typ models.TransactionType, amount float64, category string) models.Transaction {
	return models.Transaction{
		Type:         typ,
		Amount:       models.NormalizeAmount(amount, typ),
		CategoryName: category,
		Date:         testNow,
	}
}

func TestTrailingMonths(t *testing.T) {
	windows := TrailingMonths(time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC), InsightMonths)
	require.Len(t, windows, 6)

	assert.Equal(t, "2025-10", windows[0].Key)
	assert.Equal(t, "Oct 2025", windows[0].Label)
	assert.Equal(t, "2026-03", windows[5].Key)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), windows[5].Start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), windows[5].End)
	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1].End, windows[i].Start)
	}
}

func TestComputeInsights(t *testing.T) {
	windows := TrailingMonths(testNow, InsightMonths)
	months := make([]MonthTransactions, len(windows))
	for i, w := range windows {
		months[i] = MonthTransactions{Window: w}
	}
	months[4].Transactions = []models.Transaction{
		tx(models.TransactionIncome, 3000, "Salary"),
		tx(models.TransactionExpense, 1200, "Housing"),
	}
	current := []models.Transaction{
		tx(models.TransactionIncome, 3000, "Salary"),
		tx(models.TransactionExpense, 300, "Food"),
		tx(models.TransactionExpense, 250.5, "Transport"),
		tx(models.TransactionExpense, 100, "Food"),
	}
	months[5].Transactions = current

	insights := ComputeInsights(months, current)

	require.Len(t, insights.MonthlyData, 6)
	empty := insights.MonthlyData[0]
	assert.Equal(t, 0.0, empty.Income)
	assert.Equal(t, 0.0, empty.Expenses)
	assert.Equal(t, 0.0, empty.Balance)

	assert.InDelta(t, 3000, insights.MonthlyData[4].Income, 0.001)
	assert.InDelta(t, 1200, insights.MonthlyData[4].Expenses, 0.001)
	assert.InDelta(t, 1800, insights.MonthlyData[4].Balance, 0.001)
	assert.InDelta(t, 650.5, insights.MonthlyData[5].Expenses, 0.001)
	assert.Equal(t, "Oct 2026", insights.MonthlyData[5].Month)

	assert.InDelta(t, (1200+650.5)/6, insights.AverageExpenses, 0.001)

	require.NotNil(t, insights.TopCategory)
	assert.Equal(t, "Food", insights.TopCategory.Name)
	assert.InDelta(t, 400, insights.TopCategory.Amount, 0.001)

	require.Len(t, insights.Insights, 2)
	assert.Contains(t, insights.Insights[0], "308.42")
	assert.Contains(t, insights.Insights[1], "Food")
}

func TestComputeInsights_NoTransactions(t *testing.T) {
	windows := TrailingMonths(testNow, InsightMonths)
	months := make([]MonthTransactions, len(windows))
	for i, w := range windows {
		months[i] = MonthTransactions{Window: w}
	}

	insights := ComputeInsights(months, nil)

	require.Len(t, insights.MonthlyData, 6)
	for _, m := range insights.MonthlyData {
		assert.Equal(t, models.MonthlyData{Month: m.Month, Key: m.Key}, m)
	}
	assert.Equal(t, 0.0, insights.AverageExpenses)
	assert.Nil(t, insights.TopCategory)
	assert.Equal(t, "No expenses recorded this month", insights.Insights[1])
}

func TestTopExpenseCategory(t *testing.T) {
	tests := []struct {
		name     string
		txs      []models.Transaction
		wantName string
		wantNil  bool
	}{
		{
			name:    "no expenses",
			txs:     []models.Transaction{tx(models.TransactionIncome, 100, "Salary")},
			wantNil: true,
		},
		{
			name: "missing category falls back to uncategorized",
			txs: []models.Transaction{
				tx(models.TransactionExpense, 50, ""),
				tx(models.TransactionExpense, 20, "Food"),
			},
			wantName: models.UncategorizedCategory,
		},
		{
			name: "tie goes to first seen",
			txs: []models.Transaction{
				tx(models.TransactionExpense, 40, "Transport"),
				tx(models.TransactionExpense, 40, "Food"),
			},
			wantName: "Transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := TopExpenseCategory(tt.txs)
			if tt.wantNil {
				assert.Nil(t, top)
				return
			}
			require.NotNil(t, top)
			assert.Equal(t, tt.wantName, top.Name)
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]models.Transaction{
		tx(models.TransactionIncome, 2500, "Salary"),
		tx(models.TransactionExpense, 0.1, "Food"),
		tx(models.TransactionExpense, 0.2, "Food"),
		tx(models.TransactionExpense, 99.7, ""),
	})

	assert.Equal(t, 2500.0, summary.Income)
	assert.Equal(t, 100.0, summary.Expenses)
	assert.Equal(t, 2400.0, summary.Balance)
	assert.Equal(t, 0.3, summary.CategoryExpenses["Food"])
	assert.Equal(t, 99.7, summary.CategoryExpenses[models.UncategorizedCategory])
}
