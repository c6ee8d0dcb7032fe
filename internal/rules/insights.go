package rules

import (
	"fmt"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/shopspring/decimal"
)

// InsightMonths is the number of trailing calendar months, current included
const InsightMonths = 6

// MonthWindow is one calendar month; End is exclusive
type MonthWindow struct {
	Label string
	Key   string
	Start time.Time
	End   time.Time
}

// MonthTransactions pairs a month window with the transactions dated inside it
type MonthTransactions struct {
	Window       MonthWindow
	Transactions []models.Transaction
}

// TrailingMonths returns n month windows ending with the month of now, oldest first
func TrailingMonths(now time.Time, n int) []MonthWindow {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	windows := make([]MonthWindow, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := first.AddDate(0, -i, 0)
		windows = append(windows, MonthWindow{
			Label: start.Format("Jan 2006"),
			Key:   start.Format("2006-01"),
			Start: start,
			End:   start.AddDate(0, 1, 0),
		})
	}
	return windows
}

// CurrentMonth returns the window containing now
func CurrentMonth(now time.Time) MonthWindow {
	return TrailingMonths(now, 1)[0]
}

// ComputeInsights summarises each month, averages expenses across all given months
// and picks the top expense category of current.
func ComputeInsights(months []MonthTransactions, current []models.Transaction) models.Insights {
	data := make([]models.MonthlyData, 0, len(months))
	totalExpenses := decimal.Zero

	for _, m := range months {
		income, expenses := decimal.Zero, decimal.Zero
		for _, t := range m.Transactions {
			switch t.Type {
			case models.TransactionIncome:
				income = income.Add(dec(t.Magnitude()))
			case models.TransactionExpense:
				expenses = expenses.Add(dec(t.Magnitude()))
			}
		}
		totalExpenses = totalExpenses.Add(expenses)
		data = append(data, models.MonthlyData{
			Month:    m.Window.Label,
			Key:      m.Window.Key,
			Income:   income.InexactFloat64(),
			Expenses: expenses.InexactFloat64(),
			Balance:  income.Sub(expenses).InexactFloat64(),
		})
	}

	average := 0.0
	if len(months) > 0 {
		average = totalExpenses.Div(decimal.NewFromInt(int64(len(months)))).InexactFloat64()
	}

	top := TopExpenseCategory(current)
	insights := []string{fmt.Sprintf("Your average monthly spending is %s", formatMoney(average))}
	if top != nil {
		insights = append(insights, fmt.Sprintf("Your largest spending category this month is %s (%s)", top.Name, formatMoney(top.Amount)))
	} else {
		insights = append(insights, "No expenses recorded this month")
	}

	return models.Insights{
		MonthlyData:     data,
		AverageExpenses: average,
		TopCategory:     top,
		Insights:        insights,
	}
}

// TopExpenseCategory returns the category with the largest summed expense magnitude,
// or nil when there are no expenses. Ties go to the category seen first.
func TopExpenseCategory(txs []models.Transaction) *models.CategoryTotal {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != models.TransactionExpense {
			continue
		}
		name := categoryName(t)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
			totals[name] = decimal.Zero
		}
		totals[name] = totals[name].Add(dec(t.Magnitude()))
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, name := range order[1:] {
		if totals[name].GreaterThan(totals[best]) {
			best = name
		}
	}
	return &models.CategoryTotal{Name: best, Amount: totals[best].InexactFloat64()}
}

func categoryName(t models.Transaction) string {
	if t.CategoryName == "" {
		return models.UncategorizedCategory
	}
	return t.CategoryName
}
