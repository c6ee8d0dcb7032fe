package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/models"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewRepository(db), mock
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildTransactionFilter(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    models.TransactionFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "empty filter",
			filter:    models.TransactionFilter{},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "month without year is ignored",
			filter:    models.TransactionFilter{Month: 3},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "month window",
			filter:    models.TransactionFilter{Month: 3, Year: 2026},
			wantWhere: " WHERE t.date >= $1 AND t.date < $2",
			wantArgs:  2,
		},
		{
			name: "every filter",
			filter: models.TransactionFilter{
				Month:      3,
				Year:       2026,
				Search:     " coffee ",
				Type:       models.TransactionExpense,
				CategoryID: int64Ptr(7),
				DateFrom:   &from,
				DateTo:     &from,
				AmountMin:  float64Ptr(-100),
				AmountMax:  float64Ptr(0),
			},
			wantWhere: " WHERE t.date >= $1 AND t.date < $2 AND t.description ILIKE $3 AND t.type = $4" +
				" AND t.category_id = $5 AND t.date >= $6 AND t.date <= $7 AND t.amount >= $8 AND t.amount <= $9",
			wantArgs: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildTransactionFilter(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Len(t, args, tt.wantArgs)
		})
	}

	_, args := buildTransactionFilter(models.TransactionFilter{Search: " coffee "})
	assert.Equal(t, []interface{}{"%coffee%"}, args)

	_, args = buildTransactionFilter(models.TransactionFilter{Month: 12, Year: 2026})
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), args[1])
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		Description: "Groceries",
		Amount:      -42.5,
		Type:        models.TransactionExpense,
		Date:        now,
		CategoryID:  int64Ptr(2),
	}

	mock.ExpectQuery(`INSERT INTO finance.transactions`).
		WithArgs("Groceries", -42.5, "expense", now, int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	require.NoError(t, repo.CreateTransaction(context.Background(), tx))
	assert.Equal(t, int64(11), tx.ID)
	assert.Equal(t, now, tx.CreatedAt)
}

func TestGetTransaction(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "description", "amount", "type", "date", "category_id", "name", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM finance.transactions t\s+LEFT JOIN finance.categories c`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(5), "Salary", 3000.0, "income", now, nil, "", now, now))

	got, err := repo.GetTransaction(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionIncome, got.Type)
	assert.Nil(t, got.CategoryID)
	assert.Equal(t, 3000.0, got.Amount)

	mock.ExpectQuery(`FROM finance.transactions t`).
		WithArgs(int64(6)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetTransaction(context.Background(), 6)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteTransactionMissing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM finance.transactions`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTransaction(context.Background(), 99)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTransactionTotals(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SUM\(amount\) FILTER`).
		WillReturnRows(sqlmock.NewRows([]string{"income", "expenses"}).AddRow(5000.0, -1250.25))

	income, expenses, err := repo.TransactionTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000.0, income)
	assert.Equal(t, -1250.25, expenses)
}

func TestAddContribution(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("bumps total and inserts", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		c := &models.Contribution{InvestmentID: 3, Amount: 250, Date: now}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE finance.investments\s+SET total_invested = total_invested \+ \$1`).
			WithArgs(250.0, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO finance.contributions`).
			WithArgs(int64(3), 250.0, now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), now))
		mock.ExpectCommit()

		require.NoError(t, repo.AddContribution(context.Background(), c))
		assert.Equal(t, int64(8), c.ID)
	})

	t.Run("unknown investment rolls back", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		c := &models.Contribution{InvestmentID: 404, Amount: 10, Date: now}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE finance.investments`).
			WithArgs(10.0, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.AddContribution(context.Background(), c)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestReplaceAlertsKeepsReadState(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	alerts := []models.Alert{
		{Type: models.AlertBudgetLimit, Title: "Budget exceeded", Message: "m1", Severity: models.SeverityHigh, RelatedID: int64Ptr(3)},
		{Type: models.AlertEmergencyFund, Title: "Low balance", Message: "m2", Severity: models.SeverityMedium},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT type, title, related_id FROM finance.alerts WHERE is_read`).
		WillReturnRows(sqlmock.NewRows([]string{"type", "title", "related_id"}).
			AddRow("budget_limit", "Budget exceeded", int64(3)))
	mock.ExpectExec(`DELETE FROM finance.alerts`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectQuery(`INSERT INTO finance.alerts`).
		WithArgs("budget_limit", "Budget exceeded", "m1", "high", true, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(20), now))
	mock.ExpectQuery(`INSERT INTO finance.alerts`).
		WithArgs("emergency_fund", "Low balance", "m2", "medium", false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(21), now))
	mock.ExpectCommit()

	stored, err := repo.ReplaceAlerts(context.Background(), alerts)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.True(t, stored[0].IsRead)
	assert.False(t, stored[1].IsRead)
	assert.Equal(t, int64(21), stored[1].ID)
	assert.False(t, alerts[0].IsRead, "input slice must not be modified")
}

func TestGetEmergencyFundMissing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`FROM finance.emergency_funds`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetEmergencyFund(context.Background())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestContributeEmergencyFund(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "target_amount", "current_amount", "monthly_expenses", "target_months", "updated_at"}

	mock.ExpectQuery(`SET current_amount = current_amount \+ \$1`).
		WithArgs(50.0).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), 15000.0, 150.0, 2500.0, int64(6), now))

	f, err := repo.ContributeEmergencyFund(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 150.0, f.CurrentAmount)

	mock.ExpectQuery(`UPDATE finance.emergency_funds`).
		WithArgs(50.0).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.ContributeEmergencyFund(context.Background(), 50)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPayDebt(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "total_amount", "remaining_amount", "monthly_payment", "interest_rate", "due_date",
		"status", "created_at", "updated_at"}

	mock.ExpectQuery(`SET remaining_amount = GREATEST\(remaining_amount - \$1, 0\)`).
		WithArgs(300.0, int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(2), "Card", 1000.0, 0.0, 100.0, 12.5, now, "paid", now, now))

	d, err := repo.PayDebt(context.Background(), 2, 300)
	require.NoError(t, err)
	assert.Zero(t, d.RemainingAmount)
	assert.Equal(t, models.DebtPaid, d.Status)

	mock.ExpectQuery(`UPDATE finance.debts`).
		WithArgs(10.0, int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.PayDebt(context.Background(), 3, 10)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListBudgetsForMonth(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "category_id", "name", "amount", "spent", "month", "year", "created_at", "updated_at"}

	mock.ExpectQuery(`WHERE b.month = \$1 AND b.year = \$2`).
		WithArgs(10, 2026).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), int64(2), "Food", 500.0, 120.0, 10, 2026, now, now))

	budgets, err := repo.ListBudgets(context.Background(), 10, 2026)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "Food", budgets[0].CategoryName)
}
