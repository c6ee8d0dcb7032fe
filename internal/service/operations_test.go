package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/finance-service/internal/cache"
	"github.com/Dan9191/finance-service/internal/models"
)

func TestGenerateAlerts(t *testing.T) {
	s, deps := newTestService(t)
	ctx := context.Background()

	deps.store.EXPECT().ListBudgets(gomock.Any(), 0, 0).Return([]models.Budget{
		{ID: 1, CategoryID: 2, CategoryName: "Food", Amount: 500, Spent: 100, Month: 10, Year: 2026},
	}, nil)
	deps.store.EXPECT().CategorySpent(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).Return(-600.0, nil)
	deps.store.EXPECT().UpdateBudgetSpent(gomock.Any(), int64(1), 600.0).Return(nil)
	deps.store.EXPECT().ListGoals(gomock.Any()).Return([]models.Goal{
		{ID: 4, Name: "Trip", TargetAmount: 1000, CurrentAmount: 600, TargetDate: testNow.AddDate(0, 0, 12)},
	}, nil)
	deps.store.EXPECT().ListDebts(gomock.Any(), models.DebtActive).Return(nil, nil)
	deps.store.EXPECT().TransactionTotals(gomock.Any()).Return(1000.0, -1250.0, nil)
	deps.store.EXPECT().ReplaceAlerts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alerts []models.Alert) ([]models.Alert, error) {
			stored := make([]models.Alert, len(alerts))
			for i, a := range alerts {
				a.ID = int64(i + 1)
				stored[i] = a
			}
			return stored, nil
		})

	alerts, err := s.GenerateAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	assert.Equal(t, "Budget exceeded", alerts[0].Title)
	assert.Equal(t, "You exceeded the budget by 20.0% (Food)", alerts[0].Message)
	assert.Equal(t, "Negative balance", alerts[1].Title)
	assert.Equal(t, models.SeverityCritical, alerts[1].Severity)
	assert.Equal(t, "Goal at risk", alerts[2].Title)
	assert.Equal(t, models.SeverityHigh, alerts[2].Severity)
}

func TestGenerateAlertsStorageFailure(t *testing.T) {
	s, deps := newTestService(t)

	deps.store.EXPECT().ListBudgets(gomock.Any(), 0, 0).Return(nil, errors.New("connection refused"))

	_, err := s.GenerateAlerts(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestInsightsCacheHit(t *testing.T) {
	s, deps := newTestService(t)

	deps.cache.EXPECT().Get(gomock.Any(), "insights:2026-10", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) error {
			*dest.(*models.Insights) = models.Insights{AverageExpenses: 42}
			return nil
		})

	got, err := s.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.AverageExpenses)
}

func TestInsightsComputedOnMiss(t *testing.T) {
	for _, cacheErr := range []error{cache.ErrMiss, errors.New("redis down")} {
		t.Run(cacheErr.Error(), func(t *testing.T) {
			s, deps := newTestService(t)
			octStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

			deps.cache.EXPECT().Get(gomock.Any(), "insights:2026-10", gomock.Any()).Return(cacheErr)
			deps.store.EXPECT().ListTransactionsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, from, to time.Time) ([]models.Transaction, error) {
					if !from.Equal(octStart) {
						return nil, nil
					}
					return []models.Transaction{
						{Type: models.TransactionIncome, Amount: 3000},
						{Type: models.TransactionExpense, Amount: -600, CategoryName: "Rent"},
					}, nil
				}).Times(6)
			deps.cache.EXPECT().Set(gomock.Any(), "insights:2026-10", gomock.Any(), 10*time.Minute).Return(errors.New("redis down"))

			got, err := s.Insights(context.Background())
			require.NoError(t, err)
			require.Len(t, got.MonthlyData, 6)
			assert.Equal(t, "Oct 2026", got.MonthlyData[5].Month)
			assert.Equal(t, "May 2026", got.MonthlyData[0].Month)
			assert.Equal(t, 100.0, got.AverageExpenses)
			require.NotNil(t, got.TopCategory)
			assert.Equal(t, "Rent", got.TopCategory.Name)
		})
	}
}

func TestSimulate(t *testing.T) {
	s, deps := newTestService(t)
	lookback := time.Date(2026, 7, 19, 12, 0, 0, 0, time.UTC)

	deps.store.EXPECT().ListTransactions(gomock.Any(), models.TransactionFilter{DateFrom: &lookback}).
		Return([]models.Transaction{
			{Type: models.TransactionIncome, Amount: 9000},
			{Type: models.TransactionExpense, Amount: -6000},
		}, nil)
	deps.store.EXPECT().CreateSimulation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sim *models.Simulation) error {
			assert.Equal(t, "Laptop", sim.Name)
			sim.ID = 5
			return nil
		})

	got, err := s.Simulate(context.Background(), models.SimulationInput{
		Name:         strPtr("Laptop"),
		TargetAmount: f64Ptr(3000),
		TargetMonths: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, 1000.0, got.MonthlySavings)
	assert.True(t, got.IsViable)
	require.NotNil(t, got.AdjustedMonths)
	assert.Equal(t, 3, *got.AdjustedMonths)
}

func TestSimulateValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    models.SimulationInput
		field string
	}{
		{name: "missing name", in: models.SimulationInput{TargetAmount: f64Ptr(10), TargetMonths: intPtr(1)}, field: "name"},
		{name: "zero target", in: models.SimulationInput{Name: strPtr("x"), TargetAmount: f64Ptr(0), TargetMonths: intPtr(1)}, field: "target_amount"},
		{name: "zero months", in: models.SimulationInput{Name: strPtr("x"), TargetAmount: f64Ptr(10), TargetMonths: intPtr(0)}, field: "target_months"},
		{name: "missing months", in: models.SimulationInput{Name: strPtr("x"), TargetAmount: f64Ptr(10)}, field: "target_months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t)
			_, err := s.Simulate(context.Background(), tt.in)
			assertFieldError(t, err, tt.field)
		})
	}
}

func TestPayDebt(t *testing.T) {
	t.Run("payment applied in storage", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().PayDebt(gomock.Any(), int64(1), 300.0).
			Return(&models.Debt{ID: 1, RemainingAmount: 0, Status: models.DebtPaid}, nil)

		got, err := s.PayDebt(context.Background(), 1, models.PaymentInput{Amount: f64Ptr(300)})
		require.NoError(t, err)
		assert.Zero(t, got.RemainingAmount)
		assert.Equal(t, models.DebtPaid, got.Status)
	})

	t.Run("missing debt", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().PayDebt(gomock.Any(), int64(9), 50.0).Return(nil, models.ErrNotFound)

		_, err := s.PayDebt(context.Background(), 9, models.PaymentInput{Amount: f64Ptr(50)})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPayDebtRejectsNonPositive(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.PayDebt(context.Background(), 1, models.PaymentInput{Amount: f64Ptr(-5)})
	assertFieldError(t, err, "amount")
}

func TestEmergencyFund(t *testing.T) {
	t.Run("created on first access", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().GetEmergencyFund(gomock.Any()).Return(nil, models.ErrNotFound)
		deps.store.EXPECT().SaveEmergencyFund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *models.EmergencyFund) error {
				f.ID = 1
				return nil
			})

		f, err := s.GetEmergencyFund(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 6, f.TargetMonths)
		assert.Zero(t, f.TargetAmount)
	})

	t.Run("update recomputes target", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().GetEmergencyFund(gomock.Any()).
			Return(&models.EmergencyFund{ID: 1, TargetMonths: 6, TargetAmount: 100}, nil)
		deps.store.EXPECT().SaveEmergencyFund(gomock.Any(), gomock.Any()).Return(nil)

		f, err := s.UpdateEmergencyFund(context.Background(), models.EmergencyFundInput{MonthlyExpenses: f64Ptr(2500)})
		require.NoError(t, err)
		assert.Equal(t, 15000.0, f.TargetAmount)
	})

	t.Run("zero months rejected", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().GetEmergencyFund(gomock.Any()).Return(&models.EmergencyFund{ID: 1, TargetMonths: 6}, nil)

		_, err := s.UpdateEmergencyFund(context.Background(), models.EmergencyFundInput{TargetMonths: intPtr(0)})
		assertFieldError(t, err, "target_months")
	})

	t.Run("contribute without fund", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().ContributeEmergencyFund(gomock.Any(), 50.0).Return(nil, models.ErrNotFound)

		_, err := s.ContributeEmergencyFund(context.Background(), models.PaymentInput{Amount: f64Ptr(50)})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("contribute adds to current", func(t *testing.T) {
		s, deps := newTestService(t)

		deps.store.EXPECT().ContributeEmergencyFund(gomock.Any(), 50.0).
			Return(&models.EmergencyFund{ID: 1, CurrentAmount: 150}, nil)

		f, err := s.ContributeEmergencyFund(context.Background(), models.PaymentInput{Amount: f64Ptr(50)})
		require.NoError(t, err)
		assert.Equal(t, 150.0, f.CurrentAmount)
	})
}

func TestAddContributionDefaultsDate(t *testing.T) {
	s, deps := newTestService(t)

	deps.store.EXPECT().AddContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Contribution) error {
			assert.Equal(t, testNow, c.Date)
			c.ID = 2
			return nil
		})

	c, err := s.AddContribution(context.Background(), models.ContributionInput{InvestmentID: i64Ptr(3), Amount: f64Ptr(100)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)
}

func TestCreateInvestmentRejectsUnknownType(t *testing.T) {
	s, _ := newTestService(t)
	typ := models.InvestmentType("real_estate")

	_, err := s.CreateInvestment(context.Background(), models.InvestmentInput{Name: strPtr("Flat"), Type: &typ})
	assertFieldError(t, err, "type")
}

func TestIssueToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	s, _ := newTestService(t)
	s.config.AuthEnabled = true
	s.config.JWTSecret = "test-secret"
	s.config.AdminPasswordHash = string(hash)

	token, expiresAt, err := s.IssueToken("hunter2")
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), expiresAt)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return testNow }))
	require.NoError(t, err)
	assert.Equal(t, TokenSubject, claims.Subject)

	_, _, err = s.IssueToken("wrong")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, _, err = s.IssueToken("")
	assertFieldError(t, err, "password")

	s.config.AuthEnabled = false
	_, _, err = s.IssueToken("hunter2")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestKeyRate(t *testing.T) {
	s, deps := newTestService(t)

	deps.rates.EXPECT().KeyRate(gomock.Any()).Return(16.5, nil)

	rate, err := s.KeyRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16.5, rate)
}
