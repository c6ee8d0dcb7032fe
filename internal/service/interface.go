package service

import (
	"context"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

// Store is the persistence the service depends on; *repository.Repository implements it.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go
type Store interface {
	ListTransactions(ctx context.Context, f models.TransactionFilter) ([]models.Transaction, error)
	ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
	TransactionTotals(ctx context.Context) (income, expenses float64, err error)
	CategorySpent(ctx context.Context, categoryID int64, from, to time.Time) (float64, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListBudgets(ctx context.Context, month, year int) ([]models.Budget, error)
	GetBudget(ctx context.Context, id int64) (*models.Budget, error)
	CreateBudget(ctx context.Context, b *models.Budget) error
	UpdateBudget(ctx context.Context, b *models.Budget) error
	UpdateBudgetSpent(ctx context.Context, id int64, spent float64) error
	DeleteBudget(ctx context.Context, id int64) error

	ListGoals(ctx context.Context) ([]models.Goal, error)
	GetGoal(ctx context.Context, id int64) (*models.Goal, error)
	CreateGoal(ctx context.Context, g *models.Goal) error
	UpdateGoal(ctx context.Context, g *models.Goal) error
	DeleteGoal(ctx context.Context, id int64) error

	ListDebts(ctx context.Context, status models.DebtStatus) ([]models.Debt, error)
	GetDebt(ctx context.Context, id int64) (*models.Debt, error)
	CreateDebt(ctx context.Context, d *models.Debt) error
	UpdateDebt(ctx context.Context, d *models.Debt) error
	PayDebt(ctx context.Context, id int64, amount float64) (*models.Debt, error)
	DeleteDebt(ctx context.Context, id int64) error

	ListInvestments(ctx context.Context) ([]models.Investment, error)
	GetInvestment(ctx context.Context, id int64) (*models.Investment, error)
	CreateInvestment(ctx context.Context, inv *models.Investment) error
	UpdateInvestment(ctx context.Context, inv *models.Investment) error
	DeleteInvestment(ctx context.Context, id int64) error
	AddContribution(ctx context.Context, c *models.Contribution) error
	ListContributions(ctx context.Context, investmentID int64) ([]models.Contribution, error)

	GetEmergencyFund(ctx context.Context) (*models.EmergencyFund, error)
	SaveEmergencyFund(ctx context.Context, f *models.EmergencyFund) error
	ContributeEmergencyFund(ctx context.Context, amount float64) (*models.EmergencyFund, error)

	ListAlerts(ctx context.Context) ([]models.Alert, error)
	MarkAlertRead(ctx context.Context, id int64) error
	ReplaceAlerts(ctx context.Context, alerts []models.Alert) ([]models.Alert, error)

	ListSimulations(ctx context.Context) ([]models.Simulation, error)
	CreateSimulation(ctx context.Context, s *models.Simulation) error
	DeleteSimulation(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}

// Cache holds computed read models; Get returns cache.ErrMiss for absent keys
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// KeyRateSource provides the central bank reference rate
type KeyRateSource interface {
	KeyRate(ctx context.Context) (float64, error)
}
