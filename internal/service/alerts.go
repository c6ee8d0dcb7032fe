package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

func (s *Service) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return s.store.ListAlerts(ctx)
}

func (s *Service) MarkAlertRead(ctx context.Context, id int64) error {
	return s.store.MarkAlertRead(ctx, id)
}

// GenerateAlerts rebuilds the alert set from current budgets, goals, active debts
// and the overall balance. Alerts that were read before stay read.
func (s *Service) GenerateAlerts(ctx context.Context) ([]models.Alert, error) {
	budgets, err := s.store.ListBudgets(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	if err := s.refreshSpent(ctx, budgets); err != nil {
		return nil, err
	}
	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.store.ListDebts(ctx, models.DebtActive)
	if err != nil {
		return nil, err
	}
	income, expenses, err := s.store.TransactionTotals(ctx)
	if err != nil {
		return nil, err
	}

	generated := rules.GenerateAlerts(rules.AlertInput{
		Budgets:    budgets,
		Goals:      goals,
		Debts:      debts,
		IncomeSum:  income,
		ExpenseSum: expenses,
	}, s.now())

	stored, err := s.store.ReplaceAlerts(ctx, generated)
	if err != nil {
		return nil, err
	}
	rules.SortAlerts(stored)

	for _, a := range stored {
		s.metrics.AlertsGenerated.WithLabelValues(string(a.Severity)).Inc()
	}
	s.log.Infof("Alerts generated: %d", len(stored))
	return stored, nil
}
