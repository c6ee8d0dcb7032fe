package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

func (s *Service) ListSimulations(ctx context.Context) ([]models.Simulation, error) {
	return s.store.ListSimulations(ctx)
}

// Simulate projects a purchase against the last three months of history and stores the result
func (s *Service) Simulate(ctx context.Context, in models.SimulationInput) (*models.SimulationResult, error) {
	name, err := requireString("name", in.Name)
	if err != nil {
		return nil, err
	}
	target, err := requirePositive("target_amount", in.TargetAmount)
	if err != nil {
		return nil, err
	}
	if in.TargetMonths == nil {
		return nil, models.NewFieldError("target_months", "is required")
	}
	if *in.TargetMonths <= 0 {
		return nil, models.NewFieldError("target_months", "must be greater than zero")
	}

	from := rules.LookbackStart(s.now())
	recent, err := s.store.ListTransactions(ctx, models.TransactionFilter{DateFrom: &from})
	if err != nil {
		return nil, err
	}

	result, err := rules.SimulatePurchase(recent, target, *in.TargetMonths)
	if err != nil {
		return nil, err
	}
	result.Name = name

	if err := s.store.CreateSimulation(ctx, &result.Simulation); err != nil {
		return nil, err
	}

	s.log.Infof("Simulation %d stored: %s, viable=%t", result.ID, result.Name, result.IsViable)
	return &result, nil
}

func (s *Service) DeleteSimulation(ctx context.Context, id int64) error {
	if err := s.store.DeleteSimulation(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Simulation %d deleted", id)
	return nil
}
