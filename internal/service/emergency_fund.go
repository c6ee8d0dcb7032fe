package service

import (
	"context"
	"errors"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

// GetEmergencyFund returns the fund, creating an empty one on first access
func (s *Service) GetEmergencyFund(ctx context.Context) (*models.EmergencyFund, error) {
	f, err := s.store.GetEmergencyFund(ctx)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	f = &models.EmergencyFund{TargetMonths: models.DefaultEmergencyMonths}
	if err := s.store.SaveEmergencyFund(ctx, f); err != nil {
		return nil, err
	}
	s.log.Infof("Emergency fund %d created", f.ID)
	return f, nil
}

// UpdateEmergencyFund applies the supplied fields; the target is recomputed whenever
// monthly expenses or covered months change.
func (s *Service) UpdateEmergencyFund(ctx context.Context, in models.EmergencyFundInput) (*models.EmergencyFund, error) {
	f, err := s.GetEmergencyFund(ctx)
	if err != nil {
		return nil, err
	}

	if in.TargetAmount != nil {
		f.TargetAmount = *in.TargetAmount
	}
	if in.CurrentAmount != nil {
		f.CurrentAmount = *in.CurrentAmount
	}
	if in.MonthlyExpenses != nil {
		f.MonthlyExpenses = *in.MonthlyExpenses
	}
	if in.TargetMonths != nil {
		if *in.TargetMonths <= 0 {
			return nil, models.NewFieldError("target_months", "must be greater than zero")
		}
		f.TargetMonths = *in.TargetMonths
	}
	if err := checkNonNegative("target_amount", f.TargetAmount); err != nil {
		return nil, err
	}
	if err := checkNonNegative("current_amount", f.CurrentAmount); err != nil {
		return nil, err
	}
	if err := checkNonNegative("monthly_expenses", f.MonthlyExpenses); err != nil {
		return nil, err
	}
	if in.MonthlyExpenses != nil || in.TargetMonths != nil {
		*f = rules.RecalculateFundTarget(*f)
	}

	if err := s.store.SaveEmergencyFund(ctx, f); err != nil {
		return nil, err
	}

	s.log.Infof("Emergency fund updated: %.2f of %.2f", f.CurrentAmount, f.TargetAmount)
	return f, nil
}

// ContributeEmergencyFund adds amount to a configured fund
func (s *Service) ContributeEmergencyFund(ctx context.Context, in models.PaymentInput) (*models.EmergencyFund, error) {
	amount, err := requirePositive("amount", in.Amount)
	if err != nil {
		return nil, err
	}

	f, err := s.store.ContributeEmergencyFund(ctx, amount)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Emergency fund contribution: %.2f, now %.2f", amount, f.CurrentAmount)
	return f, nil
}
