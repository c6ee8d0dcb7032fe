package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
)

func (s *Service) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	return s.store.ListInvestments(ctx)
}

// CreateInvestment validates and stores an investment
func (s *Service) CreateInvestment(ctx context.Context, in models.InvestmentInput) (*models.Investment, error) {
	name, err := requireString("name", in.Name)
	if err != nil {
		return nil, err
	}
	if in.Type == nil || !in.Type.Valid() {
		return nil, models.NewFieldError("type", "must be one of stock, fund, fixed_income, crypto, other")
	}

	inv := &models.Investment{Name: name, Type: *in.Type}
	if in.TotalInvested != nil {
		inv.TotalInvested = *in.TotalInvested
	}
	if in.CurrentValue != nil {
		inv.CurrentValue = *in.CurrentValue
	}
	if err := validateInvestment(inv); err != nil {
		return nil, err
	}

	if err := s.store.CreateInvestment(ctx, inv); err != nil {
		return nil, err
	}

	s.log.Infof("Investment %d created: %s (%s)", inv.ID, inv.Name, inv.Type)
	return inv, nil
}

// UpdateInvestment applies the supplied fields of in to investment id
func (s *Service) UpdateInvestment(ctx context.Context, id int64, in models.InvestmentInput) (*models.Investment, error) {
	inv, err := s.store.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if inv.Name, err = requireString("name", in.Name); err != nil {
			return nil, err
		}
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, models.NewFieldError("type", "must be one of stock, fund, fixed_income, crypto, other")
		}
		inv.Type = *in.Type
	}
	if in.TotalInvested != nil {
		inv.TotalInvested = *in.TotalInvested
	}
	if in.CurrentValue != nil {
		inv.CurrentValue = *in.CurrentValue
	}
	if err := validateInvestment(inv); err != nil {
		return nil, err
	}

	if err := s.store.UpdateInvestment(ctx, inv); err != nil {
		return nil, err
	}

	s.log.Infof("Investment %d updated", id)
	return inv, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, id int64) error {
	if err := s.store.DeleteInvestment(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Investment %d deleted", id)
	return nil
}

// AddContribution records a deposit into an investment, dated now unless given
func (s *Service) AddContribution(ctx context.Context, in models.ContributionInput) (*models.Contribution, error) {
	if in.InvestmentID == nil || *in.InvestmentID <= 0 {
		return nil, models.NewFieldError("investment_id", "is required")
	}
	amount, err := requirePositive("amount", in.Amount)
	if err != nil {
		return nil, err
	}

	c := &models.Contribution{
		InvestmentID: *in.InvestmentID,
		Amount:       amount,
		Date:         s.now(),
	}
	if in.Date != nil && !in.Date.IsZero() {
		c.Date = in.Date.Time
	}

	if err := s.store.AddContribution(ctx, c); err != nil {
		return nil, err
	}

	s.log.Infof("Contribution %d added to investment %d: %.2f", c.ID, c.InvestmentID, c.Amount)
	return c, nil
}

// ListContributions returns the contributions of an existing investment
func (s *Service) ListContributions(ctx context.Context, investmentID int64) ([]models.Contribution, error) {
	if _, err := s.store.GetInvestment(ctx, investmentID); err != nil {
		return nil, err
	}
	return s.store.ListContributions(ctx, investmentID)
}

func validateInvestment(inv *models.Investment) error {
	if err := checkNonNegative("total_invested", inv.TotalInvested); err != nil {
		return err
	}
	return checkNonNegative("current_value", inv.CurrentValue)
}
