package service

import (
	"context"
	"math"

	"github.com/Dan9191/finance-service/internal/models"
)

// ListBudgets returns the budgets of a month (all budgets when month or year is zero)
// with spent recomputed from the stored expenses.
func (s *Service) ListBudgets(ctx context.Context, month, year int) ([]models.Budget, error) {
	if month != 0 {
		if err := checkMonth(month); err != nil {
			return nil, err
		}
	}
	budgets, err := s.store.ListBudgets(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if err := s.refreshSpent(ctx, budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// refreshSpent sets each budget's spent to the magnitude of its category's expenses
// within the budget month and persists changed values.
func (s *Service) refreshSpent(ctx context.Context, budgets []models.Budget) error {
	for i := range budgets {
		b := &budgets[i]
		from, to := monthBounds(b.Month, b.Year)
		sum, err := s.store.CategorySpent(ctx, b.CategoryID, from, to)
		if err != nil {
			return err
		}
		spent := math.Abs(sum)
		if spent == b.Spent {
			continue
		}
		if err := s.store.UpdateBudgetSpent(ctx, b.ID, spent); err != nil {
			return err
		}
		b.Spent = spent
	}
	return nil
}

// CreateBudget validates and stores a monthly budget
func (s *Service) CreateBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	if in.CategoryID == nil || *in.CategoryID <= 0 {
		return nil, models.NewFieldError("category_id", "is required")
	}
	amount, err := requirePositive("amount", in.Amount)
	if err != nil {
		return nil, err
	}
	if in.Month == nil {
		return nil, models.NewFieldError("month", "is required")
	}
	if err := checkMonth(*in.Month); err != nil {
		return nil, err
	}
	if in.Year == nil {
		return nil, models.NewFieldError("year", "is required")
	}
	if err := checkYear(*in.Year); err != nil {
		return nil, err
	}

	b := &models.Budget{
		CategoryID: *in.CategoryID,
		Amount:     amount,
		Month:      *in.Month,
		Year:       *in.Year,
	}
	if err := s.store.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	s.log.Infof("Budget %d created: category %d, %02d/%d, %.2f", b.ID, b.CategoryID, b.Month, b.Year, b.Amount)
	return s.store.GetBudget(ctx, b.ID)
}

// UpdateBudget applies the supplied fields of in to budget id
func (s *Service) UpdateBudget(ctx context.Context, id int64, in models.BudgetInput) (*models.Budget, error) {
	b, err := s.store.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if *in.CategoryID <= 0 {
			return nil, models.NewFieldError("category_id", "is required")
		}
		b.CategoryID = *in.CategoryID
	}
	if in.Amount != nil {
		if b.Amount, err = requirePositive("amount", in.Amount); err != nil {
			return nil, err
		}
	}
	if in.Month != nil {
		if err := checkMonth(*in.Month); err != nil {
			return nil, err
		}
		b.Month = *in.Month
	}
	if in.Year != nil {
		if err := checkYear(*in.Year); err != nil {
			return nil, err
		}
		b.Year = *in.Year
	}

	if err := s.store.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}

	s.log.Infof("Budget %d updated", id)
	return s.store.GetBudget(ctx, id)
}

func (s *Service) DeleteBudget(ctx context.Context, id int64) error {
	if err := s.store.DeleteBudget(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Budget %d deleted", id)
	return nil
}
