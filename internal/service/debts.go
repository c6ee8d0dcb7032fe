package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
)

// ListDebts returns debts ordered by due date, optionally filtered by status
func (s *Service) ListDebts(ctx context.Context, status models.DebtStatus) ([]models.Debt, error) {
	if status != "" && !status.Valid() {
		return nil, models.NewFieldError("status", "must be active, paid or overdue")
	}
	return s.store.ListDebts(ctx, status)
}

// CreateDebt validates and stores a debt; remaining defaults to the total
func (s *Service) CreateDebt(ctx context.Context, in models.DebtInput) (*models.Debt, error) {
	name, err := requireString("name", in.Name)
	if err != nil {
		return nil, err
	}
	total, err := requirePositive("total_amount", in.TotalAmount)
	if err != nil {
		return nil, err
	}
	if in.MonthlyPayment == nil {
		return nil, models.NewFieldError("monthly_payment", "is required")
	}
	if in.DueDate == nil || in.DueDate.IsZero() {
		return nil, models.NewFieldError("due_date", "is required")
	}

	d := &models.Debt{
		Name:            name,
		TotalAmount:     total,
		RemainingAmount: total,
		MonthlyPayment:  *in.MonthlyPayment,
		DueDate:         in.DueDate.Time,
		Status:          models.DebtActive,
	}
	if in.RemainingAmount != nil {
		d.RemainingAmount = *in.RemainingAmount
	}
	if in.InterestRate != nil {
		d.InterestRate = *in.InterestRate
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if err := validateDebt(d); err != nil {
		return nil, err
	}

	if err := s.store.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	s.log.Infof("Debt %d created: %s, %.2f due %s", d.ID, d.Name, d.RemainingAmount, d.DueDate.Format("2006-01-02"))
	return d, nil
}

// UpdateDebt applies the supplied fields of in to debt id
func (s *Service) UpdateDebt(ctx context.Context, id int64, in models.DebtInput) (*models.Debt, error) {
	d, err := s.store.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if d.Name, err = requireString("name", in.Name); err != nil {
			return nil, err
		}
	}
	if in.TotalAmount != nil {
		if d.TotalAmount, err = requirePositive("total_amount", in.TotalAmount); err != nil {
			return nil, err
		}
	}
	if in.RemainingAmount != nil {
		d.RemainingAmount = *in.RemainingAmount
	}
	if in.MonthlyPayment != nil {
		d.MonthlyPayment = *in.MonthlyPayment
	}
	if in.InterestRate != nil {
		d.InterestRate = *in.InterestRate
	}
	if in.DueDate != nil {
		if in.DueDate.IsZero() {
			return nil, models.NewFieldError("due_date", "is required")
		}
		d.DueDate = in.DueDate.Time
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if err := validateDebt(d); err != nil {
		return nil, err
	}

	if err := s.store.UpdateDebt(ctx, d); err != nil {
		return nil, err
	}

	s.log.Infof("Debt %d updated", id)
	return d, nil
}

// PayDebt applies a payment to debt id
func (s *Service) PayDebt(ctx context.Context, id int64, in models.PaymentInput) (*models.Debt, error) {
	amount, err := requirePositive("amount", in.Amount)
	if err != nil {
		return nil, err
	}

	d, err := s.store.PayDebt(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Debt %d payment applied: %.2f, remaining %.2f (%s)", id, amount, d.RemainingAmount, d.Status)
	return d, nil
}

func (s *Service) DeleteDebt(ctx context.Context, id int64) error {
	if err := s.store.DeleteDebt(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Debt %d deleted", id)
	return nil
}

func validateDebt(d *models.Debt) error {
	if !d.Status.Valid() {
		return models.NewFieldError("status", "must be active, paid or overdue")
	}
	if err := checkNonNegative("remaining_amount", d.RemainingAmount); err != nil {
		return err
	}
	if err := checkNonNegative("monthly_payment", d.MonthlyPayment); err != nil {
		return err
	}
	return checkNonNegative("interest_rate", d.InterestRate)
}
