package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

// GetEmergencyFund returns the single fund row, or models.ErrNotFound before one is created
func (r *Repository) GetEmergencyFund(ctx context.Context) (*models.EmergencyFund, error) {
	var f models.EmergencyFund
	err := r.db.QueryRowContext(ctx, `
		SELECT id, target_amount, current_amount, monthly_expenses, target_months, updated_at
		FROM finance.emergency_funds
		ORDER BY id
		LIMIT 1`).Scan(&f.ID, &f.TargetAmount, &f.CurrentAmount, &f.MonthlyExpenses, &f.TargetMonths, &f.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "get emergency fund")
	}
	return &f, nil
}

// SaveEmergencyFund inserts f when it has no ID yet and updates it otherwise
func (r *Repository) SaveEmergencyFund(ctx context.Context, f *models.EmergencyFund) error {
	if f.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO finance.emergency_funds (target_amount, current_amount, monthly_expenses, target_months, updated_at)
			VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
			RETURNING id, updated_at`, f.TargetAmount, f.CurrentAmount, f.MonthlyExpenses, f.TargetMonths).
			Scan(&f.ID, &f.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create emergency fund: %w", err)
		}
		return nil
	}

	err := r.db.QueryRowContext(ctx, `
		UPDATE finance.emergency_funds
		SET target_amount = $1, current_amount = $2, monthly_expenses = $3, target_months = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at`, f.TargetAmount, f.CurrentAmount, f.MonthlyExpenses, f.TargetMonths, f.ID).
		Scan(&f.UpdatedAt)
	if err != nil {
		return notFound(err, "update emergency fund")
	}
	return nil
}

// ContributeEmergencyFund raises the fund's current amount in place
func (r *Repository) ContributeEmergencyFund(ctx context.Context, amount float64) (*models.EmergencyFund, error) {
	var f models.EmergencyFund
	err := r.db.QueryRowContext(ctx, `
		UPDATE finance.emergency_funds
		SET current_amount = current_amount + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = (SELECT id FROM finance.emergency_funds ORDER BY id LIMIT 1)
		RETURNING id, target_amount, current_amount, monthly_expenses, target_months, updated_at`, amount).
		Scan(&f.ID, &f.TargetAmount, &f.CurrentAmount, &f.MonthlyExpenses, &f.TargetMonths, &f.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "contribute to emergency fund")
	}
	return &f, nil
}
