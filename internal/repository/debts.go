package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

const debtColumns = `
		SELECT id, name, total_amount, remaining_amount, monthly_payment, interest_rate, due_date, status,
		       created_at, updated_at
		FROM finance.debts`

func scanDebt(s scanner) (models.Debt, error) {
	var d models.Debt
	err := s.Scan(&d.ID, &d.Name, &d.TotalAmount, &d.RemainingAmount, &d.MonthlyPayment, &d.InterestRate,
		&d.DueDate, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// ListDebts returns debts ordered by due date; an empty status lists all of them
func (r *Repository) ListDebts(ctx context.Context, status models.DebtStatus) ([]models.Debt, error) {
	query := debtColumns
	var args []interface{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, string(status))
	}
	query += " ORDER BY due_date, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	debts := make([]models.Debt, 0)
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func (r *Repository) GetDebt(ctx context.Context, id int64) (*models.Debt, error) {
	d, err := scanDebt(r.db.QueryRowContext(ctx, debtColumns+" WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "get debt")
	}
	return &d, nil
}

func (r *Repository) CreateDebt(ctx context.Context, d *models.Debt) error {
	query := `
		INSERT INTO finance.debts (name, total_amount, remaining_amount, monthly_payment, interest_rate, due_date, status,
		                           created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, d.Name, d.TotalAmount, d.RemainingAmount, d.MonthlyPayment,
		d.InterestRate, d.DueDate, string(d.Status)).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// UpdateDebt overwrites every editable column of d, including status
func (r *Repository) UpdateDebt(ctx context.Context, d *models.Debt) error {
	query := `
		UPDATE finance.debts
		SET name = $1, total_amount = $2, remaining_amount = $3, monthly_payment = $4, interest_rate = $5,
		    due_date = $6, status = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, d.Name, d.TotalAmount, d.RemainingAmount, d.MonthlyPayment,
		d.InterestRate, d.DueDate, string(d.Status), d.ID).Scan(&d.UpdatedAt)
	if err != nil {
		return notFound(err, "update debt")
	}
	return nil
}

// PayDebt lowers the remaining amount in place, flooring it at zero and marking the debt paid there
func (r *Repository) PayDebt(ctx context.Context, id int64, amount float64) (*models.Debt, error) {
	query := `
		UPDATE finance.debts
		SET remaining_amount = GREATEST(remaining_amount - $1, 0),
		    status = CASE WHEN remaining_amount - $1 <= 0 THEN 'paid' ELSE status END,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, name, total_amount, remaining_amount, monthly_payment, interest_rate, due_date, status,
		          created_at, updated_at`
	d, err := scanDebt(r.db.QueryRowContext(ctx, query, amount, id))
	if err != nil {
		return nil, notFound(err, "pay debt")
	}
	return &d, nil
}

func (r *Repository) DeleteDebt(ctx context.Context, id int64) error {
	return r.execOne(ctx, "delete debt", `DELETE FROM finance.debts WHERE id = $1`, id)
}
