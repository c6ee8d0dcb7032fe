package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

const budgetColumns = `
		SELECT b.id, b.category_id, COALESCE(c.name, ''), b.amount, b.spent, b.month, b.year,
		       b.created_at, b.updated_at
		FROM finance.budgets b
		LEFT JOIN finance.categories c ON c.id = b.category_id`

func scanBudget(s scanner) (models.Budget, error) {
	var b models.Budget
	err := s.Scan(&b.ID, &b.CategoryID, &b.CategoryName, &b.Amount, &b.Spent, &b.Month, &b.Year,
		&b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// ListBudgets returns budgets, optionally restricted to one month
func (r *Repository) ListBudgets(ctx context.Context, month, year int) ([]models.Budget, error) {
	query := budgetColumns
	var args []interface{}
	if month > 0 && year > 0 {
		query += " WHERE b.month = $1 AND b.year = $2"
		args = append(args, month, year)
	}
	query += " ORDER BY b.year DESC, b.month DESC, b.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// GetBudget retrieves a budget with its category name
func (r *Repository) GetBudget(ctx context.Context, id int64) (*models.Budget, error) {
	b, err := scanBudget(r.db.QueryRowContext(ctx, budgetColumns+" WHERE b.id = $1", id))
	if err != nil {
		return nil, notFound(err, "get budget")
	}
	return &b, nil
}

// CreateBudget inserts a budget
func (r *Repository) CreateBudget(ctx context.Context, b *models.Budget) error {
	query := `
		INSERT INTO finance.budgets (category_id, amount, spent, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, b.CategoryID, b.Amount, b.Spent, b.Month, b.Year).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// UpdateBudget overwrites the editable columns of b
func (r *Repository) UpdateBudget(ctx context.Context, b *models.Budget) error {
	query := `
		UPDATE finance.budgets
		SET category_id = $1, amount = $2, month = $3, year = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, b.CategoryID, b.Amount, b.Month, b.Year, b.ID).Scan(&b.UpdatedAt)
	if err != nil {
		return notFound(err, "update budget")
	}
	return nil
}

// UpdateBudgetSpent stores a recomputed spent value
func (r *Repository) UpdateBudgetSpent(ctx context.Context, id int64, spent float64) error {
	return r.execOne(ctx, "update budget spent",
		`UPDATE finance.budgets SET spent = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, spent, id)
}

// DeleteBudget removes a budget
func (r *Repository) DeleteBudget(ctx context.Context, id int64) error {
	return r.execOne(ctx, "delete budget", `DELETE FROM finance.budgets WHERE id = $1`, id)
}
