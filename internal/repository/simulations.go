package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

// ListSimulations returns stored simulations, newest first
func (r *Repository) ListSimulations(ctx context.Context) ([]models.Simulation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, target_amount, target_months, monthly_income, monthly_expenses, monthly_savings,
		       is_viable, created_at
		FROM finance.simulations
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	sims := make([]models.Simulation, 0)
	for rows.Next() {
		var s models.Simulation
		if err := rows.Scan(&s.ID, &s.Name, &s.TargetAmount, &s.TargetMonths, &s.MonthlyIncome,
			&s.MonthlyExpenses, &s.MonthlySavings, &s.IsViable, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan simulation: %w", err)
		}
		sims = append(sims, s)
	}
	return sims, rows.Err()
}

func (r *Repository) CreateSimulation(ctx context.Context, s *models.Simulation) error {
	query := `
		INSERT INTO finance.simulations (name, target_amount, target_months, monthly_income, monthly_expenses,
		                                 monthly_savings, is_viable, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, s.Name, s.TargetAmount, s.TargetMonths, s.MonthlyIncome,
		s.MonthlyExpenses, s.MonthlySavings, s.IsViable).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}
	return nil
}

func (r *Repository) DeleteSimulation(ctx context.Context, id int64) error {
	return r.execOne(ctx, "delete simulation", `DELETE FROM finance.simulations WHERE id = $1`, id)
}
