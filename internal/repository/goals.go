package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

const goalColumns = `
		SELECT id, name, target_amount, current_amount, target_date, monthly_contribution, created_at, updated_at
		FROM finance.goals`

func scanGoal(s scanner) (models.Goal, error) {
	var g models.Goal
	err := s.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate,
		&g.MonthlyContribution, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// ListGoals returns goals ordered by deadline
func (r *Repository) ListGoals(ctx context.Context) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, goalColumns+" ORDER BY target_date, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *Repository) GetGoal(ctx context.Context, id int64) (*models.Goal, error) {
	g, err := scanGoal(r.db.QueryRowContext(ctx, goalColumns+" WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "get goal")
	}
	return &g, nil
}

func (r *Repository) CreateGoal(ctx context.Context, g *models.Goal) error {
	query := `
		INSERT INTO finance.goals (name, target_amount, current_amount, target_date, monthly_contribution, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, g.Name, g.TargetAmount, g.CurrentAmount, g.TargetDate, g.MonthlyContribution).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *Repository) UpdateGoal(ctx context.Context, g *models.Goal) error {
	query := `
		UPDATE finance.goals
		SET name = $1, target_amount = $2, current_amount = $3, target_date = $4,
		    monthly_contribution = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, g.Name, g.TargetAmount, g.CurrentAmount, g.TargetDate,
		g.MonthlyContribution, g.ID).Scan(&g.UpdatedAt)
	if err != nil {
		return notFound(err, "update goal")
	}
	return nil
}

func (r *Repository) DeleteGoal(ctx context.Context, id int64) error {
	return r.execOne(ctx, "delete goal", `DELETE FROM finance.goals WHERE id = $1`, id)
}
