package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

const investmentColumns = `
		SELECT id, name, type, total_invested, current_value, created_at, updated_at
		FROM finance.investments`

func scanInvestment(s scanner) (models.Investment, error) {
	var inv models.Investment
	err := s.Scan(&inv.ID, &inv.Name, &inv.Type, &inv.TotalInvested, &inv.CurrentValue, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func (r *Repository) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	rows, err := r.db.QueryContext(ctx, investmentColumns+" ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]models.Investment, 0)
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func (r *Repository) GetInvestment(ctx context.Context, id int64) (*models.Investment, error) {
	inv, err := scanInvestment(r.db.QueryRowContext(ctx, investmentColumns+" WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "get investment")
	}
	return &inv, nil
}

func (r *Repository) CreateInvestment(ctx context.Context, inv *models.Investment) error {
	query := `
		INSERT INTO finance.investments (name, type, total_invested, current_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, inv.Name, string(inv.Type), inv.TotalInvested, inv.CurrentValue).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *Repository) UpdateInvestment(ctx context.Context, inv *models.Investment) error {
	query := `
		UPDATE finance.investments
		SET name = $1, type = $2, total_invested = $3, current_value = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, inv.Name, string(inv.Type), inv.TotalInvested, inv.CurrentValue, inv.ID).
		Scan(&inv.UpdatedAt)
	if err != nil {
		return notFound(err, "update investment")
	}
	return nil
}

func (r *Repository) DeleteInvestment(ctx context.Context, id int64) error {
	return r.execOne(ctx, "delete investment", `DELETE FROM finance.investments WHERE id = $1`, id)
}

// AddContribution records a contribution and raises the investment's total in one transaction
func (r *Repository) AddContribution(ctx context.Context, c *models.Contribution) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE finance.investments
		SET total_invested = total_invested + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, c.Amount, c.InvestmentID)
	if err != nil {
		return fmt.Errorf("failed to update investment total: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to update investment total: %w", err)
	} else if n == 0 {
		return fmt.Errorf("add contribution: %w", models.ErrNotFound)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO finance.contributions (investment_id, amount, date, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`, c.InvestmentID, c.Amount, c.Date).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contribution: %w", err)
	}
	return nil
}

// ListContributions returns an investment's contributions, newest first
func (r *Repository) ListContributions(ctx context.Context, investmentID int64) ([]models.Contribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, investment_id, amount, date, created_at
		FROM finance.contributions
		WHERE investment_id = $1
		ORDER BY date DESC, id DESC`, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	contributions := make([]models.Contribution, 0)
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.InvestmentID, &c.Amount, &c.Date, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}
