package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

const transactionColumns = `
		SELECT t.id, t.description, t.amount, t.type, t.date, t.category_id,
		       COALESCE(c.name, ''), t.created_at, t.updated_at
		FROM finance.transactions t
		LEFT JOIN finance.categories c ON c.id = t.category_id`

func scanTransaction(s scanner) (models.Transaction, error) {
	var t models.Transaction
	var categoryID sql.NullInt64
	err := s.Scan(&t.ID, &t.Description, &t.Amount, &t.Type, &t.Date, &categoryID,
		&t.CategoryName, &t.CreatedAt, &t.UpdatedAt)
	t.CategoryID = nullableID(categoryID)
	return t, err
}

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// buildTransactionFilter renders f as a WHERE clause with positional arguments
func buildTransactionFilter(f models.TransactionFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Month > 0 && f.Year > 0 {
		start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		add("t.date >= $%d", start)
		add("t.date < $%d", start.AddDate(0, 1, 0))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		add("t.description ILIKE $%d", "%"+search+"%")
	}
	if f.Type != "" {
		add("t.type = $%d", string(f.Type))
	}
	if f.CategoryID != nil {
		add("t.category_id = $%d", *f.CategoryID)
	}
	if f.DateFrom != nil {
		add("t.date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("t.date <= $%d", *f.DateTo)
	}
	if f.AmountMin != nil {
		add("t.amount >= $%d", *f.AmountMin)
	}
	if f.AmountMax != nil {
		add("t.amount <= $%d", *f.AmountMax)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListTransactions returns the transactions matching f, newest first
func (r *Repository) ListTransactions(ctx context.Context, f models.TransactionFilter) ([]models.Transaction, error) {
	where, args := buildTransactionFilter(f)
	return r.queryTransactions(ctx, transactionColumns+where+" ORDER BY t.date DESC, t.id DESC", args...)
}

// ListTransactionsBetween returns transactions dated in [from, to) in storage order
func (r *Repository) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	query := transactionColumns + `
		WHERE t.date >= $1 AND t.date < $2
		ORDER BY t.id`
	return r.queryTransactions(ctx, query, from, to)
}

// GetTransaction retrieves a transaction with its category name
func (r *Repository) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx, transactionColumns+" WHERE t.id = $1", id))
	if err != nil {
		return nil, notFound(err, "get transaction")
	}
	return &t, nil
}

// CreateTransaction inserts a transaction
func (r *Repository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO finance.transactions (description, amount, type, date, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, t.Description, t.Amount, string(t.Type), t.Date, t.CategoryID).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// UpdateTransaction overwrites every editable column of t
func (r *Repository) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	query := `
		UPDATE finance.transactions
		SET description = $1, amount = $2, type = $3, date = $4, category_id = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, t.Description, t.Amount, string(t.Type), t.Date, t.CategoryID, t.ID).
		Scan(&t.UpdatedAt)
	if err != nil {
		return notFound(err, "update transaction")
	}
	return nil
}

// DeleteTransaction removes a transaction
func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	return r.execOne(ctx, "delete transaction", `DELETE FROM finance.transactions WHERE id = $1`, id)
}

// TransactionTotals returns the signed sums of all income and all expense amounts
func (r *Repository) TransactionTotals(ctx context.Context) (income, expenses float64, err error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM finance.transactions`
	if err := r.db.QueryRowContext(ctx, query).Scan(&income, &expenses); err != nil {
		return 0, 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return income, expenses, nil
}

// CategorySpent returns the signed sum of expenses of a category dated in [from, to)
func (r *Repository) CategorySpent(ctx context.Context, categoryID int64, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM finance.transactions
		WHERE type = 'expense' AND category_id = $1 AND date >= $2 AND date < $3`
	var spent float64
	if err := r.db.QueryRowContext(ctx, query, categoryID, from, to).Scan(&spent); err != nil {
		return 0, fmt.Errorf("failed to sum category spending: %w", err)
	}
	return spent, nil
}
