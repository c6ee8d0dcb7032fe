package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

// ListAlerts returns the stored alerts in the order they were generated
func (r *Repository) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, title, message, severity, is_read, related_id, created_at
		FROM finance.alerts
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		var related sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Message, &a.Severity, &a.IsRead, &related, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		a.RelatedID = nullableID(related)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// MarkAlertRead flags an alert as read
func (r *Repository) MarkAlertRead(ctx context.Context, id int64) error {
	return r.execOne(ctx, "mark alert read", `UPDATE finance.alerts SET is_read = TRUE WHERE id = $1`, id)
}

// ReplaceAlerts swaps the stored alert set for alerts atomically. An alert whose
// fingerprint matches a previously read one stays read.
func (r *Repository) ReplaceAlerts(ctx context.Context, alerts []models.Alert) ([]models.Alert, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT type, title, related_id FROM finance.alerts WHERE is_read`)
	if err != nil {
		return nil, fmt.Errorf("failed to load read alerts: %w", err)
	}
	read := make(map[string]bool)
	for rows.Next() {
		var a models.Alert
		var related sql.NullInt64
		if err := rows.Scan(&a.Type, &a.Title, &related); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		a.RelatedID = nullableID(related)
		read[a.Fingerprint()] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to load read alerts: %w", err)
	}
	rows.Close()

	if _, err := tx.ExecContext(ctx, `DELETE FROM finance.alerts`); err != nil {
		return nil, fmt.Errorf("failed to clear alerts: %w", err)
	}

	stored := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		a.IsRead = read[a.Fingerprint()]
		err := tx.QueryRowContext(ctx, `
			INSERT INTO finance.alerts (type, title, message, severity, is_read, related_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
			RETURNING id, created_at`,
			string(a.Type), a.Title, a.Message, string(a.Severity), a.IsRead, a.RelatedID).Scan(&a.ID, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create alert: %w", err)
		}
		stored = append(stored, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit alerts: %w", err)
	}
	return stored, nil
}
