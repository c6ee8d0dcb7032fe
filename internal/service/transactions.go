package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

// ListTransactions returns the transactions matching f, newest first
func (s *Service) ListTransactions(ctx context.Context, f models.TransactionFilter) ([]models.Transaction, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, models.NewFieldError("type", "must be income or expense")
	}
	return s.store.ListTransactions(ctx, f)
}

// Summary aggregates the transactions matching f
func (s *Service) Summary(ctx context.Context, f models.TransactionFilter) (models.TransactionSummary, error) {
	txs, err := s.ListTransactions(ctx, f)
	if err != nil {
		return models.TransactionSummary{}, err
	}
	return rules.Summarize(txs), nil
}

// CreateTransaction validates and stores a transaction, normalising the sign of its amount
func (s *Service) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	description, err := requireString("description", in.Description)
	if err != nil {
		return nil, err
	}
	if in.Amount == nil || *in.Amount == 0 {
		return nil, models.NewFieldError("amount", "is required")
	}
	if in.Type == nil || !in.Type.Valid() {
		return nil, models.NewFieldError("type", "must be income or expense")
	}
	if in.Date == nil || in.Date.IsZero() {
		return nil, models.NewFieldError("date", "is required")
	}

	t := &models.Transaction{
		Description: description,
		Amount:      models.NormalizeAmount(*in.Amount, *in.Type),
		Type:        *in.Type,
		Date:        in.Date.Time,
		CategoryID:  categoryRef(in.CategoryID),
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx)
	s.log.Infof("Transaction %d created: %s %.2f", t.ID, t.Type, t.Amount)
	return s.store.GetTransaction(ctx, t.ID)
}

// UpdateTransaction applies the supplied fields of in to transaction id
func (s *Service) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error) {
	t, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		if t.Description, err = requireString("description", in.Description); err != nil {
			return nil, err
		}
	}
	if in.Amount != nil {
		if *in.Amount == 0 {
			return nil, models.NewFieldError("amount", "must not be zero")
		}
		t.Amount = *in.Amount
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, models.NewFieldError("type", "must be income or expense")
		}
		t.Type = *in.Type
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return nil, models.NewFieldError("date", "is required")
		}
		t.Date = in.Date.Time
	}
	if in.CategoryID != nil {
		t.CategoryID = categoryRef(in.CategoryID)
	}
	t.Amount = models.NormalizeAmount(t.Amount, t.Type)

	if err := s.store.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx)
	s.log.Infof("Transaction %d updated", id)
	return s.store.GetTransaction(ctx, id)
}

// DeleteTransaction removes transaction id
func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.invalidateInsights(ctx)
	s.log.Infof("Transaction %d deleted", id)
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// CreateCategory stores a named category
func (s *Service) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	name, err := requireString("name", &c.Name)
	if err != nil {
		return nil, err
	}
	c.Name = name
	if err := s.store.CreateCategory(ctx, &c); err != nil {
		return nil, err
	}
	s.log.Infof("Category created: %s", c.Name)
	return &c, nil
}

// DeleteCategory removes a category; its transactions fall back to uncategorized
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateInsights(ctx)
	s.log.Infof("Category %d deleted", id)
	return nil
}

// categoryRef treats a zero or negative id as "no category"
func categoryRef(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	v := *id
	return &v
}
