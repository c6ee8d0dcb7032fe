package service

import (
	"context"
	"errors"

	"github.com/Dan9191/finance-service/internal/cache"
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

// Insights summarises the trailing six months. Results are cached per month;
// cache failures fall through to computing.
func (s *Service) Insights(ctx context.Context) (*models.Insights, error) {
	now := s.now()
	key := insightsKey(now)

	var cached models.Insights
	switch err := s.cache.Get(ctx, key, &cached); {
	case err == nil:
		s.metrics.CacheRequests.WithLabelValues("hit").Inc()
		return &cached, nil
	case errors.Is(err, cache.ErrMiss):
		s.metrics.CacheRequests.WithLabelValues("miss").Inc()
	default:
		s.metrics.CacheRequests.WithLabelValues("error").Inc()
		s.log.Warnf("Insights cache read failed: %v", err)
	}

	windows := rules.TrailingMonths(now, rules.InsightMonths)
	months := make([]rules.MonthTransactions, 0, len(windows))
	for _, w := range windows {
		txs, err := s.store.ListTransactionsBetween(ctx, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		months = append(months, rules.MonthTransactions{Window: w, Transactions: txs})
	}

	// the last window is the current month
	insights := rules.ComputeInsights(months, months[len(months)-1].Transactions)
	if err := s.cache.Set(ctx, key, insights, s.config.InsightsCacheTTL); err != nil {
		s.log.Warnf("Insights cache write failed: %v", err)
	}
	return &insights, nil
}
