package service

import "context"

// KeyRate returns the central bank key rate
func (s *Service) KeyRate(ctx context.Context) (float64, error) {
	return s.rates.KeyRate(ctx)
}
