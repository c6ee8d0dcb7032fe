// Package cache stores computed read models, such as insights, outside the database.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent
var ErrMiss = errors.New("cache miss")

// Nop is the cache used when Redis is not configured; every lookup misses
type Nop struct{}

func (Nop) Get(ctx context.Context, key string, dest interface{}) error {
	return ErrMiss
}

func (Nop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Nop) Delete(ctx context.Context, key string) error {
	return nil
}
