package repository

import "context"

// CounterRepository hands out sequential numbers for display codes.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	// The row is created on first use.
	Next(ctx context.Context, name string) (int64, error)
}
