// Package storage provides the durable-record port used for session and
// submission mirrors. Implementations are interchangeable: in-memory for
// tests, file-backed by default, Redis or PostgreSQL for deployments that
// already run those services.
package storage

import (
	"context"
)

type Store interface {
	// Get returns the value stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
