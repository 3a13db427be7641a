// Package memory implements an in-memory key-value store for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"blogsphere/internal/domain"
)

// DB implements an in-memory key-value store.
type DB struct {
	mu   sync.Mutex
	data map[string]string
}

// New creates a new in-memory store.
func New() *DB {
	return &DB{data: make(map[string]string)}
}

// Ensure interfaces are met.
var _ domain.KVStore = (*DB)(nil)

// Get returns the value stored under key.
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.data[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (db *DB) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	db.data[key] = value
	return nil
}

// Remove deletes key. Missing keys are ignored.
func (db *DB) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.data, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (db *DB) Keys() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	keys := make([]string, 0, len(db.data))
	for k := range db.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
