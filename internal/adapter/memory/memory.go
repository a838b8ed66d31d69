// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"

	"waterlog/internal/domain"
)

// DB implements an in-memory dataset storage.
type DB struct {
	mu      sync.Mutex
	records []domain.Record
	saveErr error
	saves   int
}

// New creates a new in-memory database, optionally seeded with records.
func New(seed ...domain.Record) *DB {
	return &DB{records: domain.Dataset(seed).Clone()}
}

// Ensure interfaces are met.
var _ domain.DatasetRepository = (*DB)(nil)

// Load returns a copy of the stored records.
func (db *DB) Load(ctx context.Context) ([]domain.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return domain.Dataset(db.records).Clone(), nil
}

// Save replaces the stored records, or returns the injected failure.
func (db *DB) Save(ctx context.Context, records []domain.Record) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.saveErr != nil {
		return db.saveErr
	}
	db.records = domain.Dataset(records).Clone()
	db.saves++
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (db *DB) FailSaves(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.saveErr = err
}

// Saves returns the number of successful saves.
func (db *DB) Saves() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.saves
}
