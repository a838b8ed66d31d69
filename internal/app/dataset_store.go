package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"waterlog/internal/domain"
)

// DatasetStore holds the session's dataset in memory and flushes the whole
// dataset to its repository after every append.
type DatasetStore struct {
	repo   domain.DatasetRepository
	logger *zap.Logger

	mu      sync.Mutex
	dataset domain.Dataset
}

// NewDatasetStore creates a DatasetStore backed by the given repository.
// Call Load before use.
func NewDatasetStore(repo domain.DatasetRepository, logger *zap.Logger) *DatasetStore {
	return &DatasetStore{repo: repo, logger: logger}
}

// Load reads the persisted dataset, replacing the in-memory copy. A
// repository with nothing stored yields an empty dataset.
func (s *DatasetStore) Load(ctx context.Context) (domain.Dataset, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = domain.Dataset(records).Clone()
	s.logger.Info("dataset loaded", zap.Int("records", len(s.dataset)))
	return s.dataset.Clone(), nil
}

// Append adds r and persists the full dataset. If the write fails the
// in-memory dataset is left as it was and the error wraps ErrWriteFailed.
func (s *DatasetStore) Append(ctx context.Context, r domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(domain.Dataset, len(s.dataset), len(s.dataset)+1)
	copy(next, s.dataset)
	next = append(next, domain.Dataset{r}.Clone()...)

	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("dataset write failed",
			zap.String("subject", r.SubjectID.String()),
			zap.Int("records", len(next)),
			zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}
	s.dataset = next
	return nil
}

// Snapshot returns a copy of the current dataset.
func (s *DatasetStore) Snapshot() domain.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset.Clone()
}

// Len returns the number of records currently held.
func (s *DatasetStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dataset)
}

// FilterBySubject returns every record for id in insertion order.
func (s *DatasetStore) FilterBySubject(id domain.SubjectID) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Dataset(s.dataset.BySubject(id)).Clone()
}

// FilterBySubjectAndCondition returns the records for id under c in insertion order.
func (s *DatasetStore) FilterBySubjectAndCondition(id domain.SubjectID, c domain.Condition) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Dataset(s.dataset.BySubjectAndCondition(id, c)).Clone()
}
