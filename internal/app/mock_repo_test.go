package app_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"waterlog/internal/app"
	"waterlog/internal/domain"
)

type mockDatasetRepo struct {
	loadFn func(ctx context.Context) ([]domain.Record, error)
	saveFn func(ctx context.Context, records []domain.Record) error

	saved [][]domain.Record
}

func (m *mockDatasetRepo) Load(ctx context.Context) ([]domain.Record, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return nil, nil
}

func (m *mockDatasetRepo) Save(ctx context.Context, records []domain.Record) error {
	if m.saveFn != nil {
		if err := m.saveFn(ctx, records); err != nil {
			return err
		}
	}
	m.saved = append(m.saved, records)
	return nil
}

func seededRepo(records ...domain.Record) *mockDatasetRepo {
	return &mockDatasetRepo{
		loadFn: func(_ context.Context) ([]domain.Record, error) { return records, nil },
	}
}

func loadedStore(t *testing.T, repo domain.DatasetRepository) *app.DatasetStore {
	t.Helper()
	store := app.NewDatasetStore(repo, zaptest.NewLogger(t))
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

func baseline(id domain.SubjectID, day string, w float64) domain.Record {
	return domain.Record{Day: day, SubjectID: id, Condition: domain.ConditionBaselineWeight, WeightG: w}
}

func nopLogger() *zap.Logger { return zap.NewNop() }
