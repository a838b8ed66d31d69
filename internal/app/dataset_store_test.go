package app_test

import (
	"context"
	"errors"
	"testing"

	"waterlog/internal/app"
	"waterlog/internal/domain"
)

func TestDatasetStore_LoadEmpty(t *testing.T) {
	store := loadedStore(t, &mockDatasetRepo{})
	if store.Len() != 0 {
		t.Fatalf("expected empty dataset, got %d", store.Len())
	}
}

func TestDatasetStore_LoadError(t *testing.T) {
	repo := &mockDatasetRepo{
		loadFn: func(_ context.Context) ([]domain.Record, error) { return nil, errors.New("corrupt") },
	}
	store := app.NewDatasetStore(repo, nopLogger())
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestDatasetStore_AppendPersistsWholeDataset(t *testing.T) {
	repo := seededRepo(baseline("000001", "2024-01-01", 20))
	store := loadedStore(t, repo)

	rec := domain.Record{Day: "2024-01-02", SubjectID: "000001", Condition: domain.ConditionRestDay, WeightG: 19}
	if err := store.Append(context.Background(), rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(repo.saved) != 1 || len(repo.saved[0]) != 2 {
		t.Fatalf("expected one save of 2 records, got %v", repo.saved)
	}
	if !repo.saved[0][1].Equal(rec) {
		t.Fatalf("last saved record = %+v", repo.saved[0][1])
	}
}

func TestDatasetStore_AppendRollsBackOnWriteFailure(t *testing.T) {
	repo := seededRepo(baseline("000001", "2024-01-01", 20))
	repo.saveFn = func(_ context.Context, _ []domain.Record) error { return errors.New("disk full") }
	store := loadedStore(t, repo)
	before := store.Snapshot()

	err := store.Append(context.Background(), baseline("000001", "2024-01-02", 21))
	if !errors.Is(err, domain.ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}
	if !store.Snapshot().Equal(before) {
		t.Fatalf("dataset changed after failed write: %+v", store.Snapshot())
	}
}

func TestDatasetStore_AppendedRecordIsImmutable(t *testing.T) {
	store := loadedStore(t, &mockDatasetRepo{})
	water := 1.5
	rec := domain.Record{Day: "2024-01-02", SubjectID: "000001", Condition: domain.ConditionAfterSession, WeightG: 19, WaterCollectedML: &water}
	if err := store.Append(context.Background(), rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	water = 99
	got := store.FilterBySubject("000001")
	if *got[0].WaterCollectedML != 1.5 {
		t.Fatalf("stored record mutated through caller pointer: %v", *got[0].WaterCollectedML)
	}
	*got[0].WaterCollectedML = 42
	if *store.FilterBySubject("000001")[0].WaterCollectedML != 1.5 {
		t.Fatal("stored record mutated through filter result")
	}
}

func TestDatasetStore_Filters(t *testing.T) {
	repo := seededRepo(
		baseline("000001", "2024-01-02", 20),
		baseline("000002", "2024-01-01", 25),
		domain.Record{Day: "2024-01-01", SubjectID: "000001", Condition: domain.ConditionRestDay, WeightG: 19},
		baseline("000001", "2024-01-01", 21),
	)
	store := loadedStore(t, repo)

	all := store.FilterBySubject("000001")
	if len(all) != 3 || all[0].Day != "2024-01-02" || all[2].WeightG != 21 {
		t.Fatalf("unexpected order: %+v", all)
	}
	base := store.FilterBySubjectAndCondition("000001", domain.ConditionBaselineWeight)
	if len(base) != 2 {
		t.Fatalf("expected 2 baseline records, got %d", len(base))
	}
}
