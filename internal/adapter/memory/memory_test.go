package memory

import (
	"context"
	"errors"
	"testing"

	"waterlog/internal/domain"
)

func TestDatasetRepository(t *testing.T) {
	seed := domain.Record{Day: "2024-01-01", SubjectID: "000001", Condition: domain.ConditionBaselineWeight, WeightG: 20}
	db := New(seed)
	ctx := context.Background()

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || !got[0].Equal(seed) {
		t.Fatalf("unexpected records: %+v", got)
	}

	next := append(got, domain.Record{Day: "2024-01-02", SubjectID: "000001", Condition: domain.ConditionAfterSession,
		WeightG: 18, WaterCollectedML: domain.Float(0), SuggestedWaterML: domain.Float(0)})
	if err := db.Save(ctx, next); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if db.Saves() != 1 {
		t.Errorf("expected 1 save, got %d", db.Saves())
	}

	// Stored copy is independent of the caller's slice
	*next[1].WaterCollectedML = 3
	got, _ = db.Load(ctx)
	if *got[1].WaterCollectedML != 0 {
		t.Error("stored record shares memory with caller")
	}
}

func TestFailSaves(t *testing.T) {
	db := New()
	ctx := context.Background()
	boom := errors.New("disk full")

	db.FailSaves(boom)
	if err := db.Save(ctx, []domain.Record{{Day: "2024-01-01", SubjectID: "000001"}}); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	got, _ := db.Load(ctx)
	if len(got) != 0 {
		t.Fatal("failed save must not change stored records")
	}

	db.FailSaves(nil)
	if err := db.Save(ctx, []domain.Record{{Day: "2024-01-01", SubjectID: "000001"}}); err != nil {
		t.Fatalf("Save after recovery: %v", err)
	}
}
