package app_test

import (
	"errors"
	"testing"

	"waterlog/internal/app"
	"waterlog/internal/domain"
)

func TestChartsSeries_ChronologicalAndLimited(t *testing.T) {
	repo := seededRepo(
		baseline("000001", "2024-01-03", 22),
		baseline("000001", "2024-01-01", 20),
		domain.Record{Day: "2024-01-02", SubjectID: "000001", Condition: domain.ConditionRestDay, WeightG: 19},
		domain.Record{Day: "2024-01-02", SubjectID: "000001", Condition: domain.ConditionAfterSession, WeightG: 18, WaterCollectedML: domain.Float(1)},
		baseline("000002", "2024-01-01", 30),
	)
	store := loadedStore(t, repo)
	svc := app.NewChartsService(store, app.NewSuggestionEngine(false))

	s, err := svc.Series("000001", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s.Points))
	}
	want := []struct {
		day string
		w   float64
	}{{"2024-01-02", 19}, {"2024-01-02", 18}, {"2024-01-03", 22}}
	for i, p := range s.Points {
		if p.Day != want[i].day || p.WeightG != want[i].w {
			t.Errorf("point %d = %+v; want %v", i, p, want[i])
		}
	}
	if s.TargetWeightG == nil || *s.TargetWeightG != 16.8 {
		t.Fatalf("expected target 16.8, got %v", s.TargetWeightG)
	}
	lo, hi := s.Range()
	if lo != 18 || hi != 22 {
		t.Fatalf("range = %v..%v", lo, hi)
	}
}

func TestChartsSeries_NoBaselineHasNoTarget(t *testing.T) {
	repo := seededRepo(domain.Record{Day: "2024-01-02", SubjectID: "000001", Condition: domain.ConditionRestDay, WeightG: 19})
	svc := app.NewChartsService(loadedStore(t, repo), app.NewSuggestionEngine(false))

	s, err := svc.Series("000001", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TargetWeightG != nil {
		t.Fatalf("expected no target, got %v", *s.TargetWeightG)
	}
}

func TestChartsSeries_UnknownSubject(t *testing.T) {
	svc := app.NewChartsService(loadedStore(t, &mockDatasetRepo{}), app.NewSuggestionEngine(false))
	if _, err := svc.Series("000001", 20); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}
