package app

import (
	"errors"
	"sort"

	"waterlog/internal/domain"
)

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	store  *DatasetStore
	engine *SuggestionEngine
}

// NewChartsService creates a ChartsService reading from the given store.
func NewChartsService(store *DatasetStore, engine *SuggestionEngine) *ChartsService {
	return &ChartsService{store: store, engine: engine}
}

// Point is a single weight observation on a subject's chart.
type Point struct {
	Day       string           `json:"day"`
	WeightG   float64          `json:"weightG"`
	Condition domain.Condition `json:"condition"`
}

// Series is the plot data for one subject.
type Series struct {
	SubjectID domain.SubjectID `json:"subjectId"`
	Points    []Point          `json:"points"`
	// TargetWeightG is nil when the subject has no baseline.
	TargetWeightG *float64 `json:"targetWeightG"`
}

// Series returns the last limit records of a subject in chronological order,
// with the target weight when a baseline exists. limit <= 0 means all.
func (s *ChartsService) Series(id domain.SubjectID, limit int) (*Series, error) {
	records := s.store.FilterBySubject(id)
	if len(records) == 0 {
		return nil, domain.ErrUnknownSubject
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Day < records[j].Day })
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	out := &Series{SubjectID: id, Points: make([]Point, 0, len(records))}
	for _, r := range records {
		out.Points = append(out.Points, Point{Day: r.Day, WeightG: r.WeightG, Condition: r.Condition})
	}

	target, err := s.engine.TargetWeight(s.store.Snapshot(), id)
	switch {
	case err == nil:
		out.TargetWeightG = domain.Float(target)
	case !errors.Is(err, domain.ErrNoBaseline):
		return nil, err
	}
	return out, nil
}

// Range returns the min and max weight across the series points.
func (s *Series) Range() (lo, hi float64) {
	for i, p := range s.Points {
		if i == 0 || p.WeightG < lo {
			lo = p.WeightG
		}
		if i == 0 || p.WeightG > hi {
			hi = p.WeightG
		}
	}
	return lo, hi
}
