package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"waterlog/internal/domain"
)

// Fields is the raw form input for one submission.
type Fields struct {
	Day       string
	SubjectID string
	Condition string
	Weight    string
	Water     string
}

// SubmissionOutcome is what a successful Submit hands back for display.
type SubmissionOutcome struct {
	Record domain.Record
	// TargetWeightG is nil for baseline entries and when no baseline exists.
	TargetWeightG *float64
	// SuggestedWaterML is the computed supplement; nil when it could not be computed.
	SuggestedWaterML *float64
	// FirstEntry is set when this record enrolled a new subject.
	FirstEntry bool
	// Warning is ErrNoBaseline when the record was stored without a suggestion.
	Warning error
}

// Summary renders the outcome the way the submission dialog shows it.
func (o *SubmissionOutcome) Summary() string {
	r := o.Record
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", r.Day)
	fmt.Fprintf(&b, "Mouse ID: %s\n", r.SubjectID)
	fmt.Fprintf(&b, "Condition: %s\n", r.Condition)
	fmt.Fprintf(&b, "Weight (g): %s\n", formatAmount(&r.WeightG))
	if r.Condition.TracksWater() {
		fmt.Fprintf(&b, "Water collected (mL): %s\n", formatAmount(r.WaterCollectedML))
	}
	if r.Condition != domain.ConditionBaselineWeight {
		fmt.Fprintf(&b, "Target Weight: %s\n", formatAmount(o.TargetWeightG))
		fmt.Fprintf(&b, "Suggested Water: %s\n", formatAmount(o.SuggestedWaterML))
	}
	return b.String()
}

func formatAmount(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

// SessionService is the single mutating entry point: it validates form input,
// computes the suggestion and appends the record.
type SessionService struct {
	store           *DatasetStore
	engine          *SuggestionEngine
	requireBaseline bool
	logger          *zap.Logger
}

// NewSessionService creates a SessionService. When requireBaseline is set a
// non-baseline submission for a subject without a baseline is rejected with
// ErrNoBaseline; otherwise it is stored and the outcome carries a warning.
func NewSessionService(store *DatasetStore, engine *SuggestionEngine, requireBaseline bool, logger *zap.Logger) *SessionService {
	return &SessionService{store: store, engine: engine, requireBaseline: requireBaseline, logger: logger}
}

// Store exposes the dataset store for read-only queries.
func (s *SessionService) Store() *DatasetStore { return s.store }

// Submit validates f, appends the resulting record and returns the outcome.
// Validation errors wrap a domain sentinel inside a *domain.FieldError.
// Nothing is stored when an error is returned.
func (s *SessionService) Submit(ctx context.Context, f Fields) (*SubmissionOutcome, error) {
	rec, err := parseFields(f)
	if err != nil {
		return nil, err
	}

	dataset := s.store.Snapshot()
	first := !dataset.HasSubject(rec.SubjectID)
	if first && rec.Condition != domain.ConditionBaselineWeight {
		return nil, fmt.Errorf("subject %s: %w", rec.SubjectID, domain.ErrUnknownSubject)
	}

	out := &SubmissionOutcome{FirstEntry: first}
	if rec.Condition == domain.ConditionBaselineWeight {
		out.SuggestedWaterML = domain.Float(0)
	} else {
		target, err := s.engine.TargetWeight(dataset, rec.SubjectID)
		switch {
		case errors.Is(err, domain.ErrNoBaseline):
			if s.requireBaseline {
				return nil, err
			}
			s.logger.Warn("no baseline weight; storing without suggestion",
				zap.String("subject", rec.SubjectID.String()),
				zap.String("condition", rec.Condition.Name()))
			out.Warning = err
		case err != nil:
			return nil, err
		default:
			suggested, err := s.engine.SuggestedWater(dataset, rec.SubjectID, rec.Condition, rec.WeightG, rec.WaterCollectedML)
			if err != nil {
				return nil, err
			}
			out.TargetWeightG = domain.Float(target)
			out.SuggestedWaterML = domain.Float(suggested)
			if rec.Condition.TracksWater() {
				rec.SuggestedWaterML = domain.Float(suggested)
			}
		}
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return nil, err
	}
	out.Record = rec

	s.logger.Info("record stored",
		zap.String("subject", rec.SubjectID.String()),
		zap.String("day", rec.Day),
		zap.String("condition", rec.Condition.Name()),
		zap.Float64("weight_g", rec.WeightG),
		zap.Bool("first_entry", first))
	return out, nil
}

// parseFields runs the validators in order and returns the first failure.
func parseFields(f Fields) (domain.Record, error) {
	if err := domain.ValidateRequiredFields(f.Day, f.SubjectID, f.Condition, f.Weight, f.Water); err != nil {
		return domain.Record{}, err
	}
	id, err := domain.ValidateSubjectID(f.SubjectID)
	if err != nil {
		return domain.Record{}, err
	}
	weight, err := domain.ValidateWeight(f.Weight)
	if err != nil {
		return domain.Record{}, err
	}
	cond, err := domain.ParseCondition(f.Condition)
	if err != nil {
		return domain.Record{}, err
	}
	rec := domain.Record{SubjectID: id, Condition: cond, WeightG: weight}
	if cond.TracksWater() {
		water, err := domain.ValidateWater(f.Water)
		if err != nil {
			return domain.Record{}, err
		}
		rec.WaterCollectedML = domain.Float(water)
	}
	day, err := domain.ValidateDay(strings.TrimSpace(f.Day))
	if err != nil {
		return domain.Record{}, err
	}
	rec.Day = day
	return rec, nil
}
