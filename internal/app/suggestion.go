package app

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"waterlog/internal/domain"
)

var decimalCtx = apd.BaseContext.WithPrecision(34)

// targetRatio is the fraction of the mean baseline weight used as the target.
var targetRatio = apd.New(8, -1)

// SuggestionEngine computes target weights and water supplements from a
// dataset snapshot. It keeps no state between calls.
type SuggestionEngine struct {
	// MinWaterFloor enables the legacy formula that never suggests less than
	// 1 mL minus the water collected during the session.
	MinWaterFloor bool
}

// NewSuggestionEngine returns an engine using the canonical deficit formula
// unless minWaterFloor is set.
func NewSuggestionEngine(minWaterFloor bool) *SuggestionEngine {
	return &SuggestionEngine{MinWaterFloor: minWaterFloor}
}

// TargetWeight returns 0.8 times the mean Baseline weight of the subject.
func (e *SuggestionEngine) TargetWeight(d domain.Dataset, id domain.SubjectID) (float64, error) {
	baseline := d.BySubjectAndCondition(id, domain.ConditionBaselineWeight)
	if len(baseline) == 0 {
		return 0, fmt.Errorf("subject %s: %w", id, domain.ErrNoBaseline)
	}

	sum := new(apd.Decimal)
	for _, r := range baseline {
		w, err := decimalOf(r.WeightG)
		if err != nil {
			return 0, err
		}
		if _, err := decimalCtx.Add(sum, sum, w); err != nil {
			return 0, err
		}
	}

	mean := new(apd.Decimal)
	if _, err := decimalCtx.Quo(mean, sum, apd.New(int64(len(baseline)), 0)); err != nil {
		return 0, err
	}
	target := new(apd.Decimal)
	if _, err := decimalCtx.Mul(target, mean, targetRatio); err != nil {
		return 0, err
	}
	return target.Float64()
}

// SuggestedWater returns the water supplement in mL for a subject weighing
// weightG under condition c. Baseline entries get 0. collectedML is only
// consulted by the legacy floor formula and may be nil.
func (e *SuggestionEngine) SuggestedWater(d domain.Dataset, id domain.SubjectID, c domain.Condition, weightG float64, collectedML *float64) (float64, error) {
	if c == domain.ConditionBaselineWeight {
		return 0, nil
	}
	target, err := e.TargetWeight(d, id)
	if err != nil {
		return 0, err
	}
	return e.suggest(target, weightG, collectedML)
}

func (e *SuggestionEngine) suggest(target, weightG float64, collectedML *float64) (float64, error) {
	t, err := decimalOf(target)
	if err != nil {
		return 0, err
	}
	w, err := decimalOf(weightG)
	if err != nil {
		return 0, err
	}
	out := new(apd.Decimal)
	if _, err := decimalCtx.Sub(out, t, w); err != nil {
		return 0, err
	}
	if out.Negative {
		out.SetInt64(0)
	}

	if e.MinWaterFloor && collectedML != nil {
		c, err := decimalOf(*collectedML)
		if err != nil {
			return 0, err
		}
		floor := new(apd.Decimal)
		if _, err := decimalCtx.Sub(floor, apd.New(1, 0), c); err != nil {
			return 0, err
		}
		if floor.Cmp(out) > 0 {
			out = floor
		}
	}
	return out.Float64()
}

func decimalOf(v float64) (*apd.Decimal, error) {
	d, err := new(apd.Decimal).SetFloat64(v)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %v: %w", v, err)
	}
	return d, nil
}
