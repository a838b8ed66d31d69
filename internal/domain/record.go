// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"strings"
)

// DayLayout is the canonical date format for a Record's day.
const DayLayout = "2006-01-02"

// SubjectID is a six-digit animal identifier. Leading zeros are significant.
type SubjectID string

func (id SubjectID) String() string { return string(id) }

// Condition is the experimental state a weight was taken under.
type Condition string

// Persisted condition labels.
const (
	ConditionBeforeSession  Condition = "Before session"
	ConditionAfterSession   Condition = "After session"
	ConditionRestDay        Condition = "Rest day"
	ConditionBaselineWeight Condition = "Baseline weight"
)

// Conditions lists every condition in form order.
var Conditions = []Condition{
	ConditionAfterSession,
	ConditionBeforeSession,
	ConditionRestDay,
	ConditionBaselineWeight,
}

var conditionNames = map[Condition]string{
	ConditionBeforeSession:  "BeforeSession",
	ConditionAfterSession:   "AfterSession",
	ConditionRestDay:        "RestDay",
	ConditionBaselineWeight: "BaselineWeight",
}

// Name returns the identifier form of the condition, e.g. "AfterSession".
func (c Condition) Name() string { return conditionNames[c] }

func (c Condition) String() string { return string(c) }

// TracksWater reports whether records under c carry collected and suggested water.
func (c Condition) TracksWater() bool { return c == ConditionAfterSession }

// ParseCondition accepts either the label ("After session") or the identifier
// ("AfterSession"), ignoring case and surrounding space.
func ParseCondition(s string) (Condition, error) {
	s = strings.TrimSpace(s)
	for _, c := range Conditions {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Name()) {
			return c, nil
		}
	}
	return "", &FieldError{Field: FieldCondition, Err: ErrInvalidCondition}
}

// Record is one logged observation. WaterCollectedML and SuggestedWaterML are
// nil when absent; a zero value is a real measurement.
type Record struct {
	Day              string    `json:"day"`
	SubjectID        SubjectID `json:"subjectId"`
	Condition        Condition `json:"condition"`
	WeightG          float64   `json:"weightG"`
	WaterCollectedML *float64  `json:"waterCollectedMl"`
	SuggestedWaterML *float64  `json:"suggestedWaterMl"`
}

// Equal compares two records field by field, treating absent and zero as different.
func (r Record) Equal(o Record) bool {
	return r.Day == o.Day &&
		r.SubjectID == o.SubjectID &&
		r.Condition == o.Condition &&
		r.WeightG == o.WeightG &&
		optionalEqual(r.WaterCollectedML, o.WaterCollectedML) &&
		optionalEqual(r.SuggestedWaterML, o.SuggestedWaterML)
}

func optionalEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Float returns a pointer to v, for populating optional record fields.
func Float(v float64) *float64 { return &v }

// DatasetRepository is the port for durable dataset storage. Load returns an
// empty slice when nothing has been stored yet; Save replaces the stored
// dataset as a whole.
type DatasetRepository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}
