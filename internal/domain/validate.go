package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Weight bounds in grams, inclusive.
const (
	MinWeightG = 15.0
	MaxWeightG = 40.0
)

// ValidateSubjectID accepts exactly six ASCII digits.
func ValidateSubjectID(text string) (SubjectID, error) {
	if len(text) != 6 {
		return "", &FieldError{Field: FieldSubjectID, Err: ErrInvalidSubjectID}
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return "", &FieldError{Field: FieldSubjectID, Err: ErrInvalidSubjectID}
		}
	}
	return SubjectID(text), nil
}

// ValidateWeight parses a finite weight within [MinWeightG, MaxWeightG].
func ValidateWeight(text string) (float64, error) {
	w, ok := parseFinite(text)
	if !ok {
		return 0, &FieldError{Field: FieldWeight, Err: ErrInvalidWeight}
	}
	if err := CheckWeight(w); err != nil {
		return 0, err
	}
	return w, nil
}

// CheckWeight reports whether w is a finite weight within [MinWeightG, MaxWeightG].
func CheckWeight(w float64) error {
	if math.IsNaN(w) || w < MinWeightG || w > MaxWeightG {
		return &FieldError{Field: FieldWeight, Err: ErrInvalidWeight}
	}
	return nil
}

// ValidateWater parses a finite, non-negative water volume in mL.
func ValidateWater(text string) (float64, error) {
	v, ok := parseFinite(text)
	if !ok || v < 0 {
		return 0, &FieldError{Field: FieldWater, Err: ErrInvalidWater}
	}
	return v, nil
}

// ValidateDay parses a YYYY-MM-DD calendar date and returns it unchanged.
func ValidateDay(text string) (string, error) {
	if _, err := time.Parse(DayLayout, text); err != nil {
		return "", &FieldError{Field: FieldDay, Err: ErrInvalidDate}
	}
	return text, nil
}

// ValidateRequiredFields checks that day, subject, condition and weight are
// present, and that water is present when the condition tracks water.
// condition is the raw condition text.
func ValidateRequiredFields(day, subjectID, condition, weight, water string) error {
	required := []struct{ name, value string }{
		{FieldDay, day},
		{FieldSubjectID, subjectID},
		{FieldCondition, condition},
		{FieldWeight, weight},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name, Err: ErrMissingField}
		}
	}
	if c, err := ParseCondition(condition); err == nil && c.TracksWater() && strings.TrimSpace(water) == "" {
		return &FieldError{Field: FieldWater, Err: ErrMissingField}
	}
	return nil
}

// ValidateRecord checks a stored record against the rules every record obeys:
// a valid subject id and day, a weight in range, and water fields present
// only on AfterSession rows, non-negative when present.
func ValidateRecord(r Record) error {
	if _, err := ValidateSubjectID(r.SubjectID.String()); err != nil {
		return err
	}
	if _, err := ValidateDay(r.Day); err != nil {
		return err
	}
	if _, err := ParseCondition(r.Condition.String()); err != nil {
		return err
	}
	if err := CheckWeight(r.WeightG); err != nil {
		return err
	}
	if !r.Condition.TracksWater() {
		if r.WaterCollectedML != nil || r.SuggestedWaterML != nil {
			return &FieldError{Field: FieldWater, Err: ErrInvalidWater}
		}
		return nil
	}
	for _, v := range []*float64{r.WaterCollectedML, r.SuggestedWaterML} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0) {
			return &FieldError{Field: FieldWater, Err: ErrInvalidWater}
		}
	}
	return nil
}

// parseFinite accepts decimal notation only; hex floats and underscores are rejected.
func parseFinite(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
