package domain

import "errors"

// Field names used in FieldError.
const (
	FieldDay       = "date"
	FieldSubjectID = "subject_id"
	FieldCondition = "condition"
	FieldWeight    = "weight"
	FieldWater     = "water_collected"
)

var (
	ErrMissingField     = errors.New("required field is empty")
	ErrInvalidSubjectID = errors.New("subject id must be a 6-digit number")
	ErrInvalidWeight    = errors.New("weight must be a number between 15 and 40")
	ErrInvalidWater     = errors.New("water must be a non-negative number")
	ErrInvalidCondition = errors.New("unknown condition")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")

	// ErrUnknownSubject is returned for a non-baseline entry on a subject with no history.
	ErrUnknownSubject = errors.New("no data found for subject")
	// ErrNoBaseline means no Baseline weight record exists, so no target can be computed.
	ErrNoBaseline = errors.New("no baseline weight recorded for subject")
	// ErrWriteFailed wraps any failure to persist the dataset.
	ErrWriteFailed = errors.New("dataset write failed")
)

// FieldError names the input field a validation failure belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// FailedField returns the field name carried by err, or "" if there is none.
func FailedField(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
