package tui

import "waterlog/internal/app"

// SubmittedMsg carries a stored submission.
type SubmittedMsg struct {
	Outcome *app.SubmissionOutcome
}

// SubmitErrorMsg is sent when Submit rejects the form or the write fails.
type SubmitErrorMsg struct {
	Err error
}

// SeriesMsg carries chart data for a subject.
type SeriesMsg struct {
	Series *app.Series
}

// SeriesErrorMsg is sent when chart data cannot be built.
type SeriesErrorMsg struct {
	SubjectID string
	Err       error
}
