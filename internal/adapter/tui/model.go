// Package tui is the terminal data-entry form: it collects raw field text,
// hands it to the session service and shows the outcome and a weight chart.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"waterlog/internal/app"
	"waterlog/internal/domain"
)

// Field identifies a form input.
type Field int

const (
	FieldDate Field = iota
	FieldSubject
	FieldCondition
	FieldWeight
	FieldWater
	fieldCount
)

// StatusKind selects how the status line is styled.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusWarning
	StatusError
)

// Model is the root bubbletea model for the data-entry form.
type Model struct {
	session     *app.SessionService
	charts      *app.ChartsService
	chartPoints int
	now         func() time.Time

	// Form state
	values    [fieldCount]string
	condition int
	focus     Field

	// Results
	statusText string
	statusKind StatusKind
	summary    string
	series     *app.Series

	width int
}

// New creates a form bound to the given services. chartPoints is how many of
// a subject's most recent entries the chart shows.
func New(session *app.SessionService, charts *app.ChartsService, chartPoints int) Model {
	m := Model{
		session:     session,
		charts:      charts,
		chartPoints: chartPoints,
		now:         time.Now,
		focus:       FieldSubject,
	}
	m.reset()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Condition returns the selected condition.
func (m Model) Condition() domain.Condition { return domain.Conditions[m.condition] }

// Value returns the current text of a field.
func (m Model) Value(f Field) string {
	if f == FieldCondition {
		return m.Condition().String()
	}
	return m.values[f]
}

// Fields bundles the form into raw submission fields.
func (m Model) Fields() app.Fields {
	f := app.Fields{
		Day:       m.values[FieldDate],
		SubjectID: m.values[FieldSubject],
		Condition: m.Condition().String(),
		Weight:    m.values[FieldWeight],
	}
	if m.Condition().TracksWater() {
		f.Water = m.values[FieldWater]
	}
	return f
}

func (m *Model) reset() {
	m.values = [fieldCount]string{}
	m.values[FieldDate] = m.now().In(time.Local).Format(domain.DayLayout)
	m.condition = 0
	m.focus = FieldSubject
}

func submitCmd(svc *app.SessionService, f app.Fields) tea.Cmd {
	return func() tea.Msg {
		out, err := svc.Submit(context.Background(), f)
		if err != nil {
			return SubmitErrorMsg{Err: err}
		}
		return SubmittedMsg{Outcome: out}
	}
}

func seriesCmd(svc *app.ChartsService, subject string, limit int) tea.Cmd {
	return func() tea.Msg {
		id, err := domain.ValidateSubjectID(subject)
		if err != nil {
			return SeriesErrorMsg{SubjectID: subject, Err: err}
		}
		s, err := svc.Series(id, limit)
		if err != nil {
			return SeriesErrorMsg{SubjectID: subject, Err: err}
		}
		return SeriesMsg{Series: s}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case SubmittedMsg:
		out := msg.Outcome
		m.summary = out.Summary()
		switch {
		case out.Warning != nil:
			m.setStatus(StatusWarning, fmt.Sprintf("Saved, but no baseline weight for mouse %s: no suggested water.", out.Record.SubjectID))
		case out.FirstEntry:
			m.setStatus(StatusInfo, fmt.Sprintf("First entry for mouse %s created.", out.Record.SubjectID))
		default:
			m.setStatus(StatusInfo, "Saved.")
		}
		m.reset()
		return m, seriesCmd(m.charts, out.Record.SubjectID.String(), m.chartPoints)

	case SubmitErrorMsg:
		m.setStatus(StatusError, errorText(msg.Err, m.values[FieldSubject]))
		return m, nil

	case SeriesMsg:
		m.series = msg.Series
		return m, nil

	case SeriesErrorMsg:
		m.series = nil
		m.setStatus(StatusError, errorText(msg.Err, msg.SubjectID))
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyCtrlC, KeyQuit:
		return m, tea.Quit
	case KeyTab, KeyDown:
		m.focus = m.nextFocus(1)
	case KeyShiftTab, KeyUp:
		m.focus = m.nextFocus(-1)
	case KeyLeft:
		if m.focus == FieldCondition {
			m.condition = (m.condition + len(domain.Conditions) - 1) % len(domain.Conditions)
		}
	case KeyRight:
		if m.focus == FieldCondition {
			m.condition = (m.condition + 1) % len(domain.Conditions)
		}
	case KeyEnter:
		m.setStatus(StatusNone, "")
		return m, submitCmd(m.session, m.Fields())
	case KeyPlot:
		return m, seriesCmd(m.charts, m.values[FieldSubject], m.chartPoints)
	case KeyClear:
		if m.editable(m.focus) {
			m.values[m.focus] = ""
		}
	case KeyBackspace:
		if m.editable(m.focus) {
			if v := []rune(m.values[m.focus]); len(v) > 0 {
				m.values[m.focus] = string(v[:len(v)-1])
			}
		}
	default:
		if msg.Type == tea.KeyRunes && m.editable(m.focus) {
			m.values[m.focus] += string(msg.Runes)
		}
	}
	return m, nil
}

// editable reports whether typed text goes into f.
func (m Model) editable(f Field) bool {
	switch f {
	case FieldCondition:
		return false
	case FieldWater:
		return m.Condition().TracksWater()
	}
	return true
}

// nextFocus moves focus by step, skipping the water field when it is disabled.
func (m Model) nextFocus(step int) Field {
	f := m.focus
	for i := 0; i < int(fieldCount); i++ {
		f = Field((int(f) + step + int(fieldCount)) % int(fieldCount))
		if f != FieldWater || m.Condition().TracksWater() {
			return f
		}
	}
	return m.focus
}

func (m *Model) setStatus(kind StatusKind, text string) {
	m.statusKind = kind
	m.statusText = text
}

// errorText maps a submission error to the message shown to the technician.
func errorText(err error, subject string) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return "Please fill in all the required fields."
	case errors.Is(err, domain.ErrInvalidSubjectID):
		return "Mouse ID must be a 6-digit number."
	case errors.Is(err, domain.ErrInvalidWeight):
		return "Weight must be a number between 15 and 40."
	case errors.Is(err, domain.ErrInvalidWater):
		return "Water collected must be a non-negative number."
	case errors.Is(err, domain.ErrInvalidDate):
		return "Date must be YYYY-MM-DD."
	case errors.Is(err, domain.ErrUnknownSubject):
		return fmt.Sprintf("No data found for Mouse ID %s.", subject)
	case errors.Is(err, domain.ErrNoBaseline):
		return fmt.Sprintf("No recovered baseline data for mouse %s.", subject)
	case errors.Is(err, domain.ErrWriteFailed):
		return "Could not save the water log; nothing was recorded. Fix the problem and submit again."
	}
	return err.Error()
}
