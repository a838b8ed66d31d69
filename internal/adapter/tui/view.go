package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var fieldLabels = [fieldCount]string{
	FieldDate:      "Date:",
	FieldSubject:   "Mouse ID:",
	FieldCondition: "Condition:",
	FieldWeight:    "Weight (g):",
	FieldWater:     "Water collected (mL):",
}

// View renders the form, status line, last summary and chart.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Water log"))
	b.WriteString("\n\n")

	for f := Field(0); f < fieldCount; f++ {
		label := LabelStyle.Render(fieldLabels[f])
		if f == m.focus {
			label = FocusedLabelStyle.Render(fieldLabels[f])
		}
		value := m.Value(f)
		switch {
		case f == FieldCondition:
			value = "< " + value + " >"
		case f == FieldWater && !m.editable(f):
			value = DisabledStyle.Render("(after session only)")
		case f == m.focus:
			value += "_"
		}
		b.WriteString(label + " " + value + "\n")
	}

	if m.statusText != "" {
		b.WriteString("\n" + statusStyle(m.statusKind).Render(m.statusText) + "\n")
	}

	var panels []string
	if m.summary != "" {
		panels = append(panels, SummaryStyle.Render(strings.TrimRight(m.summary, "\n")))
	}
	if m.series != nil {
		panels = append(panels, renderChart(m.series, chartWidth(m.width)))
	}
	if len(panels) > 0 {
		b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, interleave(panels, "  ")...) + "\n")
	}

	b.WriteString("\n" + footer())
	return b.String()
}

func statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusError:
		return ErrorStyle
	case StatusWarning:
		return WarningStyle
	}
	return InfoStyle
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

func footer() string {
	keys := []struct{ key, desc string }{
		{"tab", "next"},
		{"←/→", "condition"},
		{"enter", "submit"},
		{"ctrl+p", "plot"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, FooterKeyStyle.Render(k.key)+" "+FooterDescStyle.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}
