package tui

import (
	"fmt"
	"math"
	"strings"

	"waterlog/internal/app"
	"waterlog/internal/domain"
)

const (
	minBarWidth     = 10
	defaultBarWidth = 30
)

var conditionMarks = map[domain.Condition]string{
	domain.ConditionBaselineWeight: "B",
	domain.ConditionAfterSession:   "A",
	domain.ConditionBeforeSession:  "S",
	domain.ConditionRestDay:        "R",
}

func chartWidth(termWidth int) int {
	if termWidth <= 0 {
		return defaultBarWidth
	}
	w := termWidth/2 - 30
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}

// renderChart draws one horizontal bar per point. Bars are scaled between the
// lowest value (point or target) and the highest; the target column is marked |.
func renderChart(s *app.Series, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weight Data for Mouse ID %s\n", s.SubjectID)

	lo, hi := s.Range()
	if s.TargetWeightG != nil {
		lo = math.Min(lo, *s.TargetWeightG)
		hi = math.Max(hi, *s.TargetWeightG)
	}
	scale := func(v float64) int {
		if hi == lo {
			return width
		}
		return 1 + int(math.Round((v-lo)/(hi-lo)*float64(width-1)))
	}
	targetCol := -1
	if s.TargetWeightG != nil {
		targetCol = scale(*s.TargetWeightG)
	}

	for _, p := range s.Points {
		n := scale(p.WeightG)
		bar := []rune(strings.Repeat("█", n) + strings.Repeat(" ", width-n))
		if targetCol > 0 && targetCol <= width {
			bar[targetCol-1] = '|'
		}
		style := BarStyle
		if s.TargetWeightG != nil && p.WeightG < *s.TargetWeightG {
			style = BelowTargetStyle
		}
		fmt.Fprintf(&b, "%s %s %s %6.2f\n", p.Day, conditionMarks[p.Condition], style.Render(string(bar)), p.WeightG)
	}

	if s.TargetWeightG != nil {
		fmt.Fprintf(&b, "| target %.2f g", *s.TargetWeightG)
	} else {
		b.WriteString("no baseline: target unavailable")
	}
	return b.String()
}
