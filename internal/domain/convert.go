package domain

import (
	"strings"
	"time"
)

const legacyDayLayout = "01-02-2006"

// NormalizeSubjectID restores the leading zeros of ids that older files stored
// as bare integers. Anything that is not 1-6 digits is returned unchanged so
// validation can reject it.
func NormalizeSubjectID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 6 {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s
		}
	}
	return strings.Repeat("0", 6-len(s)) + s
}

// NormalizeDay converts MM-DD-YYYY dates to YYYY-MM-DD. Other input is
// returned unchanged.
func NormalizeDay(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(legacyDayLayout, s); err == nil {
		return t.Format(DayLayout)
	}
	return s
}
