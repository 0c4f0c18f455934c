package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Period is the lookback window averages are computed over.
type Period string

const (
	PeriodWeek        Period = "1week"
	PeriodMonth       Period = "1month"
	PeriodTwoMonths   Period = "2months"
	PeriodThreeMonths Period = "3months"
	PeriodAll         Period = "all"
)

var Periods = []Period{PeriodWeek, PeriodMonth, PeriodTwoMonths, PeriodThreeMonths, PeriodAll}

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Periods {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period: %q", s)
}

// Since returns the start of the window ending at now.
// ok is false for the all-time period, which has no start.
func (p Period) Since(now time.Time) (_ time.Time, ok bool) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, -1, 0), true
	case PeriodTwoMonths:
		return now.AddDate(0, -2, 0), true
	case PeriodThreeMonths:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

// Contains reports whether t falls within the period ending at now.
func (p Period) Contains(t, now time.Time) bool {
	since, ok := p.Since(now)
	if !ok {
		return true
	}
	return !t.Before(since)
}

func (p Period) String() string {
	return string(p)
}
