package period

import (
	"strings"
	"time"

	"ad-metrics-hub/internal/core/domain"
)

// Filter is a named date range relative to today.
type Filter string

const (
	LastWeek   Filter = "LAST_WEEK"
	ThisWeek   Filter = "THIS_WEEK"
	LastMonth  Filter = "LAST_MONTH"
	ThisMonth  Filter = "THIS_MONTH"
	LastYear   Filter = "LAST_YEAR"
	ThisYear   Filter = "THIS_YEAR"
	Yesterday  Filter = "YESTERDAY"
	Today      Filter = "TODAY"
	Last7Days  Filter = "LAST_7_DAYS"
	Last30Days Filter = "LAST_30_DAYS"
	Last90Days Filter = "LAST_90_DAYS"
)

// ParseFilter parses a named range, case-insensitively. ok is false for
// unknown names.
func ParseFilter(s string) (Filter, bool) {
	f := Filter(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case LastWeek, ThisWeek, LastMonth, ThisMonth, LastYear, ThisYear,
		Yesterday, Today, Last7Days, Last30Days, Last90Days:
		return f, true
	}
	return "", false
}

// Granularity returns MONTH for the yearly ranges and DAY otherwise.
func (f Filter) Granularity() domain.Granularity {
	switch f {
	case LastYear, ThisYear:
		return domain.GranularityMonth
	default:
		return domain.GranularityDay
	}
}

// Window returns the calendar window of f given today's date. Weeks run
// Monday to Sunday.
func (f Filter) Window(today time.Time) domain.DateWindow {
	today = Day(today)
	y, m, _ := today.Date()

	switch f {
	case LastWeek:
		start := monday(today).AddDate(0, 0, -7)
		return domain.DateWindow{Start: start, End: start.AddDate(0, 0, 6)}
	case ThisWeek:
		return domain.DateWindow{Start: monday(today), End: today}
	case LastMonth:
		start := date(y, m-1, 1)
		return domain.DateWindow{Start: start, End: start.AddDate(0, 1, -1)}
	case ThisMonth:
		return domain.DateWindow{Start: date(y, m, 1), End: today}
	case LastYear:
		return domain.DateWindow{Start: date(y-1, time.January, 1), End: date(y-1, time.December, 31)}
	case ThisYear:
		return domain.DateWindow{Start: date(y, time.January, 1), End: today}
	case Yesterday:
		d := today.AddDate(0, 0, -1)
		return domain.DateWindow{Start: d, End: d}
	case Last7Days:
		return domain.DateWindow{Start: today.AddDate(0, 0, -7), End: today}
	case Last30Days:
		return domain.DateWindow{Start: today.AddDate(0, 0, -30), End: today}
	case Last90Days:
		return domain.DateWindow{Start: today.AddDate(0, 0, -90), End: today}
	default:
		return domain.DateWindow{Start: today, End: today}
	}
}

// Day truncates t to its calendar date in t's location and returns that
// date as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return date(y, m, d)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monday(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
