package period

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ad-metrics-hub/internal/core/domain"
)

// DateLayout is the wire format of custom range bounds.
const DateLayout = "2006-01-02"

// DefaultMonthlyThresholdDays is the custom-range span above which buckets
// become monthly.
const DefaultMonthlyThresholdDays = 60

var ErrInvalidRange = errors.New("invalid date range")

// InvalidRangeError describes a rejected range request.
type InvalidRangeError struct {
	Start  string
	End    string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	if e.Start == "" && e.End == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidRange, e.Reason)
	}
	return fmt.Sprintf("%s [%s, %s]: %s", ErrInvalidRange, e.Start, e.End, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidRange) hold for every InvalidRangeError.
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Request selects either a named range or a custom Start/End pair. A named
// range takes precedence when both are set.
type Request struct {
	Filter string
	Start  string
	End    string
}

// Range is a resolved request: the current window, the prior window it is
// compared against and the bucket granularity.
type Range struct {
	Current     domain.DateWindow
	Prior       domain.DateWindow
	Granularity domain.Granularity
}

// Resolver turns range requests into windows relative to a clock.
type Resolver struct {
	now                  func() time.Time
	loc                  *time.Location
	monthlyThresholdDays int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithLocation sets the location in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithMonthlyThreshold sets the custom-range span, in days, above which
// monthly buckets are used.
func WithMonthlyThreshold(days int) Option {
	return func(r *Resolver) {
		if days > 0 {
			r.monthlyThresholdDays = days
		}
	}
}

// NewResolver creates a Resolver using UTC and the wall clock by default.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		now:                  time.Now,
		loc:                  time.UTC,
		monthlyThresholdDays: DefaultMonthlyThresholdDays,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Today returns the current calendar date as UTC midnight.
func (r *Resolver) Today() time.Time {
	return Day(r.now().In(r.loc))
}

// Resolve resolves req into current and prior windows.
func (r *Resolver) Resolve(req Request) (Range, error) {
	if strings.TrimSpace(req.Filter) != "" {
		f, ok := ParseFilter(req.Filter)
		if !ok {
			return Range{}, &InvalidRangeError{Reason: fmt.Sprintf("unknown date filter %q", req.Filter)}
		}
		return r.ResolveFilter(f), nil
	}
	return r.ResolveCustom(req.Start, req.End)
}

// ResolveFilter resolves a named range.
func (r *Resolver) ResolveFilter(f Filter) Range {
	w := f.Window(r.Today())
	g := f.Granularity()
	return Range{Current: w, Prior: Prior(w, g), Granularity: g}
}

// ResolveCustom parses an explicit start/end pair.
func (r *Resolver) ResolveCustom(start, end string) (Range, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return Range{}, &InvalidRangeError{Start: start, End: end, Reason: "start and end dates are required"}
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Range{}, &InvalidRangeError{Start: start, End: end, Reason: "unparsable start date"}
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Range{}, &InvalidRangeError{Start: start, End: end, Reason: "unparsable end date"}
	}
	if s.After(e) {
		return Range{}, &InvalidRangeError{Start: start, End: end, Reason: "start is after end"}
	}

	w := domain.DateWindow{Start: s, End: e}
	g := domain.GranularityDay
	if w.Days() > r.monthlyThresholdDays {
		g = domain.GranularityMonth
	}
	return Range{Current: w, Prior: Prior(w, g), Granularity: g}, nil
}

// Prior returns the comparison window of w. Daily windows are compared with
// the immediately preceding window of the same length; monthly windows with
// the same calendar span one year earlier.
func Prior(w domain.DateWindow, g domain.Granularity) domain.DateWindow {
	if g == domain.GranularityMonth {
		return domain.DateWindow{Start: yearEarlier(w.Start), End: yearEarlier(w.End)}
	}
	end := w.Start.AddDate(0, 0, -1)
	return domain.DateWindow{Start: end.AddDate(0, 0, -(w.Days() - 1)), End: end}
}

// yearEarlier shifts d back one year, clamping Feb 29 to Feb 28.
func yearEarlier(d time.Time) time.Time {
	y, m, day := d.Date()
	if m == time.February && day == 29 {
		day = 28
	}
	return date(y-1, m, day)
}
