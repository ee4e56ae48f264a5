// Package timeframe resolves granularity selections into concrete date ranges.
package timeframe

import (
	"fmt"
	"time"
)

// Granularity selects the unit of the active time window.
type Granularity int

const (
	// Day is a single calendar day.
	Day Granularity = iota
	// Week is a calendar week.
	Week
	// Month is a calendar month.
	Month
	// Year is a calendar year.
	Year
	// Custom is an explicit user-picked start/end pair.
	Custom
)

// String implements fmt.Stringer.
func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// ParseGranularity parses a granularity name as used in flags and config.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	case "custom":
		return Custom, nil
	default:
		return Day, fmt.Errorf("unknown granularity %q", s)
	}
}

// Selection describes the window the caller wants: a granularity plus the
// anchor it derives from, or an explicit start/end pair for Custom.
type Selection struct {
	Anchor      time.Time
	CustomStart time.Time
	CustomEnd   time.Time
	Granularity Granularity
}

// Range is an inclusive time window. End sits at 23:59:59 of the final day
// for day-aligned granularities.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, inclusive on both ends.
// An inverted range contains nothing.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
