package timeframe

import "time"

// Resolver computes concrete date ranges for granularity selections. The
// first day of the week and the calendar location are explicit inputs so
// behavior never depends on ambient locale.
type Resolver struct {
	Loc      *time.Location
	FirstDay time.Weekday
}

// NewResolver returns a resolver with weeks starting on Monday in the local
// calendar.
func NewResolver() *Resolver {
	return &Resolver{
		Loc:      time.Local,
		FirstDay: time.Monday,
	}
}

// Resolve computes the inclusive window for a selection. For Custom the
// window comes straight from the picked dates; nothing enforces start before
// end, an inverted pick simply yields a range that contains no instants.
func (r *Resolver) Resolve(sel Selection) Range {
	switch sel.Granularity {
	case Day:
		return Range{
			Start: r.startOfDay(sel.Anchor),
			End:   r.endOfDay(sel.Anchor),
		}
	case Week:
		in := sel.Anchor.In(r.Loc)
		back := (int(in.Weekday()) - int(r.FirstDay) + 7) % 7
		start := r.startOfDay(in.AddDate(0, 0, -back))
		return Range{
			Start: start,
			End:   r.endOfDay(start.AddDate(0, 0, 6)),
		}
	case Month:
		y, m, _ := sel.Anchor.In(r.Loc).Date()
		return Range{
			Start: time.Date(y, m, 1, 0, 0, 0, 0, r.Loc),
			// Day 0 of the next month normalizes to the last day of this one.
			End: time.Date(y, m+1, 0, 23, 59, 59, 0, r.Loc),
		}
	case Year:
		y := sel.Anchor.In(r.Loc).Year()
		return Range{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, r.Loc),
			End:   time.Date(y, time.December, 31, 23, 59, 59, 0, r.Loc),
		}
	case Custom:
		return Range{
			Start: r.startOfDay(sel.CustomStart),
			End:   r.endOfDay(sel.CustomEnd),
		}
	default:
		return Range{}
	}
}

// Navigate moves the selection's anchor by one unit of its granularity.
// Direction is +1 or -1. Custom selections have no navigation and are
// returned unchanged.
func (r *Resolver) Navigate(sel Selection, direction int) Selection {
	switch sel.Granularity {
	case Day:
		sel.Anchor = sel.Anchor.AddDate(0, 0, direction)
	case Week:
		sel.Anchor = sel.Anchor.AddDate(0, 0, 7*direction)
	case Month:
		sel.Anchor = r.addMonths(sel.Anchor, direction)
	case Year:
		sel.Anchor = r.addMonths(sel.Anchor, 12*direction)
	case Custom:
	}
	return sel
}

// CanNavigateForward reports whether moving the window forward makes sense:
// false once the current window already contains now, and always false for
// Custom selections.
func (r *Resolver) CanNavigateForward(sel Selection, now time.Time) bool {
	if sel.Granularity == Custom {
		return false
	}
	return !r.Resolve(sel).Contains(now)
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(r.Loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.Loc)
}

func (r *Resolver) endOfDay(t time.Time) time.Time {
	y, m, d := t.In(r.Loc).Date()
	return time.Date(y, m, d, 23, 59, 59, 0, r.Loc)
}

// addMonths shifts by whole calendar months, clamping the day so that e.g.
// Jan 31 plus one month lands on the last day of February instead of
// normalizing into March.
func (r *Resolver) addMonths(t time.Time, months int) time.Time {
	in := t.In(r.Loc)
	y, m, d := in.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, r.Loc)
	lastDay := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, r.Loc).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(target.Year(), target.Month(), d,
		in.Hour(), in.Minute(), in.Second(), in.Nanosecond(), r.Loc)
}
