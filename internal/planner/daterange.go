// Package planner assembles itineraries: it expands trip date ranges into
// calendar days, buckets visits by date, keeps within-day ordering dense, and
// computes day and trip aggregates. Everything here is pure and in-memory;
// persistence and weather are the caller's concern.
package planner

import (
	"iter"
	"time"
)

// DateLayout is the wire and storage format of a civil date.
const DateLayout = "2006-01-02"

// Civil truncates t to its calendar date in t's own location and returns
// that date at UTC midnight, so dates from any source compare with Equal and
// step with AddDate without DST surprises.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar dates.
// The zero value and any range whose end precedes its start are empty.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange returns the inclusive range [start, end], truncated to civil dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start: Civil(start), end: Civil(end)}
}

// Start returns the first date of the range.
func (r DateRange) Start() time.Time { return r.start }

// End returns the last date of the range.
func (r DateRange) End() time.Time { return r.end }

// Len returns the number of dates in the range.
func (r DateRange) Len() int {
	if r.end.Before(r.start) {
		return 0
	}
	return int(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// Contains reports whether d's calendar date falls within the range.
func (r DateRange) Contains(d time.Time) bool {
	d = Civil(d)
	return !d.Before(r.start) && !d.After(r.end)
}

// All yields every date from start to end in order. The sequence can be
// ranged over any number of times.
func (r DateRange) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Dates returns every date of the range as a slice. It is never nil.
func (r DateRange) Dates() []time.Time {
	out := make([]time.Time, 0, r.Len())
	for d := range r.All() {
		out = append(out, d)
	}
	return out
}
