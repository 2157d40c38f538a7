package planner

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/geo"
)

// Assembler holds one itinerary's visits in list order and applies edits
// to them. List order is the order visits were loaded (date, then order)
// followed by the order they were added; trip distance follows it.
//
// An Assembler is not safe for concurrent use. Build one per request.
type Assembler struct {
	itinerary domain.Itinerary
	span      DateRange
	visits    []domain.Visit
	newID     func() uuid.UUID
}

// NewAssembler returns an Assembler for it, seeded with a copy of visits.
func NewAssembler(it domain.Itinerary, visits []domain.Visit) *Assembler {
	vs := make([]domain.Visit, len(visits))
	for i, v := range visits {
		v.VisitDate = Civil(v.VisitDate)
		vs[i] = v
	}
	return &Assembler{
		itinerary: it,
		span:      NewDateRange(it.StartDate, it.EndDate),
		visits:    vs,
		newID:     uuid.New,
	}
}

// Span returns the itinerary's date range.
func (a *Assembler) Span() DateRange { return a.span }

// Visits returns a copy of the current visits in list order.
func (a *Assembler) Visits() []domain.Visit { return slices.Clone(a.visits) }

// Add appends a visit of attr on date, positioned after the visits already
// on that date. Returns domain.ErrValidation if date is outside the span.
//
// Add does not reject an attraction that is already planned elsewhere in
// the itinerary; use Candidates to offer only unused attractions.
func (a *Assembler) Add(attr domain.Attraction, date time.Time, notes string) (domain.Visit, error) {
	date = Civil(date)
	if !a.span.Contains(date) {
		return domain.Visit{}, outsideSpan(date)
	}
	v := domain.Visit{
		ID:           a.newID(),
		ItineraryID:  a.itinerary.ID,
		AttractionID: attr.ID,
		VisitDate:    date,
		VisitOrder:   a.countOn(date, uuid.Nil) + 1,
		Notes:        notes,
		Attraction:   attr,
	}
	a.visits = append(a.visits, v)
	return v, nil
}

// Remove deletes the visit with the given id and closes the gap it leaves
// in its date's ordering. Returns domain.ErrNotFound for an unknown id.
func (a *Assembler) Remove(id uuid.UUID) error {
	i := a.index(id)
	if i < 0 {
		return fmt.Errorf("planner: visit %s: %w", id, domain.ErrNotFound)
	}
	from := a.visits[i].VisitDate
	a.visits = slices.Delete(a.visits, i, i+1)
	a.renumber(from)
	return nil
}

// Move reassigns a visit to date, placing it after the other visits already
// there, and renumbers the date it left. The visit keeps its list position.
func (a *Assembler) Move(id uuid.UUID, date time.Time) (domain.Visit, error) {
	date = Civil(date)
	if !a.span.Contains(date) {
		return domain.Visit{}, outsideSpan(date)
	}
	i := a.index(id)
	if i < 0 {
		return domain.Visit{}, fmt.Errorf("planner: visit %s: %w", id, domain.ErrNotFound)
	}
	from := a.visits[i].VisitDate
	a.visits[i].VisitDate = date
	a.visits[i].VisitOrder = math.MaxInt
	a.renumber(from)
	a.renumber(date)
	return a.visits[i], nil
}

// Days groups visits by date. Every date in the span appears exactly once,
// in calendar order, with its visits sorted by VisitOrder. Visits dated
// outside the span do not appear in any day.
func (a *Assembler) Days() []domain.Day {
	byDate := make(map[string][]domain.Visit, a.span.Len())
	for _, v := range a.visits {
		k := v.VisitDate.Format(DateLayout)
		byDate[k] = append(byDate[k], v)
	}

	days := make([]domain.Day, 0, a.span.Len())
	for d := range a.span.All() {
		vs := byDate[d.Format(DateLayout)]
		slices.SortStableFunc(vs, func(x, y domain.Visit) int {
			return cmp.Compare(x.VisitOrder, y.VisitOrder)
		})
		days = append(days, buildDay(d, vs))
	}
	return days
}

// Totals returns trip-level aggregates over all visits. Distance is summed
// between consecutive visits in list order, across day boundaries.
func (a *Assembler) Totals() domain.Totals {
	t := domain.Totals{Stops: len(a.visits)}
	points := make([]domain.Coordinates, 0, len(a.visits))
	for _, v := range a.visits {
		t.DurationHours += v.Attraction.EstimatedDurationHours
		points = append(points, v.Attraction.Location)
	}
	t.DistanceKm = geo.RouteKm(points)
	return t
}

// Plan bundles the days and totals with the itinerary and its city.
func (a *Assembler) Plan(city domain.City) domain.Plan {
	return domain.Plan{
		Itinerary: a.itinerary,
		City:      city,
		Days:      a.Days(),
		Totals:    a.Totals(),
	}
}

// Candidates returns the attractions from all that no visit uses yet,
// preserving the order of all.
func (a *Assembler) Candidates(all []domain.Attraction) []domain.Attraction {
	used := make(map[uuid.UUID]struct{}, len(a.visits))
	for _, v := range a.visits {
		used[v.AttractionID] = struct{}{}
	}
	out := make([]domain.Attraction, 0, len(all))
	for _, attr := range all {
		if _, ok := used[attr.ID]; !ok {
			out = append(out, attr)
		}
	}
	return out
}

func (a *Assembler) index(id uuid.UUID) int {
	return slices.IndexFunc(a.visits, func(v domain.Visit) bool { return v.ID == id })
}

// countOn counts visits on date, ignoring the visit with id exclude.
func (a *Assembler) countOn(date time.Time, exclude uuid.UUID) int {
	n := 0
	for _, v := range a.visits {
		if v.ID != exclude && v.VisitDate.Equal(date) {
			n++
		}
	}
	return n
}

// renumber rewrites the orders on date as 1..n, keeping their relative order.
func (a *Assembler) renumber(date time.Time) {
	var idx []int
	for i, v := range a.visits {
		if v.VisitDate.Equal(date) {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(x, y int) int {
		return cmp.Compare(a.visits[x].VisitOrder, a.visits[y].VisitOrder)
	})
	for pos, i := range idx {
		a.visits[i].VisitOrder = pos + 1
	}
}

func buildDay(date time.Time, visits []domain.Visit) domain.Day {
	day := domain.Day{
		Date:      date,
		Stops:     make([]domain.Stop, len(visits)),
		StopCount: len(visits),
	}
	for i, v := range visits {
		day.DurationHours += v.Attraction.EstimatedDurationHours
		day.Stops[i] = domain.Stop{Visit: v}
		if i+1 < len(visits) {
			d := geo.DistanceKm(v.Attraction.Location, visits[i+1].Attraction.Location)
			day.Stops[i].DistanceToNextKm = &d
		}
	}
	return day
}

func outsideSpan(date time.Time) error {
	return fmt.Errorf("%w: visit date %s is outside the itinerary dates", domain.ErrValidation, date.Format(DateLayout))
}
