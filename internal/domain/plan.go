package domain

import (
	"fmt"
	"time"
)

// Stop is a visit placed on a day, with the straight-line distance to the
// next stop on the same day. DistanceToNextKm is nil for the day's last stop.
type Stop struct {
	Visit            Visit
	DistanceToNextKm *float64
}

// Day is one calendar date of an itinerary with its ordered stops.
type Day struct {
	Date          time.Time
	Stops         []Stop
	StopCount     int
	DurationHours float64
	Weather       *DayWeather
}

// Summary renders the day's aggregate line, e.g. "2 stops • 5.0h".
func (d Day) Summary() string {
	switch d.StopCount {
	case 0:
		return "No activities planned"
	case 1:
		return fmt.Sprintf("1 stop • %.1fh", d.DurationHours)
	default:
		return fmt.Sprintf("%d stops • %.1fh", d.StopCount, d.DurationHours)
	}
}

// Totals are trip-level aggregates. DistanceKm follows the visits in list
// order and crosses day boundaries as one continuous route.
type Totals struct {
	Stops         int
	DurationHours float64
	DistanceKm    float64
}

// Plan is the assembled, display-ready view of an itinerary.
type Plan struct {
	Itinerary Itinerary
	City      City
	Days      []Day
	Totals    Totals
}
