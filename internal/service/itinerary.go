package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/planner"
	"github.com/Sahil-at-Work/TripSmart/internal/repo"
)

// ItineraryService implements business logic for itineraries and their
// visits. Every method takes the caller's Session; itineraries owned by
// someone else are reported as domain.ErrNotFound so their existence is not
// leaked.
//
// Visit edits are applied to a planner.Assembler built from the stored
// visits and then persisted as a whole set.
type ItineraryService struct {
	itineraries repo.ItineraryRepo
	visits      repo.VisitRepo
	cities      repo.CityRepo
	attractions repo.AttractionRepo
	forecaster  Forecaster
}

// NewItineraryService constructs an ItineraryService. forecaster may be nil,
// in which case plans carry no weather.
func NewItineraryService(
	itineraries repo.ItineraryRepo,
	visits repo.VisitRepo,
	cities repo.CityRepo,
	attractions repo.AttractionRepo,
	forecaster Forecaster,
) *ItineraryService {
	return &ItineraryService{
		itineraries: itineraries,
		visits:      visits,
		cities:      cities,
		attractions: attractions,
		forecaster:  forecaster,
	}
}

// Create validates and persists a new itinerary owned by sess, together with
// its initial visits. Visit orders are assigned per date in the order the
// visits are given; any orders the caller set are ignored.
func (s *ItineraryService) Create(ctx context.Context, sess domain.Session, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error) {
	it.Title = strings.TrimSpace(it.Title)
	if err := validateItinerary(it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	it.UserID = sess.UserID
	it.StartDate = planner.Civil(it.StartDate)
	it.EndDate = planner.Civil(it.EndDate)

	if _, err := s.cities.GetByID(ctx, it.CityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("%w: unknown city %s", domain.ErrValidation, it.CityID)
		}
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}

	a, err := s.assemble(ctx, it, visits)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}

	created, err := s.itineraries.Create(ctx, it, a.Visits())
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return created, nil
}

// List returns one page of the caller's itineraries, newest first, and
// their total count.
func (s *ItineraryService) List(ctx context.Context, sess domain.Session, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error) {
	items, total, err := s.itineraries.ListByUser(ctx, sess.UserID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	return items, total, nil
}

// Get returns an itinerary owned by the caller.
func (s *ItineraryService) Get(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.owned(ctx, sess, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return it, nil
}

// Plan assembles the day-by-day view of an itinerary with totals and, when
// a Forecaster is configured, one weather annotation per day.
func (s *ItineraryService) Plan(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Plan, error) {
	it, a, err := s.load(ctx, sess, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.ItineraryService.Plan: %w", err)
	}
	city, err := s.cities.GetByID(ctx, it.CityID)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.ItineraryService.Plan: city: %w", err)
	}

	plan := a.Plan(city)
	if s.forecaster != nil {
		weather := s.forecaster.ForDates(ctx, city.Location, a.Span().Dates())
		for i := range plan.Days {
			if i < len(weather) {
				plan.Days[i].Weather = &weather[i]
			}
		}
	}
	return plan, nil
}

// Delete removes an itinerary owned by the caller along with its visits.
func (s *ItineraryService) Delete(ctx context.Context, sess domain.Session, id uuid.UUID) error {
	if err := s.itineraries.Delete(ctx, sess.UserID, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// Candidates lists the city's attractions not yet used by the itinerary.
func (s *ItineraryService) Candidates(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.Attraction, error) {
	it, a, err := s.load(ctx, sess, id)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Candidates: %w", err)
	}
	all, err := s.attractions.ListByCity(ctx, it.CityID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Candidates: %w", err)
	}
	return a.Candidates(all), nil
}

// SaveVisits replaces the itinerary's whole visit set. Each visit must
// reference an attraction in the itinerary's city and fall within its dates.
// Orders are reassigned per date in the order given.
func (s *ItineraryService) SaveVisits(ctx context.Context, sess domain.Session, id uuid.UUID, visits []domain.Visit) error {
	it, err := s.owned(ctx, sess, id)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.SaveVisits: %w", err)
	}
	a, err := s.assemble(ctx, it, visits)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.SaveVisits: %w", err)
	}
	if err := s.visits.ReplaceAll(ctx, id, a.Visits()); err != nil {
		return fmt.Errorf("service.ItineraryService.SaveVisits: %w", err)
	}
	return nil
}

// AddVisit appends a visit to attractionID on date, after the visits
// already planned for that date.
func (s *ItineraryService) AddVisit(ctx context.Context, sess domain.Session, id, attractionID uuid.UUID, date time.Time, notes string) (domain.Visit, error) {
	it, a, err := s.load(ctx, sess, id)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.AddVisit: %w", err)
	}
	attr, err := s.cityAttraction(ctx, it, attractionID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.AddVisit: %w", err)
	}
	v, err := a.Add(attr, date, strings.TrimSpace(notes))
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.AddVisit: %w", err)
	}
	if err := s.visits.ReplaceAll(ctx, id, a.Visits()); err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.AddVisit: %w", err)
	}
	return v, nil
}

// RemoveVisit deletes one visit and closes the gap in its date's ordering.
func (s *ItineraryService) RemoveVisit(ctx context.Context, sess domain.Session, id, visitID uuid.UUID) error {
	_, a, err := s.load(ctx, sess, id)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveVisit: %w", err)
	}
	if err := a.Remove(visitID); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveVisit: %w", err)
	}
	if err := s.visits.ReplaceAll(ctx, id, a.Visits()); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveVisit: %w", err)
	}
	return nil
}

// MoveVisit reassigns a visit to date, placing it last on that date.
func (s *ItineraryService) MoveVisit(ctx context.Context, sess domain.Session, id, visitID uuid.UUID, date time.Time) (domain.Visit, error) {
	_, a, err := s.load(ctx, sess, id)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.MoveVisit: %w", err)
	}
	v, err := a.Move(visitID, date)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.MoveVisit: %w", err)
	}
	if err := s.visits.ReplaceAll(ctx, id, a.Visits()); err != nil {
		return domain.Visit{}, fmt.Errorf("service.ItineraryService.MoveVisit: %w", err)
	}
	return v, nil
}

// owned fetches an itinerary and hides it unless sess owns it.
func (s *ItineraryService) owned(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if it.UserID != sess.UserID {
		return domain.Itinerary{}, domain.ErrNotFound
	}
	return it, nil
}

// load fetches an owned itinerary and an Assembler seeded with its visits.
func (s *ItineraryService) load(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Itinerary, *planner.Assembler, error) {
	it, err := s.owned(ctx, sess, id)
	if err != nil {
		return domain.Itinerary{}, nil, err
	}
	visits, err := s.visits.ListByItinerary(ctx, id)
	if err != nil {
		return domain.Itinerary{}, nil, err
	}
	return it, planner.NewAssembler(it, visits), nil
}

// assemble builds a fresh visit set for it from caller input, checking that
// each attraction belongs to the itinerary's city.
func (s *ItineraryService) assemble(ctx context.Context, it domain.Itinerary, visits []domain.Visit) (*planner.Assembler, error) {
	a := planner.NewAssembler(it, nil)
	if len(visits) == 0 {
		return a, nil
	}

	all, err := s.attractions.ListByCity(ctx, it.CityID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Attraction, len(all))
	for _, attr := range all {
		byID[attr.ID] = attr
	}

	for _, v := range visits {
		attr, ok := byID[v.AttractionID]
		if !ok {
			return nil, fmt.Errorf("%w: attraction %s is not in this itinerary's city", domain.ErrValidation, v.AttractionID)
		}
		if _, err := a.Add(attr, v.VisitDate, strings.TrimSpace(v.Notes)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// cityAttraction fetches an attraction and requires it to belong to the itinerary's city.
func (s *ItineraryService) cityAttraction(ctx context.Context, it domain.Itinerary, id uuid.UUID) (domain.Attraction, error) {
	attr, err := s.attractions.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && attr.CityID != it.CityID) {
		return domain.Attraction{}, fmt.Errorf("%w: attraction %s is not in this itinerary's city", domain.ErrValidation, id)
	}
	if err != nil {
		return domain.Attraction{}, err
	}
	return attr, nil
}

func validateItinerary(it domain.Itinerary) error {
	switch {
	case it.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case it.CityID == uuid.Nil:
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	case it.StartDate.IsZero() || it.EndDate.IsZero():
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	case planner.Civil(it.EndDate).Before(planner.Civil(it.StartDate)):
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	return nil
}
