package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// Wire types for the JSON API. Dates travel as "2006-01-02" via
// openapi_types.Date; timestamps as RFC 3339.

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type cityResponse struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Country         string      `json:"country"`
	Description     string      `json:"description"`
	Location        coordinates `json:"location"`
	BestTimeToVisit string      `json:"best_time_to_visit"`
	TravelAdvisory  string      `json:"travel_advisory"`
	ImageURL        *string     `json:"image_url,omitempty"`
}

type attractionResponse struct {
	ID                     uuid.UUID   `json:"id"`
	CityID                 uuid.UUID   `json:"city_id"`
	Name                   string      `json:"name"`
	Category               string      `json:"category"`
	Description            string      `json:"description"`
	Location               coordinates `json:"location"`
	EstimatedDurationHours float64     `json:"estimated_duration_hours"`
	ImageURL               *string     `json:"image_url,omitempty"`
}

type itineraryResponse struct {
	ID        uuid.UUID          `json:"id"`
	CityID    uuid.UUID          `json:"city_id"`
	Title     string             `json:"title"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type itinerarySummaryResponse struct {
	itineraryResponse
	City cityResponse `json:"city"`
}

type itineraryListResponse struct {
	Data       []itinerarySummaryResponse `json:"data"`
	Pagination pagination                 `json:"pagination"`
}

type visitResponse struct {
	ID           uuid.UUID           `json:"id"`
	AttractionID uuid.UUID           `json:"attraction_id"`
	VisitDate    openapi_types.Date  `json:"visit_date"`
	VisitOrder   int                 `json:"visit_order"`
	Notes        string              `json:"notes"`
	Attraction   *attractionResponse `json:"attraction,omitempty"`
}

type stopResponse struct {
	visitResponse
	DistanceToNextKm *float64 `json:"distance_to_next_km"`
}

type dayWeatherResponse struct {
	Label       string              `json:"label"`
	Source      string              `json:"source"`
	Observation *domain.Observation `json:"observation,omitempty"`
}

type dayResponse struct {
	Date          openapi_types.Date  `json:"date"`
	Summary       string              `json:"summary"`
	StopCount     int                 `json:"stop_count"`
	DurationHours float64             `json:"duration_hours"`
	Stops         []stopResponse      `json:"stops"`
	Weather       *dayWeatherResponse `json:"weather,omitempty"`
}

type totalsResponse struct {
	Stops         int     `json:"stops"`
	DurationHours float64 `json:"duration_hours"`
	DistanceKm    float64 `json:"distance_km"`
}

type planResponse struct {
	Itinerary itineraryResponse `json:"itinerary"`
	City      cityResponse      `json:"city"`
	Days      []dayResponse     `json:"days"`
	Totals    totalsResponse    `json:"totals"`
}

type exportRowResponse struct {
	ItineraryID      uuid.UUID `json:"itinerary_id"`
	ItineraryTitle   string    `json:"itinerary_title"`
	CityName         string    `json:"city_name"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	VisitDate        *string   `json:"visit_date,omitempty"`
	VisitOrder       *int      `json:"visit_order,omitempty"`
	AttractionName   *string   `json:"attraction_name,omitempty"`
	Category         *string   `json:"category,omitempty"`
	DurationHours    *float64  `json:"duration_hours,omitempty"`
	DistanceToNextKm *float64  `json:"distance_to_next_km,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
}

// ---- requests ----------------------------------------------------------------

type visitRequest struct {
	AttractionID uuid.UUID          `json:"attraction_id"`
	VisitDate    openapi_types.Date `json:"visit_date"`
	Notes        *string            `json:"notes,omitempty"`
}

type createItineraryRequest struct {
	Title     string              `json:"title"`
	CityID    uuid.UUID           `json:"city_id"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
	Items     []visitRequest      `json:"items,omitempty"`
}

type replaceVisitsRequest struct {
	Items []visitRequest `json:"items"`
}

type moveVisitRequest struct {
	VisitDate *openapi_types.Date `json:"visit_date"`
}

// ---- mapping helpers ---------------------------------------------------------

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cityToResponse(c domain.City) cityResponse {
	return cityResponse{
		ID:              c.ID,
		Name:            c.Name,
		Country:         c.Country,
		Description:     c.Description,
		Location:        coordinates{Latitude: c.Location.Lat, Longitude: c.Location.Lon},
		BestTimeToVisit: c.BestTimeToVisit,
		TravelAdvisory:  c.TravelAdvisory,
		ImageURL:        optional(c.ImageURL),
	}
}

func attractionToResponse(a domain.Attraction) attractionResponse {
	return attractionResponse{
		ID:                     a.ID,
		CityID:                 a.CityID,
		Name:                   a.Name,
		Category:               a.Category,
		Description:            a.Description,
		Location:               coordinates{Latitude: a.Location.Lat, Longitude: a.Location.Lon},
		EstimatedDurationHours: a.EstimatedDurationHours,
		ImageURL:               optional(a.ImageURL),
	}
}

func attractionsToResponse(as []domain.Attraction) []attractionResponse {
	out := make([]attractionResponse, len(as))
	for i, a := range as {
		out[i] = attractionToResponse(a)
	}
	return out
}

func itineraryToResponse(it domain.Itinerary) itineraryResponse {
	return itineraryResponse{
		ID:        it.ID,
		CityID:    it.CityID,
		Title:     it.Title,
		StartDate: openapi_types.Date{Time: it.StartDate},
		EndDate:   openapi_types.Date{Time: it.EndDate},
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func visitToResponse(v domain.Visit) visitResponse {
	resp := visitResponse{
		ID:           v.ID,
		AttractionID: v.AttractionID,
		VisitDate:    openapi_types.Date{Time: v.VisitDate},
		VisitOrder:   v.VisitOrder,
		Notes:        v.Notes,
	}
	if v.Attraction.ID != uuid.Nil {
		a := attractionToResponse(v.Attraction)
		resp.Attraction = &a
	}
	return resp
}

func planToResponse(p domain.Plan) planResponse {
	days := make([]dayResponse, len(p.Days))
	for i, d := range p.Days {
		stops := make([]stopResponse, len(d.Stops))
		for j, s := range d.Stops {
			stops[j] = stopResponse{visitResponse: visitToResponse(s.Visit), DistanceToNextKm: s.DistanceToNextKm}
		}
		days[i] = dayResponse{
			Date:          openapi_types.Date{Time: d.Date},
			Summary:       d.Summary(),
			StopCount:     d.StopCount,
			DurationHours: d.DurationHours,
			Stops:         stops,
		}
		if d.Weather != nil {
			days[i].Weather = &dayWeatherResponse{
				Label:       d.Weather.Label,
				Source:      string(d.Weather.Source),
				Observation: d.Weather.Observation,
			}
		}
	}
	return planResponse{
		Itinerary: itineraryToResponse(p.Itinerary),
		City:      cityToResponse(p.City),
		Days:      days,
		Totals: totalsResponse{
			Stops:         p.Totals.Stops,
			DurationHours: p.Totals.DurationHours,
			DistanceKm:    p.Totals.DistanceKm,
		},
	}
}

func requestToVisits(items []visitRequest) []domain.Visit {
	visits := make([]domain.Visit, len(items))
	for i, item := range items {
		visits[i] = domain.Visit{AttractionID: item.AttractionID, VisitDate: item.VisitDate.Time}
		if item.Notes != nil {
			visits[i].Notes = *item.Notes
		}
	}
	return visits
}
