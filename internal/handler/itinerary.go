package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// ListItineraries handles GET /itineraries?page=&limit=.
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	p := domain.NewPaginationParams(page, limit)

	items, total, err := s.itineraries.List(r.Context(), sess, p)
	if err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	data := make([]itinerarySummaryResponse, len(items))
	for i, it := range items {
		data[i] = itinerarySummaryResponse{
			itineraryResponse: itineraryToResponse(it.Itinerary),
			City:              cityToResponse(it.City),
		}
	}
	writeJSON(w, http.StatusOK, itineraryListResponse{
		Data:       data,
		Pagination: pagination{Page: p.Page, Limit: p.Limit, Total: int(total), Pages: p.PageCount(total)},
	})
}

// CreateItinerary handles POST /itineraries.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	var req createItineraryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.StartDate == nil || req.EndDate == nil {
		requestError(w, "start_date and end_date are required")
		return
	}

	it := domain.Itinerary{
		CityID:    req.CityID,
		Title:     req.Title,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
	}
	created, err := s.itineraries.Create(r.Context(), sess, it, requestToVisits(req.Items))
	if err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusCreated, itineraryToResponse(created))
}

// GetItinerary handles GET /itineraries/{id}. The response is the full plan.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	s.writePlan(w, r, sess, id)
}

// writePlan responds with the itinerary's current plan.
func (s *Server) writePlan(w http.ResponseWriter, r *http.Request, sess domain.Session, id uuid.UUID) {
	plan, err := s.itineraries.Plan(r.Context(), sess, id)
	if err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, planToResponse(plan))
}

// DeleteItinerary handles DELETE /itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.itineraries.Delete(r.Context(), sess, id); err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCandidates handles GET /itineraries/{id}/candidates.
func (s *Server) ListCandidates(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	attractions, err := s.itineraries.Candidates(r.Context(), sess, id)
	if err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, attractionsToResponse(attractions))
}
