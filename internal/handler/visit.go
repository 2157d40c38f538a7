package handler

import (
	"net/http"
)

// ReplaceVisits handles PUT /itineraries/{id}/items. The submitted list
// replaces every saved visit; the response is the resulting plan.
func (s *Server) ReplaceVisits(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req replaceVisitsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.itineraries.SaveVisits(r.Context(), sess, id, requestToVisits(req.Items)); err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	s.writePlan(w, r, sess, id)
}

// AddVisit handles POST /itineraries/{id}/items.
func (s *Server) AddVisit(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req visitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var notes string
	if req.Notes != nil {
		notes = *req.Notes
	}
	v, err := s.itineraries.AddVisit(r.Context(), sess, id, req.AttractionID, req.VisitDate.Time, notes)
	if err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusCreated, visitToResponse(v))
}

// MoveVisit handles PATCH /itineraries/{id}/items/{itemID}. The visit is
// appended to the end of the target date.
func (s *Server) MoveVisit(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	var req moveVisitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.VisitDate == nil {
		requestError(w, "visit_date is required")
		return
	}
	v, err := s.itineraries.MoveVisit(r.Context(), sess, id, itemID, req.VisitDate.Time)
	if err != nil {
		s.serviceError(w, r, err, "itinerary item not found")
		return
	}
	writeJSON(w, http.StatusOK, visitToResponse(v))
}

// RemoveVisit handles DELETE /itineraries/{id}/items/{itemID}.
func (s *Server) RemoveVisit(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	if err := s.itineraries.RemoveVisit(r.Context(), sess, id, itemID); err != nil {
		s.serviceError(w, r, err, "itinerary item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
