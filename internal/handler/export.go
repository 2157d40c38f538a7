package handler

// export.go implements GET /itineraries/{id}/export.
// Returns the itinerary as a flat table, one row per visit.
// Supports ?format=csv or ?format=json (default).

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"itinerary_id", "itinerary_title", "city", "start_date", "end_date",
	"visit_date", "visit_order", "attraction", "category",
	"duration_hours", "distance_to_next_km", "notes",
}

// ExportItinerary handles GET /itineraries/{id}/export.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		writeError(w, http.StatusBadRequest, "validation_error", "format must be csv or json")
		return
	}

	rows, err := s.itineraries.Export(r.Context(), sess, id)
	if err != nil {
		s.serviceError(w, r, err, "itinerary not found")
		return
	}

	if format == "csv" {
		body := buildCSV(rows)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="itinerary-%s.csv"`, id))
		w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = body.WriteTo(w)
		return
	}
	out := make([]exportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = rowToResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// buildCSV encodes domain rows as CSV, header first.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(rowToCSVRecord(r))
	}
	w.Flush()
	return &buf
}

// rowToResponse maps a domain.ExportRow to its JSON shape.
// Rows without a visit omit every visit field.
func rowToResponse(r domain.ExportRow) exportRowResponse {
	row := exportRowResponse{
		ItineraryID:    r.ItineraryID,
		ItineraryTitle: r.ItineraryTitle,
		CityName:       r.CityName,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
	if r.VisitDate == "" {
		return row
	}
	row.VisitDate = &r.VisitDate
	row.VisitOrder = &r.VisitOrder
	row.AttractionName = &r.AttractionName
	row.Category = &r.Category
	row.DurationHours = &r.DurationHours
	row.DistanceToNextKm = r.DistanceToNextKm
	row.Notes = optional(r.Notes)
	return row
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Visit columns are empty for a row without a visit, and the distance
// column is empty for the last stop of a day.
func rowToCSVRecord(r domain.ExportRow) []string {
	rec := []string{
		r.ItineraryID.String(),
		r.ItineraryTitle,
		r.CityName,
		r.StartDate,
		r.EndDate,
		r.VisitDate,
		"", "", "", "", "",
		r.Notes,
	}
	if r.VisitDate == "" {
		return rec
	}
	rec[6] = strconv.Itoa(r.VisitOrder)
	rec[7] = r.AttractionName
	rec[8] = r.Category
	rec[9] = strconv.FormatFloat(r.DurationHours, 'f', 1, 64)
	if r.DistanceToNextKm != nil {
		rec[10] = strconv.FormatFloat(*r.DistanceToNextKm, 'f', 2, 64)
	}
	return rec
}
