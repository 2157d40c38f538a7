package handler

import (
	"net/http"
	"strings"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// GetWeather handles GET /weather?lat=&lon= and GET /weather?city=.
// Coordinates win when both forms are given. The response is always an
// observation; upstream failures are masked by the weather service.
func (s *Server) GetWeather(w http.ResponseWriter, r *http.Request) {
	lat, ok := queryFloat(w, r, "lat")
	if !ok {
		return
	}
	lon, ok := queryFloat(w, r, "lon")
	if !ok {
		return
	}
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	switch {
	case lat != nil && lon != nil:
		if *lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
			writeError(w, http.StatusBadRequest, "validation_error", "lat must be within [-90, 90] and lon within [-180, 180]")
			return
		}
		writeJSON(w, http.StatusOK, s.weather.Current(r.Context(), domain.Coordinates{Lat: *lat, Lon: *lon}))
	case city != "":
		writeJSON(w, http.StatusOK, s.weather.CurrentByCity(r.Context(), city))
	default:
		writeError(w, http.StatusBadRequest, "validation_error", "either lat and lon or city is required")
	}
}
